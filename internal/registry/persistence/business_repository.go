package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"profiling-server/internal/infra/pubsub"
	"profiling-server/internal/infra/sql"
	"profiling-server/internal/registry/domain"
	"profiling-server/internal/registry/persistence/internal"
	"profiling-server/internal/registry/usecases"
	shared "profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/events"
	"profiling-server/internal/shared_kernel/persistence"
)

const _businessesTopic = events.TopicBusinesses

func NewBusinessRepository(publisherFactory pubsub.PublisherFactory, orm sql.ORM) (*SimpleBusinessRepository, error) {
	publisher, err := persistence.NewRecordPublisher(publisherFactory, _businessesTopic, usecases.EntityBusiness)
	if err != nil {
		return nil, err
	}

	err = orm.AutoMigrate(&internal.Business{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleBusinessRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.BusinessRepository = (*SimpleBusinessRepository)(nil)

type SimpleBusinessRepository struct {
	publisher *persistence.RecordPublisher
	orm       sql.ORM
}

func (r *SimpleBusinessRepository) Create(ctx context.Context, business domain.Business) error {
	entity := internal.FromBusiness(business)
	if err := r.orm.WithContext(ctx).Create(&entity).Error(); err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return r.publisher.Publish(ctx, entity.ID, events.ActionCreated, entity.Version, entity)
}

func (r *SimpleBusinessRepository) GetByID(ctx context.Context, id shared.ID) (domain.Business, error) {
	var entity internal.Business
	err := r.orm.
		WithContext(ctx).
		Where("deleted_at IS NULL").
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Business{}, usecases.ErrBusinessNotFound
	}

	if err != nil {
		return domain.Business{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleBusinessRepository) Update(ctx context.Context, business domain.Business) error {
	entity := internal.FromBusiness(business)
	if err := r.orm.WithContext(ctx).Save(&entity).Error(); err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	return r.publisher.Publish(ctx, entity.ID, events.ActionUpdated, entity.Version, entity)
}

func (r *SimpleBusinessRepository) Delete(ctx context.Context, id shared.ID) error {
	now := time.Now().UTC()
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Business{}).
		Where("id = ? AND deleted_at IS NULL", id.String()).
		Updates(map[string]any{"deleted_at": now, "updated_at": now}).
		Error()
	if err != nil {
		return fmt.Errorf("database delete: %w", err)
	}

	return r.publisher.Publish(ctx, id.String(), events.ActionDeleted, 0, map[string]any{"id": id.String(), "deleted_at": now})
}

func (r *SimpleBusinessRepository) FindAll(ctx context.Context, filter usecases.BusinessFilter, pagination usecases.Pagination) ([]domain.Business, int, error) {
	var total int64
	err := r.filtered(ctx, filter).
		Model(&internal.Business{}).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("counting businesses: %w", err)
	}

	var entities []internal.Business
	err = r.filtered(ctx, filter).
		Order("name").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Business, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimpleBusinessRepository) filtered(ctx context.Context, filter usecases.BusinessFilter) sql.ORM {
	query := r.orm.WithContext(ctx).Where("deleted_at IS NULL")
	if !filter.OwnerResidentID.IsEmpty() {
		query = query.Where("owner_resident_id = ?", filter.OwnerResidentID.String())
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		query = query.Where("UPPER(name) LIKE ?", "%"+strings.ToUpper(q)+"%")
	}
	return query
}
