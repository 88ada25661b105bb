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

const _residentsTopic = events.TopicResidents

func NewResidentRepository(publisherFactory pubsub.PublisherFactory, orm sql.ORM) (*SimpleResidentRepository, error) {
	publisher, err := persistence.NewRecordPublisher(publisherFactory, _residentsTopic, usecases.EntityResident)
	if err != nil {
		return nil, err
	}

	err = orm.AutoMigrate(&internal.Resident{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleResidentRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.ResidentRepository = (*SimpleResidentRepository)(nil)

type SimpleResidentRepository struct {
	publisher *persistence.RecordPublisher
	orm       sql.ORM
}

func (r *SimpleResidentRepository) Create(ctx context.Context, resident domain.Resident) error {
	entity := internal.FromResident(resident)
	if err := r.orm.WithContext(ctx).Create(&entity).Error(); err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return r.publisher.Publish(ctx, entity.ID, events.ActionCreated, entity.Version, entity)
}

func (r *SimpleResidentRepository) GetByID(ctx context.Context, id shared.ID) (domain.Resident, error) {
	var entity internal.Resident
	err := r.orm.
		WithContext(ctx).
		Where("deleted_at IS NULL").
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Resident{}, usecases.ErrResidentNotFound
	}

	if err != nil {
		return domain.Resident{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleResidentRepository) Update(ctx context.Context, resident domain.Resident) error {
	entity := internal.FromResident(resident)
	if err := r.orm.WithContext(ctx).Save(&entity).Error(); err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	return r.publisher.Publish(ctx, entity.ID, events.ActionUpdated, entity.Version, entity)
}

func (r *SimpleResidentRepository) Delete(ctx context.Context, id shared.ID) error {
	now := time.Now().UTC()
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Resident{}).
		Where("id = ? AND deleted_at IS NULL", id.String()).
		Updates(map[string]any{"deleted_at": now, "updated_at": now}).
		Error()
	if err != nil {
		return fmt.Errorf("database delete: %w", err)
	}

	return r.publisher.Publish(ctx, id.String(), events.ActionDeleted, 0, map[string]any{"id": id.String(), "deleted_at": now})
}

func (r *SimpleResidentRepository) FindAll(ctx context.Context, filter usecases.ResidentFilter, pagination usecases.Pagination) ([]domain.Resident, int, error) {
	var total int64
	err := r.filtered(ctx, filter).
		Model(&internal.Resident{}).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("counting residents: %w", err)
	}

	var entities []internal.Resident
	err = r.filtered(ctx, filter).
		Order("last_name, first_name").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Resident, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimpleResidentRepository) filtered(ctx context.Context, filter usecases.ResidentFilter) sql.ORM {
	query := r.orm.WithContext(ctx).Where("deleted_at IS NULL")
	if !filter.HouseholdID.IsEmpty() {
		query = query.Where("household_id = ?", filter.HouseholdID.String())
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		like := "%" + strings.ToUpper(q) + "%"
		query = query.Where("(last_name LIKE ? OR first_name LIKE ? OR middle_name LIKE ?)", like, like, like)
	}
	return query
}

func (r *SimpleResidentRepository) FindAfter(ctx context.Context, after shared.ID, limit int) ([]domain.Resident, error) {
	var entities []internal.Resident
	err := r.orm.
		WithContext(ctx).
		Where("deleted_at IS NULL AND id > ?", after.String()).
		Order("id").
		Limit(limit).
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Resident, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}
