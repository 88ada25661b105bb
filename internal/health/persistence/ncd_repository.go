package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"profiling-server/internal/health/domain"
	"profiling-server/internal/health/persistence/internal"
	"profiling-server/internal/health/usecases"
	"profiling-server/internal/infra/pubsub"
	"profiling-server/internal/infra/sql"
	shared "profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/events"
	"profiling-server/internal/shared_kernel/persistence"
)

const _ncdRecordsTopic = events.TopicNCDRecords

func NewNCDRepository(publisherFactory pubsub.PublisherFactory, orm sql.ORM) (*SimpleNCDRepository, error) {
	publisher, err := persistence.NewRecordPublisher(publisherFactory, _ncdRecordsTopic, usecases.EntityNCDRecord)
	if err != nil {
		return nil, err
	}

	err = orm.AutoMigrate(&internal.NCDRecord{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleNCDRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.NCDRepository = (*SimpleNCDRepository)(nil)

type SimpleNCDRepository struct {
	publisher *persistence.RecordPublisher
	orm       sql.ORM
}

func (r *SimpleNCDRepository) Create(ctx context.Context, record domain.NCDRecord) error {
	entity := internal.FromNCDRecord(record)
	if err := r.orm.WithContext(ctx).Create(&entity).Error(); err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return r.publisher.Publish(ctx, entity.ID, events.ActionCreated, entity.Version, entity)
}

func (r *SimpleNCDRepository) GetByID(ctx context.Context, id shared.ID) (domain.NCDRecord, error) {
	var entity internal.NCDRecord
	err := r.orm.
		WithContext(ctx).
		Where("deleted_at IS NULL").
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.NCDRecord{}, usecases.ErrNCDRecordNotFound
	}

	if err != nil {
		return domain.NCDRecord{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleNCDRepository) Update(ctx context.Context, record domain.NCDRecord) error {
	entity := internal.FromNCDRecord(record)
	if err := r.orm.WithContext(ctx).Save(&entity).Error(); err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	return r.publisher.Publish(ctx, entity.ID, events.ActionUpdated, entity.Version, entity)
}

func (r *SimpleNCDRepository) Delete(ctx context.Context, id shared.ID) error {
	now := time.Now().UTC()
	err := r.orm.
		WithContext(ctx).
		Model(&internal.NCDRecord{}).
		Where("id = ? AND deleted_at IS NULL", id.String()).
		Updates(map[string]any{"deleted_at": now, "updated_at": now}).
		Error()
	if err != nil {
		return fmt.Errorf("database delete: %w", err)
	}

	return r.publisher.Publish(ctx, id.String(), events.ActionDeleted, 0, map[string]any{"id": id.String(), "deleted_at": now})
}

func (r *SimpleNCDRepository) FindAll(ctx context.Context, filter usecases.RecordFilter, pagination usecases.Pagination) ([]domain.NCDRecord, int, error) {
	var total int64
	err := filterRecords(r.orm.WithContext(ctx), filter).
		Model(&internal.NCDRecord{}).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("counting ncd records: %w", err)
	}

	var entities []internal.NCDRecord
	err = filterRecords(r.orm.WithContext(ctx), filter).
		Order("assessed_on DESC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.NCDRecord, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func filterRecords(query sql.ORM, filter usecases.RecordFilter) sql.ORM {
	query = query.Where("deleted_at IS NULL")
	if !filter.ResidentID.IsEmpty() {
		query = query.Where("resident_id = ?", filter.ResidentID.String())
	}
	if !filter.FamilyID.IsEmpty() {
		query = query.Where("family_id = ?", filter.FamilyID.String())
	}
	return query
}
