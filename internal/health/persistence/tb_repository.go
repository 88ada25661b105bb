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

const _tbRecordsTopic = events.TopicTBRecords

func NewTBRepository(publisherFactory pubsub.PublisherFactory, orm sql.ORM) (*SimpleTBRepository, error) {
	publisher, err := persistence.NewRecordPublisher(publisherFactory, _tbRecordsTopic, usecases.EntityTBRecord)
	if err != nil {
		return nil, err
	}

	err = orm.AutoMigrate(&internal.TBRecord{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleTBRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.TBRepository = (*SimpleTBRepository)(nil)

type SimpleTBRepository struct {
	publisher *persistence.RecordPublisher
	orm       sql.ORM
}

func (r *SimpleTBRepository) Create(ctx context.Context, record domain.TBRecord) error {
	entity := internal.FromTBRecord(record)
	if err := r.orm.WithContext(ctx).Create(&entity).Error(); err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return r.publisher.Publish(ctx, entity.ID, events.ActionCreated, entity.Version, entity)
}

func (r *SimpleTBRepository) GetByID(ctx context.Context, id shared.ID) (domain.TBRecord, error) {
	var entity internal.TBRecord
	err := r.orm.
		WithContext(ctx).
		Where("deleted_at IS NULL").
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.TBRecord{}, usecases.ErrTBRecordNotFound
	}

	if err != nil {
		return domain.TBRecord{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleTBRepository) Update(ctx context.Context, record domain.TBRecord) error {
	entity := internal.FromTBRecord(record)
	if err := r.orm.WithContext(ctx).Save(&entity).Error(); err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	return r.publisher.Publish(ctx, entity.ID, events.ActionUpdated, entity.Version, entity)
}

func (r *SimpleTBRepository) Delete(ctx context.Context, id shared.ID) error {
	now := time.Now().UTC()
	err := r.orm.
		WithContext(ctx).
		Model(&internal.TBRecord{}).
		Where("id = ? AND deleted_at IS NULL", id.String()).
		Updates(map[string]any{"deleted_at": now, "updated_at": now}).
		Error()
	if err != nil {
		return fmt.Errorf("database delete: %w", err)
	}

	return r.publisher.Publish(ctx, id.String(), events.ActionDeleted, 0, map[string]any{"id": id.String(), "deleted_at": now})
}

func (r *SimpleTBRepository) FindAll(ctx context.Context, filter usecases.RecordFilter, pagination usecases.Pagination) ([]domain.TBRecord, int, error) {
	var total int64
	err := filterRecords(r.orm.WithContext(ctx), filter).
		Model(&internal.TBRecord{}).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("counting tb records: %w", err)
	}

	var entities []internal.TBRecord
	err = filterRecords(r.orm.WithContext(ctx), filter).
		Order("screened_on DESC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.TBRecord, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}
