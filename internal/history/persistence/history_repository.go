package persistence

import (
	"context"
	"fmt"

	"profiling-server/internal/history/domain"
	"profiling-server/internal/history/persistence/internal"
	"profiling-server/internal/history/usecases"
	"profiling-server/internal/infra/sql"
	shared "profiling-server/internal/shared_kernel/domain"
)

func NewHistoryRepository(orm sql.ORM) (*SimpleHistoryRepository, error) {
	err := orm.AutoMigrate(&internal.Entry{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleHistoryRepository{orm: orm}, nil
}

var _ usecases.HistoryRepository = (*SimpleHistoryRepository)(nil)

type SimpleHistoryRepository struct {
	orm sql.ORM
}

func (r *SimpleHistoryRepository) Append(ctx context.Context, entry domain.Entry) error {
	entity := internal.FromEntry(entry)
	if err := r.orm.WithContext(ctx).Create(&entity).Error(); err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return nil
}

func (r *SimpleHistoryRepository) Exists(ctx context.Context, id shared.ID) (bool, error) {
	var count int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Entry{}).
		Where("id = ?", id.String()).
		Count(&count).
		Error()
	if err != nil {
		return false, fmt.Errorf("database query: %w", err)
	}

	return count > 0, nil
}

func (r *SimpleHistoryRepository) FindByRecord(ctx context.Context, entity string, recordID shared.ID, pagination usecases.Pagination) ([]domain.Entry, int, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Entry{}).
		Where("entity = ? AND record_id = ?", entity, recordID.String()).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("counting history: %w", err)
	}

	var entities []internal.Entry
	err = r.orm.
		WithContext(ctx).
		Where("entity = ? AND record_id = ?", entity, recordID.String()).
		Order("occurred_at ASC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Entry, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}
