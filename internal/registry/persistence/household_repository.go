package persistence

import (
	"context"
	"errors"
	"fmt"
	"strconv"
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

const _householdsTopic = events.TopicHouseholds

func NewHouseholdRepository(publisherFactory pubsub.PublisherFactory, orm sql.ORM) (*SimpleHouseholdRepository, error) {
	publisher, err := persistence.NewRecordPublisher(publisherFactory, _householdsTopic, usecases.EntityHousehold)
	if err != nil {
		return nil, err
	}

	err = orm.AutoMigrate(&internal.Household{}, &internal.Resident{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleHouseholdRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.HouseholdRepository = (*SimpleHouseholdRepository)(nil)

type SimpleHouseholdRepository struct {
	publisher *persistence.RecordPublisher
	orm       sql.ORM
}

func (r *SimpleHouseholdRepository) Create(ctx context.Context, household domain.Household) error {
	entity := internal.FromHousehold(household)
	if err := r.orm.WithContext(ctx).Create(&entity).Error(); err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return r.publisher.Publish(ctx, entity.ID, events.ActionCreated, entity.Version, entity)
}

func (r *SimpleHouseholdRepository) GetByID(ctx context.Context, id shared.ID) (domain.Household, error) {
	var entity internal.Household
	err := r.orm.
		WithContext(ctx).
		Where("deleted_at IS NULL").
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Household{}, usecases.ErrHouseholdNotFound
	}

	if err != nil {
		return domain.Household{}, fmt.Errorf("database query: %w", err)
	}

	counts, err := r.memberCounts(ctx, entity.ID)
	if err != nil {
		return domain.Household{}, err
	}

	return entity.ToDomain(counts[entity.ID]), nil
}

func (r *SimpleHouseholdRepository) Update(ctx context.Context, household domain.Household) error {
	entity := internal.FromHousehold(household)
	if err := r.orm.WithContext(ctx).Save(&entity).Error(); err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	return r.publisher.Publish(ctx, entity.ID, events.ActionUpdated, entity.Version, entity)
}

func (r *SimpleHouseholdRepository) Delete(ctx context.Context, id shared.ID) error {
	now := time.Now().UTC()
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Household{}).
		Where("id = ? AND deleted_at IS NULL", id.String()).
		Updates(map[string]any{"deleted_at": now, "updated_at": now}).
		Error()
	if err != nil {
		return fmt.Errorf("database delete: %w", err)
	}

	return r.publisher.Publish(ctx, id.String(), events.ActionDeleted, 0, map[string]any{"id": id.String(), "deleted_at": now})
}

func (r *SimpleHouseholdRepository) FindAll(ctx context.Context, filter usecases.HouseholdFilter, pagination usecases.Pagination) ([]domain.Household, int, error) {
	var total int64
	err := r.filtered(ctx, filter).
		Model(&internal.Household{}).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("counting households: %w", err)
	}

	var entities []internal.Household
	err = r.filtered(ctx, filter).
		Order("number").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	ids := make([]string, len(entities))
	for i, entity := range entities {
		ids[i] = entity.ID
	}
	counts, err := r.memberCounts(ctx, ids...)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.Household, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain(counts[entity.ID])
	}

	return result, int(total), nil
}

// LastSequence returns the highest sequence allocated for year, deleted
// households included, or 0 when none exists.
func (r *SimpleHouseholdRepository) LastSequence(ctx context.Context, year int) (int, error) {
	prefix := domain.FormatHouseholdNumber(year, 0)
	prefix = prefix[:len(prefix)-6]

	var entity internal.Household
	err := r.orm.
		WithContext(ctx).
		Where("number LIKE ?", prefix+"%").
		Order("number DESC").
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("database query: %w", err)
	}

	sequence, err := strconv.Atoi(strings.TrimPrefix(entity.Number, prefix))
	if err != nil {
		return 0, fmt.Errorf("malformed household number %q: %w", entity.Number, err)
	}

	return sequence, nil
}

func (r *SimpleHouseholdRepository) IsHead(ctx context.Context, residentID shared.ID) (bool, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Household{}).
		Where("head_resident_id = ? AND deleted_at IS NULL", residentID.String()).
		Count(&total).
		Error()
	if err != nil {
		return false, fmt.Errorf("database query: %w", err)
	}

	return total > 0, nil
}

func (r *SimpleHouseholdRepository) filtered(ctx context.Context, filter usecases.HouseholdFilter) sql.ORM {
	query := r.orm.WithContext(ctx).Where("deleted_at IS NULL")
	if purok := strings.TrimSpace(filter.Purok); purok != "" {
		query = query.Where("address_purok = ?", purok)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		like := "%" + strings.ToUpper(q) + "%"
		query = query.Where("(number LIKE ? OR UPPER(address_street) LIKE ?)", like, like)
	}
	return query
}

func (r *SimpleHouseholdRepository) memberCounts(ctx context.Context, ids ...string) (map[string]int, error) {
	counts := make(map[string]int, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	var rows []internal.MemberCount
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Resident{}).
		Select("household_id, COUNT(*) AS total").
		Where("household_id IN ? AND deleted_at IS NULL", ids).
		Group("household_id").
		Scan(&rows).
		Error()
	if err != nil {
		return nil, fmt.Errorf("counting members: %w", err)
	}

	for _, row := range rows {
		counts[row.HouseholdID] = row.Total
	}
	return counts, nil
}
