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

const _familiesTopic = events.TopicFamilies

func NewFamilyRepository(publisherFactory pubsub.PublisherFactory, orm sql.ORM) (*SimpleFamilyRepository, error) {
	publisher, err := persistence.NewRecordPublisher(publisherFactory, _familiesTopic, usecases.EntityFamily)
	if err != nil {
		return nil, err
	}

	err = orm.AutoMigrate(&internal.Family{}, &internal.FamilyMember{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleFamilyRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.FamilyRepository = (*SimpleFamilyRepository)(nil)

type SimpleFamilyRepository struct {
	publisher *persistence.RecordPublisher
	orm       sql.ORM
}

// Create stores the family and its members in one transaction.
func (r *SimpleFamilyRepository) Create(ctx context.Context, family domain.Family) error {
	entity := internal.FromFamily(family)
	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		members := entity.Members
		entity.Members = nil
		if err := tx.Create(&entity).Error(); err != nil {
			return err
		}
		if len(members) > 0 {
			if err := tx.Create(&members).Error(); err != nil {
				return err
			}
		}
		entity.Members = members
		return nil
	})
	if err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return r.publisher.Publish(ctx, entity.ID, events.ActionCreated, entity.Version, entity)
}

func (r *SimpleFamilyRepository) GetByID(ctx context.Context, id shared.ID) (domain.Family, error) {
	var entity internal.Family
	err := r.orm.
		WithContext(ctx).
		Preload("Members").
		Where("deleted_at IS NULL").
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Family{}, usecases.ErrFamilyNotFound
	}

	if err != nil {
		return domain.Family{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

// Update writes the family row only; members have their own operations.
func (r *SimpleFamilyRepository) Update(ctx context.Context, family domain.Family) error {
	entity := internal.FromFamily(family)
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Family{}).
		Where("id = ?", entity.ID).
		Updates(map[string]any{
			"version":          entity.Version,
			"household_id":     entity.HouseholdID,
			"name":             entity.Name,
			"head_resident_id": entity.HeadResidentID,
			"living_solo":      entity.LivingSolo,
			"updated_at":       entity.UpdatedAt,
		}).
		Error()
	if err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	return r.publisher.Publish(ctx, entity.ID, events.ActionUpdated, entity.Version, entity)
}

func (r *SimpleFamilyRepository) Delete(ctx context.Context, id shared.ID) error {
	now := time.Now().UTC()
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Family{}).
		Where("id = ? AND deleted_at IS NULL", id.String()).
		Updates(map[string]any{"deleted_at": now, "updated_at": now}).
		Error()
	if err != nil {
		return fmt.Errorf("database delete: %w", err)
	}

	return r.publisher.Publish(ctx, id.String(), events.ActionDeleted, 0, map[string]any{"id": id.String(), "deleted_at": now})
}

func (r *SimpleFamilyRepository) FindAll(ctx context.Context, filter usecases.FamilyFilter, pagination usecases.Pagination) ([]domain.Family, int, error) {
	var total int64
	err := r.filtered(ctx, filter).
		Model(&internal.Family{}).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("counting families: %w", err)
	}

	var entities []internal.Family
	err = r.filtered(ctx, filter).
		Preload("Members").
		Order("name").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Family, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimpleFamilyRepository) AddMember(ctx context.Context, member domain.FamilyMember) error {
	entity := internal.FromFamilyMember(member)
	if err := r.orm.WithContext(ctx).Create(&entity).Error(); err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return r.publisher.Publish(ctx, entity.FamilyID, events.ActionUpdated, 0, entity)
}

func (r *SimpleFamilyRepository) RemoveMember(ctx context.Context, familyID, residentID shared.ID) error {
	err := r.orm.
		WithContext(ctx).
		Delete(&internal.FamilyMember{}, "family_id = ? AND resident_id = ?", familyID.String(), residentID.String()).
		Error()
	if err != nil {
		return fmt.Errorf("database delete: %w", err)
	}

	return r.publisher.Publish(ctx, familyID.String(), events.ActionUpdated, 0, map[string]string{
		"family_id":   familyID.String(),
		"resident_id": residentID.String(),
	})
}

func (r *SimpleFamilyRepository) filtered(ctx context.Context, filter usecases.FamilyFilter) sql.ORM {
	query := r.orm.WithContext(ctx).Where("deleted_at IS NULL")
	if !filter.HouseholdID.IsEmpty() {
		query = query.Where("household_id = ?", filter.HouseholdID.String())
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		query = query.Where("name LIKE ?", "%"+strings.ToUpper(q)+"%")
	}
	return query
}
