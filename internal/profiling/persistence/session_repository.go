package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"profiling-server/internal/infra/pubsub"
	"profiling-server/internal/infra/sql"
	"profiling-server/internal/profiling/domain"
	"profiling-server/internal/profiling/persistence/internal"
	"profiling-server/internal/profiling/usecases"
	shared "profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/events"
	"profiling-server/internal/shared_kernel/persistence"
)

const _sessionsTopic = events.TopicSessions

var _updatableColumns = []string{
	"version", "current_step", "path", "status", "draft",
	"resources", "last_error", "submitted_at", "updated_at",
}

func NewSessionRepository(publisherFactory pubsub.PublisherFactory, orm sql.ORM) (*SimpleSessionRepository, error) {
	publisher, err := persistence.NewRecordPublisher(publisherFactory, _sessionsTopic, usecases.EntitySession)
	if err != nil {
		return nil, err
	}

	err = orm.AutoMigrate(&internal.Session{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleSessionRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.SessionRepository = (*SimpleSessionRepository)(nil)

type SimpleSessionRepository struct {
	publisher *persistence.RecordPublisher
	orm       sql.ORM
}

func (r *SimpleSessionRepository) Create(ctx context.Context, session domain.Session) error {
	entity, err := internal.FromSession(session)
	if err != nil {
		return err
	}

	if err := r.orm.WithContext(ctx).Create(&entity).Error(); err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return r.publisher.Publish(ctx, entity.ID, events.ActionCreated, entity.Version, entity.Snapshot())
}

func (r *SimpleSessionRepository) GetByID(ctx context.Context, id shared.ID) (domain.Session, error) {
	var entity internal.Session
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Session{}, usecases.ErrSessionNotFound
	}

	if err != nil {
		return domain.Session{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain()
}

// Update writes the session only if the stored row still carries expected.
func (r *SimpleSessionRepository) Update(ctx context.Context, session domain.Session, expected shared.Version) error {
	entity, err := internal.FromSession(session)
	if err != nil {
		return err
	}

	result := r.orm.
		WithContext(ctx).
		Model(&entity).
		Where("version = ?", int(expected)).
		Select(_updatableColumns).
		Updates(&entity)
	if err := result.Error(); err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	if result.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, session.ID); err != nil {
			return err
		}
		return usecases.ErrVersionConflict
	}

	return r.publisher.Publish(ctx, entity.ID, events.ActionUpdated, entity.Version, entity.Snapshot())
}

func (r *SimpleSessionRepository) Delete(ctx context.Context, id shared.ID) error {
	err := r.orm.
		WithContext(ctx).
		Delete(&internal.Session{}, "id = ?", id.String()).
		Error()
	if err != nil {
		return fmt.Errorf("database delete: %w", err)
	}

	return r.publisher.Publish(ctx, id.String(), events.ActionDeleted, 0, map[string]any{"id": id.String()})
}

// DeleteStale removes unsubmitted sessions untouched since before.
// Submitted sessions are kept as the audit trail of what they created.
func (r *SimpleSessionRepository) DeleteStale(ctx context.Context, before time.Time) (int, error) {
	var stale []internal.Session
	err := r.orm.
		WithContext(ctx).
		Select("id").
		Where("status <> ? AND updated_at < ?", string(domain.StatusSubmitted), before).
		Find(&stale).
		Error()
	if err != nil {
		return 0, fmt.Errorf("database query: %w", err)
	}

	deleted := 0
	for _, entity := range stale {
		if err := r.Delete(ctx, shared.ID(entity.ID)); err != nil {
			return deleted, err
		}
		deleted++
	}

	return deleted, nil
}
