package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"profiling-server/internal/infra/cache"
	"profiling-server/internal/profiling/domain"
	shared "profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/events"
)

const _submitLockTTL = 2 * time.Minute

func NewWizardService(
	repository SessionRepository,
	submitter Submitter,
	locker cache.Locker,
	notifier events.Notifier,
	opts Options,
) *SimpleWizardService {
	return &SimpleWizardService{
		repository: repository,
		submitter:  submitter,
		locker:     locker,
		notifier:   notifier,
		opts:       opts,
		now:        time.Now,
	}
}

var _ WizardService = &SimpleWizardService{}

type SimpleWizardService struct {
	repository SessionRepository
	submitter  Submitter
	locker     cache.Locker
	notifier   events.Notifier
	opts       Options
	now        func() time.Time
}

func (s *SimpleWizardService) StartSession(ctx context.Context, accountID shared.ID) (domain.Session, error) {
	session := domain.NewSession(accountID, s.now().UTC())
	if err := s.repository.Create(ctx, session); err != nil {
		slog.Error("creating profiling session", slog.String("error", err.Error()))
		return domain.Session{}, fmt.Errorf("creating profiling session: %w", err)
	}

	s.notifier.RecordChanged(ctx, EntitySession, session.ID, events.ActionCreated)
	slog.Info("profiling session started", slog.String("id", session.ID.String()))
	return session, nil
}

func (s *SimpleWizardService) GetSession(ctx context.Context, id shared.ID) (domain.Session, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *SimpleWizardService) DeleteSession(ctx context.Context, id shared.ID) error {
	if _, err := s.repository.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		slog.Error("deleting profiling session", slog.String("error", err.Error()))
		return fmt.Errorf("deleting profiling session: %w", err)
	}

	s.notifier.RecordChanged(ctx, EntitySession, id, events.ActionDeleted)
	return nil
}

func (s *SimpleWizardService) SaveStep(ctx context.Context, id shared.ID, step domain.Step, payload any) (domain.Session, error) {
	return s.mutate(ctx, id, func(session *domain.Session, now time.Time) error {
		return session.SaveStep(step, payload, now)
	})
}

func (s *SimpleWizardService) Next(ctx context.Context, id shared.ID) (domain.Session, error) {
	return s.mutate(ctx, id, func(session *domain.Session, now time.Time) error {
		return session.Next(now)
	})
}

func (s *SimpleWizardService) Back(ctx context.Context, id shared.ID) (domain.Session, error) {
	return s.mutate(ctx, id, func(session *domain.Session, now time.Time) error {
		return session.Back(now)
	})
}

// Submit runs under the per-session lock so a double tap cannot register
// the same person twice.
func (s *SimpleWizardService) Submit(ctx context.Context, id shared.ID) (domain.Session, error) {
	unlock, err := s.lock(ctx, id)
	if err != nil {
		return domain.Session{}, err
	}
	defer unlock()

	session, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return domain.Session{}, err
	}
	expected := session.Version

	now := s.now().UTC()
	if err := session.BeginSubmission(now); err != nil {
		return domain.Session{}, err
	}

	resources, submitErr := s.submitter.Submit(ctx, session)
	now = s.now().UTC()
	if submitErr != nil {
		session.MarkFailed(submitErr, now)
		slog.Error("submitting profiling session", slog.String("id", id.String()), slog.String("error", submitErr.Error()))
	} else {
		session.MarkSubmitted(resources, now)
		slog.Info("profiling session submitted",
			slog.String("id", id.String()),
			slog.String("resident_id", resources.ResidentID.String()),
		)
	}

	if err := s.repository.Update(ctx, session, expected); err != nil {
		slog.Error("storing submission outcome", slog.String("id", id.String()), slog.String("error", err.Error()))
		if submitErr == nil {
			// the session stays open, so a retry must start from nothing
			s.submitter.Revert(context.WithoutCancel(ctx), session, resources)
		}
		return domain.Session{}, fmt.Errorf("storing submission outcome: %w", err)
	}
	s.notifier.RecordChanged(ctx, EntitySession, session.ID, events.ActionUpdated)

	if submitErr != nil {
		return session, fmt.Errorf("%w: %w", ErrSubmissionFailed, submitErr)
	}
	return session, nil
}

func (s *SimpleWizardService) PurgeStale(ctx context.Context) (int, error) {
	before := s.now().UTC().Add(-s.opts.Retention)
	deleted, err := s.repository.DeleteStale(ctx, before)
	if err != nil {
		slog.Error("purging stale sessions", slog.String("error", err.Error()))
		return 0, fmt.Errorf("purging stale sessions: %w", err)
	}

	if deleted > 0 {
		slog.Info("stale profiling sessions purged", slog.Int("count", deleted), slog.Time("before", before))
	}
	return deleted, nil
}

// lock takes the session lock shared by step edits and submission.
func (s *SimpleWizardService) lock(ctx context.Context, id shared.ID) (func(), error) {
	lock, err := s.locker.Obtain(ctx, "profiling:submit:"+id.String(), _submitLockTTL)
	if err != nil {
		return nil, fmt.Errorf("locking session: %w", err)
	}

	return func() {
		if err := lock.Release(context.WithoutCancel(ctx)); err != nil {
			slog.Warn("releasing session lock", slog.String("error", err.Error()))
		}
	}, nil
}

func (s *SimpleWizardService) mutate(ctx context.Context, id shared.ID, change func(*domain.Session, time.Time) error) (domain.Session, error) {
	unlock, err := s.lock(ctx, id)
	if err != nil {
		return domain.Session{}, err
	}
	defer unlock()

	session, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return domain.Session{}, err
	}
	expected := session.Version

	if err := change(&session, s.now().UTC()); err != nil {
		return domain.Session{}, err
	}

	if err := s.repository.Update(ctx, session, expected); err != nil {
		if errors.Is(err, ErrVersionConflict) {
			return domain.Session{}, err
		}
		slog.Error("updating profiling session", slog.String("error", err.Error()))
		return domain.Session{}, fmt.Errorf("updating profiling session: %w", err)
	}

	s.notifier.RecordChanged(ctx, EntitySession, session.ID, events.ActionUpdated)
	return session, nil
}
