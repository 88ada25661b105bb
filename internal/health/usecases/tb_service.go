package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"profiling-server/internal/health/domain"
	"profiling-server/internal/infra/cache"
	shared "profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/events"
)

func NewTBService(
	repository TBRepository,
	directory SubjectDirectory,
	queryCache cache.Cache,
	notifier events.Notifier,
	opts Options,
) *SimpleTBService {
	return &SimpleTBService{
		repository: repository,
		directory:  directory,
		cache:      queryCache,
		notifier:   notifier,
		opts:       opts,
		now:        time.Now,
	}
}

var _ TBService = &SimpleTBService{}

type SimpleTBService struct {
	repository TBRepository
	directory  SubjectDirectory
	cache      cache.Cache
	notifier   events.Notifier
	opts       Options
	now        func() time.Time
}

func (s *SimpleTBService) CreateTBRecord(ctx context.Context, record domain.TBRecord) (domain.TBRecord, error) {
	now := s.now().UTC()
	if err := record.Validate(now); err != nil {
		return domain.TBRecord{}, err
	}
	if err := checkSubjects(ctx, s.directory, record.ResidentID, record.FamilyID); err != nil {
		return domain.TBRecord{}, err
	}

	record.Derive()
	if record.Version == 0 {
		record.Version = 1
	}
	record.CreatedAt = now
	record.UpdatedAt = now

	if err := s.repository.Create(ctx, record); err != nil {
		slog.Error("creating tb record", slog.String("error", err.Error()))
		return domain.TBRecord{}, fmt.Errorf("creating tb record: %w", err)
	}

	s.notifier.RecordChanged(ctx, EntityTBRecord, record.ID, events.ActionCreated)
	if record.Presumptive {
		slog.Info("presumptive tb case recorded",
			slog.String("id", record.ID.String()),
			slog.String("resident_id", record.ResidentID.String()),
		)
	}
	return record, nil
}

func (s *SimpleTBService) GetTBRecord(ctx context.Context, id shared.ID) (domain.TBRecord, error) {
	record, err := cache.Remember(ctx, s.cache, cacheKey(EntityTBRecord, id), s.opts.CacheTTL, func() (domain.TBRecord, error) {
		return s.repository.GetByID(ctx, id)
	})
	if err != nil {
		if errors.Is(err, ErrTBRecordNotFound) {
			return domain.TBRecord{}, ErrTBRecordNotFound
		}
		return domain.TBRecord{}, fmt.Errorf("getting tb record: %w", err)
	}

	return record, nil
}

func (s *SimpleTBService) ListTBRecords(ctx context.Context, filter RecordFilter, pagination Pagination) ([]domain.TBRecord, int, error) {
	records, total, err := s.repository.FindAll(ctx, filter, pagination)
	if err != nil {
		slog.Error("listing tb records", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing tb records: %w", err)
	}

	return records, total, nil
}

func (s *SimpleTBService) UpdateTBRecord(ctx context.Context, record domain.TBRecord) (domain.TBRecord, error) {
	existing, err := s.repository.GetByID(ctx, record.ID)
	if err != nil {
		return domain.TBRecord{}, err
	}

	if record.Version != 0 && record.Version != existing.Version {
		return domain.TBRecord{}, ErrVersionConflict
	}

	now := s.now().UTC()
	if err := record.Validate(now); err != nil {
		return domain.TBRecord{}, err
	}
	if record.ResidentID != existing.ResidentID || record.FamilyID != existing.FamilyID {
		if err := checkSubjects(ctx, s.directory, record.ResidentID, record.FamilyID); err != nil {
			return domain.TBRecord{}, err
		}
	}

	record.Derive()
	record.Version = existing.Version + 1
	record.CreatedAt = existing.CreatedAt
	record.UpdatedAt = now

	if err := s.repository.Update(ctx, record); err != nil {
		slog.Error("updating tb record", slog.String("error", err.Error()))
		return domain.TBRecord{}, fmt.Errorf("updating tb record: %w", err)
	}

	s.cache.Delete(ctx, cacheKey(EntityTBRecord, record.ID))
	s.notifier.RecordChanged(ctx, EntityTBRecord, record.ID, events.ActionUpdated)
	return record, nil
}

func (s *SimpleTBService) DeleteTBRecord(ctx context.Context, id shared.ID) error {
	if _, err := s.repository.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		slog.Error("deleting tb record", slog.String("error", err.Error()))
		return fmt.Errorf("deleting tb record: %w", err)
	}

	s.cache.Delete(ctx, cacheKey(EntityTBRecord, id))
	s.notifier.RecordChanged(ctx, EntityTBRecord, id, events.ActionDeleted)
	return nil
}
