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

func NewNCDService(
	repository NCDRepository,
	directory SubjectDirectory,
	queryCache cache.Cache,
	notifier events.Notifier,
	opts Options,
) *SimpleNCDService {
	return &SimpleNCDService{
		repository: repository,
		directory:  directory,
		cache:      queryCache,
		notifier:   notifier,
		opts:       opts,
		now:        time.Now,
	}
}

var _ NCDService = &SimpleNCDService{}

type SimpleNCDService struct {
	repository NCDRepository
	directory  SubjectDirectory
	cache      cache.Cache
	notifier   events.Notifier
	opts       Options
	now        func() time.Time
}

func (s *SimpleNCDService) CreateNCDRecord(ctx context.Context, record domain.NCDRecord) (domain.NCDRecord, error) {
	now := s.now().UTC()
	if err := record.Validate(now); err != nil {
		return domain.NCDRecord{}, err
	}
	if err := checkSubjects(ctx, s.directory, record.ResidentID, record.FamilyID); err != nil {
		return domain.NCDRecord{}, err
	}

	record.Derive()
	if record.Version == 0 {
		record.Version = 1
	}
	record.CreatedAt = now
	record.UpdatedAt = now

	if err := s.repository.Create(ctx, record); err != nil {
		slog.Error("creating ncd record", slog.String("error", err.Error()))
		return domain.NCDRecord{}, fmt.Errorf("creating ncd record: %w", err)
	}

	s.notifier.RecordChanged(ctx, EntityNCDRecord, record.ID, events.ActionCreated)
	return record, nil
}

func (s *SimpleNCDService) GetNCDRecord(ctx context.Context, id shared.ID) (domain.NCDRecord, error) {
	record, err := cache.Remember(ctx, s.cache, cacheKey(EntityNCDRecord, id), s.opts.CacheTTL, func() (domain.NCDRecord, error) {
		return s.repository.GetByID(ctx, id)
	})
	if err != nil {
		if errors.Is(err, ErrNCDRecordNotFound) {
			return domain.NCDRecord{}, ErrNCDRecordNotFound
		}
		return domain.NCDRecord{}, fmt.Errorf("getting ncd record: %w", err)
	}

	return record, nil
}

func (s *SimpleNCDService) ListNCDRecords(ctx context.Context, filter RecordFilter, pagination Pagination) ([]domain.NCDRecord, int, error) {
	records, total, err := s.repository.FindAll(ctx, filter, pagination)
	if err != nil {
		slog.Error("listing ncd records", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing ncd records: %w", err)
	}

	return records, total, nil
}

func (s *SimpleNCDService) UpdateNCDRecord(ctx context.Context, record domain.NCDRecord) (domain.NCDRecord, error) {
	existing, err := s.repository.GetByID(ctx, record.ID)
	if err != nil {
		return domain.NCDRecord{}, err
	}

	if record.Version != 0 && record.Version != existing.Version {
		return domain.NCDRecord{}, ErrVersionConflict
	}

	now := s.now().UTC()
	if err := record.Validate(now); err != nil {
		return domain.NCDRecord{}, err
	}
	if record.ResidentID != existing.ResidentID || record.FamilyID != existing.FamilyID {
		if err := checkSubjects(ctx, s.directory, record.ResidentID, record.FamilyID); err != nil {
			return domain.NCDRecord{}, err
		}
	}

	record.Derive()
	record.Version = existing.Version + 1
	record.CreatedAt = existing.CreatedAt
	record.UpdatedAt = now

	if err := s.repository.Update(ctx, record); err != nil {
		slog.Error("updating ncd record", slog.String("error", err.Error()))
		return domain.NCDRecord{}, fmt.Errorf("updating ncd record: %w", err)
	}

	s.cache.Delete(ctx, cacheKey(EntityNCDRecord, record.ID))
	s.notifier.RecordChanged(ctx, EntityNCDRecord, record.ID, events.ActionUpdated)
	return record, nil
}

func (s *SimpleNCDService) DeleteNCDRecord(ctx context.Context, id shared.ID) error {
	if _, err := s.repository.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		slog.Error("deleting ncd record", slog.String("error", err.Error()))
		return fmt.Errorf("deleting ncd record: %w", err)
	}

	s.cache.Delete(ctx, cacheKey(EntityNCDRecord, id))
	s.notifier.RecordChanged(ctx, EntityNCDRecord, id, events.ActionDeleted)
	return nil
}
