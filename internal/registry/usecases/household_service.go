package usecases

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"profiling-server/internal/infra/cache"
	"profiling-server/internal/registry/domain"
	shared "profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/events"
)

const _numberLockTTL = 10 * time.Second

func NewHouseholdService(
	repository HouseholdRepository,
	residents ResidentRepository,
	queryCache cache.Cache,
	locker cache.Locker,
	notifier events.Notifier,
	opts Options,
) *SimpleHouseholdService {
	return &SimpleHouseholdService{
		repository: repository,
		residents:  residents,
		cache:      queryCache,
		locker:     locker,
		notifier:   notifier,
		opts:       opts,
		now:        time.Now,
	}
}

var _ HouseholdService = &SimpleHouseholdService{}

type SimpleHouseholdService struct {
	repository HouseholdRepository
	residents  ResidentRepository
	cache      cache.Cache
	locker     cache.Locker
	notifier   events.Notifier
	opts       Options
	now        func() time.Time
}

// CreateHousehold allocates the next HH-<year>-<seq> number while holding
// the per-year lock and stores the household before releasing it.
func (s *SimpleHouseholdService) CreateHousehold(ctx context.Context, household domain.Household) (domain.Household, error) {
	household.Number = ""
	if err := household.Validate(); err != nil {
		return domain.Household{}, err
	}

	if !household.HeadResidentID.IsEmpty() {
		if _, err := s.residents.GetByID(ctx, household.HeadResidentID); err != nil {
			return domain.Household{}, fmt.Errorf("checking head resident: %w", err)
		}
	}

	year := s.now().Year()
	lock, err := s.locker.Obtain(ctx, "household-number:"+strconv.Itoa(year), _numberLockTTL)
	if err != nil {
		slog.Error("locking household number", slog.String("error", err.Error()))
		return domain.Household{}, fmt.Errorf("locking household number: %w", err)
	}
	defer func() {
		if err := lock.Release(ctx); err != nil {
			slog.Warn("releasing household number lock", slog.String("error", err.Error()))
		}
	}()

	last, err := s.repository.LastSequence(ctx, year)
	if err != nil {
		return domain.Household{}, fmt.Errorf("reading household sequence: %w", err)
	}
	household.Number = domain.FormatHouseholdNumber(year, last+1)

	if err := s.repository.Create(ctx, household); err != nil {
		slog.Error("creating household", slog.String("error", err.Error()))
		return domain.Household{}, fmt.Errorf("creating household: %w", err)
	}

	s.notifier.RecordChanged(ctx, EntityHousehold, household.ID, events.ActionCreated)
	slog.Info("household created", slog.String("id", household.ID.String()), slog.String("number", household.Number))
	return household, nil
}

func (s *SimpleHouseholdService) GetHousehold(ctx context.Context, id shared.ID) (domain.Household, error) {
	household, err := cache.Remember(ctx, s.cache, cacheKey(EntityHousehold, id), s.opts.CacheTTL, func() (domain.Household, error) {
		return s.repository.GetByID(ctx, id)
	})
	if err != nil {
		if errors.Is(err, ErrHouseholdNotFound) {
			return domain.Household{}, ErrHouseholdNotFound
		}
		return domain.Household{}, fmt.Errorf("getting household: %w", err)
	}

	return household, nil
}

func (s *SimpleHouseholdService) ListHouseholds(ctx context.Context, filter HouseholdFilter, pagination Pagination) ([]domain.Household, int, error) {
	households, total, err := s.repository.FindAll(ctx, filter, pagination)
	if err != nil {
		slog.Error("listing households", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing households: %w", err)
	}

	return households, total, nil
}

func (s *SimpleHouseholdService) UpdateHousehold(ctx context.Context, household domain.Household) (domain.Household, error) {
	existing, err := s.repository.GetByID(ctx, household.ID)
	if err != nil {
		return domain.Household{}, err
	}

	if household.Version != 0 && household.Version != existing.Version {
		return domain.Household{}, ErrVersionConflict
	}

	household.Number = existing.Number
	if err := household.Validate(); err != nil {
		return domain.Household{}, err
	}

	if household.HeadResidentID != existing.HeadResidentID && !household.HeadResidentID.IsEmpty() {
		if _, err := s.residents.GetByID(ctx, household.HeadResidentID); err != nil {
			return domain.Household{}, fmt.Errorf("checking head resident: %w", err)
		}
	}

	household.Version = existing.Version + 1
	household.MemberCount = existing.MemberCount
	household.CreatedAt = existing.CreatedAt
	household.UpdatedAt = s.now().UTC()

	if err := s.repository.Update(ctx, household); err != nil {
		slog.Error("updating household", slog.String("error", err.Error()))
		return domain.Household{}, fmt.Errorf("updating household: %w", err)
	}

	s.cache.Delete(ctx, cacheKey(EntityHousehold, household.ID))
	s.notifier.RecordChanged(ctx, EntityHousehold, household.ID, events.ActionUpdated)
	slog.Info("household updated", slog.String("id", household.ID.String()), slog.Int("version", int(household.Version)))
	return household, nil
}

func (s *SimpleHouseholdService) DeleteHousehold(ctx context.Context, id shared.ID) error {
	if _, err := s.repository.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		slog.Error("deleting household", slog.String("error", err.Error()))
		return fmt.Errorf("deleting household: %w", err)
	}

	s.cache.Delete(ctx, cacheKey(EntityHousehold, id))
	s.notifier.RecordChanged(ctx, EntityHousehold, id, events.ActionDeleted)
	slog.Info("household deleted", slog.String("id", id.String()))
	return nil
}

const _exportBatch = 200

func (s *SimpleHouseholdService) ExportHouseholds(ctx context.Context, w io.Writer) error {
	sheet, err := NewMasterlist()
	if err != nil {
		return err
	}
	defer sheet.Close()

	heads := make(map[shared.ID]string)
	for offset := 0; ; offset += _exportBatch {
		households, total, err := s.repository.FindAll(ctx, HouseholdFilter{}, Pagination{Limit: _exportBatch, Offset: offset})
		if err != nil {
			slog.Error("exporting households", slog.String("error", err.Error()))
			return fmt.Errorf("exporting households: %w", err)
		}

		for _, household := range households {
			if err := sheet.Append(household, s.headName(ctx, heads, household.HeadResidentID)); err != nil {
				return err
			}
		}

		if len(households) == 0 || offset+len(households) >= total {
			break
		}
	}

	if err := sheet.Write(w); err != nil {
		return fmt.Errorf("writing masterlist: %w", err)
	}

	slog.Info("household masterlist exported", slog.Int("rows", sheet.Rows()))
	return nil
}

func (s *SimpleHouseholdService) headName(ctx context.Context, known map[shared.ID]string, id shared.ID) string {
	if id.IsEmpty() {
		return ""
	}
	if name, ok := known[id]; ok {
		return name
	}

	name := ""
	resident, err := s.residents.GetByID(ctx, id)
	if err == nil {
		name = resident.Name.Display()
	} else if !errors.Is(err, ErrResidentNotFound) {
		slog.Warn("loading household head", slog.String("id", id.String()), slog.String("error", err.Error()))
	}
	known[id] = name
	return name
}
