package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"profiling-server/internal/infra/cache"
	"profiling-server/internal/registry/domain"
	shared "profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/events"
)

var ErrLastNameRequired = errors.New("last name is required to look for duplicates")

func NewResidentService(
	repository ResidentRepository,
	households HouseholdRepository,
	queryCache cache.Cache,
	notifier events.Notifier,
	opts Options,
) *SimpleResidentService {
	return &SimpleResidentService{
		repository: repository,
		households: households,
		cache:      queryCache,
		notifier:   notifier,
		opts:       opts,
	}
}

var _ ResidentService = &SimpleResidentService{}

type SimpleResidentService struct {
	repository ResidentRepository
	households HouseholdRepository
	cache      cache.Cache
	notifier   events.Notifier
	opts       Options
}

func (s *SimpleResidentService) CreateResident(ctx context.Context, resident domain.Resident) error {
	if err := resident.Validate(time.Now()); err != nil {
		return err
	}

	if !resident.HouseholdID.IsEmpty() {
		if _, err := s.households.GetByID(ctx, resident.HouseholdID); err != nil {
			return fmt.Errorf("checking household: %w", err)
		}
	}

	if err := s.repository.Create(ctx, resident); err != nil {
		slog.Error("creating resident", slog.String("error", err.Error()))
		return fmt.Errorf("creating resident: %w", err)
	}

	s.householdChanged(ctx, resident.HouseholdID)
	s.notifier.RecordChanged(ctx, EntityResident, resident.ID, events.ActionCreated)
	slog.Info("resident created", slog.String("id", resident.ID.String()))
	return nil
}

func (s *SimpleResidentService) GetResident(ctx context.Context, id shared.ID) (domain.Resident, error) {
	resident, err := cache.Remember(ctx, s.cache, cacheKey(EntityResident, id), s.opts.CacheTTL, func() (domain.Resident, error) {
		return s.repository.GetByID(ctx, id)
	})
	if err != nil {
		if errors.Is(err, ErrResidentNotFound) {
			return domain.Resident{}, ErrResidentNotFound
		}
		return domain.Resident{}, fmt.Errorf("getting resident: %w", err)
	}

	return resident, nil
}

func (s *SimpleResidentService) ListResidents(ctx context.Context, filter ResidentFilter, pagination Pagination) ([]domain.Resident, int, error) {
	residents, total, err := s.repository.FindAll(ctx, filter, pagination)
	if err != nil {
		slog.Error("listing residents", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing residents: %w", err)
	}

	return residents, total, nil
}

func (s *SimpleResidentService) UpdateResident(ctx context.Context, resident domain.Resident) (domain.Resident, error) {
	existing, err := s.repository.GetByID(ctx, resident.ID)
	if err != nil {
		return domain.Resident{}, err
	}

	if resident.Version != 0 && resident.Version != existing.Version {
		return domain.Resident{}, ErrVersionConflict
	}

	if err := resident.Validate(time.Now()); err != nil {
		return domain.Resident{}, err
	}

	if resident.HouseholdID != existing.HouseholdID && !resident.HouseholdID.IsEmpty() {
		if _, err := s.households.GetByID(ctx, resident.HouseholdID); err != nil {
			return domain.Resident{}, fmt.Errorf("checking household: %w", err)
		}
	}

	resident.Version = existing.Version + 1
	resident.CreatedAt = existing.CreatedAt
	resident.UpdatedAt = time.Now().UTC()

	if err := s.repository.Update(ctx, resident); err != nil {
		slog.Error("updating resident", slog.String("error", err.Error()))
		return domain.Resident{}, fmt.Errorf("updating resident: %w", err)
	}

	s.cache.Delete(ctx, cacheKey(EntityResident, resident.ID))
	s.householdChanged(ctx, existing.HouseholdID)
	s.householdChanged(ctx, resident.HouseholdID)
	s.notifier.RecordChanged(ctx, EntityResident, resident.ID, events.ActionUpdated)
	slog.Info("resident updated", slog.String("id", resident.ID.String()), slog.Int("version", int(resident.Version)))
	return resident, nil
}

func (s *SimpleResidentService) DeleteResident(ctx context.Context, id shared.ID) error {
	existing, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	isHead, err := s.households.IsHead(ctx, id)
	if err != nil {
		return fmt.Errorf("checking household heads: %w", err)
	}
	if isHead {
		return ErrHouseholdHeadInUse
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		slog.Error("deleting resident", slog.String("error", err.Error()))
		return fmt.Errorf("deleting resident: %w", err)
	}

	s.cache.Delete(ctx, cacheKey(EntityResident, id))
	s.householdChanged(ctx, existing.HouseholdID)
	s.notifier.RecordChanged(ctx, EntityResident, id, events.ActionDeleted)
	slog.Info("resident deleted", slog.String("id", id.String()))
	return nil
}

// FindDuplicates scores every live resident against the given one, a batch
// at a time, so a typo anywhere in the name can still match.
func (s *SimpleResidentService) FindDuplicates(ctx context.Context, resident domain.Resident) ([]domain.DuplicateCandidate, error) {
	if strings.TrimSpace(resident.Name.LastName) == "" {
		return nil, ErrLastNameRequired
	}

	batch := s.opts.DuplicateScanBatch
	if batch <= 0 {
		batch = DefaultOptions().DuplicateScanBatch
	}

	matches := make([]domain.DuplicateCandidate, 0)
	var after shared.ID
	for {
		candidates, err := s.repository.FindAfter(ctx, after, batch)
		if err != nil {
			slog.Error("loading duplicate candidates", slog.String("error", err.Error()))
			return nil, fmt.Errorf("loading duplicate candidates: %w", err)
		}

		matches = append(matches, domain.FindDuplicates(resident, candidates, s.opts.DuplicateThreshold)...)
		if len(candidates) < batch {
			break
		}
		after = candidates[len(candidates)-1].ID
	}

	domain.SortDuplicates(matches)
	return matches, nil
}

// householdChanged drops the cached household so its member count is recomputed.
func (s *SimpleResidentService) householdChanged(ctx context.Context, id shared.ID) {
	if id.IsEmpty() {
		return
	}
	s.cache.Delete(ctx, cacheKey(EntityHousehold, id))
}
