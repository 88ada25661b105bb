package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"profiling-server/internal/infra/cache"
	"profiling-server/internal/registry/domain"
	shared "profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/events"
)

func NewFamilyService(
	repository FamilyRepository,
	households HouseholdRepository,
	residents ResidentRepository,
	queryCache cache.Cache,
	notifier events.Notifier,
	opts Options,
) *SimpleFamilyService {
	return &SimpleFamilyService{
		repository: repository,
		households: households,
		residents:  residents,
		cache:      queryCache,
		notifier:   notifier,
		opts:       opts,
	}
}

var _ FamilyService = &SimpleFamilyService{}

type SimpleFamilyService struct {
	repository FamilyRepository
	households HouseholdRepository
	residents  ResidentRepository
	cache      cache.Cache
	notifier   events.Notifier
	opts       Options
}

func (s *SimpleFamilyService) CreateFamily(ctx context.Context, family domain.Family) error {
	if err := family.Validate(); err != nil {
		return err
	}
	if err := domain.ValidateComposition(family.LivingSolo, family.Members); err != nil {
		return err
	}

	if _, err := s.households.GetByID(ctx, family.HouseholdID); err != nil {
		return fmt.Errorf("checking household: %w", err)
	}
	for _, member := range family.Members {
		if _, err := s.residents.GetByID(ctx, member.ResidentID); err != nil {
			return fmt.Errorf("checking member %s: %w", member.ResidentID, err)
		}
	}

	now := time.Now().UTC()
	for i := range family.Members {
		family.Members[i].FamilyID = family.ID
		family.Members[i].CreatedAt = now
	}

	if err := s.repository.Create(ctx, family); err != nil {
		slog.Error("creating family", slog.String("error", err.Error()))
		return fmt.Errorf("creating family: %w", err)
	}

	s.notifier.RecordChanged(ctx, EntityFamily, family.ID, events.ActionCreated)
	slog.Info("family created", slog.String("id", family.ID.String()), slog.Int("members", len(family.Members)))
	return nil
}

func (s *SimpleFamilyService) GetFamily(ctx context.Context, id shared.ID) (domain.Family, error) {
	family, err := cache.Remember(ctx, s.cache, cacheKey(EntityFamily, id), s.opts.CacheTTL, func() (domain.Family, error) {
		return s.repository.GetByID(ctx, id)
	})
	if err != nil {
		if errors.Is(err, ErrFamilyNotFound) {
			return domain.Family{}, ErrFamilyNotFound
		}
		return domain.Family{}, fmt.Errorf("getting family: %w", err)
	}

	return family, nil
}

func (s *SimpleFamilyService) ListFamilies(ctx context.Context, filter FamilyFilter, pagination Pagination) ([]domain.Family, int, error) {
	families, total, err := s.repository.FindAll(ctx, filter, pagination)
	if err != nil {
		slog.Error("listing families", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing families: %w", err)
	}

	return families, total, nil
}

// UpdateFamily changes the family record only; members are managed through
// AddMember and RemoveMember.
func (s *SimpleFamilyService) UpdateFamily(ctx context.Context, family domain.Family) (domain.Family, error) {
	existing, err := s.repository.GetByID(ctx, family.ID)
	if err != nil {
		return domain.Family{}, err
	}

	if family.Version != 0 && family.Version != existing.Version {
		return domain.Family{}, ErrVersionConflict
	}

	if err := family.Validate(); err != nil {
		return domain.Family{}, err
	}
	if family.LivingSolo != existing.LivingSolo {
		if err := domain.ValidateComposition(family.LivingSolo, existing.Members); err != nil {
			return domain.Family{}, err
		}
	}
	if family.HouseholdID != existing.HouseholdID {
		if _, err := s.households.GetByID(ctx, family.HouseholdID); err != nil {
			return domain.Family{}, fmt.Errorf("checking household: %w", err)
		}
	}

	family.Members = existing.Members
	family.Version = existing.Version + 1
	family.CreatedAt = existing.CreatedAt
	family.UpdatedAt = time.Now().UTC()

	if err := s.repository.Update(ctx, family); err != nil {
		slog.Error("updating family", slog.String("error", err.Error()))
		return domain.Family{}, fmt.Errorf("updating family: %w", err)
	}

	s.cache.Delete(ctx, cacheKey(EntityFamily, family.ID))
	s.notifier.RecordChanged(ctx, EntityFamily, family.ID, events.ActionUpdated)
	slog.Info("family updated", slog.String("id", family.ID.String()), slog.Int("version", int(family.Version)))
	return family, nil
}

func (s *SimpleFamilyService) DeleteFamily(ctx context.Context, id shared.ID) error {
	if _, err := s.repository.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		slog.Error("deleting family", slog.String("error", err.Error()))
		return fmt.Errorf("deleting family: %w", err)
	}

	s.cache.Delete(ctx, cacheKey(EntityFamily, id))
	s.notifier.RecordChanged(ctx, EntityFamily, id, events.ActionDeleted)
	slog.Info("family deleted", slog.String("id", id.String()))
	return nil
}

func (s *SimpleFamilyService) ListMembers(ctx context.Context, familyID shared.ID) ([]domain.FamilyMember, error) {
	family, err := s.GetFamily(ctx, familyID)
	if err != nil {
		return nil, err
	}
	return family.Members, nil
}

func (s *SimpleFamilyService) AddMember(ctx context.Context, member domain.FamilyMember) error {
	family, err := s.repository.GetByID(ctx, member.FamilyID)
	if err != nil {
		return err
	}

	if slices.ContainsFunc(family.Members, func(m domain.FamilyMember) bool { return m.ResidentID == member.ResidentID }) {
		return ErrMemberDuplicated
	}

	members := append(slices.Clone(family.Members), member)
	if err := domain.ValidateComposition(family.LivingSolo, members); err != nil {
		return err
	}

	if _, err := s.residents.GetByID(ctx, member.ResidentID); err != nil {
		return fmt.Errorf("checking member: %w", err)
	}

	member.CreatedAt = time.Now().UTC()
	if err := s.repository.AddMember(ctx, member); err != nil {
		slog.Error("adding family member", slog.String("error", err.Error()))
		return fmt.Errorf("adding family member: %w", err)
	}

	s.cache.Delete(ctx, cacheKey(EntityFamily, family.ID))
	s.notifier.RecordChanged(ctx, EntityFamilyMember, family.ID, events.ActionCreated)
	return nil
}

// RemoveMember refuses to drop the last parent of a family that is not
// living solo.
func (s *SimpleFamilyService) RemoveMember(ctx context.Context, familyID, residentID shared.ID) error {
	family, err := s.repository.GetByID(ctx, familyID)
	if err != nil {
		return err
	}

	remaining := slices.DeleteFunc(slices.Clone(family.Members), func(m domain.FamilyMember) bool {
		return m.ResidentID == residentID
	})
	if len(remaining) == len(family.Members) {
		return ErrMemberNotFound
	}
	if err := domain.ValidateComposition(family.LivingSolo, remaining); err != nil {
		return err
	}

	if err := s.repository.RemoveMember(ctx, familyID, residentID); err != nil {
		slog.Error("removing family member", slog.String("error", err.Error()))
		return fmt.Errorf("removing family member: %w", err)
	}

	s.cache.Delete(ctx, cacheKey(EntityFamily, familyID))
	s.notifier.RecordChanged(ctx, EntityFamilyMember, familyID, events.ActionDeleted)
	return nil
}
