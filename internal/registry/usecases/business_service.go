package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"profiling-server/internal/infra/cache"
	"profiling-server/internal/registry/domain"
	shared "profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/events"
)

func NewBusinessService(
	repository BusinessRepository,
	residents ResidentRepository,
	queryCache cache.Cache,
	notifier events.Notifier,
	opts Options,
) *SimpleBusinessService {
	return &SimpleBusinessService{
		repository: repository,
		residents:  residents,
		cache:      queryCache,
		notifier:   notifier,
		opts:       opts,
	}
}

var _ BusinessService = &SimpleBusinessService{}

type SimpleBusinessService struct {
	repository BusinessRepository
	residents  ResidentRepository
	cache      cache.Cache
	notifier   events.Notifier
	opts       Options
}

func (s *SimpleBusinessService) CreateBusiness(ctx context.Context, business domain.Business) error {
	if err := business.Validate(); err != nil {
		return err
	}
	if _, err := s.residents.GetByID(ctx, business.OwnerResidentID); err != nil {
		return fmt.Errorf("checking owner: %w", err)
	}

	if err := s.repository.Create(ctx, business); err != nil {
		slog.Error("creating business", slog.String("error", err.Error()))
		return fmt.Errorf("creating business: %w", err)
	}

	s.notifier.RecordChanged(ctx, EntityBusiness, business.ID, events.ActionCreated)
	slog.Info("business created", slog.String("id", business.ID.String()))
	return nil
}

func (s *SimpleBusinessService) GetBusiness(ctx context.Context, id shared.ID) (domain.Business, error) {
	business, err := cache.Remember(ctx, s.cache, cacheKey(EntityBusiness, id), s.opts.CacheTTL, func() (domain.Business, error) {
		return s.repository.GetByID(ctx, id)
	})
	if err != nil {
		if errors.Is(err, ErrBusinessNotFound) {
			return domain.Business{}, ErrBusinessNotFound
		}
		return domain.Business{}, fmt.Errorf("getting business: %w", err)
	}

	return business, nil
}

func (s *SimpleBusinessService) ListBusinesses(ctx context.Context, filter BusinessFilter, pagination Pagination) ([]domain.Business, int, error) {
	businesses, total, err := s.repository.FindAll(ctx, filter, pagination)
	if err != nil {
		slog.Error("listing businesses", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing businesses: %w", err)
	}

	return businesses, total, nil
}

func (s *SimpleBusinessService) UpdateBusiness(ctx context.Context, business domain.Business) (domain.Business, error) {
	existing, err := s.repository.GetByID(ctx, business.ID)
	if err != nil {
		return domain.Business{}, err
	}

	if business.Version != 0 && business.Version != existing.Version {
		return domain.Business{}, ErrVersionConflict
	}

	if err := business.Validate(); err != nil {
		return domain.Business{}, err
	}
	if business.OwnerResidentID != existing.OwnerResidentID {
		if _, err := s.residents.GetByID(ctx, business.OwnerResidentID); err != nil {
			return domain.Business{}, fmt.Errorf("checking owner: %w", err)
		}
	}

	if business.RegisteredOn.IsZero() {
		business.RegisteredOn = existing.RegisteredOn
	}
	business.Version = existing.Version + 1
	business.CreatedAt = existing.CreatedAt
	business.UpdatedAt = time.Now().UTC()

	if err := s.repository.Update(ctx, business); err != nil {
		slog.Error("updating business", slog.String("error", err.Error()))
		return domain.Business{}, fmt.Errorf("updating business: %w", err)
	}

	s.cache.Delete(ctx, cacheKey(EntityBusiness, business.ID))
	s.notifier.RecordChanged(ctx, EntityBusiness, business.ID, events.ActionUpdated)
	return business, nil
}

func (s *SimpleBusinessService) DeleteBusiness(ctx context.Context, id shared.ID) error {
	if _, err := s.repository.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		slog.Error("deleting business", slog.String("error", err.Error()))
		return fmt.Errorf("deleting business: %w", err)
	}

	s.cache.Delete(ctx, cacheKey(EntityBusiness, id))
	s.notifier.RecordChanged(ctx, EntityBusiness, id, events.ActionDeleted)
	slog.Info("business deleted", slog.String("id", id.String()))
	return nil
}
