package persistence

import (
	"context"
	"errors"

	"profiling-server/internal/health/usecases"
	registry "profiling-server/internal/registry/usecases"
	shared "profiling-server/internal/shared_kernel/domain"
)

// RegistryDirectory resolves record subjects through the registry services
// so lookups share their query cache.
type RegistryDirectory struct {
	residents registry.ResidentService
	families  registry.FamilyService
}

var _ usecases.SubjectDirectory = (*RegistryDirectory)(nil)

func NewRegistryDirectory(residents registry.ResidentService, families registry.FamilyService) *RegistryDirectory {
	return &RegistryDirectory{residents: residents, families: families}
}

func (d *RegistryDirectory) ResidentExists(ctx context.Context, id shared.ID) (bool, error) {
	if id.IsEmpty() {
		return false, nil
	}
	_, err := d.residents.GetResident(ctx, id)
	if errors.Is(err, registry.ErrResidentNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (d *RegistryDirectory) FamilyExists(ctx context.Context, id shared.ID) (bool, error) {
	_, err := d.families.GetFamily(ctx, id)
	if errors.Is(err, registry.ErrFamilyNotFound) {
		return false, nil
	}
	return err == nil, err
}
