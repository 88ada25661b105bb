package usecases

import (
	"context"
	"io"
	"time"

	"profiling-server/internal/registry/domain"
	shared "profiling-server/internal/shared_kernel/domain"
)

const (
	EntityResident     = "resident"
	EntityHousehold    = "household"
	EntityFamily       = "family"
	EntityFamilyMember = "family_member"
	EntityBusiness     = "business"
)

type Options struct {
	CacheTTL           time.Duration
	DuplicateThreshold float64
	// DuplicateScanBatch is how many residents a duplicate check scores per query.
	DuplicateScanBatch int
}

func DefaultOptions() Options {
	return Options{
		CacheTTL:           10 * time.Minute,
		DuplicateThreshold: domain.DefaultDuplicateThreshold,
		DuplicateScanBatch: 500,
	}
}

type ResidentService interface {
	CreateResident(context.Context, domain.Resident) error
	GetResident(context.Context, shared.ID) (domain.Resident, error)
	ListResidents(context.Context, ResidentFilter, Pagination) ([]domain.Resident, int, error)
	UpdateResident(context.Context, domain.Resident) (domain.Resident, error)
	DeleteResident(context.Context, shared.ID) error
	FindDuplicates(context.Context, domain.Resident) ([]domain.DuplicateCandidate, error)
}

type HouseholdService interface {
	CreateHousehold(context.Context, domain.Household) (domain.Household, error)
	GetHousehold(context.Context, shared.ID) (domain.Household, error)
	ListHouseholds(context.Context, HouseholdFilter, Pagination) ([]domain.Household, int, error)
	UpdateHousehold(context.Context, domain.Household) (domain.Household, error)
	DeleteHousehold(context.Context, shared.ID) error
	ExportHouseholds(context.Context, io.Writer) error
}

type FamilyService interface {
	CreateFamily(context.Context, domain.Family) error
	GetFamily(context.Context, shared.ID) (domain.Family, error)
	ListFamilies(context.Context, FamilyFilter, Pagination) ([]domain.Family, int, error)
	UpdateFamily(context.Context, domain.Family) (domain.Family, error)
	DeleteFamily(context.Context, shared.ID) error
	ListMembers(context.Context, shared.ID) ([]domain.FamilyMember, error)
	AddMember(context.Context, domain.FamilyMember) error
	RemoveMember(ctx context.Context, familyID, residentID shared.ID) error
}

type BusinessService interface {
	CreateBusiness(context.Context, domain.Business) error
	GetBusiness(context.Context, shared.ID) (domain.Business, error)
	ListBusinesses(context.Context, BusinessFilter, Pagination) ([]domain.Business, int, error)
	UpdateBusiness(context.Context, domain.Business) (domain.Business, error)
	DeleteBusiness(context.Context, shared.ID) error
}

func cacheKey(entity string, id shared.ID) string {
	return entity + ":" + id.String()
}
