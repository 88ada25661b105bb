package usecases

import (
	"context"
	"errors"

	"profiling-server/internal/registry/domain"
	shared "profiling-server/internal/shared_kernel/domain"
)

var (
	ErrResidentNotFound   = errors.New("resident not found")
	ErrHouseholdNotFound  = errors.New("household not found")
	ErrFamilyNotFound     = errors.New("family not found")
	ErrBusinessNotFound   = errors.New("business not found")
	ErrMemberNotFound     = errors.New("family member not found")
	ErrMemberDuplicated   = errors.New("resident is already a member of the family")
	ErrVersionConflict    = errors.New("record version conflict")
	ErrHouseholdHeadInUse = errors.New("resident heads a household")
)

type Pagination struct {
	Limit  int
	Offset int
}

type ResidentFilter struct {
	HouseholdID shared.ID
	Query       string
}

type HouseholdFilter struct {
	Query string
	Purok string
}

type FamilyFilter struct {
	HouseholdID shared.ID
	Query       string
}

type BusinessFilter struct {
	OwnerResidentID shared.ID
	Query           string
}

type ResidentRepository interface {
	Create(context.Context, domain.Resident) error
	GetByID(context.Context, shared.ID) (domain.Resident, error)
	Update(context.Context, domain.Resident) error
	Delete(context.Context, shared.ID) error
	FindAll(context.Context, ResidentFilter, Pagination) ([]domain.Resident, int, error)
	// FindAfter pages through live residents in id order, starting after the given id.
	FindAfter(ctx context.Context, after shared.ID, limit int) ([]domain.Resident, error)
}

type HouseholdRepository interface {
	Create(context.Context, domain.Household) error
	GetByID(context.Context, shared.ID) (domain.Household, error)
	Update(context.Context, domain.Household) error
	Delete(context.Context, shared.ID) error
	FindAll(context.Context, HouseholdFilter, Pagination) ([]domain.Household, int, error)
	LastSequence(ctx context.Context, year int) (int, error)
	IsHead(context.Context, shared.ID) (bool, error)
}

type FamilyRepository interface {
	Create(context.Context, domain.Family) error
	GetByID(context.Context, shared.ID) (domain.Family, error)
	Update(context.Context, domain.Family) error
	Delete(context.Context, shared.ID) error
	FindAll(context.Context, FamilyFilter, Pagination) ([]domain.Family, int, error)
	AddMember(context.Context, domain.FamilyMember) error
	RemoveMember(ctx context.Context, familyID, residentID shared.ID) error
}

type BusinessRepository interface {
	Create(context.Context, domain.Business) error
	GetByID(context.Context, shared.ID) (domain.Business, error)
	Update(context.Context, domain.Business) error
	Delete(context.Context, shared.ID) error
	FindAll(context.Context, BusinessFilter, Pagination) ([]domain.Business, int, error)
}
