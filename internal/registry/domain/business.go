package domain

import (
	"strings"
	"time"

	"profiling-server/internal/infra/utils"
	"profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/validation"

	"github.com/shopspring/decimal"
)

type Business struct {
	ID              domain.ID
	Version         domain.Version
	Name            string
	OwnerResidentID domain.ID
	Nature          string
	PermitNumber    string
	Capital         decimal.Decimal
	Employees       int
	Address         domain.Address
	RegisteredOn    time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}

func (b Business) IsDeleted() bool {
	return b.DeletedAt != nil
}

func (b Business) Validate() error {
	result := &validation.Error{}
	if strings.TrimSpace(b.Name) == "" {
		result.Add("name", "required")
	}
	if b.OwnerResidentID.IsEmpty() {
		result.Add("owner_resident_id", "required")
	}
	if b.Capital.IsNegative() {
		result.Add("capital", "gte")
	}
	if b.Employees < 0 {
		result.Add("employees", "gte")
	}
	return result.OrNil()
}

func NewBusinessBuilder() *businessBuilder {
	return &businessBuilder{}
}

type businessBuilder struct {
	actions []businessHandler
}

type businessHandler func(v *Business) error

func (b *businessBuilder) WithName(value string) *businessBuilder {
	b.actions = append(b.actions, func(v *Business) error {
		v.Name = strings.TrimSpace(value)
		return nil
	})
	return b
}

func (b *businessBuilder) WithOwnerResidentID(value domain.ID) *businessBuilder {
	b.actions = append(b.actions, func(v *Business) error {
		v.OwnerResidentID = value
		return nil
	})
	return b
}

func (b *businessBuilder) WithNature(value string) *businessBuilder {
	b.actions = append(b.actions, func(v *Business) error {
		v.Nature = value
		return nil
	})
	return b
}

func (b *businessBuilder) WithCapital(value decimal.Decimal) *businessBuilder {
	b.actions = append(b.actions, func(v *Business) error {
		v.Capital = value
		return nil
	})
	return b
}

func (b *businessBuilder) WithEmployees(value int) *businessBuilder {
	b.actions = append(b.actions, func(v *Business) error {
		v.Employees = value
		return nil
	})
	return b
}

func (b *businessBuilder) WithAddress(value domain.Address) *businessBuilder {
	b.actions = append(b.actions, func(v *Business) error {
		v.Address = value
		return nil
	})
	return b
}

func (b *businessBuilder) Build() (Business, error) {
	now := time.Now().UTC()
	result := Business{
		ID:           domain.ID(utils.GenerateUUID()),
		Version:      1,
		RegisteredOn: now.Truncate(24 * time.Hour),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Business{}, err
		}
	}
	if err := result.Validate(); err != nil {
		return Business{}, err
	}
	return result, nil
}
