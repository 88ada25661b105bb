package internal

import (
	"time"

	"profiling-server/internal/registry/domain"
	shared "profiling-server/internal/shared_kernel/domain"

	"github.com/shopspring/decimal"
)

type Business struct {
	ID              string          `json:"id" gorm:"primaryKey"`
	Version         int             `json:"version"`
	Name            string          `json:"name" gorm:"index;not null"`
	OwnerResidentID string          `json:"owner_resident_id" gorm:"index;not null"`
	Nature          string          `json:"nature"`
	PermitNumber    string          `json:"permit_number"`
	Capital         decimal.Decimal `json:"capital" gorm:"type:numeric(16,2)"`
	Employees       int             `json:"employees"`
	Address         Address         `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	RegisteredOn    time.Time       `json:"registered_on"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	DeletedAt       *time.Time      `json:"deleted_at,omitempty" gorm:"index"`
}

func (Business) TableName() string {
	return "businesses"
}

func (b Business) ToDomain() domain.Business {
	return domain.Business{
		ID:              shared.ID(b.ID),
		Version:         shared.Version(b.Version),
		Name:            b.Name,
		OwnerResidentID: shared.ID(b.OwnerResidentID),
		Nature:          b.Nature,
		PermitNumber:    b.PermitNumber,
		Capital:         b.Capital,
		Employees:       b.Employees,
		Address:         b.Address.ToDomain(),
		RegisteredOn:    b.RegisteredOn,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
		DeletedAt:       b.DeletedAt,
	}
}

func FromBusiness(value domain.Business) Business {
	return Business{
		ID:              value.ID.String(),
		Version:         int(value.Version),
		Name:            value.Name,
		OwnerResidentID: value.OwnerResidentID.String(),
		Nature:          value.Nature,
		PermitNumber:    value.PermitNumber,
		Capital:         value.Capital,
		Employees:       value.Employees,
		Address:         FromAddress(value.Address),
		RegisteredOn:    value.RegisteredOn,
		CreatedAt:       value.CreatedAt,
		UpdatedAt:       value.UpdatedAt,
		DeletedAt:       value.DeletedAt,
	}
}
