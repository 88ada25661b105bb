package internal

import (
	"profiling-server/internal/infra/utils"
	"profiling-server/internal/registry/domain"
	shared "profiling-server/internal/shared_kernel/domain"

	"github.com/shopspring/decimal"
)

type BusinessRequest struct {
	Name            string          `json:"name" validate:"required"`
	OwnerResidentID string          `json:"owner_resident_id" validate:"required"`
	Nature          string          `json:"nature"`
	PermitNumber    string          `json:"permit_number"`
	Capital         decimal.Decimal `json:"capital"`
	Employees       int             `json:"employees" validate:"gte=0"`
	Address         Address         `json:"address"`
	RegisteredOn    utils.Date      `json:"registered_on"`
	Version         int             `json:"version"`
}

func (r BusinessRequest) ToDomain(id shared.ID) domain.Business {
	return domain.Business{
		ID:              id,
		Version:         shared.Version(r.Version),
		Name:            r.Name,
		OwnerResidentID: shared.ID(r.OwnerResidentID),
		Nature:          r.Nature,
		PermitNumber:    r.PermitNumber,
		Capital:         r.Capital,
		Employees:       r.Employees,
		Address:         r.Address.ToDomain(),
		RegisteredOn:    r.RegisteredOn.Time,
	}
}

type BusinessResponse struct {
	ID              string          `json:"id"`
	Version         int             `json:"version"`
	Name            string          `json:"name"`
	OwnerResidentID string          `json:"owner_resident_id"`
	Nature          string          `json:"nature,omitempty"`
	PermitNumber    string          `json:"permit_number,omitempty"`
	Capital         decimal.Decimal `json:"capital"`
	Employees       int             `json:"employees"`
	Address         Address         `json:"address"`
	RegisteredOn    utils.Date      `json:"registered_on"`
	CreatedAt       utils.Time      `json:"created_at"`
	UpdatedAt       utils.Time      `json:"updated_at"`
}

func ToBusinessResponse(value domain.Business) BusinessResponse {
	return BusinessResponse{
		ID:              value.ID.String(),
		Version:         int(value.Version),
		Name:            value.Name,
		OwnerResidentID: value.OwnerResidentID.String(),
		Nature:          value.Nature,
		PermitNumber:    value.PermitNumber,
		Capital:         value.Capital,
		Employees:       value.Employees,
		Address:         ToAddress(value.Address),
		RegisteredOn:    utils.Date{Time: value.RegisteredOn},
		CreatedAt:       utils.Time{Time: value.CreatedAt},
		UpdatedAt:       utils.Time{Time: value.UpdatedAt},
	}
}
