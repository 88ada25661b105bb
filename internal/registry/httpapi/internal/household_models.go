package internal

import (
	"profiling-server/internal/infra/utils"
	"profiling-server/internal/registry/domain"
	shared "profiling-server/internal/shared_kernel/domain"

	"github.com/shopspring/decimal"
)

type HouseholdRequest struct {
	HeadResidentID  string          `json:"head_resident_id"`
	Tenure          string          `json:"tenure" validate:"omitempty,oneof=OWNED RENTED SHARED INFORMAL"`
	DwellingType    string          `json:"dwelling_type"`
	WaterSource     string          `json:"water_source"`
	ToiletFacility  string          `json:"toilet_facility" validate:"required,oneof=SANITARY UNSANITARY NONE"`
	SanitarySubtype string          `json:"sanitary_subtype"`
	MonthlyIncome   decimal.Decimal `json:"monthly_income"`
	Address         Address         `json:"address"`
	Version         int             `json:"version"`
}

func (r HouseholdRequest) ToDomain(id shared.ID) domain.Household {
	return domain.Household{
		ID:              id,
		Version:         shared.Version(r.Version),
		HeadResidentID:  shared.ID(r.HeadResidentID),
		Tenure:          domain.Tenure(r.Tenure),
		DwellingType:    r.DwellingType,
		WaterSource:     r.WaterSource,
		ToiletFacility:  domain.ToiletFacility(r.ToiletFacility),
		SanitarySubtype: domain.SanitarySubtype(r.SanitarySubtype),
		MonthlyIncome:   r.MonthlyIncome,
		Address:         r.Address.ToDomain(),
	}
}

type HouseholdResponse struct {
	ID              string          `json:"id"`
	Version         int             `json:"version"`
	Number          string          `json:"number"`
	HeadResidentID  string          `json:"head_resident_id,omitempty"`
	Tenure          string          `json:"tenure,omitempty"`
	DwellingType    string          `json:"dwelling_type,omitempty"`
	WaterSource     string          `json:"water_source,omitempty"`
	ToiletFacility  string          `json:"toilet_facility"`
	SanitarySubtype string          `json:"sanitary_subtype,omitempty"`
	MonthlyIncome   decimal.Decimal `json:"monthly_income"`
	Address         Address         `json:"address"`
	MemberCount     int             `json:"member_count"`
	CreatedAt       utils.Time      `json:"created_at"`
	UpdatedAt       utils.Time      `json:"updated_at"`
}

func ToHouseholdResponse(value domain.Household) HouseholdResponse {
	return HouseholdResponse{
		ID:              value.ID.String(),
		Version:         int(value.Version),
		Number:          value.Number,
		HeadResidentID:  value.HeadResidentID.String(),
		Tenure:          string(value.Tenure),
		DwellingType:    value.DwellingType,
		WaterSource:     value.WaterSource,
		ToiletFacility:  string(value.ToiletFacility),
		SanitarySubtype: string(value.SanitarySubtype),
		MonthlyIncome:   value.MonthlyIncome,
		Address:         ToAddress(value.Address),
		MemberCount:     value.MemberCount,
		CreatedAt:       utils.Time{Time: value.CreatedAt},
		UpdatedAt:       utils.Time{Time: value.UpdatedAt},
	}
}
