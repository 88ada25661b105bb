package internal

import (
	"time"

	"profiling-server/internal/registry/domain"
	shared "profiling-server/internal/shared_kernel/domain"

	"github.com/shopspring/decimal"
)

type Household struct {
	ID              string          `json:"id" gorm:"primaryKey"`
	Version         int             `json:"version"`
	Number          string          `json:"number" gorm:"uniqueIndex;not null"`
	HeadResidentID  *string         `json:"head_resident_id,omitempty" gorm:"index"`
	Tenure          string          `json:"tenure"`
	DwellingType    string          `json:"dwelling_type"`
	WaterSource     string          `json:"water_source"`
	ToiletFacility  string          `json:"toilet_facility" gorm:"not null"`
	SanitarySubtype string          `json:"sanitary_subtype"`
	MonthlyIncome   decimal.Decimal `json:"monthly_income" gorm:"type:numeric(14,2)"`
	Address         Address         `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	DeletedAt       *time.Time      `json:"deleted_at,omitempty" gorm:"index"`
}

func (Household) TableName() string {
	return "households"
}

func (h Household) ToDomain(memberCount int) domain.Household {
	return domain.Household{
		ID:              shared.ID(h.ID),
		Version:         shared.Version(h.Version),
		Number:          h.Number,
		HeadResidentID:  idValue(h.HeadResidentID),
		Tenure:          domain.Tenure(h.Tenure),
		DwellingType:    h.DwellingType,
		WaterSource:     h.WaterSource,
		ToiletFacility:  domain.ToiletFacility(h.ToiletFacility),
		SanitarySubtype: domain.SanitarySubtype(h.SanitarySubtype),
		MonthlyIncome:   h.MonthlyIncome,
		Address:         h.Address.ToDomain(),
		MemberCount:     memberCount,
		CreatedAt:       h.CreatedAt,
		UpdatedAt:       h.UpdatedAt,
		DeletedAt:       h.DeletedAt,
	}
}

func FromHousehold(value domain.Household) Household {
	return Household{
		ID:              value.ID.String(),
		Version:         int(value.Version),
		Number:          value.Number,
		HeadResidentID:  nullableID(value.HeadResidentID),
		Tenure:          string(value.Tenure),
		DwellingType:    value.DwellingType,
		WaterSource:     value.WaterSource,
		ToiletFacility:  string(value.ToiletFacility),
		SanitarySubtype: string(value.SanitarySubtype),
		MonthlyIncome:   value.MonthlyIncome,
		Address:         FromAddress(value.Address),
		CreatedAt:       value.CreatedAt,
		UpdatedAt:       value.UpdatedAt,
		DeletedAt:       value.DeletedAt,
	}
}

// MemberCount is the row shape of the per-household resident count query.
type MemberCount struct {
	HouseholdID string
	Total       int
}
