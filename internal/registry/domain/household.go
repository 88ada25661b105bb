package domain

import (
	"fmt"
	"regexp"
	"time"

	"profiling-server/internal/infra/utils"
	"profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/validation"

	"github.com/shopspring/decimal"
)

type Tenure string

const (
	TenureOwned    Tenure = "OWNED"
	TenureRented   Tenure = "RENTED"
	TenureShared   Tenure = "SHARED"
	TenureInformal Tenure = "INFORMAL"
)

func (t Tenure) IsValid() bool {
	switch t {
	case TenureOwned, TenureRented, TenureShared, TenureInformal:
		return true
	}
	return false
}

type ToiletFacility string

const (
	ToiletSanitary   ToiletFacility = "SANITARY"
	ToiletUnsanitary ToiletFacility = "UNSANITARY"
	ToiletNone       ToiletFacility = "NONE"
)

func (t ToiletFacility) IsValid() bool {
	switch t {
	case ToiletSanitary, ToiletUnsanitary, ToiletNone:
		return true
	}
	return false
}

type SanitarySubtype string

const (
	SanitaryPourFlush      SanitarySubtype = "POUR_FLUSH"
	SanitaryFlushSeptic    SanitarySubtype = "FLUSH_SEPTIC_TANK"
	SanitaryFlushSewer     SanitarySubtype = "FLUSH_SEWERAGE"
	SanitaryVentilatedPit  SanitarySubtype = "VENTILATED_PIT"
	SanitaryCompostingToil SanitarySubtype = "COMPOSTING"
)

func (s SanitarySubtype) IsValid() bool {
	switch s {
	case SanitaryPourFlush, SanitaryFlushSeptic, SanitaryFlushSewer, SanitaryVentilatedPit, SanitaryCompostingToil:
		return true
	}
	return false
}

var householdNumberPattern = regexp.MustCompile(`^HH-\d{4}-\d{6}$`)

func FormatHouseholdNumber(year, sequence int) string {
	return fmt.Sprintf("HH-%04d-%06d", year, sequence)
}

func IsHouseholdNumber(value string) bool {
	return householdNumberPattern.MatchString(value)
}

type Household struct {
	ID              domain.ID
	Version         domain.Version
	Number          string
	HeadResidentID  domain.ID
	Tenure          Tenure
	DwellingType    string
	WaterSource     string
	ToiletFacility  ToiletFacility
	SanitarySubtype SanitarySubtype
	MonthlyIncome   decimal.Decimal
	Address         domain.Address
	MemberCount     int
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}

func (h Household) IsDeleted() bool {
	return h.DeletedAt != nil
}

// Validate enforces that a subtype is given exactly when the toilet
// facility is SANITARY.
func (h Household) Validate() error {
	result := &validation.Error{}

	if h.Tenure != "" && !h.Tenure.IsValid() {
		result.Add("tenure", "oneof")
	}
	if !h.ToiletFacility.IsValid() {
		result.Add("toilet_facility", "oneof")
	}

	switch {
	case h.ToiletFacility == ToiletSanitary && h.SanitarySubtype == "":
		result.Add("sanitary_subtype", "required_if_sanitary")
	case h.ToiletFacility == ToiletSanitary && !h.SanitarySubtype.IsValid():
		result.Add("sanitary_subtype", "oneof")
	case h.ToiletFacility != ToiletSanitary && h.SanitarySubtype != "":
		result.Add("sanitary_subtype", "excluded_unless_sanitary")
	}

	if h.MonthlyIncome.IsNegative() {
		result.Add("monthly_income", "gte")
	}
	if h.Number != "" && !IsHouseholdNumber(h.Number) {
		result.Add("number", "household_number")
	}

	return result.OrNil()
}

func NewHouseholdBuilder() *householdBuilder {
	return &householdBuilder{}
}

type householdBuilder struct {
	actions []householdHandler
}

type householdHandler func(v *Household) error

func (b *householdBuilder) WithHeadResidentID(value domain.ID) *householdBuilder {
	b.actions = append(b.actions, func(h *Household) error {
		h.HeadResidentID = value
		return nil
	})
	return b
}

func (b *householdBuilder) WithTenure(value Tenure) *householdBuilder {
	b.actions = append(b.actions, func(h *Household) error {
		h.Tenure = value
		return nil
	})
	return b
}

func (b *householdBuilder) WithToiletFacility(facility ToiletFacility, subtype SanitarySubtype) *householdBuilder {
	b.actions = append(b.actions, func(h *Household) error {
		h.ToiletFacility = facility
		h.SanitarySubtype = subtype
		return nil
	})
	return b
}

func (b *householdBuilder) WithWaterSource(value string) *householdBuilder {
	b.actions = append(b.actions, func(h *Household) error {
		h.WaterSource = value
		return nil
	})
	return b
}

func (b *householdBuilder) WithDwellingType(value string) *householdBuilder {
	b.actions = append(b.actions, func(h *Household) error {
		h.DwellingType = value
		return nil
	})
	return b
}

func (b *householdBuilder) WithMonthlyIncome(value decimal.Decimal) *householdBuilder {
	b.actions = append(b.actions, func(h *Household) error {
		h.MonthlyIncome = value
		return nil
	})
	return b
}

func (b *householdBuilder) WithAddress(value domain.Address) *householdBuilder {
	b.actions = append(b.actions, func(h *Household) error {
		h.Address = value
		return nil
	})
	return b
}

func (b *householdBuilder) Build() (Household, error) {
	now := time.Now().UTC()
	result := Household{
		ID:             domain.ID(utils.GenerateUUID()),
		Version:        1,
		ToiletFacility: ToiletNone,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Household{}, err
		}
	}
	if err := result.Validate(); err != nil {
		return Household{}, err
	}
	return result, nil
}
