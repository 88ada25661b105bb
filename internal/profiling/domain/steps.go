package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	health "profiling-server/internal/health/domain"
	"profiling-server/internal/infra/utils"
	registry "profiling-server/internal/registry/domain"
	shared "profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/validation"

	"github.com/shopspring/decimal"
)

type PersonalInfo struct {
	DisplayName           string     `json:"display_name,omitempty" validate:"omitempty,max=160"`
	LastName              string     `json:"last_name,omitempty" validate:"omitempty,max=60"`
	FirstName             string     `json:"first_name,omitempty" validate:"omitempty,max=60"`
	MiddleName            string     `json:"middle_name,omitempty" validate:"omitempty,max=60"`
	Suffix                string     `json:"suffix,omitempty" validate:"omitempty,max=10"`
	Sex                   string     `json:"sex" validate:"required,oneof=MALE FEMALE"`
	Birthdate             utils.Date `json:"birthdate" validate:"required"`
	Birthplace            string     `json:"birthplace,omitempty"`
	CivilStatus           string     `json:"civil_status,omitempty" validate:"omitempty,oneof=SINGLE MARRIED WIDOWED SEPARATED LIVE_IN ANNULLED"`
	Religion              string     `json:"religion,omitempty"`
	Occupation            string     `json:"occupation,omitempty"`
	EducationalAttainment string     `json:"educational_attainment,omitempty"`
	ContactNumber         string     `json:"contact_number,omitempty" validate:"omitempty,phone"`
	Email                 string     `json:"email,omitempty" validate:"omitempty,email"`
	PhilHealthNumber      string     `json:"philhealth_number,omitempty" validate:"omitempty,numeric,len=12"`
	Voter                 bool       `json:"voter,omitempty"`
	PWD                   bool       `json:"pwd,omitempty"`
}

// Name prefers the "LASTNAME, FIRSTNAME MIDDLENAME" display form.
func (p PersonalInfo) Name() (shared.PersonName, error) {
	if strings.TrimSpace(p.DisplayName) != "" {
		return shared.ParsePersonName(p.DisplayName)
	}
	return shared.PersonName{
		LastName:   strings.ToUpper(strings.TrimSpace(p.LastName)),
		FirstName:  strings.ToUpper(strings.TrimSpace(p.FirstName)),
		MiddleName: strings.ToUpper(strings.TrimSpace(p.MiddleName)),
		Suffix:     strings.ToUpper(strings.TrimSpace(p.Suffix)),
	}, nil
}

func (p PersonalInfo) Validate(now time.Time) error {
	result := &validation.Error{}
	if err := collect(result, validation.Struct(p)); err != nil {
		return err
	}

	name, err := p.Name()
	switch {
	case errors.Is(err, shared.ErrInvalidDisplayName):
		result.Add("display_name", "format")
	case err != nil:
		return err
	default:
		if name.LastName == "" {
			result.Add("last_name", "required")
		}
		if name.FirstName == "" {
			result.Add("first_name", "required")
		}
	}

	if !p.Birthdate.IsZero() && p.Birthdate.After(now) {
		result.Add("birthdate", "not_future")
	}

	return result.OrNil()
}

func (p PersonalInfo) ToResident(id shared.ID, address shared.Address) (registry.Resident, error) {
	name, err := p.Name()
	if err != nil {
		return registry.Resident{}, err
	}
	return registry.Resident{
		ID:                    id,
		Version:               1,
		Name:                  name,
		Sex:                   registry.Sex(p.Sex),
		Birthdate:             p.Birthdate.Time,
		Birthplace:            p.Birthplace,
		CivilStatus:           registry.CivilStatus(p.CivilStatus),
		Religion:              p.Religion,
		Occupation:            p.Occupation,
		EducationalAttainment: p.EducationalAttainment,
		ContactNumber:         p.ContactNumber,
		Email:                 p.Email,
		PhilHealthNumber:      p.PhilHealthNumber,
		Voter:                 p.Voter,
		PWD:                   p.PWD,
		Address:               address,
	}, nil
}

type Address struct {
	Purok        string `json:"purok,omitempty"`
	Street       string `json:"street,omitempty"`
	Barangay     string `json:"barangay" validate:"required"`
	Municipality string `json:"municipality" validate:"required"`
	Province     string `json:"province" validate:"required"`
	Region       string `json:"region,omitempty"`
	ZipCode      string `json:"zip_code,omitempty" validate:"omitempty,numeric,len=4"`
}

func (a Address) Validate() error {
	return validation.Struct(a)
}

func (a Address) ToShared() shared.Address {
	return shared.Address{
		Purok:        a.Purok,
		Street:       a.Street,
		Barangay:     a.Barangay,
		Municipality: a.Municipality,
		Province:     a.Province,
		Region:       a.Region,
		ZipCode:      a.ZipCode,
	}
}

// HouseholdInfo describes a new household, or names an existing one to join.
type HouseholdInfo struct {
	HouseholdID     string          `json:"household_id,omitempty"`
	Tenure          string          `json:"tenure,omitempty"`
	DwellingType    string          `json:"dwelling_type,omitempty"`
	WaterSource     string          `json:"water_source,omitempty"`
	ToiletFacility  string          `json:"toilet_facility,omitempty"`
	SanitarySubtype string          `json:"sanitary_subtype,omitempty"`
	MonthlyIncome   decimal.Decimal `json:"monthly_income"`
}

func (h HouseholdInfo) JoinsExisting() bool {
	return h.HouseholdID != ""
}

func (h HouseholdInfo) Validate() error {
	if h.JoinsExisting() {
		return nil
	}
	return h.ToHousehold("", "", shared.Address{}).Validate()
}

func (h HouseholdInfo) ToHousehold(id, head shared.ID, address shared.Address) registry.Household {
	return registry.Household{
		ID:              id,
		Version:         1,
		HeadResidentID:  head,
		Tenure:          registry.Tenure(h.Tenure),
		DwellingType:    h.DwellingType,
		WaterSource:     h.WaterSource,
		ToiletFacility:  registry.ToiletFacility(h.ToiletFacility),
		SanitarySubtype: registry.SanitarySubtype(h.SanitarySubtype),
		MonthlyIncome:   h.MonthlyIncome,
		Address:         address,
	}
}

type FamilyPath struct {
	Path       Path   `json:"path" validate:"required,oneof=LIVING_SOLO EXISTING_FAMILY NEW_FAMILY"`
	FamilyID   string `json:"family_id,omitempty" validate:"required_if=Path EXISTING_FAMILY"`
	FamilyName string `json:"family_name,omitempty" validate:"omitempty,max=80"`
	Role       string `json:"role,omitempty" validate:"required_unless=Path LIVING_SOLO,omitempty,oneof=FATHER MOTHER SON DAUGHTER DEPENDENT GRANDPARENT GUARDIAN OTHER"`
}

func (f FamilyPath) Validate() error {
	return validation.Struct(f)
}

// RegistrantRole is the role the person filling the form takes in the family.
func (f FamilyPath) RegistrantRole() registry.Role {
	if f.Role == "" {
		return registry.RoleOther
	}
	return registry.Role(f.Role)
}

// Member is either an already registered resident or a new person to register.
type Member struct {
	ResidentID  string     `json:"resident_id,omitempty"`
	DisplayName string     `json:"display_name,omitempty"`
	Sex         string     `json:"sex,omitempty" validate:"omitempty,oneof=MALE FEMALE"`
	Birthdate   utils.Date `json:"birthdate"`
	Role        string     `json:"role" validate:"required,oneof=FATHER MOTHER SON DAUGHTER DEPENDENT GRANDPARENT GUARDIAN OTHER"`
}

func (m Member) IsNew() bool {
	return m.ResidentID == ""
}

type Composition struct {
	Members []Member `json:"members" validate:"dive"`
}

// Validate applies the family rules to the registrant plus the listed
// members: at least one parent, a single father and a single mother, and
// no resident listed twice.
func (c Composition) Validate(registrantRole registry.Role, now time.Time) error {
	result := &validation.Error{}
	if err := collect(result, validation.Struct(c)); err != nil {
		return err
	}

	parents := map[registry.Role]int{}
	if registrantRole.IsParent() {
		parents[registrantRole]++
	}
	seen := map[string]struct{}{}

	for i, member := range c.Members {
		field := fmt.Sprintf("members[%d]", i)
		if member.IsNew() {
			if _, err := shared.ParsePersonName(member.DisplayName); err != nil {
				result.Add(field+".display_name", "format")
			}
			if member.Sex == "" {
				result.Add(field+".sex", "required")
			}
			switch {
			case member.Birthdate.IsZero():
				result.Add(field+".birthdate", "required")
			case member.Birthdate.After(now):
				result.Add(field+".birthdate", "not_future")
			}
		} else {
			if _, dup := seen[member.ResidentID]; dup {
				result.Add(field+".resident_id", "unique")
			}
			seen[member.ResidentID] = struct{}{}
		}

		role := registry.Role(member.Role)
		if role.IsParent() {
			parents[role]++
			if parents[role] > 1 {
				result.Add(field+".role", "single_"+strings.ToLower(member.Role))
			}
		}
	}

	if len(parents) == 0 {
		result.Add("members", "parent_required")
	}

	return result.OrNil()
}

type NCDScreening struct {
	AssessedOn       utils.Date `json:"assessed_on"`
	HeightCM         float64    `json:"height_cm,omitempty"`
	WeightKG         float64    `json:"weight_kg,omitempty"`
	Systolic         int        `json:"systolic,omitempty"`
	Diastolic        int        `json:"diastolic,omitempty"`
	Diabetic         bool       `json:"diabetic,omitempty"`
	Smoker           bool       `json:"smoker,omitempty"`
	AlcoholUse       bool       `json:"alcohol_use,omitempty"`
	PhysicallyActive bool       `json:"physically_active,omitempty"`
	FamilyHistory    string     `json:"family_history,omitempty"`
	Remarks          string     `json:"remarks,omitempty"`
}

func (n NCDScreening) ToRecord(id, resident, family shared.ID) health.NCDRecord {
	return health.NCDRecord{
		ID:               id,
		Version:          1,
		ResidentID:       resident,
		FamilyID:         family,
		AssessedOn:       n.AssessedOn.Time,
		HeightCM:         n.HeightCM,
		WeightKG:         n.WeightKG,
		Systolic:         n.Systolic,
		Diastolic:        n.Diastolic,
		Diabetic:         n.Diabetic,
		Smoker:           n.Smoker,
		AlcoholUse:       n.AlcoholUse,
		PhysicallyActive: n.PhysicallyActive,
		FamilyHistory:    n.FamilyHistory,
		Remarks:          n.Remarks,
	}
}

type TBScreening struct {
	ScreenedOn      utils.Date `json:"screened_on"`
	Symptoms        []string   `json:"symptoms,omitempty"`
	XpertResult     string     `json:"xpert_result,omitempty"`
	TreatmentStatus string     `json:"treatment_status,omitempty"`
	Remarks         string     `json:"remarks,omitempty"`
}

func (t TBScreening) ToRecord(id, resident, family shared.ID) health.TBRecord {
	symptoms := make([]health.Symptom, len(t.Symptoms))
	for i, s := range t.Symptoms {
		symptoms[i] = health.Symptom(s)
	}
	return health.TBRecord{
		ID:              id,
		Version:         1,
		ResidentID:      resident,
		FamilyID:        family,
		ScreenedOn:      t.ScreenedOn.Time,
		Symptoms:        symptoms,
		XpertResult:     health.XpertResult(t.XpertResult),
		TreatmentStatus: health.TreatmentStatus(t.TreatmentStatus),
		Remarks:         t.Remarks,
	}
}

// Health holds the optional screenings taken during the visit.
type Health struct {
	NCD *NCDScreening `json:"ncd,omitempty"`
	TB  *TBScreening  `json:"tb,omitempty"`
}

// placeholder subject so record rules can run before the resident exists
const _pendingSubject shared.ID = "pending"

func (h Health) Validate(now time.Time) error {
	result := &validation.Error{}
	if h.NCD != nil {
		err := h.NCD.ToRecord("", _pendingSubject, "").Validate(now)
		if err := collectNested(result, err, "ncd"); err != nil {
			return err
		}
	}
	if h.TB != nil {
		err := h.TB.ToRecord("", _pendingSubject, "").Validate(now)
		if err := collectNested(result, err, "tb"); err != nil {
			return err
		}
	}
	return result.OrNil()
}

// collect merges field errors into result and returns anything else.
func collect(result *validation.Error, err error) error {
	if err == nil {
		return nil
	}
	if verr, ok := validation.IsValidationError(err); ok {
		result.Merge(verr)
		return nil
	}
	return err
}

func collectNested(result *validation.Error, err error, prefix string) error {
	if err == nil {
		return nil
	}
	if verr, ok := validation.IsValidationError(err); ok {
		result.Merge(verr.Nest(prefix))
		return nil
	}
	return err
}
