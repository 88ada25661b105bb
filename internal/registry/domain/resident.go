package domain

import (
	"strings"
	"time"

	"profiling-server/internal/infra/utils"
	"profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/validation"
)

type Sex string

const (
	SexMale   Sex = "MALE"
	SexFemale Sex = "FEMALE"
)

func (s Sex) IsValid() bool {
	return s == SexMale || s == SexFemale
}

type CivilStatus string

const (
	CivilStatusSingle    CivilStatus = "SINGLE"
	CivilStatusMarried   CivilStatus = "MARRIED"
	CivilStatusWidowed   CivilStatus = "WIDOWED"
	CivilStatusSeparated CivilStatus = "SEPARATED"
	CivilStatusLiveIn    CivilStatus = "LIVE_IN"
	CivilStatusAnnulled  CivilStatus = "ANNULLED"
)

func (c CivilStatus) IsValid() bool {
	switch c {
	case CivilStatusSingle, CivilStatusMarried, CivilStatusWidowed,
		CivilStatusSeparated, CivilStatusLiveIn, CivilStatusAnnulled:
		return true
	}
	return false
}

type Resident struct {
	ID                    domain.ID
	Version               domain.Version
	Name                  domain.PersonName
	Sex                   Sex
	Birthdate             time.Time
	Birthplace            string
	CivilStatus           CivilStatus
	Religion              string
	Occupation            string
	EducationalAttainment string
	ContactNumber         string
	Email                 string
	PhilHealthNumber      string
	Voter                 bool
	PWD                   bool
	Address               domain.Address
	HouseholdID           domain.ID
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             *time.Time
}

func (r Resident) AgeAt(at time.Time) int {
	return domain.AgeAt(r.Birthdate, at)
}

func (r Resident) IsDeleted() bool {
	return r.DeletedAt != nil
}

// Validate checks the rules a resident must satisfy before it is stored.
// The contact number is normalized to E.164 as a side effect.
func (r *Resident) Validate(now time.Time) error {
	result := &validation.Error{}

	if strings.TrimSpace(r.Name.LastName) == "" {
		result.Add("last_name", "required")
	}
	if strings.TrimSpace(r.Name.FirstName) == "" {
		result.Add("first_name", "required")
	}
	if !r.Sex.IsValid() {
		result.Add("sex", "oneof")
	}
	switch {
	case r.Birthdate.IsZero():
		result.Add("birthdate", "required")
	case r.Birthdate.After(now):
		result.Add("birthdate", "not_future")
	}
	if r.CivilStatus != "" && !r.CivilStatus.IsValid() {
		result.Add("civil_status", "oneof")
	}
	if r.ContactNumber != "" {
		if err := validation.ValidatePhoneNumber(r.ContactNumber, validation.DefaultRegion); err != nil {
			result.Add("contact_number", "phone")
		} else if formatted, err := validation.FormatPhoneNumber(r.ContactNumber, validation.DefaultRegion); err == nil {
			r.ContactNumber = formatted
		}
	}

	return result.OrNil()
}

func NewResidentBuilder() *residentBuilder {
	return &residentBuilder{}
}

type residentBuilder struct {
	actions []residentHandler
}

type residentHandler func(v *Resident) error

func (b *residentBuilder) WithName(value domain.PersonName) *residentBuilder {
	b.actions = append(b.actions, func(r *Resident) error {
		r.Name = value
		return nil
	})
	return b
}

// WithDisplayName parses "LASTNAME, FIRSTNAME MIDDLENAME".
func (b *residentBuilder) WithDisplayName(value string) *residentBuilder {
	b.actions = append(b.actions, func(r *Resident) error {
		name, err := domain.ParsePersonName(value)
		if err != nil {
			return err
		}
		r.Name = name
		return nil
	})
	return b
}

func (b *residentBuilder) WithSex(value Sex) *residentBuilder {
	b.actions = append(b.actions, func(r *Resident) error {
		r.Sex = value
		return nil
	})
	return b
}

func (b *residentBuilder) WithBirthdate(value time.Time) *residentBuilder {
	b.actions = append(b.actions, func(r *Resident) error {
		r.Birthdate = value
		return nil
	})
	return b
}

func (b *residentBuilder) WithCivilStatus(value CivilStatus) *residentBuilder {
	b.actions = append(b.actions, func(r *Resident) error {
		r.CivilStatus = value
		return nil
	})
	return b
}

func (b *residentBuilder) WithContactNumber(value string) *residentBuilder {
	b.actions = append(b.actions, func(r *Resident) error {
		r.ContactNumber = value
		return nil
	})
	return b
}

func (b *residentBuilder) WithAddress(value domain.Address) *residentBuilder {
	b.actions = append(b.actions, func(r *Resident) error {
		r.Address = value
		return nil
	})
	return b
}

func (b *residentBuilder) WithHouseholdID(value domain.ID) *residentBuilder {
	b.actions = append(b.actions, func(r *Resident) error {
		r.HouseholdID = value
		return nil
	})
	return b
}

func (b *residentBuilder) Build() (Resident, error) {
	now := time.Now().UTC()
	result := Resident{
		ID:        domain.ID(utils.GenerateUUID()),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Resident{}, err
		}
	}
	if err := result.Validate(now); err != nil {
		return Resident{}, err
	}
	return result, nil
}
