package internal

import (
	"time"

	"profiling-server/internal/registry/domain"
	shared "profiling-server/internal/shared_kernel/domain"
)

type Resident struct {
	ID                    string     `json:"id" gorm:"primaryKey"`
	Version               int        `json:"version"`
	LastName              string     `json:"last_name" gorm:"index;not null"`
	FirstName             string     `json:"first_name" gorm:"not null"`
	MiddleName            string     `json:"middle_name"`
	Suffix                string     `json:"suffix"`
	Sex                   string     `json:"sex" gorm:"not null"`
	Birthdate             time.Time  `json:"birthdate"`
	Birthplace            string     `json:"birthplace"`
	CivilStatus           string     `json:"civil_status"`
	Religion              string     `json:"religion"`
	Occupation            string     `json:"occupation"`
	EducationalAttainment string     `json:"educational_attainment"`
	ContactNumber         string     `json:"contact_number"`
	Email                 string     `json:"email"`
	PhilHealthNumber      string     `json:"philhealth_number"`
	Voter                 bool       `json:"voter"`
	PWD                   bool       `json:"pwd"`
	Address               Address    `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	HouseholdID           *string    `json:"household_id,omitempty" gorm:"index"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
	DeletedAt             *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (Resident) TableName() string {
	return "residents"
}

func (r Resident) ToDomain() domain.Resident {
	return domain.Resident{
		ID:      shared.ID(r.ID),
		Version: shared.Version(r.Version),
		Name: shared.PersonName{
			LastName:   r.LastName,
			FirstName:  r.FirstName,
			MiddleName: r.MiddleName,
			Suffix:     r.Suffix,
		},
		Sex:                   domain.Sex(r.Sex),
		Birthdate:             r.Birthdate,
		Birthplace:            r.Birthplace,
		CivilStatus:           domain.CivilStatus(r.CivilStatus),
		Religion:              r.Religion,
		Occupation:            r.Occupation,
		EducationalAttainment: r.EducationalAttainment,
		ContactNumber:         r.ContactNumber,
		Email:                 r.Email,
		PhilHealthNumber:      r.PhilHealthNumber,
		Voter:                 r.Voter,
		PWD:                   r.PWD,
		Address:               r.Address.ToDomain(),
		HouseholdID:           idValue(r.HouseholdID),
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
		DeletedAt:             r.DeletedAt,
	}
}

func FromResident(value domain.Resident) Resident {
	return Resident{
		ID:                    value.ID.String(),
		Version:               int(value.Version),
		LastName:              value.Name.LastName,
		FirstName:             value.Name.FirstName,
		MiddleName:            value.Name.MiddleName,
		Suffix:                value.Name.Suffix,
		Sex:                   string(value.Sex),
		Birthdate:             value.Birthdate,
		Birthplace:            value.Birthplace,
		CivilStatus:           string(value.CivilStatus),
		Religion:              value.Religion,
		Occupation:            value.Occupation,
		EducationalAttainment: value.EducationalAttainment,
		ContactNumber:         value.ContactNumber,
		Email:                 value.Email,
		PhilHealthNumber:      value.PhilHealthNumber,
		Voter:                 value.Voter,
		PWD:                   value.PWD,
		Address:               FromAddress(value.Address),
		HouseholdID:           nullableID(value.HouseholdID),
		CreatedAt:             value.CreatedAt,
		UpdatedAt:             value.UpdatedAt,
		DeletedAt:             value.DeletedAt,
	}
}
