package internal

import (
	"strings"
	"time"

	"profiling-server/internal/infra/utils"
	"profiling-server/internal/registry/domain"
	shared "profiling-server/internal/shared_kernel/domain"
)

type ResidentRequest struct {
	DisplayName           string     `json:"display_name,omitempty"`
	LastName              string     `json:"last_name"`
	FirstName             string     `json:"first_name"`
	MiddleName            string     `json:"middle_name"`
	Suffix                string     `json:"suffix"`
	Sex                   string     `json:"sex" validate:"omitempty,oneof=MALE FEMALE"`
	Birthdate             utils.Date `json:"birthdate"`
	Birthplace            string     `json:"birthplace"`
	CivilStatus           string     `json:"civil_status"`
	Religion              string     `json:"religion"`
	Occupation            string     `json:"occupation"`
	EducationalAttainment string     `json:"educational_attainment"`
	ContactNumber         string     `json:"contact_number" validate:"omitempty,phone"`
	Email                 string     `json:"email" validate:"omitempty,email"`
	PhilHealthNumber      string     `json:"philhealth_number" validate:"omitempty,numeric,len=12"`
	Voter                 bool       `json:"voter"`
	PWD                   bool       `json:"pwd"`
	Address               Address    `json:"address"`
	HouseholdID           string     `json:"household_id"`
	Version               int        `json:"version"`
}

// Name prefers display_name when given, otherwise the separate name parts.
func (r ResidentRequest) Name() (shared.PersonName, error) {
	if strings.TrimSpace(r.DisplayName) != "" {
		return shared.ParsePersonName(r.DisplayName)
	}
	return shared.PersonName{
		LastName:   strings.ToUpper(strings.TrimSpace(r.LastName)),
		FirstName:  strings.ToUpper(strings.TrimSpace(r.FirstName)),
		MiddleName: strings.ToUpper(strings.TrimSpace(r.MiddleName)),
		Suffix:     strings.ToUpper(strings.TrimSpace(r.Suffix)),
	}, nil
}

func (r ResidentRequest) ToDomain(id shared.ID) (domain.Resident, error) {
	name, err := r.Name()
	if err != nil {
		return domain.Resident{}, err
	}

	return domain.Resident{
		ID:                    id,
		Version:               shared.Version(r.Version),
		Name:                  name,
		Sex:                   domain.Sex(r.Sex),
		Birthdate:             r.Birthdate.Time,
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
		HouseholdID:           shared.ID(r.HouseholdID),
	}, nil
}

type ResidentResponse struct {
	ID                    string     `json:"id"`
	Version               int        `json:"version"`
	DisplayName           string     `json:"display_name"`
	LastName              string     `json:"last_name"`
	FirstName             string     `json:"first_name"`
	MiddleName            string     `json:"middle_name,omitempty"`
	Suffix                string     `json:"suffix,omitempty"`
	Sex                   string     `json:"sex"`
	Birthdate             utils.Date `json:"birthdate"`
	Age                   int        `json:"age"`
	Birthplace            string     `json:"birthplace,omitempty"`
	CivilStatus           string     `json:"civil_status,omitempty"`
	Religion              string     `json:"religion,omitempty"`
	Occupation            string     `json:"occupation,omitempty"`
	EducationalAttainment string     `json:"educational_attainment,omitempty"`
	ContactNumber         string     `json:"contact_number,omitempty"`
	Email                 string     `json:"email,omitempty"`
	PhilHealthNumber      string     `json:"philhealth_number,omitempty"`
	Voter                 bool       `json:"voter"`
	PWD                   bool       `json:"pwd"`
	Address               Address    `json:"address"`
	HouseholdID           string     `json:"household_id,omitempty"`
	CreatedAt             utils.Time `json:"created_at"`
	UpdatedAt             utils.Time `json:"updated_at"`
}

func ToResidentResponse(value domain.Resident, now time.Time) ResidentResponse {
	return ResidentResponse{
		ID:                    value.ID.String(),
		Version:               int(value.Version),
		DisplayName:           value.Name.Display(),
		LastName:              value.Name.LastName,
		FirstName:             value.Name.FirstName,
		MiddleName:            value.Name.MiddleName,
		Suffix:                value.Name.Suffix,
		Sex:                   string(value.Sex),
		Birthdate:             utils.Date{Time: value.Birthdate},
		Age:                   value.AgeAt(now),
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
		Address:               ToAddress(value.Address),
		HouseholdID:           value.HouseholdID.String(),
		CreatedAt:             utils.Time{Time: value.CreatedAt},
		UpdatedAt:             utils.Time{Time: value.UpdatedAt},
	}
}

type DuplicateResponse struct {
	Score    float64          `json:"score"`
	Resident ResidentResponse `json:"resident"`
}

func ToDuplicateResponses(matches []domain.DuplicateCandidate, now time.Time) []DuplicateResponse {
	result := make([]DuplicateResponse, len(matches))
	for i, match := range matches {
		result[i] = DuplicateResponse{Score: match.Score, Resident: ToResidentResponse(match.Resident, now)}
	}
	return result
}
