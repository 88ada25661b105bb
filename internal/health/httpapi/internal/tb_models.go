package internal

import (
	"profiling-server/internal/health/domain"
	"profiling-server/internal/infra/utils"
	shared "profiling-server/internal/shared_kernel/domain"
)

type TBRecordRequest struct {
	ResidentID      string     `json:"resident_id" validate:"required"`
	FamilyID        string     `json:"family_id"`
	ScreenedOn      utils.Date `json:"screened_on"`
	Symptoms        []string   `json:"symptoms" validate:"max=5"`
	XpertResult     string     `json:"xpert_result"`
	TreatmentStatus string     `json:"treatment_status"`
	Remarks         string     `json:"remarks" validate:"max=1000"`
	Version         int        `json:"version"`
}

func (r TBRecordRequest) ToDomain(id shared.ID) domain.TBRecord {
	symptoms := make([]domain.Symptom, len(r.Symptoms))
	for i, symptom := range r.Symptoms {
		symptoms[i] = domain.Symptom(symptom)
	}

	return domain.TBRecord{
		ID:              id,
		Version:         shared.Version(r.Version),
		ResidentID:      shared.ID(r.ResidentID),
		FamilyID:        shared.ID(r.FamilyID),
		ScreenedOn:      r.ScreenedOn.Time,
		Symptoms:        symptoms,
		XpertResult:     domain.XpertResult(r.XpertResult),
		TreatmentStatus: domain.TreatmentStatus(r.TreatmentStatus),
		Remarks:         r.Remarks,
	}
}

type TBRecordResponse struct {
	ID              string     `json:"id"`
	Version         int        `json:"version"`
	ResidentID      string     `json:"resident_id"`
	FamilyID        string     `json:"family_id,omitempty"`
	ScreenedOn      utils.Date `json:"screened_on"`
	Symptoms        []string   `json:"symptoms"`
	Presumptive     bool       `json:"presumptive"`
	XpertResult     string     `json:"xpert_result"`
	TreatmentStatus string     `json:"treatment_status"`
	Remarks         string     `json:"remarks,omitempty"`
	CreatedAt       utils.Time `json:"created_at"`
	UpdatedAt       utils.Time `json:"updated_at"`
}

func ToTBRecordResponse(value domain.TBRecord) TBRecordResponse {
	symptoms := make([]string, len(value.Symptoms))
	for i, symptom := range value.Symptoms {
		symptoms[i] = string(symptom)
	}

	return TBRecordResponse{
		ID:              value.ID.String(),
		Version:         int(value.Version),
		ResidentID:      value.ResidentID.String(),
		FamilyID:        value.FamilyID.String(),
		ScreenedOn:      utils.Date{Time: value.ScreenedOn},
		Symptoms:        symptoms,
		Presumptive:     value.Presumptive,
		XpertResult:     string(value.XpertResult),
		TreatmentStatus: string(value.TreatmentStatus),
		Remarks:         value.Remarks,
		CreatedAt:       utils.Time{Time: value.CreatedAt},
		UpdatedAt:       utils.Time{Time: value.UpdatedAt},
	}
}
