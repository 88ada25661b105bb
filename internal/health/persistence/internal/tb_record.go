package internal

import (
	"time"

	"profiling-server/internal/health/domain"
	shared "profiling-server/internal/shared_kernel/domain"
)

type TBRecord struct {
	ID              string     `json:"id" gorm:"primaryKey"`
	Version         int        `json:"version"`
	ResidentID      string     `json:"resident_id" gorm:"index;not null"`
	FamilyID        *string    `json:"family_id,omitempty" gorm:"index"`
	ScreenedOn      time.Time  `json:"screened_on"`
	Symptoms        []string   `json:"symptoms" gorm:"serializer:json"`
	Presumptive     bool       `json:"presumptive" gorm:"index"`
	XpertResult     string     `json:"xpert_result"`
	TreatmentStatus string     `json:"treatment_status"`
	Remarks         string     `json:"remarks"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (TBRecord) TableName() string {
	return "tb_records"
}

func (r TBRecord) ToDomain() domain.TBRecord {
	symptoms := make([]domain.Symptom, len(r.Symptoms))
	for i, symptom := range r.Symptoms {
		symptoms[i] = domain.Symptom(symptom)
	}

	return domain.TBRecord{
		ID:              shared.ID(r.ID),
		Version:         shared.Version(r.Version),
		ResidentID:      shared.ID(r.ResidentID),
		FamilyID:        idValue(r.FamilyID),
		ScreenedOn:      r.ScreenedOn,
		Symptoms:        symptoms,
		Presumptive:     r.Presumptive,
		XpertResult:     domain.XpertResult(r.XpertResult),
		TreatmentStatus: domain.TreatmentStatus(r.TreatmentStatus),
		Remarks:         r.Remarks,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
		DeletedAt:       r.DeletedAt,
	}
}

func FromTBRecord(value domain.TBRecord) TBRecord {
	symptoms := make([]string, len(value.Symptoms))
	for i, symptom := range value.Symptoms {
		symptoms[i] = string(symptom)
	}

	return TBRecord{
		ID:              value.ID.String(),
		Version:         int(value.Version),
		ResidentID:      value.ResidentID.String(),
		FamilyID:        nullableID(value.FamilyID),
		ScreenedOn:      value.ScreenedOn,
		Symptoms:        symptoms,
		Presumptive:     value.Presumptive,
		XpertResult:     string(value.XpertResult),
		TreatmentStatus: string(value.TreatmentStatus),
		Remarks:         value.Remarks,
		CreatedAt:       value.CreatedAt,
		UpdatedAt:       value.UpdatedAt,
		DeletedAt:       value.DeletedAt,
	}
}
