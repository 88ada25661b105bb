package internal

import (
	"profiling-server/internal/health/domain"
	"profiling-server/internal/infra/utils"
	shared "profiling-server/internal/shared_kernel/domain"
)

type NCDRecordRequest struct {
	ResidentID       string     `json:"resident_id" validate:"required"`
	FamilyID         string     `json:"family_id"`
	AssessedOn       utils.Date `json:"assessed_on"`
	HeightCM         float64    `json:"height_cm" validate:"gte=0"`
	WeightKG         float64    `json:"weight_kg" validate:"gte=0"`
	Systolic         int        `json:"systolic" validate:"gte=0"`
	Diastolic        int        `json:"diastolic" validate:"gte=0"`
	Hypertensive     bool       `json:"hypertensive"`
	Diabetic         bool       `json:"diabetic"`
	Smoker           bool       `json:"smoker"`
	AlcoholUse       bool       `json:"alcohol_use"`
	PhysicallyActive bool       `json:"physically_active"`
	FamilyHistory    string     `json:"family_history"`
	Remarks          string     `json:"remarks" validate:"max=1000"`
	Version          int        `json:"version"`
}

func (r NCDRecordRequest) ToDomain(id shared.ID) domain.NCDRecord {
	return domain.NCDRecord{
		ID:               id,
		Version:          shared.Version(r.Version),
		ResidentID:       shared.ID(r.ResidentID),
		FamilyID:         shared.ID(r.FamilyID),
		AssessedOn:       r.AssessedOn.Time,
		HeightCM:         r.HeightCM,
		WeightKG:         r.WeightKG,
		Systolic:         r.Systolic,
		Diastolic:        r.Diastolic,
		Hypertensive:     r.Hypertensive,
		Diabetic:         r.Diabetic,
		Smoker:           r.Smoker,
		AlcoholUse:       r.AlcoholUse,
		PhysicallyActive: r.PhysicallyActive,
		FamilyHistory:    r.FamilyHistory,
		Remarks:          r.Remarks,
	}
}

type NCDRecordResponse struct {
	ID                    string     `json:"id"`
	Version               int        `json:"version"`
	ResidentID            string     `json:"resident_id"`
	FamilyID              string     `json:"family_id,omitempty"`
	AssessedOn            utils.Date `json:"assessed_on"`
	HeightCM              float64    `json:"height_cm"`
	WeightKG              float64    `json:"weight_kg"`
	BMI                   float64    `json:"bmi"`
	BMICategory           string     `json:"bmi_category,omitempty"`
	Systolic              int        `json:"systolic"`
	Diastolic             int        `json:"diastolic"`
	BloodPressureCategory string     `json:"blood_pressure_category,omitempty"`
	Hypertensive          bool       `json:"hypertensive"`
	Diabetic              bool       `json:"diabetic"`
	Smoker                bool       `json:"smoker"`
	AlcoholUse            bool       `json:"alcohol_use"`
	PhysicallyActive      bool       `json:"physically_active"`
	FamilyHistory         string     `json:"family_history,omitempty"`
	Remarks               string     `json:"remarks,omitempty"`
	CreatedAt             utils.Time `json:"created_at"`
	UpdatedAt             utils.Time `json:"updated_at"`
}

func ToNCDRecordResponse(value domain.NCDRecord) NCDRecordResponse {
	return NCDRecordResponse{
		ID:                    value.ID.String(),
		Version:               int(value.Version),
		ResidentID:            value.ResidentID.String(),
		FamilyID:              value.FamilyID.String(),
		AssessedOn:            utils.Date{Time: value.AssessedOn},
		HeightCM:              value.HeightCM,
		WeightKG:              value.WeightKG,
		BMI:                   value.BMI,
		BMICategory:           string(value.BMICategory),
		Systolic:              value.Systolic,
		Diastolic:             value.Diastolic,
		BloodPressureCategory: string(value.BloodPressureCategory),
		Hypertensive:          value.Hypertensive,
		Diabetic:              value.Diabetic,
		Smoker:                value.Smoker,
		AlcoholUse:            value.AlcoholUse,
		PhysicallyActive:      value.PhysicallyActive,
		FamilyHistory:         value.FamilyHistory,
		Remarks:               value.Remarks,
		CreatedAt:             utils.Time{Time: value.CreatedAt},
		UpdatedAt:             utils.Time{Time: value.UpdatedAt},
	}
}
