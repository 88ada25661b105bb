package internal

import (
	"time"

	"profiling-server/internal/health/domain"
	"profiling-server/internal/infra/utils"
	shared "profiling-server/internal/shared_kernel/domain"
)

type NCDRecord struct {
	ID                    string     `json:"id" gorm:"primaryKey"`
	Version               int        `json:"version"`
	ResidentID            string     `json:"resident_id" gorm:"index;not null"`
	FamilyID              *string    `json:"family_id,omitempty" gorm:"index"`
	AssessedOn            time.Time  `json:"assessed_on"`
	HeightCM              float64    `json:"height_cm"`
	WeightKG              float64    `json:"weight_kg"`
	BMI                   float64    `json:"bmi"`
	BMICategory           string     `json:"bmi_category"`
	Systolic              int        `json:"systolic"`
	Diastolic             int        `json:"diastolic"`
	BloodPressureCategory string     `json:"blood_pressure_category"`
	Hypertensive          bool       `json:"hypertensive"`
	Diabetic              bool       `json:"diabetic"`
	Smoker                bool       `json:"smoker"`
	AlcoholUse            bool       `json:"alcohol_use"`
	PhysicallyActive      bool       `json:"physically_active"`
	FamilyHistory         string     `json:"family_history"`
	Remarks               string     `json:"remarks"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
	DeletedAt             *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (NCDRecord) TableName() string {
	return "ncd_records"
}

func (r NCDRecord) ToDomain() domain.NCDRecord {
	return domain.NCDRecord{
		ID:                    shared.ID(r.ID),
		Version:               shared.Version(r.Version),
		ResidentID:            shared.ID(r.ResidentID),
		FamilyID:              idValue(r.FamilyID),
		AssessedOn:            r.AssessedOn,
		HeightCM:              r.HeightCM,
		WeightKG:              r.WeightKG,
		BMI:                   r.BMI,
		BMICategory:           domain.BMICategory(r.BMICategory),
		Systolic:              r.Systolic,
		Diastolic:             r.Diastolic,
		BloodPressureCategory: domain.BloodPressureCategory(r.BloodPressureCategory),
		Hypertensive:          r.Hypertensive,
		Diabetic:              r.Diabetic,
		Smoker:                r.Smoker,
		AlcoholUse:            r.AlcoholUse,
		PhysicallyActive:      r.PhysicallyActive,
		FamilyHistory:         r.FamilyHistory,
		Remarks:               r.Remarks,
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
		DeletedAt:             r.DeletedAt,
	}
}

func FromNCDRecord(value domain.NCDRecord) NCDRecord {
	return NCDRecord{
		ID:                    value.ID.String(),
		Version:               int(value.Version),
		ResidentID:            value.ResidentID.String(),
		FamilyID:              nullableID(value.FamilyID),
		AssessedOn:            value.AssessedOn,
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
		CreatedAt:             value.CreatedAt,
		UpdatedAt:             value.UpdatedAt,
		DeletedAt:             value.DeletedAt,
	}
}

func nullableID(id shared.ID) *string {
	return utils.StringPtr(id.String())
}

func idValue(id *string) shared.ID {
	return shared.ID(utils.StringValue(id))
}
