package domain

import (
	"math"
	"time"

	"profiling-server/internal/infra/utils"
	"profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/validation"
)

type BMICategory string

// WHO cut-offs for Asian populations.
const (
	BMIUnknown     BMICategory = ""
	BMIUnderweight BMICategory = "UNDERWEIGHT"
	BMINormal      BMICategory = "NORMAL"
	BMIOverweight  BMICategory = "OVERWEIGHT"
	BMIObese       BMICategory = "OBESE"
)

type BloodPressureCategory string

const (
	BloodPressureUnknown  BloodPressureCategory = ""
	BloodPressureNormal   BloodPressureCategory = "NORMAL"
	BloodPressureElevated BloodPressureCategory = "ELEVATED"
	BloodPressureStage1   BloodPressureCategory = "STAGE_1"
	BloodPressureStage2   BloodPressureCategory = "STAGE_2"
)

type NCDRecord struct {
	ID                    domain.ID
	Version               domain.Version
	ResidentID            domain.ID
	FamilyID              domain.ID
	AssessedOn            time.Time
	HeightCM              float64
	WeightKG              float64
	BMI                   float64
	BMICategory           BMICategory
	Systolic              int
	Diastolic             int
	BloodPressureCategory BloodPressureCategory
	Hypertensive          bool
	Diabetic              bool
	Smoker                bool
	AlcoholUse            bool
	PhysicallyActive      bool
	FamilyHistory         string
	Remarks               string
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             *time.Time
}

func (r NCDRecord) IsDeleted() bool {
	return r.DeletedAt != nil
}

// ComputeBMI returns weight over height squared rounded to one decimal, or
// zero when either measure is missing.
func ComputeBMI(heightCM, weightKG float64) float64 {
	if heightCM <= 0 || weightKG <= 0 {
		return 0
	}
	meters := heightCM / 100
	return math.Round(weightKG/(meters*meters)*10) / 10
}

func ClassifyBMI(bmi float64) BMICategory {
	switch {
	case bmi <= 0:
		return BMIUnknown
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 23:
		return BMINormal
	case bmi < 25:
		return BMIOverweight
	default:
		return BMIObese
	}
}

func ClassifyBloodPressure(systolic, diastolic int) BloodPressureCategory {
	switch {
	case systolic <= 0 || diastolic <= 0:
		return BloodPressureUnknown
	case systolic >= 140 || diastolic >= 90:
		return BloodPressureStage2
	case systolic >= 130 || diastolic >= 80:
		return BloodPressureStage1
	case systolic >= 120:
		return BloodPressureElevated
	default:
		return BloodPressureNormal
	}
}

// Derive fills the computed fields. A stage 2 reading marks the record
// hypertensive even when the flag was not reported.
func (r *NCDRecord) Derive() {
	r.BMI = ComputeBMI(r.HeightCM, r.WeightKG)
	r.BMICategory = ClassifyBMI(r.BMI)
	r.BloodPressureCategory = ClassifyBloodPressure(r.Systolic, r.Diastolic)
	if r.BloodPressureCategory == BloodPressureStage2 {
		r.Hypertensive = true
	}
}

func (r NCDRecord) Validate(now time.Time) error {
	result := &validation.Error{}
	if r.ResidentID.IsEmpty() {
		result.Add("resident_id", "required")
	}
	if r.AssessedOn.IsZero() {
		result.Add("assessed_on", "required")
	} else if r.AssessedOn.After(now) {
		result.Add("assessed_on", "not_future")
	}
	if r.HeightCM != 0 && (r.HeightCM < 30 || r.HeightCM > 250) {
		result.Add("height_cm", "range")
	}
	if r.WeightKG != 0 && (r.WeightKG < 1 || r.WeightKG > 350) {
		result.Add("weight_kg", "range")
	}

	switch {
	case r.Systolic == 0 && r.Diastolic == 0:
	case r.Systolic == 0:
		result.Add("systolic", "required_with")
	case r.Diastolic == 0:
		result.Add("diastolic", "required_with")
	case r.Systolic < 60 || r.Systolic > 300:
		result.Add("systolic", "range")
	case r.Diastolic < 30 || r.Diastolic > 200:
		result.Add("diastolic", "range")
	case r.Systolic <= r.Diastolic:
		result.Add("systolic", "gtfield")
	}

	return result.OrNil()
}

func NewNCDRecordBuilder() *ncdRecordBuilder {
	return &ncdRecordBuilder{}
}

type ncdRecordBuilder struct {
	actions []ncdRecordHandler
}

type ncdRecordHandler func(v *NCDRecord) error

func (b *ncdRecordBuilder) WithResidentID(value domain.ID) *ncdRecordBuilder {
	b.actions = append(b.actions, func(v *NCDRecord) error {
		v.ResidentID = value
		return nil
	})
	return b
}

func (b *ncdRecordBuilder) WithFamilyID(value domain.ID) *ncdRecordBuilder {
	b.actions = append(b.actions, func(v *NCDRecord) error {
		v.FamilyID = value
		return nil
	})
	return b
}

func (b *ncdRecordBuilder) WithAssessedOn(value time.Time) *ncdRecordBuilder {
	b.actions = append(b.actions, func(v *NCDRecord) error {
		v.AssessedOn = value
		return nil
	})
	return b
}

func (b *ncdRecordBuilder) WithMeasurements(heightCM, weightKG float64) *ncdRecordBuilder {
	b.actions = append(b.actions, func(v *NCDRecord) error {
		v.HeightCM = heightCM
		v.WeightKG = weightKG
		return nil
	})
	return b
}

func (b *ncdRecordBuilder) WithBloodPressure(systolic, diastolic int) *ncdRecordBuilder {
	b.actions = append(b.actions, func(v *NCDRecord) error {
		v.Systolic = systolic
		v.Diastolic = diastolic
		return nil
	})
	return b
}

func (b *ncdRecordBuilder) WithConditions(hypertensive, diabetic bool) *ncdRecordBuilder {
	b.actions = append(b.actions, func(v *NCDRecord) error {
		v.Hypertensive = hypertensive
		v.Diabetic = diabetic
		return nil
	})
	return b
}

func (b *ncdRecordBuilder) WithLifestyle(smoker, alcoholUse, physicallyActive bool) *ncdRecordBuilder {
	b.actions = append(b.actions, func(v *NCDRecord) error {
		v.Smoker = smoker
		v.AlcoholUse = alcoholUse
		v.PhysicallyActive = physicallyActive
		return nil
	})
	return b
}

func (b *ncdRecordBuilder) Build() (NCDRecord, error) {
	now := time.Now().UTC()
	result := NCDRecord{
		ID:         domain.ID(utils.GenerateUUID()),
		Version:    1,
		AssessedOn: now.Truncate(24 * time.Hour),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return NCDRecord{}, err
		}
	}
	if err := result.Validate(now); err != nil {
		return NCDRecord{}, err
	}
	result.Derive()
	return result, nil
}
