package domain

import (
	"fmt"
	"slices"
	"time"

	"profiling-server/internal/infra/utils"
	"profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/validation"
)

type Symptom string

const (
	SymptomCoughTwoWeeks Symptom = "COUGH_TWO_WEEKS"
	SymptomFever         Symptom = "FEVER"
	SymptomNightSweats   Symptom = "NIGHT_SWEATS"
	SymptomWeightLoss    Symptom = "WEIGHT_LOSS"
	SymptomHemoptysis    Symptom = "HEMOPTYSIS"
)

func (s Symptom) IsValid() bool {
	switch s {
	case SymptomCoughTwoWeeks, SymptomFever, SymptomNightSweats, SymptomWeightLoss, SymptomHemoptysis:
		return true
	}
	return false
}

type XpertResult string

const (
	XpertPending  XpertResult = "PENDING"
	XpertNegative XpertResult = "NEGATIVE"
	XpertPositive XpertResult = "POSITIVE"
	XpertNotDone  XpertResult = "NOT_DONE"
)

func (r XpertResult) IsValid() bool {
	switch r {
	case XpertPending, XpertNegative, XpertPositive, XpertNotDone:
		return true
	}
	return false
}

type TreatmentStatus string

const (
	TreatmentNone      TreatmentStatus = "NONE"
	TreatmentOngoing   TreatmentStatus = "ONGOING"
	TreatmentCompleted TreatmentStatus = "COMPLETED"
	TreatmentDefaulted TreatmentStatus = "DEFAULTED"
)

func (s TreatmentStatus) IsValid() bool {
	switch s {
	case TreatmentNone, TreatmentOngoing, TreatmentCompleted, TreatmentDefaulted:
		return true
	}
	return false
}

type TBRecord struct {
	ID              domain.ID
	Version         domain.Version
	ResidentID      domain.ID
	FamilyID        domain.ID
	ScreenedOn      time.Time
	Symptoms        []Symptom
	Presumptive     bool
	XpertResult     XpertResult
	TreatmentStatus TreatmentStatus
	Remarks         string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}

func (r TBRecord) IsDeleted() bool {
	return r.DeletedAt != nil
}

// Derive marks the record presumptive when any symptom was reported and
// fills defaults for missing result and status.
func (r *TBRecord) Derive() {
	r.Presumptive = len(r.Symptoms) > 0
	if r.XpertResult == "" {
		if r.Presumptive {
			r.XpertResult = XpertPending
		} else {
			r.XpertResult = XpertNotDone
		}
	}
	if r.TreatmentStatus == "" {
		r.TreatmentStatus = TreatmentNone
	}
}

func (r TBRecord) Validate(now time.Time) error {
	result := &validation.Error{}
	if r.ResidentID.IsEmpty() {
		result.Add("resident_id", "required")
	}
	if r.ScreenedOn.IsZero() {
		result.Add("screened_on", "required")
	} else if r.ScreenedOn.After(now) {
		result.Add("screened_on", "not_future")
	}

	for i, symptom := range r.Symptoms {
		field := fmt.Sprintf("symptoms[%d]", i)
		switch {
		case !symptom.IsValid():
			result.Add(field, "oneof")
		case slices.Index(r.Symptoms, symptom) != i:
			result.Add(field, "unique")
		}
	}

	if r.XpertResult != "" && !r.XpertResult.IsValid() {
		result.Add("xpert_result", "oneof")
	}
	if r.TreatmentStatus != "" && !r.TreatmentStatus.IsValid() {
		result.Add("treatment_status", "oneof")
	}
	if r.TreatmentStatus != "" && r.TreatmentStatus != TreatmentNone && r.XpertResult != XpertPositive {
		result.Add("treatment_status", "requires_positive_result")
	}

	return result.OrNil()
}

func NewTBRecordBuilder() *tbRecordBuilder {
	return &tbRecordBuilder{}
}

type tbRecordBuilder struct {
	actions []tbRecordHandler
}

type tbRecordHandler func(v *TBRecord) error

func (b *tbRecordBuilder) WithResidentID(value domain.ID) *tbRecordBuilder {
	b.actions = append(b.actions, func(v *TBRecord) error {
		v.ResidentID = value
		return nil
	})
	return b
}

func (b *tbRecordBuilder) WithFamilyID(value domain.ID) *tbRecordBuilder {
	b.actions = append(b.actions, func(v *TBRecord) error {
		v.FamilyID = value
		return nil
	})
	return b
}

func (b *tbRecordBuilder) WithScreenedOn(value time.Time) *tbRecordBuilder {
	b.actions = append(b.actions, func(v *TBRecord) error {
		v.ScreenedOn = value
		return nil
	})
	return b
}

func (b *tbRecordBuilder) WithSymptoms(values ...Symptom) *tbRecordBuilder {
	b.actions = append(b.actions, func(v *TBRecord) error {
		v.Symptoms = append(v.Symptoms, values...)
		return nil
	})
	return b
}

func (b *tbRecordBuilder) WithXpertResult(value XpertResult) *tbRecordBuilder {
	b.actions = append(b.actions, func(v *TBRecord) error {
		v.XpertResult = value
		return nil
	})
	return b
}

func (b *tbRecordBuilder) WithTreatmentStatus(value TreatmentStatus) *tbRecordBuilder {
	b.actions = append(b.actions, func(v *TBRecord) error {
		v.TreatmentStatus = value
		return nil
	})
	return b
}

func (b *tbRecordBuilder) Build() (TBRecord, error) {
	now := time.Now().UTC()
	result := TBRecord{
		ID:         domain.ID(utils.GenerateUUID()),
		Version:    1,
		ScreenedOn: now.Truncate(24 * time.Hour),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return TBRecord{}, err
		}
	}
	if err := result.Validate(now); err != nil {
		return TBRecord{}, err
	}
	result.Derive()
	return result, nil
}
