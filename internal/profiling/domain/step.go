package domain

import (
	"errors"
	"strconv"
	"strings"
)

type Step int

const (
	StepPersonalInfo Step = iota
	StepAddress
	StepHousehold
	StepFamilyPath
	StepFamilyComposition
	StepHealth
	StepReview
)

var stepNames = [...]string{
	StepPersonalInfo:      "PERSONAL_INFO",
	StepAddress:           "ADDRESS",
	StepHousehold:         "HOUSEHOLD",
	StepFamilyPath:        "FAMILY_PATH",
	StepFamilyComposition: "FAMILY_COMPOSITION",
	StepHealth:            "HEALTH",
	StepReview:            "REVIEW",
}

var ErrUnknownStep = errors.New("unknown step")

func (s Step) IsValid() bool {
	return s >= StepPersonalInfo && s <= StepReview
}

func (s Step) String() string {
	if !s.IsValid() {
		return "UNKNOWN"
	}
	return stepNames[s]
}

// Field is the key step-level errors are reported under.
func (s Step) Field() string {
	return strings.ToLower(s.String())
}

// ParseStep accepts the step index or its name in any case.
func ParseStep(value string) (Step, error) {
	if index, err := strconv.Atoi(value); err == nil {
		step := Step(index)
		if !step.IsValid() {
			return 0, ErrUnknownStep
		}
		return step, nil
	}

	for i, name := range stepNames {
		if strings.EqualFold(name, value) {
			return Step(i), nil
		}
	}
	return 0, ErrUnknownStep
}

type Path string

const (
	PathUnset          Path = "UNSET"
	PathLivingSolo     Path = "LIVING_SOLO"
	PathExistingFamily Path = "EXISTING_FAMILY"
	PathNewFamily      Path = "NEW_FAMILY"
)

// SkipsComposition is true for paths that never collect family members.
func (p Path) SkipsComposition() bool {
	return p == PathLivingSolo || p == PathExistingFamily
}

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusSubmitted Status = "SUBMITTED"
	StatusFailed    Status = "FAILED"
)
