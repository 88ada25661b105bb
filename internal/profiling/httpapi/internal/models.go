package internal

import (
	"time"

	"profiling-server/internal/profiling/domain"
)

type SessionResponse struct {
	ID           string           `json:"id"`
	Version      int              `json:"version"`
	AccountID    string           `json:"account_id,omitempty"`
	CurrentStep  string           `json:"current_step"`
	StepIndex    int              `json:"step_index"`
	VisibleSteps []string         `json:"visible_steps"`
	Path         string           `json:"path"`
	Status       string           `json:"status"`
	Draft        domain.Draft     `json:"draft"`
	Resources    domain.Resources `json:"resources"`
	LastError    string           `json:"last_error,omitempty"`
	SubmittedAt  *time.Time       `json:"submitted_at,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func ToSessionResponse(value domain.Session) SessionResponse {
	visible := value.VisibleSteps()
	steps := make([]string, len(visible))
	for i, step := range visible {
		steps[i] = step.String()
	}

	return SessionResponse{
		ID:           value.ID.String(),
		Version:      int(value.Version),
		AccountID:    value.AccountID.String(),
		CurrentStep:  value.CurrentStep.String(),
		StepIndex:    int(value.CurrentStep),
		VisibleSteps: steps,
		Path:         string(value.Path),
		Status:       string(value.Status),
		Draft:        value.Draft,
		Resources:    value.Resources,
		LastError:    value.LastError,
		SubmittedAt:  value.SubmittedAt,
		CreatedAt:    value.CreatedAt,
		UpdatedAt:    value.UpdatedAt,
	}
}

// SubmissionFailedResponse carries the failed session so the client can
// show the error next to the review screen.
type SubmissionFailedResponse struct {
	Error   string          `json:"error"`
	Session SessionResponse `json:"session"`
}

// NewStepPayload returns a pointer to the payload type a step accepts.
func NewStepPayload(step domain.Step) (any, bool) {
	switch step {
	case domain.StepPersonalInfo:
		return &domain.PersonalInfo{}, true
	case domain.StepAddress:
		return &domain.Address{}, true
	case domain.StepHousehold:
		return &domain.HouseholdInfo{}, true
	case domain.StepFamilyPath:
		return &domain.FamilyPath{}, true
	case domain.StepFamilyComposition:
		return &domain.Composition{}, true
	case domain.StepHealth:
		return &domain.Health{}, true
	}
	return nil, false
}

// Deref turns the decoded pointer back into the value the session stores.
func Deref(payload any) any {
	switch p := payload.(type) {
	case *domain.PersonalInfo:
		return *p
	case *domain.Address:
		return *p
	case *domain.HouseholdInfo:
		return *p
	case *domain.FamilyPath:
		return *p
	case *domain.Composition:
		return *p
	case *domain.Health:
		return *p
	}
	return payload
}
