package domain

import (
	"errors"
	"time"

	"profiling-server/internal/infra/utils"
	registry "profiling-server/internal/registry/domain"
	"profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/validation"
)

var (
	ErrSessionClosed    = errors.New("session was already submitted")
	ErrStepNotReached   = errors.New("step was not reached yet")
	ErrStepSkipped      = errors.New("step is skipped for the chosen family path")
	ErrStepHasNoPayload = errors.New("step has no payload")
	ErrNoNextStep       = errors.New("already at the last step")
	ErrNoPreviousStep   = errors.New("already at the first step")
	ErrNotAtReview      = errors.New("session can only be submitted from the review step")
	ErrPayloadMismatch  = errors.New("payload does not belong to the step")
)

// Draft keeps what each step collected. Steps not reached yet are nil.
type Draft struct {
	PersonalInfo *PersonalInfo  `json:"personal_info,omitempty"`
	Address      *Address       `json:"address,omitempty"`
	Household    *HouseholdInfo `json:"household,omitempty"`
	FamilyPath   *FamilyPath    `json:"family_path,omitempty"`
	Composition  *Composition   `json:"composition,omitempty"`
	Health       *Health        `json:"health,omitempty"`
}

// Resources lists what a submission created, in creation order.
type Resources struct {
	ResidentID       domain.ID   `json:"resident_id,omitempty"`
	HouseholdID      domain.ID   `json:"household_id,omitempty"`
	FamilyID         domain.ID   `json:"family_id,omitempty"`
	MemberIDs        []domain.ID `json:"member_ids,omitempty"`
	NCDRecordID      domain.ID   `json:"ncd_record_id,omitempty"`
	TBRecordID       domain.ID   `json:"tb_record_id,omitempty"`
	CreatedHousehold bool        `json:"created_household,omitempty"`
	CreatedFamily    bool        `json:"created_family,omitempty"`
}

type Session struct {
	ID          domain.ID
	Version     domain.Version
	AccountID   domain.ID
	CurrentStep Step
	Path        Path
	Status      Status
	Draft       Draft
	Resources   Resources
	LastError   string
	SubmittedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (s Session) IsOpen() bool {
	return s.Status != StatusSubmitted
}

// IsVisible reports whether step is part of the flow for the chosen path.
func (s Session) IsVisible(step Step) bool {
	if step == StepFamilyComposition {
		return !s.Path.SkipsComposition()
	}
	return step.IsValid()
}

func (s Session) VisibleSteps() []Step {
	result := make([]Step, 0, int(StepReview)+1)
	for step := StepPersonalInfo; step <= StepReview; step++ {
		if s.IsVisible(step) {
			result = append(result, step)
		}
	}
	return result
}

// SaveStep stores the payload of a reached, visible step after validating it.
// Choosing a path that skips the composition drops any saved members.
func (s *Session) SaveStep(step Step, payload any, now time.Time) error {
	if !s.IsOpen() {
		return ErrSessionClosed
	}
	if !step.IsValid() {
		return ErrUnknownStep
	}
	if step == StepReview {
		return ErrStepHasNoPayload
	}
	if step > s.CurrentStep {
		return ErrStepNotReached
	}
	if !s.IsVisible(step) {
		return ErrStepSkipped
	}

	if err := s.validatePayload(step, payload, now); err != nil {
		return err
	}

	switch p := payload.(type) {
	case PersonalInfo:
		s.Draft.PersonalInfo = &p
	case Address:
		s.Draft.Address = &p
	case HouseholdInfo:
		s.Draft.Household = &p
	case FamilyPath:
		s.Draft.FamilyPath = &p
		s.Path = p.Path
		if s.Path.SkipsComposition() {
			s.Draft.Composition = nil
		}
		if !s.IsVisible(s.CurrentStep) {
			s.CurrentStep = StepFamilyPath
		}
	case Composition:
		s.Draft.Composition = &p
	case Health:
		s.Draft.Health = &p
	}

	s.touch(now)
	return nil
}

// Next moves to the following visible step once the current one validates.
func (s *Session) Next(now time.Time) error {
	if !s.IsOpen() {
		return ErrSessionClosed
	}
	if s.CurrentStep == StepReview {
		return ErrNoNextStep
	}
	if err := s.ValidateStep(s.CurrentStep, now); err != nil {
		return err
	}

	next := s.CurrentStep + 1
	for !s.IsVisible(next) {
		next++
	}
	s.CurrentStep = next
	s.touch(now)
	return nil
}

// Back moves to the previous visible step without validating.
func (s *Session) Back(now time.Time) error {
	if !s.IsOpen() {
		return ErrSessionClosed
	}
	if s.CurrentStep == StepPersonalInfo {
		return ErrNoPreviousStep
	}

	previous := s.CurrentStep - 1
	for !s.IsVisible(previous) {
		previous--
	}
	s.CurrentStep = previous
	s.touch(now)
	return nil
}

// ValidateStep checks the saved payload of step. REVIEW validates every
// visible step before it.
func (s Session) ValidateStep(step Step, now time.Time) error {
	switch step {
	case StepPersonalInfo:
		if s.Draft.PersonalInfo == nil {
			return missing(step)
		}
		return s.Draft.PersonalInfo.Validate(now)
	case StepAddress:
		if s.Draft.Address == nil {
			return missing(step)
		}
		return s.Draft.Address.Validate()
	case StepHousehold:
		if s.Draft.Household == nil {
			return missing(step)
		}
		return s.Draft.Household.Validate()
	case StepFamilyPath:
		if s.Draft.FamilyPath == nil {
			return missing(step)
		}
		return s.Draft.FamilyPath.Validate()
	case StepFamilyComposition:
		if s.Draft.Composition == nil {
			return missing(step)
		}
		return s.Draft.Composition.Validate(s.registrantRole(), now)
	case StepHealth:
		if s.Draft.Health == nil {
			return nil
		}
		return s.Draft.Health.Validate(now)
	case StepReview:
		result := &validation.Error{}
		for _, visible := range s.VisibleSteps() {
			if visible == StepReview {
				break
			}
			err := s.ValidateStep(visible, now)
			if err == nil {
				continue
			}
			verr, ok := validation.IsValidationError(err)
			switch {
			case !ok:
				return err
			case verr.Fields[visible.Field()] != "":
				result.Add(visible.Field(), "required")
			default:
				result.Merge(verr.Nest(visible.Field()))
			}
		}
		return result.OrNil()
	}
	return ErrUnknownStep
}

// BeginSubmission clears the outcome of a previous failed attempt.
func (s *Session) BeginSubmission(now time.Time) error {
	if !s.IsOpen() {
		return ErrSessionClosed
	}
	if s.CurrentStep != StepReview {
		return ErrNotAtReview
	}
	if err := s.ValidateStep(StepReview, now); err != nil {
		return err
	}
	s.Resources = Resources{}
	s.LastError = ""
	return nil
}

func (s *Session) MarkSubmitted(resources Resources, now time.Time) {
	s.Status = StatusSubmitted
	s.Resources = resources
	s.LastError = ""
	s.SubmittedAt = utils.TimePtr(now)
	s.touch(now)
}

// MarkFailed keeps the session editable so it can be resubmitted.
func (s *Session) MarkFailed(cause error, now time.Time) {
	s.Status = StatusFailed
	s.Resources = Resources{}
	s.LastError = cause.Error()
	s.touch(now)
}

func (s Session) registrantRole() registry.Role {
	if s.Draft.FamilyPath == nil {
		return ""
	}
	return s.Draft.FamilyPath.RegistrantRole()
}

func (s *Session) validatePayload(step Step, payload any, now time.Time) error {
	switch p := payload.(type) {
	case PersonalInfo:
		if step == StepPersonalInfo {
			return p.Validate(now)
		}
	case Address:
		if step == StepAddress {
			return p.Validate()
		}
	case HouseholdInfo:
		if step == StepHousehold {
			return p.Validate()
		}
	case FamilyPath:
		if step == StepFamilyPath {
			return p.Validate()
		}
	case Composition:
		if step == StepFamilyComposition {
			return p.Validate(s.registrantRole(), now)
		}
	case Health:
		if step == StepHealth {
			return p.Validate(now)
		}
	}
	return ErrPayloadMismatch
}

func (s *Session) touch(now time.Time) {
	s.Version++
	s.UpdatedAt = now
}

func missing(step Step) error {
	return validation.NewError(step.Field(), "required")
}

func NewSession(accountID domain.ID, now time.Time) Session {
	return Session{
		ID:          domain.ID(utils.GenerateUUID()),
		Version:     1,
		AccountID:   accountID,
		CurrentStep: StepPersonalInfo,
		Path:        PathUnset,
		Status:      StatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
