package internal

import (
	"time"

	"profiling-server/internal/profiling/domain"
	shared "profiling-server/internal/shared_kernel/domain"
)

type Session struct {
	ID          string     `gorm:"primaryKey"`
	Version     int        `gorm:"not null"`
	AccountID   string     `gorm:"index"`
	CurrentStep int        `gorm:"not null"`
	Path        string     `gorm:"not null"`
	Status      string     `gorm:"index;not null"`
	Draft       []byte
	Resources   Resources  `gorm:"serializer:json"`
	LastError   string
	SubmittedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time `gorm:"index;autoUpdateTime:false"`
}

func (Session) TableName() string {
	return "profiling_sessions"
}

type Resources struct {
	ResidentID       string   `json:"resident_id,omitempty"`
	HouseholdID      string   `json:"household_id,omitempty"`
	FamilyID         string   `json:"family_id,omitempty"`
	MemberIDs        []string `json:"member_ids,omitempty"`
	NCDRecordID      string   `json:"ncd_record_id,omitempty"`
	TBRecordID       string   `json:"tb_record_id,omitempty"`
	CreatedHousehold bool     `json:"created_household,omitempty"`
	CreatedFamily    bool     `json:"created_family,omitempty"`
}

func (s Session) ToDomain() (domain.Session, error) {
	draft, err := DecodeDraft(s.Draft)
	if err != nil {
		return domain.Session{}, err
	}

	members := make([]shared.ID, len(s.Resources.MemberIDs))
	for i, id := range s.Resources.MemberIDs {
		members[i] = shared.ID(id)
	}

	return domain.Session{
		ID:          shared.ID(s.ID),
		Version:     shared.Version(s.Version),
		AccountID:   shared.ID(s.AccountID),
		CurrentStep: domain.Step(s.CurrentStep),
		Path:        domain.Path(s.Path),
		Status:      domain.Status(s.Status),
		Draft:       draft,
		Resources: domain.Resources{
			ResidentID:       shared.ID(s.Resources.ResidentID),
			HouseholdID:      shared.ID(s.Resources.HouseholdID),
			FamilyID:         shared.ID(s.Resources.FamilyID),
			MemberIDs:        members,
			NCDRecordID:      shared.ID(s.Resources.NCDRecordID),
			TBRecordID:       shared.ID(s.Resources.TBRecordID),
			CreatedHousehold: s.Resources.CreatedHousehold,
			CreatedFamily:    s.Resources.CreatedFamily,
		},
		LastError:   s.LastError,
		SubmittedAt: s.SubmittedAt,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}, nil
}

func FromSession(value domain.Session) (Session, error) {
	draft, err := EncodeDraft(value.Draft)
	if err != nil {
		return Session{}, err
	}

	var members []string
	for _, id := range value.Resources.MemberIDs {
		members = append(members, id.String())
	}

	return Session{
		ID:          value.ID.String(),
		Version:     int(value.Version),
		AccountID:   value.AccountID.String(),
		CurrentStep: int(value.CurrentStep),
		Path:        string(value.Path),
		Status:      string(value.Status),
		Draft:       draft,
		Resources: Resources{
			ResidentID:       value.Resources.ResidentID.String(),
			HouseholdID:      value.Resources.HouseholdID.String(),
			FamilyID:         value.Resources.FamilyID.String(),
			MemberIDs:        members,
			NCDRecordID:      value.Resources.NCDRecordID.String(),
			TBRecordID:       value.Resources.TBRecordID.String(),
			CreatedHousehold: value.Resources.CreatedHousehold,
			CreatedFamily:    value.Resources.CreatedFamily,
		},
		LastError:   value.LastError,
		SubmittedAt: value.SubmittedAt,
		CreatedAt:   value.CreatedAt,
		UpdatedAt:   value.UpdatedAt,
	}, nil
}

// SessionSnapshot is what gets published. The draft holds personal data
// that has not been registered yet, so it stays out of the feed.
type SessionSnapshot struct {
	ID          string     `json:"id"`
	Version     int        `json:"version"`
	AccountID   string     `json:"account_id,omitempty"`
	CurrentStep string     `json:"current_step"`
	Path        string     `json:"path"`
	Status      string     `json:"status"`
	Resources   Resources  `json:"resources"`
	LastError   string     `json:"last_error,omitempty"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (s Session) Snapshot() SessionSnapshot {
	return SessionSnapshot{
		ID:          s.ID,
		Version:     s.Version,
		AccountID:   s.AccountID,
		CurrentStep: domain.Step(s.CurrentStep).String(),
		Path:        s.Path,
		Status:      s.Status,
		Resources:   s.Resources,
		LastError:   s.LastError,
		SubmittedAt: s.SubmittedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
