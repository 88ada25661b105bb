package internal

import (
	"time"

	"profiling-server/internal/accounts/domain"
	shared "profiling-server/internal/shared_kernel/domain"
)

type Account struct {
	ID              string     `gorm:"primaryKey"`
	Version         int
	Email           *string    `gorm:"uniqueIndex"`
	Phone           *string    `gorm:"uniqueIndex"`
	DisplayName     string     `gorm:"not null"`
	PasswordHash    []byte     `gorm:"not null"`
	Status          string     `gorm:"index;not null"`
	VerifiedChannel string
	VerifiedAt      *time.Time
	LastLoginAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Account) TableName() string {
	return "accounts"
}

// AccountSnapshot is the published view of an account. Credentials stay out of it.
type AccountSnapshot struct {
	ID          string     `json:"id"`
	Version     int        `json:"version"`
	Email       string     `json:"email,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	DisplayName string     `json:"display_name"`
	Status      string     `json:"status"`
	VerifiedAt  *time.Time `json:"verified_at,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (a Account) Snapshot() AccountSnapshot {
	return AccountSnapshot{
		ID:          a.ID,
		Version:     a.Version,
		Email:       value(a.Email),
		Phone:       value(a.Phone),
		DisplayName: a.DisplayName,
		Status:      a.Status,
		VerifiedAt:  a.VerifiedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func (a Account) ToDomain() domain.Account {
	return domain.Account{
		ID:              shared.ID(a.ID),
		Version:         shared.Version(a.Version),
		Email:           value(a.Email),
		Phone:           value(a.Phone),
		DisplayName:     a.DisplayName,
		PasswordHash:    a.PasswordHash,
		Status:          domain.Status(a.Status),
		VerifiedChannel: domain.Channel(a.VerifiedChannel),
		VerifiedAt:      a.VerifiedAt,
		LastLoginAt:     a.LastLoginAt,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func FromAccount(a domain.Account) Account {
	return Account{
		ID:              a.ID.String(),
		Version:         int(a.Version),
		Email:           nullable(a.Email),
		Phone:           nullable(a.Phone),
		DisplayName:     a.DisplayName,
		PasswordHash:    a.PasswordHash,
		Status:          string(a.Status),
		VerifiedChannel: string(a.VerifiedChannel),
		VerifiedAt:      a.VerifiedAt,
		LastLoginAt:     a.LastLoginAt,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// unique indexes allow many NULLs but only one empty string
func nullable(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func value(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
