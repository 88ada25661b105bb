package domain

import (
	"strings"
	"time"

	"profiling-server/internal/infra/utils"
	"profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/validation"

	"golang.org/x/crypto/bcrypt"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusActive   Status = "ACTIVE"
	StatusDisabled Status = "DISABLED"
)

const MinPasswordLength = 8

type Account struct {
	ID              domain.ID
	Version         domain.Version
	Email           string
	Phone           string
	DisplayName     string
	PasswordHash    []byte
	Status          Status
	VerifiedChannel Channel
	VerifiedAt      *time.Time
	LastLoginAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (a Account) IsActive() bool {
	return a.Status == StatusActive
}

// Identifiers returns the normalized destinations the account can sign in with.
func (a Account) Identifiers() []string {
	result := make([]string, 0, 2)
	if a.Email != "" {
		result = append(result, a.Email)
	}
	if a.Phone != "" {
		result = append(result, a.Phone)
	}
	return result
}

// Activate marks the account verified through channel. Disabled accounts stay disabled.
func (a *Account) Activate(channel Channel, now time.Time) bool {
	if a.Status != StatusPending {
		return false
	}
	a.Status = StatusActive
	a.VerifiedChannel = channel
	a.VerifiedAt = utils.TimePtr(now)
	a.UpdatedAt = now
	return true
}

func (a Account) CheckPassword(plain string) bool {
	if len(a.PasswordHash) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(plain)) == nil
}

// Validate normalizes the email and phone in place.
func (a *Account) Validate() error {
	result := &validation.Error{}

	if a.Email == "" && a.Phone == "" {
		result.Add("email", "required_without")
		result.Add("phone", "required_without")
	}
	if a.Email != "" {
		email, err := NormalizeDestination(ChannelEmail, a.Email)
		if err != nil {
			result.Add("email", "email")
		} else {
			a.Email = email
		}
	}
	if a.Phone != "" {
		phone, err := NormalizeDestination(ChannelSMS, a.Phone)
		if err != nil {
			result.Add("phone", "phone")
		} else {
			a.Phone = phone
		}
	}
	if strings.TrimSpace(a.DisplayName) == "" {
		result.Add("display_name", "required")
	}
	if len(a.PasswordHash) == 0 {
		result.Add("password", "required")
	}

	return result.OrNil()
}

func NewAccountBuilder() *accountBuilder {
	return &accountBuilder{cost: bcrypt.DefaultCost}
}

type accountBuilder struct {
	actions []accountHandler
	cost    int
}

type accountHandler func(v *Account) error

func (b *accountBuilder) WithEmail(value string) *accountBuilder {
	b.actions = append(b.actions, func(v *Account) error {
		v.Email = strings.TrimSpace(value)
		return nil
	})
	return b
}

func (b *accountBuilder) WithPhone(value string) *accountBuilder {
	b.actions = append(b.actions, func(v *Account) error {
		v.Phone = strings.TrimSpace(value)
		return nil
	})
	return b
}

func (b *accountBuilder) WithDisplayName(value string) *accountBuilder {
	b.actions = append(b.actions, func(v *Account) error {
		v.DisplayName = strings.TrimSpace(value)
		return nil
	})
	return b
}

func (b *accountBuilder) WithHashCost(cost int) *accountBuilder {
	b.cost = cost
	return b
}

func (b *accountBuilder) WithPassword(plain string) *accountBuilder {
	b.actions = append(b.actions, func(v *Account) error {
		if len(plain) < MinPasswordLength {
			return validation.NewError("password", "min")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(plain), b.cost)
		if err != nil {
			return err
		}
		v.PasswordHash = hash
		return nil
	})
	return b
}

func (b *accountBuilder) Build() (Account, error) {
	now := time.Now().UTC()
	result := Account{
		ID:        domain.ID(utils.GenerateUUID()),
		Version:   1,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Account{}, err
		}
	}
	if err := result.Validate(); err != nil {
		return Account{}, err
	}
	return result, nil
}
