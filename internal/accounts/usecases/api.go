package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"profiling-server/internal/accounts/domain"
	shared "profiling-server/internal/shared_kernel/domain"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrResendTooSoon      = errors.New("a code was sent recently")
	ErrTooManyAttempts    = errors.New("too many attempts")
	ErrInvalidCode        = errors.New("invalid code")
	ErrCodeExpired        = errors.New("code expired or was never sent")
	ErrChallengeBusy      = errors.New("another request for this destination is in progress")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is not active")
	ErrSessionNotFound    = errors.New("session not found")
)

// ResendTooSoonError carries how long the caller must wait.
type ResendTooSoonError struct {
	Remaining time.Duration
}

func (e *ResendTooSoonError) Error() string {
	return fmt.Sprintf("%s, retry in %ds", ErrResendTooSoon.Error(), e.RetryAfterSeconds())
}

func (e *ResendTooSoonError) Is(target error) bool {
	return target == ErrResendTooSoon
}

func (e *ResendTooSoonError) RetryAfterSeconds() int {
	seconds := int(e.Remaining.Round(time.Second) / time.Second)
	if seconds < 1 {
		return 1
	}
	return seconds
}

// InvalidCodeError reports the attempts left before the challenge is burned.
type InvalidCodeError struct {
	AttemptsLeft int
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("%s, %d attempts left", ErrInvalidCode.Error(), e.AttemptsLeft)
}

func (e *InvalidCodeError) Is(target error) bool {
	return target == ErrInvalidCode
}

type Options struct {
	CodeDigits     int
	CodeTTL        time.Duration
	ResendCooldown time.Duration
	MaxAttempts    int
	SessionTTL     time.Duration
	HashCost       int
	LockTTL        time.Duration
}

func DefaultOptions() Options {
	return Options{
		CodeDigits:     6,
		CodeTTL:        5 * time.Minute,
		ResendCooldown: 60 * time.Second,
		MaxAttempts:    5,
		SessionTTL:     24 * time.Hour,
		HashCost:       bcrypt.DefaultCost,
		LockTTL:        5 * time.Second,
	}
}

type Registration struct {
	Email       string
	Phone       string
	DisplayName string
	Password    string
}

type Dispatch struct {
	Channel     domain.Channel
	Destination string
	ExpiresAt   time.Time
	ResendAt    time.Time
}

type Verification struct {
	Destination string
	// Account is set when the destination belongs to an account that the code activated.
	Account *domain.Account
}

type Session struct {
	Token     string
	AccountID shared.ID
	ExpiresAt time.Time
}

//go:generate mockgen -source=api.go -destination=../../../test/unit/doubles/accounts/usecases/api_mock.go -package=usecases

type OTPService interface {
	Send(ctx context.Context, channel domain.Channel, destination string) (Dispatch, error)
	Verify(ctx context.Context, channel domain.Channel, destination, code string) (Verification, error)
}

type AccountService interface {
	Register(ctx context.Context, registration Registration) (domain.Account, error)
	Login(ctx context.Context, identifier, password string) (Session, error)
	Authenticate(ctx context.Context, token string) (domain.Account, error)
	Logout(ctx context.Context, token string) error
}

func challengeKey(destination string) string {
	return "otp:challenge:" + destination
}

func cooldownKey(destination string) string {
	return "otp:cooldown:" + destination
}

func lockKey(destination string) string {
	return "otp:lock:" + destination
}

func sessionKey(token string) string {
	return "session:" + token
}
