package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"profiling-server/internal/accounts/domain"
	"profiling-server/internal/infra/cache"
	"profiling-server/internal/infra/notification"
	"profiling-server/internal/infra/utils"

	"golang.org/x/crypto/bcrypt"
)

func NewOTPService(
	accounts AccountRepository,
	store cache.Cache,
	locker cache.Locker,
	notifications notification.NotificationClient,
	opts Options,
) *SimpleOTPService {
	return &SimpleOTPService{
		accounts:      accounts,
		store:         store,
		locker:        locker,
		notifications: notifications,
		opts:          opts,
		now:           time.Now,
	}
}

var _ OTPService = &SimpleOTPService{}

type SimpleOTPService struct {
	accounts      AccountRepository
	store         cache.Cache
	locker        cache.Locker
	notifications notification.NotificationClient
	opts          Options
	now           func() time.Time
}

func (s *SimpleOTPService) Send(ctx context.Context, channel domain.Channel, destination string) (Dispatch, error) {
	destination, err := domain.NormalizeDestination(channel, destination)
	if err != nil {
		return Dispatch{}, err
	}

	lock, err := s.obtain(ctx, destination)
	if err != nil {
		return Dispatch{}, err
	}
	defer s.release(ctx, lock)

	now := s.now().UTC()
	if resendAt, found := cache.GetJSON[time.Time](ctx, s.store, cooldownKey(destination)); found && now.Before(resendAt) {
		return Dispatch{}, &ResendTooSoonError{Remaining: resendAt.Sub(now)}
	}

	code, err := utils.GenerateNumericCode(s.opts.CodeDigits)
	if err != nil {
		return Dispatch{}, fmt.Errorf("generating code: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), s.opts.HashCost)
	if err != nil {
		return Dispatch{}, fmt.Errorf("hashing code: %w", err)
	}

	challenge := domain.Challenge{
		Channel:     channel,
		Destination: destination,
		CodeHash:    hash,
		ExpiresAt:   now.Add(s.opts.CodeTTL),
	}

	if err := s.deliver(ctx, challenge, code); err != nil {
		slog.Error("delivering otp", slog.String("channel", string(channel)), slog.String("error", err.Error()))
		return Dispatch{}, fmt.Errorf("delivering otp: %w", err)
	}

	// a new code always replaces the previous one and resets its attempts
	if err := cache.SetJSON(ctx, s.store, challengeKey(destination), challenge, s.opts.CodeTTL); err != nil {
		return Dispatch{}, fmt.Errorf("storing otp: %w", err)
	}
	resendAt := now.Add(s.opts.ResendCooldown)
	if err := cache.SetJSON(ctx, s.store, cooldownKey(destination), resendAt, s.opts.ResendCooldown); err != nil {
		slog.Warn("storing otp cooldown", slog.String("error", err.Error()))
	}

	slog.Info("otp sent", slog.String("channel", string(channel)))
	return Dispatch{
		Channel:     channel,
		Destination: destination,
		ExpiresAt:   challenge.ExpiresAt,
		ResendAt:    resendAt,
	}, nil
}

func (s *SimpleOTPService) Verify(ctx context.Context, channel domain.Channel, destination, code string) (Verification, error) {
	if len(code) != s.opts.CodeDigits {
		return Verification{}, ErrInvalidCode
	}

	destination, err := domain.NormalizeDestination(channel, destination)
	if err != nil {
		return Verification{}, err
	}

	lock, err := s.obtain(ctx, destination)
	if err != nil {
		return Verification{}, err
	}
	defer s.release(ctx, lock)

	now := s.now().UTC()
	challenge, found := cache.GetJSON[domain.Challenge](ctx, s.store, challengeKey(destination))
	if !found || challenge.IsExpired(now) {
		return Verification{}, ErrCodeExpired
	}

	if bcrypt.CompareHashAndPassword(challenge.CodeHash, []byte(code)) != nil {
		challenge.Attempts++
		if challenge.Attempts >= s.opts.MaxAttempts {
			s.store.Delete(ctx, challengeKey(destination))
			slog.Warn("otp burned after too many attempts", slog.String("channel", string(channel)))
			return Verification{}, ErrTooManyAttempts
		}
		if err := cache.SetJSON(ctx, s.store, challengeKey(destination), challenge, challenge.TTL(now)); err != nil {
			return Verification{}, fmt.Errorf("storing otp attempts: %w", err)
		}
		return Verification{}, &InvalidCodeError{AttemptsLeft: s.opts.MaxAttempts - challenge.Attempts}
	}

	s.store.Delete(ctx, challengeKey(destination))

	result := Verification{Destination: destination}
	account, err := s.activate(ctx, channel, destination, now)
	if err != nil {
		return Verification{}, err
	}
	result.Account = account
	return result, nil
}

func (s *SimpleOTPService) activate(ctx context.Context, channel domain.Channel, destination string, now time.Time) (*domain.Account, error) {
	account, err := s.accounts.FindByIdentifier(ctx, destination)
	if errors.Is(err, ErrAccountNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding account: %w", err)
	}

	if account.Activate(channel, now) {
		account.Version++
		if err := s.accounts.Update(ctx, account); err != nil {
			slog.Error("activating account", slog.String("error", err.Error()))
			return nil, fmt.Errorf("activating account: %w", err)
		}
		slog.Info("account activated", slog.String("id", account.ID.String()))
	}
	return &account, nil
}

func (s *SimpleOTPService) deliver(ctx context.Context, challenge domain.Challenge, code string) error {
	minutes := int(s.opts.CodeTTL / time.Minute)
	message := fmt.Sprintf("Your verification code is %s. It expires in %d minutes.", code, minutes)

	switch challenge.Channel {
	case domain.ChannelEmail:
		return s.notifications.SendEmail(ctx, notification.EmailRequest{
			To:      challenge.Destination,
			Subject: "Your verification code",
			Body:    message,
		})
	case domain.ChannelSMS:
		return s.notifications.SendSMS(ctx, notification.SMSRequest{
			To:      challenge.Destination,
			Message: message,
		})
	}
	return notification.ErrChannelNotSupported
}

func (s *SimpleOTPService) obtain(ctx context.Context, destination string) (cache.Lock, error) {
	lock, err := s.locker.Obtain(ctx, lockKey(destination), s.opts.LockTTL)
	if errors.Is(err, cache.ErrLockNotObtained) {
		return nil, ErrChallengeBusy
	}
	if err != nil {
		return nil, fmt.Errorf("locking otp: %w", err)
	}
	return lock, nil
}

func (s *SimpleOTPService) release(ctx context.Context, lock cache.Lock) {
	if err := lock.Release(ctx); err != nil {
		slog.Warn("releasing otp lock", slog.String("error", err.Error()))
	}
}
