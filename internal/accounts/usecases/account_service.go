package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"profiling-server/internal/accounts/domain"
	"profiling-server/internal/infra/cache"
	"profiling-server/internal/infra/utils"
	shared "profiling-server/internal/shared_kernel/domain"
)

func NewAccountService(
	repository AccountRepository,
	otp OTPService,
	store cache.Cache,
	opts Options,
) *SimpleAccountService {
	return &SimpleAccountService{
		repository: repository,
		otp:        otp,
		store:      store,
		opts:       opts,
		now:        time.Now,
	}
}

var _ AccountService = &SimpleAccountService{}

type SimpleAccountService struct {
	repository AccountRepository
	otp        OTPService
	store      cache.Cache
	opts       Options
	now        func() time.Time
}

type sessionEntry struct {
	AccountID shared.ID `json:"account_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Register stores a pending account and sends a code to its email, or to its
// phone when no email was given. A failed delivery leaves the account pending
// so the code can be requested again.
func (s *SimpleAccountService) Register(ctx context.Context, registration Registration) (domain.Account, error) {
	account, err := domain.NewAccountBuilder().
		WithHashCost(s.opts.HashCost).
		WithEmail(registration.Email).
		WithPhone(registration.Phone).
		WithDisplayName(registration.DisplayName).
		WithPassword(registration.Password).
		Build()
	if err != nil {
		return domain.Account{}, err
	}

	for _, identifier := range account.Identifiers() {
		_, err := s.repository.FindByIdentifier(ctx, identifier)
		if err == nil {
			return domain.Account{}, ErrAccountDuplicated
		}
		if !errors.Is(err, ErrAccountNotFound) {
			return domain.Account{}, fmt.Errorf("checking identifier: %w", err)
		}
	}

	if err := s.repository.Create(ctx, account); err != nil {
		slog.Error("creating account", slog.String("error", err.Error()))
		return domain.Account{}, fmt.Errorf("creating account: %w", err)
	}
	slog.Info("account registered", slog.String("id", account.ID.String()))

	channel, destination := domain.ChannelEmail, account.Email
	if destination == "" {
		channel, destination = domain.ChannelSMS, account.Phone
	}
	if _, err := s.otp.Send(ctx, channel, destination); err != nil {
		slog.Warn("sending registration otp", slog.String("id", account.ID.String()), slog.String("error", err.Error()))
	}

	return account, nil
}

func (s *SimpleAccountService) Login(ctx context.Context, identifier, password string) (Session, error) {
	normalized, err := domain.NormalizeDestination(domain.ChannelFor(identifier), identifier)
	if err != nil {
		return Session{}, ErrInvalidCredentials
	}

	account, err := s.repository.FindByIdentifier(ctx, normalized)
	if errors.Is(err, ErrAccountNotFound) {
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, fmt.Errorf("finding account: %w", err)
	}

	if !account.CheckPassword(password) {
		return Session{}, ErrInvalidCredentials
	}
	if !account.IsActive() {
		return Session{}, ErrAccountInactive
	}

	now := s.now().UTC()
	session := Session{
		Token:     utils.GenerateHEX(32),
		AccountID: account.ID,
		ExpiresAt: now.Add(s.opts.SessionTTL),
	}
	entry := sessionEntry{AccountID: session.AccountID, ExpiresAt: session.ExpiresAt}
	if err := cache.SetJSON(ctx, s.store, sessionKey(session.Token), entry, s.opts.SessionTTL); err != nil {
		return Session{}, fmt.Errorf("storing session: %w", err)
	}

	account.LastLoginAt = utils.TimePtr(now)
	if err := s.repository.Update(ctx, account); err != nil {
		slog.Warn("recording last login", slog.String("id", account.ID.String()), slog.String("error", err.Error()))
	}

	slog.Info("account logged in", slog.String("id", account.ID.String()))
	return session, nil
}

func (s *SimpleAccountService) Authenticate(ctx context.Context, token string) (domain.Account, error) {
	if token == "" {
		return domain.Account{}, ErrSessionNotFound
	}

	entry, found := cache.GetJSON[sessionEntry](ctx, s.store, sessionKey(token))
	if !found || !s.now().Before(entry.ExpiresAt) {
		return domain.Account{}, ErrSessionNotFound
	}

	account, err := s.repository.GetByID(ctx, entry.AccountID)
	if errors.Is(err, ErrAccountNotFound) {
		s.store.Delete(ctx, sessionKey(token))
		return domain.Account{}, ErrSessionNotFound
	}
	if err != nil {
		return domain.Account{}, fmt.Errorf("loading account: %w", err)
	}
	if !account.IsActive() {
		return domain.Account{}, ErrAccountInactive
	}

	return account, nil
}

func (s *SimpleAccountService) Logout(ctx context.Context, token string) error {
	if _, found := s.store.Get(ctx, sessionKey(token)); !found {
		return ErrSessionNotFound
	}
	s.store.Delete(ctx, sessionKey(token))
	return nil
}
