package usecases

import (
	"context"
	"errors"

	"profiling-server/internal/accounts/domain"
	shared "profiling-server/internal/shared_kernel/domain"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrAccountDuplicated = errors.New("an account already uses this email or phone")
	ErrVersionConflict   = errors.New("version conflict")
)

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/accounts/usecases/repository_port_mock.go -package=usecases -mock_names=AccountRepository=MockAccountRepository

type AccountRepository interface {
	Create(ctx context.Context, account domain.Account) error
	GetByID(ctx context.Context, id shared.ID) (domain.Account, error)
	// FindByIdentifier matches a normalized email or E.164 phone.
	FindByIdentifier(ctx context.Context, identifier string) (domain.Account, error)
	Update(ctx context.Context, account domain.Account) error
}
