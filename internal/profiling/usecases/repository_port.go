package usecases

import (
	"context"
	"errors"
	"time"

	"profiling-server/internal/profiling/domain"
	shared "profiling-server/internal/shared_kernel/domain"
)

var (
	ErrSessionNotFound = errors.New("profiling session not found")
	ErrVersionConflict = errors.New("version conflict")
)

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/profiling/usecases/repository_port_mock.go -package=usecases

type SessionRepository interface {
	Create(ctx context.Context, session domain.Session) error
	GetByID(ctx context.Context, id shared.ID) (domain.Session, error)
	// Update fails with ErrVersionConflict unless the stored version is expected.
	Update(ctx context.Context, session domain.Session, expected shared.Version) error
	Delete(ctx context.Context, id shared.ID) error
	// DeleteStale removes drafts not updated since before and returns how many went.
	DeleteStale(ctx context.Context, before time.Time) (int, error)
}
