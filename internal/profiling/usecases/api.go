package usecases

import (
	"context"
	"errors"
	"time"

	"profiling-server/internal/profiling/domain"
	shared "profiling-server/internal/shared_kernel/domain"
)

const EntitySession = "profiling_session"

var ErrSubmissionFailed = errors.New("submission failed")

type Options struct {
	Retention time.Duration
}

func DefaultOptions() Options {
	return Options{Retention: 30 * 24 * time.Hour}
}

//go:generate mockgen -source=api.go -destination=../../../test/unit/doubles/profiling/usecases/api_mock.go -package=usecases

type WizardService interface {
	StartSession(ctx context.Context, accountID shared.ID) (domain.Session, error)
	GetSession(ctx context.Context, id shared.ID) (domain.Session, error)
	DeleteSession(ctx context.Context, id shared.ID) error
	SaveStep(ctx context.Context, id shared.ID, step domain.Step, payload any) (domain.Session, error)
	Next(ctx context.Context, id shared.ID) (domain.Session, error)
	Back(ctx context.Context, id shared.ID) (domain.Session, error)
	Submit(ctx context.Context, id shared.ID) (domain.Session, error)
	PurgeStale(ctx context.Context) (int, error)
}

// Submitter turns a reviewed session into registry and health records.
// On failure it has already undone whatever it created. Revert undoes a
// successful submission whose outcome could not be stored.
type Submitter interface {
	Submit(ctx context.Context, session domain.Session) (domain.Resources, error)
	Revert(ctx context.Context, session domain.Session, resources domain.Resources)
}
