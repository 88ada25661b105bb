package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"profiling-server/internal/infra/async"

	"github.com/robfig/cron/v3"
)

const DefaultJanitorSchedule = "0 3 * * *"

func NewSessionJanitor(schedule string, wizard WizardService) (*SessionJanitor, error) {
	scheduler := cron.New(cron.WithLocation(time.UTC))
	janitor := &SessionJanitor{
		wizard:    wizard,
		scheduler: scheduler,
		shutdown:  make(chan struct{}),
	}

	if _, err := scheduler.AddFunc(schedule, janitor.purge); err != nil {
		return nil, fmt.Errorf("parsing janitor schedule %q: %w", schedule, err)
	}

	return janitor, nil
}

var _ async.Worker = &SessionJanitor{}

// SessionJanitor deletes abandoned profiling drafts on a cron schedule.
type SessionJanitor struct {
	wizard       WizardService
	scheduler    *cron.Cron
	shutdown     chan struct{}
	shutdownOnce sync.Once
}

func (j *SessionJanitor) Run(ctx context.Context, done func()) {
	slog.Info("session janitor started")
	defer done()

	j.scheduler.Start()

	select {
	case <-ctx.Done():
		slog.Info("session janitor cancelled")
	case <-j.shutdown:
		slog.Info("session janitor stopped")
	}

	// waits for a purge in progress
	<-j.scheduler.Stop().Done()
}

func (j *SessionJanitor) Shutdown() {
	j.shutdownOnce.Do(func() { close(j.shutdown) })
}

func (j *SessionJanitor) purge() {
	if _, err := j.wizard.PurgeStale(context.Background()); err != nil {
		slog.Error("purging profiling sessions", slog.String("error", err.Error()))
	}
}
