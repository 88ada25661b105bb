package events

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"profiling-server/internal/infra/async"
	"profiling-server/internal/shared_kernel/domain"

	"go.opentelemetry.io/otel/trace"
)

const (
	RecordsTopic async.BrokerTopicName = "records"

	RecordChangedEvent = "record_changed"
)

type Action string

const (
	ActionCreated Action = "CREATED"
	ActionUpdated Action = "UPDATED"
	ActionDeleted Action = "DELETED"
)

type RecordChanged struct {
	Entity     string    `json:"entity"`
	ID         string    `json:"id"`
	Action     Action    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Notifier interface {
	RecordChanged(ctx context.Context, entity string, id domain.ID, action Action)
}

func NewBrokerNotifier(broker async.InternalBroker) *BrokerNotifier {
	return &BrokerNotifier{broker: broker}
}

var _ Notifier = (*BrokerNotifier)(nil)

// BrokerNotifier fans record changes out on the internal broker. Having no
// listeners is normal and not reported.
type BrokerNotifier struct {
	broker async.InternalBroker
}

func (n *BrokerNotifier) RecordChanged(ctx context.Context, entity string, id domain.ID, action Action) {
	msg := async.BrokerMessage{
		Event: RecordChangedEvent,
		Value: RecordChanged{
			Entity:     entity,
			ID:         id.String(),
			Action:     action,
			OccurredAt: time.Now().UTC(),
		},
		Span: trace.SpanFromContext(ctx),
	}

	err := n.broker.Publish(ctx, RecordsTopic, msg)
	if err == nil || errors.Is(err, async.ErrTopicNotFound) {
		return
	}

	slog.Warn("publishing record change",
		slog.String("entity", entity),
		slog.String("id", id.String()),
		slog.String("error", err.Error()),
	)
}
