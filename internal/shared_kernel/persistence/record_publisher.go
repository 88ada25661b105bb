package persistence

import (
	"context"
	"fmt"
	"log/slog"

	"profiling-server/internal/infra/pubsub"
	"profiling-server/internal/shared_kernel/avro"
	"profiling-server/internal/shared_kernel/events"
)

// RecordPublisher emits the avro RecordEvent for one entity type after each
// write, keyed by record ID.
type RecordPublisher struct {
	entity    string
	publisher pubsub.Publisher
}

func NewRecordPublisher(publisherFactory pubsub.PublisherFactory, topic pubsub.Topic, entity string) (*RecordPublisher, error) {
	publisher, err := publisherFactory.New(topic, &avro.AvroRecordEvent{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher for %s: %w", topic, err)
	}

	return &RecordPublisher{entity: entity, publisher: publisher}, nil
}

func (p *RecordPublisher) Publish(ctx context.Context, id string, action events.Action, version int, snapshot any) error {
	event, err := avro.NewRecordEvent(p.entity, id, string(action), int64(version), snapshot)
	if err != nil {
		return err
	}

	if err := p.publisher.Publish(ctx, pubsub.Key(id), event); err != nil {
		slog.Error("publishing record event",
			slog.String("entity", p.entity),
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("publishing to kafka: %w", err)
	}

	return nil
}
