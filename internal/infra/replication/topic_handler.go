package replication

import (
	"context"

	"profiling-server/internal/infra/pubsub"
)

//go:generate mockgen -source=topic_handler.go -destination=../../../test/unit/doubles/infra/replication/topic_handler_mock.go -package=replication

// TopicHandler copies the messages of one topic into local storage.
type TopicHandler interface {
	TopicName() pubsub.Topic

	// Exists reports whether message was already stored, so redelivered
	// messages are skipped.
	Exists(ctx context.Context, key pubsub.Key, message pubsub.Message) (bool, error)

	Create(ctx context.Context, key pubsub.Key, message pubsub.Message) error
}
