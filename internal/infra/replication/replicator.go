package replication

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"profiling-server/internal/infra/async"
	"profiling-server/internal/infra/pubsub"
)

// Replicator consumes every registered topic and hands each message to its
// TopicHandler.
type Replicator struct {
	consumerFactory pubsub.ConsumerFactory
	handlers        map[pubsub.Topic]TopicHandler
	mu              sync.RWMutex
	shutdown        chan struct{}
	shutdownOnce    sync.Once
}

func NewReplicator(consumerFactory pubsub.ConsumerFactory) *Replicator {
	return &Replicator{
		consumerFactory: consumerFactory,
		handlers:        make(map[pubsub.Topic]TopicHandler),
		shutdown:        make(chan struct{}),
	}
}

var _ async.Worker = &Replicator{}

func (r *Replicator) RegisterHandler(handler TopicHandler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	topic := handler.TopicName()
	if _, exists := r.handlers[topic]; exists {
		return fmt.Errorf("handler already registered for topic: %s", topic)
	}

	r.handlers[topic] = handler
	slog.Debug("registered topic handler", slog.String("topic", string(topic)))

	return nil
}

func (r *Replicator) Run(ctx context.Context, done func()) {
	defer done()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	r.mu.RLock()
	handlers := make(map[pubsub.Topic]TopicHandler, len(r.handlers))
	for topic, handler := range r.handlers {
		handlers[topic] = handler
	}
	r.mu.RUnlock()

	if len(handlers) == 0 {
		slog.Warn("no topic handlers registered, replication not started")
		return
	}

	slog.Info("starting replication", slog.Int("topics", len(handlers)))

	var wg sync.WaitGroup
	for topic, handler := range handlers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.replicateTopic(ctx, topic, handler)
		}()
	}

	select {
	case <-ctx.Done():
		slog.Info("replication cancelled")
	case <-r.shutdown:
		slog.Info("stopping replication")
	}

	cancel()
	wg.Wait()
	slog.Info("replication stopped")
}

func (r *Replicator) Shutdown() {
	r.shutdownOnce.Do(func() { close(r.shutdown) })
}

func (r *Replicator) replicateTopic(ctx context.Context, topic pubsub.Topic, handler TopicHandler) {
	consumer := r.consumerFactory.New()
	messageHandler := func(ctx context.Context, key pubsub.Key, msg pubsub.Prototype) error {
		return r.handleMessage(ctx, topic, handler, key, msg)
	}

	slog.Debug("starting topic replication", slog.String("topic", string(topic)))

	err := consumer.Consume(ctx, topic, messageHandler, nil)
	if err != nil && ctx.Err() == nil {
		slog.Error("error consuming topic",
			slog.String("topic", string(topic)),
			slog.String("error", err.Error()))
	}
}

func (r *Replicator) handleMessage(ctx context.Context, topic pubsub.Topic, handler TopicHandler, key pubsub.Key, msg pubsub.Message) error {
	slog.Debug("replicating message",
		slog.String("topic", string(topic)),
		slog.String("key", string(key)))

	exists, err := handler.Exists(ctx, key, msg)
	if err != nil {
		return fmt.Errorf("checking record: %w", err)
	}
	if exists {
		slog.Debug("skipping replicated message",
			slog.String("topic", string(topic)),
			slog.String("key", string(key)))
		return nil
	}

	if err := handler.Create(ctx, key, msg); err != nil {
		slog.Error("failed to create record",
			slog.String("topic", string(topic)),
			slog.String("key", string(key)),
			slog.String("error", err.Error()))
		return fmt.Errorf("creating record: %w", err)
	}

	return nil
}
