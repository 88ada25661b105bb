package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

type MemoryPublisherFactory struct {
	broker *MemoryBroker
}

var _ PublisherFactory = (*MemoryPublisherFactory)(nil)

func NewMemoryPublisherFactory() *MemoryPublisherFactory {
	return &MemoryPublisherFactory{broker: GetMemoryBroker()}
}

func (f *MemoryPublisherFactory) New(topic Topic, _ Message) (Publisher, error) {
	return &MemoryPublisher{broker: f.broker, topic: topic}, nil
}

type MemoryPublisher struct {
	broker *MemoryBroker
	topic  Topic
}

func (p *MemoryPublisher) Publish(ctx context.Context, key Key, message Message) error {
	return p.broker.Publish(ctx, p.topic, key, message)
}

type MemoryConsumerFactory struct {
	broker *MemoryBroker
	group  string
}

var _ ConsumerFactory = (*MemoryConsumerFactory)(nil)

func NewMemoryConsumerFactory(group string) *MemoryConsumerFactory {
	return &MemoryConsumerFactory{broker: GetMemoryBroker(), group: group}
}

func (f *MemoryConsumerFactory) New() Consumer {
	return &MemoryConsumer{broker: f.broker, group: f.group}
}

type MemoryConsumer struct {
	broker *MemoryBroker
	group  string
}

// Consume registers handler and returns; delivery continues for the life
// of the broker.
func (c *MemoryConsumer) Consume(_ context.Context, topic Topic, handler MessageHandler, _ Prototype) error {
	return c.broker.Subscribe(topic, c.group, handler)
}

// MemoryBroker delivers each message once per consumer group, on its own
// goroutine, carrying the publisher's trace context.
type MemoryBroker struct {
	mu     sync.RWMutex
	groups map[Topic]map[string][]MessageHandler
	next   map[Topic]map[string]int
}

var (
	memoryBroker     *MemoryBroker
	memoryBrokerOnce sync.Once
)

func GetMemoryBroker() *MemoryBroker {
	memoryBrokerOnce.Do(func() {
		memoryBroker = &MemoryBroker{}
		memoryBroker.Reset()
	})
	return memoryBroker
}

func (b *MemoryBroker) Publish(ctx context.Context, topic Topic, key Key, message Message) error {
	b.mu.Lock()
	targets := make([]MessageHandler, 0, len(b.groups[topic]))
	for group, handlers := range b.groups[topic] {
		idx := b.next[topic][group] % len(handlers)
		b.next[topic][group] = idx + 1
		targets = append(targets, handlers[idx])
	}
	b.mu.Unlock()

	headers := ExtractTraceFromContext(ctx)
	for _, handler := range targets {
		go deliver(headers, handler, topic, key, message)
	}

	return nil
}

func deliver(headers TraceHeaders, handler MessageHandler, topic Topic, key Key, message Message) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic in message handler", slog.String("topic", string(topic)), slog.String("panic", fmt.Sprint(r)))
		}
	}()

	ctx := InjectTraceIntoContext(context.Background(), headers)
	if err := handler(ctx, key, message); err != nil {
		slog.Error("error in message handler",
			slog.String("topic", string(topic)),
			slog.String("key", string(key)),
			slog.String("error", err.Error()))
	}
}

func (b *MemoryBroker) Subscribe(topic Topic, group string, handler MessageHandler) error {
	if handler == nil {
		return fmt.Errorf("nil handler for topic %s", topic)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.groups[topic] == nil {
		b.groups[topic] = make(map[string][]MessageHandler)
		b.next[topic] = make(map[string]int)
	}
	b.groups[topic][group] = append(b.groups[topic][group], handler)
	return nil
}

func (b *MemoryBroker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.groups = make(map[Topic]map[string][]MessageHandler)
	b.next = make(map[Topic]map[string]int)
}
