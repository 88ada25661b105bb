package async

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

type BrokerTopicName string

type BrokerMessage struct {
	Event string
	Value any
	Span  trace.Span
	Error error
}

type InternalBroker interface {
	Subscribe(topic BrokerTopicName) (Subscription, error)
	Unsubscribe(topic BrokerTopicName, subscription Subscription) error
	Publish(ctx context.Context, topic BrokerTopicName, msg BrokerMessage) error
	Stop()
}

var _ InternalBroker = (*LocalBroker)(nil)

var (
	ErrTopicNotFound       = errors.New("topic not found")
	ErrSubscriptorNotFound = errors.New("subscriptor not found")
	ErrBrokerStopped       = errors.New("broker stopped")
)

const _receiverBuffer = 64

// LocalBroker fans messages out to in-process subscribers. A subscriber
// whose buffer is full misses the message instead of stalling publishers.
type LocalBroker struct {
	mu           sync.RWMutex
	stopped      bool
	subscriptors map[BrokerTopicName][]*subscriptor
}

func NewLocalBroker() *LocalBroker {
	return &LocalBroker{
		subscriptors: make(map[BrokerTopicName][]*subscriptor),
	}
}

type subscriptor struct {
	once         sync.Once
	subscription Subscription
}

type Subscription struct {
	ID       string
	Receiver chan BrokerMessage
}

func (b *LocalBroker) Subscribe(topic BrokerTopicName) (Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stopped {
		return Subscription{}, ErrBrokerStopped
	}

	subscription := Subscription{
		ID:       uuid.NewString(),
		Receiver: make(chan BrokerMessage, _receiverBuffer),
	}
	b.subscriptors[topic] = append(b.subscriptors[topic], &subscriptor{subscription: subscription})
	return subscription, nil
}

func (b *LocalBroker) Unsubscribe(topic BrokerTopicName, subscription Subscription) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	subscriptors, ok := b.subscriptors[topic]
	if !ok {
		return ErrTopicNotFound
	}

	index := slices.IndexFunc(subscriptors, func(s *subscriptor) bool { return s.subscription.ID == subscription.ID })
	if index < 0 {
		return ErrSubscriptorNotFound
	}

	subscriptors[index].safeClose()
	subscriptors = slices.Delete(subscriptors, index, index+1)
	if len(subscriptors) == 0 {
		delete(b.subscriptors, topic)
	} else {
		b.subscriptors[topic] = subscriptors
	}

	return nil
}

func (b *LocalBroker) Publish(ctx context.Context, topic BrokerTopicName, msg BrokerMessage) error {
	msg.Span = trace.SpanFromContext(ctx)

	b.mu.RLock()
	defer b.mu.RUnlock()

	subscriptors, ok := b.subscriptors[topic]
	if !ok {
		return ErrTopicNotFound
	}

	for _, s := range subscriptors {
		select {
		case s.subscription.Receiver <- msg:
		default:
			slog.Warn("subscriber buffer full, dropping message",
				slog.String("topic", string(topic)),
				slog.String("subscription", s.subscription.ID),
				slog.String("event", msg.Event))
		}
	}

	return nil
}

func (b *LocalBroker) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for topic, subscriptors := range b.subscriptors {
		for _, s := range subscriptors {
			s.safeClose()
		}
		delete(b.subscriptors, topic)
	}
	b.stopped = true
}

func (s *subscriptor) safeClose() {
	s.once.Do(func() {
		close(s.subscription.Receiver)
	})
}
