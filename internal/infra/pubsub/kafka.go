package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/lovoo/goka"
)

type publisherKey struct {
	brokers string
	topic   string
}

type publisherInstance struct {
	publisher *SimpleKafkaPublisher
	once      sync.Once
	err       error
}

var (
	publishersMap   = make(map[publisherKey]*publisherInstance)
	publishersMutex sync.Mutex
)

type KafkaConnectOptions struct {
	Retries    int
	RetryDelay time.Duration
}

func DefaultKafkaConnectOptions() KafkaConnectOptions {
	return KafkaConnectOptions{Retries: 10, RetryDelay: 5 * time.Second}
}

// NewKafkaPublisher returns one emitter per broker list and topic for the
// whole process.
func NewKafkaPublisher(brokers []string, topic string, codec Codec, opts KafkaConnectOptions) (*SimpleKafkaPublisher, error) {
	key := publisherKey{brokers: strings.Join(brokers, ","), topic: topic}

	publishersMutex.Lock()
	instance, exists := publishersMap[key]
	if !exists {
		instance = &publisherInstance{}
		publishersMap[key] = instance
	}
	publishersMutex.Unlock()

	instance.once.Do(func() {
		var err error
		for try := 0; try < opts.Retries; try++ {
			slog.Debug("connecting to kafka brokers", slog.String("brokers", key.brokers), slog.String("topic", topic))
			var e *goka.Emitter
			e, err = goka.NewEmitter(brokers, goka.Stream(topic), codec)
			if err == nil {
				instance.publisher = &SimpleKafkaPublisher{emitter: e, topic: topic}
				return
			}
			time.Sleep(opts.RetryDelay)
		}

		instance.err = fmt.Errorf("impossible to connect to kafka brokers after %d retries: %w", opts.Retries, err)
	})

	if instance.err != nil {
		return nil, instance.err
	}

	return instance.publisher, nil
}

type SimpleKafkaPublisher struct {
	emitter *goka.Emitter
	topic   string
}

func (p *SimpleKafkaPublisher) Publish(_ context.Context, key Key, message Message) error {
	if err := p.emitter.EmitSync(string(key), message); err != nil {
		slog.Error("emitting message", slog.String("topic", p.topic), slog.String("error", err.Error()))
		return err
	}

	return nil
}

type consumerKey struct {
	brokers string
	group   string
}

var (
	consumersMap   = make(map[consumerKey]*SimpleKafkaConsumer)
	consumersMutex sync.Mutex
)

func NewKafkaConsumer(brokers []string, group string, codecs CodecFactory) *SimpleKafkaConsumer {
	key := consumerKey{brokers: strings.Join(brokers, ","), group: group}

	consumersMutex.Lock()
	defer consumersMutex.Unlock()

	if consumer, ok := consumersMap[key]; ok {
		return consumer
	}

	consumer := &SimpleKafkaConsumer{
		brokers: brokers,
		group:   goka.Group(group),
		codecs:  codecs,
	}
	consumersMap[key] = consumer
	return consumer
}

var _ Consumer = (*SimpleKafkaConsumer)(nil)

type SimpleKafkaConsumer struct {
	brokers []string
	group   goka.Group
	codecs  CodecFactory
}

// Consume blocks running the goka processor for topic until ctx is done.
func (c *SimpleKafkaConsumer) Consume(ctx context.Context, topic Topic, handler MessageHandler, _ Prototype) error {
	codec, err := c.codecs(topic)
	if err != nil {
		return fmt.Errorf("creating codec for %s: %w", topic, err)
	}

	cb := func(ctx goka.Context, msg any) {
		if err := handler(ctx.Context(), Key(ctx.Key()), msg); err != nil {
			slog.Error("handling kafka message",
				slog.String("topic", string(topic)),
				slog.String("key", ctx.Key()),
				slog.String("error", err.Error()))
		}
	}

	group := goka.DefineGroup(c.group, goka.Input(goka.Stream(topic), codec, cb))
	p, err := goka.NewProcessor(c.brokers, group)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	return p.Run(ctx)
}
