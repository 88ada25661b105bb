package pubsub

import (
	"profiling-server/internal/shared_kernel/avro"
)

const _localEnvironment = "local"

type Factory struct {
	publisherFactory PublisherFactory
	consumerFactory  ConsumerFactory
}

type FactoryOptions struct {
	Environment       string
	KafkaBrokers      []string
	ConsumerGroup     string
	SchemaRegistryURL string
}

// NewFactory picks the in-memory broker for local runs and Kafka
// everywhere else.
func NewFactory(opts FactoryOptions) *Factory {
	if opts.Environment == _localEnvironment {
		return &Factory{
			publisherFactory: NewMemoryPublisherFactory(),
			consumerFactory:  NewMemoryConsumerFactory(opts.ConsumerGroup),
		}
	}

	codecs := RecordEventCodecs(opts.SchemaRegistryURL)
	return &Factory{
		publisherFactory: NewKafkaPublisherFactory(opts.KafkaBrokers, codecs, DefaultKafkaConnectOptions()),
		consumerFactory:  NewKafkaConsumerFactory(opts.KafkaBrokers, opts.ConsumerGroup, codecs),
	}
}

// RecordEventCodecs frames record events for the registry when one is
// configured and falls back to bare avro otherwise.
func RecordEventCodecs(schemaRegistryURL string) CodecFactory {
	if schemaRegistryURL == "" {
		return func(Topic) (Codec, error) {
			return avro.NewAvroCodec()
		}
	}

	registry := avro.NewConfluentSchemaRegistry(schemaRegistryURL)
	return func(topic Topic) (Codec, error) {
		return avro.NewConfluentAvroCodec(string(topic), registry)
	}
}

func (f *Factory) GetPublisherFactory() PublisherFactory {
	return f.publisherFactory
}

func (f *Factory) GetConsumerFactory() ConsumerFactory {
	return f.consumerFactory
}
