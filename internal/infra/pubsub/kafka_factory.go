package pubsub

import "fmt"

var _ PublisherFactory = (*KafkaPublisherFactory)(nil)

type KafkaPublisherFactory struct {
	brokers []string
	codecs  CodecFactory
	connect KafkaConnectOptions
}

func NewKafkaPublisherFactory(brokers []string, codecs CodecFactory, connect KafkaConnectOptions) *KafkaPublisherFactory {
	return &KafkaPublisherFactory{brokers: brokers, codecs: codecs, connect: connect}
}

func (f *KafkaPublisherFactory) New(topic Topic, _ Message) (Publisher, error) {
	codec, err := f.codecs(topic)
	if err != nil {
		return nil, fmt.Errorf("creating codec for %s: %w", topic, err)
	}

	publisher, err := NewKafkaPublisher(f.brokers, string(topic), codec, f.connect)
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	return publisher, nil
}

var _ ConsumerFactory = (*KafkaConsumerFactory)(nil)

type KafkaConsumerFactory struct {
	brokers []string
	group   string
	codecs  CodecFactory
}

func NewKafkaConsumerFactory(brokers []string, group string, codecs CodecFactory) *KafkaConsumerFactory {
	return &KafkaConsumerFactory{brokers: brokers, group: group, codecs: codecs}
}

func (f *KafkaConsumerFactory) New() Consumer {
	return NewKafkaConsumer(f.brokers, f.group, f.codecs)
}
