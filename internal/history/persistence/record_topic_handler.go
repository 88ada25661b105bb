package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"profiling-server/internal/history/domain"
	"profiling-server/internal/history/usecases"
	"profiling-server/internal/infra/pubsub"
	"profiling-server/internal/infra/replication"
	"profiling-server/internal/shared_kernel/avro"
	shared "profiling-server/internal/shared_kernel/domain"
)

func NewRecordTopicHandler(topic pubsub.Topic, repository usecases.HistoryRepository) *RecordTopicHandler {
	return &RecordTopicHandler{topic: topic, repository: repository}
}

var _ replication.TopicHandler = (*RecordTopicHandler)(nil)

// RecordTopicHandler appends the RecordEvents of one topic to the history.
type RecordTopicHandler struct {
	topic      pubsub.Topic
	repository usecases.HistoryRepository
}

func (h *RecordTopicHandler) TopicName() pubsub.Topic {
	return h.topic
}

func (h *RecordTopicHandler) Exists(ctx context.Context, _ pubsub.Key, message pubsub.Message) (bool, error) {
	entry, err := toEntry(message)
	if err != nil {
		return false, err
	}

	return h.repository.Exists(ctx, entry.ID)
}

func (h *RecordTopicHandler) Create(ctx context.Context, _ pubsub.Key, message pubsub.Message) error {
	entry, err := toEntry(message)
	if err != nil {
		return err
	}

	return h.repository.Append(ctx, entry)
}

func toEntry(message pubsub.Message) (domain.Entry, error) {
	var event *avro.AvroRecordEvent
	switch v := message.(type) {
	case *avro.AvroRecordEvent:
		event = v
	case avro.AvroRecordEvent:
		event = &v
	default:
		return domain.Entry{}, fmt.Errorf("unexpected message type %T", message)
	}

	payload := json.RawMessage(event.Payload)
	if !json.Valid(payload) {
		return domain.Entry{}, fmt.Errorf("invalid payload for %s %s", event.Entity, event.ID)
	}

	recordID := shared.ID(event.ID)
	return domain.Entry{
		ID:         domain.EntryID(event.Entity, recordID, event.Action, int(event.Version), event.OccurredAt),
		Entity:     event.Entity,
		RecordID:   recordID,
		Action:     event.Action,
		Version:    int(event.Version),
		Payload:    payload,
		OccurredAt: event.OccurredAt,
	}, nil
}
