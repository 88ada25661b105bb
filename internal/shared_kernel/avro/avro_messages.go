package avro

import (
	"encoding/json"
	"fmt"
	"time"
)

// AvroRecordEvent is the wire form of every registry and health change.
// Payload holds the JSON snapshot of the record after the change.
type AvroRecordEvent struct {
	Entity     string    `avro:"entity" json:"entity"`
	ID         string    `avro:"id" json:"id"`
	Action     string    `avro:"action" json:"action"`
	Version    int64     `avro:"version" json:"version"`
	Payload    string    `avro:"payload" json:"payload"`
	OccurredAt time.Time `avro:"occurred_at" json:"occurred_at"`
}

const recordEventSchema = `{
	"type": "record",
	"name": "RecordEvent",
	"namespace": "profiling.records",
	"fields": [
		{"name": "entity", "type": "string"},
		{"name": "id", "type": "string"},
		{"name": "action", "type": "string"},
		{"name": "version", "type": "long"},
		{"name": "payload", "type": "string"},
		{"name": "occurred_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
	]
}`

func NewRecordEvent(entity, id, action string, version int64, snapshot any) (*AvroRecordEvent, error) {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("encoding %s snapshot: %w", entity, err)
	}

	return &AvroRecordEvent{
		Entity:     entity,
		ID:         id,
		Action:     action,
		Version:    version,
		Payload:    string(payload),
		OccurredAt: time.Now().UTC().Truncate(time.Millisecond),
	}, nil
}

// Snapshot decodes Payload into dst.
func (e *AvroRecordEvent) Snapshot(dst any) error {
	return json.Unmarshal([]byte(e.Payload), dst)
}
