package internal

import (
	"encoding/json"
	"time"

	"profiling-server/internal/history/domain"
	shared "profiling-server/internal/shared_kernel/domain"
)

type Entry struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	Entity     string    `json:"entity" gorm:"index:idx_record_history_record;not null"`
	RecordID   string    `json:"record_id" gorm:"index:idx_record_history_record;not null"`
	Action     string    `json:"action" gorm:"not null"`
	Version    int       `json:"version"`
	Payload    string    `json:"payload"`
	OccurredAt time.Time `json:"occurred_at" gorm:"index"`
}

func (Entry) TableName() string {
	return "record_history"
}

func (e Entry) ToDomain() domain.Entry {
	return domain.Entry{
		ID:         shared.ID(e.ID),
		Entity:     e.Entity,
		RecordID:   shared.ID(e.RecordID),
		Action:     e.Action,
		Version:    e.Version,
		Payload:    json.RawMessage(e.Payload),
		OccurredAt: e.OccurredAt,
	}
}

func FromEntry(value domain.Entry) Entry {
	return Entry{
		ID:         value.ID.String(),
		Entity:     value.Entity,
		RecordID:   value.RecordID.String(),
		Action:     value.Action,
		Version:    value.Version,
		Payload:    string(value.Payload),
		OccurredAt: value.OccurredAt,
	}
}
