package internal

import (
	"encoding/json"

	"profiling-server/internal/history/domain"
	"profiling-server/internal/infra/utils"
)

type EntryResponse struct {
	ID         string          `json:"id"`
	Entity     string          `json:"entity"`
	RecordID   string          `json:"record_id"`
	Action     string          `json:"action"`
	Version    int             `json:"version"`
	Snapshot   json.RawMessage `json:"snapshot"`
	OccurredAt utils.Time      `json:"occurred_at"`
}

func ToEntryResponse(value domain.Entry) EntryResponse {
	return EntryResponse{
		ID:         value.ID.String(),
		Entity:     value.Entity,
		RecordID:   value.RecordID.String(),
		Action:     value.Action,
		Version:    value.Version,
		Snapshot:   value.Payload,
		OccurredAt: utils.Time{Time: value.OccurredAt},
	}
}
