package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"profiling-server/internal/shared_kernel/domain"

	"github.com/google/uuid"
)

// Entry is one recorded change of a registry, health or profiling record.
// Payload is the record as it was right after the change.
type Entry struct {
	ID         domain.ID
	Entity     string
	RecordID   domain.ID
	Action     string
	Version    int
	Payload    json.RawMessage
	OccurredAt time.Time
}

// EntryID derives the same ID every time the same change is delivered.
func EntryID(entity string, recordID domain.ID, action string, version int, occurredAt time.Time) domain.ID {
	name := fmt.Sprintf("%s/%s/%s/%d/%d", entity, recordID, action, version, occurredAt.UnixMilli())
	return domain.ID(uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String())
}
