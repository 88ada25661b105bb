package internal

import (
	"bytes"
	"fmt"

	"profiling-server/internal/profiling/domain"

	"github.com/vmihailenco/msgpack/v5"
)

// Drafts are stored as msgpack keyed by the json field names, so a stored
// draft and an API payload share one vocabulary.
const _draftTag = "json"

func EncodeDraft(draft domain.Draft) ([]byte, error) {
	var buf bytes.Buffer
	encoder := msgpack.NewEncoder(&buf)
	encoder.SetCustomStructTag(_draftTag)
	encoder.SetOmitEmpty(true)
	if err := encoder.Encode(draft); err != nil {
		return nil, fmt.Errorf("msgpack marshaling: %w", err)
	}
	return buf.Bytes(), nil
}

func DecodeDraft(data []byte) (domain.Draft, error) {
	var draft domain.Draft
	if len(data) == 0 {
		return draft, nil
	}

	decoder := msgpack.NewDecoder(bytes.NewReader(data))
	decoder.SetCustomStructTag(_draftTag)
	if err := decoder.Decode(&draft); err != nil {
		return domain.Draft{}, fmt.Errorf("msgpack unmarshaling: %w", err)
	}
	return draft, nil
}
