package avro

import (
	"fmt"

	"github.com/hamba/avro/v2"
)

// AvroCodec encodes record events as bare avro binary, for setups
// without a schema registry.
type AvroCodec struct {
	schema avro.Schema
}

func NewAvroCodec() (*AvroCodec, error) {
	schema, err := avro.Parse(recordEventSchema)
	if err != nil {
		return nil, fmt.Errorf("parsing record event schema: %w", err)
	}

	return &AvroCodec{schema: schema}, nil
}

func (c *AvroCodec) Encode(value any) ([]byte, error) {
	event, err := asRecordEvent(value)
	if err != nil {
		return nil, err
	}

	data, err := avro.Marshal(c.schema, event)
	if err != nil {
		return nil, fmt.Errorf("encoding to Avro: %w", err)
	}

	return data, nil
}

func (c *AvroCodec) Decode(data []byte) (any, error) {
	var event AvroRecordEvent
	if err := avro.Unmarshal(c.schema, data, &event); err != nil {
		return nil, fmt.Errorf("decoding Avro data: %w", err)
	}

	return &event, nil
}

func asRecordEvent(value any) (*AvroRecordEvent, error) {
	switch v := value.(type) {
	case *AvroRecordEvent:
		return v, nil
	case AvroRecordEvent:
		return &v, nil
	default:
		return nil, fmt.Errorf("unsupported message type %T", value)
	}
}
