package avro

import (
	"context"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/hamba/avro/v2"

	"profiling-server/internal/infra/cache"
)

const (
	_magicByte             = 0
	_headerSize            = 5
	_defaultSchemaCacheTTL = 5 * time.Minute
)

// ConfluentAvroCodec frames avro payloads as magic byte, 4 byte schema ID
// and body, resolving IDs through a schema registry.
type ConfluentAvroCodec struct {
	subject  string
	writer   avro.Schema
	registry SchemaRegistry
	ids      cache.Cache
	readers  sync.Map
}

func NewConfluentAvroCodec(topic string, registry SchemaRegistry) (*ConfluentAvroCodec, error) {
	writer, err := avro.Parse(recordEventSchema)
	if err != nil {
		return nil, fmt.Errorf("parsing record event schema: %w", err)
	}

	ids, err := cache.New(&cache.CacheConfig{MaxCost: 1 << 20, NumCounters: 1e4, BufferItems: 64})
	if err != nil {
		return nil, fmt.Errorf("creating schema cache: %w", err)
	}

	return &ConfluentAvroCodec{
		subject:  topic + "-value",
		writer:   writer,
		registry: registry,
		ids:      ids,
	}, nil
}

func (c *ConfluentAvroCodec) schemaID() (int, error) {
	ctx := context.Background()
	if id, found := cache.GetJSON[int](ctx, c.ids, c.subject); found {
		return id, nil
	}

	id, err := c.registry.SchemaID(c.subject, recordEventSchema)
	if err != nil {
		return 0, err
	}

	_ = cache.SetJSON(ctx, c.ids, c.subject, id, _defaultSchemaCacheTTL)
	return id, nil
}

// schemas are immutable per ID so parsed readers are kept for the process
// lifetime.
func (c *ConfluentAvroCodec) readerFor(id int) (avro.Schema, error) {
	if cached, ok := c.readers.Load(id); ok {
		return cached.(avro.Schema), nil
	}

	raw, err := c.registry.SchemaByID(id)
	if err != nil {
		return nil, err
	}

	schema, err := avro.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing schema %d: %w", id, err)
	}

	c.readers.Store(id, schema)
	return schema, nil
}

func (c *ConfluentAvroCodec) Encode(value any) ([]byte, error) {
	event, err := asRecordEvent(value)
	if err != nil {
		return nil, err
	}

	id, err := c.schemaID()
	if err != nil {
		return nil, fmt.Errorf("getting schema ID: %w", err)
	}

	body, err := avro.Marshal(c.writer, event)
	if err != nil {
		return nil, fmt.Errorf("encoding to Avro: %w", err)
	}

	result := make([]byte, _headerSize+len(body))
	result[0] = _magicByte
	binary.BigEndian.PutUint32(result[1:_headerSize], uint32(id))
	copy(result[_headerSize:], body)

	return result, nil
}

func (c *ConfluentAvroCodec) Decode(data []byte) (any, error) {
	if len(data) < _headerSize {
		return nil, fmt.Errorf("invalid Avro data: too short")
	}
	if data[0] != _magicByte {
		return nil, fmt.Errorf("invalid magic byte: expected 0, got %d", data[0])
	}

	id := int(binary.BigEndian.Uint32(data[1:_headerSize]))
	reader, err := c.readerFor(id)
	if err != nil {
		return nil, fmt.Errorf("getting schema by ID: %w", err)
	}

	var event AvroRecordEvent
	if err := avro.Unmarshal(reader, data[_headerSize:], &event); err != nil {
		return nil, fmt.Errorf("decoding Avro data: %w", err)
	}

	return &event, nil
}
