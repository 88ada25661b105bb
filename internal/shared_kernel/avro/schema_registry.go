package avro

import (
	"fmt"

	"github.com/riferrei/srclient"
)

// SchemaRegistry resolves schema IDs for the Confluent wire format.
type SchemaRegistry interface {
	// SchemaID returns the ID of the latest schema under subject,
	// registering schema when the subject is unknown.
	SchemaID(subject, schema string) (int, error)
	SchemaByID(id int) (string, error)
}

type ConfluentSchemaRegistry struct {
	client *srclient.SchemaRegistryClient
}

var _ SchemaRegistry = (*ConfluentSchemaRegistry)(nil)

func NewConfluentSchemaRegistry(url string) *ConfluentSchemaRegistry {
	return &ConfluentSchemaRegistry{client: srclient.CreateSchemaRegistryClient(url)}
}

func (r *ConfluentSchemaRegistry) SchemaID(subject, schema string) (int, error) {
	latest, err := r.client.GetLatestSchema(subject)
	if err == nil && latest != nil {
		return latest.ID(), nil
	}

	created, err := r.client.CreateSchema(subject, schema, srclient.Avro)
	if err != nil {
		return 0, fmt.Errorf("registering schema for %s: %w", subject, err)
	}

	return created.ID(), nil
}

func (r *ConfluentSchemaRegistry) SchemaByID(id int) (string, error) {
	schema, err := r.client.GetSchema(id)
	if err != nil {
		return "", fmt.Errorf("fetching schema %d: %w", id, err)
	}

	return schema.Schema(), nil
}
