package persistence

import (
	_ "embed"
	"fmt"
	"os"

	"profiling-server/internal/lookups/domain"
	"profiling-server/internal/lookups/usecases"

	"gopkg.in/yaml.v3"
)

//go:embed data/lookups.yaml
var embeddedLookups []byte

type document struct {
	Categories []domain.Category `yaml:"categories"`
}

// NewEmbeddedCatalog loads the reference lists compiled into the binary.
func NewEmbeddedCatalog() (*StaticCatalog, error) {
	return parseCatalog(embeddedLookups)
}

// NewFileCatalog loads reference lists from path, for deployments that
// maintain their own puroks and religions.
func NewFileCatalog(path string) (*StaticCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lookups: %w", err)
	}
	return parseCatalog(data)
}

func parseCatalog(data []byte) (*StaticCatalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding lookups: %w", err)
	}

	catalog := &StaticCatalog{byName: make(map[string]domain.Category, len(doc.Categories))}
	for _, category := range doc.Categories {
		if _, exists := catalog.byName[category.Name]; exists {
			return nil, fmt.Errorf("duplicated lookup category %q", category.Name)
		}
		catalog.byName[category.Name] = category
		catalog.order = append(catalog.order, category.Name)
	}

	return catalog, nil
}

var _ usecases.Catalog = (*StaticCatalog)(nil)

type StaticCatalog struct {
	byName map[string]domain.Category
	order  []string
}

func (c *StaticCatalog) Categories() []domain.Category {
	result := make([]domain.Category, 0, len(c.order))
	for _, name := range c.order {
		result = append(result, c.byName[name])
	}
	return result
}

func (c *StaticCatalog) Category(name string) (domain.Category, bool) {
	category, ok := c.byName[name]
	return category, ok
}
