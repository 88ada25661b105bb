package usecases

import (
	"context"
	"errors"

	"profiling-server/internal/lookups/domain"
)

var ErrCategoryNotFound = errors.New("lookup category not found")

//go:generate mockgen -source=lookup_service.go -destination=../../../test/unit/doubles/lookups/usecases/lookup_service_mock.go -package=usecases

type Catalog interface {
	Categories() []domain.Category
	Category(name string) (domain.Category, bool)
}

type LookupService interface {
	ListCategories(ctx context.Context) []CategorySummary
	Search(ctx context.Context, category, query string) ([]domain.Item, error)
	// Contains reports whether code is a valid entry of category.
	Contains(ctx context.Context, category, code string) bool
}

type CategorySummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}

func NewLookupService(catalog Catalog) *SimpleLookupService {
	return &SimpleLookupService{catalog: catalog}
}

var _ LookupService = &SimpleLookupService{}

type SimpleLookupService struct {
	catalog Catalog
}

func (s *SimpleLookupService) ListCategories(_ context.Context) []CategorySummary {
	categories := s.catalog.Categories()
	result := make([]CategorySummary, 0, len(categories))
	for _, c := range categories {
		result = append(result, CategorySummary{Name: c.Name, Description: c.Description, Count: len(c.Items)})
	}
	return result
}

func (s *SimpleLookupService) Search(_ context.Context, category, query string) ([]domain.Item, error) {
	c, ok := s.catalog.Category(category)
	if !ok {
		return nil, ErrCategoryNotFound
	}
	return c.Search(query), nil
}

func (s *SimpleLookupService) Contains(_ context.Context, category, code string) bool {
	c, ok := s.catalog.Category(category)
	return ok && c.Has(code)
}
