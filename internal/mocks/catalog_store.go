package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/store"
)

// MockCatalogStore implements store.CatalogStore over a fixed item list.
type MockCatalogStore struct {
	Items      []domain.CatalogItem
	Err        error
	LastFilter domain.CatalogFilter
}

var _ store.CatalogStore = (*MockCatalogStore)(nil)

// List implements store.CatalogStore with the same precedence as the database.
func (m *MockCatalogStore) List(_ context.Context, filter domain.CatalogFilter) ([]domain.CatalogItem, error) {
	m.LastFilter = filter
	if m.Err != nil {
		return nil, m.Err
	}

	out := []domain.CatalogItem{}
	for _, item := range m.Items {
		switch {
		case filter.Type != "":
			if item.Type != filter.Type {
				continue
			}
		case filter.ID != uuid.Nil:
			if item.ID != filter.ID {
				continue
			}
		}
		out = append(out, item)
	}
	return out, nil
}
