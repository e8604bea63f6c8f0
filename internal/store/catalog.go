package store

import (
	"context"

	"github.com/phrazzld/catalog-api/internal/domain"
)

// CatalogStore defines read access to catalog items.
type CatalogStore interface {
	// List returns the catalog items matching filter. An empty result is not an error.
	List(ctx context.Context, filter domain.CatalogFilter) ([]domain.CatalogItem, error)
}
