package domain

import (
	"time"

	"github.com/google/uuid"
)

// CatalogItem is a title offered by the catalog (a movie, a series, ...).
type CatalogItem struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	ImageRef    string    `json:"img,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CatalogFilter narrows a catalog listing. Zero values mean "no filter".
// Type takes precedence over ID when both are set.
type CatalogFilter struct {
	Type string
	ID   uuid.UUID
}
