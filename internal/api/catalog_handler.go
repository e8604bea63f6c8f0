package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/catalog-api/internal/api/shared"
	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/service"
)

// CatalogHandler serves the catalog listing.
type CatalogHandler struct {
	catalog  service.CatalogService
	messages *shared.Messages
	logger   *slog.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog service.CatalogService, messages *shared.Messages, logger *slog.Logger) *CatalogHandler {
	if catalog == nil || messages == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("catalog and messages are required for CatalogHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CatalogHandler{
		catalog:  catalog,
		messages: messages,
		logger:   logger.With(slog.String("component", "catalog_handler")),
	}
}

// List handles GET /catalog with optional type and id query filters.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.CatalogFilter{Type: strings.TrimSpace(q.Get("type"))}

	// A type filter wins, so id is only read without one.
	if filter.Type == "" {
		id, err := getQueryUUID(r, "id")
		if err != nil {
			respondWithServiceError(w, r, h.messages, err)
			return
		}
		if id != nil {
			filter.ID = *id
		}
	}

	items, err := h.catalog.List(r.Context(), filter)
	if err != nil {
		respondWithServiceError(w, r, h.messages, err)
		return
	}
	if items == nil {
		items = []domain.CatalogItem{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CatalogResponse{Catalog: items})
}
