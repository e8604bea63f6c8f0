package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/platform/logger"
	"github.com/phrazzld/catalog-api/internal/redact"
	"github.com/phrazzld/catalog-api/internal/store"
)

// CatalogService reads the catalog.
type CatalogService interface {
	List(ctx context.Context, filter domain.CatalogFilter) ([]domain.CatalogItem, error)
}

type catalogService struct {
	catalog store.CatalogStore
	logger  *slog.Logger
}

// NewCatalogService creates a CatalogService.
func NewCatalogService(catalog store.CatalogStore, logger *slog.Logger) (CatalogService, error) {
	if catalog == nil {
		return nil, errors.New("catalog service requires a catalog store")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &catalogService{catalog: catalog, logger: logger.With("component", "catalog_service")}, nil
}

// List implements CatalogService.
func (s *catalogService) List(ctx context.Context, filter domain.CatalogFilter) ([]domain.CatalogItem, error) {
	items, err := s.catalog.List(ctx, filter)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).
			Error("failed to list catalog", "error", redact.Error(err))
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}
	return items, nil
}
