package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/platform/logger"
	"github.com/phrazzld/catalog-api/internal/redact"
	"github.com/phrazzld/catalog-api/internal/store"
)

// PostgresCatalogStore implements store.CatalogStore on PostgreSQL.
type PostgresCatalogStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCatalogStore creates a CatalogStore.
func NewPostgresCatalogStore(db store.DBTX, logger *slog.Logger) *PostgresCatalogStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCatalogStore{
		db:     db,
		logger: logger.With(slog.String("component", "catalog_store")),
	}
}

var _ store.CatalogStore = (*PostgresCatalogStore)(nil)

// List implements store.CatalogStore.List. A type filter wins over an id filter.
func (s *PostgresCatalogStore) List(ctx context.Context, filter domain.CatalogFilter) ([]domain.CatalogItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, type, description, img, created_at
		FROM catalog
	`
	var args []any
	switch {
	case strings.TrimSpace(filter.Type) != "":
		query += ` WHERE type = $1`
		args = append(args, strings.TrimSpace(filter.Type))
	case filter.ID != uuid.Nil:
		query += ` WHERE id = $1`
		args = append(args, filter.ID)
	}
	query += ` ORDER BY title`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list catalog", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("catalog", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	items := []domain.CatalogItem{}
	for rows.Next() {
		var item domain.CatalogItem
		var description, img sql.NullString
		if err := rows.Scan(&item.ID, &item.Title, &item.Type, &description, &img, &item.CreatedAt); err != nil {
			return nil, store.NewStoreError("catalog", "list", "scan failed", err)
		}
		item.Description = description.String
		item.ImageRef = img.String
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("catalog", "list", "iteration failed", err)
	}

	log.Debug("catalog listed", slog.Int("count", len(items)))
	return items, nil
}
