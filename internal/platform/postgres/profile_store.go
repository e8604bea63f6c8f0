package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/platform/logger"
	"github.com/phrazzld/catalog-api/internal/redact"
	"github.com/phrazzld/catalog-api/internal/store"
)

// PostgresProfileStore implements store.ProfileStore on PostgreSQL.
type PostgresProfileStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProfileStore creates a ProfileStore. If logger is nil, a default
// logger will be used.
func NewPostgresProfileStore(db store.DBTX, logger *slog.Logger) *PostgresProfileStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProfileStore{
		db:     db,
		logger: logger.With(slog.String("component", "profile_store")),
	}
}

var _ store.ProfileStore = (*PostgresProfileStore)(nil)

// WithTx implements store.ProfileStore.WithTx
func (s *PostgresProfileStore) WithTx(tx *sql.Tx) store.ProfileStore {
	return &PostgresProfileStore{db: tx, logger: s.logger}
}

// Create implements store.ProfileStore.Create
func (s *PostgresProfileStore) Create(ctx context.Context, profile *domain.Profile) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := profile.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO profiles (id, name, img, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query,
		profile.ID,
		profile.Name,
		profile.ImageRef,
		profile.UserID,
		profile.CreatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("profile owner does not exist",
				slog.String("profile_id", profile.ID.String()),
				slog.String("user_id", profile.UserID.String()))
			return store.ErrUserNotFound
		}
		log.Error("failed to create profile",
			slog.String("error", redact.Error(err)),
			slog.String("profile_id", profile.ID.String()))
		return store.NewStoreError("profile", "create", "insert failed", MapError(err))
	}

	log.Debug("profile created",
		slog.String("profile_id", profile.ID.String()),
		slog.String("user_id", profile.UserID.String()))
	return nil
}

// GetByID implements store.ProfileStore.GetByID
func (s *PostgresProfileStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, img, user_id, created_at
		FROM profiles
		WHERE id = $1
	`

	var p domain.Profile
	var img sql.NullString
	err := s.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &img, &p.UserID, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("profile not found", slog.String("profile_id", id.String()))
			return nil, store.ErrProfileNotFound
		}
		log.Error("failed to get profile",
			slog.String("error", redact.Error(err)),
			slog.String("profile_id", id.String()))
		return nil, store.NewStoreError("profile", "get", "query failed", MapError(err))
	}
	p.ImageRef = img.String

	return &p, nil
}

// ListByUser implements store.ProfileStore.ListByUser
func (s *PostgresProfileStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Profile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, img, user_id, created_at
		FROM profiles
		WHERE user_id = $1
		ORDER BY created_at, name
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list profiles",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", userID.String()))
		return nil, store.NewStoreError("profile", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	profiles := []domain.Profile{}
	for rows.Next() {
		var p domain.Profile
		var img sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &img, &p.UserID, &p.CreatedAt); err != nil {
			return nil, store.NewStoreError("profile", "list", "scan failed", err)
		}
		p.ImageRef = img.String
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("profile", "list", "iteration failed", err)
	}

	return profiles, nil
}

// Delete implements store.ProfileStore.Delete
func (s *PostgresProfileStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete profile",
			slog.String("error", redact.Error(err)),
			slog.String("profile_id", id.String()))
		return store.NewStoreError("profile", "delete", "delete failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrProfileNotFound); err != nil {
		return err
	}

	log.Debug("profile deleted", slog.String("profile_id", id.String()))
	return nil
}

// DeleteByUser implements store.ProfileStore.DeleteByUser
func (s *PostgresProfileStore) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	if err != nil {
		log.Error("failed to delete profiles of user",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", userID.String()))
		return 0, store.NewStoreError("profile", "delete", "delete by user failed", MapError(err))
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, store.NewStoreError("profile", "delete", "rows affected unavailable", err)
	}

	log.Debug("profiles deleted",
		slog.String("user_id", userID.String()),
		slog.Int64("count", n))
	return n, nil
}
