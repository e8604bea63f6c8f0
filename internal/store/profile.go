package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/catalog-api/internal/domain"
)

// ProfileStore defines the interface for profile data persistence.
type ProfileStore interface {
	// Create saves a new profile.
	// Returns ErrUserNotFound if the owning user does not exist.
	Create(ctx context.Context, profile *domain.Profile) error

	// GetByID retrieves a profile by ID.
	// Returns ErrProfileNotFound if the profile does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)

	// ListByUser returns the profiles owned by userID, oldest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Profile, error)

	// Delete removes a single profile.
	// Returns ErrProfileNotFound if the profile does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUser removes every profile owned by userID and reports how many
	// rows were removed.
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// WithTx returns a new ProfileStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) ProfileStore
}
