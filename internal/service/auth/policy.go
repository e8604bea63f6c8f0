package auth

import (
	"github.com/google/uuid"
	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/store"
)

// CanReadUser decides whether p may read the account identified by requested.
// A nil requested id means "my own account".
func CanReadUser(p Principal, requested *uuid.UUID) error {
	if p.ID == uuid.Nil {
		return ErrForbidden
	}
	if requested == nil || *requested == p.ID {
		return nil
	}
	return ErrForbidden
}

// CanMutateAccount decides whether p may update or delete the account target.
// Only the account holder may.
func CanMutateAccount(p Principal, target uuid.UUID) error {
	if p.ID == uuid.Nil || target != p.ID {
		return ErrForbidden
	}
	return nil
}

// CanDeleteProfile decides whether p may delete profile. The profile must have
// been fetched first: a nil profile is reported as not found, never forbidden.
func CanDeleteProfile(p Principal, profile *domain.Profile) error {
	if profile == nil {
		return store.ErrProfileNotFound
	}
	if p.ID == uuid.Nil || !profile.OwnedBy(p.ID) {
		return ErrForbidden
	}
	return nil
}
