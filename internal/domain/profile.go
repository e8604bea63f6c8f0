package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// KidsProfileName is the name of the optional profile created at signup.
const KidsProfileName = "Kids"

// Profile is a viewing profile belonging to exactly one user. UserID is the
// authorization anchor for every profile operation and never changes after
// creation.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	ImageRef  string    `json:"img,omitempty"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewProfile creates a profile owned by userID.
func NewProfile(userID uuid.UUID, name, imageRef string) (*Profile, error) {
	p := &Profile{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		ImageRef:  strings.TrimSpace(imageRef),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks if the Profile has valid data.
func (p *Profile) Validate() error {
	if p.ID == uuid.Nil {
		return NewValidationError("id", "is required", ErrInvalidID)
	}
	if p.UserID == uuid.Nil {
		return NewValidationError("user_id", "is required", ErrInvalidID)
	}
	if p.Name == "" {
		return NewValidationError("name", "is required", nil)
	}
	return nil
}

// OwnedBy reports whether userID owns the profile.
func (p *Profile) OwnedBy(userID uuid.UUID) bool {
	return p.UserID != uuid.Nil && p.UserID == userID
}
