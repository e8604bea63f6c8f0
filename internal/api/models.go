package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/catalog-api/internal/domain"
)

// LoginRequest defines the payload for POST /login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ProfileRequest describes a profile to create, at signup or on its own.
// The owner is always the authenticated caller and is not accepted here.
type ProfileRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Img  string `json:"img"  validate:"omitempty,max=2048"`
}

// SignupRequest defines the payload for POST /users.
type SignupRequest struct {
	Name     string           `json:"name"     validate:"required,max=100"`
	Email    string           `json:"email"    validate:"required,email,max=254"`
	Password string           `json:"password" validate:"required,max=72"`
	Profiles []ProfileRequest `json:"profiles" validate:"omitempty,max=10,dive"`
}

// UpdateUserRequest defines the payload for PUT /users/{id}. Omitted fields
// are left unchanged.
type UpdateUserRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=1,max=100"`
	Email    *string `json:"email"    validate:"omitempty,email,max=254"`
	Password *string `json:"password" validate:"omitempty,min=1,max=72"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	UserID    uuid.UUID `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SignupResponse is returned by a successful signup. Token is empty when
// signup is configured not to issue one.
type SignupResponse struct {
	User      *domain.User `json:"user"`
	Token     string       `json:"token,omitempty"`
	ExpiresAt *time.Time   `json:"expires_at,omitempty"`
}

// UserResponse wraps a single account.
type UserResponse struct {
	User *domain.User `json:"user"`
}

// ProfilesResponse lists profiles.
type ProfilesResponse struct {
	Profiles []domain.Profile `json:"profiles"`
}

// ProfileResponse wraps a single profile.
type ProfileResponse struct {
	Profile *domain.Profile `json:"profile"`
}

// CatalogResponse lists catalog items.
type CatalogResponse struct {
	Catalog []domain.CatalogItem `json:"catalog"`
}

// HealthResponse reports liveness.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}
