package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Principal is the authenticated identity derived from a verified token.
// It lives only for the duration of a request.
type Principal struct {
	ID    uuid.UUID
	Email string
}

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// IssueToken creates a signed token for the principal valid for ttl.
	IssueToken(ctx context.Context, p Principal, ttl time.Duration) (string, error)

	// VerifyToken validates the token and extracts its claims. Failures are
	// ErrMalformedToken, ErrInvalidSignature or ErrExpiredToken.
	VerifyToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the claims carried by a verified token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`
	Email  string    `json:"email,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}

// Principal returns the identity the claims were issued for.
func (c *Claims) Principal() Principal {
	return Principal{ID: c.UserID, Email: c.Email}
}
