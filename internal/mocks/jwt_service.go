package mocks

import (
	"context"
	"time"

	"github.com/phrazzld/catalog-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing
type MockJWTService struct {
	IssueTokenFn  func(ctx context.Context, p auth.Principal, ttl time.Duration) (string, error)
	VerifyTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Default values used when functions aren't explicitly defined
	Token     string
	Err       error
	VerifyErr error
	Claims    *auth.Claims

	VerifyCallCount int
}

var _ auth.JWTService = (*MockJWTService)(nil)

// IssueToken implements the auth.JWTService interface
func (m *MockJWTService) IssueToken(ctx context.Context, p auth.Principal, ttl time.Duration) (string, error) {
	if m.IssueTokenFn != nil {
		return m.IssueTokenFn(ctx, p, ttl)
	}
	return m.Token, m.Err
}

// VerifyToken implements the auth.JWTService interface
func (m *MockJWTService) VerifyToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	m.VerifyCallCount++
	if m.VerifyTokenFn != nil {
		return m.VerifyTokenFn(ctx, tokenString)
	}
	return m.Claims, m.VerifyErr
}
