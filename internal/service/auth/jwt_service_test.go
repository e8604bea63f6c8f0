package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/catalog-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret  = "test-secret-that-is-long-enough-for-testing"
	wrongSecret = "wrong-secret-that-is-long-enough-for-testing"
)

var fixedTime = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, secret string, now time.Time) JWTService {
	t.Helper()
	svc, err := NewJWTServiceWithClock(secret, func() time.Time { return now })
	require.NoError(t, err)
	return svc
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	t.Run("accepts configured secret", func(t *testing.T) {
		t.Parallel()
		svc, err := NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 60})
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})

	t.Run("rejects short secret", func(t *testing.T) {
		t.Parallel()
		_, err := NewJWTService(config.AuthConfig{JWTSecret: "too-short"})
		assert.Error(t, err)
	})

	t.Run("rejects empty secret", func(t *testing.T) {
		t.Parallel()
		_, err := NewJWTServiceWithClock("", time.Now)
		assert.Error(t, err)
	})
}

func TestIssueToken(t *testing.T) {
	t.Parallel()

	ttl := 60 * time.Minute
	p := Principal{ID: uuid.New(), Email: "ana@example.com"}
	svc := newTestService(t, testSecret, fixedTime)

	t.Run("round trips the principal", func(t *testing.T) {
		t.Parallel()
		token, err := svc.IssueToken(context.Background(), p, ttl)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.VerifyToken(context.Background(), token)
		require.NoError(t, err)

		assert.Equal(t, p, claims.Principal())
		assert.Equal(t, p.ID.String(), claims.Subject)
		// Compare Unix timestamps to avoid timezone issues
		assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
		assert.Equal(t, fixedTime.Add(ttl).Unix(), claims.ExpiresAt.Unix())
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("token ids are unique", func(t *testing.T) {
		t.Parallel()
		first, err := svc.IssueToken(context.Background(), p, ttl)
		require.NoError(t, err)
		second, err := svc.IssueToken(context.Background(), p, ttl)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("rejects non-positive ttl", func(t *testing.T) {
		t.Parallel()
		_, err := svc.IssueToken(context.Background(), p, 0)
		assert.Error(t, err)
		_, err = svc.IssueToken(context.Background(), p, -time.Minute)
		assert.Error(t, err)
	})

	t.Run("rejects empty principal", func(t *testing.T) {
		t.Parallel()
		_, err := svc.IssueToken(context.Background(), Principal{}, ttl)
		assert.Error(t, err)
	})
}

func TestVerifyToken(t *testing.T) {
	t.Parallel()

	ttl := 60 * time.Minute
	p := Principal{ID: uuid.New(), Email: "ana@example.com"}

	issue := func(t *testing.T, secret string, at time.Time) string {
		t.Helper()
		token, err := newTestService(t, secret, at).IssueToken(context.Background(), p, ttl)
		require.NoError(t, err)
		return token
	}

	signRaw := func(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.Claims) string {
		t.Helper()
		token, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return token
	}

	validClaims := jwtCustomClaims{
		UserID: p.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID.String(),
			IssuedAt:  jwt.NewNumericDate(fixedTime),
			ExpiresAt: jwt.NewNumericDate(fixedTime.Add(ttl)),
		},
	}

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		now     time.Time
		wantErr error
	}{
		{
			name:  "valid token",
			token: func(t *testing.T) string { return issue(t, testSecret, fixedTime) },
			now:   fixedTime.Add(time.Minute),
		},
		{
			name:  "valid until the last second",
			token: func(t *testing.T) string { return issue(t, testSecret, fixedTime) },
			now:   fixedTime.Add(ttl - time.Second),
		},
		{
			name:    "expired exactly at exp",
			token:   func(t *testing.T) string { return issue(t, testSecret, fixedTime) },
			now:     fixedTime.Add(ttl),
			wantErr: ErrExpiredToken,
		},
		{
			name:    "expired long ago",
			token:   func(t *testing.T) string { return issue(t, testSecret, fixedTime) },
			now:     fixedTime.Add(ttl + time.Hour),
			wantErr: ErrExpiredToken,
		},
		{
			name:    "signed with another key",
			token:   func(t *testing.T) string { return issue(t, wrongSecret, fixedTime) },
			now:     fixedTime,
			wantErr: ErrInvalidSignature,
		},
		{
			name:    "signed with another key and expired",
			token:   func(t *testing.T) string { return issue(t, wrongSecret, fixedTime) },
			now:     fixedTime.Add(ttl + time.Hour),
			wantErr: ErrInvalidSignature,
		},
		{
			name:    "not a jwt",
			token:   func(t *testing.T) string { return "this.is.not.a.valid.jwt.token" },
			now:     fixedTime,
			wantErr: ErrMalformedToken,
		},
		{
			name:    "empty string",
			token:   func(t *testing.T) string { return "" },
			now:     fixedTime,
			wantErr: ErrMalformedToken,
		},
		{
			name:    "bearer prefix is not stripped",
			token:   func(t *testing.T) string { return "Bearer " + issue(t, testSecret, fixedTime) },
			now:     fixedTime,
			wantErr: ErrMalformedToken,
		},
		{
			name: "alg none",
			token: func(t *testing.T) string {
				return signRaw(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, validClaims)
			},
			now:     fixedTime,
			wantErr: ErrMalformedToken,
		},
		{
			name: "other hmac algorithm",
			token: func(t *testing.T) string {
				return signRaw(t, jwt.SigningMethodHS384, []byte(testSecret), validClaims)
			},
			now:     fixedTime,
			wantErr: ErrMalformedToken,
		},
		{
			name: "missing user id",
			token: func(t *testing.T) string {
				return signRaw(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
					ExpiresAt: jwt.NewNumericDate(fixedTime.Add(ttl)),
				})
			},
			now:     fixedTime,
			wantErr: ErrMalformedToken,
		},
		{
			name: "subject does not match user id",
			token: func(t *testing.T) string {
				c := validClaims
				c.Subject = uuid.NewString()
				return signRaw(t, jwt.SigningMethodHS256, []byte(testSecret), c)
			},
			now:     fixedTime,
			wantErr: ErrMalformedToken,
		},
		{
			name: "missing expiry",
			token: func(t *testing.T) string {
				c := validClaims
				c.ExpiresAt = nil
				return signRaw(t, jwt.SigningMethodHS256, []byte(testSecret), c)
			},
			now:     fixedTime,
			wantErr: ErrMalformedToken,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			token := tt.token(t)
			svc := newTestService(t, testSecret, tt.now)

			claims, err := svc.VerifyToken(context.Background(), token)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, p.ID, claims.UserID)
		})
	}
}

func TestVerifyErrorKinds(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, ErrMalformedToken, ErrInvalidToken)
	assert.ErrorIs(t, ErrInvalidSignature, ErrInvalidToken)
	assert.NotErrorIs(t, ErrExpiredToken, ErrInvalidToken)
	assert.NotErrorIs(t, ErrMalformedToken, ErrInvalidSignature)
}
