package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewBcryptHasher(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cost    int
		wantErr bool
	}{
		{"minimum cost", MinBcryptCost, false},
		{"higher cost", 12, false},
		{"below minimum", MinBcryptCost - 1, true},
		{"library default", bcrypt.DefaultCost, false},
		{"above maximum", bcrypt.MaxCost + 1, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, err := NewBcryptHasher(tt.cost)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, h)
		})
	}
}

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	h, err := NewBcryptHasher(MinBcryptCost)
	require.NoError(t, err)

	hash, err := h.Hash("pw123")
	require.NoError(t, err)

	t.Run("never returns plaintext", func(t *testing.T) {
		t.Parallel()
		assert.NotEqual(t, "pw123", hash)
		assert.NotContains(t, hash, "pw123")
	})

	t.Run("records the cost", func(t *testing.T) {
		t.Parallel()
		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, MinBcryptCost, cost)
	})

	t.Run("matching password", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, h.Compare(hash, "pw123"))
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, h.Compare(hash, "pw124"), ErrPasswordMismatch)
	})

	t.Run("salted hashes differ", func(t *testing.T) {
		t.Parallel()
		other, err := h.Hash("pw123")
		require.NoError(t, err)
		assert.NotEqual(t, hash, other)
		assert.NoError(t, h.Compare(other, "pw123"))
	})

	t.Run("corrupt hash is not a mismatch", func(t *testing.T) {
		t.Parallel()
		err := h.Compare("not-a-hash", "pw123")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrPasswordMismatch)
	})

	t.Run("too long", func(t *testing.T) {
		t.Parallel()
		_, err := h.Hash(strings.Repeat("a", 73))
		assert.ErrorIs(t, err, ErrPasswordTooLong)
	})
}
