package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		notFound  bool
		duplicate bool
	}{
		{"nil error", nil, false, false},
		{"generic error", errors.New("some error"), false, false},
		{"ErrNotFound", ErrNotFound, true, false},
		{"ErrUserNotFound", ErrUserNotFound, true, false},
		{"wrapped ErrProfileNotFound", fmt.Errorf("delete: %w", ErrProfileNotFound), true, false},
		{"ErrDuplicate", ErrDuplicate, false, true},
		{"wrapped ErrEmailExists", fmt.Errorf("create user: %w", ErrEmailExists), false, true},
		{"store error around not found", NewStoreError("user", "get", "lookup failed", ErrUserNotFound), true, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.notFound, IsNotFoundError(tt.err))
			assert.Equal(t, tt.duplicate, IsDuplicateError(tt.err))
		})
	}
}

func TestEntityErrorsAreDistinct(t *testing.T) {
	t.Parallel()

	assert.NotErrorIs(t, ErrUserNotFound, ErrProfileNotFound)
	assert.NotErrorIs(t, ErrProfileNotFound, ErrUserNotFound)
	assert.Equal(t, "entity not found: profile", ErrProfileNotFound.Error())
	assert.Equal(t, "entity already exists: email", ErrEmailExists.Error())
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := NewStoreError("profile", "create", "insert failed", cause)

	assert.Equal(t, "create operation on profile failed: insert failed: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := NewStoreError("user", "delete", "no rows", nil)
	assert.Equal(t, "delete operation on user failed: no rows", bare.Error())
	assert.Nil(t, bare.Unwrap())
}
