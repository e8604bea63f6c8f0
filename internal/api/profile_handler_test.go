package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/catalog-api/internal/api"
	"github.com/phrazzld/catalog-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProfiles(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, shared.LocaleEnglish)
	anaID, anaToken := env.signup("Ana", "ana@example.com", "pw")
	bobID, _ := env.signup("Bob", "bob@example.com", "pw")
	env.addProfile(bobID, "Bob's extra")

	rec := env.do(http.MethodGet, "/profiles", anaToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.ProfilesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Profiles, 2)
	for _, p := range resp.Profiles {
		assert.Equal(t, anaID, p.UserID)
	}
}

func TestCreateProfile(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, shared.LocaleEnglish)
	anaID, anaToken := env.signup("Ana", "ana@example.com", "pw")
	bobID, _ := env.signup("Bob", "bob@example.com", "pw")

	t.Run("owner comes from the token", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/profiles", anaToken, map[string]string{
			"name":    "Guest",
			"img":     "https://img.example.com/guest.png",
			"user_id": bobID.String(),
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var resp api.ProfileResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, anaID, resp.Profile.UserID)
		assert.Equal(t, "https://img.example.com/guest.png", resp.Profile.ImageRef)
		assert.Equal(t, 3, env.profiles.CountByUser(anaID))
		assert.Equal(t, 2, env.profiles.CountByUser(bobID))
	})

	t.Run("name required", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/profiles", anaToken, map[string]string{"img": "x.png"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "name is a required field", decodeError(t, rec).Error)
	})
}

func TestDeleteProfile(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, shared.LocaleEnglish)
	anaID, anaToken := env.signup("Ana", "ana@example.com", "pw")
	bobID, _ := env.signup("Bob", "bob@example.com", "pw")
	bobsProfile := env.addProfile(bobID, "Bob's extra")
	anasProfile := env.addProfile(anaID, "Ana's extra")

	t.Run("foreign profile is forbidden and kept", func(t *testing.T) {
		rec := env.do(http.MethodDelete, "/profiles/"+bobsProfile.ID.String(), anaToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "You do not have permission to delete this profile", decodeError(t, rec).Error)

		_, ok := env.profiles.Get(bobsProfile.ID)
		assert.True(t, ok)
	})

	t.Run("absent profile", func(t *testing.T) {
		rec := env.do(http.MethodDelete, "/profiles/"+uuid.New().String(), anaToken, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Profile not found", decodeError(t, rec).Error)
	})

	t.Run("own profile", func(t *testing.T) {
		rec := env.do(http.MethodDelete, "/profiles/"+anasProfile.ID.String(), anaToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var msg shared.MessageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
		assert.Equal(t, "Profile with ID: "+anasProfile.ID.String()+" deleted", msg.Message)

		_, ok := env.profiles.Get(anasProfile.ID)
		assert.False(t, ok)
	})

	t.Run("store failure is not leaked", func(t *testing.T) {
		env.profiles.DeleteFn = func(_ context.Context, _ uuid.UUID) error {
			return errors.New("pq: connection refused to postgres://admin:hunter2@db")
		}
		defer func() { env.profiles.DeleteFn = nil }()

		target := env.addProfile(anaID, "Doomed")
		rec := env.do(http.MethodDelete, "/profiles/"+target.ID.String(), anaToken, nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "An unexpected error occurred", decodeError(t, rec).Error)
		assert.NotContains(t, rec.Body.String(), "hunter2")
	})
}
