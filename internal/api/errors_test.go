package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/catalog-api/internal/api/shared"
	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/service/auth"
	"github.com/phrazzld/catalog-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestErrorMapping(t *testing.T) {
	t.Parallel()

	en := shared.MessagesFor(shared.LocaleEnglish)
	pt := shared.MessagesFor(shared.LocalePortuguese)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantEN     string
		wantPT     string
	}{
		{"missing token", auth.ErrMissingToken, http.StatusUnauthorized, "Token not provided", "Token não fornecido"},
		{"malformed token", auth.ErrMalformedToken, http.StatusForbidden, "Invalid token", "Token inválido"},
		{"bad signature", auth.ErrInvalidSignature, http.StatusForbidden, "Invalid token", "Token inválido"},
		{"expired token", auth.ErrExpiredToken, http.StatusForbidden, "Token expired", "Token expirado"},
		{"forbidden", fmt.Errorf("get: %w", auth.ErrForbidden), http.StatusForbidden,
			"You do not have permission to access this resource", "Você não tem permissão para acessar esse recurso"},
		{"wrong password", fmt.Errorf("login failed: %w", auth.ErrPasswordMismatch), http.StatusUnauthorized,
			"Invalid password", "Senha inválida"},
		{"user not found", fmt.Errorf("login failed: %w", store.ErrUserNotFound), http.StatusNotFound,
			"User not found", "Usuário não encontrado"},
		{"profile not found", store.ErrProfileNotFound, http.StatusNotFound, "Profile not found", "Perfil não encontrado"},
		{"generic not found", store.ErrNotFound, http.StatusNotFound, "Resource not found", "Recurso não encontrado"},
		{"email exists", fmt.Errorf("failed to create account: %w", store.ErrEmailExists), http.StatusBadRequest,
			"Email already exists", "Email já existe"},
		{"validation", domain.NewValidationError("name", "is required", nil), http.StatusBadRequest,
			"Invalid value for field name", "Valor inválido para o campo name"},
		{"bad body", domain.NewValidationError("body", "is not valid JSON", nil), http.StatusBadRequest,
			"Invalid request body", "Corpo da requisição inválido"},
		{"field errors", shared.FieldErrors{"email is a required field"}, http.StatusBadRequest,
			"email is a required field", "email is a required field"},
		{"store failure", errors.New("pq: deadlock detected"), http.StatusInternalServerError,
			"An unexpected error occurred", "Um erro inesperado ocorreu"},
		{"transaction failure", fmt.Errorf("%w: commit: %w", store.ErrTransactionFailed, errors.New("conn reset")),
			http.StatusInternalServerError, "An unexpected error occurred", "Um erro inesperado ocorreu"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.wantStatus, MapErrorToStatusCode(tc.err))
			assert.Equal(t, tc.wantEN, GetSafeErrorMessage(tc.err, en))
			assert.Equal(t, tc.wantPT, GetSafeErrorMessage(tc.err, pt))
		})
	}
}

func TestGetSafeErrorMessageDefaults(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil, nil))
	assert.Equal(t, "Token not provided", GetSafeErrorMessage(auth.ErrMissingToken, nil))
	assert.Equal(t, http.StatusOK, MapErrorToStatusCode(nil))
}
