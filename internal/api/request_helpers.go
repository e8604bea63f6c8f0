package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/catalog-api/internal/api/shared"
	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/service/auth"
)

// getPathUUID parses the named chi URL parameter as a UUID.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", nil)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}
	return id, nil
}

// getQueryUUID parses the named query parameter as a UUID. An absent or blank
// parameter yields nil.
func getQueryUUID(r *http.Request, paramName string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(paramName))
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}
	return &id, nil
}

// requirePrincipal returns the caller stored by the auth gate. When the route
// was mounted without the gate it writes 401 and returns false.
func requirePrincipal(w http.ResponseWriter, r *http.Request, msgs *shared.Messages) (auth.Principal, bool) {
	p, ok := shared.GetPrincipal(r.Context())
	if !ok || p.ID == uuid.Nil {
		respondWithServiceError(w, r, msgs, auth.ErrMissingToken)
		return auth.Principal{}, false
	}
	return p, true
}

// decodeAndValidate decodes the JSON body into dst and runs struct validation.
func decodeAndValidate(r *http.Request, v *shared.Validator, dst interface{}) error {
	if err := shared.DecodeJSON(r, dst); err != nil {
		return err
	}
	return v.Struct(dst)
}

// respondWithServiceError writes the status and localized message for err.
// Rejected credentials and ownership denials are logged at WARN.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, msgs *shared.Messages, err error) {
	status := MapErrorToStatusCode(err)
	msg := GetSafeErrorMessage(err, msgs)

	var opts []shared.ResponseOption
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	shared.RespondWithErrorAndLog(w, r, status, msg, err, opts...)
}
