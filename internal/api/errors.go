package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/catalog-api/internal/api/shared"
	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/service/auth"
	"github.com/phrazzld/catalog-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes. Anything
// not recognized is a store failure and maps to 500.
func MapErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	// Authentication
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrPasswordMismatch):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return http.StatusForbidden

	// Authorization
	case errors.Is(err, auth.ErrForbidden):
		return http.StatusForbidden

	// Bad input, including duplicate email
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrDuplicate),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, auth.ErrPasswordTooLong):
		return http.StatusBadRequest

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client-facing text for err in the
// catalog's language. Internal error strings are never returned; the only
// dynamic content is a field name or a translated validator message.
func GetSafeErrorMessage(err error, msgs *shared.Messages) string {
	if msgs == nil {
		msgs = shared.MessagesFor(shared.LocaleEnglish)
	}
	if err == nil {
		return msgs.Unexpected
	}

	var fieldErrs shared.FieldErrors
	var vErr *domain.ValidationError

	switch {
	case errors.Is(err, auth.ErrMissingToken):
		return msgs.MissingToken
	case errors.Is(err, auth.ErrPasswordMismatch):
		return msgs.WrongPassword
	case errors.Is(err, auth.ErrExpiredToken):
		return msgs.ExpiredToken
	case errors.Is(err, auth.ErrInvalidToken):
		return msgs.InvalidToken
	case errors.Is(err, auth.ErrForbidden):
		return msgs.Forbidden

	case errors.As(err, &fieldErrs):
		return fieldErrs.Error()
	case errors.As(err, &vErr):
		if vErr.Field == "body" {
			return msgs.InvalidBody
		}
		return msgs.InvalidField(vErr.Field)
	case errors.Is(err, auth.ErrPasswordTooLong):
		return msgs.InvalidField("password")

	case errors.Is(err, store.ErrEmailExists):
		return msgs.EmailExists
	case errors.Is(err, store.ErrUserNotFound):
		return msgs.UserNotFound
	case errors.Is(err, store.ErrProfileNotFound):
		return msgs.ProfileNotFound
	case errors.Is(err, store.ErrNotFound):
		return msgs.NotFound

	default:
		return msgs.Unexpected
	}
}
