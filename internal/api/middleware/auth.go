package middleware

import (
	"errors"
	"net/http"

	"github.com/phrazzld/catalog-api/internal/api/shared"
	"github.com/phrazzld/catalog-api/internal/platform/logger"
	"github.com/phrazzld/catalog-api/internal/service/auth"
)

// AuthorizationHeader carries the raw token. No scheme prefix is expected.
const AuthorizationHeader = "Authorization"

// AuthMiddleware is the gate in front of every protected route.
type AuthMiddleware struct {
	jwtService auth.JWTService
	messages   *shared.Messages
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, messages *shared.Messages) *AuthMiddleware {
	if messages == nil {
		messages = shared.MessagesFor(shared.LocaleEnglish)
	}
	return &AuthMiddleware{
		jwtService: jwtService,
		messages:   messages,
	}
}

// Authenticate verifies the Authorization header and stores the resulting
// principal in the request context. A missing header is rejected with 401,
// any verification failure with 403. Rejected requests never reach next.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(AuthorizationHeader)
		if token == "" {
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized,
				m.messages.MissingToken, auth.ErrMissingToken)
			return
		}

		claims, err := m.jwtService.VerifyToken(r.Context(), token)
		if err != nil {
			msg := m.messages.InvalidToken
			if errors.Is(err, auth.ErrExpiredToken) {
				msg = m.messages.ExpiredToken
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusForbidden, msg, err,
				shared.WithElevatedLogLevel())
			return
		}

		p := claims.Principal()
		ctx := shared.WithPrincipal(r.Context(), p)
		ctx = logger.WithLogger(ctx, logger.FromContext(ctx).With("user_id", p.ID.String()))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
