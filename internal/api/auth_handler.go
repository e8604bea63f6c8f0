package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/catalog-api/internal/api/shared"
	"github.com/phrazzld/catalog-api/internal/platform/logger"
	"github.com/phrazzld/catalog-api/internal/service"
)

// AuthHandler serves the public credential endpoints.
type AuthHandler struct {
	accounts  service.AccountService
	validator *shared.Validator
	messages  *shared.Messages
	logger    *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	accounts service.AccountService,
	validator *shared.Validator,
	messages *shared.Messages,
	logger *slog.Logger,
) *AuthHandler {
	if accounts == nil || validator == nil || messages == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("accounts, validator and messages are required for AuthHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthHandler{
		accounts:  accounts,
		validator: validator,
		messages:  messages,
		logger:    logger.With(slog.String("component", "auth_handler")),
	}
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeAndValidate(r, h.validator, &req); err != nil {
		respondWithServiceError(w, r, h.messages, err)
		return
	}

	session, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondWithServiceError(w, r, h.messages, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Token:     session.Token,
		UserID:    session.UserID,
		ExpiresAt: session.ExpiresAt,
	})
}

// Signup handles POST /users. It creates the account with its initial
// profiles and, when configured, returns a token for it.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req SignupRequest
	if err := decodeAndValidate(r, h.validator, &req); err != nil {
		respondWithServiceError(w, r, h.messages, err)
		return
	}

	in := service.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	for _, p := range req.Profiles {
		in.Profiles = append(in.Profiles, service.ProfileInput{Name: p.Name, ImageRef: p.Img})
	}

	result, err := h.accounts.Signup(r.Context(), in)
	if err != nil {
		respondWithServiceError(w, r, h.messages, err)
		return
	}

	resp := SignupResponse{User: result.User}
	if result.Session != nil {
		resp.Token = result.Session.Token
		resp.ExpiresAt = &result.Session.ExpiresAt
	}

	log.Debug("signup completed", slog.String("user_id", result.User.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, resp)
}
