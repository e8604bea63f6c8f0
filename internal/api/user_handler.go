package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/catalog-api/internal/api/shared"
	"github.com/phrazzld/catalog-api/internal/service"
)

// UserHandler serves the authenticated account endpoints. Every operation is
// restricted to the caller's own account.
type UserHandler struct {
	accounts  service.AccountService
	validator *shared.Validator
	messages  *shared.Messages
	logger    *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(
	accounts service.AccountService,
	validator *shared.Validator,
	messages *shared.Messages,
	logger *slog.Logger,
) *UserHandler {
	if accounts == nil || validator == nil || messages == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("accounts, validator and messages are required for UserHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserHandler{
		accounts:  accounts,
		validator: validator,
		messages:  messages,
		logger:    logger.With(slog.String("component", "user_handler")),
	}
}

// GetSelf handles GET /users. An optional id query parameter must name the
// caller's own account.
func (h *UserHandler) GetSelf(w http.ResponseWriter, r *http.Request) {
	id, err := getQueryUUID(r, "id")
	if err != nil {
		respondWithServiceError(w, r, h.messages, err)
		return
	}
	h.get(w, r, id)
}

// Get handles GET /users/{id}. Any id other than the caller's is forbidden.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		respondWithServiceError(w, r, h.messages, err)
		return
	}
	h.get(w, r, &id)
}

func (h *UserHandler) get(w http.ResponseWriter, r *http.Request, id *uuid.UUID) {
	p, ok := requirePrincipal(w, r, h.messages)
	if !ok {
		return
	}

	user, err := h.accounts.GetAccount(r.Context(), p, id)
	if err != nil {
		respondWithServiceError(w, r, h.messages, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UserResponse{User: user})
}

// Update handles PUT /users/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := requirePrincipal(w, r, h.messages)
	if !ok {
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		respondWithServiceError(w, r, h.messages, err)
		return
	}

	var req UpdateUserRequest
	if err := decodeAndValidate(r, h.validator, &req); err != nil {
		respondWithServiceError(w, r, h.messages, err)
		return
	}

	user, err := h.accounts.UpdateAccount(r.Context(), p, id, service.UpdateAccountInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondWithServiceError(w, r, h.messages, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UserResponse{User: user})
}

// Delete handles DELETE /users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	p, ok := requirePrincipal(w, r, h.messages)
	if !ok {
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		respondWithServiceError(w, r, h.messages, err)
		return
	}

	if err := h.accounts.DeleteAccount(r.Context(), p, id); err != nil {
		respondWithServiceError(w, r, h.messages, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: h.messages.UserDeleted(id)})
}
