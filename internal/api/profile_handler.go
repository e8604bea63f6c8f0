package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/catalog-api/internal/api/shared"
	"github.com/phrazzld/catalog-api/internal/platform/logger"
	"github.com/phrazzld/catalog-api/internal/service"
	"github.com/phrazzld/catalog-api/internal/service/auth"
)

// ProfileHandler serves the caller's profiles.
type ProfileHandler struct {
	profiles  service.ProfileService
	validator *shared.Validator
	messages  *shared.Messages
	logger    *slog.Logger
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(
	profiles service.ProfileService,
	validator *shared.Validator,
	messages *shared.Messages,
	logger *slog.Logger,
) *ProfileHandler {
	if profiles == nil || validator == nil || messages == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("profiles, validator and messages are required for ProfileHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ProfileHandler{
		profiles:  profiles,
		validator: validator,
		messages:  messages,
		logger:    logger.With(slog.String("component", "profile_handler")),
	}
}

// List handles GET /profiles.
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	p, ok := requirePrincipal(w, r, h.messages)
	if !ok {
		return
	}

	profiles, err := h.profiles.List(r.Context(), p)
	if err != nil {
		respondWithServiceError(w, r, h.messages, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ProfilesResponse{Profiles: profiles})
}

// Create handles POST /profiles. The new profile always belongs to the caller.
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := requirePrincipal(w, r, h.messages)
	if !ok {
		return
	}

	var req ProfileRequest
	if err := decodeAndValidate(r, h.validator, &req); err != nil {
		respondWithServiceError(w, r, h.messages, err)
		return
	}

	profile, err := h.profiles.Create(r.Context(), p, service.ProfileInput{Name: req.Name, ImageRef: req.Img})
	if err != nil {
		respondWithServiceError(w, r, h.messages, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, ProfileResponse{Profile: profile})
}

// Delete handles DELETE /profiles/{id}: 404 when absent, 403 when owned by
// someone else.
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	p, ok := requirePrincipal(w, r, h.messages)
	if !ok {
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		respondWithServiceError(w, r, h.messages, err)
		return
	}

	if err := h.profiles.Delete(r.Context(), p, id); err != nil {
		if errors.Is(err, auth.ErrForbidden) {
			log.Warn("attempt to delete foreign profile", slog.String("profile_id", id.String()))
			shared.RespondWithErrorAndLog(w, r, http.StatusForbidden, h.messages.ProfileForbid, err)
			return
		}
		respondWithServiceError(w, r, h.messages, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: h.messages.ProfileDeleted(id)})
}
