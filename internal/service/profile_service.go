package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/platform/logger"
	"github.com/phrazzld/catalog-api/internal/redact"
	"github.com/phrazzld/catalog-api/internal/service/auth"
	"github.com/phrazzld/catalog-api/internal/store"
)

// ProfileService manages the profiles of the authenticated principal.
type ProfileService interface {
	// List returns the principal's profiles.
	List(ctx context.Context, p auth.Principal) ([]domain.Profile, error)

	// Create adds a profile owned by the principal.
	Create(ctx context.Context, p auth.Principal, in ProfileInput) (*domain.Profile, error)

	// Delete removes a profile the principal owns. Absent profiles yield
	// store.ErrProfileNotFound, foreign ones auth.ErrForbidden.
	Delete(ctx context.Context, p auth.Principal, id uuid.UUID) error
}

type profileService struct {
	profiles store.ProfileStore
	logger   *slog.Logger
}

// NewProfileService creates a ProfileService.
func NewProfileService(profiles store.ProfileStore, logger *slog.Logger) (ProfileService, error) {
	if profiles == nil {
		return nil, errors.New("profile service requires a profile store")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &profileService{
		profiles: profiles,
		logger:   logger.With("component", "profile_service"),
	}, nil
}

// List implements ProfileService.
func (s *profileService) List(ctx context.Context, p auth.Principal) ([]domain.Profile, error) {
	profiles, err := s.profiles.ListByUser(ctx, p.ID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).
			Error("failed to list profiles", "error", redact.Error(err), "user_id", p.ID)
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

// Create implements ProfileService.
func (s *profileService) Create(ctx context.Context, p auth.Principal, in ProfileInput) (*domain.Profile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// The owner is always the principal, never a client-supplied id.
	profile, err := domain.NewProfile(p.ID, in.Name, in.ImageRef)
	if err != nil {
		return nil, err
	}

	if err := s.profiles.Create(ctx, profile); err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			log.Error("failed to create profile", "error", redact.Error(err), "user_id", p.ID)
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	log.Info("profile created", "profile_id", profile.ID, "user_id", p.ID)
	return profile, nil
}

// Delete implements ProfileService.
func (s *profileService) Delete(ctx context.Context, p auth.Principal, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	profile, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return err
		}
		log.Error("failed to load profile", "error", redact.Error(err), "profile_id", id)
		return fmt.Errorf("failed to load profile: %w", err)
	}

	if err := auth.CanDeleteProfile(p, profile); err != nil {
		log.Debug("profile deletion denied",
			"profile_id", id,
			"user_id", p.ID)
		return err
	}

	if err := s.profiles.Delete(ctx, id); err != nil {
		if !errors.Is(err, store.ErrProfileNotFound) {
			log.Error("failed to delete profile", "error", redact.Error(err), "profile_id", id)
		}
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	log.Info("profile deleted", "profile_id", id, "user_id", p.ID)
	return nil
}
