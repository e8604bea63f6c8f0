package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/platform/logger"
	"github.com/phrazzld/catalog-api/internal/redact"
	"github.com/phrazzld/catalog-api/internal/service/auth"
	"github.com/phrazzld/catalog-api/internal/store"
)

// ProfileInput describes a profile requested at signup or creation.
type ProfileInput struct {
	Name     string
	ImageRef string
}

// SignupInput carries the fields of a new account.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Profiles []ProfileInput
}

// UpdateAccountInput carries optional account changes. Nil fields are left as is.
type UpdateAccountInput struct {
	Name     *string
	Email    *string
	Password *string
}

// Session is a freshly issued credential token.
type Session struct {
	Token     string
	UserID    uuid.UUID
	ExpiresAt time.Time
}

// SignupResult is the created account and, when enabled, its first session.
type SignupResult struct {
	User    *domain.User
	Session *Session
}

// AccountOptions controls what signup creates and how long tokens live.
type AccountOptions struct {
	TokenLifetime       time.Duration
	CreateKidsProfile   bool
	IssueTokenOnSignup  bool
	DefaultProfileImage string
	KidsProfileImage    string
}

// AccountService provides signup, login and self-service account operations.
type AccountService interface {
	// Signup creates a user and its initial profiles atomically.
	Signup(ctx context.Context, in SignupInput) (*SignupResult, error)

	// Login verifies credentials and issues a token.
	Login(ctx context.Context, email, password string) (*Session, error)

	// GetAccount returns an account with its profiles. A nil id means the
	// principal's own account.
	GetAccount(ctx context.Context, p auth.Principal, id *uuid.UUID) (*domain.User, error)

	// UpdateAccount changes name, email or password of the principal's own account.
	UpdateAccount(ctx context.Context, p auth.Principal, id uuid.UUID, in UpdateAccountInput) (*domain.User, error)

	// DeleteAccount removes the principal's own account and all its profiles.
	DeleteAccount(ctx context.Context, p auth.Principal, id uuid.UUID) error
}

type accountService struct {
	users    store.UserStore
	profiles store.ProfileStore
	tx       store.Transactor
	hasher   auth.PasswordHasher
	tokens   auth.JWTService
	opts     AccountOptions
	logger   *slog.Logger
	now      func() time.Time
}

// NewAccountService creates an AccountService.
func NewAccountService(
	users store.UserStore,
	profiles store.ProfileStore,
	tx store.Transactor,
	hasher auth.PasswordHasher,
	tokens auth.JWTService,
	opts AccountOptions,
	logger *slog.Logger,
) (AccountService, error) {
	if users == nil || profiles == nil || tx == nil {
		return nil, errors.New("account service requires user store, profile store and transactor")
	}
	if hasher == nil || tokens == nil {
		return nil, errors.New("account service requires password hasher and token service")
	}
	if opts.TokenLifetime <= 0 {
		return nil, fmt.Errorf("token lifetime must be positive, got %s", opts.TokenLifetime)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &accountService{
		users:    users,
		profiles: profiles,
		tx:       tx,
		hasher:   hasher,
		tokens:   tokens,
		opts:     opts,
		logger:   logger.With("component", "account_service"),
		now:      time.Now,
	}, nil
}

// Signup implements AccountService.
func (s *accountService) Signup(ctx context.Context, in SignupInput) (*SignupResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(in.Name, in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	user.HashedPassword, err = s.hash(in.Password)
	if err != nil {
		return nil, err
	}
	user.Password = ""

	profiles, err := s.initialProfiles(user, in.Profiles)
	if err != nil {
		return nil, err
	}

	var session *Session
	err = s.tx.WithinTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.users.WithTx(tx).Create(ctx, user); err != nil {
			return err
		}
		txProfiles := s.profiles.WithTx(tx)
		for i := range profiles {
			if err := txProfiles.Create(ctx, &profiles[i]); err != nil {
				return err
			}
		}
		if !s.opts.IssueTokenOnSignup {
			return nil
		}
		// Issued inside the transaction so a signing failure leaves no account behind.
		var issueErr error
		session, issueErr = s.issue(ctx, auth.Principal{ID: user.ID, Email: user.Email})
		return issueErr
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("signup with existing email")
		} else {
			log.Error("failed to create account", "error", redact.Error(err))
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	user.Profiles = profiles
	log.Info("account created",
		"user_id", user.ID,
		"profiles", len(profiles))

	return &SignupResult{User: user, Session: session}, nil
}

// initialProfiles builds the self-named default profile, the optional Kids
// profile and the caller's extra profiles, in that order.
func (s *accountService) initialProfiles(user *domain.User, extra []ProfileInput) ([]domain.Profile, error) {
	wanted := []ProfileInput{{Name: user.Name, ImageRef: s.opts.DefaultProfileImage}}
	if s.opts.CreateKidsProfile {
		wanted = append(wanted, ProfileInput{Name: domain.KidsProfileName, ImageRef: s.opts.KidsProfileImage})
	}
	wanted = append(wanted, extra...)

	profiles := make([]domain.Profile, 0, len(wanted))
	for i, in := range wanted {
		p, err := domain.NewProfile(user.ID, in.Name, in.ImageRef)
		if err != nil {
			var vErr *domain.ValidationError
			if errors.As(err, &vErr) {
				return nil, domain.NewValidationError(
					fmt.Sprintf("profiles[%d].%s", i, vErr.Field), vErr.Message, vErr.Err)
			}
			return nil, err
		}
		// Stable ordering for profiles created in the same instant.
		p.CreatedAt = p.CreatedAt.Add(time.Duration(i) * time.Microsecond)
		profiles = append(profiles, *p)
	}
	return profiles, nil
}

// Login implements AccountService.
func (s *accountService) Login(ctx context.Context, email, password string) (*Session, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if strings.TrimSpace(email) == "" {
		return nil, domain.NewValidationError("email", "is required", nil)
	}
	if password == "" {
		return nil, domain.NewValidationError("password", "is required", nil)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			log.Error("failed to look up user for login", "error", redact.Error(err))
		}
		return nil, fmt.Errorf("login failed: %w", err)
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			log.Debug("login with wrong password", "user_id", user.ID)
		} else {
			log.Error("failed to compare password", "error", redact.Error(err), "user_id", user.ID)
		}
		return nil, fmt.Errorf("login failed: %w", err)
	}

	session, err := s.issue(ctx, auth.Principal{ID: user.ID, Email: user.Email})
	if err != nil {
		return nil, err
	}

	log.Info("user logged in", "user_id", user.ID)
	return session, nil
}

// GetAccount implements AccountService.
func (s *accountService) GetAccount(ctx context.Context, p auth.Principal, id *uuid.UUID) (*domain.User, error) {
	if err := auth.CanReadUser(p, id); err != nil {
		return nil, err
	}

	target := p.ID
	if id != nil {
		target = *id
	}

	user, err := s.users.GetByID(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve account: %w", err)
	}

	profiles, err := s.profiles.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve profiles: %w", err)
	}
	user.Profiles = profiles

	return user, nil
}

// UpdateAccount implements AccountService.
func (s *accountService) UpdateAccount(
	ctx context.Context,
	p auth.Principal,
	id uuid.UUID,
	in UpdateAccountInput,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := auth.CanMutateAccount(p, id); err != nil {
		return nil, err
	}

	var hashed string
	if in.Password != nil {
		if *in.Password == "" {
			return nil, domain.NewValidationError("password", "must not be empty", nil)
		}
		var err error
		if hashed, err = s.hash(*in.Password); err != nil {
			return nil, err
		}
	}

	var updated *domain.User
	err := s.tx.WithinTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		users := s.users.WithTx(tx)

		user, err := users.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if in.Name != nil {
			user.Name = strings.TrimSpace(*in.Name)
		}
		if in.Email != nil {
			user.Email = domain.NormalizeEmail(*in.Email)
		}
		if hashed != "" {
			user.HashedPassword = hashed
		}
		if err := user.Validate(); err != nil {
			return err
		}

		if err := users.Update(ctx, user); err != nil {
			return err
		}

		user.Profiles, err = s.profiles.WithTx(tx).ListByUser(ctx, user.ID)
		updated = user
		return err
	})
	if err != nil {
		if !errors.Is(err, domain.ErrValidation) && !store.IsDuplicateError(err) && !store.IsNotFoundError(err) {
			log.Error("failed to update account", "error", redact.Error(err), "user_id", id)
		}
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	log.Info("account updated",
		"user_id", id,
		"password_changed", hashed != "")
	return updated, nil
}

// DeleteAccount implements AccountService.
func (s *accountService) DeleteAccount(ctx context.Context, p auth.Principal, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := auth.CanMutateAccount(p, id); err != nil {
		return err
	}

	var removed int64
	err := s.tx.WithinTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		// Profiles reference the user without a schema-level cascade.
		n, err := s.profiles.WithTx(tx).DeleteByUser(ctx, id)
		if err != nil {
			return err
		}
		removed = n
		return s.users.WithTx(tx).Delete(ctx, id)
	})
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			log.Error("failed to delete account", "error", redact.Error(err), "user_id", id)
		}
		return fmt.Errorf("failed to delete account: %w", err)
	}

	log.Info("account deleted",
		"user_id", id,
		"profiles_removed", removed)
	return nil
}

func (s *accountService) hash(password string) (string, error) {
	hashed, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return "", domain.NewValidationError("password", "must be at most 72 bytes", err)
		}
		return "", err
	}
	return hashed, nil
}

func (s *accountService) issue(ctx context.Context, p auth.Principal) (*Session, error) {
	now := s.now()
	token, err := s.tokens.IssueToken(ctx, p, s.opts.TokenLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &Session{
		Token:     token,
		UserID:    p.ID,
		ExpiresAt: now.Add(s.opts.TokenLifetime).UTC().Truncate(time.Second),
	}, nil
}
