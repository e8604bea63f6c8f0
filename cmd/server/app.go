package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/catalog-api/internal/api/shared"
	"github.com/phrazzld/catalog-api/internal/config"
	"github.com/phrazzld/catalog-api/internal/platform/postgres"
	"github.com/phrazzld/catalog-api/internal/service"
	"github.com/phrazzld/catalog-api/internal/service/auth"
	"github.com/phrazzld/catalog-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore    store.UserStore
	profileStore store.ProfileStore
	catalogStore store.CatalogStore
	transactor   store.Transactor

	jwtService     auth.JWTService
	passwordHasher auth.PasswordHasher

	accountService service.AccountService
	profileService service.ProfileService
	catalogService service.CatalogService

	messages  *shared.Messages
	validator *shared.Validator
}

// newApplication creates a new application instance with all dependencies initialized.
// The database handle is owned by the application from here on and closed by cleanup.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordHasher, err = auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize password hasher: %w", err)
	}

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.profileStore = postgres.NewPostgresProfileStore(db, logger)
	app.catalogStore = postgres.NewPostgresCatalogStore(db, logger)
	app.transactor = store.NewSQLTransactor(db)

	app.accountService, err = service.NewAccountService(
		app.userStore,
		app.profileStore,
		app.transactor,
		app.passwordHasher,
		app.jwtService,
		service.AccountOptions{
			TokenLifetime:       cfg.Auth.TokenLifetime(),
			CreateKidsProfile:   cfg.Account.CreateKidsProfile,
			IssueTokenOnSignup:  cfg.Account.IssueTokenOnSignup,
			DefaultProfileImage: cfg.Account.DefaultProfileImage,
			KidsProfileImage:    cfg.Account.KidsProfileImage,
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create account service: %w", err)
	}

	app.profileService, err = service.NewProfileService(app.profileStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile service: %w", err)
	}

	app.catalogService, err = service.NewCatalogService(app.catalogStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog service: %w", err)
	}

	app.messages = shared.MessagesFor(cfg.Server.Locale)
	app.validator, err = shared.NewValidator(cfg.Server.Locale)
	if err != nil {
		return nil, fmt.Errorf("failed to create request validator: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
