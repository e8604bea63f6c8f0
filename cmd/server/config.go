package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/catalog-api/internal/config"
)

// loadAppConfig loads the application configuration from environment variables or config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// logConfigSummary records the non-secret settings the process started with.
func logConfigSummary(cfg *config.Config, log *slog.Logger) {
	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"environment", cfg.Server.Environment,
		"locale", cfg.Server.Locale,
		"token_lifetime", cfg.Auth.TokenLifetime().String())

	if cfg.Auth.EphemeralSecret {
		log.Warn("no jwt secret configured, using a random per-process key; tokens will not survive a restart")
	}
	log.Debug("Database configuration", "url_present", cfg.Database.URL != "")
}
