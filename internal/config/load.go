package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "CATALOG"

// devTokenLifetimeMinutes is only applied in development; every other
// environment must configure the lifetime explicitly.
const devTokenLifetimeMinutes = 60

// keys lists every configuration key so that environment variables can be
// bound even when no config file mentions them.
var keys = []string{
	"server.port",
	"server.log_level",
	"server.environment",
	"server.locale",
	"database.url",
	"auth.jwt_secret",
	"auth.token_lifetime_minutes",
	"auth.bcrypt_cost",
	"account.create_kids_profile",
	"account.issue_token_on_signup",
	"account.default_profile_image",
	"account.kids_profile_image",
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	// A .env file is a local convenience and is never consulted outside development.
	if os.Getenv(EnvPrefix+"_SERVER_ENVIRONMENT") == EnvDevelopment {
		_ = godotenv.Load()
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Server.IsDevelopment() {
		if err := applyDevelopmentFallbacks(&cfg); err != nil {
			return nil, err
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.environment", EnvProduction)
	v.SetDefault("server.locale", "en")
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("account.create_kids_profile", true)
	v.SetDefault("account.issue_token_on_signup", true)
	v.SetDefault("account.default_profile_image", "https://cdn-icons-png.flaticon.com/512/1253/1253756.png")
	v.SetDefault("account.kids_profile_image", "https://cdn-icons-png.flaticon.com/512/2073/2073146.png")
}

// applyDevelopmentFallbacks fills settings a developer may leave out. The
// signing key is random per process, never a fixed value.
func applyDevelopmentFallbacks(cfg *Config) error {
	if cfg.Auth.JWTSecret == "" {
		secret, err := randomSecret(32)
		if err != nil {
			return fmt.Errorf("failed to generate development jwt secret: %w", err)
		}
		cfg.Auth.JWTSecret = secret
		cfg.Auth.EphemeralSecret = true
	}
	if cfg.Auth.TokenLifetimeMinutes == 0 {
		cfg.Auth.TokenLifetimeMinutes = devTokenLifetimeMinutes
	}
	return nil
}

func randomSecret(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
