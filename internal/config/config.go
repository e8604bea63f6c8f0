package config

import "time"

// Deployment environments recognised by the service.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Account  AccountConfig  `mapstructure:"account"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port        int    `mapstructure:"port"        validate:"required,gt=0,lt=65536"`
	LogLevel    string `mapstructure:"log_level"   validate:"required,oneof=debug info warn error"`
	Environment string `mapstructure:"environment" validate:"required,oneof=development staging production"`
	// Locale selects the language of client-facing messages.
	Locale string `mapstructure:"locale" validate:"required,oneof=en pt-BR"`
}

// IsDevelopment reports whether the service runs in a development environment.
func (c ServerConfig) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gte=1,lte=1440"`
	BcryptCost           int    `mapstructure:"bcrypt_cost"            validate:"required,gte=10,lte=31"`

	// EphemeralSecret is set when JWTSecret was generated at startup because
	// none was configured in a development environment.
	EphemeralSecret bool `mapstructure:"-"`
}

// TokenLifetime returns the configured access token lifetime.
func (c AuthConfig) TokenLifetime() time.Duration {
	return time.Duration(c.TokenLifetimeMinutes) * time.Minute
}

// AccountConfig controls what signup creates on behalf of a new user.
type AccountConfig struct {
	CreateKidsProfile   bool   `mapstructure:"create_kids_profile"`
	IssueTokenOnSignup  bool   `mapstructure:"issue_token_on_signup"`
	DefaultProfileImage string `mapstructure:"default_profile_image" validate:"omitempty,url"`
	KidsProfileImage    string `mapstructure:"kids_profile_image"    validate:"omitempty,url"`
}
