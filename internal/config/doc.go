// Package config handles configuration loading, parsing, and validation
// from environment variables (prefixed CATALOG_), an optional config.yaml and,
// in development only, a local .env file. It keeps configuration details
// separate from business logic.
//
// The JWT signing key and token lifetime have no production defaults: Load
// fails when they are absent outside the development environment.
package config
