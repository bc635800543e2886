// Package config loads portal configuration from environment variables
// with sensible defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds all portal configuration.
type Config struct {
	Database DatabaseConfig
	Session  SessionConfig
	Tracking TrackingConfig
}

// DatabaseConfig contains database-related settings.
type DatabaseConfig struct {
	Path string // SQLite database file path
}

// SessionConfig contains session persistence settings.
type SessionConfig struct {
	Path   string // session slot file path
	Secret string // HS256 signing secret for the session token
}

// TrackingConfig controls tracking number issuance.
type TrackingConfig struct {
	Prefix string // alphabetic prefix, e.g. "CP"
}

// Load loads configuration from environment variables. The session
// secret has no default; production deployments must set it.
func Load() (*Config, error) {
	cfg := defaults()
	if cfg.Session.Secret == "" {
		return nil, fmt.Errorf("PORTAL_SESSION_SECRET environment variable is not set; required for production")
	}
	return cfg, nil
}

// LoadWithDefaults is like Load but falls back to a development secret.
// WARNING: only use in development.
func LoadWithDefaults() *Config {
	cfg := defaults()
	if cfg.Session.Secret == "" {
		cfg.Session.Secret = "dev-secret-change-me"
	}
	return cfg
}

// LoadOrDefaults prefers the strict Load and reports whether the
// development fallback secret had to be used. Callers should warn the
// operator when it returns true.
func LoadOrDefaults() (*Config, bool) {
	if cfg, err := Load(); err == nil {
		return cfg, false
	}
	return LoadWithDefaults(), true
}

func defaults() *Config {
	home, _ := os.UserHomeDir()
	base := filepath.Join(home, ".courier-portal")
	return &Config{
		Database: DatabaseConfig{
			Path: getEnv("PORTAL_DB_PATH", filepath.Join(base, "portal.db")),
		},
		Session: SessionConfig{
			Path:   getEnv("PORTAL_SESSION_PATH", filepath.Join(base, "session")),
			Secret: getEnv("PORTAL_SESSION_SECRET", ""),
		},
		Tracking: TrackingConfig{
			Prefix: getEnv("PORTAL_TRACKING_PREFIX", "CP"),
		},
	}
}

// getEnv retrieves an environment variable with a default fallback.
func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

// String returns a printable form of the config with secrets masked.
func (c *Config) String() string {
	return fmt.Sprintf("Config{DB: %s, Session: %s, Prefix: %s, Secret: *** (masked) ***}",
		c.Database.Path, c.Session.Path, c.Tracking.Prefix)
}
