package config

import (
	"os"
	"strconv"
	"time"

	"blackbox/internal/errors"
)

// Config represents the complete server configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Runs     RunConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds API server settings
type ServerConfig struct {
	Port string
}

// RunConfig holds run lifecycle settings
type RunConfig struct {
	// StrictTransitions rejects run status updates that fall outside
	// pending -> running -> {success, failed}. Off by default: existing
	// automation relies on last-write-wins status updates.
	StrictTransitions bool
}

// ClientConfig holds settings for the CLI talking to a remote API
type ClientConfig struct {
	APIBaseURL string
	Timeout    time.Duration
}

// Load reads server configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Runs: RunConfig{
			StrictTransitions: getEnvBoolOrDefault("STRICT_RUN_TRANSITIONS", false),
		},
	}

	if cfg.Database.URL == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}

	return cfg, nil
}

// LoadClient reads CLI configuration from environment variables
func LoadClient() *ClientConfig {
	return &ClientConfig{
		APIBaseURL: getEnvOrDefault("BLACKBOX_API_URL", "http://127.0.0.1:8000"),
		Timeout:    getEnvDurationOrDefault("BLACKBOX_API_TIMEOUT", 10*time.Second),
	}
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
