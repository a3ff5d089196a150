// Package config handles application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
// Fields are populated from environment variables.
type Config struct {
	// Timezone is the IANA zone the host clock is read in. Menu pages are
	// Swedish, so the default is Europe/Stockholm.
	Timezone string

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text
}

// Load reads configuration from environment variables.
// A .env file is loaded first if one is present (no-op otherwise).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Timezone:  getEnv("TIMEZONE", "Europe/Stockholm"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all configuration values are usable.
func (c *Config) Validate() error {
	var errs []error

	if c.Timezone == "" {
		errs = append(errs, errors.New("TIMEZONE is required"))
	} else if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("TIMEZONE %q is not a known zone: %w", c.Timezone, err))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", c.LogLevel))
	}

	switch c.LogFormat {
	case "json", "text":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be one of: json, text; got %q", c.LogFormat))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// getEnv reads an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
