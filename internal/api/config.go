package api

import (
	"os"
	"time"
)

const defaultBaseURL = "https://jobalign-backend.onrender.com/api"

// Config holds remote service configuration.
type Config struct {
	// BaseURL is the common prefix for all endpoints.
	BaseURL string

	// Timeout is the maximum duration for a single request. Default: 30s.
	// Expiry surfaces as a normal transport error; nothing is retried
	// automatically.
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: defaultBaseURL,
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling
// back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if u := os.Getenv("SKILLPATH_API_BASE_URL"); u != "" {
		cfg.BaseURL = u
	}
	if t := os.Getenv("SKILLPATH_API_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}
