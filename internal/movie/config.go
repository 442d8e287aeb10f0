// Package movie provides mood-based movie recommendations from TMDB.
package movie

import (
	"errors"
	"os"
)

// ErrMissingAPIKey is returned when TMDB_API_KEY is not set.
var ErrMissingAPIKey = errors.New("missing TMDB_API_KEY environment variable")

// Config holds TMDB API configuration.
type Config struct {
	APIKey string
}

// LoadConfig reads TMDB configuration from environment variables.
func LoadConfig() (*Config, error) {
	apiKey := os.Getenv("TMDB_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &Config{APIKey: apiKey}, nil
}
