// Package music provides mood-based Spotify recommendations.
package music

import (
	"errors"
	"os"
)

// Sentinel errors for missing credentials.
var (
	ErrMissingClientID     = errors.New("missing SPOTIFY_CLIENT_ID environment variable")
	ErrMissingClientSecret = errors.New("missing SPOTIFY_CLIENT_SECRET environment variable")
)

// Config holds Spotify API credentials.
type Config struct {
	ClientID     string
	ClientSecret string
}

// LoadConfig reads Spotify configuration from environment variables.
func LoadConfig() (*Config, error) {
	clientID := os.Getenv("SPOTIFY_CLIENT_ID")
	if clientID == "" {
		return nil, ErrMissingClientID
	}
	clientSecret := os.Getenv("SPOTIFY_CLIENT_SECRET")
	if clientSecret == "" {
		return nil, ErrMissingClientSecret
	}
	return &Config{ClientID: clientID, ClientSecret: clientSecret}, nil
}
