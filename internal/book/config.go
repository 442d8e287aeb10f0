// Package book provides mood-based book recommendations from the
// Google Books API.
package book

import "os"

// Config holds Google Books API configuration. The API key is
// optional; it only raises rate limits.
type Config struct {
	APIKey string
}

// LoadConfig reads Google Books configuration from the environment.
func LoadConfig() *Config {
	return &Config{APIKey: os.Getenv("GOOGLE_BOOKS_API_KEY")}
}
