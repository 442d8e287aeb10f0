// Package analyzer turns free-text mood descriptions into structured
// mood analyses using an OpenAI-compatible chat completion endpoint.
package analyzer

import (
	"errors"
	"os"
)

// ErrMissingAPIKey is returned when LLM_API_KEY is not set.
var ErrMissingAPIKey = errors.New("missing LLM_API_KEY environment variable")

// Defaults for the chat completion endpoint.
const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4o-mini"
)

// Config holds LLM endpoint configuration.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// LoadConfig reads LLM configuration from environment variables.
// LLM_BASE_URL and LLM_MODEL are optional; LLM_API_KEY is required.
func LoadConfig() (*Config, error) {
	apiKey := os.Getenv("LLM_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &Config{
		APIKey:  apiKey,
		BaseURL: os.Getenv("LLM_BASE_URL"),
		Model:   os.Getenv("LLM_MODEL"),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return cfg, nil
}
