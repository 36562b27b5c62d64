// Package goldapi provides a credential-injecting client for the gold-api price service.
package goldapi

import (
	"os"
	"time"
)

// DefaultBaseURL is the public gold-api endpoint.
const DefaultBaseURL = "https://api.gold-api.com"

// Config holds configuration for the gold-api client.
type Config struct {
	APIKey  string        // Sent as "x-api-key"; empty disables the proxy
	BaseURL string        // Base URL for the API (e.g., "https://api.gold-api.com")
	Timeout time.Duration // Upper bound for any call; per-call timeouts may be shorter
}

// LoadConfig loads gold-api configuration from environment variables.
func LoadConfig() Config {
	baseURL := os.Getenv("GOLD_API_BASE_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return Config{
		APIKey:  os.Getenv("GOLD_API_KEY"),
		BaseURL: baseURL,
		Timeout: 30 * time.Second,
	}
}

// Enabled reports whether a credential is configured.
func (c Config) Enabled() bool {
	return c.APIKey != ""
}
