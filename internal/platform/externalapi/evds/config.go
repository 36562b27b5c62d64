// Package evds provides a client for the TCMB EVDS statistical data API.
package evds

import (
	"os"
	"time"
)

// DefaultBaseURL is the public EVDS service endpoint.
const DefaultBaseURL = "https://evds2.tcmb.gov.tr/service/evds"

// Config holds configuration for the EVDS API client.
type Config struct {
	APIKey  string        // API key sent in the "key" header
	BaseURL string        // Base URL for the API (e.g., "https://evds2.tcmb.gov.tr/service/evds")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads EVDS configuration from environment variables.
func LoadConfig() Config {
	baseURL := os.Getenv("EVDS_BASE_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return Config{
		APIKey:  os.Getenv("EVDS_API_KEY"),
		BaseURL: baseURL,
		Timeout: 30 * time.Second,
	}
}
