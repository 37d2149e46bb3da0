// Package googlesearch provides a client for the Google Custom Search JSON API.
package googlesearch

import (
	"os"
	"time"
)

// DefaultBaseURL is the Custom Search JSON API endpoint.
const DefaultBaseURL = "https://www.googleapis.com/customsearch/v1"

// Config holds configuration for the Custom Search API client.
type Config struct {
	APIKey   string        // API key for authentication
	EngineID string        // Programmable Search Engine ID (cx parameter)
	BaseURL  string        // API endpoint; overridable for tests
	Timeout  time.Duration // HTTP request timeout
	Interval time.Duration // Minimum interval between requests (provider rate limit)
}

// LoadConfig loads Custom Search configuration from environment variables.
func LoadConfig() Config {
	baseURL := os.Getenv("GOOGLE_SEARCH_BASE_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return Config{
		APIKey:   os.Getenv("GOOGLE_SEARCH_API_KEY"),
		EngineID: os.Getenv("GOOGLE_SEARCH_ENGINE_ID"),
		BaseURL:  baseURL,
		Timeout:  10 * time.Second,
		Interval: 2 * time.Second,
	}
}
