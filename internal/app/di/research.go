// Package di provides dependency injection factories for creating application components.
package di

import (
	"research_backend/internal/feature/research/adapters/googlesearch"
	infrahttp "research_backend/internal/platform/http"
)

// NewSearchRepository creates a fully configured GoogleSearch client with HTTP client.
func NewSearchRepository() *googlesearch.GoogleSearch {
	cfg := googlesearch.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return googlesearch.NewGoogleSearch(cfg, httpClient)
}
