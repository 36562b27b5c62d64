// Package di provides dependency injection factories for creating application components.
package di

import (
	"dovizkuru_backend/internal/platform/externalapi/evds"
	"dovizkuru_backend/internal/platform/externalapi/goldapi"
	infrahttp "dovizkuru_backend/internal/platform/http"
)

// NewSeriesRepository creates a fully configured EVDS client with HTTP client.
func NewSeriesRepository(cfg evds.Config) *evds.Client {
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return evds.NewClient(cfg, httpClient)
}

// NewGoldAPIClient creates a gold-api client. Its HTTP client timeout is the
// upper bound; per-call timeouts are applied by the proxy usecase.
func NewGoldAPIClient(cfg goldapi.Config) *goldapi.Client {
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return goldapi.NewClient(cfg, httpClient)
}
