package di

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dovizkuru_backend/internal/app/config"
	"dovizkuru_backend/internal/platform/externalapi/evds"
	"dovizkuru_backend/internal/platform/externalapi/goldapi"
)

func TestFactories(t *testing.T) {
	cfg := &config.Config{
		EVDS:    evds.Config{APIKey: "k", BaseURL: evds.DefaultBaseURL, Timeout: 30 * time.Second},
		GoldAPI: goldapi.Config{BaseURL: goldapi.DefaultBaseURL, Timeout: 30 * time.Second},
	}

	assert.NotNil(t, NewSeriesRepository(cfg.EVDS))
	assert.NotNil(t, NewGoldAPIClient(cfg.GoldAPI))
	assert.NotNil(t, NewSeriesHandler(cfg))
	assert.NotNil(t, NewGoldHandler(cfg))
}
