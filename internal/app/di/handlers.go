package di

import (
	"dovizkuru_backend/internal/app/config"
	goldhandler "dovizkuru_backend/internal/feature/goldprice/transport/handler"
	goldusecase "dovizkuru_backend/internal/feature/goldprice/usecase"
	serieshandler "dovizkuru_backend/internal/feature/series/transport/handler"
	seriesusecase "dovizkuru_backend/internal/feature/series/usecase"
)

// NewSeriesHandler wires repository -> usecase -> handler for the series feature.
func NewSeriesHandler(cfg *config.Config) *serieshandler.SeriesHandler {
	uc := seriesusecase.NewSeriesUsecase(NewSeriesRepository(cfg.EVDS))
	return serieshandler.NewSeriesHandler(uc)
}

// NewGoldHandler wires client -> usecase -> handler for the gold price proxy.
func NewGoldHandler(cfg *config.Config) *goldhandler.GoldHandler {
	uc := goldusecase.NewProxyUsecase(NewGoldAPIClient(cfg.GoldAPI))
	return goldhandler.NewGoldHandler(uc)
}
