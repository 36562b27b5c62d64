package router

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"dovizkuru_backend/internal/app/config"
	goldhandler "dovizkuru_backend/internal/feature/goldprice/transport/handler"
	serieshandler "dovizkuru_backend/internal/feature/series/transport/handler"
	"dovizkuru_backend/internal/platform/http/handler"
	"dovizkuru_backend/internal/platform/http/middleware"
)

func NewRouter(cfg *config.Config, series *serieshandler.SeriesHandler, gold *goldhandler.GoldHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.AccessLog(), middleware.Recovery())
	r.Use(cors.New(corsConfig(cfg)))

	// 導通確認用
	health := handler.NewHealth(handler.Backend)
	r.GET("/health", health)
	r.HEAD("/health", health)
	r.OPTIONS("/health", health)

	apiGroup := r.Group("/api")
	{
		// TCMB EVDS 系列データ
		apiGroup.GET("/tcmb", series.GetSeries)

		// gold-api プロキシ
		apiGroup.GET("/gold/price/:symbol", gold.GetPrice)
		apiGroup.GET("/gold/history", gold.GetHistory)
	}

	return r
}

// corsConfig はCORS_ALLOWED_ORIGINSからCORS設定を組み立てます。
// 未指定または "*" を含む場合は全オリジンを許可します。
func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if cfg.AllowAllOrigins() {
		c.AllowAllOrigins = true
		return c
	}

	c.AllowOrigins = cfg.AllowedOrigins
	for _, o := range cfg.AllowedOrigins {
		if strings.Contains(o, "*") {
			c.AllowWildcard = true
		}
	}
	return c
}
