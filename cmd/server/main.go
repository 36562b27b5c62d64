package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"dovizkuru_backend/internal/app/config"
	"dovizkuru_backend/internal/app/di"
	"dovizkuru_backend/internal/app/router"
	"dovizkuru_backend/internal/platform/logger"
)

const shutdownGrace = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	slog.SetDefault(logger.New(cfg.LogLevel))

	// 資格情報が無ければ起動しない
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !cfg.GoldAPI.Enabled() {
		slog.Warn("GOLD_API_KEY is not set; gold price endpoints will return 500")
	}

	gin.SetMode(gin.ReleaseMode)

	// Handler
	seriesH := di.NewSeriesHandler(cfg)
	goldH := di.NewGoldHandler(cfg)

	// ルータ生成
	r := router.NewRouter(cfg, seriesH, goldH)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		// 最長の上流呼び出し（30s）より長く取る
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("server started", "addr", srv.Addr, "allowAllOrigins", cfg.AllowAllOrigins())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		slog.Info("shutting down server")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("server stopped")
	return nil
}
