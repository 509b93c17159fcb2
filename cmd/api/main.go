package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/quake-data-service/internal/adapter/http"
	"github.com/couchcryptid/quake-data-service/internal/adapter/usgs"
	"github.com/couchcryptid/quake-data-service/internal/config"
	"github.com/couchcryptid/quake-data-service/internal/domain"
	"github.com/couchcryptid/quake-data-service/internal/observability"
	"github.com/couchcryptid/quake-data-service/internal/query"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	var catalog domain.Catalog = usgs.NewClient(cfg.USGSBaseURL, cfg.USGSTimeout, metrics, logger)
	if cfg.CacheEnabled {
		cached, err := usgs.NewCachedCatalog(catalog, cfg.CacheSize, metrics)
		if err != nil {
			logger.Error("failed to create response cache", "error", err)
			os.Exit(1)
		}
		catalog = cached
		logger.Info("response cache enabled", "size", cfg.CacheSize)
	} else {
		logger.Info("response cache disabled")
	}

	svc := query.NewService(catalog, logger, metrics)
	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, svc, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
