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
	kafkaadapter "github.com/couchcryptid/quake-data-service/internal/adapter/kafka"
	"github.com/couchcryptid/quake-data-service/internal/adapter/usgs"
	"github.com/couchcryptid/quake-data-service/internal/config"
	"github.com/couchcryptid/quake-data-service/internal/domain"
	"github.com/couchcryptid/quake-data-service/internal/observability"
	"github.com/couchcryptid/quake-data-service/internal/poller"
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

	// The poller intentionally runs without the response cache: each cycle
	// must see events published since the previous one.
	catalog := usgs.NewClient(cfg.USGSBaseURL, cfg.USGSTimeout, metrics, logger)
	svc := query.NewService(catalog, logger, metrics)
	writer := kafkaadapter.NewWriter(cfg, logger)

	q := domain.NewMagnitudeQuery()
	q.MinMagnitude = cfg.PollMinMagnitude

	p := poller.New(svc, writer, q, cfg.PollInterval, logger, metrics)
	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, svc, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	go func() {
		if err := p.Run(ctx); err != nil {
			logger.Error("poller error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}

	logger.Info("shutdown complete")
}
