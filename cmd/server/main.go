package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/BerylCAtieno/country-profile-aggregator/internal/aggregator"
	"github.com/BerylCAtieno/country-profile-aggregator/internal/api"
	"github.com/BerylCAtieno/country-profile-aggregator/internal/config"
	"github.com/BerylCAtieno/country-profile-aggregator/internal/logging"
	"github.com/BerylCAtieno/country-profile-aggregator/internal/ratelimit"
	"github.com/BerylCAtieno/country-profile-aggregator/internal/sources"
	"github.com/BerylCAtieno/country-profile-aggregator/internal/telemetry"
)

func main() {
	// .env is optional; real environment variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to read .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging)
	gin.SetMode(cfg.HTTP.GinMode)

	if !cfg.Upstream.ExchangeRateConfigured() {
		logger.Warn("EXCHANGE_RATE_API_KEY not set; exchange rates will be unavailable")
	}
	if !cfg.Upstream.NewsConfigured() {
		logger.Warn("NEWS_API_KEY not set; news will be unavailable")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		logger.Error("failed to set up tracing", "error", err)
		os.Exit(1)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Error("tracing shutdown failed", "error", err)
		}
	}()

	router := api.NewRouter(logger, api.RouterDependencies{
		Handler:   api.NewHandler(logger, buildAggregator(logger, cfg.Upstream)),
		RateLimit: buildRateLimit(ctx, cfg.RateLimit),
		StaticDir: cfg.HTTP.StaticDir,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           otelhttp.NewHandler(router, cfg.Telemetry.ServiceName),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("profile aggregator starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err := <-errCh:
		if err != nil {
			logger.Error("server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

func buildAggregator(logger *slog.Logger, cfg config.UpstreamConfig) *aggregator.Aggregator {
	client := sources.NewHTTPClient(cfg.Timeout)

	return aggregator.New(logger, aggregator.Sources{
		Identity: sources.NewIdentityClient(client, cfg.IdentityBaseURL),
		Geo:      sources.NewGeoClient(client, cfg.GeoBaseURL),
		Rates:    sources.NewRatesClient(client, cfg.RatesBaseURL, cfg.ExchangeRateKey),
		News:     sources.NewNewsClient(client, cfg.NewsBaseURL, cfg.NewsKey),
	}, cfg)
}

func buildRateLimit(ctx context.Context, cfg config.RateLimitConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return nil
	}
	store := ratelimit.NewStore(cfg.RPS, cfg.Burst)
	store.StartJanitor(ctx)

	return ratelimit.Middleware(ratelimit.Options{
		Store:               store,
		RetryAfter:          time.Second,
		AddRateLimitHeaders: true,
	})
}
