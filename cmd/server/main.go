package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"skymood/internal/adapter/httpadapter"
	"skymood/internal/adapter/openweather"
	"skymood/internal/config"
	"skymood/internal/observability"
	"skymood/internal/resolver"
	"skymood/internal/session"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	client := openweather.NewClient(cfg.OpenWeatherAPIKey, cfg.OpenWeatherTimeout, metrics, logger)
	geocoder := openweather.NewCachedGeocodeProvider(client, cfg.SuggestionCacheSize, metrics)

	suggestions := resolver.NewSuggestionResolver(geocoder, logger, cfg.MinQueryLength, cfg.SuggestionLimit)
	weather := resolver.NewWeatherResolver(client, logger, cfg.Thresholds)

	coordinator := session.New(suggestions, weather, logger, metrics, session.Options{
		Debounce:       cfg.Debounce,
		MinQueryLength: cfg.MinQueryLength,
	})

	srv := httpadapter.NewServer(cfg.HTTPAddr, coordinator, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	logger.Info("session engine started",
		"min_query_length", cfg.MinQueryLength,
		"debounce", cfg.Debounce,
		"suggestion_limit", cfg.SuggestionLimit,
	)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	coordinator.Close()

	logger.Info("shutdown complete")
}
