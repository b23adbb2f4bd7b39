// README: Entry point; loads config, wires providers and services, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"ridewise/internal/ai"
	"ridewise/internal/config"
	httptransport "ridewise/internal/http"
	"ridewise/internal/http/middleware"
	"ridewise/internal/infra"
	"ridewise/internal/maps"
	"ridewise/internal/modules/pricing"
	"ridewise/internal/modules/suggestion"
	"ridewise/internal/modules/weather"
	"ridewise/internal/service"
	"ridewise/internal/telemetry"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLogger := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootLogger.Fatal().Err(err).Msg("load config")
	}

	logger := newLogger(cfg)
	for _, key := range cfg.MissingKeys() {
		logger.Warn().Str("key", key).Msg("provider credential not set, feature will degrade")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tel, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    "ridewise-api",
		ServiceVersion: version,
		Environment:    cfg.Env,
		OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
		Enabled:        cfg.Telemetry.Enabled,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("telemetry init")
	}

	var metrics *middleware.Metrics
	if tel.Enabled() {
		if metrics, err = middleware.NewMetrics(); err != nil {
			logger.Fatal().Err(err).Msg("http metrics")
		}
	}

	mapsClient := maps.NewClient(maps.ClientConfig{APIKey: cfg.Maps.APIKey, Logger: logger})

	var geocodeCache maps.GeocodeCache
	if cfg.Redis.Addr != "" {
		rdb, err := infra.NewRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			logger.Warn().Err(err).Msg("redis unavailable, geocode cache disabled")
		} else {
			defer rdb.Close()
			geocodeCache = maps.NewRedisGeocodeCache(rdb, cfg.Redis.GeocodeTTL, logger)
		}
	}

	routeSvc := maps.NewRouteService(mapsClient, logger)
	geocodeSvc := maps.NewGeocodeService(mapsClient, geocodeCache, logger)
	placesSvc := maps.NewPlacesService(mapsClient, logger)

	weatherSvc := weather.NewService(weather.Config{
		APIKey:  cfg.Weather.APIKey,
		BaseURL: cfg.Weather.BaseURL,
		Logger:  logger,
	})

	pricingSvc := pricing.NewService(pricing.Config{
		ServerToken: cfg.Uber.ServerToken,
		SandboxMode: cfg.Uber.SandboxMode,
		Logger:      logger,
	})

	generator, closeGenerator, err := ai.NewGenerator(ctx, aiSelection(cfg))
	if err != nil {
		logger.Warn().Err(err).Str("provider", cfg.AI.Provider).Msg("text model init failed, using template suggestions")
	}
	defer closeGenerator()
	suggestionSvc := suggestion.NewService(generator, logger)

	booker := service.NewRideBooker(service.Deps{
		Router:     routeSvc,
		Geocoder:   geocodeSvc,
		Pricing:    pricingSvc,
		Weather:    weatherSvc,
		Suggestion: suggestionSvc,
		Logger:     logger,
	})

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	handler := httptransport.NewServer(httptransport.ServerDeps{
		Booker:      booker,
		Pricing:     pricingSvc,
		Places:      placesSvc,
		Logger:      logger,
		Metrics:     metrics,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		Version:     version,
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Str("env", cfg.Env).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown")
	}
	if err := tel.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("telemetry shutdown")
	}
}

func newLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Env == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Str("service", "ridewise-api").Logger()
}

func aiSelection(cfg config.Config) ai.Selection {
	return ai.Selection{
		Provider:    cfg.AI.Provider,
		GeminiKey:   cfg.AI.GeminiKey,
		GeminiModel: cfg.AI.GeminiModel,
		OpenAIKey:   cfg.AI.OpenAIKey,
	}
}
