package main

//go:generate go run github.com/swaggo/swag/cmd/swag@latest init -g docs.go -o ../../docs --parseDependency

import (
	"context"
	"log"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	_ "github.com/notinterrested/isitskiingyet/docs" // Import generated docs
	"github.com/notinterrested/isitskiingyet/internal/config"
	"github.com/notinterrested/isitskiingyet/internal/providers/openmeteo"
	"github.com/notinterrested/isitskiingyet/internal/recorder"
	"github.com/notinterrested/isitskiingyet/internal/store"
	"github.com/notinterrested/isitskiingyet/internal/telemetry"
	"github.com/notinterrested/isitskiingyet/internal/weather"
)

func main() {
	// A local .env is optional
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger) // Set as default logger for the application

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Init(ctx, cfg.Telemetry)
	if err != nil {
		log.Fatalf("Failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			logger.Error("telemetry shutdown failed", "error", err)
		}
	}()

	forecastClient := openmeteo.NewForecastClient(logger,
		openmeteo.WithBaseURL(cfg.OpenMeteo.BaseURL),
		openmeteo.WithTimeouts(cfg.OpenMeteo.CurrentTimeout, cfg.OpenMeteo.ForecastTimeout),
	)
	weatherSvc := weather.NewWeatherService(forecastClient, logger)

	// Persistence is optional; Open falls back to a disabled store
	recordStore := store.Open(ctx, cfg, logger)
	defer func() {
		if err := recordStore.Close(); err != nil {
			logger.Error("failed to close record store", "error", err)
		}
	}()

	recorderSvc := recorder.NewRecorderService(weatherSvc, recordStore, logger)

	app := NewApp(cfg, logger, weatherSvc, recorderSvc)

	// Start server
	logger.Info("starting server", "addr", cfg.GetServerAddr())
	if err := app.Run(ctx, cfg.GetServerAddr()); err != nil {
		logger.Error("server failed", "error", err)
		stop()
		log.Fatal(err)
	}
}
