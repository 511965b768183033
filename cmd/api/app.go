package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"

	"github.com/notinterrested/isitskiingyet/internal/config"
	"github.com/notinterrested/isitskiingyet/internal/recorder"
	"github.com/notinterrested/isitskiingyet/internal/telemetry"
	"github.com/notinterrested/isitskiingyet/internal/weather"
)

const shutdownTimeout = 10 * time.Second

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	weatherService  weather.Service
	recorderService recorder.Service
	updateLimiter   *rate.Limiter
	cfg             *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger, weatherSvc weather.Service, recorderSvc recorder.Service) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	app := &App{
		router:          router,
		logger:          logger,
		weatherService:  weatherSvc,
		recorderService: recorderSvc,
		cfg:             cfg,
	}

	if cfg.RateLimit.UpdateRPS > 0 {
		app.updateLimiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.UpdateRPS), max(cfg.RateLimit.UpdateBurst, 1))
	}

	app.registerRoutes()

	logger.Info("application initialized",
		"persistence_enabled", recorderSvc.PersistenceEnabled(),
	)

	return app
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully
func (app *App) Run(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           otelhttp.NewHandler(app.router, telemetry.ServiceName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	app.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
