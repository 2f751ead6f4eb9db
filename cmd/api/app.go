package main

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	_ "noaa-forecast/docs" // Ensure docs are imported
	"noaa-forecast/internal/config"
	"noaa-forecast/internal/scheduler"
	"noaa-forecast/internal/weather"
)

// App encapsulates application dependencies
type App struct {
	router         *gin.Engine
	logger         *slog.Logger
	weatherService weather.Service
	scheduler      *scheduler.Scheduler
	cfg            *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Initialize weather service
	weatherSvc, err := weather.NewWeatherService(cfg, logger)
	if err != nil {
		return nil, err
	}

	app := newApp(cfg, weatherSvc, logger)
	app.scheduler = scheduler.New(
		weatherSvc,
		cfg.Forecast.UpdateInterval,
		cfg.Forecast.RequestDelay,
		cfg.NWS.Timeout,
		logger,
	)

	return app, nil
}

func newApp(cfg *config.Config, weatherSvc weather.Service, logger *slog.Logger) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	app := &App{
		router:         router,
		logger:         logger,
		weatherService: weatherSvc,
		cfg:            cfg,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the refresh scheduler and the HTTP server
func (app *App) Run(addr string) error {
	if app.scheduler != nil {
		if err := app.scheduler.Start(); err != nil {
			return err
		}
		defer app.scheduler.Stop()
	}

	return app.router.Run(addr)
}
