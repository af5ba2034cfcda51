package main

import (
	"log/slog"
	"net/http"

	"github.com/Ayush0023/Weather-Zone/internal/config"
	"github.com/Ayush0023/Weather-Zone/internal/location"
	"github.com/Ayush0023/Weather-Zone/internal/mapview"
	"github.com/Ayush0023/Weather-Zone/internal/theme"
	"github.com/Ayush0023/Weather-Zone/internal/weather"

	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	locationService location.Service
	weatherService  weather.Service
	themeStore      *theme.Store
	cfg             *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	// Shared client so all outbound calls honor the configured timeout
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout()}

	// Map integration is optional; without a base URL the weather service
	// skips the recenter call entirely
	var notifier mapview.Notifier
	if cfg.Map.BaseURL != "" {
		notifier = mapview.NewClient(httpClient, cfg.Map.BaseURL, cfg.Map.APIKey)
	}

	themeStore, err := theme.NewStore(cfg.Theme.Path)
	if err != nil {
		return nil, err
	}

	app := &App{
		router:          router,
		logger:          logger,
		locationService: location.NewLocationService(httpClient, logger),
		weatherService:  weather.NewWeatherService(cfg, httpClient, notifier, logger),
		themeStore:      themeStore,
		cfg:             cfg,
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
