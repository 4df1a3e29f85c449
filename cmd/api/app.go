package main

import (
	"io"
	"log/slog"
	"net/http"

	"aircast/internal/chart"
	"aircast/internal/config"
	"aircast/internal/location"
	"aircast/internal/weather"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
)

// ChartRenderer writes a forecast chart page
type ChartRenderer interface {
	Render(w io.Writer, series *weather.Series) error
}

// App encapsulates application dependencies
type App struct {
	mux             *http.ServeMux
	api             huma.API
	logger          *slog.Logger
	locationService location.Service
	weatherService  weather.Service
	chartRenderer   ChartRenderer
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	// Create standard library HTTP mux
	mux := http.NewServeMux()

	// Create Huma API with standard library adapter
	config := huma.DefaultConfig(serviceName+" API", apiVersion)
	config.Info.Description = "Hourly temperature and PM2.5 forecasts for any named place"
	config.Servers = []*huma.Server{
		{URL: "http://localhost" + cfg.GetServerAddr(), Description: "Development server"},
	}

	api := humago.New(mux, config)

	app := newApp(
		api,
		logger,
		location.NewLocationService(cfg, logger),
		weather.NewWeatherService(cfg, logger),
		chart.NewRenderer(chart.Options{Width: cfg.Chart.Width, Height: cfg.Chart.Height}, logger),
	)
	app.mux = mux

	logger.Info("application initialized")

	return app
}

func newApp(
	api huma.API,
	logger *slog.Logger,
	locationService location.Service,
	weatherService weather.Service,
	chartRenderer ChartRenderer,
) *App {
	app := &App{
		api:             api,
		logger:          logger,
		locationService: locationService,
		weatherService:  weatherService,
		chartRenderer:   chartRenderer,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return http.ListenAndServe(addr, app.mux)
}
