package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"aircast/internal/chart"
	"aircast/internal/config"
	"aircast/internal/location"
	"aircast/internal/weather"
)

// Presenter displays a prepared forecast and reports where it went
type Presenter interface {
	Show(series *weather.Series) (string, error)
}

// App encapsulates application dependencies
type App struct {
	locationService location.Service
	weatherService  weather.Service
	presenter       Presenter
	out             io.Writer
	logger          *slog.Logger
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger, out io.Writer) *App {
	return &App{
		locationService: location.NewLocationService(cfg, logger),
		weatherService:  weather.NewWeatherService(cfg, logger),
		presenter: chart.NewRenderer(chart.Options{
			OutputPath: cfg.Chart.OutputPath,
			Open:       cfg.Chart.Open,
			Width:      cfg.Chart.Width,
			Height:     cfg.Chart.Height,
		}, logger),
		out:    out,
		logger: logger,
	}
}

// Run geocodes city, fetches its forecast and shows the chart.
// Nothing is rendered if geocoding or fetching fails.
func (app *App) Run(ctx context.Context, city string) error {
	loc, err := app.locationService.Geocode(ctx, city)
	if err != nil {
		return err
	}
	fmt.Fprintf(app.out, "Location found: %s -> %s\n", loc.DisplayName, loc.Coords())

	series, err := app.weatherService.GetForecast(ctx, *loc, 0)
	if err != nil {
		return err
	}

	for _, variable := range series.MissingVariables() {
		fmt.Fprintf(app.out, "Warning: %s data not found in response.\n", variable)
	}

	if r, ok := series.TemperatureRange(); ok {
		app.logger.Info("temperature forecast", "hours", len(series.Temperatures), "min", r.Min, "max", r.Max)
	}
	if r, ok := series.PM25Range(); ok {
		app.logger.Info("pm2.5 forecast", "hours", len(series.PM25), "min", r.Min, "max", r.Max)
	}

	path, err := app.presenter.Show(series)
	if path != "" {
		fmt.Fprintf(app.out, "Chart written to %s\n", path)
	}
	return err
}
