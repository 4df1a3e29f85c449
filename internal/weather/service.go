package weather

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	_ "time/tzdata" // zone names from the API must load on hosts without tzdata

	"aircast/internal/config"
	"aircast/internal/providers/openmeteo"
	"aircast/internal/timezone"
	"aircast/internal/types"
)

type ForecastProvider interface {
	// GetForecast fetches the hourly forecast for the given coordinates
	GetForecast(ctx context.Context, latitude, longitude float64, forecastDays int, timezone string) (*openmeteo.ForecastAPIResponse, error)
}

type Service interface {
	// GetForecast fetches and prepares the hourly forecast for location.
	// maxHours <= 0 uses the configured horizon.
	GetForecast(ctx context.Context, location types.Location, maxHours int) (*Series, error)
}

type weatherService struct {
	forecastProvider ForecastProvider
	timezoneService  timezone.Service
	cfg              *config.Config
	logger           *slog.Logger
}

func NewWeatherService(cfg *config.Config, logger *slog.Logger) Service {
	client := openmeteo.NewForecastClientWithOptions(cfg.NewHTTPClient(), cfg.Forecast.BaseURL, logger)
	return NewWeatherServiceWithProvider(client, timezone.NewService(), cfg, logger)
}

func NewWeatherServiceWithProvider(
	forecastProvider ForecastProvider,
	timezoneService timezone.Service,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	return &weatherService{
		forecastProvider: forecastProvider,
		timezoneService:  timezoneService,
		cfg:              cfg,
		logger:           logger.With("component", "weather-service"),
	}
}

func (s *weatherService) GetForecast(ctx context.Context, location types.Location, maxHours int) (*Series, error) {
	if maxHours <= 0 {
		maxHours = s.cfg.App.MaxHours
	}
	forecastDays := s.cfg.App.ForecastDays
	tz := s.cfg.Forecast.Timezone
	if tz == "" {
		tz = "auto"
	}

	apiResponse, err := s.forecastProvider.GetForecast(ctx, location.Latitude, location.Longitude, forecastDays, tz)
	if err != nil {
		s.logger.Error("failed to get forecast from provider",
			"latitude", location.Latitude,
			"longitude", location.Longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	series, err := PrepareSeries(apiResponse, maxHours)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare forecast series: %w", err)
	}
	series.Location = location
	series.Timezone = s.resolveTimezone(location, apiResponse)

	s.logger.Debug("prepared forecast series",
		"timezone", series.Timezone,
		"hours", len(series.Timestamps),
		"temperature_points", len(series.Temperatures),
		"pm25_points", len(series.PM25),
	)

	return series, nil
}

// resolveTimezone names the zone the forecast is shown in: the zone named by
// the API, else the zone found for the coordinates, else the API's
// abbreviation for its fixed offset.
func (s *weatherService) resolveTimezone(location types.Location, resp *openmeteo.ForecastAPIResponse) string {
	if resp.Timezone != "" {
		if _, err := time.LoadLocation(resp.Timezone); err == nil {
			return resp.Timezone
		}
		s.logger.Debug("could not load timezone from forecast", "timezone", resp.Timezone)
	}

	if s.timezoneService != nil {
		name, err := s.timezoneService.GetTimezone(location.Latitude, location.Longitude)
		if err == nil {
			if _, err := time.LoadLocation(name); err == nil {
				return name
			}
		}
		s.logger.Debug("could not determine timezone from coordinates",
			"latitude", location.Latitude,
			"longitude", location.Longitude,
			"error", err,
		)
	}

	return payloadZone(resp).String()
}
