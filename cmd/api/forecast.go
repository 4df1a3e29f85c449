package main

import (
	"bytes"
	"context"
	"math"
	"time"

	"aircast/internal/types"
	"aircast/internal/weather"

	"github.com/danielgtaylor/huma/v2"
)

// GetForecastInput defines the query parameters for the forecast and chart endpoints
type GetForecastInput struct {
	City  string `query:"city" required:"true" minLength:"1" example:"Paris" doc:"Place name to geocode"`
	Hours int    `query:"hours" minimum:"1" maximum:"384" example:"48" doc:"Forecast horizon in hours; defaults to the configured horizon"`
}

// ForecastBody is a prepared forecast. The value arrays align with Timestamps;
// null marks an hour without data.
type ForecastBody struct {
	Location     types.Location `json:"location"`
	Timezone     string         `json:"timezone" example:"Europe/Paris"`
	Timestamps   []time.Time    `json:"timestamps"`
	Temperatures []*float64     `json:"temperatures" doc:"Temperature at 2m in °C"`
	PM25         []*float64     `json:"pm25" doc:"PM2.5 concentration in µg/m³"`
	Warnings     []string       `json:"warnings" doc:"Requested variables the forecast did not include"`
}

// GetForecastOutput wraps the forecast body
type GetForecastOutput struct {
	Body ForecastBody
}

// GetChartOutput is an HTML page
type GetChartOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

func (app *App) handleGetForecast(ctx context.Context, input *GetForecastInput) (*GetForecastOutput, error) {
	series, err := app.forecastFor(ctx, input)
	if err != nil {
		return nil, err
	}

	warnings := []string{}
	for _, variable := range series.MissingVariables() {
		warnings = append(warnings, variable+" data not found in response")
	}

	return &GetForecastOutput{Body: ForecastBody{
		Location:     series.Location,
		Timezone:     series.Timezone,
		Timestamps:   series.Timestamps,
		Temperatures: nullable(series.Temperatures),
		PM25:         nullable(series.PM25),
		Warnings:     warnings,
	}}, nil
}

func (app *App) handleGetChart(ctx context.Context, input *GetForecastInput) (*GetChartOutput, error) {
	series, err := app.forecastFor(ctx, input)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := app.chartRenderer.Render(&buf, series); err != nil {
		app.logger.Error("failed to render chart", "city", input.City, "error", err)
		return nil, huma.Error500InternalServerError("failed to render chart", err)
	}

	return &GetChartOutput{
		ContentType: "text/html; charset=utf-8",
		Body:        buf.Bytes(),
	}, nil
}

func (app *App) forecastFor(ctx context.Context, input *GetForecastInput) (*weather.Series, error) {
	loc, err := app.locationService.Geocode(ctx, input.City)
	if err != nil {
		return nil, app.upstreamError("failed to geocode location", err, "city", input.City)
	}

	series, err := app.weatherService.GetForecast(ctx, *loc, input.Hours)
	if err != nil {
		return nil, app.upstreamError("failed to get forecast", err, "city", input.City)
	}

	return series, nil
}

// nullable converts gaps (NaN) to nil so they encode as JSON null
func nullable(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i := range values {
		if math.IsNaN(values[i]) {
			continue
		}
		v := values[i]
		out[i] = &v
	}
	return out
}
