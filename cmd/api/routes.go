package main

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	app.api.UseMiddleware(app.requestIDMiddleware)

	// Health check endpoint
	huma.Register(app.api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
		Summary:     "Ping health check",
		Description: "Check if the API is running",
		Tags:        []string{"health"},
	}, app.handlePing)

	huma.Register(app.api, huma.Operation{
		OperationID: "get-location",
		Method:      http.MethodGet,
		Path:        "/location",
		Summary:     "Geocode a place name",
		Description: "Resolve a free-text place name to coordinates and a canonical display name",
		Tags:        []string{"location"},
	}, app.handleGetLocation)

	huma.Register(app.api, huma.Operation{
		OperationID: "get-forecast",
		Method:      http.MethodGet,
		Path:        "/forecast",
		Summary:     "Hourly temperature and PM2.5 forecast",
		Description: "Geocode a place and return its hourly forecast cut to the requested horizon",
		Tags:        []string{"forecast"},
	}, app.handleGetForecast)

	huma.Register(app.api, huma.Operation{
		OperationID: "get-chart",
		Method:      http.MethodGet,
		Path:        "/chart",
		Summary:     "Forecast chart",
		Description: "Render the forecast as an HTML page with a dual-axis chart",
		Tags:        []string{"forecast"},
	}, app.handleGetChart)
}
