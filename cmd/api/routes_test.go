package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"testing"
	"time"

	"aircast/internal/chart"
	"aircast/internal/location"
	"aircast/internal/types"
	"aircast/internal/weather"

	"github.com/danielgtaylor/huma/v2/humatest"
)

// Mock services for testing

type mockLocationService struct {
	location *types.Location
	err      error
}

func (m *mockLocationService) Geocode(ctx context.Context, name string) (*types.Location, error) {
	return m.location, m.err
}

type mockWeatherService struct {
	series   *weather.Series
	err      error
	calls    int
	maxHours int
	location types.Location
}

func (m *mockWeatherService) GetForecast(ctx context.Context, loc types.Location, maxHours int) (*weather.Series, error) {
	m.calls++
	m.maxHours = maxHours
	m.location = loc
	if m.err != nil {
		return nil, m.err
	}
	series := *m.series
	series.Location = loc
	return &series, nil
}

var paris = &types.Location{Latitude: 48.8566, Longitude: 2.3522, DisplayName: "Paris, France"}

func testSeries() *weather.Series {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &weather.Series{
		Timezone:     "UTC",
		Timestamps:   []time.Time{start, start.Add(time.Hour), start.Add(2 * time.Hour)},
		Temperatures: []float64{5.1, math.NaN(), 4.2},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestApp(t *testing.T, ls location.Service, ws weather.Service) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	newApp(api, discardLogger(), ls, ws, chart.NewRenderer(chart.Options{}, discardLogger()))
	return api
}

func TestPing(t *testing.T) {
	api := newTestApp(t, &mockLocationService{}, &mockWeatherService{})

	resp := api.Get("/ping")
	if resp.Code != http.StatusOK {
		t.Fatalf("GET /ping status = %d, want 200", resp.Code)
	}
	var body struct {
		Message string `json:"message"`
		Service string `json:"service"`
		Version string `json:"version"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("GET /ping body is not JSON: %v", err)
	}
	if body.Message != "pong" || body.Service != "aircast" || body.Version != apiVersion {
		t.Errorf("GET /ping body = %+v, want pong from aircast %s", body, apiVersion)
	}
	if resp.Header().Get(requestIDHeader) == "" {
		t.Error("response missing request ID header")
	}
}

func TestRequestID_Propagated(t *testing.T) {
	api := newTestApp(t, &mockLocationService{}, &mockWeatherService{})

	resp := api.Get("/ping", requestIDHeader+": abc-123")
	if got := resp.Header().Get(requestIDHeader); got != "abc-123" {
		t.Errorf("request ID = %q, want abc-123", got)
	}
}

func TestGetLocation(t *testing.T) {
	tests := []struct {
		name       string
		service    *mockLocationService
		path       string
		wantStatus int
	}{
		{name: "found", service: &mockLocationService{location: paris}, path: "/location?city=Paris", wantStatus: http.StatusOK},
		{name: "not found", service: &mockLocationService{err: fmt.Errorf("%w: could not find location for 'Nowhere'", location.ErrLocationNotFound)}, path: "/location?city=Nowhere", wantStatus: http.StatusNotFound},
		{name: "upstream failure", service: &mockLocationService{err: errors.New("fetch returned status 503")}, path: "/location?city=Paris", wantStatus: http.StatusBadGateway},
		{name: "missing city", service: &mockLocationService{location: paris}, path: "/location", wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestApp(t, tt.service, &mockWeatherService{})

			resp := api.Get(tt.path)
			if resp.Code != tt.wantStatus {
				t.Fatalf("GET %s status = %d, want %d (body %s)", tt.path, resp.Code, tt.wantStatus, resp.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var got types.Location
			if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if got != *paris {
				t.Errorf("location = %+v, want %+v", got, *paris)
			}
		})
	}
}

func TestGetForecast(t *testing.T) {
	ws := &mockWeatherService{series: testSeries()}
	api := newTestApp(t, &mockLocationService{location: paris}, ws)

	resp := api.Get("/forecast?city=Paris&hours=24")
	if resp.Code != http.StatusOK {
		t.Fatalf("GET /forecast status = %d, want 200 (body %s)", resp.Code, resp.Body.String())
	}

	if ws.maxHours != 24 {
		t.Errorf("maxHours = %d, want 24", ws.maxHours)
	}
	if ws.location != *paris {
		t.Errorf("forecast requested for %+v, want %+v", ws.location, *paris)
	}

	var body ForecastBody
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}

	if len(body.Timestamps) != 3 || len(body.Temperatures) != 3 {
		t.Errorf("lengths = %d/%d, want 3/3", len(body.Timestamps), len(body.Temperatures))
	}
	if body.Temperatures[1] != nil {
		t.Errorf("Temperatures[1] = %v, want null for a gap", *body.Temperatures[1])
	}
	if body.Temperatures[0] == nil || *body.Temperatures[0] != 5.1 {
		t.Errorf("Temperatures[0] = %v, want 5.1", body.Temperatures[0])
	}
	if len(body.PM25) != 0 {
		t.Errorf("len(PM25) = %d, want 0", len(body.PM25))
	}
	if len(body.Warnings) != 1 || !strings.Contains(body.Warnings[0], "PM2.5") {
		t.Errorf("Warnings = %v, want one PM2.5 warning", body.Warnings)
	}
	if body.Location.DisplayName != "Paris, France" {
		t.Errorf("Location.DisplayName = %q", body.Location.DisplayName)
	}
}

func TestGetForecast_DefaultHorizon(t *testing.T) {
	ws := &mockWeatherService{series: testSeries()}
	api := newTestApp(t, &mockLocationService{location: paris}, ws)

	resp := api.Get("/forecast?city=Paris")
	if resp.Code != http.StatusOK {
		t.Fatalf("GET /forecast status = %d, want 200 (body %s)", resp.Code, resp.Body.String())
	}
	if ws.maxHours != 0 {
		t.Errorf("maxHours = %d, want 0 so the configured horizon applies", ws.maxHours)
	}
}

func TestGetForecast_Errors(t *testing.T) {
	tests := []struct {
		name          string
		ls            *mockLocationService
		ws            *mockWeatherService
		path          string
		wantStatus    int
		wantFetchCall int
	}{
		{
			name:          "unknown city skips the forecast",
			ls:            &mockLocationService{err: fmt.Errorf("%w: could not find location for 'Nowhere'", location.ErrLocationNotFound)},
			ws:            &mockWeatherService{series: testSeries()},
			path:          "/forecast?city=Nowhere",
			wantStatus:    http.StatusNotFound,
			wantFetchCall: 0,
		},
		{
			name:          "forecast failure",
			ls:            &mockLocationService{location: paris},
			ws:            &mockWeatherService{err: errors.New("failed to get forecast: fetch returned status 400")},
			path:          "/forecast?city=Paris",
			wantStatus:    http.StatusBadGateway,
			wantFetchCall: 1,
		},
		{
			name:          "horizon out of range",
			ls:            &mockLocationService{location: paris},
			ws:            &mockWeatherService{series: testSeries()},
			path:          "/forecast?city=Paris&hours=1000",
			wantStatus:    http.StatusUnprocessableEntity,
			wantFetchCall: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestApp(t, tt.ls, tt.ws)

			resp := api.Get(tt.path)
			if resp.Code != tt.wantStatus {
				t.Errorf("GET %s status = %d, want %d (body %s)", tt.path, resp.Code, tt.wantStatus, resp.Body.String())
			}
			if tt.ws.calls != tt.wantFetchCall {
				t.Errorf("forecast calls = %d, want %d", tt.ws.calls, tt.wantFetchCall)
			}
		})
	}
}

func TestGetChart(t *testing.T) {
	api := newTestApp(t, &mockLocationService{location: paris}, &mockWeatherService{series: testSeries()})

	resp := api.Get("/chart?city=Paris")
	if resp.Code != http.StatusOK {
		t.Fatalf("GET /chart status = %d, want 200 (body %s)", resp.Code, resp.Body.String())
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
	if !strings.Contains(resp.Body.String(), "Paris, France") {
		t.Error("chart page does not mention the place")
	}
}

func TestNullable(t *testing.T) {
	got := nullable([]float64{1, math.NaN(), 3})
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0] == nil || *got[0] != 1 || got[1] != nil || got[2] == nil || *got[2] != 3 {
		t.Errorf("nullable() = %v", got)
	}
}
