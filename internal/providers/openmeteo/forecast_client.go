package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=48.8566&longitude=2.3522&hourly=temperature_2m,pm2_5&forecast_days=3&timezone=auto
const (
	baseForecastURL = "https://api.open-meteo.com/v1/forecast"
)

// Hourly variable names as the API spells them
const (
	VarTemperature2M = "temperature_2m"
	VarPm25          = "pm2_5"
)

var hourlyVars = []string{
	VarTemperature2M,
	VarPm25,
}

type ForecastClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewForecastClient(logger *slog.Logger) *ForecastClient {
	return NewForecastClientWithOptions(&http.Client{}, baseForecastURL, logger)
}

func NewForecastClientWithOptions(httpClient *http.Client, endpoint string, logger *slog.Logger) *ForecastClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if endpoint == "" {
		endpoint = baseForecastURL
	}
	return &ForecastClient{
		httpClient: httpClient,
		baseURL:    endpoint,
		logger:     logger.With("component", "openmeteo-client"),
	}
}

// GetForecast fetches the hourly temperature and PM2.5 forecast for the given coordinates.
// timezone "auto" lets the API pick the local zone from the coordinates.
func (c *ForecastClient) GetForecast(ctx context.Context, latitude, longitude float64, forecastDays int, timezone string) (*ForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("hourly", strings.Join(hourlyVars, ","))
	q.Set("forecast_days", strconv.Itoa(forecastDays))
	q.Set("timezone", timezone)
	u.RawQuery = q.Encode()

	c.logger.Debug("requesting forecast", "url", u.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp ForecastAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
