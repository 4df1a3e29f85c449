package openmeteo

// ForecastAPIResponse is the /v1/forecast payload.
// Variables the API did not return decode to nil slices.
type ForecastAPIResponse struct {
	Latitude             float64           `json:"latitude"`
	Longitude            float64           `json:"longitude"`
	GenerationtimeMs     float64           `json:"generationtime_ms"`
	UtcOffsetSeconds     int               `json:"utc_offset_seconds"`
	Timezone             string            `json:"timezone"`
	TimezoneAbbreviation string            `json:"timezone_abbreviation"`
	Elevation            float64           `json:"elevation"`
	HourlyUnits          map[string]string `json:"hourly_units"`
	Hourly               HourlyData        `json:"hourly"`
}

// HourlyData holds the parallel hourly arrays. Values are pointers because the
// API reports hours without data as null.
type HourlyData struct {
	Time          []string   `json:"time"`
	Temperature2M []*float64 `json:"temperature_2m"`
	Pm25          []*float64 `json:"pm2_5"`
}
