package weather

import (
	"fmt"
	"math"
	"time"

	"aircast/internal/providers/openmeteo"
)

// Layouts accepted for hourly timestamps. Open-Meteo sends minutes only;
// offset-less values are local wall-clock times.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// PrepareSeries extracts the hourly time, temperature and PM2.5 arrays from a
// forecast payload and keeps the first maxHours entries of each. A variable
// missing from the payload becomes an empty slice. maxHours <= 0 selects
// DefaultMaxHours.
//
// Open-Meteo writes every hourly.time entry at the single utc_offset_seconds
// of the payload, so timestamps are parsed in that fixed zone. Every literal
// then maps to exactly one instant, including across daylight saving changes.
func PrepareSeries(resp *openmeteo.ForecastAPIResponse, maxHours int) (*Series, error) {
	if resp == nil {
		return nil, fmt.Errorf("forecast response is nil")
	}
	if maxHours <= 0 {
		maxHours = DefaultMaxHours
	}

	loc := payloadZone(resp)
	times := truncate(resp.Hourly.Time, maxHours)
	timestamps := make([]time.Time, len(times))
	for i, raw := range times {
		ts, err := parseTimestamp(raw, loc)
		if err != nil {
			return nil, fmt.Errorf("invalid timestamp at hour %d: %w", i, err)
		}
		timestamps[i] = ts
	}

	timezone := resp.Timezone
	if timezone == "" {
		timezone = loc.String()
	}

	return &Series{
		Timezone:     timezone,
		Timestamps:   timestamps,
		Temperatures: toValues(truncate(resp.Hourly.Temperature2M, maxHours)),
		PM25:         toValues(truncate(resp.Hourly.Pm25, maxHours)),
	}, nil
}

// payloadZone is the fixed zone the payload's hourly timestamps are written in
func payloadZone(resp *openmeteo.ForecastAPIResponse) *time.Location {
	if resp.UtcOffsetSeconds == 0 && resp.TimezoneAbbreviation == "" {
		return time.UTC
	}
	name := resp.TimezoneAbbreviation
	if name == "" {
		name = time.Unix(0, 0).In(time.FixedZone("", resp.UtcOffsetSeconds)).Format("-07:00")
	}
	return time.FixedZone(name, resp.UtcOffsetSeconds)
}

func parseTimestamp(raw string, loc *time.Location) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}

func truncate[T any](values []T, n int) []T {
	if len(values) > n {
		return values[:n]
	}
	return values
}

// toValues replaces null hours with NaN
func toValues(values []*float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		if v == nil {
			out[i] = math.NaN()
			continue
		}
		out[i] = *v
	}
	return out
}
