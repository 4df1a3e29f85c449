package weather

import (
	"math"
	"time"

	"aircast/internal/types"
)

// DefaultMaxHours is the forecast horizon kept when none is configured
const DefaultMaxHours = 48

// Variable names as reported in warnings
const (
	VariableTemperature = "temperature"
	VariablePM25        = "PM2.5"
)

// Series is an hourly forecast prepared for display. Timestamps, Temperatures
// and PM25 are aligned by index; each is cut to the horizon on its own, so a
// short upstream array yields a shorter slice rather than padding.
// Hours the API reported as null hold NaN.
type Series struct {
	Location     types.Location
	Timezone     string
	Timestamps   []time.Time
	Temperatures []float64 // °C
	PM25         []float64 // µg/m³
}

// MissingVariables lists the requested variables that came back empty
func (s *Series) MissingVariables() []string {
	var missing []string
	if len(s.Temperatures) == 0 {
		missing = append(missing, VariableTemperature)
	}
	if len(s.PM25) == 0 {
		missing = append(missing, VariablePM25)
	}
	return missing
}

// Range is the smallest and largest value of a variable, ignoring gaps
type Range struct {
	Min float64
	Max float64
}

// TemperatureRange reports the span of the temperature series; ok is false when it has no values
func (s *Series) TemperatureRange() (Range, bool) {
	return valueRange(s.Temperatures)
}

// PM25Range reports the span of the PM2.5 series; ok is false when it has no values
func (s *Series) PM25Range() (Range, bool) {
	return valueRange(s.PM25)
}

func valueRange(values []float64) (Range, bool) {
	lo, hi := minFloat(values), maxFloat(values)
	if math.IsNaN(lo) {
		return Range{}, false
	}
	return Range{Min: lo, Max: hi}, true
}

// minFloat returns the smallest non-NaN value, or NaN if there is none
func minFloat(values []float64) float64 {
	result := math.NaN()
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(result) || v < result {
			result = v
		}
	}
	return result
}

// maxFloat returns the largest non-NaN value, or NaN if there is none
func maxFloat(values []float64) float64 {
	result := math.NaN()
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(result) || v > result {
			result = v
		}
	}
	return result
}
