package chart

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"aircast/internal/weather"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/browser"
)

const (
	temperatureLabel = "Temperature (°C)"
	pm25Label        = "PM2.5 (µg/m³)"
	timeAxisLabel    = "Local Date & Time"
	timeLabelLayout  = "Jan 02 15:04"

	// echarts treats "-" as a missing point and leaves a gap
	gapValue = "-"
)

// Options controls where and how the chart page is produced
type Options struct {
	OutputPath string
	Open       bool
	Width      string
	Height     string
}

// Renderer draws forecast series as a dual-axis line chart
type Renderer struct {
	opts   Options
	open   func(path string) error
	logger *slog.Logger
}

func NewRenderer(options Options, logger *slog.Logger) *Renderer {
	if options.Width == "" {
		options.Width = "1200px"
	}
	if options.Height == "" {
		options.Height = "600px"
	}
	return &Renderer{
		opts:   options,
		open:   browser.OpenFile,
		logger: logger.With("component", "chart-renderer"),
	}
}

// Title is the chart heading for a place
func Title(displayName string) string {
	return "Temperature & PM2.5 Forecast — " + displayName
}

// Render writes a self-contained HTML page with the chart to w
func (r *Renderer) Render(w io.Writer, series *weather.Series) error {
	if series == nil {
		return fmt.Errorf("series is nil")
	}
	return r.build(series).Render(w)
}

// Show renders the chart to the configured output file and, if enabled,
// opens it in the default browser. It returns the path written; failing to
// open a browser is logged, not returned.
func (r *Renderer) Show(series *weather.Series) (string, error) {
	path := r.opts.OutputPath
	if path == "" {
		path = "aircast-forecast.html"
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create chart directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create chart file: %w", err)
	}

	if err := r.Render(f, series); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("failed to render chart: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write chart file: %w", err)
	}

	r.logger.Debug("chart written", "path", path, "hours", len(series.Timestamps))

	if r.opts.Open {
		if err := r.open(path); err != nil {
			r.logger.Warn("could not open chart in browser", "path", path, "error", err)
		}
	}

	return path, nil
}

func (r *Renderer) build(series *weather.Series) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: Title(series.Location.DisplayName),
			Width:     r.opts.Width,
			Height:    r.opts.Height,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    Title(series.Location.DisplayName),
			Subtitle: series.Timezone,
			Left:     "center",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Left: "left",
			Top:  "top",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      timeAxisLabel,
			AxisLabel: &opts.AxisLabel{Rotate: 45},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:     temperatureLabel,
			Type:     "value",
			Position: "left",
			SplitLine: &opts.SplitLine{
				Show:      opts.Bool(true),
				LineStyle: &opts.LineStyle{Type: "dashed"},
			},
		}),
	)
	line.ExtendYAxis(opts.YAxis{
		Name:     pm25Label,
		Type:     "value",
		Position: "right",
	})

	line.SetXAxis(timeLabels(series)).
		AddSeries(temperatureLabel, lineData(series.Temperatures),
			charts.WithLineChartOpts(opts.LineChart{
				YAxisIndex: 0,
				Symbol:     "circle",
				ShowSymbol: opts.Bool(true),
			}),
			charts.WithLineStyleOpts(opts.LineStyle{Type: "solid"}),
		).
		AddSeries(pm25Label, lineData(series.PM25),
			charts.WithLineChartOpts(opts.LineChart{
				YAxisIndex: 1,
				Symbol:     "rect",
				ShowSymbol: opts.Bool(true),
			}),
			charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"}),
		)

	return line
}

func timeLabels(series *weather.Series) []string {
	labels := make([]string, len(series.Timestamps))
	for i, ts := range series.Timestamps {
		labels[i] = ts.Format(timeLabelLayout)
	}
	return labels
}

func lineData(values []float64) []opts.LineData {
	data := make([]opts.LineData, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			data[i] = opts.LineData{Value: gapValue}
			continue
		}
		data[i] = opts.LineData{Value: v}
	}
	return data
}
