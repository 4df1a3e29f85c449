package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	App      AppConfig
	HTTP     HTTPConfig
	Geocoder GeocoderConfig
	Forecast ForecastConfig
	Chart    ChartConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	MaxHours     int // Hours of forecast kept after preparation
	ForecastDays int // Days requested from the forecast API
}

// HTTPConfig holds settings shared by the outbound API clients
type HTTPConfig struct {
	Timeout time.Duration
}

// GeocoderConfig holds Nominatim search settings
type GeocoderConfig struct {
	BaseURL           string
	UserAgent         string
	RequestsPerSecond float64
	Burst             int
}

// ForecastConfig holds Open-Meteo forecast settings
type ForecastConfig struct {
	BaseURL  string
	Timezone string
}

// ChartConfig holds chart output settings
type ChartConfig struct {
	OutputPath string
	Open       bool // open the rendered chart in the default browser
	Width      string
	Height     string
}

// Load reads configuration from .env, config file and environment variables
func Load() (*Config, error) {
	// A missing .env is the common case
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.aircast")

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	// Read from environment variables, e.g. AIRCAST_APP_MAXHOURS
	v.SetEnvPrefix("AIRCAST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("app.maxHours", 48)
	v.SetDefault("app.forecastDays", 3)
	v.SetDefault("http.timeout", 10*time.Second)
	v.SetDefault("geocoder.baseURL", "https://nominatim.openstreetmap.org/search")
	v.SetDefault("geocoder.userAgent", "aircast/1.0 (+https://github.com/aircast/aircast)")
	v.SetDefault("geocoder.requestsPerSecond", 1.0)
	v.SetDefault("geocoder.burst", 1)
	v.SetDefault("forecast.baseURL", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("forecast.timezone", "auto")
	v.SetDefault("chart.outputPath", "aircast-forecast.html")
	v.SetDefault("chart.open", true)
	v.SetDefault("chart.width", "1200px")
	v.SetDefault("chart.height", "600px")
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewHTTPClient returns the client shared by the outbound API providers
func (c *Config) NewHTTPClient() *http.Client {
	return &http.Client{Timeout: c.HTTP.Timeout}
}

// NewLogger creates a new slog.Logger writing to stderr
func (c *Config) NewLogger() *slog.Logger {
	return c.NewLoggerTo(os.Stderr)
}

// NewLoggerTo creates a new slog.Logger based on the configuration
func (c *Config) NewLoggerTo(w io.Writer) *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
