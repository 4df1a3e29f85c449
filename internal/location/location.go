package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"aircast/internal/config"
	"aircast/internal/providers/openstreetmap"
	"aircast/internal/types"
)

// ErrLocationNotFound is returned when the geocoder has no match for a name
var ErrLocationNotFound = errors.New("location not found")

// locationService implements the Service interface
type locationService struct {
	geocodeProvider GeocodeProvider
	logger          *slog.Logger
}

// NewLocationService creates a new location service backed by Nominatim,
// throttled to the configured request rate
func NewLocationService(cfg *config.Config, logger *slog.Logger) Service {
	client := openstreetmap.NewClientWithOptions(cfg.NewHTTPClient(), cfg.Geocoder.BaseURL, cfg.Geocoder.UserAgent)
	provider := NewRateLimitedGeocodeProvider(client, cfg.Geocoder.RequestsPerSecond, cfg.Geocoder.Burst)
	return NewLocationServiceWithProvider(provider, logger)
}

// NewLocationServiceWithProvider creates a new location service with a custom provider
// This is useful for testing with mock providers
func NewLocationServiceWithProvider(geocodeProvider GeocodeProvider, logger *slog.Logger) Service {
	return &locationService{
		geocodeProvider: geocodeProvider,
		logger:          logger.With("component", "location-service"),
	}
}

// Geocode asks the provider for the single best match for name.
// A blank name is reported as not found without contacting the provider.
func (s *locationService) Geocode(ctx context.Context, name string) (*types.Location, error) {
	if strings.TrimSpace(name) == "" {
		return nil, notFound(name)
	}

	results, err := s.geocodeProvider.Search(ctx, name, 1)
	if err != nil {
		s.logger.Error("geocode request failed", "query", name, "error", err)
		return nil, fmt.Errorf("failed to geocode %q: %w", name, err)
	}

	if len(results) == 0 {
		s.logger.Debug("no geocode results", "query", name)
		return nil, notFound(name)
	}

	loc, err := translateSearchResult(name, results[0])
	if err != nil {
		return nil, err
	}

	s.logger.Debug("geocoded location",
		"query", name,
		"latitude", loc.Latitude,
		"longitude", loc.Longitude,
		"display_name", loc.DisplayName,
	)

	return loc, nil
}

func notFound(name string) error {
	return fmt.Errorf("%w: could not find location for '%s'", ErrLocationNotFound, name)
}

// translateSearchResult converts a Nominatim search hit to the domain Location type
func translateSearchResult(query string, result openstreetmap.SearchResult) (*types.Location, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(result.Lat), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude %q in geocode result: %w", result.Lat, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(result.Lon), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude %q in geocode result: %w", result.Lon, err)
	}

	name := result.DisplayName
	if name == "" {
		name = query
	}

	return &types.Location{
		Latitude:    lat,
		Longitude:   lon,
		DisplayName: name,
	}, nil
}
