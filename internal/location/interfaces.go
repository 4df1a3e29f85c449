package location

import (
	"context"

	"aircast/internal/providers/openstreetmap"
	"aircast/internal/types"
)

// Service resolves place names to locations
type Service interface {
	// Geocode returns the best match for a free-text place name
	Geocode(ctx context.Context, name string) (*types.Location, error)
}

// GeocodeProvider defines the interface for forward geocoding providers
type GeocodeProvider interface {
	Search(ctx context.Context, query string, limit int) (openstreetmap.SearchAPIResponse, error)
}
