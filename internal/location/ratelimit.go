package location

import (
	"context"
	"fmt"

	"aircast/internal/providers/openstreetmap"

	"golang.org/x/time/rate"
)

// RateLimitedGeocodeProvider wraps a GeocodeProvider with rate limiting.
// Nominatim's usage policy allows at most one request per second.
type RateLimitedGeocodeProvider struct {
	provider GeocodeProvider
	limiter  *rate.Limiter
}

// NewRateLimitedGeocodeProvider creates a new rate limited geocode provider
// rps is the maximum requests per second allowed (can be fractional for less than 1 request per second)
// burst is the maximum burst size allowed
func NewRateLimitedGeocodeProvider(provider GeocodeProvider, rps float64, burst int) *RateLimitedGeocodeProvider {
	if burst < 1 {
		burst = 1
	}
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &RateLimitedGeocodeProvider{
		provider: provider,
		limiter:  rate.NewLimiter(limit, burst),
	}
}

// Search waits for limiter permission, then forwards to the wrapped provider
func (r *RateLimitedGeocodeProvider) Search(ctx context.Context, query string, limit int) (openstreetmap.SearchAPIResponse, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.provider.Search(ctx, query, limit)
}

var _ GeocodeProvider = (*RateLimitedGeocodeProvider)(nil)
