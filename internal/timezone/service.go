package timezone

import (
	"fmt"
	"sync"

	"github.com/ringsaturn/tzf"
)

// Service provides timezone lookup functionality
type Service interface {
	GetTimezone(latitude, longitude float64) (string, error)
}

// service implements timezone lookup using tzf
type service struct {
	once    sync.Once
	finder  tzf.F
	loadErr error
}

var (
	instance = &service{}
)

// NewService returns the shared timezone service.
// The finder holds ~50MB of boundary data, so it is loaded once on first lookup
// and most runs, which get the zone from the forecast API, never load it.
func NewService() Service {
	return instance
}

func (s *service) load() error {
	s.once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			s.loadErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		s.finder = finder
	})
	return s.loadErr
}

// GetTimezone returns the IANA timezone name for the given coordinates
// Returns timezone names like "America/Denver", "Europe/London", etc.
func (s *service) GetTimezone(latitude, longitude float64) (string, error) {
	if err := s.load(); err != nil {
		return "", err
	}

	timezone := s.finder.GetTimezoneName(longitude, latitude)
	if timezone == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", latitude, longitude)
	}

	return timezone, nil
}
