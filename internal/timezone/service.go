package timezone

import (
	"fmt"
	"sync"
	"time"

	"github.com/ringsaturn/tzf"
)

// Service resolves the local time zone of a coordinate. It backs up the
// timeZone field of the NWS point document.
type Service interface {
	GetTimezone(latitude, longitude float64) (string, error)
	GetLocation(latitude, longitude float64) (*time.Location, error)
}

// service implements timezone lookup using tzf
type service struct {
	finder tzf.F
	mu     sync.RWMutex
	cache  map[string]*time.Location
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService creates or returns the singleton timezone service
// Uses singleton pattern because tzf.Finder loads timezone data into memory (~50MB)
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{
			finder: finder,
			cache:  make(map[string]*time.Location),
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// GetTimezone returns the IANA timezone name for the given coordinates
// Returns timezone names like "America/New_York", "America/Chicago", etc.
func (s *service) GetTimezone(latitude, longitude float64) (string, error) {
	timezone := s.finder.GetTimezoneName(longitude, latitude)
	if timezone == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", latitude, longitude)
	}

	return timezone, nil
}

// GetLocation returns the loaded *time.Location for the given coordinates
func (s *service) GetLocation(latitude, longitude float64) (*time.Location, error) {
	name, err := s.GetTimezone(latitude, longitude)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	loc, ok := s.cache[name]
	s.mu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err = time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	s.mu.Lock()
	s.cache[name] = loc
	s.mu.Unlock()

	return loc, nil
}
