package timezone

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/ringsaturn/tzf"
)

// Auto asks the forecast provider to pick the timezone from the coordinates
const Auto = "auto"

// Service provides timezone lookup functionality
type Service interface {
	GetTimezone(latitude, longitude float64) (string, error)
}

type service struct {
	finder tzf.F
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService returns the process-wide timezone service.
// tzf.Finder keeps the polygon index in memory, so it is built only once.
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{finder: finder}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// GetTimezone returns the IANA timezone name for the given coordinates,
// e.g. "Europe/Kyiv".
func (s *service) GetTimezone(latitude, longitude float64) (string, error) {
	name := s.finder.GetTimezoneName(longitude, latitude)
	if name == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", latitude, longitude)
	}
	return name, nil
}

// ResolveOrAuto looks up the timezone for a point and falls back to Auto
// when the service is unavailable or the lookup fails.
func ResolveOrAuto(svc Service, latitude, longitude float64, logger *slog.Logger) string {
	if svc == nil {
		return Auto
	}
	name, err := svc.GetTimezone(latitude, longitude)
	if err != nil {
		logger.Warn("falling back to provider timezone detection",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return Auto
	}
	return name
}
