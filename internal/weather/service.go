package weather

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/notinterrested/isitskiingyet/internal/providers/openmeteo"
	"github.com/notinterrested/isitskiingyet/internal/timezone"
	"github.com/notinterrested/isitskiingyet/internal/types"
)

type ForecastProvider interface {
	// GetCurrent fetches current conditions for the given coordinates
	GetCurrent(ctx context.Context, latitude, longitude float64) (*openmeteo.CurrentAPIResponse, error)
	// GetDailyForecast fetches the daily forecast for the given coordinates and timezone
	GetDailyForecast(ctx context.Context, latitude, longitude float64, forecastDays int, timezone string) (*openmeteo.DailyAPIResponse, error)
}

type Service interface {
	CurrentConditions(ctx context.Context) (*CurrentConditions, error)
	Forecast(ctx context.Context) (*ForecastResult, error)
}

type weatherService struct {
	forecastProvider ForecastProvider
	point            types.Coords
	timezone         string
	logger           *slog.Logger
}

// NewWeatherService creates a weather service for the Bukovel forecast point.
// The provider timezone is resolved once here; lookup failures fall back to "auto".
func NewWeatherService(forecastProvider ForecastProvider, logger *slog.Logger) Service {
	tzSvc, err := timezone.NewService()
	if err != nil {
		logger.Warn("timezone service unavailable", "error", err)
	}
	tz := timezone.ResolveOrAuto(tzSvc, Bukovel.Latitude, Bukovel.Longitude, logger)
	return NewWeatherServiceWithProvider(forecastProvider, Bukovel, tz, logger)
}

// NewWeatherServiceWithProvider creates a weather service with an explicit point and timezone.
// This is useful for testing with mock providers.
func NewWeatherServiceWithProvider(
	forecastProvider ForecastProvider,
	point types.Coords,
	tz string,
	logger *slog.Logger,
) Service {
	if err := point.Validate(); err != nil {
		logger.Warn("forecast point is outside WGS84 bounds", "point", point, "error", err)
	}
	return &weatherService{
		forecastProvider: forecastProvider,
		point:            point,
		timezone:         tz,
		logger:           logger.With("component", "weather-service"),
	}
}

func (s *weatherService) CurrentConditions(ctx context.Context) (*CurrentConditions, error) {
	apiResponse, err := s.forecastProvider.GetCurrent(ctx, s.point.Latitude, s.point.Longitude)
	if err != nil {
		s.logger.Error("failed to get current conditions from provider",
			"point", s.point,
			"error", err,
		)
		return nil, fmt.Errorf("failed to get current conditions: %w", err)
	}

	temp := apiResponse.Current.Temperature2M
	return &CurrentConditions{
		TemperatureC:   temp,
		SeasonPossible: isSeasonPossible(temp),
	}, nil
}

func (s *weatherService) Forecast(ctx context.Context) (*ForecastResult, error) {
	apiResponse, err := s.forecastProvider.GetDailyForecast(ctx, s.point.Latitude, s.point.Longitude, ForecastDays, s.timezone)
	if err != nil {
		s.logger.Error("failed to get forecast from provider",
			"point", s.point,
			"timezone", s.timezone,
			"error", err,
		)
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	result := mapDailyAPIResponseToForecast(s.point, apiResponse)

	s.logger.Debug("fetched daily forecast", "items", len(result.Items), "timezone", s.timezone)

	return result, nil
}

func mapDailyAPIResponseToForecast(point types.Coords, apiResponse *openmeteo.DailyAPIResponse) *ForecastResult {
	return &ForecastResult{
		Source: SourceOpenMeteo,
		Lat:    point.Latitude,
		Lon:    point.Longitude,
		Items:  zipItems(apiResponse.Daily.Time, apiResponse.Daily.Temperature2MMax),
	}
}

// zipItems pairs dates with temperatures; entries past the shorter slice are dropped
func zipItems(dates []string, temps []*float64) []ForecastItem {
	n := min(len(dates), len(temps))
	items := make([]ForecastItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, ForecastItem{Date: dates[i], TempC: temps[i]})
	}
	return items
}

// isSeasonPossible reports whether a known temperature is at or below freezing
func isSeasonPossible(tempC *float64) bool {
	return tempC != nil && *tempC <= 0
}
