package weather

import (
	"github.com/notinterrested/isitskiingyet/internal/types"
)

const (
	// SourceOpenMeteo tags forecasts fetched from Open-Meteo
	SourceOpenMeteo = "open-meteo"

	// ForecastDays is the daily forecast horizon requested from the provider
	ForecastDays = 14
)

// Bukovel is the fixed forecast point (approximate resort coordinates)
var Bukovel = types.NewCoords(48.356, 24.421)

// ForecastItem is one day of the forecast. TempC is nil when the provider
// has no value for that day.
type ForecastItem struct {
	Date  string   `json:"date" example:"2024-01-01"`
	TempC *float64 `json:"temp_c" example:"-3.5"`
}

// ForecastResult is a daily maximum temperature series for a fixed point
type ForecastResult struct {
	Source string         `json:"source" example:"open-meteo"`
	Lat    float64        `json:"lat" example:"48.356"`
	Lon    float64        `json:"lon" example:"24.421"`
	Items  []ForecastItem `json:"items"`
}

// CurrentConditions reports the instantaneous temperature and whether it is
// cold enough for the ski season.
type CurrentConditions struct {
	TemperatureC   *float64 `json:"temperature_c" example:"-1.2"`
	SeasonPossible bool     `json:"season_possible" example:"true"`
}
