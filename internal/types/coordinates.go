package types

import (
	"fmt"
	"log/slog"
	"strconv"
)

// Coords is a WGS84 point in decimal degrees
type Coords struct {
	Latitude  float64
	Longitude float64
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Validate reports whether the point lies within WGS84 bounds
func (c Coords) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", c.Longitude)
	}
	return nil
}

// String renders the point as "lat,lon" without trailing zeros
func (c Coords) String() string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}

// LogValue groups latitude and longitude under one slog attribute
func (c Coords) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("latitude", c.Latitude),
		slog.Float64("longitude", c.Longitude),
	)
}
