//go:build integration

package openmeteo

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
)

func TestForecastClient_GetDailyForecast_Integration(t *testing.T) {
	// Test coordinates: Bukovel, UA
	lat := 48.356
	lon := 24.421
	forecastDays := 14

	client := NewForecastClient(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	t.Logf("Making API call to OpenMeteo Forecast API...")
	t.Logf("Coordinates: lat=%f, lon=%f", lat, lon)

	resp, err := client.GetDailyForecast(context.Background(), lat, lon, forecastDays, "auto")
	if err != nil {
		t.Fatalf("Failed to get forecast: %v", err)
	}

	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}
	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if resp.Latitude < lat-1 || resp.Latitude > lat+1 {
		t.Errorf("Latitude mismatch: expected ~%f, got %f", lat, resp.Latitude)
	}
	if resp.Longitude < lon-1 || resp.Longitude > lon+1 {
		t.Errorf("Longitude mismatch: expected ~%f, got %f", lon, resp.Longitude)
	}

	if len(resp.Daily.Time) != forecastDays {
		t.Errorf("Daily forecast contains %d days, want %d", len(resp.Daily.Time), forecastDays)
	}
	if len(resp.Daily.Temperature2MMax) != len(resp.Daily.Time) {
		t.Errorf("temperature_2m_max has %d values for %d days", len(resp.Daily.Temperature2MMax), len(resp.Daily.Time))
	}

	t.Log("✓ API call successful, response structure valid")
}

func TestForecastClient_GetCurrent_Integration(t *testing.T) {
	client := NewForecastClient(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	resp, err := client.GetCurrent(context.Background(), 48.356, 24.421)
	if err != nil {
		t.Fatalf("Failed to get current conditions: %v", err)
	}

	if resp.Current.Temperature2M == nil {
		t.Fatal("No current temperature")
	}
	t.Logf("Current temperature: %.1f°C", *resp.Current.Temperature2M)
}
