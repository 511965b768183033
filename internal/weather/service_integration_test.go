//go:build integration

package weather

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/notinterrested/isitskiingyet/internal/providers/openmeteo"
)

func TestWeatherService_Forecast_Integration(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	svc := NewWeatherService(openmeteo.NewForecastClient(logger), logger)

	forecast, err := svc.Forecast(context.Background())
	if err != nil {
		t.Fatalf("Forecast() error = %v", err)
	}

	if len(forecast.Items) != ForecastDays {
		t.Errorf("Expected %d items, got %d", ForecastDays, len(forecast.Items))
	}
	for _, item := range forecast.Items {
		if item.TempC == nil {
			t.Logf("%s: no value", item.Date)
			continue
		}
		t.Logf("%s: %.1f°C", item.Date, *item.TempC)
	}

	conditions, err := svc.CurrentConditions(context.Background())
	if err != nil {
		t.Fatalf("CurrentConditions() error = %v", err)
	}
	t.Logf("Season possible: %v", conditions.SeasonPossible)
}
