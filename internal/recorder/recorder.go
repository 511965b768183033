package recorder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/notinterrested/isitskiingyet/internal/store"
	"github.com/notinterrested/isitskiingyet/internal/weather"
)

// ForecastSource provides the daily forecast to record
type ForecastSource interface {
	Forecast(ctx context.Context) (*weather.ForecastResult, error)
}

// UpdateResult is returned after fetching and (maybe) persisting a forecast
type UpdateResult struct {
	SavedToDB bool                   `json:"saved_to_db" example:"true"`
	CreatedAt string                 `json:"created_at" example:"2024-01-01T08:30:00.000000+00:00"`
	Items     []weather.ForecastItem `json:"items"`
}

// Service records fetched forecasts and reads them back
type Service interface {
	UpdateForecast(ctx context.Context) (*UpdateResult, error)
	History(ctx context.Context, limit int) (*store.History, error)
	PersistenceEnabled() bool
	// Backend names the store records are written to
	Backend() string
}

type recorderService struct {
	source ForecastSource
	store  store.Store
	now    func() time.Time
	newID  func() string
	logger *slog.Logger
}

// NewRecorderService creates a recorder over the given forecast source and store
func NewRecorderService(source ForecastSource, st store.Store, logger *slog.Logger) Service {
	return &recorderService{
		source: source,
		store:  st,
		now:    time.Now,
		newID:  uuid.NewString,
		logger: logger.With("component", "recorder"),
	}
}

// UpdateForecast fetches the 14-day forecast and upserts it as a new record.
// A fetch failure fails the call; a save failure is logged and reported as SavedToDB=false.
func (s *recorderService) UpdateForecast(ctx context.Context) (*UpdateResult, error) {
	forecast, err := s.source.Forecast(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}

	record := store.ForecastRecord{
		ID:           s.newID(),
		PK:           store.PartitionValue,
		CreatedAt:    store.FormatCreatedAt(s.now()),
		ForecastDays: weather.ForecastDays,
		Forecast:     *forecast,
	}

	saved, err := s.store.Save(ctx, record)
	if err != nil {
		s.logger.Error("failed to save forecast record",
			"id", record.ID,
			"error", err,
		)
		saved = false
	}

	s.logger.Info("forecast updated",
		"id", record.ID,
		"items", len(forecast.Items),
		"saved_to_db", saved,
	)

	return &UpdateResult{
		SavedToDB: saved,
		CreatedAt: record.CreatedAt,
		Items:     forecast.Items,
	}, nil
}

func (s *recorderService) History(ctx context.Context, limit int) (*store.History, error) {
	history, err := s.store.QueryRecent(ctx, limit)
	if err != nil {
		s.logger.Error("failed to read forecast history", "limit", limit, "error", err)
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	return history, nil
}

func (s *recorderService) PersistenceEnabled() bool {
	return s.store.Enabled()
}

func (s *recorderService) Backend() string {
	return s.store.Backend()
}
