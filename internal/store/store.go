// Package store persists fetched forecasts to a partitioned document store.
//
// A Store is either enabled (backed by Cosmos DB or SQLite) or Disabled.
// Open never fails: missing configuration or an unreachable backend yields
// a Disabled store so the API keeps serving without persistence.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/notinterrested/isitskiingyet/internal/config"
	"github.com/notinterrested/isitskiingyet/internal/weather"
)

const (
	// PartitionValue is the single partition every record lives in
	PartitionValue = "bukovel"
	// PartitionKeyPath is the container partition key path; it refers to ForecastRecord.PK
	PartitionKeyPath = "/pk"

	// CreatedAtLayout is fixed-width UTC so lexical order matches time order
	CreatedAtLayout = "2006-01-02T15:04:05.000000-07:00"

	initTimeout = 30 * time.Second
)

// Backend names reported by Store.Backend
const (
	BackendCosmos = config.DriverCosmos
	BackendSQLite = config.DriverSQLite
	BackendNone   = "none"
)

// Notes returned by a Disabled store's history
const (
	NoteCosmosNotConfigured = "Cosmos DB is not configured"
	NoteSQLiteNotConfigured = "SQLite store is not configured"
)

// ForecastRecord is the persisted document
type ForecastRecord struct {
	ID           string                 `json:"id"`
	PK           string                 `json:"pk"`
	CreatedAt    string                 `json:"created_at"`
	ForecastDays int                    `json:"forecast_days"`
	Forecast     weather.ForecastResult `json:"forecast"`
}

// HistoryEntry is the compact shape of a stored record
type HistoryEntry struct {
	ID        string                 `json:"id" example:"3f1c2a9e-8d4b-4f4e-9a51-0c7e2b6d1a2f"`
	CreatedAt string                 `json:"created_at" example:"2024-01-01T08:30:00.000000+00:00"`
	Items     []weather.ForecastItem `json:"items"`
}

// History is the result of QueryRecent. Note is set only by a Disabled store.
type History struct {
	Items []HistoryEntry `json:"items"`
	Note  string         `json:"note,omitempty" example:"Cosmos DB is not configured"`
}

// Store is the record store capability
type Store interface {
	// Enabled reports whether records are actually persisted
	Enabled() bool
	// Backend is BackendCosmos, BackendSQLite or BackendNone
	Backend() string
	// Save upserts the record by ID. It reports false without error when disabled.
	Save(ctx context.Context, record ForecastRecord) (bool, error)
	// QueryRecent returns up to limit records, newest first
	QueryRecent(ctx context.Context, limit int) (*History, error)
	Close() error
}

// FormatCreatedAt renders t in CreatedAtLayout, e.g. 2024-01-01T08:30:00.000000+00:00
func FormatCreatedAt(t time.Time) string {
	return t.UTC().Format(CreatedAtLayout)
}

// Open builds the configured store, degrading to Disabled on any failure
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) Store {
	logger = logger.With("component", "record-store")

	ctx, cancel := context.WithTimeout(ctx, initTimeout)
	defer cancel()

	switch cfg.Store.Driver {
	case config.DriverSQLite:
		if cfg.SQLite.Path == "" {
			logger.Info("persistence disabled", "driver", cfg.Store.Driver, "reason", "sqlite path not set")
			return NewDisabled(NoteSQLiteNotConfigured)
		}
		s, err := OpenSQLite(ctx, cfg.SQLite.Path, logger)
		if err != nil {
			logger.Warn("persistence disabled", "driver", cfg.Store.Driver, "error", err)
			return NewDisabled(NoteSQLiteNotConfigured)
		}
		logger.Info("persistence enabled", "driver", cfg.Store.Driver, "path", cfg.SQLite.Path)
		return s
	default:
		if cfg.Cosmos.Endpoint == "" || cfg.Cosmos.Key == "" {
			logger.Info("persistence disabled", "driver", cfg.Store.Driver, "reason", "endpoint or key not set")
			return NewDisabled(NoteCosmosNotConfigured)
		}
		s, err := OpenCosmos(ctx, cfg.Cosmos, logger)
		if err != nil {
			logger.Warn("persistence disabled", "driver", cfg.Store.Driver, "error", err)
			return NewDisabled(NoteCosmosNotConfigured)
		}
		logger.Info("persistence enabled",
			"driver", cfg.Store.Driver,
			"database", cfg.Cosmos.Database,
			"container", cfg.Cosmos.Container,
		)
		return s
	}
}

// storedRow is the subset of a stored document read back for history.
// Forecast is a pointer so a missing payload is distinguishable.
type storedRow struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	Forecast  *struct {
		Items []weather.ForecastItem `json:"items"`
	} `json:"forecast"`
}

// decodeHistoryRows maps raw documents to history entries. Documents that
// do not decode are skipped and logged.
func decodeHistoryRows(rows [][]byte, limit int, logger *slog.Logger) []HistoryEntry {
	entries := make([]HistoryEntry, 0, min(len(rows), limit))
	for _, raw := range rows {
		if len(entries) >= limit {
			break
		}
		entry, err := decodeHistoryRow(raw)
		if err != nil {
			logger.Warn("skipping malformed record", "error", err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

func decodeHistoryRow(raw []byte) (HistoryEntry, error) {
	var row storedRow
	if err := json.Unmarshal(raw, &row); err != nil {
		return HistoryEntry{}, fmt.Errorf("failed to decode record: %w", err)
	}

	items := []weather.ForecastItem{}
	if row.Forecast != nil && row.Forecast.Items != nil {
		items = row.Forecast.Items
	}

	return HistoryEntry{
		ID:        row.ID,
		CreatedAt: row.CreatedAt,
		Items:     items,
	}, nil
}
