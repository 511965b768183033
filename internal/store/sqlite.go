package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS forecast_records (
	id         TEXT PRIMARY KEY,
	pk         TEXT NOT NULL,
	created_at TEXT NOT NULL,
	body       TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS forecast_records_pk_created_at
	ON forecast_records (pk, created_at DESC);
`

// SQLiteStore keeps records as JSON documents in a local SQLite file.
// It mirrors the Cosmos layout: one row per record id, partitioned by pk.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// OpenSQLite opens (or creates) the database at path and ensures the schema
func OpenSQLite(ctx context.Context, path string, logger *slog.Logger) (*SQLiteStore, error) {
	if path == "" {
		return nil, errors.New("sqlite path is empty")
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// single writer
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		logger: logger.With("backend", "sqlite"),
	}, nil
}

func (s *SQLiteStore) Enabled() bool { return true }

func (s *SQLiteStore) Backend() string { return BackendSQLite }

func (s *SQLiteStore) Save(ctx context.Context, record ForecastRecord) (bool, error) {
	body, err := json.Marshal(record)
	if err != nil {
		return false, fmt.Errorf("failed to encode record: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO forecast_records (id, pk, created_at, body) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			pk = excluded.pk,
			created_at = excluded.created_at,
			body = excluded.body`,
		record.ID, record.PK, record.CreatedAt, string(body),
	)
	if err != nil {
		s.logger.Error("failed to upsert record", "id", record.ID, "error", err)
		return false, fmt.Errorf("failed to upsert record %s: %w", record.ID, err)
	}

	s.logger.Debug("upserted record", "id", record.ID, "created_at", record.CreatedAt)
	return true, nil
}

func (s *SQLiteStore) QueryRecent(ctx context.Context, limit int) (*History, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT body FROM forecast_records
		WHERE pk = ?
		ORDER BY created_at DESC
		LIMIT ?`,
		PartitionValue, limit,
	)
	if err != nil {
		s.logger.Error("failed to query records", "limit", limit, "error", err)
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var docs [][]byte
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		docs = append(docs, []byte(body))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	return &History{Items: decodeHistoryRows(docs, limit, s.logger)}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }
