package store

import "context"

// Disabled is the store used when persistence is not configured
type Disabled struct {
	Note string
}

func NewDisabled(note string) *Disabled {
	return &Disabled{Note: note}
}

func (d *Disabled) Enabled() bool { return false }

func (d *Disabled) Backend() string { return BackendNone }

func (d *Disabled) Save(ctx context.Context, record ForecastRecord) (bool, error) {
	return false, nil
}

func (d *Disabled) QueryRecent(ctx context.Context, limit int) (*History, error) {
	return &History{Items: []HistoryEntry{}, Note: d.Note}, nil
}

func (d *Disabled) Close() error { return nil }
