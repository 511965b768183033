package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

func openTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "records.db"), newTestLogger())
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteSaveAndQuery(t *testing.T) {
	s := openTestSQLite(t)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		rec := testRecord(fmt.Sprintf("r%d", i), base.Add(time.Duration(i)*time.Minute), float64(-i), float64(i))
		saved, err := s.Save(ctx, rec)
		if err != nil {
			t.Fatalf("Save(%s) failed: %v", rec.ID, err)
		}
		if !saved {
			t.Fatalf("Save(%s) = false, want true", rec.ID)
		}
	}

	history, err := s.QueryRecent(ctx, 3)
	if err != nil {
		t.Fatalf("QueryRecent failed: %v", err)
	}
	if history.Note != "" {
		t.Errorf("note = %q, want empty", history.Note)
	}
	if len(history.Items) != 3 {
		t.Fatalf("len = %d, want 3", len(history.Items))
	}

	wantIDs := []string{"r4", "r3", "r2"}
	for i, want := range wantIDs {
		if history.Items[i].ID != want {
			t.Errorf("item %d id = %q, want %q", i, history.Items[i].ID, want)
		}
	}
	for i := 1; i < len(history.Items); i++ {
		if history.Items[i-1].CreatedAt < history.Items[i].CreatedAt {
			t.Errorf("items not ordered by created_at desc: %q before %q", history.Items[i-1].CreatedAt, history.Items[i].CreatedAt)
		}
	}

	first := history.Items[0]
	if len(first.Items) != 2 {
		t.Fatalf("len(first.Items) = %d, want 2", len(first.Items))
	}
	if first.Items[0].TempC == nil || *first.Items[0].TempC != -4 {
		t.Errorf("first.Items[0].TempC = %v, want -4", first.Items[0].TempC)
	}
}

func TestSQLiteQueryRecent_LimitLargerThanRows(t *testing.T) {
	s := openTestSQLite(t)
	ctx := context.Background()

	if _, err := s.Save(ctx, testRecord("only", time.Now(), 1)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	history, err := s.QueryRecent(ctx, 10)
	if err != nil {
		t.Fatalf("QueryRecent failed: %v", err)
	}
	if len(history.Items) != 1 {
		t.Fatalf("len = %d, want 1", len(history.Items))
	}
}

func TestSQLiteQueryRecent_Empty(t *testing.T) {
	s := openTestSQLite(t)

	history, err := s.QueryRecent(context.Background(), 10)
	if err != nil {
		t.Fatalf("QueryRecent failed: %v", err)
	}
	if history.Items == nil || len(history.Items) != 0 {
		t.Errorf("items = %v, want empty non-nil", history.Items)
	}
}

func TestSQLiteSave_UpsertIsIdempotent(t *testing.T) {
	s := openTestSQLite(t)
	ctx := context.Background()

	rec := testRecord("same-id", time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), -1)
	if _, err := s.Save(ctx, rec); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}

	rec.Forecast.Items[0].TempC = ptr(-7)
	if _, err := s.Save(ctx, rec); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	history, err := s.QueryRecent(ctx, 10)
	if err != nil {
		t.Fatalf("QueryRecent failed: %v", err)
	}
	if len(history.Items) != 1 {
		t.Fatalf("len = %d, want 1 record after two upserts", len(history.Items))
	}
	if got := history.Items[0].Items[0].TempC; got == nil || *got != -7 {
		t.Errorf("TempC = %v, want -7 from the second write", got)
	}
}

func TestSQLiteQueryRecent_OtherPartitionIgnored(t *testing.T) {
	s := openTestSQLite(t)
	ctx := context.Background()

	other := testRecord("elsewhere", time.Now(), 3)
	other.PK = "dragobrat"
	if _, err := s.Save(ctx, other); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := s.Save(ctx, testRecord("here", time.Now(), 2)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	history, err := s.QueryRecent(ctx, 10)
	if err != nil {
		t.Fatalf("QueryRecent failed: %v", err)
	}
	if len(history.Items) != 1 || history.Items[0].ID != "here" {
		t.Errorf("items = %+v, want only the %s partition", history.Items, PartitionValue)
	}
}

func TestSQLiteReopenKeepsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.db")
	ctx := context.Background()

	s, err := OpenSQLite(ctx, path, newTestLogger())
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	if _, err := s.Save(ctx, testRecord("persisted", time.Now(), 0)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	s, err = OpenSQLite(ctx, path, newTestLogger())
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	history, err := s.QueryRecent(ctx, 10)
	if err != nil {
		t.Fatalf("QueryRecent failed: %v", err)
	}
	if len(history.Items) != 1 || history.Items[0].ID != "persisted" {
		t.Errorf("items = %+v, want the persisted record", history.Items)
	}
}
