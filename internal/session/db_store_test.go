package session

import (
	"path/filepath"
	"testing"

	"github.com/garrettladley/safequake/internal/db"
)

func newTestDBStore(t *testing.T) *DBStore {
	t.Helper()

	sqlDB, querier, err := db.Open(t.Context(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	return NewDBStore(querier)
}

func TestDBStore(t *testing.T) {
	t.Parallel()

	store := newTestDBStore(t)
	ctx := t.Context()

	token, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() on empty db error = %v", err)
	}
	if token != "" {
		t.Fatalf("Load() on empty db = %q, want empty", token)
	}

	if err := store.Save(ctx, "first"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Save(ctx, "second"); err != nil {
		t.Fatalf("Save() overwrite error = %v", err)
	}
	if token, _ := store.Load(ctx); token != "second" {
		t.Errorf("Load() = %q, want %q", token, "second")
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if token, _ := store.Load(ctx); token != "" {
		t.Errorf("Load() after Clear() = %q, want empty", token)
	}
}

func TestDBStore_RestoreSeedsGate(t *testing.T) {
	t.Parallel()

	store := newTestDBStore(t)
	if err := store.Save(t.Context(), "persisted"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	state, err := Restore(t.Context(), store)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if !state.IsAuthenticated() {
		t.Error("IsAuthenticated() = false with a persisted token")
	}
}
