package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "angrytodo-test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}

	store, err := NewSQLiteStore(db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	store.now = func() time.Time { return time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC) }
	return store
}

func TestKeyValueCRUD(t *testing.T) {
	stores := map[string]KeyValueStore{
		"sqlite": setupStore(t),
		"memory": NewMemoryStore(),
	}
	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if _, err := store.Get(ctx, "savedLists"); err != ErrNotFound {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}

			if err := store.Put(ctx, "savedLists", `[{"name":"a","tasks":[]}]`); err != nil {
				t.Fatalf("put: %v", err)
			}
			if err := store.Put(ctx, "savedLists", `[]`); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			got, err := store.Get(ctx, "savedLists")
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if got != `[]` {
				t.Fatalf("expected overwritten value, got %q", got)
			}

			if err := store.Put(ctx, "  ", "x"); err == nil {
				t.Fatal("expected error for blank key")
			}
		})
	}
}

func TestMemoryStoreZeroValue(t *testing.T) {
	var store MemoryStore
	ctx := context.Background()
	if _, err := store.Get(ctx, "savedLists"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := store.Put(ctx, "savedLists", "[]"); err != nil {
		t.Fatalf("put on zero value: %v", err)
	}
	got, err := store.Get(ctx, "savedLists")
	if err != nil || got != "[]" {
		t.Fatalf("expected stored value, got %q err=%v", got, err)
	}
}

func TestSQLiteStoreRecordsUpdatedAt(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	if err := store.Put(ctx, "savedLists", "[]"); err != nil {
		t.Fatalf("put: %v", err)
	}
	var updated string
	if err := store.db.QueryRow(`SELECT updated_at FROM kv WHERE key = ?`, "savedLists").Scan(&updated); err != nil {
		t.Fatalf("read updated_at: %v", err)
	}
	if updated != "2026-02-09T12:00:00Z" {
		t.Fatalf("unexpected updated_at: %q", updated)
	}
}

func TestOpenSQLiteCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "angrytodo.db")
	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer store.Close()
	if err := store.Put(context.Background(), "k", "v"); err != nil {
		t.Fatalf("put: %v", err)
	}

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	got, err := reopened.Get(context.Background(), "k")
	if err != nil || got != "v" {
		t.Fatalf("expected persisted value, got %q err=%v", got, err)
	}
}
