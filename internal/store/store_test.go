package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	store := New(db)
	if err := store.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return store
}

func TestGetMissing(t *testing.T) {
	store := setupTestStore(t)

	value, ok, err := store.Get(context.Background(), "wc_dark_mode")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Errorf("ok = true, value = %q; want missing", value)
	}
}

func TestSetAndGet(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "wc_dark_mode", "1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value, ok, err := store.Get(ctx, "wc_dark_mode")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || value != "1" {
		t.Errorf("Get = %q, %v; want \"1\", true", value, ok)
	}

	if err := store.Set(ctx, "wc_dark_mode", "0"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	value, _, _ = store.Get(ctx, "wc_dark_mode")
	if value != "0" {
		t.Errorf("after overwrite Get = %q, want \"0\"", value)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	store := setupTestStore(t)

	if err := store.Migrate(); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
	version, err := store.MigrationVersion()
	if err != nil {
		t.Fatalf("MigrationVersion: %v", err)
	}
	if version != len(migrations) {
		t.Errorf("version = %d, want %d", version, len(migrations))
	}
}

func TestOpen_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.db")
	ctx := context.Background()

	s1, db1, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s1.Set(ctx, "wc_dark_mode", "1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	db1.Close()

	s2, db2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db2.Close()

	value, ok, err := s2.Get(ctx, "wc_dark_mode")
	if err != nil || !ok || value != "1" {
		t.Errorf("Get after reopen = %q, %v, %v", value, ok, err)
	}
}
