package recent_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/TristanLaR/glance/internal/recent"
)

func openStore(t *testing.T) *recent.Store {
	t.Helper()
	store, err := recent.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("recent.Open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return store
}

func TestTouchAndList(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if err := store.Touch(ctx, "/docs/a.md", "a.md"); err != nil {
		t.Fatalf("Touch a: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if err := store.Touch(ctx, "/docs/b.md", "b.md"); err != nil {
		t.Fatalf("Touch b: %v", err)
	}

	entries, err := store.List(ctx, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Path != "/docs/b.md" || entries[1].Path != "/docs/a.md" {
		t.Fatalf("wrong order: %+v", entries)
	}
	if entries[0].OpenedAt.IsZero() {
		t.Fatal("opened_at not parsed")
	}
}

func TestTouchRefreshesExistingEntry(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if err := store.Touch(ctx, "/docs/a.md", "a.md"); err != nil {
		t.Fatalf("Touch: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if err := store.Touch(ctx, "/docs/b.md", "b.md"); err != nil {
		t.Fatalf("Touch: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if err := store.Touch(ctx, "/docs/a.md", "a.md"); err != nil {
		t.Fatalf("re-Touch: %v", err)
	}

	entries, err := store.List(ctx, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("re-touch must not duplicate, got %d entries", len(entries))
	}
	if entries[0].Path != "/docs/a.md" {
		t.Fatalf("re-touched entry should be first: %+v", entries)
	}
}

func TestPruneKeepsNewest(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	for i, path := range []string{"/a.md", "/b.md", "/c.md", "/d.md"} {
		if err := store.Touch(ctx, path, filepath.Base(path)); err != nil {
			t.Fatalf("Touch %d: %v", i, err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	removed, err := store.Prune(ctx, 2)
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}

	entries, err := store.List(ctx, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(entries))
	}
	if entries[0].Path != "/d.md" || entries[1].Path != "/c.md" {
		t.Fatalf("wrong survivors: %+v", entries)
	}
}

func TestCloseNilSafe(t *testing.T) {
	var store *recent.Store
	if err := store.Close(); err != nil {
		t.Fatalf("nil close: %v", err)
	}
}
