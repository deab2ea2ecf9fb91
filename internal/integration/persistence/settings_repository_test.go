package persistence

import (
	"context"
	"testing"
)

func TestSettingsRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewSettingsRepository(db, NewSchemaManager(db))

	t.Run("Get reports absent keys", func(t *testing.T) {
		value, ok, err := store.Get(ctx, "theme")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok || value != "" {
			t.Errorf("expected absent key, got %q (ok=%v)", value, ok)
		}
	})

	t.Run("Set then Get returns the value", func(t *testing.T) {
		if err := store.Set(ctx, "theme", "light"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		value, ok, err := store.Get(ctx, "theme")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok || value != "light" {
			t.Errorf("expected light, got %q (ok=%v)", value, ok)
		}
	})

	t.Run("Set overwrites an existing value", func(t *testing.T) {
		if err := store.Set(ctx, "theme", "dark"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		value, _, _ := store.Get(ctx, "theme")
		if value != "dark" {
			t.Errorf("expected dark, got %q", value)
		}
	})

	t.Run("Delete removes the key and tolerates absent keys", func(t *testing.T) {
		if err := store.Delete(ctx, "theme"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok, _ := store.Get(ctx, "theme"); ok {
			t.Error("expected key to be gone")
		}
		if err := store.Delete(ctx, "theme"); err != nil {
			t.Errorf("expected no error deleting absent key, got %v", err)
		}
	})
}
