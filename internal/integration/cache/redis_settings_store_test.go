package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})
	return server, client
}

func TestRedisSettingsStore(t *testing.T) {
	ctx := context.Background()
	server, client := newTestClient(t)
	store := NewRedisSettingsStore(client)

	t.Run("Get reports absent keys", func(t *testing.T) {
		value, ok, err := store.Get(ctx, "cardsView")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok || value != "" {
			t.Errorf("expected absent key, got %q (ok=%v)", value, ok)
		}
	})

	t.Run("Set writes under the settings prefix", func(t *testing.T) {
		if err := store.Set(ctx, "cardsView", "true"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		raw, err := server.Get("inventory:settings:cardsView")
		if err != nil {
			t.Fatalf("expected prefixed key in redis: %v", err)
		}
		if raw != "true" {
			t.Errorf("expected raw value true, got %q", raw)
		}

		value, ok, err := store.Get(ctx, "cardsView")
		if err != nil || !ok || value != "true" {
			t.Errorf("expected true, got %q (ok=%v, err=%v)", value, ok, err)
		}
	})

	t.Run("Delete removes the key", func(t *testing.T) {
		if err := store.Delete(ctx, "cardsView"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if server.Exists("inventory:settings:cardsView") {
			t.Error("expected key to be removed")
		}
		if err := store.Delete(ctx, "cardsView"); err != nil {
			t.Errorf("expected no error deleting absent key, got %v", err)
		}
	})

	t.Run("errors surface when redis is down", func(t *testing.T) {
		server.Close()

		if _, _, err := store.Get(ctx, "theme"); err == nil {
			t.Error("expected error from closed server")
		}
	})
}
