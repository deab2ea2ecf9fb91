package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/inventory-tracker/backend/config"
)

func TestNewConnection(t *testing.T) {
	t.Run("opens an in-memory sqlite database", func(t *testing.T) {
		database, err := NewConnection(&config.DatabaseConfig{Driver: DriverSQLite, URL: "file::memory:", MaxOpenConns: 1, MaxIdleConns: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !database.HealthCheck() {
			t.Error("expected healthy connection")
		}
		if err := database.Close(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if database.HealthCheck() {
			t.Error("expected closed connection to be unhealthy")
		}
	})

	t.Run("creates the parent directory of a sqlite file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "inventory.db")

		database, err := NewConnection(&config.DatabaseConfig{Driver: DriverSQLite, URL: path, MaxOpenConns: 1, MaxIdleConns: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer database.Close()

		if _, err := os.Stat(filepath.Dir(path)); err != nil {
			t.Errorf("expected directory to exist: %v", err)
		}
	})

	t.Run("rejects unknown drivers", func(t *testing.T) {
		if _, err := NewConnection(&config.DatabaseConfig{Driver: "oracle"}); err == nil {
			t.Error("expected error for unknown driver")
		}
	})
}

func TestEnsureDirForSQLite(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
	}{
		{name: "memory", dsn: ":memory:"},
		{name: "shared memory", dsn: "file::memory:?cache=shared"},
		{name: "relative file", dsn: "inventory.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ensureDirForSQLite(tt.dsn); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
