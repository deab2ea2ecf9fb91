// Package persistencetest opens throwaway stores for tests in other packages.
package persistencetest

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/integration/persistence"
)

// Stores groups the repositories built on one in-memory database.
type Stores struct {
	DB         *gorm.DB
	Schema     adapter.SchemaManager
	Categories adapter.CategoryRepository
	Items      adapter.ItemRepository
	Settings   adapter.SettingsStore
}

// New opens a private in-memory SQLite database closed when t finishes.
func New(t testing.TB) *Stores {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	schema := persistence.NewSchemaManager(db)
	return &Stores{
		DB:         db,
		Schema:     schema,
		Categories: persistence.NewCategoryRepository(db, schema),
		Items:      persistence.NewItemRepository(db, schema),
		Settings:   persistence.NewSettingsRepository(db, schema),
	}
}

// Close closes the database so subsequent calls fail as if storage went away.
func (s *Stores) Close(t testing.TB) {
	t.Helper()

	sqlDB, err := s.DB.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	_ = sqlDB.Close()
}
