package persistence

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/inventory-tracker/backend/internal/application/adapter"
)

// newTestDB opens a private in-memory database. A single connection keeps
// every statement on the same memory database.
func newTestDB(t *testing.T) *gorm.DB {
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

	return db
}

func newTestRepositories(t *testing.T) (*gorm.DB, adapter.CategoryRepository, adapter.ItemRepository) {
	t.Helper()

	db := newTestDB(t)
	schema := NewSchemaManager(db)
	return db, NewCategoryRepository(db, schema), NewItemRepository(db, schema)
}
