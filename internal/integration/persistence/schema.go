package persistence

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"gorm.io/gorm"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
	"github.com/inventory-tracker/backend/internal/integration/persistence/model"
)

const addCategoryColumnSQLite = "ALTER TABLE items ADD COLUMN category INTEGER REFERENCES categories(id)"

// schemaManager implements the adapter.SchemaManager interface.
type schemaManager struct {
	db *gorm.DB
	mu sync.Mutex
}

// NewSchemaManager creates a new schema manager instance.
func NewSchemaManager(db *gorm.DB) adapter.SchemaManager {
	return &schemaManager{
		db: db,
	}
}

// EnsureSchema creates the categories, items and settings tables when absent
// and adds the items.category column to tables created before it existed.
// Only catalog queries run when the schema is already in place.
func (s *schemaManager) EnsureSchema(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.db.WithContext(ctx).Migrator()

	if !m.HasTable(&model.CategoryModel{}) {
		if err := m.CreateTable(&model.CategoryModel{}); err != nil {
			return domainerror.NewStorageUnavailableError(fmt.Errorf("create categories table: %w", err))
		}
		slog.Info("Created table", "table", model.CategoryModel{}.TableName())
	}

	if !m.HasTable(&model.ItemModel{}) {
		if err := m.CreateTable(&model.ItemModel{}); err != nil {
			return domainerror.NewStorageUnavailableError(fmt.Errorf("create items table: %w", err))
		}
		slog.Info("Created table", "table", model.ItemModel{}.TableName())
	} else if !m.HasColumn(&model.ItemModel{}, "category") {
		if err := s.addCategoryColumn(ctx); err != nil {
			return domainerror.NewStorageUnavailableError(fmt.Errorf("add items.category column: %w", err))
		}
		slog.Info("Migrated items table", "column", "category")
	}

	if !m.HasTable(&model.SettingModel{}) {
		if err := m.CreateTable(&model.SettingModel{}); err != nil {
			return domainerror.NewStorageUnavailableError(fmt.Errorf("create settings table: %w", err))
		}
		slog.Info("Created table", "table", model.SettingModel{}.TableName())
	}

	return nil
}

// addCategoryColumn adds the nullable foreign key column to a legacy items table.
// SQLite cannot add a constraint after the fact, so the reference is declared inline.
func (s *schemaManager) addCategoryColumn(ctx context.Context) error {
	db := s.db.WithContext(ctx)
	if db.Dialector.Name() == "sqlite" {
		return db.Exec(addCategoryColumnSQLite).Error
	}

	m := db.Migrator()
	if err := m.AddColumn(&model.ItemModel{}, "CategoryID"); err != nil {
		return err
	}
	if !m.HasConstraint(&model.ItemModel{}, "Owner") {
		return m.CreateConstraint(&model.ItemModel{}, "Owner")
	}
	return nil
}
