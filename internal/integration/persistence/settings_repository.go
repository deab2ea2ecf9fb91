package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/integration/persistence/model"
)

// settingsRepository implements the adapter.SettingsStore interface on the settings table.
type settingsRepository struct {
	db     *gorm.DB
	schema adapter.SchemaManager
}

// NewSettingsRepository creates a new settings repository instance.
func NewSettingsRepository(db *gorm.DB, schema adapter.SchemaManager) adapter.SettingsStore {
	return &settingsRepository{
		db:     db,
		schema: schema,
	}
}

// Get retrieves the value stored under key.
func (r *settingsRepository) Get(ctx context.Context, key string) (string, bool, error) {
	if err := r.schema.EnsureSchema(ctx); err != nil {
		return "", false, err
	}

	var setting model.SettingModel
	result := r.db.WithContext(ctx).Where("key = ?", key).First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get setting %q: %w", key, result.Error)
	}
	return setting.Value, true, nil
}

// Set upserts value under key.
func (r *settingsRepository) Set(ctx context.Context, key, value string) error {
	if err := r.schema.EnsureSchema(ctx); err != nil {
		return err
	}

	setting := &model.SettingModel{Key: key, Value: value}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(setting)
	if result.Error != nil {
		return fmt.Errorf("set setting %q: %w", key, result.Error)
	}
	return nil
}

// Delete removes key from the settings table.
func (r *settingsRepository) Delete(ctx context.Context, key string) error {
	if err := r.schema.EnsureSchema(ctx); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&model.SettingModel{}, "key = ?", key)
	if result.Error != nil {
		return fmt.Errorf("delete setting %q: %w", key, result.Error)
	}
	return nil
}
