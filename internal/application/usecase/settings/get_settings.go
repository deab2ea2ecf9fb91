package settings

import (
	"context"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/domain/entity"
)

// GetSettingsOutput represents the output of reading the settings.
type GetSettingsOutput struct {
	Settings entity.Settings
}

// GetSettingsUseCase reads the stored preferences.
type GetSettingsUseCase struct {
	store adapter.SettingsStore
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase instance.
func NewGetSettingsUseCase(store adapter.SettingsStore) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		store: store,
	}
}

// Execute returns the preferences, falling back to defaults for missing keys.
func (uc *GetSettingsUseCase) Execute(ctx context.Context) (*GetSettingsOutput, error) {
	settings, err := loadSettings(ctx, uc.store)
	if err != nil {
		return nil, err
	}
	return &GetSettingsOutput{Settings: settings}, nil
}
