package settings

import (
	"context"
	"fmt"
	"strconv"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/domain/entity"
	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
)

// UpdateSettingsInput represents a partial settings update. Nil fields are left unchanged.
type UpdateSettingsInput struct {
	CardsView *bool
	Theme     *string
}

// UpdateSettingsOutput represents the output of a settings update.
type UpdateSettingsOutput struct {
	Settings entity.Settings
}

// UpdateSettingsUseCase applies partial updates to the preferences.
type UpdateSettingsUseCase struct {
	store adapter.SettingsStore
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(store adapter.SettingsStore) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		store: store,
	}
}

// Execute validates the update, derives the new settings from the stored ones
// and writes back only the keys that changed.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	current, err := loadSettings(ctx, uc.store)
	if err != nil {
		return nil, err
	}

	next := current
	if input.CardsView != nil {
		next = next.WithCardsView(*input.CardsView)
	}
	if input.Theme != nil {
		next, err = next.WithTheme(entity.Theme(*input.Theme))
		if err != nil {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeInvalidTheme,
				fmt.Sprintf("unknown theme %q", *input.Theme),
				err,
			)
		}
	}

	if next.CardsView != current.CardsView {
		if err := uc.store.Set(ctx, KeyCardsView, strconv.FormatBool(next.CardsView)); err != nil {
			return nil, storageError(err)
		}
	}
	if next.Theme != current.Theme {
		if err := uc.store.Set(ctx, KeyTheme, string(next.Theme)); err != nil {
			return nil, storageError(err)
		}
	}

	return &UpdateSettingsOutput{Settings: next}, nil
}
