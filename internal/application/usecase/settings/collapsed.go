package settings

import (
	"context"

	"github.com/inventory-tracker/backend/internal/application/adapter"
)

// ToggleCategoryCollapsedInput represents the input for toggling a category.
type ToggleCategoryCollapsedInput struct {
	CategoryID int64
}

// ToggleCategoryCollapsedOutput reports the category's new collapsed state.
type ToggleCategoryCollapsedOutput struct {
	CategoryID int64
	Collapsed  bool
}

// ToggleCategoryCollapsedUseCase flips whether a category is shown collapsed.
type ToggleCategoryCollapsedUseCase struct {
	store adapter.SettingsStore
}

// NewToggleCategoryCollapsedUseCase creates a new ToggleCategoryCollapsedUseCase instance.
func NewToggleCategoryCollapsedUseCase(store adapter.SettingsStore) *ToggleCategoryCollapsedUseCase {
	return &ToggleCategoryCollapsedUseCase{
		store: store,
	}
}

// Execute toggles the category and persists the collapsed list.
// Category ids are not checked against the inventory.
func (uc *ToggleCategoryCollapsedUseCase) Execute(ctx context.Context, input ToggleCategoryCollapsedInput) (*ToggleCategoryCollapsedOutput, error) {
	current, err := loadSettings(ctx, uc.store)
	if err != nil {
		return nil, err
	}

	next := current.ToggleCollapsed(input.CategoryID)
	if err := saveCollapsed(ctx, uc.store, next.CollapsedCategories); err != nil {
		return nil, err
	}

	return &ToggleCategoryCollapsedOutput{
		CategoryID: input.CategoryID,
		Collapsed:  next.IsCollapsed(input.CategoryID),
	}, nil
}

// IsCategoryCollapsedUseCase reports whether a category is shown collapsed.
type IsCategoryCollapsedUseCase struct {
	store adapter.SettingsStore
}

// NewIsCategoryCollapsedUseCase creates a new IsCategoryCollapsedUseCase instance.
func NewIsCategoryCollapsedUseCase(store adapter.SettingsStore) *IsCategoryCollapsedUseCase {
	return &IsCategoryCollapsedUseCase{
		store: store,
	}
}

// Execute returns true when categoryID is in the collapsed list.
func (uc *IsCategoryCollapsedUseCase) Execute(ctx context.Context, categoryID int64) (bool, error) {
	current, err := loadSettings(ctx, uc.store)
	if err != nil {
		return false, err
	}
	return current.IsCollapsed(categoryID), nil
}
