package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/domain/entity"
	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID int64
}

// DeleteCategoryOutput represents the output of category deletion.
type DeleteCategoryOutput struct {
	Category entity.Category
}

// DeleteCategoryUseCase handles category deletion logic.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	itemRepo     adapter.ItemRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository, itemRepo adapter.ItemRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
	}
}

// Execute performs the category deletion. Only empty categories can be deleted.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	// Find the existing category
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryNotFoundError(input.CategoryID)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	count, err := uc.itemRepo.CountByCategory(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to count category items: %w", err)
	}
	if count > 0 {
		return nil, domainerror.NewCategoryNotEmptyError(input.CategoryID, count)
	}

	// Delete the category
	if err := uc.categoryRepo.Remove(ctx, input.CategoryID); err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	return &DeleteCategoryOutput{
		Category: *category,
	}, nil
}
