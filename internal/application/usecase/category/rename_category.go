package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/domain/entity"
	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
)

// RenameCategoryInput represents the input for renaming a category.
type RenameCategoryInput struct {
	CategoryID int64
	Name       string
}

// RenameCategoryOutput represents the output of renaming a category.
type RenameCategoryOutput struct {
	Category entity.Category
	Changed  bool
}

// RenameCategoryUseCase handles category rename logic.
type RenameCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewRenameCategoryUseCase creates a new RenameCategoryUseCase instance.
func NewRenameCategoryUseCase(categoryRepo adapter.CategoryRepository) *RenameCategoryUseCase {
	return &RenameCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category rename. Renaming to the current name is a no-op.
func (uc *RenameCategoryUseCase) Execute(ctx context.Context, input RenameCategoryInput) (*RenameCategoryOutput, error) {
	if !entity.IsNameValid(input.Name) {
		return nil, domainerror.NewInvalidNameError()
	}
	name := entity.NormalizeName(input.Name)

	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryNotFoundError(input.CategoryID)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if category.Name == name {
		return &RenameCategoryOutput{Category: *category}, nil
	}

	existing, err := uc.categoryRepo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name existence: %w", err)
	}
	if existing != nil {
		return nil, domainerror.NewDuplicateNameError(name)
	}

	if err := uc.categoryRepo.UpdateName(ctx, input.CategoryID, name); err != nil {
		switch {
		case errors.Is(err, domainerror.ErrDuplicateName):
			return nil, domainerror.NewDuplicateNameError(name)
		case errors.Is(err, domainerror.ErrCategoryNotFound):
			return nil, domainerror.NewCategoryNotFoundError(input.CategoryID)
		}
		return nil, fmt.Errorf("failed to rename category: %w", err)
	}

	renamed, err := category.WithName(name)
	if err != nil {
		return nil, err
	}

	return &RenameCategoryOutput{
		Category: renamed,
		Changed:  true,
	}, nil
}
