// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/domain/entity"
	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name string
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	if !entity.IsNameValid(input.Name) {
		return nil, domainerror.NewInvalidNameError()
	}
	name := entity.NormalizeName(input.Name)

	// Check if category name already exists
	existing, err := uc.categoryRepo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name existence: %w", err)
	}
	if existing != nil {
		return nil, domainerror.NewDuplicateNameError(name)
	}

	id, err := uc.categoryRepo.Insert(ctx, name)
	if err != nil {
		// The unique index is the final word when two inserts race the check above.
		if errors.Is(err, domainerror.ErrDuplicateName) {
			return nil, domainerror.NewDuplicateNameError(name)
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	category, err := entity.NewCategory(id, name)
	if err != nil {
		return nil, err
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}
