// Package item contains item-related use cases.
package item

import (
	"context"
	"errors"
	"fmt"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/domain/entity"
	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
)

// CreateItemInput represents the input for item creation.
type CreateItemInput struct {
	Name       string
	Quantity   int
	CategoryID int64
}

// CreateItemOutput represents the output of item creation.
type CreateItemOutput struct {
	Item entity.Item
}

// CreateItemUseCase handles item creation logic.
type CreateItemUseCase struct {
	itemRepo     adapter.ItemRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateItemUseCase creates a new CreateItemUseCase instance.
func NewCreateItemUseCase(itemRepo adapter.ItemRepository, categoryRepo adapter.CategoryRepository) *CreateItemUseCase {
	return &CreateItemUseCase{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the item creation.
func (uc *CreateItemUseCase) Execute(ctx context.Context, input CreateItemInput) (*CreateItemOutput, error) {
	if !entity.IsNameValid(input.Name) {
		return nil, domainerror.NewInvalidNameError()
	}
	if !entity.IsQuantityValid(input.Quantity) {
		return nil, domainerror.NewQuantityOutOfBoundsError(input.Quantity)
	}
	name := entity.NormalizeName(input.Name)

	if _, err := uc.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryNotFoundError(input.CategoryID)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	existing, err := uc.itemRepo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check item name existence: %w", err)
	}
	if existing != nil {
		return nil, domainerror.NewDuplicateNameError(name)
	}

	id, err := uc.itemRepo.Insert(ctx, name, input.Quantity, input.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrDuplicateName) {
			return nil, domainerror.NewDuplicateNameError(name)
		}
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	item, err := entity.NewItem(id, name, input.Quantity, input.CategoryID)
	if err != nil {
		return nil, err
	}

	return &CreateItemOutput{
		Item: item,
	}, nil
}
