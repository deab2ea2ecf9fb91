package item

import (
	"context"
	"errors"
	"fmt"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/domain/entity"
	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
)

// MoveItemInput represents the input for moving an item to another category.
type MoveItemInput struct {
	ItemID     int64
	CategoryID int64
}

// MoveItemOutput represents the output of moving an item.
type MoveItemOutput struct {
	Item           entity.Item
	FromCategoryID int64
	Moved          bool
}

// MoveItemUseCase handles moving items between categories.
type MoveItemUseCase struct {
	itemRepo     adapter.ItemRepository
	categoryRepo adapter.CategoryRepository
}

// NewMoveItemUseCase creates a new MoveItemUseCase instance.
func NewMoveItemUseCase(itemRepo adapter.ItemRepository, categoryRepo adapter.CategoryRepository) *MoveItemUseCase {
	return &MoveItemUseCase{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute moves the item. Moving to its current category is a no-op.
func (uc *MoveItemUseCase) Execute(ctx context.Context, input MoveItemInput) (*MoveItemOutput, error) {
	item, err := findItem(ctx, uc.itemRepo, input.ItemID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryNotFoundError(input.CategoryID)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if item.CategoryID == input.CategoryID {
		return &MoveItemOutput{Item: *item, FromCategoryID: item.CategoryID}, nil
	}

	if err := uc.itemRepo.UpdateCategory(ctx, input.ItemID, input.CategoryID); err != nil {
		if errors.Is(err, domainerror.ErrItemNotFound) {
			return nil, domainerror.NewItemNotFoundError(input.ItemID)
		}
		return nil, fmt.Errorf("failed to move item: %w", err)
	}

	return &MoveItemOutput{
		Item:           item.WithCategory(input.CategoryID),
		FromCategoryID: item.CategoryID,
		Moved:          true,
	}, nil
}
