package item

import (
	"context"
	"errors"
	"fmt"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/domain/entity"
	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
)

// DeleteItemInput represents the input for item deletion.
type DeleteItemInput struct {
	ItemID int64
}

// DeleteItemOutput represents the output of item deletion.
type DeleteItemOutput struct {
	Item entity.Item
}

// DeleteItemUseCase handles item deletion logic.
type DeleteItemUseCase struct {
	itemRepo adapter.ItemRepository
}

// NewDeleteItemUseCase creates a new DeleteItemUseCase instance.
func NewDeleteItemUseCase(itemRepo adapter.ItemRepository) *DeleteItemUseCase {
	return &DeleteItemUseCase{
		itemRepo: itemRepo,
	}
}

// Execute performs the item deletion.
func (uc *DeleteItemUseCase) Execute(ctx context.Context, input DeleteItemInput) (*DeleteItemOutput, error) {
	item, err := findItem(ctx, uc.itemRepo, input.ItemID)
	if err != nil {
		return nil, err
	}

	if err := uc.itemRepo.DeleteOne(ctx, input.ItemID); err != nil {
		if errors.Is(err, domainerror.ErrItemNotFound) {
			return nil, domainerror.NewItemNotFoundError(input.ItemID)
		}
		return nil, fmt.Errorf("failed to delete item: %w", err)
	}

	return &DeleteItemOutput{
		Item: *item,
	}, nil
}
