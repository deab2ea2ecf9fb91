package item

import (
	"context"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/domain/entity"
	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
)

// SetQuantityInput represents the input for setting an item quantity.
type SetQuantityInput struct {
	ItemID   int64
	Quantity int
}

// SetQuantityOutput represents the output of setting a quantity.
type SetQuantityOutput struct {
	Item entity.Item
}

// SetQuantityUseCase stores an absolute item quantity.
type SetQuantityUseCase struct {
	itemRepo adapter.ItemRepository
}

// NewSetQuantityUseCase creates a new SetQuantityUseCase instance.
func NewSetQuantityUseCase(itemRepo adapter.ItemRepository) *SetQuantityUseCase {
	return &SetQuantityUseCase{
		itemRepo: itemRepo,
	}
}

// Execute performs the quantity update.
func (uc *SetQuantityUseCase) Execute(ctx context.Context, input SetQuantityInput) (*SetQuantityOutput, error) {
	if !entity.IsQuantityValid(input.Quantity) {
		return nil, domainerror.NewQuantityOutOfBoundsError(input.Quantity)
	}

	item, err := findItem(ctx, uc.itemRepo, input.ItemID)
	if err != nil {
		return nil, err
	}

	next, err := item.WithQuantity(input.Quantity)
	if err != nil {
		return nil, domainerror.NewQuantityOutOfBoundsError(input.Quantity)
	}

	updated, err := storeQuantity(ctx, uc.itemRepo, next)
	if err != nil {
		return nil, err
	}

	return &SetQuantityOutput{
		Item: updated,
	}, nil
}
