package item

import (
	"context"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/domain/entity"
	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
)

// ChangeQuantityInput represents the input for adjusting an item quantity.
type ChangeQuantityInput struct {
	ItemID int64
	Delta  int
}

// ChangeQuantityOutput represents the output of a quantity change.
type ChangeQuantityOutput struct {
	Item entity.Item
}

// ChangeQuantityUseCase adds a signed delta to an item quantity.
type ChangeQuantityUseCase struct {
	itemRepo adapter.ItemRepository
}

// NewChangeQuantityUseCase creates a new ChangeQuantityUseCase instance.
func NewChangeQuantityUseCase(itemRepo adapter.ItemRepository) *ChangeQuantityUseCase {
	return &ChangeQuantityUseCase{
		itemRepo: itemRepo,
	}
}

// Execute applies the delta. Results outside the bounds are rejected without a write.
func (uc *ChangeQuantityUseCase) Execute(ctx context.Context, input ChangeQuantityInput) (*ChangeQuantityOutput, error) {
	item, err := findItem(ctx, uc.itemRepo, input.ItemID)
	if err != nil {
		return nil, err
	}

	next, err := item.Add(input.Delta)
	if err != nil {
		return nil, domainerror.NewQuantityOutOfBoundsError(item.Quantity + input.Delta)
	}

	updated, err := storeQuantity(ctx, uc.itemRepo, next)
	if err != nil {
		return nil, err
	}

	return &ChangeQuantityOutput{
		Item: updated,
	}, nil
}
