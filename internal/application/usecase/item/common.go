package item

import (
	"context"
	"errors"
	"fmt"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/domain/entity"
	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
)

// findItem loads an item, converting a missing row into a coded not-found error.
func findItem(ctx context.Context, itemRepo adapter.ItemRepository, itemID int64) (*entity.Item, error) {
	item, err := itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, domainerror.ErrItemNotFound) {
			return nil, domainerror.NewItemNotFoundError(itemID)
		}
		return nil, fmt.Errorf("failed to find item: %w", err)
	}
	return item, nil
}

// storeQuantity persists the quantity of an already validated item.
func storeQuantity(ctx context.Context, itemRepo adapter.ItemRepository, updated entity.Item) (entity.Item, error) {
	if err := itemRepo.UpdateQuantity(ctx, updated.ID, updated.Quantity); err != nil {
		if errors.Is(err, domainerror.ErrItemNotFound) {
			return updated, domainerror.NewItemNotFoundError(updated.ID)
		}
		return updated, fmt.Errorf("failed to update item quantity: %w", err)
	}
	return updated, nil
}
