// Package inventory assembles the grouped inventory and keeps it in memory.
package inventory

import (
	"context"
	"fmt"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/domain/entity"
)

// GetInventoryOutput holds the categories owning items and the empty ones.
// Lists come back in store order; the reducer sorts them.
type GetInventoryOutput struct {
	Stocked []entity.Category
	Empty   []entity.Category
}

// GetInventoryUseCase loads the whole inventory from the stores.
type GetInventoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	itemRepo     adapter.ItemRepository
}

// NewGetInventoryUseCase creates a new GetInventoryUseCase instance.
func NewGetInventoryUseCase(categoryRepo adapter.CategoryRepository, itemRepo adapter.ItemRepository) *GetInventoryUseCase {
	return &GetInventoryUseCase{
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
	}
}

// Execute reads the grouped items, then every category, and splits off the
// categories that own no item.
func (uc *GetInventoryUseCase) Execute(ctx context.Context) (*GetInventoryOutput, error) {
	stocked, err := uc.itemRepo.GetAllGroupByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to group items by category: %w", err)
	}

	all, err := uc.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	owning := make(map[int64]struct{}, len(stocked))
	for _, category := range stocked {
		owning[category.ID] = struct{}{}
	}

	empty := make([]entity.Category, 0, len(all))
	for _, category := range all {
		if _, ok := owning[category.ID]; !ok {
			empty = append(empty, category.WithItems(nil))
		}
	}

	return &GetInventoryOutput{
		Stocked: stocked,
		Empty:   empty,
	}, nil
}
