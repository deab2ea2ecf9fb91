package item

import (
	"context"
	"errors"
	"fmt"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/domain/entity"
	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
)

// RenameItemInput represents the input for renaming an item.
type RenameItemInput struct {
	ItemID int64
	Name   string
}

// RenameItemOutput represents the output of renaming an item.
type RenameItemOutput struct {
	Item    entity.Item
	Changed bool
}

// RenameItemUseCase handles item rename logic.
type RenameItemUseCase struct {
	itemRepo adapter.ItemRepository
}

// NewRenameItemUseCase creates a new RenameItemUseCase instance.
func NewRenameItemUseCase(itemRepo adapter.ItemRepository) *RenameItemUseCase {
	return &RenameItemUseCase{
		itemRepo: itemRepo,
	}
}

// Execute performs the item rename. Renaming to the current name is a no-op.
func (uc *RenameItemUseCase) Execute(ctx context.Context, input RenameItemInput) (*RenameItemOutput, error) {
	if !entity.IsNameValid(input.Name) {
		return nil, domainerror.NewInvalidNameError()
	}
	name := entity.NormalizeName(input.Name)

	item, err := findItem(ctx, uc.itemRepo, input.ItemID)
	if err != nil {
		return nil, err
	}
	if item.Name == name {
		return &RenameItemOutput{Item: *item}, nil
	}

	existing, err := uc.itemRepo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check item name existence: %w", err)
	}
	if existing != nil {
		return nil, domainerror.NewDuplicateNameError(name)
	}

	if err := uc.itemRepo.UpdateName(ctx, input.ItemID, name); err != nil {
		switch {
		case errors.Is(err, domainerror.ErrDuplicateName):
			return nil, domainerror.NewDuplicateNameError(name)
		case errors.Is(err, domainerror.ErrItemNotFound):
			return nil, domainerror.NewItemNotFoundError(input.ItemID)
		}
		return nil, fmt.Errorf("failed to rename item: %w", err)
	}

	renamed, err := item.WithName(name)
	if err != nil {
		return nil, err
	}

	return &RenameItemOutput{
		Item:    renamed,
		Changed: true,
	}, nil
}
