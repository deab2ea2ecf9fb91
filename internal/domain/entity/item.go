package entity

import (
	"fmt"

	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
)

// Item represents a tracked thing with a bounded quantity.
// Values are never mutated in place: every With* method returns a new Item.
type Item struct {
	ID         int64
	Name       string
	Quantity   int
	CategoryID int64
}

// NewItem creates a new Item, rejecting invalid names and quantities.
func NewItem(id int64, name string, quantity int, categoryID int64) (Item, error) {
	if !IsNameValid(name) {
		return Item{}, domainerror.ErrInvalidName
	}
	if !IsQuantityValid(quantity) {
		return Item{}, domainerror.ErrQuantityOutOfBounds
	}

	return Item{
		ID:         id,
		Name:       NormalizeName(name),
		Quantity:   quantity,
		CategoryID: categoryID,
	}, nil
}

// WithName returns a copy of the item renamed to name.
func (i Item) WithName(name string) (Item, error) {
	if !IsNameValid(name) {
		return i, domainerror.ErrInvalidName
	}
	i.Name = NormalizeName(name)
	return i, nil
}

// WithQuantity returns a copy of the item holding quantity.
func (i Item) WithQuantity(quantity int) (Item, error) {
	if !IsQuantityValid(quantity) {
		return i, domainerror.ErrQuantityOutOfBounds
	}
	i.Quantity = quantity
	return i, nil
}

// Add returns a copy of the item with delta applied to its quantity.
// A result outside the bounds is rejected, never clamped.
func (i Item) Add(delta int) (Item, error) {
	return i.WithQuantity(i.Quantity + delta)
}

// WithCategory returns a copy of the item owned by categoryID.
func (i Item) WithCategory(categoryID int64) Item {
	i.CategoryID = categoryID
	return i
}

func (i Item) String() string {
	return fmt.Sprintf("%d - %s (%d)", i.ID, i.Name, i.Quantity)
}
