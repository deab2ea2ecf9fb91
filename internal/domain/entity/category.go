package entity

import (
	"fmt"

	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
)

// Category groups items under a unique name.
// Items are owned by the category; Clone returns an independent copy.
type Category struct {
	ID    int64
	Name  string
	Items []Item
}

// NewCategory creates a new Category holding a copy of items.
func NewCategory(id int64, name string, items ...Item) (Category, error) {
	if !IsNameValid(name) {
		return Category{}, domainerror.ErrInvalidName
	}

	owned := make([]Item, len(items))
	copy(owned, items)

	return Category{
		ID:    id,
		Name:  NormalizeName(name),
		Items: owned,
	}, nil
}

// WithName returns a copy of the category renamed to name.
func (c Category) WithName(name string) (Category, error) {
	if !IsNameValid(name) {
		return c, domainerror.ErrInvalidName
	}
	c = c.Clone()
	c.Name = NormalizeName(name)
	return c, nil
}

// WithItems returns a copy of the category owning items.
func (c Category) WithItems(items []Item) Category {
	owned := make([]Item, len(items))
	copy(owned, items)
	c.Items = owned
	return c
}

// Clone returns a copy that shares no backing array with c.
func (c Category) Clone() Category {
	return c.WithItems(c.Items)
}

// IsEmpty reports whether the category owns no item.
func (c Category) IsEmpty() bool {
	return len(c.Items) == 0
}

// ItemIndex returns the position of the item with the given id, or -1.
func (c Category) ItemIndex(itemID int64) int {
	for i, item := range c.Items {
		if item.ID == itemID {
			return i
		}
	}
	return -1
}

func (c Category) String() string {
	return fmt.Sprintf("%d %s (%d)", c.ID, c.Name, len(c.Items))
}
