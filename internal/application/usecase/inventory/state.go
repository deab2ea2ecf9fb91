package inventory

import (
	"github.com/inventory-tracker/backend/internal/domain/entity"
)

// Status tracks where the in-memory inventory is in its lifecycle.
type Status string

const (
	StatusLoading  Status = "loading"
	StatusReady    Status = "ready"
	StatusMutating Status = "mutating"
)

// State is an immutable snapshot of the inventory. Stocked holds the
// categories owning at least one item and Empty the others; both lists and
// every item list are sorted by name.
type State struct {
	Status  Status
	Stocked []entity.Category
	Empty   []entity.Category
}

// NewState returns the state of an inventory that has not been loaded yet.
func NewState() State {
	return State{
		Status:  StatusLoading,
		Stocked: []entity.Category{},
		Empty:   []entity.Category{},
	}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	return State{
		Status:  s.Status,
		Stocked: cloneCategories(s.Stocked),
		Empty:   cloneCategories(s.Empty),
	}
}

// Category returns the category with id from either list.
func (s State) Category(id int64) (entity.Category, bool) {
	if i := indexOfCategory(s.Stocked, id); i >= 0 {
		return s.Stocked[i], true
	}
	if i := indexOfCategory(s.Empty, id); i >= 0 {
		return s.Empty[i], true
	}
	return entity.Category{}, false
}

// Item returns the item with id.
func (s State) Item(id int64) (entity.Item, bool) {
	for _, category := range s.Stocked {
		if i := category.ItemIndex(id); i >= 0 {
			return category.Items[i], true
		}
	}
	return entity.Item{}, false
}

func cloneCategories(categories []entity.Category) []entity.Category {
	cloned := make([]entity.Category, len(categories))
	for i, category := range categories {
		cloned[i] = category.Clone()
	}
	return cloned
}

func indexOfCategory(categories []entity.Category, id int64) int {
	for i, category := range categories {
		if category.ID == id {
			return i
		}
	}
	return -1
}
