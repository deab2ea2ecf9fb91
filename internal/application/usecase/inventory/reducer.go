package inventory

import (
	"fmt"
	"slices"

	"github.com/inventory-tracker/backend/internal/domain/entity"
	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
)

// Event is a change already committed to the stores that the in-memory state must reflect.
type Event interface {
	eventName() string
}

// Loaded replaces the whole state with freshly read lists.
type Loaded struct {
	Stocked []entity.Category
	Empty   []entity.Category
}

// CategoryAdded records a new category.
type CategoryAdded struct {
	Category entity.Category
}

// CategoryRenamed records a category rename.
type CategoryRenamed struct {
	CategoryID int64
	Name       string
}

// CategoryRemoved records a category deletion.
type CategoryRemoved struct {
	CategoryID int64
}

// ItemAdded records a new item in an existing category.
type ItemAdded struct {
	Item entity.Item
}

// ItemQuantityChanged records the new quantity of an item.
type ItemQuantityChanged struct {
	ItemID   int64
	Quantity int
}

// ItemRenamed records an item rename.
type ItemRenamed struct {
	ItemID int64
	Name   string
}

// ItemMoved records an item moving to another category.
type ItemMoved struct {
	ItemID       int64
	ToCategoryID int64
}

// ItemRemoved records an item deletion.
type ItemRemoved struct {
	ItemID int64
}

func (Loaded) eventName() string { return "loaded" }
func (CategoryAdded) eventName() string { return "category_added" }
func (CategoryRenamed) eventName() string { return "category_renamed" }
func (CategoryRemoved) eventName() string { return "category_removed" }
func (ItemAdded) eventName() string { return "item_added" }
func (ItemQuantityChanged) eventName() string { return "item_quantity_changed" }
func (ItemRenamed) eventName() string { return "item_renamed" }
func (ItemMoved) eventName() string { return "item_moved" }
func (ItemRemoved) eventName() string { return "item_removed" }

// Reducer applies events to states. It never mutates its input.
type Reducer struct {
	sorter Sorter
}

// NewReducer creates a reducer sorting names with sorter.
func NewReducer(sorter Sorter) Reducer {
	return Reducer{sorter: sorter}
}

// Apply returns the state following event. On error the returned state is
// the input state, so a failed event leaves no partial change behind.
func (r Reducer) Apply(state State, event Event) (State, error) {
	next := state.Clone()

	var err error
	switch e := event.(type) {
	case Loaded:
		next = r.loaded(e)
	case CategoryAdded:
		err = r.categoryAdded(&next, e)
	case CategoryRenamed:
		err = r.categoryRenamed(&next, e)
	case CategoryRemoved:
		err = r.categoryRemoved(&next, e)
	case ItemAdded:
		err = r.itemAdded(&next, e)
	case ItemQuantityChanged:
		err = r.itemQuantityChanged(&next, e)
	case ItemRenamed:
		err = r.itemRenamed(&next, e)
	case ItemMoved:
		err = r.itemMoved(&next, e)
	case ItemRemoved:
		err = r.itemRemoved(&next, e)
	default:
		err = fmt.Errorf("unknown inventory event %T", event)
	}

	if err != nil {
		return state, err
	}
	return next, nil
}

func (r Reducer) loaded(e Loaded) State {
	next := State{
		Status:  StatusReady,
		Stocked: make([]entity.Category, 0, len(e.Stocked)),
		Empty:   make([]entity.Category, 0, len(e.Empty)),
	}
	for _, category := range e.Stocked {
		category = category.Clone()
		if category.IsEmpty() {
			next.Empty = append(next.Empty, category)
			continue
		}
		r.sorter.SortItems(category.Items)
		next.Stocked = append(next.Stocked, category)
	}
	for _, category := range e.Empty {
		next.Empty = append(next.Empty, category.WithItems(nil))
	}
	r.sorter.SortCategories(next.Stocked)
	r.sorter.SortCategories(next.Empty)
	return next
}

func (r Reducer) categoryAdded(s *State, e CategoryAdded) error {
	if _, ok := s.Category(e.Category.ID); ok {
		return fmt.Errorf("category %d already present", e.Category.ID)
	}

	category := e.Category.Clone()
	if category.IsEmpty() {
		s.Empty = append(s.Empty, category)
		r.sorter.SortCategories(s.Empty)
		return nil
	}
	r.sorter.SortItems(category.Items)
	s.Stocked = append(s.Stocked, category)
	r.sorter.SortCategories(s.Stocked)
	return nil
}

func (r Reducer) categoryRenamed(s *State, e CategoryRenamed) error {
	for _, list := range []*[]entity.Category{&s.Stocked, &s.Empty} {
		i := indexOfCategory(*list, e.CategoryID)
		if i < 0 {
			continue
		}
		renamed, err := (*list)[i].WithName(e.Name)
		if err != nil {
			return err
		}
		(*list)[i] = renamed
		r.sorter.SortCategories(*list)
		return nil
	}
	return domainerror.ErrCategoryNotFound
}

func (r Reducer) categoryRemoved(s *State, e CategoryRemoved) error {
	for _, list := range []*[]entity.Category{&s.Empty, &s.Stocked} {
		if i := indexOfCategory(*list, e.CategoryID); i >= 0 {
			*list = slices.Delete(*list, i, i+1)
			return nil
		}
	}
	return domainerror.ErrCategoryNotFound
}

func (r Reducer) itemAdded(s *State, e ItemAdded) error {
	if _, ok := s.Item(e.Item.ID); ok {
		return fmt.Errorf("item %d already present", e.Item.ID)
	}

	if i := indexOfCategory(s.Stocked, e.Item.CategoryID); i >= 0 {
		s.Stocked[i].Items = append(s.Stocked[i].Items, e.Item)
		r.sorter.SortItems(s.Stocked[i].Items)
		return nil
	}

	if i := indexOfCategory(s.Empty, e.Item.CategoryID); i >= 0 {
		category := s.Empty[i].WithItems([]entity.Item{e.Item})
		s.Empty = slices.Delete(s.Empty, i, i+1)
		s.Stocked = append(s.Stocked, category)
		r.sorter.SortCategories(s.Stocked)
		return nil
	}

	return domainerror.ErrCategoryNotFound
}

// locateItem returns the indexes of the item in s.Stocked.
func locateItem(s *State, itemID int64) (int, int, error) {
	for ci, category := range s.Stocked {
		if ii := category.ItemIndex(itemID); ii >= 0 {
			return ci, ii, nil
		}
	}
	return -1, -1, domainerror.ErrItemNotFound
}

func (r Reducer) itemQuantityChanged(s *State, e ItemQuantityChanged) error {
	ci, ii, err := locateItem(s, e.ItemID)
	if err != nil {
		return err
	}

	updated, err := s.Stocked[ci].Items[ii].WithQuantity(e.Quantity)
	if err != nil {
		return err
	}
	s.Stocked[ci].Items[ii] = updated
	return nil
}

func (r Reducer) itemRenamed(s *State, e ItemRenamed) error {
	ci, ii, err := locateItem(s, e.ItemID)
	if err != nil {
		return err
	}

	renamed, err := s.Stocked[ci].Items[ii].WithName(e.Name)
	if err != nil {
		return err
	}
	s.Stocked[ci].Items[ii] = renamed
	r.sorter.SortItems(s.Stocked[ci].Items)
	return nil
}

func (r Reducer) itemMoved(s *State, e ItemMoved) error {
	ci, ii, err := locateItem(s, e.ItemID)
	if err != nil {
		return err
	}
	sourceID := s.Stocked[ci].ID
	if sourceID == e.ToCategoryID {
		return nil
	}
	if _, ok := s.Category(e.ToCategoryID); !ok {
		return domainerror.ErrCategoryNotFound
	}

	item := s.Stocked[ci].Items[ii].WithCategory(e.ToCategoryID)
	s.Stocked[ci].Items = slices.Delete(s.Stocked[ci].Items, ii, ii+1)

	if s.Stocked[ci].IsEmpty() {
		source := s.Stocked[ci]
		s.Stocked = slices.Delete(s.Stocked, ci, ci+1)
		s.Empty = append(s.Empty, source)
		r.sorter.SortCategories(s.Empty)
	}

	if di := indexOfCategory(s.Stocked, e.ToCategoryID); di >= 0 {
		s.Stocked[di].Items = append(s.Stocked[di].Items, item)
		r.sorter.SortItems(s.Stocked[di].Items)
		return nil
	}

	di := indexOfCategory(s.Empty, e.ToCategoryID)
	destination := s.Empty[di].WithItems([]entity.Item{item})
	s.Empty = slices.Delete(s.Empty, di, di+1)
	s.Stocked = append(s.Stocked, destination)
	r.sorter.SortCategories(s.Stocked)
	return nil
}

func (r Reducer) itemRemoved(s *State, e ItemRemoved) error {
	ci, ii, err := locateItem(s, e.ItemID)
	if err != nil {
		return err
	}

	s.Stocked[ci].Items = slices.Delete(s.Stocked[ci].Items, ii, ii+1)
	if s.Stocked[ci].IsEmpty() {
		category := s.Stocked[ci]
		s.Stocked = slices.Delete(s.Stocked, ci, ci+1)
		s.Empty = append(s.Empty, category)
		r.sorter.SortCategories(s.Empty)
	}
	return nil
}
