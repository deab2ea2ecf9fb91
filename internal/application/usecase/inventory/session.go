package inventory

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/application/usecase/category"
	"github.com/inventory-tracker/backend/internal/application/usecase/item"
	"github.com/inventory-tracker/backend/internal/domain/entity"
)

// ErrNotReady is returned by mutations attempted before the first successful Load.
var ErrNotReady = errors.New("inventory not loaded")

// Mutations groups the use cases a Session drives.
type Mutations struct {
	CreateCategory *category.CreateCategoryUseCase
	RenameCategory *category.RenameCategoryUseCase
	DeleteCategory *category.DeleteCategoryUseCase
	CreateItem     *item.CreateItemUseCase
	ChangeQuantity *item.ChangeQuantityUseCase
	SetQuantity    *item.SetQuantityUseCase
	RenameItem     *item.RenameItemUseCase
	MoveItem       *item.MoveItemUseCase
	DeleteItem     *item.DeleteItemUseCase
}

// NewMutations builds every mutation use case over the given repositories.
func NewMutations(categoryRepo adapter.CategoryRepository, itemRepo adapter.ItemRepository) Mutations {
	return Mutations{
		CreateCategory: category.NewCreateCategoryUseCase(categoryRepo),
		RenameCategory: category.NewRenameCategoryUseCase(categoryRepo),
		DeleteCategory: category.NewDeleteCategoryUseCase(categoryRepo, itemRepo),
		CreateItem:     item.NewCreateItemUseCase(itemRepo, categoryRepo),
		ChangeQuantity: item.NewChangeQuantityUseCase(itemRepo),
		SetQuantity:    item.NewSetQuantityUseCase(itemRepo),
		RenameItem:     item.NewRenameItemUseCase(itemRepo),
		MoveItem:       item.NewMoveItemUseCase(itemRepo, categoryRepo),
		DeleteItem:     item.NewDeleteItemUseCase(itemRepo),
	}
}

// Session owns the in-memory inventory. Every mutation is committed to the
// stores first and only then applied to the state, one mutation at a time.
type Session struct {
	getInventory *GetInventoryUseCase
	mutations    Mutations
	reducer      Reducer

	// mu serializes Load and mutations.
	mu sync.Mutex

	stateMu     sync.RWMutex
	state       State
	subscribers map[int]func(State)
	nextSubID   int
}

// NewSession creates a session in the loading state.
func NewSession(getInventory *GetInventoryUseCase, mutations Mutations, reducer Reducer) *Session {
	return &Session{
		getInventory: getInventory,
		mutations:    mutations,
		reducer:      reducer,
		state:        NewState(),
		subscribers:  make(map[int]func(State)),
	}
}

// Load reads the inventory from the stores and replaces the state.
// On failure the previous state is kept.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

func (s *Session) load(ctx context.Context) error {
	out, err := s.getInventory.Execute(ctx)
	if err != nil {
		return err
	}

	next, err := s.reducer.Apply(s.Snapshot(), Loaded{Stocked: out.Stocked, Empty: out.Empty})
	if err != nil {
		return err
	}
	s.publish(next)

	slog.InfoContext(ctx, "Inventory loaded",
		"stocked_categories", len(next.Stocked),
		"empty_categories", len(next.Empty),
	)
	return nil
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	return s.state.Clone()
}

// Subscribe registers fn to receive every new state. fn runs synchronously
// while the session is locked and must not call back into mutations.
// The returned function removes the subscription.
func (s *Session) Subscribe(fn func(State)) func() {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.stateMu.Lock()
		defer s.stateMu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *Session) publish(next State) {
	s.stateMu.Lock()
	s.state = next
	subscribers := make([]func(State), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subscribers = append(subscribers, fn)
	}
	s.stateMu.Unlock()

	for _, fn := range subscribers {
		fn(next.Clone())
	}
}

func (s *Session) setStatus(status Status) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.state.Status = status
}

// mutate runs call against the stores and applies the event it returns.
// A nil event means the call changed nothing. When the event does not fit
// the current state the session reloads from the stores, which stay the
// source of truth.
func mutate[T any](ctx context.Context, s *Session, action string, call func(context.Context) (T, Event, error)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	current := s.Snapshot()
	if current.Status == StatusLoading {
		return zero, ErrNotReady
	}

	s.setStatus(StatusMutating)
	result, event, err := call(ctx)
	if err != nil {
		s.setStatus(StatusReady)
		slog.WarnContext(ctx, "Inventory mutation failed", "action", action, "error", err)
		return zero, err
	}
	if event == nil {
		s.setStatus(StatusReady)
		return result, nil
	}

	next, err := s.reducer.Apply(current, event)
	if err != nil {
		s.setStatus(StatusReady)
		slog.ErrorContext(ctx, "Inventory state out of sync, reloading",
			"action", action,
			"event", event.eventName(),
			"error", err,
		)
		if loadErr := s.load(ctx); loadErr != nil {
			slog.ErrorContext(ctx, "Failed to reload inventory", "error", loadErr)
		}
		return result, nil
	}

	next.Status = StatusReady
	s.publish(next)
	return result, nil
}

// AddCategory creates an empty category.
func (s *Session) AddCategory(ctx context.Context, name string) (entity.Category, error) {
	return mutate(ctx, s, "add_category", func(ctx context.Context) (entity.Category, Event, error) {
		out, err := s.mutations.CreateCategory.Execute(ctx, category.CreateCategoryInput{Name: name})
		if err != nil {
			return entity.Category{}, nil, err
		}
		return out.Category, CategoryAdded{Category: out.Category}, nil
	})
}

// RenameCategory renames a category.
func (s *Session) RenameCategory(ctx context.Context, categoryID int64, name string) (entity.Category, error) {
	return mutate(ctx, s, "rename_category", func(ctx context.Context) (entity.Category, Event, error) {
		out, err := s.mutations.RenameCategory.Execute(ctx, category.RenameCategoryInput{CategoryID: categoryID, Name: name})
		if err != nil {
			return entity.Category{}, nil, err
		}
		if !out.Changed {
			return out.Category, nil, nil
		}
		return out.Category, CategoryRenamed{CategoryID: categoryID, Name: out.Category.Name}, nil
	})
}

// RemoveCategory deletes an empty category.
func (s *Session) RemoveCategory(ctx context.Context, categoryID int64) error {
	_, err := mutate(ctx, s, "remove_category", func(ctx context.Context) (struct{}, Event, error) {
		if _, err := s.mutations.DeleteCategory.Execute(ctx, category.DeleteCategoryInput{CategoryID: categoryID}); err != nil {
			return struct{}{}, nil, err
		}
		return struct{}{}, CategoryRemoved{CategoryID: categoryID}, nil
	})
	return err
}

// AddItem creates an item in a category.
func (s *Session) AddItem(ctx context.Context, categoryID int64, name string, quantity int) (entity.Item, error) {
	return mutate(ctx, s, "add_item", func(ctx context.Context) (entity.Item, Event, error) {
		out, err := s.mutations.CreateItem.Execute(ctx, item.CreateItemInput{Name: name, Quantity: quantity, CategoryID: categoryID})
		if err != nil {
			return entity.Item{}, nil, err
		}
		return out.Item, ItemAdded{Item: out.Item}, nil
	})
}

// ChangeQuantity adds delta to an item quantity.
func (s *Session) ChangeQuantity(ctx context.Context, itemID int64, delta int) (entity.Item, error) {
	return mutate(ctx, s, "change_quantity", func(ctx context.Context) (entity.Item, Event, error) {
		out, err := s.mutations.ChangeQuantity.Execute(ctx, item.ChangeQuantityInput{ItemID: itemID, Delta: delta})
		if err != nil {
			return entity.Item{}, nil, err
		}
		return out.Item, ItemQuantityChanged{ItemID: itemID, Quantity: out.Item.Quantity}, nil
	})
}

// SetQuantity stores an absolute item quantity.
func (s *Session) SetQuantity(ctx context.Context, itemID int64, quantity int) (entity.Item, error) {
	return mutate(ctx, s, "set_quantity", func(ctx context.Context) (entity.Item, Event, error) {
		out, err := s.mutations.SetQuantity.Execute(ctx, item.SetQuantityInput{ItemID: itemID, Quantity: quantity})
		if err != nil {
			return entity.Item{}, nil, err
		}
		return out.Item, ItemQuantityChanged{ItemID: itemID, Quantity: out.Item.Quantity}, nil
	})
}

// RenameItem renames an item.
func (s *Session) RenameItem(ctx context.Context, itemID int64, name string) (entity.Item, error) {
	return mutate(ctx, s, "rename_item", func(ctx context.Context) (entity.Item, Event, error) {
		out, err := s.mutations.RenameItem.Execute(ctx, item.RenameItemInput{ItemID: itemID, Name: name})
		if err != nil {
			return entity.Item{}, nil, err
		}
		if !out.Changed {
			return out.Item, nil, nil
		}
		return out.Item, ItemRenamed{ItemID: itemID, Name: out.Item.Name}, nil
	})
}

// MoveItem moves an item to another category.
func (s *Session) MoveItem(ctx context.Context, itemID, categoryID int64) (entity.Item, error) {
	return mutate(ctx, s, "move_item", func(ctx context.Context) (entity.Item, Event, error) {
		out, err := s.mutations.MoveItem.Execute(ctx, item.MoveItemInput{ItemID: itemID, CategoryID: categoryID})
		if err != nil {
			return entity.Item{}, nil, err
		}
		if !out.Moved {
			return out.Item, nil, nil
		}
		return out.Item, ItemMoved{ItemID: itemID, ToCategoryID: categoryID}, nil
	})
}

// RemoveItem deletes an item. A category left without items stays, listed as empty.
func (s *Session) RemoveItem(ctx context.Context, itemID int64) error {
	_, err := mutate(ctx, s, "remove_item", func(ctx context.Context) (struct{}, Event, error) {
		if _, err := s.mutations.DeleteItem.Execute(ctx, item.DeleteItemInput{ItemID: itemID}); err != nil {
			return struct{}{}, nil, err
		}
		return struct{}{}, ItemRemoved{ItemID: itemID}, nil
	})
	return err
}
