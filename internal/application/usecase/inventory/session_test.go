package inventory

import (
	"context"
	"errors"
	"sync"
	"testing"

	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
	"github.com/inventory-tracker/backend/internal/integration/persistence/persistencetest"
)

func newTestSession(t *testing.T) (*Session, *persistencetest.Stores) {
	t.Helper()

	stores := persistencetest.New(t)
	session := NewSession(
		NewGetInventoryUseCase(stores.Categories, stores.Items),
		NewMutations(stores.Categories, stores.Items),
		NewReducer(NewSorter("en")),
	)
	return session, stores
}

func newLoadedSession(t *testing.T) (*Session, *persistencetest.Stores) {
	t.Helper()

	session, stores := newTestSession(t)
	if err := session.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return session, stores
}

func TestSession_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("mutations before load fail with ErrNotReady", func(t *testing.T) {
		session, _ := newTestSession(t)

		if _, err := session.AddCategory(ctx, "Dairy"); !errors.Is(err, ErrNotReady) {
			t.Errorf("expected ErrNotReady, got %v", err)
		}
		if session.Snapshot().Status != StatusLoading {
			t.Errorf("expected loading, got %s", session.Snapshot().Status)
		}
	})

	t.Run("load splits stocked and empty categories", func(t *testing.T) {
		session, stores := newTestSession(t)
		dairy, _ := stores.Categories.Insert(ctx, "Dairy")
		_, _ = stores.Categories.Insert(ctx, "Pantry")
		_, _ = stores.Items.Insert(ctx, "Milk", 3, dairy)

		if err := session.Load(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		state := session.Snapshot()
		if state.Status != StatusReady {
			t.Errorf("expected ready, got %s", state.Status)
		}
		if got := categoryNames(state.Stocked); !equalNames(got, []string{"Dairy"}) {
			t.Errorf("expected [Dairy] stocked, got %v", got)
		}
		if got := categoryNames(state.Empty); !equalNames(got, []string{"Pantry"}) {
			t.Errorf("expected [Pantry] empty, got %v", got)
		}
	})

	t.Run("load failure keeps the session loading", func(t *testing.T) {
		session, stores := newTestSession(t)
		stores.Close(t)

		err := session.Load(ctx)
		if !errors.Is(err, domainerror.ErrStorageUnavailable) {
			t.Errorf("expected ErrStorageUnavailable, got %v", err)
		}
		if session.Snapshot().Status != StatusLoading {
			t.Errorf("expected loading, got %s", session.Snapshot().Status)
		}
	})
}

func TestSession_Mutations(t *testing.T) {
	ctx := context.Background()

	t.Run("full lifecycle matches the stores", func(t *testing.T) {
		session, _ := newLoadedSession(t)

		dairy, err := session.AddCategory(ctx, "Dairy")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		fridge, err := session.AddCategory(ctx, "Fridge")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		milk, err := session.AddItem(ctx, dairy.ID, "Milk", 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := session.ChangeQuantity(ctx, milk.ID, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := session.MoveItem(ctx, milk.ID, fridge.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		state := session.Snapshot()
		if got := categoryNames(state.Stocked); !equalNames(got, []string{"Fridge"}) {
			t.Errorf("expected [Fridge] stocked, got %v", got)
		}
		if got := categoryNames(state.Empty); !equalNames(got, []string{"Dairy"}) {
			t.Errorf("expected [Dairy] empty, got %v", got)
		}
		moved, ok := state.Item(milk.ID)
		if !ok || moved.Quantity != 4 || moved.CategoryID != fridge.ID {
			t.Errorf("unexpected item %+v", moved)
		}

		fresh := reloadedState(t, session)
		if got := categoryNames(fresh.Stocked); !equalNames(got, categoryNames(state.Stocked)) {
			t.Errorf("expected reload to match, got %v", got)
		}

		if err := session.RemoveItem(ctx, milk.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := session.RemoveCategory(ctx, dairy.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		state = session.Snapshot()
		if len(state.Stocked) != 0 || !equalNames(categoryNames(state.Empty), []string{"Fridge"}) {
			t.Errorf("unexpected final state stocked=%v empty=%v", categoryNames(state.Stocked), categoryNames(state.Empty))
		}
	})

	t.Run("failed mutation leaves the state untouched", func(t *testing.T) {
		session, _ := newLoadedSession(t)
		dairy, _ := session.AddCategory(ctx, "Dairy")
		milk, _ := session.AddItem(ctx, dairy.ID, "Milk", 99)
		before := session.Snapshot()

		_, err := session.ChangeQuantity(ctx, milk.ID, 1)
		if !errors.Is(err, domainerror.ErrQuantityOutOfBounds) {
			t.Errorf("expected ErrQuantityOutOfBounds, got %v", err)
		}
		_, err = session.AddCategory(ctx, "Dairy")
		if !errors.Is(err, domainerror.ErrDuplicateName) {
			t.Errorf("expected ErrDuplicateName, got %v", err)
		}
		err = session.RemoveCategory(ctx, dairy.ID)
		if !errors.Is(err, domainerror.ErrCategoryNotEmpty) {
			t.Errorf("expected ErrCategoryNotEmpty, got %v", err)
		}

		after := session.Snapshot()
		if after.Status != StatusReady {
			t.Errorf("expected ready, got %s", after.Status)
		}
		item, _ := after.Item(milk.ID)
		if item.Quantity != 99 {
			t.Errorf("expected quantity 99, got %d", item.Quantity)
		}
		if !equalNames(categoryNames(after.Stocked), categoryNames(before.Stocked)) {
			t.Errorf("expected categories unchanged, got %v", categoryNames(after.Stocked))
		}
	})

	t.Run("rename keeps lists sorted", func(t *testing.T) {
		session, _ := newLoadedSession(t)
		dairy, _ := session.AddCategory(ctx, "Dairy")
		_, _ = session.AddCategory(ctx, "Bakery")
		milk, _ := session.AddItem(ctx, dairy.ID, "Milk", 1)
		_, _ = session.AddItem(ctx, dairy.ID, "Butter", 1)

		if _, err := session.RenameCategory(ctx, dairy.ID, "Alpha"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := session.RenameItem(ctx, milk.ID, "Almond milk"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		state := session.Snapshot()
		alpha, _ := state.Category(dairy.ID)
		if alpha.Name != "Alpha" {
			t.Errorf("expected Alpha, got %s", alpha.Name)
		}
		if got := names(alpha.Items); !equalNames(got, []string{"Almond milk", "Butter"}) {
			t.Errorf("expected [Almond milk Butter], got %v", got)
		}
	})

	t.Run("subscribers see every committed state", func(t *testing.T) {
		session, _ := newLoadedSession(t)

		var seen []State
		unsubscribe := session.Subscribe(func(s State) { seen = append(seen, s) })

		dairy, _ := session.AddCategory(ctx, "Dairy")
		_, _ = session.AddItem(ctx, dairy.ID, "Milk", 1)
		_, _ = session.AddItem(ctx, dairy.ID, "", 1)

		if len(seen) != 2 {
			t.Fatalf("expected 2 notifications, got %d", len(seen))
		}
		if len(seen[1].Stocked) != 1 {
			t.Errorf("expected second state to hold Dairy stocked, got %v", categoryNames(seen[1].Stocked))
		}

		unsubscribe()
		_, _ = session.AddCategory(ctx, "Pantry")
		if len(seen) != 2 {
			t.Errorf("expected no notification after unsubscribe, got %d", len(seen))
		}
	})

	t.Run("concurrent mutations are serialized", func(t *testing.T) {
		session, _ := newLoadedSession(t)
		dairy, _ := session.AddCategory(ctx, "Dairy")
		milk, _ := session.AddItem(ctx, dairy.ID, "Milk", 0)

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = session.ChangeQuantity(ctx, milk.ID, 1)
			}()
		}
		wg.Wait()

		item, _ := session.Snapshot().Item(milk.ID)
		if item.Quantity != 20 {
			t.Errorf("expected quantity 20, got %d", item.Quantity)
		}
	})
}

// reloadedState loads a second session over the same stores as s.
func reloadedState(t *testing.T, s *Session) State {
	t.Helper()

	other := NewSession(s.getInventory, s.mutations, s.reducer)
	if err := other.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return other.Snapshot()
}
