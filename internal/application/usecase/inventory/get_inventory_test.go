package inventory

import (
	"context"
	"testing"

	"github.com/inventory-tracker/backend/internal/integration/persistence/persistencetest"
)

func TestGetInventoryUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("empty stores", func(t *testing.T) {
		stores := persistencetest.New(t)

		out, err := NewGetInventoryUseCase(stores.Categories, stores.Items).Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Stocked) != 0 || len(out.Empty) != 0 {
			t.Errorf("expected nothing, got %v and %v", out.Stocked, out.Empty)
		}
	})

	t.Run("every category appears exactly once", func(t *testing.T) {
		stores := persistencetest.New(t)
		dairy, _ := stores.Categories.Insert(ctx, "Dairy")
		bakery, _ := stores.Categories.Insert(ctx, "Bakery")
		_, _ = stores.Categories.Insert(ctx, "Pantry")
		_, _ = stores.Items.Insert(ctx, "Milk", 3, dairy)
		_, _ = stores.Items.Insert(ctx, "Bread", 1, bakery)
		_, _ = stores.Items.Insert(ctx, "Rolls", 6, bakery)

		out, err := NewGetInventoryUseCase(stores.Categories, stores.Items).Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		seen := map[int64]int{}
		for _, c := range out.Stocked {
			seen[c.ID]++
			if c.IsEmpty() {
				t.Errorf("expected stocked category %s to own items", c.Name)
			}
		}
		for _, c := range out.Empty {
			seen[c.ID]++
			if !c.IsEmpty() {
				t.Errorf("expected empty category %s to own no items", c.Name)
			}
		}
		if len(seen) != 3 {
			t.Errorf("expected 3 categories, got %d", len(seen))
		}
		for id, count := range seen {
			if count != 1 {
				t.Errorf("category %d listed %d times", id, count)
			}
		}
	})
}
