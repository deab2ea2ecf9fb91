package item

import (
	"context"
	"errors"
	"strings"
	"testing"

	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
	"github.com/inventory-tracker/backend/internal/integration/persistence/persistencetest"
)

func assertCode(t *testing.T, err error, want domainerror.InventoryErrorCode) {
	t.Helper()

	var invErr *domainerror.InventoryError
	if !errors.As(err, &invErr) {
		t.Fatalf("expected InventoryError with code %s, got %v", want, err)
	}
	if invErr.Code != want {
		t.Errorf("expected code %s, got %s", want, invErr.Code)
	}
}

func TestCreateItemUseCase(t *testing.T) {
	ctx := context.Background()
	stores := persistencetest.New(t)
	dairy, _ := stores.Categories.Insert(ctx, "Dairy")
	uc := NewCreateItemUseCase(stores.Items, stores.Categories)

	t.Run("creates an item in its category", func(t *testing.T) {
		out, err := uc.Execute(ctx, CreateItemInput{Name: " Milk ", Quantity: 3, CategoryID: dairy})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Item.Name != "Milk" || out.Item.Quantity != 3 || out.Item.CategoryID != dairy {
			t.Errorf("unexpected item %+v", out.Item)
		}

		stored, err := stores.Items.FindByID(ctx, out.Item.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *stored != out.Item {
			t.Errorf("expected stored %+v, got %+v", out.Item, *stored)
		}
	})

	tests := []struct {
		name     string
		input    CreateItemInput
		wantCode domainerror.InventoryErrorCode
	}{
		{name: "blank name", input: CreateItemInput{Name: " ", Quantity: 1, CategoryID: dairy}, wantCode: domainerror.ErrCodeInvalidName},
		{name: "negative quantity", input: CreateItemInput{Name: "Eggs", Quantity: -1, CategoryID: dairy}, wantCode: domainerror.ErrCodeQuantityOutOfBounds},
		{name: "quantity above max", input: CreateItemInput{Name: "Eggs", Quantity: 100, CategoryID: dairy}, wantCode: domainerror.ErrCodeQuantityOutOfBounds},
		{name: "unknown category", input: CreateItemInput{Name: "Eggs", Quantity: 1, CategoryID: 999}, wantCode: domainerror.ErrCodeCategoryNotFound},
		{name: "duplicate name", input: CreateItemInput{Name: "Milk", Quantity: 1, CategoryID: dairy}, wantCode: domainerror.ErrCodeDuplicateName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.input)
			assertCode(t, err, tt.wantCode)
		})
	}
}

func TestChangeQuantityUseCase(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		start     int
		delta     int
		want      int
		wantError bool
	}{
		{name: "increment", start: 3, delta: 1, want: 4},
		{name: "decrement", start: 3, delta: -1, want: 2},
		{name: "decrement to zero", start: 1, delta: -1, want: 0},
		{name: "increment at max is rejected", start: 99, delta: 1, want: 99, wantError: true},
		{name: "decrement at zero is rejected", start: 0, delta: -1, want: 0, wantError: true},
		{name: "large delta is rejected rather than clamped", start: 50, delta: 60, want: 50, wantError: true},
		{name: "large negative delta is rejected rather than clamped", start: 5, delta: -10, want: 5, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stores := persistencetest.New(t)
			dairy, _ := stores.Categories.Insert(ctx, "Dairy")
			id, _ := stores.Items.Insert(ctx, "Milk", tt.start, dairy)

			out, err := NewChangeQuantityUseCase(stores.Items).Execute(ctx, ChangeQuantityInput{ItemID: id, Delta: tt.delta})
			if tt.wantError {
				assertCode(t, err, domainerror.ErrCodeQuantityOutOfBounds)
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if out.Item.Quantity != tt.want {
					t.Errorf("expected output quantity %d, got %d", tt.want, out.Item.Quantity)
				}
			}

			stored, _ := stores.Items.FindByID(ctx, id)
			if stored.Quantity != tt.want {
				t.Errorf("expected stored quantity %d, got %d", tt.want, stored.Quantity)
			}
		})
	}

	t.Run("rejection reports the attempted quantity", func(t *testing.T) {
		stores := persistencetest.New(t)
		dairy, _ := stores.Categories.Insert(ctx, "Dairy")
		id, _ := stores.Items.Insert(ctx, "Milk", 99, dairy)

		_, err := NewChangeQuantityUseCase(stores.Items).Execute(ctx, ChangeQuantityInput{ItemID: id, Delta: 1})
		if err == nil || !strings.Contains(err.Error(), "quantity 100") {
			t.Errorf("expected error naming quantity 100, got %v", err)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		stores := persistencetest.New(t)
		_, err := NewChangeQuantityUseCase(stores.Items).Execute(ctx, ChangeQuantityInput{ItemID: 5, Delta: 1})
		assertCode(t, err, domainerror.ErrCodeItemNotFound)
	})
}

func TestSetQuantityUseCase(t *testing.T) {
	ctx := context.Background()
	stores := persistencetest.New(t)
	dairy, _ := stores.Categories.Insert(ctx, "Dairy")
	id, _ := stores.Items.Insert(ctx, "Milk", 3, dairy)
	uc := NewSetQuantityUseCase(stores.Items)

	out, err := uc.Execute(ctx, SetQuantityInput{ItemID: id, Quantity: 42})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Item.Quantity != 42 {
		t.Errorf("expected 42, got %d", out.Item.Quantity)
	}

	_, err = uc.Execute(ctx, SetQuantityInput{ItemID: id, Quantity: 100})
	assertCode(t, err, domainerror.ErrCodeQuantityOutOfBounds)

	stored, _ := stores.Items.FindByID(ctx, id)
	if stored.Quantity != 42 {
		t.Errorf("expected stored quantity to stay 42, got %d", stored.Quantity)
	}
}

func TestRenameItemUseCase(t *testing.T) {
	ctx := context.Background()
	stores := persistencetest.New(t)
	dairy, _ := stores.Categories.Insert(ctx, "Dairy")
	milk, _ := stores.Items.Insert(ctx, "Milk", 3, dairy)
	_, _ = stores.Items.Insert(ctx, "Butter", 1, dairy)
	uc := NewRenameItemUseCase(stores.Items)

	t.Run("renames", func(t *testing.T) {
		out, err := uc.Execute(ctx, RenameItemInput{ItemID: milk, Name: "Oat milk"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Changed || out.Item.Name != "Oat milk" || out.Item.Quantity != 3 {
			t.Errorf("unexpected output %+v", out)
		}
	})

	t.Run("same name is a no-op", func(t *testing.T) {
		out, err := uc.Execute(ctx, RenameItemInput{ItemID: milk, Name: "Oat milk "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Changed {
			t.Error("expected no change")
		}
	})

	t.Run("duplicate name", func(t *testing.T) {
		_, err := uc.Execute(ctx, RenameItemInput{ItemID: milk, Name: "Butter"})
		assertCode(t, err, domainerror.ErrCodeDuplicateName)
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := uc.Execute(ctx, RenameItemInput{ItemID: milk, Name: "\t"})
		assertCode(t, err, domainerror.ErrCodeInvalidName)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := uc.Execute(ctx, RenameItemInput{ItemID: 999, Name: "Cream"})
		assertCode(t, err, domainerror.ErrCodeItemNotFound)
	})
}

func TestMoveItemUseCase(t *testing.T) {
	ctx := context.Background()
	stores := persistencetest.New(t)
	dairy, _ := stores.Categories.Insert(ctx, "Dairy")
	fridge, _ := stores.Categories.Insert(ctx, "Fridge")
	milk, _ := stores.Items.Insert(ctx, "Milk", 3, dairy)
	uc := NewMoveItemUseCase(stores.Items, stores.Categories)

	t.Run("moves to another category", func(t *testing.T) {
		out, err := uc.Execute(ctx, MoveItemInput{ItemID: milk, CategoryID: fridge})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Moved || out.FromCategoryID != dairy || out.Item.CategoryID != fridge {
			t.Errorf("unexpected output %+v", out)
		}

		stored, _ := stores.Items.FindByID(ctx, milk)
		if stored.CategoryID != fridge {
			t.Errorf("expected stored category %d, got %d", fridge, stored.CategoryID)
		}
	})

	t.Run("moving to the current category is a no-op", func(t *testing.T) {
		out, err := uc.Execute(ctx, MoveItemInput{ItemID: milk, CategoryID: fridge})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Moved {
			t.Error("expected no move")
		}
	})

	t.Run("unknown target category", func(t *testing.T) {
		_, err := uc.Execute(ctx, MoveItemInput{ItemID: milk, CategoryID: 999})
		assertCode(t, err, domainerror.ErrCodeCategoryNotFound)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := uc.Execute(ctx, MoveItemInput{ItemID: 999, CategoryID: dairy})
		assertCode(t, err, domainerror.ErrCodeItemNotFound)
	})
}

func TestDeleteItemUseCase(t *testing.T) {
	ctx := context.Background()
	stores := persistencetest.New(t)
	dairy, _ := stores.Categories.Insert(ctx, "Dairy")
	milk, _ := stores.Items.Insert(ctx, "Milk", 3, dairy)
	uc := NewDeleteItemUseCase(stores.Items)

	out, err := uc.Execute(ctx, DeleteItemInput{ItemID: milk})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Item.Name != "Milk" {
		t.Errorf("expected deleted Milk, got %s", out.Item.Name)
	}

	_, err = uc.Execute(ctx, DeleteItemInput{ItemID: milk})
	assertCode(t, err, domainerror.ErrCodeItemNotFound)
}
