package entity

import (
	"errors"
	"testing"

	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
)

func TestNewCategory(t *testing.T) {
	t.Run("rejects blank names", func(t *testing.T) {
		if _, err := NewCategory(1, " \t "); !errors.Is(err, domainerror.ErrInvalidName) {
			t.Errorf("expected ErrInvalidName, got %v", err)
		}
	})

	t.Run("owns a copy of the items", func(t *testing.T) {
		items := []Item{{ID: 1, Name: "Milk", Quantity: 1, CategoryID: 1}}
		category, err := NewCategory(1, " Dairy ", items...)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if category.Name != "Dairy" {
			t.Errorf("expected trimmed name, got %q", category.Name)
		}

		items[0].Name = "Changed"
		if category.Items[0].Name != "Milk" {
			t.Error("category shares its item slice with the caller")
		}
	})
}

func TestCategoryWithName(t *testing.T) {
	category, _ := NewCategory(1, "Dairy", Item{ID: 1, Name: "Milk"})

	renamed, err := category.WithName("Fridge")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if renamed.Name != "Fridge" || category.Name != "Dairy" {
		t.Errorf("unexpected names: renamed=%q original=%q", renamed.Name, category.Name)
	}

	renamed.Items[0].Quantity = 42
	if category.Items[0].Quantity == 42 {
		t.Error("renamed category shares items with the original")
	}

	if _, err := category.WithName(""); !errors.Is(err, domainerror.ErrInvalidName) {
		t.Errorf("expected ErrInvalidName, got %v", err)
	}
}

func TestCategoryItemIndex(t *testing.T) {
	category, _ := NewCategory(1, "Dairy", Item{ID: 4, Name: "Milk"}, Item{ID: 9, Name: "Yogurt"})

	if got := category.ItemIndex(9); got != 1 {
		t.Errorf("expected index 1, got %d", got)
	}
	if got := category.ItemIndex(5); got != -1 {
		t.Errorf("expected -1, got %d", got)
	}
	if category.IsEmpty() {
		t.Error("expected category to be non-empty")
	}
}
