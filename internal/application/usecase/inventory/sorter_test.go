package inventory

import (
	"testing"

	"github.com/inventory-tracker/backend/internal/domain/entity"
)

func names(items []entity.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Name
	}
	return out
}

func categoryNames(categories []entity.Category) []string {
	out := make([]string, len(categories))
	for i, category := range categories {
		out[i] = category.Name
	}
	return out
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSorter(t *testing.T) {
	t.Run("orders accented names with their base letter", func(t *testing.T) {
		items := []entity.Item{{Name: "Oranges"}, {Name: "Épinards"}, {Name: "eggs"}, {Name: "Apples"}}
		NewSorter("fr").SortItems(items)

		want := []string{"Apples", "eggs", "Épinards", "Oranges"}
		if got := names(items); !equalNames(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("ignores case when comparing", func(t *testing.T) {
		categories := []entity.Category{{Name: "pantry"}, {Name: "Dairy"}, {Name: "bakery"}}
		NewSorter("en").SortCategories(categories)

		want := []string{"bakery", "Dairy", "pantry"}
		if got := categoryNames(categories); !equalNames(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("invalid locale falls back to English", func(t *testing.T) {
		items := []entity.Item{{Name: "b"}, {Name: "a"}}
		NewSorter("not a locale!").SortItems(items)

		if items[0].Name != "a" {
			t.Errorf("expected a first, got %v", names(items))
		}
	})
}
