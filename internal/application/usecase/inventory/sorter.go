package inventory

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/inventory-tracker/backend/internal/domain/entity"
)

// Sorter orders categories and items by name with a locale-aware collator.
type Sorter struct {
	tag language.Tag
}

// NewSorter creates a sorter for locale, falling back to English when locale
// is not a valid BCP 47 tag.
func NewSorter(locale string) Sorter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return Sorter{tag: tag}
}

// A collator keeps internal buffers and must not be shared between goroutines.
func (s Sorter) collator() *collate.Collator {
	return collate.New(s.tag)
}

// SortCategories sorts categories in place by name.
func (s Sorter) SortCategories(categories []entity.Category) {
	c := s.collator()
	slices.SortStableFunc(categories, func(a, b entity.Category) int {
		return c.CompareString(a.Name, b.Name)
	})
}

// SortItems sorts items in place by name.
func (s Sorter) SortItems(items []entity.Item) {
	c := s.collator()
	slices.SortStableFunc(items, func(a, b entity.Item) int {
		return c.CompareString(a.Name, b.Name)
	})
}
