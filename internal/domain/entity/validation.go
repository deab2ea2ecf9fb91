// Package entity defines the core business entities for the domain layer.
package entity

import "strings"

const (
	// QuantityMin is the lowest quantity an item can hold.
	QuantityMin = 0
	// QuantityMax is the highest quantity an item can hold.
	QuantityMax = 99
)

// IsNameValid reports whether name is non-empty once surrounding whitespace is removed.
// It is shared by the value objects and every store so both layers apply the same rule.
func IsNameValid(name string) bool {
	return len(strings.TrimSpace(name)) > 0
}

// IsQuantityValid reports whether q lies within [QuantityMin, QuantityMax].
func IsQuantityValid(q int) bool {
	return q >= QuantityMin && q <= QuantityMax
}

// NormalizeName returns the stored form of a name.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}
