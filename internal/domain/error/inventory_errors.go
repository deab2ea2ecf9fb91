// Package error defines domain-specific errors for the Inventory Tracker application.
package error

import (
	"errors"
	"fmt"
)

// Inventory domain errors.
var (
	// ErrInvalidName is returned when a category or item name is empty after trimming.
	ErrInvalidName = errors.New("name is invalid")

	// ErrQuantityOutOfBounds is returned when an item quantity leaves the allowed range.
	ErrQuantityOutOfBounds = errors.New("item quantity out of bounds")

	// ErrDuplicateName is returned when a name collides with an existing category or item.
	ErrDuplicateName = errors.New("name already exists")

	// ErrNotFound is returned when a referenced id or name is absent.
	ErrNotFound = errors.New("not found")

	// ErrCategoryNotFound is returned when a category is not found in the store.
	ErrCategoryNotFound = fmt.Errorf("category %w", ErrNotFound)

	// ErrItemNotFound is returned when an item is not found in the store.
	ErrItemNotFound = fmt.Errorf("item %w", ErrNotFound)

	// ErrCategoryNotEmpty is returned when deleting a category that still owns items.
	ErrCategoryNotEmpty = errors.New("category is not empty")

	// ErrStorageUnavailable is returned when the underlying store cannot be reached.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// InventoryErrorCode defines error codes for inventory errors.
// Format: INV-XXYYYY where XX is category and YYYY is specific error.
type InventoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidName         InventoryErrorCode = "INV-010001"
	ErrCodeQuantityOutOfBounds InventoryErrorCode = "INV-010002"
	ErrCodeInvalidID           InventoryErrorCode = "INV-010003"
	ErrCodeMissingFields       InventoryErrorCode = "INV-010004"

	// Lookup and state errors (02XXXX)
	ErrCodeCategoryNotFound InventoryErrorCode = "INV-020001"
	ErrCodeItemNotFound     InventoryErrorCode = "INV-020002"
	ErrCodeDuplicateName    InventoryErrorCode = "INV-020003"
	ErrCodeCategoryNotEmpty InventoryErrorCode = "INV-020004"

	// Storage errors (03XXXX)
	ErrCodeStorageUnavailable InventoryErrorCode = "INV-030001"
	ErrCodeNotReady           InventoryErrorCode = "INV-030002"
)

// InventoryError represents an inventory error with code and message.
type InventoryError struct {
	Code    InventoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InventoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InventoryError) Unwrap() error {
	return e.Err
}

// NewInventoryError creates a new InventoryError with the given code and message.
func NewInventoryError(code InventoryErrorCode, message string, err error) *InventoryError {
	return &InventoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewStorageUnavailableError wraps a low-level failure as a StorageUnavailable error.
func NewStorageUnavailableError(err error) *InventoryError {
	return &InventoryError{
		Code:    ErrCodeStorageUnavailable,
		Message: "storage unavailable",
		Err:     fmt.Errorf("%w: %w", ErrStorageUnavailable, err),
	}
}

// NewInvalidNameError reports a name that is empty once trimmed.
func NewInvalidNameError() *InventoryError {
	return NewInventoryError(ErrCodeInvalidName, "name must not be empty", ErrInvalidName)
}

// NewQuantityOutOfBoundsError reports a quantity outside the allowed range.
func NewQuantityOutOfBoundsError(quantity int) *InventoryError {
	return NewInventoryError(
		ErrCodeQuantityOutOfBounds,
		fmt.Sprintf("quantity %d is out of bounds", quantity),
		ErrQuantityOutOfBounds,
	)
}

// NewDuplicateNameError reports a name already taken by another category or item.
func NewDuplicateNameError(name string) *InventoryError {
	return NewInventoryError(
		ErrCodeDuplicateName,
		fmt.Sprintf("%q already exists", name),
		ErrDuplicateName,
	)
}

// NewCategoryNotFoundError reports an unknown category id.
func NewCategoryNotFoundError(id int64) *InventoryError {
	return NewInventoryError(
		ErrCodeCategoryNotFound,
		fmt.Sprintf("category %d not found", id),
		ErrCategoryNotFound,
	)
}

// NewItemNotFoundError reports an unknown item id.
func NewItemNotFoundError(id int64) *InventoryError {
	return NewInventoryError(
		ErrCodeItemNotFound,
		fmt.Sprintf("item %d not found", id),
		ErrItemNotFound,
	)
}

// NewCategoryNotEmptyError reports a category that still owns items.
func NewCategoryNotEmptyError(id int64, count int64) *InventoryError {
	return NewInventoryError(
		ErrCodeCategoryNotEmpty,
		fmt.Sprintf("category %d still holds %d items", id, count),
		ErrCategoryNotEmpty,
	)
}

// CodeOf returns the inventory code carried by err, deriving it from the
// sentinel when err is not an InventoryError. The second result is false when
// err carries no inventory semantics.
func CodeOf(err error) (InventoryErrorCode, bool) {
	var invErr *InventoryError
	if errors.As(err, &invErr) {
		return invErr.Code, true
	}

	switch {
	case errors.Is(err, ErrInvalidName):
		return ErrCodeInvalidName, true
	case errors.Is(err, ErrQuantityOutOfBounds):
		return ErrCodeQuantityOutOfBounds, true
	case errors.Is(err, ErrDuplicateName):
		return ErrCodeDuplicateName, true
	case errors.Is(err, ErrCategoryNotFound):
		return ErrCodeCategoryNotFound, true
	case errors.Is(err, ErrItemNotFound):
		return ErrCodeItemNotFound, true
	case errors.Is(err, ErrCategoryNotEmpty):
		return ErrCodeCategoryNotEmpty, true
	case errors.Is(err, ErrStorageUnavailable):
		return ErrCodeStorageUnavailable, true
	}
	return "", false
}
