// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/inventory-tracker/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// GetAll retrieves every category. No ordering is guaranteed.
	GetAll(ctx context.Context) ([]entity.Category, error)

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Category, error)

	// FindByName retrieves a category by its trimmed name (for uniqueness check).
	// It returns nil without error when no category matches.
	FindByName(ctx context.Context, name string) (*entity.Category, error)

	// Insert creates a category and returns the ID assigned by the store.
	Insert(ctx context.Context, name string) (int64, error)

	// UpdateName renames a category.
	UpdateName(ctx context.Context, id int64, name string) error

	// Remove deletes a category unconditionally. Callers enforce the emptiness rule.
	Remove(ctx context.Context, id int64) error
}
