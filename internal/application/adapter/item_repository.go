package adapter

import (
	"context"

	"github.com/inventory-tracker/backend/internal/domain/entity"
)

// ItemRepository defines the interface for item persistence operations.
type ItemRepository interface {
	// Insert creates an item and returns the ID assigned by the store.
	Insert(ctx context.Context, name string, quantity int, categoryID int64) (int64, error)

	// FindByID retrieves an item by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Item, error)

	// FindByName retrieves an item by its trimmed name (for uniqueness check).
	// It returns nil without error when no item matches.
	FindByName(ctx context.Context, name string) (*entity.Item, error)

	// UpdateQuantity stores a new quantity. Values outside the bounds are rejected, not clamped.
	UpdateQuantity(ctx context.Context, id int64, quantity int) error

	// UpdateName renames an item.
	UpdateName(ctx context.Context, id int64, name string) error

	// UpdateCategory moves an item to another category.
	UpdateCategory(ctx context.Context, id int64, categoryID int64) error

	// DeleteOne removes an item.
	DeleteOne(ctx context.Context, id int64) error

	// CountByCategory returns how many items a category owns.
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)

	// GetAllGroupByCategory joins items with their category and groups them.
	// Categories without items and items whose category does not resolve are absent.
	GetAllGroupByCategory(ctx context.Context) ([]entity.Category, error)
}
