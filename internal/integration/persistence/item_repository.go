package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/domain/entity"
	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
	"github.com/inventory-tracker/backend/internal/integration/persistence/model"
)

// itemRepository implements the adapter.ItemRepository interface.
type itemRepository struct {
	db     *gorm.DB
	schema adapter.SchemaManager
}

// NewItemRepository creates a new item repository instance.
func NewItemRepository(db *gorm.DB, schema adapter.SchemaManager) adapter.ItemRepository {
	return &itemRepository{
		db:     db,
		schema: schema,
	}
}

// Insert creates a new item in the database.
func (r *itemRepository) Insert(ctx context.Context, name string, quantity int, categoryID int64) (int64, error) {
	if !entity.IsNameValid(name) {
		return 0, domainerror.ErrInvalidName
	}
	if !entity.IsQuantityValid(quantity) {
		return 0, domainerror.ErrQuantityOutOfBounds
	}
	if err := r.schema.EnsureSchema(ctx); err != nil {
		return 0, err
	}

	itemModel := &model.ItemModel{
		Name:       entity.NormalizeName(name),
		Quantity:   quantity,
		CategoryID: &categoryID,
	}
	result := r.db.WithContext(ctx).Omit("Owner").Create(itemModel)
	if result.Error != nil {
		return 0, translateError("insert item", result.Error, domainerror.ErrItemNotFound)
	}
	return itemModel.ID, nil
}

// FindByID retrieves an item by its ID.
func (r *itemRepository) FindByID(ctx context.Context, id int64) (*entity.Item, error) {
	if err := r.schema.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	var itemModel model.ItemModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&itemModel)
	if result.Error != nil {
		return nil, translateError("find item", result.Error, domainerror.ErrItemNotFound)
	}

	item := itemModel.ToEntity()
	return &item, nil
}

// FindByName retrieves an item by name.
func (r *itemRepository) FindByName(ctx context.Context, name string) (*entity.Item, error) {
	if err := r.schema.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	var itemModel model.ItemModel
	result := r.db.WithContext(ctx).
		Where("name = ?", entity.NormalizeName(name)).
		First(&itemModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError("find item by name", result.Error, domainerror.ErrItemNotFound)
	}

	item := itemModel.ToEntity()
	return &item, nil
}

// UpdateQuantity stores a new quantity for an item.
func (r *itemRepository) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	if !entity.IsQuantityValid(quantity) {
		return domainerror.ErrQuantityOutOfBounds
	}
	return r.updateColumn(ctx, "update item quantity", id, "quantity", quantity)
}

// UpdateName renames an item.
func (r *itemRepository) UpdateName(ctx context.Context, id int64, name string) error {
	if !entity.IsNameValid(name) {
		return domainerror.ErrInvalidName
	}
	return r.updateColumn(ctx, "update item name", id, "name", entity.NormalizeName(name))
}

// UpdateCategory moves an item to another category.
func (r *itemRepository) UpdateCategory(ctx context.Context, id int64, categoryID int64) error {
	return r.updateColumn(ctx, "update item category", id, "category", categoryID)
}

func (r *itemRepository) updateColumn(ctx context.Context, op string, id int64, column string, value any) error {
	if err := r.schema.EnsureSchema(ctx); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&model.ItemModel{}).
		Where("id = ?", id).
		Update(column, value)
	if result.Error != nil {
		return translateError(op, result.Error, domainerror.ErrItemNotFound)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrItemNotFound
	}
	return nil
}

// DeleteOne removes an item from the database.
func (r *itemRepository) DeleteOne(ctx context.Context, id int64) error {
	if err := r.schema.EnsureSchema(ctx); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&model.ItemModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError("delete item", result.Error, domainerror.ErrItemNotFound)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrItemNotFound
	}
	return nil
}

// CountByCategory counts the items owned by a category.
func (r *itemRepository) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	if err := r.schema.EnsureSchema(ctx); err != nil {
		return 0, err
	}

	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ItemModel{}).
		Where("category = ?", categoryID).
		Count(&count)
	if result.Error != nil {
		return 0, translateError("count items", result.Error, domainerror.ErrItemNotFound)
	}
	return count, nil
}

// GetAllGroupByCategory joins items with their categories and groups them by category.
// Items whose category does not resolve are dropped by the inner join.
func (r *itemRepository) GetAllGroupByCategory(ctx context.Context) ([]entity.Category, error) {
	if err := r.schema.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	var rows []model.CategoryItemRow
	result := r.db.WithContext(ctx).
		Table("items").
		Select("items.id AS item_id, items.name AS item_name, COALESCE(items.quantity, 0) AS quantity, " +
			"categories.id AS category_id, categories.name AS category_name").
		Joins("INNER JOIN categories ON items.category = categories.id").
		Order("categories.id ASC, items.id ASC").
		Scan(&rows)
	if result.Error != nil {
		return nil, translateError("group items by category", result.Error, domainerror.ErrItemNotFound)
	}

	return model.GroupByCategory(rows), nil
}
