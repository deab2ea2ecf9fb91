// Package persistence implements repository interfaces for database operations.
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

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db     *gorm.DB
	schema adapter.SchemaManager
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB, schema adapter.SchemaManager) adapter.CategoryRepository {
	return &categoryRepository{
		db:     db,
		schema: schema,
	}
}

// GetAll retrieves every category.
func (r *categoryRepository) GetAll(ctx context.Context) ([]entity.Category, error) {
	if err := r.schema.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).Find(&categoryModels)
	if result.Error != nil {
		return nil, translateError("get categories", result.Error, domainerror.ErrCategoryNotFound)
	}

	categories := make([]entity.Category, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories, nil
}

// FindByID retrieves a category by its ID.
func (r *categoryRepository) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	if err := r.schema.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		return nil, translateError("find category", result.Error, domainerror.ErrCategoryNotFound)
	}

	category := categoryModel.ToEntity()
	return &category, nil
}

// FindByName retrieves a category by name.
func (r *categoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	if err := r.schema.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("name = ?", entity.NormalizeName(name)).
		First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError("find category by name", result.Error, domainerror.ErrCategoryNotFound)
	}

	category := categoryModel.ToEntity()
	return &category, nil
}

// Insert creates a new category in the database.
func (r *categoryRepository) Insert(ctx context.Context, name string) (int64, error) {
	if !entity.IsNameValid(name) {
		return 0, domainerror.ErrInvalidName
	}
	if err := r.schema.EnsureSchema(ctx); err != nil {
		return 0, err
	}

	categoryModel := &model.CategoryModel{Name: entity.NormalizeName(name)}
	result := r.db.WithContext(ctx).Create(categoryModel)
	if result.Error != nil {
		return 0, translateError("insert category", result.Error, domainerror.ErrCategoryNotFound)
	}
	return categoryModel.ID, nil
}

// UpdateName renames an existing category.
func (r *categoryRepository) UpdateName(ctx context.Context, id int64, name string) error {
	if !entity.IsNameValid(name) {
		return domainerror.ErrInvalidName
	}
	if err := r.schema.EnsureSchema(ctx); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ?", id).
		Update("name", entity.NormalizeName(name))
	if result.Error != nil {
		return translateError("update category", result.Error, domainerror.ErrCategoryNotFound)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCategoryNotFound
	}
	return nil
}

// Remove deletes a category from the database.
func (r *categoryRepository) Remove(ctx context.Context, id int64) error {
	if err := r.schema.EnsureSchema(ctx); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&model.CategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError("remove category", result.Error, domainerror.ErrCategoryNotFound)
	}
	return nil
}
