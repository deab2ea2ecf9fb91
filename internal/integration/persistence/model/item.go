package model

import (
	"github.com/inventory-tracker/backend/internal/domain/entity"
)

// ItemModel represents the items table in the database.
// The category column is nullable: rows created before categories existed keep NULL.
type ItemModel struct {
	ID         int64          `gorm:"primaryKey;autoIncrement"`
	Name       string         `gorm:"type:text;not null;unique"`
	Quantity   int            `gorm:"type:integer"`
	CategoryID *int64         `gorm:"column:category;type:integer"`
	Owner      *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the ItemModel.
func (ItemModel) TableName() string {
	return "items"
}

// ToEntity converts an ItemModel to a domain Item entity.
func (m *ItemModel) ToEntity() entity.Item {
	var categoryID int64
	if m.CategoryID != nil {
		categoryID = *m.CategoryID
	}

	return entity.Item{
		ID:         m.ID,
		Name:       m.Name,
		Quantity:   m.Quantity,
		CategoryID: categoryID,
	}
}

// CategoryItemRow is one row of the items/categories inner join.
type CategoryItemRow struct {
	ItemID       int64
	ItemName     string
	Quantity     int
	CategoryID   int64
	CategoryName string
}

// GroupByCategory folds join rows into one Category per distinct category id.
// Categories keep the order in which they first appear in rows.
func GroupByCategory(rows []CategoryItemRow) []entity.Category {
	index := make(map[int64]int)
	categories := make([]entity.Category, 0)

	for _, row := range rows {
		item := entity.Item{
			ID:         row.ItemID,
			Name:       row.ItemName,
			Quantity:   row.Quantity,
			CategoryID: row.CategoryID,
		}

		pos, ok := index[row.CategoryID]
		if !ok {
			index[row.CategoryID] = len(categories)
			categories = append(categories, entity.Category{
				ID:   row.CategoryID,
				Name: row.CategoryName,
			})
			pos = len(categories) - 1
		}
		categories[pos].Items = append(categories[pos].Items, item)
	}

	return categories
}
