// Package model defines database models for persistence layer.
package model

import (
	"github.com/inventory-tracker/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:text;not null;unique"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity without items.
func (m *CategoryModel) ToEntity() entity.Category {
	return entity.Category{
		ID:   m.ID,
		Name: m.Name,
	}
}
