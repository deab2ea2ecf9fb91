package dto

import (
	"github.com/inventory-tracker/backend/internal/application/usecase/inventory"
	"github.com/inventory-tracker/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// RenameCategoryRequest represents the request body for renaming a category.
type RenameCategoryRequest struct {
	Name string `json:"name"`
}

// CreateItemRequest represents the request body for item creation.
type CreateItemRequest struct {
	Name     string `json:"name"`
	Quantity *int   `json:"quantity" binding:"required"`
}

// RenameItemRequest represents the request body for renaming an item.
type RenameItemRequest struct {
	Name string `json:"name"`
}

// ChangeQuantityRequest represents a relative quantity change.
type ChangeQuantityRequest struct {
	Delta *int `json:"delta" binding:"required"`
}

// SetQuantityRequest represents an absolute quantity.
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// MoveItemRequest represents the request body for moving an item.
type MoveItemRequest struct {
	CategoryID int64 `json:"category_id" binding:"required,min=1"`
}

// ItemResponse represents a single item in API responses.
type ItemResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	CategoryID int64  `json:"category_id"`
}

// CategoryResponse represents a category and its items in API responses.
type CategoryResponse struct {
	ID    int64          `json:"id"`
	Name  string         `json:"name"`
	Items []ItemResponse `json:"items"`
}

// InventoryResponse represents the whole inventory.
type InventoryResponse struct {
	Status  string             `json:"status"`
	Stocked []CategoryResponse `json:"stocked"`
	Empty   []CategoryResponse `json:"empty"`
}

// CategoryListResponse represents the flat category listing.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToItemResponse converts a domain Item entity to an ItemResponse DTO.
func ToItemResponse(item entity.Item) ItemResponse {
	return ItemResponse{
		ID:         item.ID,
		Name:       item.Name,
		Quantity:   item.Quantity,
		CategoryID: item.CategoryID,
	}
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(category entity.Category) CategoryResponse {
	items := make([]ItemResponse, len(category.Items))
	for i, item := range category.Items {
		items[i] = ToItemResponse(item)
	}
	return CategoryResponse{
		ID:    category.ID,
		Name:  category.Name,
		Items: items,
	}
}

// ToInventoryResponse converts a session snapshot to an InventoryResponse DTO.
func ToInventoryResponse(state inventory.State) InventoryResponse {
	return InventoryResponse{
		Status:  string(state.Status),
		Stocked: toCategoryResponses(state.Stocked),
		Empty:   toCategoryResponses(state.Empty),
	}
}

// ToCategoryListResponse converts stored categories to a CategoryListResponse DTO.
func ToCategoryListResponse(categories []entity.Category) CategoryListResponse {
	return CategoryListResponse{
		Categories: toCategoryResponses(categories),
	}
}

func toCategoryResponses(categories []entity.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = ToCategoryResponse(category)
	}
	return responses
}
