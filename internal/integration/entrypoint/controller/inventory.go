package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inventory-tracker/backend/internal/application/usecase/category"
	"github.com/inventory-tracker/backend/internal/application/usecase/inventory"
	"github.com/inventory-tracker/backend/internal/integration/entrypoint/dto"
)

// InventoryController handles category and item endpoints.
// Every mutation goes through the session so the in-memory view stays in step with the stores.
type InventoryController struct {
	session        *inventory.Session
	listCategories *category.ListCategoriesUseCase
}

// NewInventoryController creates a new inventory controller instance.
func NewInventoryController(session *inventory.Session, listCategories *category.ListCategoriesUseCase) *InventoryController {
	return &InventoryController{
		session:        session,
		listCategories: listCategories,
	}
}

// Get handles GET /inventory requests.
func (c *InventoryController) Get(ctx *gin.Context) {
	state := c.session.Snapshot()
	if state.Status == inventory.StatusLoading {
		handleError(ctx, inventory.ErrNotReady)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToInventoryResponse(state))
}

// ListCategories handles GET /categories requests.
// Categories are read from the store and carry no items.
func (c *InventoryController) ListCategories(ctx *gin.Context) {
	output, err := c.listCategories.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories))
}

// CreateCategory handles POST /categories requests.
func (c *InventoryController) CreateCategory(ctx *gin.Context) {
	var req dto.CreateCategoryRequest
	if !bindJSON(ctx, &req) {
		return
	}

	created, err := c.session.AddCategory(ctx.Request.Context(), req.Name)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(created))
}

// RenameCategory handles PATCH /categories/:id requests.
func (c *InventoryController) RenameCategory(ctx *gin.Context) {
	categoryID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req dto.RenameCategoryRequest
	if !bindJSON(ctx, &req) {
		return
	}

	renamed, err := c.session.RenameCategory(ctx.Request.Context(), categoryID, req.Name)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(renamed))
}

// DeleteCategory handles DELETE /categories/:id requests.
func (c *InventoryController) DeleteCategory(ctx *gin.Context) {
	categoryID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.session.RemoveCategory(ctx.Request.Context(), categoryID); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// CreateItem handles POST /categories/:id/items requests.
func (c *InventoryController) CreateItem(ctx *gin.Context) {
	categoryID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateItemRequest
	if !bindJSON(ctx, &req) {
		return
	}

	item, err := c.session.AddItem(ctx.Request.Context(), categoryID, req.Name, *req.Quantity)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToItemResponse(item))
}

// RenameItem handles PATCH /items/:id requests.
func (c *InventoryController) RenameItem(ctx *gin.Context) {
	itemID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req dto.RenameItemRequest
	if !bindJSON(ctx, &req) {
		return
	}

	item, err := c.session.RenameItem(ctx.Request.Context(), itemID, req.Name)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// ChangeQuantity handles POST /items/:id/quantity requests.
func (c *InventoryController) ChangeQuantity(ctx *gin.Context) {
	itemID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req dto.ChangeQuantityRequest
	if !bindJSON(ctx, &req) {
		return
	}

	item, err := c.session.ChangeQuantity(ctx.Request.Context(), itemID, *req.Delta)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// SetQuantity handles PUT /items/:id/quantity requests.
func (c *InventoryController) SetQuantity(ctx *gin.Context) {
	itemID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req dto.SetQuantityRequest
	if !bindJSON(ctx, &req) {
		return
	}

	item, err := c.session.SetQuantity(ctx.Request.Context(), itemID, *req.Quantity)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// MoveItem handles POST /items/:id/move requests.
func (c *InventoryController) MoveItem(ctx *gin.Context) {
	itemID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req dto.MoveItemRequest
	if !bindJSON(ctx, &req) {
		return
	}

	item, err := c.session.MoveItem(ctx.Request.Context(), itemID, req.CategoryID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// DeleteItem handles DELETE /items/:id requests.
func (c *InventoryController) DeleteItem(ctx *gin.Context) {
	itemID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.session.RemoveItem(ctx.Request.Context(), itemID); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
