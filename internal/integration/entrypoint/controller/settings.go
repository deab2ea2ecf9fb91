package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inventory-tracker/backend/internal/application/usecase/settings"
	"github.com/inventory-tracker/backend/internal/integration/entrypoint/dto"
)

// SettingsController handles presentation preference endpoints.
type SettingsController struct {
	getUseCase    *settings.GetSettingsUseCase
	updateUseCase *settings.UpdateSettingsUseCase
	toggleUseCase *settings.ToggleCategoryCollapsedUseCase
	isCollapsed   *settings.IsCategoryCollapsedUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(
	getUseCase *settings.GetSettingsUseCase,
	updateUseCase *settings.UpdateSettingsUseCase,
	toggleUseCase *settings.ToggleCategoryCollapsedUseCase,
	isCollapsed *settings.IsCategoryCollapsedUseCase,
) *SettingsController {
	return &SettingsController{
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		toggleUseCase: toggleUseCase,
		isCollapsed:   isCollapsed,
	}
}

// Get handles GET /settings requests.
func (c *SettingsController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}

// Update handles PATCH /settings requests.
func (c *SettingsController) Update(ctx *gin.Context) {
	var req dto.UpdateSettingsRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), settings.UpdateSettingsInput{
		CardsView: req.CardsView,
		Theme:     req.Theme,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}

// Collapsed handles GET /settings/collapsed/:categoryId requests.
func (c *SettingsController) Collapsed(ctx *gin.Context) {
	categoryID, ok := parseID(ctx, "categoryId")
	if !ok {
		return
	}

	collapsed, err := c.isCollapsed.Execute(ctx.Request.Context(), categoryID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CollapsedResponse{
		CategoryID: categoryID,
		Collapsed:  collapsed,
	})
}

// ToggleCollapsed handles POST /settings/collapsed/:categoryId requests.
func (c *SettingsController) ToggleCollapsed(ctx *gin.Context) {
	categoryID, ok := parseID(ctx, "categoryId")
	if !ok {
		return
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), settings.ToggleCategoryCollapsedInput{
		CategoryID: categoryID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CollapsedResponse{
		CategoryID: output.CategoryID,
		Collapsed:  output.Collapsed,
	})
}
