// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/inventory-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/inventory-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	inventoryController *controller.InventoryController
	settingsController  *controller.SettingsController
	reminderController  *controller.ReminderController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	inventoryController *controller.InventoryController,
	settingsController *controller.SettingsController,
	reminderController *controller.ReminderController,
) *Router {
	return &Router{
		healthController:    healthController,
		inventoryController: inventoryController,
		settingsController:  settingsController,
		reminderController:  reminderController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery(), middleware.RequestLogger())

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.inventoryController != nil {
			v1.GET("/inventory", r.inventoryController.Get)

			categories := v1.Group("/categories")
			{
				categories.GET("", r.inventoryController.ListCategories)
				categories.POST("", r.inventoryController.CreateCategory)
				categories.PATCH("/:id", r.inventoryController.RenameCategory)
				categories.DELETE("/:id", r.inventoryController.DeleteCategory)
				categories.POST("/:id/items", r.inventoryController.CreateItem)
			}

			items := v1.Group("/items")
			{
				items.PATCH("/:id", r.inventoryController.RenameItem)
				items.POST("/:id/quantity", r.inventoryController.ChangeQuantity)
				items.PUT("/:id/quantity", r.inventoryController.SetQuantity)
				items.POST("/:id/move", r.inventoryController.MoveItem)
				items.DELETE("/:id", r.inventoryController.DeleteItem)
			}
		}

		if r.settingsController != nil {
			settings := v1.Group("/settings")
			{
				settings.GET("", r.settingsController.Get)
				settings.PATCH("", r.settingsController.Update)
				settings.GET("/collapsed/:categoryId", r.settingsController.Collapsed)
				settings.POST("/collapsed/:categoryId", r.settingsController.ToggleCollapsed)
			}
		}

		if r.reminderController != nil {
			reminder := v1.Group("/reminder")
			{
				reminder.GET("", r.reminderController.Get)
				reminder.PUT("", r.reminderController.Schedule)
				reminder.DELETE("", r.reminderController.Cancel)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
