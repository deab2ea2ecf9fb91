package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inventory-tracker/backend/internal/application/usecase/settings"
	"github.com/inventory-tracker/backend/internal/integration/entrypoint/dto"
)

// ReminderController handles the weekly restock reminder endpoints.
type ReminderController struct {
	getUseCase      *settings.GetReminderUseCase
	scheduleUseCase *settings.ScheduleReminderUseCase
	cancelUseCase   *settings.CancelReminderUseCase
}

// NewReminderController creates a new reminder controller instance.
func NewReminderController(
	getUseCase *settings.GetReminderUseCase,
	scheduleUseCase *settings.ScheduleReminderUseCase,
	cancelUseCase *settings.CancelReminderUseCase,
) *ReminderController {
	return &ReminderController{
		getUseCase:      getUseCase,
		scheduleUseCase: scheduleUseCase,
		cancelUseCase:   cancelUseCase,
	}
}

// Get handles GET /reminder requests.
func (c *ReminderController) Get(ctx *gin.Context) {
	reminder, err := c.getUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReminderResponse(*reminder))
}

// Schedule handles PUT /reminder requests.
func (c *ReminderController) Schedule(ctx *gin.Context) {
	var req dto.ScheduleReminderRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.scheduleUseCase.Execute(ctx.Request.Context(), settings.ScheduleReminderInput{
		Weekday: *req.Weekday,
		Hour:    *req.Hour,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReminderResponse(output.Reminder))
}

// Cancel handles DELETE /reminder requests.
func (c *ReminderController) Cancel(ctx *gin.Context) {
	if err := c.cancelUseCase.Execute(ctx.Request.Context()); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
