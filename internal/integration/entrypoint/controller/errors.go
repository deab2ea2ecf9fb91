package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/inventory-tracker/backend/internal/application/usecase/inventory"
	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
	"github.com/inventory-tracker/backend/internal/integration/entrypoint/dto"
)

// handleError maps domain errors to HTTP responses.
func handleError(ctx *gin.Context, err error) {
	if errors.Is(err, inventory.ErrNotReady) {
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "Inventory is still loading",
			Code:  string(domainerror.ErrCodeNotReady),
		})
		return
	}

	var setErr *domainerror.SettingsError
	if errors.As(err, &setErr) {
		statusCode := getStatusCodeForSettingsError(setErr.Code)
		if statusCode == http.StatusInternalServerError {
			slog.ErrorContext(ctx.Request.Context(), "Settings request failed", "error", err)
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: setErr.Message,
			Code:  string(setErr.Code),
		})
		return
	}

	if code, ok := domainerror.CodeOf(err); ok {
		message := err.Error()
		var invErr *domainerror.InventoryError
		if errors.As(err, &invErr) {
			message = invErr.Message
		}
		statusCode := getStatusCodeForInventoryError(code)
		if statusCode >= http.StatusInternalServerError {
			slog.ErrorContext(ctx.Request.Context(), "Inventory request failed", "error", err)
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: message,
			Code:  string(code),
		})
		return
	}

	// Generic server error
	slog.ErrorContext(ctx.Request.Context(), "Request failed", "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForInventoryError maps inventory error codes to HTTP status codes.
func getStatusCodeForInventoryError(code domainerror.InventoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidName,
		domainerror.ErrCodeQuantityOutOfBounds,
		domainerror.ErrCodeInvalidID,
		domainerror.ErrCodeMissingFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeCategoryNotFound,
		domainerror.ErrCodeItemNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDuplicateName,
		domainerror.ErrCodeCategoryNotEmpty:
		return http.StatusConflict
	case domainerror.ErrCodeStorageUnavailable,
		domainerror.ErrCodeNotReady:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForSettingsError maps settings error codes to HTTP status codes.
func getStatusCodeForSettingsError(code domainerror.SettingsErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidTheme,
		domainerror.ErrCodeInvalidReminder:
		return http.StatusBadRequest
	case domainerror.ErrCodeReminderNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// parseID reads a positive integer path parameter.
func parseID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " format",
			Code:  string(domainerror.ErrCodeInvalidID),
		})
		return 0, false
	}
	return id, true
}

// bindJSON decodes the request body into req, answering 400 on failure.
func bindJSON(ctx *gin.Context, req any) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingFields),
			Details: err.Error(),
		})
		return false
	}
	return true
}
