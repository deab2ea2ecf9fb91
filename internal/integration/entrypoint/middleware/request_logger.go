// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request identifier in both directions.
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// RequestLogger returns a Gin middleware that tags every request with an
// identifier and logs it once the handler chain has finished.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"duration", time.Since(start),
			"request_id", requestID,
		}

		switch {
		case status >= 500:
			slog.ErrorContext(c.Request.Context(), "HTTP request", attrs...)
		case status >= 400:
			slog.WarnContext(c.Request.Context(), "HTTP request", attrs...)
		default:
			slog.InfoContext(c.Request.Context(), "HTTP request", attrs...)
		}
	}
}

// GetRequestID returns the identifier assigned by RequestLogger.
func GetRequestID(c *gin.Context) (string, bool) {
	value, exists := c.Get(requestIDKey)
	if !exists {
		return "", false
	}
	requestID, ok := value.(string)
	return requestID, ok
}
