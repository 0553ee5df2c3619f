package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// contextKey is used for values stored on both the Gin and the request context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerKey    = contextKey("logger")
	requestIDKey = contextKey("requestID")
)

// GetRequestID returns the request ID assigned by StructuredLoggingMiddleware, if any.
func GetRequestID(ctx context.Context) (string, bool) {
	if ginCtx, ok := ctx.(*gin.Context); ok {
		ctx = ginCtx.Request.Context()
	}
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok && id != ""
}
