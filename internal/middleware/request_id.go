package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/estetica-agenda/internal/alert"
)

const (
	HeaderRequestID    = "X-Request-ID"
	ContextRequestID   = "requestID"
	ContextAlertScope  = "alertScope"
	maxRequestIDLength = 64
)

// RequestID reuses the caller's X-Request-ID or mints one. Alerts are tagged
// with a scope minted for every request, so a caller reusing its
// X-Request-ID never sees alerts raised by an earlier call.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		scope := uuid.NewString()

		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLength {
			id = scope
		}

		c.Set(ContextRequestID, id)
		c.Set(ContextAlertScope, scope)
		c.Writer.Header().Set(HeaderRequestID, id)
		c.Request = c.Request.WithContext(alert.WithRequestID(c.Request.Context(), scope))

		c.Next()
	}
}

func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetString(ContextRequestID)),
		)
	}
}
