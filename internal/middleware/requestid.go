package middleware

import (
	"time"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rinawarp/ollama-bridge/internal/logger"
)

// HeaderRequestID is echoed back on every response.
const HeaderRequestID = "X-Request-ID"

// ContextRequestID is the gin context key holding the request id.
const ContextRequestID = "request_id"

// RequestID echoes the caller's request id or generates one, stamps it on the
// response, and emits one structured log line per request.
func RequestID() gin.HandlerFunc {
	l := logger.Component("http")

	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderRequestID)
		if rid == "" {
			rid = uuid.New().String()
		}
		c.Set(ContextRequestID, rid)
		c.Writer.Header().Set(HeaderRequestID, rid)

		start := time.Now()
		c.Next()

		l.WithFields(log.Fields{
			"event":       "request",
			"rid":         rid,
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("request")
	}
}
