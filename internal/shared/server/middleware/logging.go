package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"careerai-backend/internal/shared/telemetry"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       c.FullPath(),
			"status":      c.Writer.Status(),
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		if externalID := ExternalIDFromContext(c); externalID != "" {
			fields["external_id"] = externalID
		}
		if letterID := c.GetString("coverLetterId"); letterID != "" {
			fields["cover_letter_id"] = letterID
		}
		telemetry.Info("request.complete", fields)
	}
}
