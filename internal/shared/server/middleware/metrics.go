package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"careerai-backend/internal/shared/metrics"
)

// Metrics records request duration by route template so path ids do not
// explode label cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
