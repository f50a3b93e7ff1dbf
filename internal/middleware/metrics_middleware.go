package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/suryadizhang/mh-scheduler/internal/metrics"
)

// MetricsMiddleware conta requests por método/rota/status. Usa o
// FullPath (rota com :params) para não explodir a cardinalidade.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
