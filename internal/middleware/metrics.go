package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/classcore/results-api/internal/service"
)

// Metrics observes one request sample per response on the shared
// MetricsService. Requests that never match a route collapse into a single
// label value so arbitrary paths cannot grow metric cardinality.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
