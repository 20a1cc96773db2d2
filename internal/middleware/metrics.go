// Package middleware contains HTTP middleware shared by both services.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GunarsK-portfolio/social-graph-service/pkg/metrics"
)

// Metrics records request counts and latency for every handled route.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
