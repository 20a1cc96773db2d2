package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GunarsK-portfolio/social-graph-service/pkg/health"
)

// HealthHandler reports process health backed by the check aggregator.
type HealthHandler struct {
	agg *health.Aggregator
}

// NewHealthHandler creates a new HealthHandler instance.
func NewHealthHandler(agg *health.Aggregator) *HealthHandler {
	return &HealthHandler{agg: agg}
}

// Check godoc
// @Summary Health check
// @Description Check if service and its dependencies are healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	results, healthy := h.agg.Run(c.Request.Context())

	status := http.StatusOK
	label := "healthy"
	if !healthy {
		status = http.StatusServiceUnavailable
		label = "unhealthy"
	}
	c.JSON(status, gin.H{
		"status": label,
		"checks": results,
	})
}
