package handlers

import (
	"net/http"

	"github.com/burcum/burcum-api/internal/common/health"
	"github.com/gin-gonic/gin"
)

// HealthHandler exposes the operational endpoints: overall health,
// kubernetes-style readiness and liveness probes, and process gauges.
type HealthHandler struct {
	checker *health.HealthChecker
}

func NewHealthHandler(checker *health.HealthChecker) *HealthHandler {
	return &HealthHandler{
		checker: checker,
	}
}

// Health handles GET /health: store connectivity, goroutine count and
// every registered gauge block (caches, limiters).
func (h *HealthHandler) Health(c *gin.Context) {
	status := h.checker.Check()
	c.JSON(http.StatusOK, status)
}

// Readiness handles GET /health/readiness. Not ready means the store
// cannot serve traffic; the memory backend is always ready.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.checker.IsReady() {
		c.JSON(http.StatusOK, gin.H{"ready": true})
		return
	}

	c.JSON(http.StatusServiceUnavailable, gin.H{"ready": false})
}

// Liveness handles GET /health/liveness.
func (h *HealthHandler) Liveness(c *gin.Context) {
	if h.checker.IsAlive() {
		c.JSON(http.StatusOK, gin.H{"alive": true})
		return
	}

	c.JSON(http.StatusServiceUnavailable, gin.H{"alive": false})
}

// Metrics handles GET /health/metrics: process gauges plus a snapshot
// of each registered component's counters.
func (h *HealthHandler) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"system":     h.checker.GetMetrics(),
		"components": h.checker.StatsSnapshot(),
	})
}
