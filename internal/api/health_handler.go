package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/tutormarket/internal/core"
)

// HealthHandler reports whether MongoDB answers a ping.
type HealthHandler struct {
	healthService core.HealthService
	logger        *zap.Logger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(hs core.HealthService, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{healthService: hs, logger: logger}
}

// Check handles GET /health.
func (h *HealthHandler) Check(c *gin.Context) {
	err := h.healthService.Check(c.Request.Context())
	timestamp := time.Now().UTC().Format(time.RFC3339)
	if err != nil {
		h.logger.Warn("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:    "unhealthy",
			MongoDB:   "disconnected",
			Error:     err.Error(),
			Timestamp: timestamp,
		})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		MongoDB:   "connected",
		Timestamp: timestamp,
	})
}

// Root handles GET /.
func Root(c *gin.Context) {
	c.String(http.StatusOK, "Hello World!")
}
