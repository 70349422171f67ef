// Package health serves the liveness endpoint backed by a database ping.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/octofit_tracker/internal/database"
)

// DefaultTimeout bounds the database ping.
const DefaultTimeout = 5 * time.Second

// Status values reported by Check.
const (
	StatusOK        = "ok"
	StatusUnhealthy = "unhealthy"
)

// Handler handles health check requests.
type Handler struct {
	db      *gorm.DB
	logger  *zap.SugaredLogger
	timeout time.Duration
}

// New creates a health handler pinging db within DefaultTimeout.
func New(db *gorm.DB, logger *zap.SugaredLogger) *Handler {
	return &Handler{db: db, logger: logger, timeout: DefaultTimeout}
}

// Response represents health check response.
type Response struct {
	Status string `json:"status"`
}

// Check handles GET /health.
//
//	@Summary	Service health
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	Response
//	@Failure	503	{object}	Response
//	@Router		/health [get]
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := database.HealthCheck(ctx, h.db); err != nil {
		h.logger.Warnw("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, Response{Status: StatusUnhealthy})
		return
	}

	c.JSON(http.StatusOK, Response{Status: StatusOK})
}

// RegisterRoutes mounts GET /health.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	r.GET("/health", New(db, logger).Check)
}
