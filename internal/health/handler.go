// Package health provides the liveness endpoint backed by a database ping.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/courtside/nba-stats/internal/database/database"
	"github.com/courtside/nba-stats/internal/failure"
)

// DefaultTimeout bounds the database ping when no timeout is configured.
const DefaultTimeout = 5 * time.Second

const (
	statusOK        = "ok"
	statusUnhealthy = "unhealthy"
)

// Handler handles health check requests.
type Handler struct {
	db      *gorm.DB
	timeout time.Duration
	logger  *zap.SugaredLogger
}

// New creates a new health handler instance.
func New(db *gorm.DB, timeout time.Duration, logger *zap.SugaredLogger) *Handler {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Handler{
		db:      db,
		timeout: timeout,
		logger:  logger,
	}
}

// Response represents health check response.
type Response struct {
	Status string `json:"status"`
}

// Check handles GET /health.
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := database.HealthCheck(ctx, h.db); err != nil {
		err = failure.FromDB("health.ping", err)
		h.logger.Warnw("health check failed", "error", err, "kind", string(failure.KindOf(err)))
		c.JSON(http.StatusServiceUnavailable, Response{Status: statusUnhealthy})
		return
	}

	c.JSON(http.StatusOK, Response{Status: statusOK})
}

// RegisterRoutes registers the health endpoint.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, timeout time.Duration, logger *zap.SugaredLogger) {
	r.GET("/health", New(db, timeout, logger).Check)
}
