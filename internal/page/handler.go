// Package page provides handlers for static pages that need no database access.
package page

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/courtside/nba-stats/internal/render"
)

const indexTemplate = "index"

// Handler serves the landing page.
type Handler struct {
	renderer render.Renderer
	logger   *zap.SugaredLogger
}

// New creates a new page handler instance.
func New(renderer render.Renderer, logger *zap.SugaredLogger) *Handler {
	return &Handler{renderer: renderer, logger: logger}
}

// Index handles GET /.
func (h *Handler) Index(c *gin.Context) {
	if err := render.HTML(c, h.renderer, indexTemplate, nil); err != nil {
		render.Abort(c, h.logger, "error rendering index page", err)
	}
}

// RegisterRoutes registers the landing page route.
func RegisterRoutes(r gin.IRouter, renderer render.Renderer, logger *zap.SugaredLogger) {
	r.GET("/", New(renderer, logger).Index)
}
