// Package handler provides the HTTP handler for the player shots page.
package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/courtside/nba-stats/internal/render"
	"github.com/courtside/nba-stats/internal/shot/model"
	"github.com/courtside/nba-stats/internal/shot/service"
)

const playerPageTemplate = "player_page"

// Handler handles HTTP requests for shot pages.
type Handler struct {
	service  service.Service
	renderer render.Renderer
	logger   *zap.SugaredLogger
}

// New creates a new shot handler instance.
func New(svc service.Service, renderer render.Renderer, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, renderer: renderer, logger: logger}
}

// ListShots handles GET /shots.
func (h *Handler) ListShots(c *gin.Context) {
	shots, err := h.service.ListPlayerShots(c.Request.Context())
	if err != nil {
		render.Abort(c, h.logger, "error listing player shots", err)
		return
	}

	data := gin.H{
		"player_shots": shots,
		"player_name":  h.service.PlayerName(),
		"summary":      model.Summarize(shots),
	}
	if err := render.HTML(c, h.renderer, playerPageTemplate, data); err != nil {
		render.Abort(c, h.logger, "error rendering player page", err)
	}
}
