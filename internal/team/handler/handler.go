// Package handler provides the HTTP handler for the standings page.
package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/courtside/nba-stats/internal/render"
	"github.com/courtside/nba-stats/internal/team/service"
)

const teamsTemplate = "teams"

// Handler handles HTTP requests for team pages.
type Handler struct {
	service  service.Service
	renderer render.Renderer
	logger   *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, renderer render.Renderer, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, renderer: renderer, logger: logger}
}

// ListTeams handles GET /teams.
func (h *Handler) ListTeams(c *gin.Context) {
	teams, err := h.service.ListStandings(c.Request.Context())
	if err != nil {
		render.Abort(c, h.logger, "error listing teams", err)
		return
	}

	if err := render.HTML(c, h.renderer, teamsTemplate, gin.H{"teams": teams}); err != nil {
		render.Abort(c, h.logger, "error rendering teams page", err)
	}
}
