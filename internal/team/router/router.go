// Package router provides team module routes registration.
package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/courtside/nba-stats/internal/render"
	"github.com/courtside/nba-stats/internal/team/handler"
	"github.com/courtside/nba-stats/internal/team/model"
	"github.com/courtside/nba-stats/internal/team/repository"
	"github.com/courtside/nba-stats/internal/team/service"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(
	r gin.IRouter,
	db *gorm.DB,
	renderer render.Renderer,
	ordering model.Ordering,
	timeout time.Duration,
	logger *zap.SugaredLogger,
) {
	repo := repository.New(db, logger)
	svc := service.New(repo, ordering, timeout, logger)
	h := handler.New(svc, renderer, logger)

	r.GET("/teams", h.ListTeams)
}
