// Package router provides shot module routes registration.
package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/courtside/nba-stats/internal/render"
	"github.com/courtside/nba-stats/internal/shot/handler"
	"github.com/courtside/nba-stats/internal/shot/repository"
	"github.com/courtside/nba-stats/internal/shot/service"
)

// RegisterRoutes registers shot module routes.
func RegisterRoutes(
	r gin.IRouter,
	db *gorm.DB,
	renderer render.Renderer,
	playerName string,
	timeout time.Duration,
	logger *zap.SugaredLogger,
) {
	repo := repository.New(db, logger)
	svc := service.New(repo, playerName, timeout, logger)
	h := handler.New(svc, renderer, logger)

	r.GET("/shots", h.ListShots)
}
