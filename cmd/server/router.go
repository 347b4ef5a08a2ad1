package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	appConfig "github.com/courtside/nba-stats/internal/config"
	"github.com/courtside/nba-stats/internal/health"
	"github.com/courtside/nba-stats/internal/middleware"
	"github.com/courtside/nba-stats/internal/page"
	"github.com/courtside/nba-stats/internal/render"
	shotRouter "github.com/courtside/nba-stats/internal/shot/router"
	teamModel "github.com/courtside/nba-stats/internal/team/model"
	teamRouter "github.com/courtside/nba-stats/internal/team/router"
)

// newRouter wires middleware and every route of the application.
func newRouter(cfg appConfig.Config, db *gorm.DB, renderer render.Renderer, sugar *zap.SugaredLogger) (*gin.Engine, error) {
	ordering, err := teamModel.OrderingFor(cfg.Query.TeamsOrdering)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(middleware.Recovery(sugar))
	r.Use(middleware.Logger(sugar))
	r.Use(middleware.Secure(cfg.Web))

	r.Static("/static", cfg.Web.StaticDir)

	page.RegisterRoutes(r, renderer, sugar)
	teamRouter.RegisterRoutes(r, db, renderer, ordering, cfg.Query.Timeout, sugar)
	shotRouter.RegisterRoutes(r, db, renderer, cfg.Query.PlayerName, cfg.Query.Timeout, sugar)
	health.RegisterRoutes(r, db, health.DefaultTimeout, sugar)

	return r, nil
}
