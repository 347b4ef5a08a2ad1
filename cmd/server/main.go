// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/courtside/nba-stats/internal/assets"
	appConfig "github.com/courtside/nba-stats/internal/config"
	dbconfig "github.com/courtside/nba-stats/internal/database/config"
	"github.com/courtside/nba-stats/internal/database/database"
	"github.com/courtside/nba-stats/internal/database/migrate"
	"github.com/courtside/nba-stats/internal/render"
	"github.com/courtside/nba-stats/pkg/logger"
)

// pageTemplates must all be present in the templates directory.
var pageTemplates = []string{"index", "teams", "player_page"}

func main() {
	if err := appConfig.LoadDotEnv(); err != nil {
		log.Fatalf("failed to load .env: %v", err)
	}

	cfg := appConfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	sugar, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = sugar.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, sugar); err != nil {
		sugar.Errorw("server stopped with error", "error", err)
		_ = sugar.Sync()
		stop()
		os.Exit(1)
	}
}

// run binds the configured address and serves until ctx ends.
func run(ctx context.Context, cfg appConfig.Config, sugar *zap.SugaredLogger) error {
	ln, err := net.Listen("tcp", cfg.Server.GetAddress())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Server.GetAddress(), err)
	}
	return serve(ctx, cfg, sugar, ln)
}

// serve builds the application and serves it on ln until ctx ends, then
// shuts down gracefully. The database being unreachable does not stop it:
// pages that need data answer with the failure text until it comes back.
func serve(ctx context.Context, cfg appConfig.Config, sugar *zap.SugaredLogger, ln net.Listener) error {
	gin.SetMode(cfg.GinMode)

	dbCfg := dbconfig.LoadConfigFromEnv()
	dbOpts := database.OptionsFromEnv(sugar)

	db, err := database.Open(dbCfg, dbOpts)
	if err != nil {
		_ = ln.Close()
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			sugar.Warnw("failed to close database", "error", err)
		}
	}()

	if dbconfig.AutoMigrate() {
		if err := connectAndMigrate(ctx, db, dbCfg, dbOpts, sugar); err != nil {
			_ = ln.Close()
			return err
		}
	} else {
		go connect(ctx, db, dbCfg, dbOpts, sugar)
	}

	if cfg.Web.CompileStyles {
		n, err := assets.NewCompiler(sugar).Compile(cfg.Web.ResourcesDir, cfg.Web.StaticDir)
		if err != nil {
			_ = ln.Close()
			return err
		}
		sugar.Infow("stylesheets compiled", "count", n, "dest", cfg.Web.StaticDir)
	}

	renderer, err := render.New(os.DirFS(cfg.Web.TemplatesDir))
	if err != nil {
		_ = ln.Close()
		return err
	}
	for _, name := range pageTemplates {
		if !renderer.Has(name) {
			_ = ln.Close()
			return fmt.Errorf("template %q not found in %s", name, cfg.Web.TemplatesDir)
		}
	}

	router, err := newRouter(cfg, db, renderer, sugar)
	if err != nil {
		_ = ln.Close()
		return err
	}

	srv := &http.Server{
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		sugar.Infow("server listening", "addr", ln.Addr().String(), "teams_ordering", cfg.Query.TeamsOrdering, "player", cfg.Query.PlayerName)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		sugar.Infow("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	sugar.Infow("server stopped")
	return nil
}

// connect waits for the database and only warns when it stays unreachable.
func connect(ctx context.Context, db *gorm.DB, cfg dbconfig.Config, opts database.Options, sugar *zap.SugaredLogger) bool {
	if _, err := database.Connect(ctx, db, cfg, opts); err != nil {
		sugar.Warnw("database unreachable, pages needing data will fail until it recovers", "error", err)
		return false
	}
	return true
}

// connectAndMigrate applies migrations once the database answers. An
// unreachable database skips them with a warning; a failing migration is fatal.
func connectAndMigrate(ctx context.Context, db *gorm.DB, cfg dbconfig.Config, opts database.Options, sugar *zap.SugaredLogger) error {
	if !connect(ctx, db, cfg, opts, sugar) {
		sugar.Warnw("migrations skipped", "path", dbconfig.GetMigrationsPath())
		return nil
	}
	return migrate.Migrate(db, dbconfig.GetMigrationsPath(), sugar)
}
