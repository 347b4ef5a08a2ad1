// Package database provides the shared PostgreSQL handle used by every repository.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/courtside/nba-stats/internal/database/config"
	"github.com/courtside/nba-stats/internal/database/pool"
	"github.com/courtside/nba-stats/pkg/retry"
)

// connectBudget bounds the whole connect-with-retry sequence.
const connectBudget = 2 * time.Minute

// Options tunes how a connection is established.
type Options struct {
	Retry  retry.Config
	Pool   pool.Config
	Logger *zap.SugaredLogger
}

// OptionsFromEnv builds Options from environment variables.
func OptionsFromEnv(logger *zap.SugaredLogger) Options {
	return Options{
		Retry:  config.LoadRetryConfigFromEnv(),
		Pool:   config.LoadPoolConfigFromEnv(),
		Logger: logger,
	}
}

func (o Options) logger() *zap.SugaredLogger {
	if o.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return o.Logger
}

// Open prepares a PostgreSQL handle and its pool without contacting the
// server. Connections are made on first use, so an unreachable database
// surfaces as a query error instead of a startup failure.
func Open(cfg config.Config, opts Options) (*gorm.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database config: %w", err)
	}

	db, err := gorm.Open(postgres.Open(config.BuildDSN(cfg)), &gorm.Config{
		Logger:               NewGormLogger(opts.logger()),
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, config.SanitizeError(err)
	}

	if err := pool.SetupConnectionPool(db, opts.Pool); err != nil {
		_ = Close(db)
		return nil, fmt.Errorf("failed to setup connection pool: %w", err)
	}
	return db, nil
}

// Connect pings the server until it answers, retrying transient failures.
// Each failed attempt is logged with the password masked. On success the
// pool statistics are returned.
func Connect(ctx context.Context, db *gorm.DB, cfg config.Config, opts Options) (*sql.DBStats, error) {
	logger := opts.logger()

	ctx, cancel := context.WithTimeout(ctx, connectBudget)
	defer cancel()

	retryCfg := opts.Retry
	retryCfg.OnRetry = func(attempt int, err error, delay time.Duration) {
		logger.Warnw("database connection attempt failed",
			"attempt", attempt,
			"host", cfg.Host,
			"dbname", cfg.DBName,
			"retry_in", delay,
			"error", config.SanitizeError(err),
		)
	}

	stats, err := retry.DoWithResult(ctx, retryCfg, func() (*sql.DBStats, error) {
		if err := HealthCheck(ctx, db); err != nil {
			return nil, err
		}
		return GetStats(db)
	})
	if err != nil {
		return nil, config.SanitizeError(err)
	}

	logger.Infow("database connected",
		"host", cfg.Host,
		"dbname", cfg.DBName,
		"charset", cfg.Charset,
		"max_open_conns", stats.MaxOpenConnections,
		"open_conns", stats.OpenConnections,
	)
	return stats, nil
}

// HealthCheck verifies database connection availability.
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close gracefully closes database connection.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// GetStats returns database connection pool statistics.
func GetStats(db *gorm.DB) (*sql.DBStats, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	stats := sqlDB.Stats()
	return &stats, nil
}
