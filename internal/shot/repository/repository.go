// Package repository provides read access to the player_shots table.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/courtside/nba-stats/internal/failure"
	"github.com/courtside/nba-stats/internal/shot/model"
)

// Repository defines the interface for shot data access operations.
type Repository interface {
	// ListByPlayer returns every shot taken by the named player.
	ListByPlayer(ctx context.Context, playerName string) ([]model.PlayerShot, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new shot repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// ListByPlayer returns every shot whose player_name equals playerName,
// in game order.
func (r *repository) ListByPlayer(ctx context.Context, playerName string) ([]model.PlayerShot, error) {
	r.logger.Debugw("ListByPlayer called", "player_name", playerName)

	var shots []model.PlayerShot
	err := r.db.WithContext(ctx).
		Where("player_name = ?", playerName).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "game_date"}}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "period"}}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "minutes_remaining"}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "seconds_remaining"}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "shot_id"}}).
		Find(&shots).Error
	if err != nil {
		r.logger.Errorw("ListByPlayer database error", "error", err, "player_name", playerName)
		return nil, failure.FromDB("shots.list", err)
	}

	if shots == nil {
		shots = []model.PlayerShot{}
	}

	r.logger.Debugw("ListByPlayer completed", "player_name", playerName, "count", len(shots))
	return shots, nil
}
