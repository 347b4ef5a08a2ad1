// Package repository provides read access to the teams table.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/courtside/nba-stats/internal/failure"
	"github.com/courtside/nba-stats/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// List returns every team sorted by the given ordering.
	List(ctx context.Context, ordering model.Ordering) ([]model.Team, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// List returns every team sorted by the given ordering.
func (r *repository) List(ctx context.Context, ordering model.Ordering) ([]model.Team, error) {
	r.logger.Debugw("List teams called", "ordering", ordering.String())

	query := r.db.WithContext(ctx).Model(&model.Team{})
	for _, term := range ordering {
		query = query.Order(clause.OrderByColumn{
			Column: clause.Column{Name: term.Column},
			Desc:   term.Desc,
		})
	}

	var teams []model.Team
	if err := query.Find(&teams).Error; err != nil {
		r.logger.Errorw("List teams database error", "error", err)
		return nil, failure.FromDB("teams.list", err)
	}

	if teams == nil {
		teams = []model.Team{}
	}

	r.logger.Debugw("List teams completed", "count", len(teams))
	return teams, nil
}
