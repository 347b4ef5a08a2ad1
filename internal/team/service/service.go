// Package service provides the standings page logic.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/courtside/nba-stats/internal/team/model"
	"github.com/courtside/nba-stats/internal/team/repository"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// ListStandings returns every team in the configured order.
	ListStandings(ctx context.Context) ([]model.Team, error)
}

type service struct {
	repo     repository.Repository
	ordering model.Ordering
	timeout  time.Duration
	logger   *zap.SugaredLogger
}

// New creates a new team service instance. A zero timeout leaves the
// request context as the only deadline.
func New(repo repository.Repository, ordering model.Ordering, timeout time.Duration, logger *zap.SugaredLogger) Service {
	return &service{
		repo:     repo,
		ordering: ordering,
		timeout:  timeout,
		logger:   logger,
	}
}

// ListStandings returns every team in the configured order.
func (s *service) ListStandings(ctx context.Context) ([]model.Team, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	teams, err := s.repo.List(ctx, s.ordering)
	if err != nil {
		s.logger.Errorw("ListStandings failed", "error", err)
		return nil, err
	}

	s.logger.Infow("ListStandings completed", "count", len(teams), "ordering", s.ordering.String())
	return teams, nil
}
