// Package service provides the player shots page logic.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/courtside/nba-stats/internal/shot/model"
	"github.com/courtside/nba-stats/internal/shot/repository"
)

// Service defines the interface for shot business logic operations.
type Service interface {
	// ListPlayerShots returns every shot of the configured player.
	ListPlayerShots(ctx context.Context) ([]model.PlayerShot, error)
	// PlayerName returns the configured player filter.
	PlayerName() string
}

type service struct {
	repo       repository.Repository
	playerName string
	timeout    time.Duration
	logger     *zap.SugaredLogger
}

// New creates a new shot service instance bound to one player.
func New(repo repository.Repository, playerName string, timeout time.Duration, logger *zap.SugaredLogger) Service {
	return &service{
		repo:       repo,
		playerName: playerName,
		timeout:    timeout,
		logger:     logger,
	}
}

// PlayerName returns the configured player filter.
func (s *service) PlayerName() string {
	return s.playerName
}

// ListPlayerShots returns every shot of the configured player.
func (s *service) ListPlayerShots(ctx context.Context) ([]model.PlayerShot, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	shots, err := s.repo.ListByPlayer(ctx, s.playerName)
	if err != nil {
		s.logger.Errorw("ListPlayerShots failed", "error", err, "player_name", s.playerName)
		return nil, err
	}

	s.logger.Infow("ListPlayerShots completed", "player_name", s.playerName, "count", len(shots))
	return shots, nil
}
