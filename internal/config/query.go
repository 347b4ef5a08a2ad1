package config

import (
	"fmt"
	"strings"
	"time"

	teamModel "github.com/courtside/nba-stats/internal/team/model"
)

// QueryConfig holds the values that shape the page queries.
type QueryConfig struct {
	// TeamsOrdering selects the /teams sort rule (standings, pct).
	TeamsOrdering string
	// PlayerName is the /shots filter.
	PlayerName string
	// Timeout bounds a single page query.
	Timeout time.Duration
}

// LoadQueryConfigFromEnv loads query configuration from environment variables.
func LoadQueryConfigFromEnv() QueryConfig {
	return QueryConfig{
		TeamsOrdering: strings.ToLower(GetEnv("TEAMS_ORDERING", teamModel.OrderingStandings)),
		PlayerName:    GetEnv("SHOTS_PLAYER_NAME", "James Harden"),
		Timeout:       GetEnvDuration("QUERY_TIMEOUT", 10*time.Second),
	}
}

// Validate validates query configuration.
func (c QueryConfig) Validate() error {
	if _, err := teamModel.OrderingFor(c.TeamsOrdering); err != nil {
		return fmt.Errorf("invalid TEAMS_ORDERING: %w", err)
	}
	if strings.TrimSpace(c.PlayerName) == "" {
		return fmt.Errorf("SHOTS_PLAYER_NAME must not be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("QUERY_TIMEOUT must be greater than 0")
	}
	return nil
}
