package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	teamModel "github.com/courtside/nba-stats/internal/team/model"
)

// setupAndRestoreEnv saves original env vars and sets new ones for testing.
func setupAndRestoreEnv(t *testing.T, envVars map[string]string) func() {
	t.Helper()
	originalEnv := make(map[string]string)
	envKeys := []string{
		"SERVER_PORT", "LOG_LEVEL", "GIN_MODE",
		"TEAMS_ORDERING", "SHOTS_PLAYER_NAME", "WEB_TEMPLATES_DIR",
	}
	for _, key := range envKeys {
		originalEnv[key] = os.Getenv(key)
		os.Unsetenv(key)
	}
	for key, value := range envVars {
		os.Setenv(key, value)
	}
	return func() {
		for key := range envVars {
			os.Unsetenv(key)
		}
		for key, value := range originalEnv {
			if value != "" {
				os.Setenv(key, value)
			}
		}
	}
}

func validConfig() Config {
	return Config{
		Server: ServerConfig{
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logger: LoggerConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
		Web: WebConfig{
			TemplatesDir:  "web/templates",
			ResourcesDir:  "web/resources",
			StaticDir:     "web/static",
			CompileStyles: true,
		},
		Query: QueryConfig{
			TeamsOrdering: teamModel.OrderingStandings,
			PlayerName:    "James Harden",
			Timeout:       10 * time.Second,
		},
		GinMode: "release",
	}
}

func TestLoadFromEnv_DefaultValues(t *testing.T) {
	restore := setupAndRestoreEnv(t, map[string]string{})
	defer restore()

	cfg := LoadFromEnv()
	assert.Equal(t, ":4400", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, teamModel.OrderingStandings, cfg.Query.TeamsOrdering)
	assert.Equal(t, "James Harden", cfg.Query.PlayerName)
	assert.Equal(t, "web/templates", cfg.Web.TemplatesDir)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv_CustomValues(t *testing.T) {
	restore := setupAndRestoreEnv(t, map[string]string{
		"SERVER_PORT":       ":9090",
		"LOG_LEVEL":         "debug",
		"GIN_MODE":          "debug",
		"TEAMS_ORDERING":    "PCT",
		"SHOTS_PLAYER_NAME": "Stephen Curry",
		"WEB_TEMPLATES_DIR": "/srv/templates",
	})
	defer restore()

	cfg := LoadFromEnv()
	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, teamModel.OrderingPct, cfg.Query.TeamsOrdering)
	assert.Equal(t, "Stephen Curry", cfg.Query.PlayerName)
	assert.Equal(t, "/srv/templates", cfg.Web.TemplatesDir)
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("invalid server config", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.ReadTimeout = 0
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "server config validation failed")
	})

	t.Run("invalid logger config", func(t *testing.T) {
		cfg := validConfig()
		cfg.Logger.Level = "invalid"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "logger config validation failed")
	})

	t.Run("invalid web config", func(t *testing.T) {
		cfg := validConfig()
		cfg.Web.TemplatesDir = ""
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "web config validation failed")
	})

	t.Run("invalid query config", func(t *testing.T) {
		cfg := validConfig()
		cfg.Query.TeamsOrdering = "alphabetical"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "query config validation failed")
	})

	t.Run("invalid gin mode", func(t *testing.T) {
		cfg := validConfig()
		cfg.GinMode = "invalid"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid GIN_MODE")
	})

	t.Run("valid gin modes", func(t *testing.T) {
		for _, mode := range []string{"debug", "release", "test"} {
			cfg := validConfig()
			cfg.GinMode = mode
			assert.NoError(t, cfg.Validate(), "mode %s should be valid", mode)
		}
	})
}
