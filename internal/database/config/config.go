// Package config provides database configuration management.
package config

import (
	"fmt"
	"regexp"
	"strings"

	appConfig "github.com/courtside/nba-stats/internal/config"
	"github.com/courtside/nba-stats/internal/database/pool"
	"github.com/courtside/nba-stats/pkg/retry"
)

// Config holds database connection configuration.
type Config struct {
	Host     string
	User     string
	Password string
	DBName   string
	Port     string
	SSLMode  string
	TimeZone string
	// Charset is sent to the server as client_encoding.
	Charset string
}

// BuildDSN constructs PostgreSQL DSN string from configuration.
func BuildDSN(cfg Config) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s client_encoding=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.DBName, cfg.Port, cfg.SSLMode, cfg.TimeZone, cfg.Charset)
}

// LoadConfigFromEnv loads database configuration from environment variables.
func LoadConfigFromEnv() Config {
	return Config{
		Host:     appConfig.GetEnv("DB_HOST", "localhost"),
		User:     appConfig.GetEnv("DB_USER", "postgres"),
		Password: appConfig.GetEnv("DB_PASSWORD", "postgres"),
		DBName:   appConfig.GetEnv("DB_NAME", "nba"),
		Port:     appConfig.GetEnv("DB_PORT", "5432"),
		SSLMode:  appConfig.GetEnv("DB_SSLMODE", "disable"),
		TimeZone: appConfig.GetEnv("DB_TIMEZONE", "UTC"),
		Charset:  NormalizeCharset(appConfig.GetEnv("DB_CHARSET", "UTF8")),
	}
}

// NormalizeCharset maps common spellings ("utf8", "utf-8") to the
// PostgreSQL encoding name.
func NormalizeCharset(charset string) string {
	c := strings.ToUpper(strings.TrimSpace(charset))
	c = strings.ReplaceAll(c, "-", "")
	if c == "" {
		return "UTF8"
	}
	return c
}

// Validate checks that the connection parameters are usable.
func (c Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("DB_HOST must not be empty")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME must not be empty")
	}
	if c.Port == "" {
		return fmt.Errorf("DB_PORT must not be empty")
	}
	return nil
}

// passwordPattern matches the password in key=value DSNs (quoted or not)
// and in URL userinfo.
var passwordPattern = regexp.MustCompile("(?i)(password=)('[^']*'|[^\\s`]+)|(://[^:/@\\s]+:)([^@\\s]+)(@)")

// SanitizeError masks the password in error messages. Only the password
// value is touched, so a user name equal to the password stays readable.
func SanitizeError(err error) error {
	if err == nil {
		return nil
	}
	errMsg := passwordPattern.ReplaceAllString(err.Error(), "${1}${3}***${5}")
	return fmt.Errorf("failed to connect to database: %s", errMsg)
}

// LoadRetryConfigFromEnv loads retry configuration from environment variables.
func LoadRetryConfigFromEnv() retry.Config {
	cfg := retry.PostgresConfig()
	cfg.MaxAttempts = appConfig.GetEnvInt("DB_RETRY_MAX_ATTEMPTS", cfg.MaxAttempts)
	cfg.InitialDelay = appConfig.GetEnvDuration("DB_RETRY_INITIAL_DELAY", cfg.InitialDelay)
	cfg.MaxDelay = appConfig.GetEnvDuration("DB_RETRY_MAX_DELAY", cfg.MaxDelay)
	cfg.Multiplier = appConfig.GetEnvFloat("DB_RETRY_MULTIPLIER", cfg.Multiplier)
	return cfg
}

// LoadPoolConfigFromEnv loads connection pool configuration from environment variables.
func LoadPoolConfigFromEnv() pool.Config {
	cfg := pool.DefaultPoolConfig()
	cfg.MaxOpenConns = appConfig.GetEnvInt("DB_MAX_OPEN_CONNS", cfg.MaxOpenConns)
	cfg.MaxIdleConns = appConfig.GetEnvInt("DB_MAX_IDLE_CONNS", cfg.MaxIdleConns)
	cfg.ConnMaxLifetime = appConfig.GetEnvDuration("DB_CONN_MAX_LIFETIME", cfg.ConnMaxLifetime)
	cfg.ConnMaxIdleTime = appConfig.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", cfg.ConnMaxIdleTime)
	return cfg
}

// GetMigrationsPath returns the path to the migrations directory.
func GetMigrationsPath() string {
	return appConfig.GetEnv("MIGRATIONS_PATH", "migrations")
}

// AutoMigrate reports whether migrations should run at startup.
func AutoMigrate() bool {
	return appConfig.GetEnvBool("DB_AUTO_MIGRATE", false)
}
