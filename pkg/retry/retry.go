// Package retry retries an operation with exponential backoff while its
// error matches a known transient pattern.
package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"
)

// jitterFraction spreads each wait by up to ±10%.
const jitterFraction = 0.1

// Config holds retry strategy configuration.
type Config struct {
	// MaxAttempts counts the first attempt.
	MaxAttempts int
	// InitialDelay is the wait after the first failure.
	InitialDelay time.Duration
	// MaxDelay caps every wait.
	MaxDelay time.Duration
	// Multiplier grows the wait after each failure.
	Multiplier float64
	// RetryableErrors are case-insensitive substrings of errors worth
	// retrying. An empty list retries every error.
	RetryableErrors []string
	// OnRetry, if set, is called after a failed attempt and before waiting.
	OnRetry func(attempt int, err error, delay time.Duration)
}

// PostgresConfig returns the settings used when connecting to PostgreSQL.
func PostgresConfig() Config {
	return Config{
		MaxAttempts:  5,
		InitialDelay: time.Second,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
		RetryableErrors: []string{
			"connection refused",
			"connection reset",
			"connection timed out",
			"i/o timeout",
			"server closed the connection",
			"too many connections",
			"database system is starting up",
			"no connection could be made",
			"network is unreachable",
			"dial tcp",
		},
	}
}

// DoWithResult calls fn until it succeeds, returns a non-retryable error,
// runs out of attempts or ctx ends. The last error is returned on failure.
func DoWithResult[T any](ctx context.Context, cfg Config, fn func() (T, error)) (T, error) {
	var zero T
	if cfg.MaxAttempts <= 0 {
		return zero, fmt.Errorf("MaxAttempts must be greater than 0")
	}

	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !IsRetryableError(err, cfg) || attempt == cfg.MaxAttempts {
			break
		}

		delay := cfg.delay(attempt)
		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, err, delay)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}

	return zero, lastErr
}

// IsRetryableError reports whether err matches one of cfg.RetryableErrors.
func IsRetryableError(err error, cfg Config) bool {
	if err == nil {
		return false
	}
	if len(cfg.RetryableErrors) == 0 {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range cfg.RetryableErrors {
		if strings.Contains(msg, strings.ToLower(pattern)) {
			return true
		}
	}
	return false
}

// delay returns the jittered wait after the given failed attempt (1-based).
func (c Config) delay(attempt int) time.Duration {
	d := float64(c.InitialDelay) * math.Pow(c.Multiplier, float64(attempt-1))
	if d > float64(c.MaxDelay) {
		d = float64(c.MaxDelay)
	}
	//nolint:gosec // jitter needs no cryptographic randomness
	d += d * jitterFraction * (rand.Float64()*2 - 1)
	return time.Duration(d)
}
