// Package failure classifies request failures so that logs keep the cause
// while clients always see the same message.
package failure

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/courtside/nba-stats/pkg/retry"
)

// Message is the only text returned to clients when a page cannot be produced.
const Message = "An error occurred..."

// Kind is the cause class of a failure.
type Kind string

const (
	// KindConnectivity means the database could not be reached or the connection broke.
	KindConnectivity Kind = "connectivity"
	// KindQuery means the database rejected or failed the statement.
	KindQuery Kind = "query"
	// KindRendering means the page template failed to execute.
	KindRendering Kind = "rendering"
	// KindUnknown is used for errors that carry no classification.
	KindUnknown Kind = "unknown"
)

// Error is a classified failure.
type Error struct {
	Kind Kind
	// Op names the operation that failed, e.g. "teams.list".
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s failure: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New wraps err with an explicit kind. It returns nil for a nil err.
func New(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// FromDB wraps a database error, classifying it as connectivity or query.
func FromDB(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: ClassifyDB(err), Op: op, Err: err}
}

// Rendering wraps a template error.
func Rendering(op string, err error) error {
	return New(KindRendering, op, err)
}

// connectivityPatterns extends the Postgres retryable errors with the
// database/sql messages for a closed or broken pool.
var connectivityPatterns = func() retry.Config {
	cfg := retry.PostgresConfig()
	cfg.RetryableErrors = append(cfg.RetryableErrors,
		"database is closed",
		"bad connection",
		"unexpected eof",
	)
	return cfg
}()

// ClassifyDB decides whether a database error is a connectivity or a query problem.
func ClassifyDB(err error) Kind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Class 08 is "connection exception"; 57P0x are shutdown/unavailable.
		if len(pgErr.Code) >= 2 && pgErr.Code[:2] == "08" {
			return KindConnectivity
		}
		if pgErr.Code == "57P01" || pgErr.Code == "57P02" || pgErr.Code == "57P03" {
			return KindConnectivity
		}
		return KindQuery
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return KindConnectivity
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindConnectivity
	}

	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) {
		return KindConnectivity
	}

	if retry.IsRetryableError(err, connectivityPatterns) {
		return KindConnectivity
	}

	return KindQuery
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}

// OpOf returns the operation of the first *Error in err's chain.
func OpOf(err error) string {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Op
	}
	return ""
}
