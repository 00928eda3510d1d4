// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed database operation should be
// retried or abandoned.
type ErrorClassification int

const (
	// Retryable indicates that the failed operation may succeed if attempted
	// again (connection loss, serialization failure, server restart).
	Retryable ErrorClassification = iota

	// NonRetryable indicates that the statement itself is rejected and will
	// keep failing.
	NonRetryable
)

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
// NonRetryable classes:
//   - Class 22: data exceptions
//   - Class 23: integrity constraint violations
//   - Class 42: syntax errors and access rule violations
//
// Every other code, including class 08 (connection), 40 (transaction
// rollback) and 57 (operator intervention), is [Retryable]: keeping an
// operation queued is always safe, dropping it is not.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	return classifyPgCode(pgErr.Code)
}

func classifyPgCode(code string) ErrorClassification {
	switch {
	case pgerrcode.IsDataException(code),
		pgerrcode.IsIntegrityConstraintViolation(code),
		pgerrcode.IsSyntaxErrororAccessRuleViolation(code):
		return NonRetryable
	}
	return Retryable
}

// mapPgError turns a database/sql error from the pgx driver into a
// classified adapter error.
func mapPgError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		detail := fmt.Sprintf("%s (SQLSTATE %s)", pgErr.Message, pgErr.Code)
		if ClassifyPgError(pgErr) == NonRetryable {
			return terminal(pgErr, detail)
		}
		if pgerrcode.IsConnectionException(pgErr.Code) || pgerrcode.IsOperatorIntervention(pgErr.Code) {
			return fmt.Errorf("%w: %w: %s", ErrUnavailable, ErrUnreachable, detail)
		}
		return unavailable(pgErr, detail)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || errors.Is(err, driver.ErrBadConn) {
		return fmt.Errorf("%w: %w: %w", ErrUnavailable, ErrUnreachable, err)
	}

	return mapTransportError(err)
}
