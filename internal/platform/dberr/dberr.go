// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// Both supported engines are classified: SQLite (modernc) extended result
// codes and PostgreSQL SQLSTATE codes.
package dberr

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/taibuivan/bookstore/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// Already classified upstream.
	if apperr.IsAppError(err) {
		return err
	}

	switch {
	case IsNotFound(err):
		return ErrNotFound
	case IsForeignKeyViolation(err):
		return apperr.Unprocessable("Referenced resource does not exist").WithCause(err)
	case IsUniqueViolation(err):
		return apperr.Conflict("Resource already exists").WithCause(err)
	case IsCheckViolation(err):
		return apperr.Unprocessable("Value violates a data constraint").WithCause(err)
	}

	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}

// IsNotFound reports whether err means the query matched no row.
func IsNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

// IsForeignKeyViolation reports whether err is a referential integrity failure,
// either a dangling reference on write or a restricted parent on delete.
func IsForeignKeyViolation(err error) bool {
	return matches(err, pgerrcode.ForeignKeyViolation, sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY, "FOREIGN KEY constraint failed")
}

// IsUniqueViolation reports whether err is a unique or primary key collision.
func IsUniqueViolation(err error) bool {
	return matches(err, pgerrcode.UniqueViolation, sqlite3.SQLITE_CONSTRAINT_UNIQUE, "UNIQUE constraint failed") ||
		matches(err, pgerrcode.UniqueViolation, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, "UNIQUE constraint failed")
}

// IsCheckViolation reports whether err is a CHECK constraint failure.
func IsCheckViolation(err error) bool {
	return matches(err, pgerrcode.CheckViolation, sqlite3.SQLITE_CONSTRAINT_CHECK, "CHECK constraint failed")
}

// matches checks err against a PostgreSQL SQLSTATE and a SQLite extended code.
// The message fallback covers drivers that only surface the primary code.
func matches(err error, pgCode string, sqliteCode int, sqliteMessage string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgCode
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		if liteErr.Code() == sqliteCode {
			return true
		}
		return liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT &&
			strings.Contains(liteErr.Error(), sqliteMessage)
	}

	return false
}
