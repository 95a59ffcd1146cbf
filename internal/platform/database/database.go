// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package database provides the relational storage handle shared by every repository.

Architecture:

  - One handle, two engines: SQLite (default, single file) and PostgreSQL (via the
    pgx stdlib bridge) both surface as a [*sql.DB].
  - Portable SQL: repositories write `?` placeholders; [DB] rebinds them to the
    `$n` form when the dialect is PostgreSQL.
  - Transactions: [DB.WithTx] runs a closure atomically and rolls back on error.

Repositories depend on the [Querier] interface so the same statement helpers run
either directly on the pool or inside a transaction.
*/
package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// Dialect identifies the SQL engine behind a [DB].
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

// Querier is the subset of [*sql.DB] / [*sql.Tx] used by repositories.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// DB is a dialect-aware wrapper around a [*sql.DB] connection pool.
type DB struct {
	sqlDB   *sql.DB
	dialect Dialect
}

// New wraps an already opened pool.
func New(sqlDB *sql.DB, dialect Dialect) *DB {
	return &DB{sqlDB: sqlDB, dialect: dialect}
}

// Dialect reports the SQL engine behind the pool.
func (db *DB) Dialect() Dialect { return db.dialect }

// SQL exposes the underlying pool for infrastructure code (health checks, tests).
func (db *DB) SQL() *sql.DB { return db.sqlDB }

// QueryContext implements [Querier].
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.sqlDB.QueryContext(ctx, Rebind(db.dialect, query), args...)
}

// QueryRowContext implements [Querier].
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.sqlDB.QueryRowContext(ctx, Rebind(db.dialect, query), args...)
}

// ExecContext implements [Querier].
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.sqlDB.ExecContext(ctx, Rebind(db.dialect, query), args...)
}

// Ping verifies that a connection can be established.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database: ping failed: %w", err)
	}
	return nil
}

// Close releases every pooled connection.
func (db *DB) Close() error {
	return db.sqlDB.Close()
}

// # Transactions

// Tx is a dialect-aware transaction. It implements [Querier].
type Tx struct {
	tx      *sql.Tx
	dialect Dialect
}

// QueryContext implements [Querier].
func (tx *Tx) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return tx.tx.QueryContext(ctx, Rebind(tx.dialect, query), args...)
}

// QueryRowContext implements [Querier].
func (tx *Tx) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return tx.tx.QueryRowContext(ctx, Rebind(tx.dialect, query), args...)
}

// ExecContext implements [Querier].
func (tx *Tx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return tx.tx.ExecContext(ctx, Rebind(tx.dialect, query), args...)
}

// WithTx runs fn inside a single transaction.
//
// The transaction commits when fn returns nil and rolls back otherwise; the
// error returned by fn is passed through unchanged.
func (db *DB) WithTx(ctx context.Context, fn func(tx *Tx) error) error {
	sqlTx, err := db.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("database: begin transaction: %w", err)
	}

	// Rollback after a successful commit is a no-op.
	defer sqlTx.Rollback() //nolint:errcheck

	if err := fn(&Tx{tx: sqlTx, dialect: db.dialect}); err != nil {
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("database: commit transaction: %w", err)
	}

	return nil
}

// # Placeholders

// Rebind rewrites `?` placeholders to the positional form the dialect expects.
//
// Queries in this codebase never contain a literal question mark inside string
// constants, so a plain scan is sufficient.
func Rebind(dialect Dialect, query string) string {
	if dialect != Postgres || !strings.Contains(query, "?") {
		return query
	}

	var builder strings.Builder
	builder.Grow(len(query) + 8)

	position := 1
	for _, char := range query {
		if char == '?' {
			builder.WriteByte('$')
			builder.WriteString(strconv.Itoa(position))
			position++
			continue
		}
		builder.WriteRune(char)
	}

	return builder.String()
}

// Placeholders returns "?, ?, ?" for n arguments, for IN clauses.
func Placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
