// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	// Registers the pure-Go "sqlite" driver.
	_ "modernc.org/sqlite"
)

// SQLite pool settings. SQLite serialises writers, so the pool stays small.
const (
	sqliteMaxOpenConns    = 4
	sqliteMaxIdleConns    = 2
	sqliteConnMaxLifetime = time.Hour
)

// sqlitePragmas are applied by the driver to every new pooled connection.
// foreign_keys is per-connection in SQLite, so it must not be a one-off Exec.
const sqlitePragmas = "_pragma=foreign_keys(1)" +
	"&_pragma=busy_timeout(5000)" +
	"&_pragma=journal_mode(WAL)" +
	"&_pragma=synchronous(NORMAL)" +
	"&_time_format=sqlite"

// SQLiteDSN builds the driver connection string for a database file.
func SQLiteDSN(path string) string {
	return "file:" + path + "?" + sqlitePragmas
}

// OpenSQLite opens (creating if necessary) the SQLite database file at path.
//
// The parent directory is created on demand. Foreign keys are enforced on every
// connection.
func OpenSQLite(ctx context.Context, path string, logger *slog.Logger) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("sqlite: create data directory: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite", SQLiteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}

	sqlDB.SetMaxOpenConns(sqliteMaxOpenConns)
	sqlDB.SetMaxIdleConns(sqliteMaxIdleConns)
	sqlDB.SetConnMaxLifetime(sqliteConnMaxLifetime)

	db := New(sqlDB, SQLite)
	if err := db.Ping(ctx); err != nil {
		sqlDB.Close()
		return nil, err
	}

	logger.Info("sqlite database opened", slog.String("path", path))

	return db, nil
}
