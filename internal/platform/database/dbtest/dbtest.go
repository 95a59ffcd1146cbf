// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dbtest opens throwaway, fully migrated databases for tests.
package dbtest

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookstore/internal/platform/database"
	"github.com/taibuivan/bookstore/internal/platform/migration"
)

// Logger discards every record.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewSQLite returns a migrated SQLite database in the test's temp directory.
// The handle is closed when the test finishes.
func NewSQLite(t testing.TB) *database.DB {
	t.Helper()

	logger := Logger()
	path := filepath.Join(t.TempDir(), "bookstore_test.db")

	db, err := database.OpenSQLite(context.Background(), path, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migration.RunUp(database.SQLite, path, logger))

	return db
}
