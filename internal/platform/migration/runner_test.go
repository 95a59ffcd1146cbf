// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookstore/internal/platform/database"
)

func TestConvertToPgx5DSN(t *testing.T) {
	cases := map[string]string{
		"postgres://u:p@localhost:5432/db":   "pgx5://u:p@localhost:5432/db",
		"postgresql://u:p@localhost:5432/db": "pgx5://u:p@localhost:5432/db",
		"pgx5://u:p@localhost:5432/db":       "pgx5://u:p@localhost:5432/db",
		"host=localhost dbname=db":           "host=localhost dbname=db",
	}

	for input, expected := range cases {
		assert.Equal(t, expected, convertToPgx5DSN(input), input)
	}
}

func TestDatabaseURL(t *testing.T) {
	url, err := DatabaseURL(database.SQLite, "./data/bookstore.db")
	require.NoError(t, err)
	assert.Equal(t, "sqlite://./data/bookstore.db", url)

	url, err = DatabaseURL(database.Postgres, "postgres://localhost/db")
	require.NoError(t, err)
	assert.Equal(t, "pgx5://localhost/db", url)

	_, err = DatabaseURL(database.SQLite, "")
	assert.Error(t, err)

	_, err = DatabaseURL("mysql", "dsn")
	assert.Error(t, err)
}

func TestRunUp_SQLiteIsIdempotent(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	path := filepath.Join(t.TempDir(), "bookstore.db")

	db, err := database.OpenSQLite(context.Background(), path, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunUp(database.SQLite, path, logger))
	require.NoError(t, RunUp(database.SQLite, path, logger))

	var count int
	err = db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('authors', 'books', 'clients', 'sales')",
	).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}
