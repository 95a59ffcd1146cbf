// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dbtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookstore/internal/platform/database"
)

// Seed helpers write rows directly, so one domain's tests can arrange data
// owned by another domain without importing it.

// InsertAuthor adds an author row.
func InsertAuthor(t testing.TB, db *database.DB, id, firstName, lastName string) {
	t.Helper()
	_, err := db.ExecContext(context.Background(),
		"INSERT INTO authors (id, first_name, last_name) VALUES (?, ?, ?)",
		id, firstName, lastName,
	)
	require.NoError(t, err)
}

// InsertBook adds a book row.
func InsertBook(t testing.TB, db *database.DB, id, title string, yearPublished int, authorID string) {
	t.Helper()
	_, err := db.ExecContext(context.Background(),
		"INSERT INTO books (id, title, year_published, author_id) VALUES (?, ?, ?, ?)",
		id, title, yearPublished, authorID,
	)
	require.NoError(t, err)
}

// InsertClient adds a client row and returns its generated id.
func InsertClient(t testing.TB, db *database.DB, firstName, lastName string) int64 {
	t.Helper()
	var id int64
	err := db.QueryRowContext(context.Background(),
		"INSERT INTO clients (first_name, last_name) VALUES (?, ?) RETURNING id",
		firstName, lastName,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

// InsertSale adds a sale row of quantity 1 and returns its generated id.
func InsertSale(t testing.TB, db *database.DB, clientID int64, bookID string) int64 {
	t.Helper()
	var id int64
	err := db.QueryRowContext(context.Background(),
		"INSERT INTO sales (client_id, book_id) VALUES (?, ?) RETURNING id",
		clientID, bookID,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

// Count returns the number of rows in table.
func Count(t testing.TB, db *database.DB, table string) int {
	t.Helper()
	var count int
	require.NoError(t, db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&count))
	return count
}
