// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookstore/internal/platform/apperr"
	"github.com/taibuivan/bookstore/internal/platform/database/dbtest"
	"github.com/taibuivan/bookstore/internal/platform/dberr"
)

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "noop"))
}

func TestWrap_NoRows(t *testing.T) {
	err := dberr.Wrap(fmt.Errorf("scan: %w", sql.ErrNoRows), "find author")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

func TestWrap_PassesAppErrorThrough(t *testing.T) {
	original := apperr.Conflict("Author still has books")
	assert.Same(t, original, dberr.Wrap(original, "delete author"))
}

func TestWrap_UnknownIsInternal(t *testing.T) {
	err := dberr.Wrap(errors.New("disk I/O error"), "list books")

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
	assert.ErrorContains(t, appErr.Cause, "list books")
}

func TestWrap_PostgresCodes(t *testing.T) {
	fk := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}
	assert.True(t, dberr.IsForeignKeyViolation(fk))
	assert.True(t, apperr.HasCode(dberr.Wrap(fk, "create sale"), apperr.CodeUnprocessable))

	unique := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
	assert.True(t, dberr.IsUniqueViolation(unique))
	assert.True(t, apperr.HasCode(dberr.Wrap(unique, "create author"), apperr.CodeConflict))
}

func TestWrap_SQLiteForeignKey(t *testing.T) {
	db := dbtest.NewSQLite(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		"INSERT INTO books (id, title, year_published, author_id) VALUES (?, ?, ?, ?)",
		"b-1", "Orphan", 2000, "missing-author",
	)
	require.Error(t, err)
	assert.True(t, dberr.IsForeignKeyViolation(err))
	assert.False(t, dberr.IsUniqueViolation(err))
}

func TestWrap_SQLiteRestrictedDelete(t *testing.T) {
	db := dbtest.NewSQLite(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, "INSERT INTO authors (id, first_name, last_name) VALUES (?, ?, ?)", "a-1", "Ursula", "Le Guin")
	require.NoError(t, err)
	_, err = db.ExecContext(ctx,
		"INSERT INTO books (id, title, year_published, author_id) VALUES (?, ?, ?, ?)",
		"b-1", "The Dispossessed", 1974, "a-1",
	)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, "DELETE FROM authors WHERE id = ?", "a-1")
	require.Error(t, err)
	assert.True(t, dberr.IsForeignKeyViolation(err))
}

func TestWrap_SQLiteUniqueAndCheck(t *testing.T) {
	db := dbtest.NewSQLite(t)
	ctx := context.Background()

	insert := "INSERT INTO authors (id, first_name, last_name) VALUES (?, ?, ?)"
	_, err := db.ExecContext(ctx, insert, "a-1", "Ursula", "Le Guin")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, insert, "a-1", "Ursula", "Le Guin")
	require.Error(t, err)
	assert.True(t, dberr.IsUniqueViolation(err))

	_, err = db.ExecContext(ctx,
		"INSERT INTO books (id, title, year_published, author_id) VALUES (?, ?, ?, ?)",
		"b-1", "Too Early", 1200, "a-1",
	)
	require.Error(t, err)
	assert.True(t, dberr.IsCheckViolation(err))
	assert.True(t, apperr.HasCode(dberr.Wrap(err, "create book"), apperr.CodeUnprocessable))
}
