// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookstore/internal/core/author"
	"github.com/taibuivan/bookstore/internal/platform/apperr"
	"github.com/taibuivan/bookstore/internal/platform/database/dbtest"
	"github.com/taibuivan/bookstore/pkg/pointer"
)

const (
	adaID    = "0192f0c1-0000-7000-8000-000000000001"
	gracesID = "0192f0c1-0000-7000-8000-000000000002"
)

func TestSQLRepository_StatsWithoutBooks(t *testing.T) {
	db := dbtest.NewSQLite(t)
	repo := author.NewSQLRepository(db)
	dbtest.InsertAuthor(t, db, adaID, "Ada", "Lovelace")

	stats, err := repo.GetAuthor(context.Background(), adaID)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.BooksCount)
	assert.Equal(t, 0.0, stats.AverageSales)
}

func TestSQLRepository_AverageSalesCountsBooksWithoutSales(t *testing.T) {
	db := dbtest.NewSQLite(t)
	repo := author.NewSQLRepository(db)

	dbtest.InsertAuthor(t, db, adaID, "Ada", "Lovelace")
	dbtest.InsertBook(t, db, "book-unsold", "Notes", 1843, adaID)
	dbtest.InsertBook(t, db, "book-sold", "Sketch of the Analytical Engine", 1842, adaID)

	clientID := dbtest.InsertClient(t, db, "Charles", "Babbage")
	for range 3 {
		dbtest.InsertSale(t, db, clientID, "book-sold")
	}

	stats, err := repo.GetAuthor(context.Background(), adaID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.BooksCount)
	assert.InDelta(t, 1.5, stats.AverageSales, 1e-9)
}

func TestSQLRepository_AverageSalesCountsRowsNotQuantity(t *testing.T) {
	db := dbtest.NewSQLite(t)
	repo := author.NewSQLRepository(db)

	dbtest.InsertAuthor(t, db, adaID, "Ada", "Lovelace")
	dbtest.InsertBook(t, db, "book-1", "Notes", 1843, adaID)
	clientID := dbtest.InsertClient(t, db, "Charles", "Babbage")

	_, err := db.ExecContext(context.Background(),
		"INSERT INTO sales (client_id, book_id, quantity) VALUES (?, ?, ?)", clientID, "book-1", 40,
	)
	require.NoError(t, err)

	stats, err := repo.GetAuthor(context.Background(), adaID)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, stats.AverageSales, 1e-9)
}

func TestSQLRepository_ListAuthors(t *testing.T) {
	db := dbtest.NewSQLite(t)
	repo := author.NewSQLRepository(db)

	dbtest.InsertAuthor(t, db, adaID, "Ada", "Lovelace")
	dbtest.InsertAuthor(t, db, gracesID, "Grace", "Hopper")
	dbtest.InsertBook(t, db, "book-1", "Compilers", 1952, gracesID)

	authors, err := repo.ListAuthors(context.Background())
	require.NoError(t, err)
	require.Len(t, authors, 2)

	assert.Equal(t, "Hopper", authors[0].LastName)
	assert.Equal(t, 1, authors[0].BooksCount)
	assert.Equal(t, "Lovelace", authors[1].LastName)
	assert.Equal(t, 0, authors[1].BooksCount)
}

func TestSQLRepository_GetAuthorNotFound(t *testing.T) {
	repo := author.NewSQLRepository(dbtest.NewSQLite(t))

	_, err := repo.GetAuthor(context.Background(), adaID)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

func TestSQLRepository_UpdateAuthor(t *testing.T) {
	db := dbtest.NewSQLite(t)
	repo := author.NewSQLRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateAuthor(ctx, &author.Author{ID: adaID, FirstName: "Ada", LastName: "Byron"}))

	updated, err := repo.UpdateAuthor(ctx, adaID, author.UpdateInput{
		LastName: pointer.To("Lovelace"),
		Picture:  pointer.To("/resources/images/ada.png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada", updated.FirstName)
	assert.Equal(t, "Lovelace", updated.LastName)
	assert.Equal(t, "/resources/images/ada.png", pointer.Val(updated.Picture))

	_, err = repo.UpdateAuthor(ctx, gracesID, author.UpdateInput{FirstName: pointer.To("Grace")})
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

func TestSQLRepository_DeleteAuthor(t *testing.T) {
	db := dbtest.NewSQLite(t)
	repo := author.NewSQLRepository(db)
	ctx := context.Background()

	dbtest.InsertAuthor(t, db, adaID, "Ada", "Lovelace")
	dbtest.InsertAuthor(t, db, gracesID, "Grace", "Hopper")
	dbtest.InsertBook(t, db, "book-1", "Compilers", 1952, gracesID)

	require.NoError(t, repo.DeleteAuthor(ctx, adaID))
	require.NoError(t, repo.DeleteAuthor(ctx, adaID), "deleting twice is a no-op")

	err := repo.DeleteAuthor(ctx, gracesID)
	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))
	assert.Equal(t, 1, dbtest.Count(t, db, "authors"))
}

func TestSQLRepository_ListBooks(t *testing.T) {
	db := dbtest.NewSQLite(t)
	repo := author.NewSQLRepository(db)

	dbtest.InsertAuthor(t, db, adaID, "Ada", "Lovelace")
	dbtest.InsertBook(t, db, "book-2", "Notes", 1843, adaID)
	dbtest.InsertBook(t, db, "book-1", "Analytical Engine", 1842, adaID)

	books, err := repo.ListBooks(context.Background(), adaID)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "Analytical Engine", books[0].Title)
	assert.Equal(t, 1842, books[0].YearPublished)
	assert.Nil(t, books[0].Picture)
}
