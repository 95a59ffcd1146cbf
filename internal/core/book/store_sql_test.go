// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookstore/internal/core/book"
	"github.com/taibuivan/bookstore/internal/platform/database"
	"github.com/taibuivan/bookstore/internal/platform/database/dbtest"
	"github.com/taibuivan/bookstore/pkg/pagination"
	"github.com/taibuivan/bookstore/pkg/pointer"
)

const authorID = "0192f0c1-0000-7000-8000-0000000000a1"

func seedCatalogue(t *testing.T) *database.DB {
	t.Helper()

	db := dbtest.NewSQLite(t)
	dbtest.InsertAuthor(t, db, authorID, "Ursula", "Le Guin")
	dbtest.InsertBook(t, db, "book-a", "A Wizard of Earthsea", 1968, authorID)
	dbtest.InsertBook(t, db, "book-b", "The Left Hand of Darkness", 1969, authorID)
	dbtest.InsertBook(t, db, "book-c", "The Dispossessed", 1974, authorID)

	return db
}

func TestSQLRepository_ListPaginates(t *testing.T) {
	repo := book.NewSQLRepository(seedCatalogue(t))

	books, total, err := repo.List(context.Background(), book.ListParams{
		Params: pagination.Params{Limit: 2, Offset: 0},
		Sort:   book.DefaultSort,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, books, 2)
	assert.Equal(t, "A Wizard of Earthsea", books[0].Title)
	assert.Equal(t, "Le Guin", books[0].Author.LastName)

	books, total, err = repo.List(context.Background(), book.ListParams{
		Params: pagination.Params{Limit: 2, Offset: 2},
		Sort:   book.DefaultSort,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, books, 1)
	assert.Equal(t, "The Left Hand of Darkness", books[0].Title)
}

func TestSQLRepository_ListSorts(t *testing.T) {
	repo := book.NewSQLRepository(seedCatalogue(t))

	books, _, err := repo.List(context.Background(), book.ListParams{
		Params: pagination.Params{Limit: 10},
		Sort:   book.Sort{Property: book.SortYearPublished, Direction: book.DirectionDesc},
	})
	require.NoError(t, err)
	require.Len(t, books, 3)
	assert.Equal(t, []int{1974, 1969, 1968}, []int{books[0].YearPublished, books[1].YearPublished, books[2].YearPublished})
}

func TestSQLRepository_ListWithClientCount(t *testing.T) {
	db := seedCatalogue(t)
	repo := book.NewSQLRepository(db)

	first := dbtest.InsertClient(t, db, "Genly", "Ai")
	second := dbtest.InsertClient(t, db, "Shevek", "Urras")

	dbtest.InsertSale(t, db, first, "book-b")
	dbtest.InsertSale(t, db, first, "book-b")
	dbtest.InsertSale(t, db, first, "book-c")
	dbtest.InsertSale(t, db, second, "book-c")

	books, err := repo.ListWithClientCount(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 3)

	counts := map[string]int{}
	for _, b := range books {
		counts[b.ID] = b.ClientCount
	}
	assert.Equal(t, map[string]int{"book-a": 0, "book-b": 1, "book-c": 2}, counts)
}

func TestSQLRepository_GetMissing(t *testing.T) {
	repo := book.NewSQLRepository(dbtest.NewSQLite(t))

	b, found, err := repo.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, b)
}

func TestSQLRepository_Update(t *testing.T) {
	repo := book.NewSQLRepository(seedCatalogue(t))
	ctx := context.Background()

	found, err := repo.Update(ctx, "book-a", book.UpdateInput{YearPublished: pointer.To(1970)})
	require.NoError(t, err)
	assert.True(t, found)

	updated, _, err := repo.Get(ctx, "book-a")
	require.NoError(t, err)
	assert.Equal(t, 1970, updated.YearPublished)
	assert.Equal(t, "A Wizard of Earthsea", updated.Title)

	found, err = repo.Update(ctx, "missing", book.UpdateInput{Title: pointer.To("x")})
	require.NoError(t, err)
	assert.False(t, found)

	found, err = repo.Update(ctx, "missing", book.UpdateInput{})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSQLRepository_DeleteCascadesSales(t *testing.T) {
	db := seedCatalogue(t)
	repo := book.NewSQLRepository(db)

	clientID := dbtest.InsertClient(t, db, "Genly", "Ai")
	dbtest.InsertSale(t, db, clientID, "book-a")
	dbtest.InsertSale(t, db, clientID, "book-b")

	require.NoError(t, repo.Delete(context.Background(), "book-a"))
	require.NoError(t, repo.Delete(context.Background(), "book-a"))

	assert.Equal(t, 2, dbtest.Count(t, db, "books"))
	assert.Equal(t, 1, dbtest.Count(t, db, "sales"))
}

func TestSQLRepository_DeleteMany(t *testing.T) {
	db := seedCatalogue(t)
	repo := book.NewSQLRepository(db)

	require.NoError(t, repo.DeleteMany(context.Background(), []string{"book-a", "book-c", "unknown"}))
	assert.Equal(t, 1, dbtest.Count(t, db, "books"))
}

func TestSQLRepository_AuthorExists(t *testing.T) {
	repo := book.NewSQLRepository(seedCatalogue(t))

	exists, err := repo.AuthorExists(context.Background(), authorID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.AuthorExists(context.Background(), "0192f0c1-0000-7000-8000-0000000000ff")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSQLRepository_DeleteManyIsAllOrNothing(t *testing.T) {
	db := seedCatalogue(t)
	repo := book.NewSQLRepository(db)

	_, err := db.ExecContext(context.Background(), `
		CREATE TRIGGER books_locked BEFORE DELETE ON books
		WHEN OLD.id = 'book-c'
		BEGIN
			SELECT RAISE(ABORT, 'book is locked');
		END`)
	require.NoError(t, err)

	err = repo.DeleteMany(context.Background(), []string{"book-a", "book-c"})
	require.Error(t, err)
	assert.Equal(t, 3, dbtest.Count(t, db, "books"), "the first delete is rolled back")
}
