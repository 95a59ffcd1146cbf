// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"
	"fmt"
	"strings"

	"github.com/taibuivan/bookstore/internal/platform/apperr"
	"github.com/taibuivan/bookstore/internal/platform/database"
	"github.com/taibuivan/bookstore/internal/platform/database/schema"
	"github.com/taibuivan/bookstore/internal/platform/dberr"
)

// SQLRepository implements [Repository] on SQLite or PostgreSQL.
type SQLRepository struct {
	db *database.DB
}

// NewSQLRepository constructs a new [SQLRepository].
func NewSQLRepository(db *database.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

// statsQuery aggregates per author: distinct books, and the mean of per-book
// sale-row counts where a book without sales contributes 0. The CASE keeps the
// null row produced by an author without books out of the average.
var statsQuery = fmt.Sprintf(`
	SELECT a.%[1]s, a.%[2]s, a.%[3]s, a.%[4]s,
	       COUNT(DISTINCT b.%[5]s) AS books_count,
	       CAST(COALESCE(AVG(CASE WHEN b.%[5]s IS NOT NULL THEN COALESCE(s.sales_count, 0) END), 0) AS DOUBLE PRECISION) AS average_sales
	FROM %[6]s a
	LEFT JOIN %[7]s b ON b.%[8]s = a.%[1]s
	LEFT JOIN (
		SELECT %[9]s AS book_id, COUNT(%[10]s) AS sales_count
		FROM %[11]s
		GROUP BY %[9]s
	) s ON s.book_id = b.%[5]s
`,
	schema.Authors.ID, schema.Authors.FirstName, schema.Authors.LastName, schema.Authors.Picture,
	schema.Books.ID, schema.Authors.Table, schema.Books.Table, schema.Books.AuthorID,
	schema.Sales.BookID, schema.Sales.ID, schema.Sales.Table,
)

var statsGroupBy = fmt.Sprintf(" GROUP BY a.%s, a.%s, a.%s, a.%s",
	schema.Authors.ID, schema.Authors.FirstName, schema.Authors.LastName, schema.Authors.Picture,
)

func (repository *SQLRepository) ListAuthors(ctx context.Context) ([]*AuthorWithStats, error) {
	query := statsQuery + statsGroupBy + fmt.Sprintf(" ORDER BY a.%s, a.%s, a.%s",
		schema.Authors.LastName, schema.Authors.FirstName, schema.Authors.ID,
	)

	rows, err := repository.db.QueryContext(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_authors")
	}
	defer rows.Close()

	authors := []*AuthorWithStats{}
	for rows.Next() {
		a := &AuthorWithStats{}
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Picture, &a.BooksCount, &a.AverageSales); err != nil {
			return nil, dberr.Wrap(err, "scan_author")
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_authors")
	}

	return authors, nil
}

func (repository *SQLRepository) GetAuthor(ctx context.Context, id string) (*AuthorWithStats, error) {
	query := statsQuery + fmt.Sprintf(" WHERE a.%s = ?", schema.Authors.ID) + statsGroupBy

	a := &AuthorWithStats{}
	err := repository.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.Picture, &a.BooksCount, &a.AverageSales,
	)
	if dberr.IsNotFound(err) {
		return nil, apperr.NotFoundID("Author", id)
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_author")
	}

	return a, nil
}

func (repository *SQLRepository) ListBooks(ctx context.Context, authorID string) ([]BookSummary, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = ? ORDER BY %s, %s`,
		schema.Books.ID, schema.Books.Title, schema.Books.YearPublished, schema.Books.Picture,
		schema.Books.Table, schema.Books.AuthorID, schema.Books.Title, schema.Books.ID,
	)

	rows, err := repository.db.QueryContext(ctx, query, authorID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_author_books")
	}
	defer rows.Close()

	books := []BookSummary{}
	for rows.Next() {
		var book BookSummary
		if err := rows.Scan(&book.ID, &book.Title, &book.YearPublished, &book.Picture); err != nil {
			return nil, dberr.Wrap(err, "scan_author_book")
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_author_books")
	}

	return books, nil
}

func (repository *SQLRepository) CreateAuthor(ctx context.Context, a *Author) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES (?, ?, ?, ?)`,
		schema.Authors.Table, schema.Authors.ID, schema.Authors.FirstName, schema.Authors.LastName, schema.Authors.Picture,
	)

	_, err := repository.db.ExecContext(ctx, query, a.ID, a.FirstName, a.LastName, a.Picture)
	return dberr.Wrap(err, "create_author")
}

func (repository *SQLRepository) UpdateAuthor(ctx context.Context, id string, patch UpdateInput) (*Author, error) {
	assignments := []string{}
	args := []any{}

	if patch.FirstName != nil {
		assignments = append(assignments, schema.Authors.FirstName+" = ?")
		args = append(args, *patch.FirstName)
	}
	if patch.LastName != nil {
		assignments = append(assignments, schema.Authors.LastName+" = ?")
		args = append(args, *patch.LastName)
	}
	if patch.Picture != nil {
		assignments = append(assignments, schema.Authors.Picture+" = ?")
		args = append(args, *patch.Picture)
	}

	if len(assignments) > 0 {
		query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = ?`,
			schema.Authors.Table, strings.Join(assignments, ", "), schema.Authors.ID,
		)
		if _, err := repository.db.ExecContext(ctx, query, append(args, id)...); err != nil {
			return nil, dberr.Wrap(err, "update_author")
		}
	}

	return repository.findAuthor(ctx, id)
}

func (repository *SQLRepository) DeleteAuthor(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, schema.Authors.Table, schema.Authors.ID)

	_, err := repository.db.ExecContext(ctx, query, id)
	if dberr.IsForeignKeyViolation(err) {
		return apperr.Conflict("Author still has books").WithCause(err)
	}

	return dberr.Wrap(err, "delete_author")
}

func (repository *SQLRepository) findAuthor(ctx context.Context, id string) (*Author, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ?`,
		strings.Join(schema.Authors.Columns(), ", "), schema.Authors.Table, schema.Authors.ID,
	)

	a := &Author{}
	err := repository.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.FirstName, &a.LastName, &a.Picture)
	if dberr.IsNotFound(err) {
		return nil, apperr.NotFoundID("Author", id)
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_author")
	}

	return a, nil
}
