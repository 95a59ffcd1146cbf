// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"
	"fmt"
	"strings"

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

// sortColumns maps the public sort properties to columns.
var sortColumns = map[string]string{
	SortTitle:         "b." + schema.Books.Title,
	SortYearPublished: "b." + schema.Books.YearPublished,
	SortID:            "b." + schema.Books.ID,
}

// bookSelect reads a book joined with its author, in [scanBook] order.
var bookSelect = fmt.Sprintf(`
	SELECT b.%[1]s, b.%[2]s, b.%[3]s, b.%[4]s, b.%[5]s,
	       a.%[6]s, a.%[7]s, a.%[8]s, a.%[9]s
	FROM %[10]s b
	JOIN %[11]s a ON a.%[6]s = b.%[5]s
`,
	schema.Books.ID, schema.Books.Title, schema.Books.YearPublished, schema.Books.Picture, schema.Books.AuthorID,
	schema.Authors.ID, schema.Authors.FirstName, schema.Authors.LastName, schema.Authors.Picture,
	schema.Books.Table, schema.Authors.Table,
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner, extra ...any) (*Book, error) {
	b := &Book{}
	dest := []any{
		&b.ID, &b.Title, &b.YearPublished, &b.Picture, &b.AuthorID,
		&b.Author.ID, &b.Author.FirstName, &b.Author.LastName, &b.Author.Picture,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return b, nil
}

func (repository *SQLRepository) List(ctx context.Context, params ListParams) ([]*Book, int, error) {
	sort := params.Sort
	if sort.Property == "" {
		sort = DefaultSort
	}

	column, ok := sortColumns[sort.Property]
	if !ok {
		return nil, 0, fmt.Errorf("book: unsupported sort property %q", sort.Property)
	}
	direction := DirectionAsc
	if sort.Direction == DirectionDesc {
		direction = DirectionDesc
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.Books.Table)
	if err := repository.db.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_books")
	}

	// The id tie-breaker keeps pages stable when the sort column repeats.
	query := bookSelect + fmt.Sprintf(" ORDER BY %s %s, b.%s %s LIMIT ? OFFSET ?",
		column, direction, schema.Books.ID, direction,
	)

	rows, err := repository.db.QueryContext(ctx, query, params.Limit, params.Offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_books")
	}
	defer rows.Close()

	books := []*Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_book")
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_books")
	}

	return books, total, nil
}

func (repository *SQLRepository) ListWithClientCount(ctx context.Context) ([]*BookWithClientCount, error) {
	query := fmt.Sprintf(`
		SELECT b.%[1]s, b.%[2]s, b.%[3]s, b.%[4]s, b.%[5]s,
		       a.%[6]s, a.%[7]s, a.%[8]s, a.%[9]s,
		       COUNT(DISTINCT s.%[12]s) AS client_count
		FROM %[10]s b
		JOIN %[11]s a ON a.%[6]s = b.%[5]s
		LEFT JOIN %[13]s s ON s.%[14]s = b.%[1]s
		GROUP BY b.%[1]s, b.%[2]s, b.%[3]s, b.%[4]s, b.%[5]s, a.%[6]s, a.%[7]s, a.%[8]s, a.%[9]s
		ORDER BY b.%[2]s, b.%[1]s
	`,
		schema.Books.ID, schema.Books.Title, schema.Books.YearPublished, schema.Books.Picture, schema.Books.AuthorID,
		schema.Authors.ID, schema.Authors.FirstName, schema.Authors.LastName, schema.Authors.Picture,
		schema.Books.Table, schema.Authors.Table,
		schema.Sales.ClientID, schema.Sales.Table, schema.Sales.BookID,
	)

	rows, err := repository.db.QueryContext(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_books_with_client_count")
	}
	defer rows.Close()

	books := []*BookWithClientCount{}
	for rows.Next() {
		var clientCount int
		b, err := scanBook(rows, &clientCount)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_book")
		}
		books = append(books, &BookWithClientCount{Book: *b, ClientCount: clientCount})
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_books_with_client_count")
	}

	return books, nil
}

func (repository *SQLRepository) Get(ctx context.Context, id string) (*Book, bool, error) {
	query := bookSelect + fmt.Sprintf(" WHERE b.%s = ?", schema.Books.ID)

	b, err := scanBook(repository.db.QueryRowContext(ctx, query, id))
	if dberr.IsNotFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, dberr.Wrap(err, "get_book")
	}

	return b, true, nil
}

func (repository *SQLRepository) AuthorExists(ctx context.Context, authorID string) (bool, error) {
	query := fmt.Sprintf(`SELECT 1 FROM %s WHERE %s = ?`, schema.Authors.Table, schema.Authors.ID)

	var one int
	err := repository.db.QueryRowContext(ctx, query, authorID).Scan(&one)
	if dberr.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, dberr.Wrap(err, "check_author")
	}

	return true, nil
}

func (repository *SQLRepository) Create(ctx context.Context, b *Book) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		schema.Books.Table, strings.Join(schema.Books.Columns(), ", "), database.Placeholders(len(schema.Books.Columns())),
	)

	_, err := repository.db.ExecContext(ctx, query, b.ID, b.Title, b.YearPublished, b.Picture, b.AuthorID)
	return dberr.Wrap(err, "create_book")
}

func (repository *SQLRepository) Update(ctx context.Context, id string, patch UpdateInput) (bool, error) {
	if patch.IsEmpty() {
		_, found, err := repository.Get(ctx, id)
		return found, err
	}

	assignments := []string{}
	args := []any{}

	if patch.Title != nil {
		assignments = append(assignments, schema.Books.Title+" = ?")
		args = append(args, *patch.Title)
	}
	if patch.YearPublished != nil {
		assignments = append(assignments, schema.Books.YearPublished+" = ?")
		args = append(args, *patch.YearPublished)
	}
	if patch.Picture != nil {
		assignments = append(assignments, schema.Books.Picture+" = ?")
		args = append(args, *patch.Picture)
	}
	if patch.AuthorID != nil {
		assignments = append(assignments, schema.Books.AuthorID+" = ?")
		args = append(args, *patch.AuthorID)
	}

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = ?`,
		schema.Books.Table, strings.Join(assignments, ", "), schema.Books.ID,
	)

	result, err := repository.db.ExecContext(ctx, query, append(args, id)...)
	if err != nil {
		return false, dberr.Wrap(err, "update_book")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, dberr.Wrap(err, "update_book")
	}

	return affected > 0, nil
}

func (repository *SQLRepository) Delete(ctx context.Context, id string) error {
	_, err := repository.db.ExecContext(ctx, deleteQuery(), id)
	return dberr.Wrap(err, "delete_book")
}

func (repository *SQLRepository) DeleteMany(ctx context.Context, ids []string) error {
	err := repository.db.WithTx(ctx, func(tx *database.Tx) error {
		return deleteEach(ctx, tx, ids)
	})
	return dberr.Wrap(err, "delete_books")
}

func deleteEach(ctx context.Context, querier database.Querier, ids []string) error {
	for _, id := range ids {
		if _, err := querier.ExecContext(ctx, deleteQuery(), id); err != nil {
			return err
		}
	}
	return nil
}

func deleteQuery() string {
	return fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, schema.Books.Table, schema.Books.ID)
}
