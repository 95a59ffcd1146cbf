// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sale

import (
	"context"
	"fmt"

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

var (
	saleColumns = fmt.Sprintf("s.%s, s.%s, s.%s, s.%s, s.%s",
		schema.Sales.ID, schema.Sales.ClientID, schema.Sales.BookID, schema.Sales.Quantity, schema.Sales.SaleDate,
	)
	clientColumns = fmt.Sprintf("c.%s, c.%s, c.%s, c.%s, c.%s",
		schema.Clients.ID, schema.Clients.FirstName, schema.Clients.LastName, schema.Clients.Email, schema.Clients.Picture,
	)
	bookColumns = fmt.Sprintf("b.%s, b.%s, b.%s, b.%s, b.%s",
		schema.Books.ID, schema.Books.Title, schema.Books.YearPublished, schema.Books.Picture, schema.Books.AuthorID,
	)
	authorColumns = fmt.Sprintf("a.%s, a.%s, a.%s, a.%s",
		schema.Authors.ID, schema.Authors.FirstName, schema.Authors.LastName, schema.Authors.Picture,
	)

	joinClient = fmt.Sprintf(" JOIN %s c ON c.%s = s.%s", schema.Clients.Table, schema.Clients.ID, schema.Sales.ClientID)
	joinBook   = fmt.Sprintf(" JOIN %s b ON b.%s = s.%s", schema.Books.Table, schema.Books.ID, schema.Sales.BookID)
	joinAuthor = fmt.Sprintf(" JOIN %s a ON a.%s = b.%s", schema.Authors.Table, schema.Authors.ID, schema.Books.AuthorID)

	orderBySale = fmt.Sprintf(" ORDER BY s.%s, s.%s", schema.Sales.SaleDate, schema.Sales.ID)
)

// # Scanning

type rowScanner interface {
	Scan(dest ...any) error
}

func saleDest(s *Sale) []any {
	return []any{&s.ID, &s.ClientID, &s.BookID, &s.Quantity, &s.SaleDate}
}

func clientDest(c *ClientRef) []any {
	return []any{&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Picture}
}

func bookDest(b *BookRef) []any {
	return []any{&b.ID, &b.Title, &b.YearPublished, &b.Picture, &b.AuthorID}
}

func authorDest(a *AuthorRef) []any {
	return []any{&a.ID, &a.FirstName, &a.LastName, &a.Picture}
}

// withClientAndBook scans saleColumns, clientColumns, bookColumns.
func withClientAndBook(row rowScanner) (*Sale, error) {
	s := &Sale{Client: &ClientRef{}, Book: &BookRef{}}
	dest := append(saleDest(s), clientDest(s.Client)...)
	dest = append(dest, bookDest(s.Book)...)
	return s, row.Scan(dest...)
}

// withBookAndAuthor scans saleColumns, bookColumns, authorColumns.
func withBookAndAuthor(row rowScanner) (*Sale, error) {
	s := &Sale{Book: &BookRef{Author: &AuthorRef{}}}
	dest := append(saleDest(s), bookDest(s.Book)...)
	dest = append(dest, authorDest(s.Book.Author)...)
	return s, row.Scan(dest...)
}

// withClient scans saleColumns, clientColumns.
func withClient(row rowScanner) (*Sale, error) {
	s := &Sale{Client: &ClientRef{}}
	return s, row.Scan(append(saleDest(s), clientDest(s.Client)...)...)
}

func (repository *SQLRepository) collect(ctx context.Context, action string, scan func(rowScanner) (*Sale, error), query string, args ...any) ([]*Sale, error) {
	rows, err := repository.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	sales := []*Sale{}
	for rows.Next() {
		s, err := scan(rows)
		if err != nil {
			return nil, dberr.Wrap(err, action)
		}
		sales = append(sales, s)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, action)
	}

	return sales, nil
}

// # Queries

func (repository *SQLRepository) Create(ctx context.Context, s *Sale) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES (?, ?, ?, ?) RETURNING %s`,
		schema.Sales.Table, schema.Sales.ClientID, schema.Sales.BookID, schema.Sales.Quantity, schema.Sales.SaleDate,
		schema.Sales.ID,
	)

	err := repository.db.QueryRowContext(ctx, query, s.ClientID, s.BookID, s.Quantity, s.SaleDate).Scan(&s.ID)
	if dberr.IsForeignKeyViolation(err) {
		return apperr.Unprocessable("Client or book does not exist").WithCause(err)
	}

	return dberr.Wrap(err, "create_sale")
}

func (repository *SQLRepository) List(ctx context.Context) ([]*Sale, error) {
	query := "SELECT " + saleColumns + ", " + clientColumns + ", " + bookColumns +
		" FROM " + schema.Sales.Table + " s" + joinClient + joinBook + orderBySale

	return repository.collect(ctx, "list_sales", withClientAndBook, query)
}

func (repository *SQLRepository) Get(ctx context.Context, id int64) (*Sale, error) {
	query := "SELECT " + saleColumns + ", " + clientColumns + ", " + bookColumns +
		" FROM " + schema.Sales.Table + " s" + joinClient + joinBook +
		fmt.Sprintf(" WHERE s.%s = ?", schema.Sales.ID)

	s, err := withClientAndBook(repository.db.QueryRowContext(ctx, query, id))
	if dberr.IsNotFound(err) {
		return nil, apperr.NotFoundID("Sale", id)
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_sale")
	}

	return s, nil
}

func (repository *SQLRepository) ListByClient(ctx context.Context, clientID int64) ([]*Sale, error) {
	query := "SELECT " + saleColumns + ", " + bookColumns + ", " + authorColumns +
		" FROM " + schema.Sales.Table + " s" + joinBook + joinAuthor +
		fmt.Sprintf(" WHERE s.%s = ?", schema.Sales.ClientID) + orderBySale

	return repository.collect(ctx, "list_sales_by_client", withBookAndAuthor, query, clientID)
}

func (repository *SQLRepository) ListByBook(ctx context.Context, bookID string) ([]*Sale, error) {
	query := "SELECT " + saleColumns + ", " + clientColumns +
		" FROM " + schema.Sales.Table + " s" + joinClient +
		fmt.Sprintf(" WHERE s.%s = ?", schema.Sales.BookID) + orderBySale

	return repository.collect(ctx, "list_sales_by_book", withClient, query, bookID)
}

func (repository *SQLRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, schema.Sales.Table, schema.Sales.ID)

	_, err := repository.db.ExecContext(ctx, query, id)
	return dberr.Wrap(err, "delete_sale")
}
