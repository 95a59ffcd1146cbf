// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package client

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

var clientColumns = strings.Join(schema.Clients.Columns(), ", ")

func (repository *SQLRepository) Create(ctx context.Context, c *Client) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES (?, ?, ?, ?) RETURNING %s`,
		schema.Clients.Table, schema.Clients.FirstName, schema.Clients.LastName, schema.Clients.Email, schema.Clients.Picture,
		schema.Clients.ID,
	)

	err := repository.db.QueryRowContext(ctx, query, c.FirstName, c.LastName, c.Email, c.Picture).Scan(&c.ID)
	return dberr.Wrap(err, "create_client")
}

func (repository *SQLRepository) List(ctx context.Context) ([]*Client, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s`, clientColumns, schema.Clients.Table, schema.Clients.ID)

	rows, err := repository.db.QueryContext(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_clients")
	}
	defer rows.Close()

	clients := []*Client{}
	for rows.Next() {
		c := &Client{}
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Picture); err != nil {
			return nil, dberr.Wrap(err, "scan_client")
		}
		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_clients")
	}

	return clients, nil
}

func (repository *SQLRepository) ListWithBookCount(ctx context.Context) ([]*ClientWithBookCount, error) {
	query := fmt.Sprintf(`
		SELECT c.%[1]s, c.%[2]s, c.%[3]s, c.%[4]s, c.%[5]s, COUNT(DISTINCT s.%[6]s) AS books_count
		FROM %[7]s c
		LEFT JOIN %[8]s s ON s.%[9]s = c.%[1]s
		GROUP BY c.%[1]s, c.%[2]s, c.%[3]s, c.%[4]s, c.%[5]s
		ORDER BY c.%[1]s
	`,
		schema.Clients.ID, schema.Clients.FirstName, schema.Clients.LastName, schema.Clients.Email, schema.Clients.Picture,
		schema.Sales.BookID, schema.Clients.Table, schema.Sales.Table, schema.Sales.ClientID,
	)

	rows, err := repository.db.QueryContext(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_clients_with_book_count")
	}
	defer rows.Close()

	clients := []*ClientWithBookCount{}
	for rows.Next() {
		c := &ClientWithBookCount{}
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Picture, &c.BooksCount); err != nil {
			return nil, dberr.Wrap(err, "scan_client")
		}
		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_clients_with_book_count")
	}

	return clients, nil
}

func (repository *SQLRepository) Get(ctx context.Context, id int64) (*Client, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ?`, clientColumns, schema.Clients.Table, schema.Clients.ID)

	c := &Client{}
	err := repository.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Picture)
	if dberr.IsNotFound(err) {
		return nil, apperr.NotFoundID("Client", id)
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_client")
	}

	return c, nil
}

func (repository *SQLRepository) Update(ctx context.Context, id int64, patch UpdateInput) (*Client, error) {
	assignments := []string{}
	args := []any{}

	set := func(column string, value *string) {
		if value != nil {
			assignments = append(assignments, column+" = ?")
			args = append(args, *value)
		}
	}
	set(schema.Clients.FirstName, patch.FirstName)
	set(schema.Clients.LastName, patch.LastName)
	set(schema.Clients.Email, patch.Email)
	set(schema.Clients.Picture, patch.Picture)

	if len(assignments) > 0 {
		query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = ?`,
			schema.Clients.Table, strings.Join(assignments, ", "), schema.Clients.ID,
		)
		if _, err := repository.db.ExecContext(ctx, query, append(args, id)...); err != nil {
			return nil, dberr.Wrap(err, "update_client")
		}
	}

	return repository.Get(ctx, id)
}

func (repository *SQLRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, schema.Clients.Table, schema.Clients.ID)

	_, err := repository.db.ExecContext(ctx, query, id)
	return dberr.Wrap(err, "delete_client")
}
