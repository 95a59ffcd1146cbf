// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sale

import "context"

// Repository defines the data access contract for sales.
type Repository interface {
	// Create inserts the sale and assigns its generated id.
	Create(ctx context.Context, sale *Sale) error

	// List returns every sale with client and book.
	List(ctx context.Context) ([]*Sale, error)

	// Get returns one sale with client and book, or NOT_FOUND.
	Get(ctx context.Context, id int64) (*Sale, error)

	// ListByClient returns the client's sales with book and author.
	ListByClient(ctx context.Context, clientID int64) ([]*Sale, error)

	// ListByBook returns the book's sales with client.
	ListByBook(ctx context.Context, bookID string) ([]*Sale, error)

	// Delete removes the sale. Missing ids are not an error.
	Delete(ctx context.Context, id int64) error
}
