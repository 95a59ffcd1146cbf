// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import "context"

// Repository defines the data access contract for the book domain.
type Repository interface {
	// List returns one page of books and the total number of books.
	List(ctx context.Context, params ListParams) ([]*Book, int, error)

	// ListWithClientCount returns every book with its distinct client count.
	ListWithClientCount(ctx context.Context) ([]*BookWithClientCount, error)

	// Get returns the book or found=false.
	Get(ctx context.Context, id string) (*Book, bool, error)

	// AuthorExists reports whether an author row has this id.
	AuthorExists(ctx context.Context, authorID string) (bool, error)

	// Create inserts the row. The caller assigns the id.
	Create(ctx context.Context, book *Book) error

	// Update applies the non-nil fields of patch; found=false if no row has this id.
	Update(ctx context.Context, id string, patch UpdateInput) (bool, error)

	// Delete removes one book. Missing ids are not an error.
	Delete(ctx context.Context, id string) error

	// DeleteMany removes every listed book in a single transaction.
	DeleteMany(ctx context.Context, ids []string) error
}
