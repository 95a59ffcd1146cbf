// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import "context"

// # Author Data Access

// Repository defines the data access contract for the author domain.
type Repository interface {

	/*
		ListAuthors returns every author with booksCount and averageSales.

		Returns:
		  - []*AuthorWithStats: Authors ordered by last name, first name
		  - error: Database retrieval failures
	*/
	ListAuthors(ctx context.Context) ([]*AuthorWithStats, error)

	/*
		GetAuthor returns one author with its aggregates.

		Parameters:
		  - ctx: context.Context
		  - id: string (UUID)

		Returns:
		  - *AuthorWithStats: The author and its statistics
		  - error: NOT_FOUND if no author has this id
	*/
	GetAuthor(ctx context.Context, id string) (*AuthorWithStats, error)

	/*
		ListBooks returns the books written by an author, ordered by title.
	*/
	ListBooks(ctx context.Context, authorID string) ([]BookSummary, error)

	/*
		CreateAuthor persists a new author. The caller assigns the id.
	*/
	CreateAuthor(ctx context.Context, author *Author) error

	/*
		UpdateAuthor applies the non-nil fields of patch and re-reads the row.

		Returns:
		  - *Author: The row after the update
		  - error: NOT_FOUND if no author has this id
	*/
	UpdateAuthor(ctx context.Context, id string, patch UpdateInput) (*Author, error)

	/*
		DeleteAuthor removes the author. Missing ids are not an error.

		Returns:
		  - error: CONFLICT while books still reference the author
	*/
	DeleteAuthor(ctx context.Context, id string) error
}
