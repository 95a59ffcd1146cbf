// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package author manages the writers of the books in the catalogue.

Read paths always carry two derived statistics computed in SQL:

  - booksCount: the number of distinct books by the author.
  - averageSales: the mean, across the author's books, of each book's number
    of sale rows. Books without sales count as 0; authors without books
    report 0.
*/
package author

// # Domain Entities

// Author is a persisted author row.
type Author struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Picture   *string `json:"picture"`
}

// AuthorWithStats is an [Author] enriched with its read-time aggregates.
type AuthorWithStats struct {
	Author
	BooksCount   int     `json:"booksCount"`
	AverageSales float64 `json:"averageSales"`
}

// AuthorDetail is the single-author view including the author's books.
type AuthorDetail struct {
	AuthorWithStats
	Books []BookSummary `json:"books"`
}

// BookSummary is the projection of a book listed under its author.
type BookSummary struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	YearPublished int     `json:"yearPublished"`
	Picture       *string `json:"picture"`
}

// # Inputs

// CreateInput is the validated body of POST /authors.
type CreateInput struct {
	FirstName string  `json:"firstName" validate:"required,max=100"`
	LastName  string  `json:"lastName" validate:"required,max=100"`
	Picture   *string `json:"picture" validate:"omitempty,max=500"`
}

// UpdateInput is the validated body of PATCH /authors/{id}.
// Nil fields are left unchanged.
type UpdateInput struct {
	FirstName *string `json:"firstName" validate:"omitnil,min=1,max=100"`
	LastName  *string `json:"lastName" validate:"omitnil,min=1,max=100"`
	Picture   *string `json:"picture" validate:"omitempty,max=500"`
}

// IsEmpty reports whether the patch changes nothing.
func (input UpdateInput) IsEmpty() bool {
	return input.FirstName == nil && input.LastName == nil && input.Picture == nil
}
