// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package sale records purchases of a book by a client.

A sale references its client and book through foreign keys only: the store
relies on the constraint, not on a pre-check, and deleting either parent
removes the sale by cascade. Related rows are loaded eagerly per read path:

  - FindAll, FindOne: client and book.
  - FindByClient: book and the book's author.
  - FindByBook: client.
*/
package sale

import "time"

// DefaultQuantity applies when a sale is created without a quantity.
const DefaultQuantity = 1

// # Domain Entities

// Sale is one purchase event.
type Sale struct {
	ID       int64      `json:"id"`
	ClientID int64      `json:"clientId"`
	BookID   string     `json:"bookId"`
	Quantity int        `json:"quantity"`
	SaleDate time.Time  `json:"saleDate"`
	Client   *ClientRef `json:"client,omitempty"`
	Book     *BookRef   `json:"book,omitempty"`
}

// ClientRef is the client loaded alongside a sale.
type ClientRef struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     *string `json:"email"`
	Picture   *string `json:"picture"`
}

// BookRef is the book loaded alongside a sale.
type BookRef struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	YearPublished int        `json:"yearPublished"`
	Picture       *string    `json:"picture"`
	AuthorID      string     `json:"authorId"`
	Author        *AuthorRef `json:"author,omitempty"`
}

// AuthorRef is the book's author, loaded for purchases by client.
type AuthorRef struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Picture   *string `json:"picture"`
}

// # Inputs

// CreateInput is the validated body of POST /sales.
// Quantity defaults to [DefaultQuantity] and SaleDate to the current time.
type CreateInput struct {
	ClientID int64      `json:"clientId" validate:"required,gt=0"`
	BookID   string     `json:"bookId" validate:"required,max=64"`
	Quantity *int       `json:"quantity" validate:"omitnil,min=1"`
	SaleDate *time.Time `json:"saleDate"`
}
