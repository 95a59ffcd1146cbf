// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package client manages the bookstore's customers.
package client

// Client is a persisted customer row.
type Client struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     *string `json:"email"`
	Picture   *string `json:"picture"`
}

// ClientWithBookCount adds the number of distinct books the client bought.
type ClientWithBookCount struct {
	Client
	BooksCount int `json:"booksCount"`
}

// CreateInput is the validated body of POST /clients.
type CreateInput struct {
	FirstName string  `json:"firstName" validate:"required,max=100"`
	LastName  string  `json:"lastName" validate:"required,max=100"`
	Email     *string `json:"email" validate:"omitempty,email,max=255"`
	Picture   *string `json:"picture" validate:"omitempty,max=500"`
}

// UpdateInput is the validated body of PATCH or PUT /clients/{id}.
// Nil fields are left unchanged.
type UpdateInput struct {
	FirstName *string `json:"firstName" validate:"omitnil,min=1,max=100"`
	LastName  *string `json:"lastName" validate:"omitnil,min=1,max=100"`
	Email     *string `json:"email" validate:"omitempty,email,max=255"`
	Picture   *string `json:"picture" validate:"omitempty,max=500"`
}
