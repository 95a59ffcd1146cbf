// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package book manages the catalogue of books.

A book always belongs to an existing author; the author is checked before
insert and the created row is re-read so callers receive the joined shape.
Book lookups report absence with a found flag instead of an error; the HTTP
layer turns that into a 404.
*/
package book

import (
	"strings"

	"github.com/taibuivan/bookstore/internal/platform/validate"
	"github.com/taibuivan/bookstore/pkg/pagination"
)

// Publication year bounds.
const (
	MinYearPublished = 1500
	MaxYearPublished = 2025
)

// # Domain Entities

// Book is a catalogue entry joined with its author.
type Book struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	YearPublished int       `json:"yearPublished"`
	Picture       *string   `json:"picture"`
	AuthorID      string    `json:"authorId"`
	Author        AuthorRef `json:"author"`
}

// AuthorRef is the author projection embedded in a [Book].
type AuthorRef struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Picture   *string `json:"picture"`
}

// BookWithClientCount adds the number of distinct clients who bought the book.
type BookWithClientCount struct {
	Book
	ClientCount int `json:"clientCount"`
}

// # Inputs

// CreateInput is the validated body of POST /books.
type CreateInput struct {
	Title         string  `json:"title" validate:"required,max=255"`
	YearPublished int     `json:"yearPublished" validate:"gte=1500,lte=2025"`
	Picture       *string `json:"picture" validate:"omitempty,max=500"`
	AuthorID      string  `json:"authorId" validate:"required,uuid"`
}

// UpdateInput is the validated body of PATCH /books/{id}. Nil fields are left unchanged.
type UpdateInput struct {
	Title         *string `json:"title" validate:"omitnil,min=1,max=255"`
	YearPublished *int    `json:"yearPublished" validate:"omitnil,gte=1500,lte=2025"`
	Picture       *string `json:"picture" validate:"omitempty,max=500"`
	AuthorID      *string `json:"authorId" validate:"omitnil,uuid"`
}

// IsEmpty reports whether the patch changes nothing.
func (input UpdateInput) IsEmpty() bool {
	return input.Title == nil && input.YearPublished == nil && input.Picture == nil && input.AuthorID == nil
}

// DeleteManyInput is the body of DELETE /books.
type DeleteManyInput struct {
	IDs []string `json:"ids" validate:"required,min=1,max=100,dive,required"`
}

// # Listing

// Sort property names accepted by the sort query parameter.
const (
	SortTitle         = "title"
	SortYearPublished = "yearPublished"
	SortID            = "id"
)

// Sort directions.
const (
	DirectionAsc  = "ASC"
	DirectionDesc = "DESC"
)

// Sort is a single-column ordering.
type Sort struct {
	Property  string
	Direction string
}

// DefaultSort orders by title ascending.
var DefaultSort = Sort{Property: SortTitle, Direction: DirectionAsc}

// ListParams controls the paginated book list.
type ListParams struct {
	pagination.Params
	Sort Sort
}

// ParamSort is the query parameter carrying "property,DIRECTION".
const ParamSort = "sort"

/*
ParseSort parses "property,DIRECTION", e.g. "yearPublished,DESC".

An empty value yields [DefaultSort]; a missing direction means ASC. The
direction is case-insensitive. Unknown properties or directions are a
VALIDATION_ERROR.
*/
func ParseSort(raw string) (Sort, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultSort, nil
	}

	property, direction, _ := strings.Cut(raw, ",")
	sort := Sort{
		Property:  strings.TrimSpace(property),
		Direction: strings.ToUpper(strings.TrimSpace(direction)),
	}
	if sort.Direction == "" {
		sort.Direction = DirectionAsc
	}

	validator := &validate.Validator{}
	validator.OneOf(ParamSort, sort.Property, SortTitle, SortYearPublished, SortID)
	validator.OneOf(ParamSort, sort.Direction, DirectionAsc, DirectionDesc)
	if err := validator.Err(); err != nil {
		return Sort{}, err
	}

	return sort, nil
}
