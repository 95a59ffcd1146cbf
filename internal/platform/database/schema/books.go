// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// BooksTable represents the 'books' table
type BooksTable struct {
	Table         string
	ID            string
	Title         string
	YearPublished string
	Picture       string
	AuthorID      string
}

// Books is the schema definition for books
var Books = BooksTable{
	Table:         "books",
	ID:            "id",
	Title:         "title",
	YearPublished: "year_published",
	Picture:       "picture",
	AuthorID:      "author_id",
}

func (t BooksTable) Columns() []string {
	return []string{t.ID, t.Title, t.YearPublished, t.Picture, t.AuthorID}
}
