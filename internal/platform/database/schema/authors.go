// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema names the tables and columns of the bookstore database.
//
// Repositories build SQL from these definitions rather than repeating string
// literals, so a column rename is a one-line change.
package schema

// AuthorsTable represents the 'authors' table
type AuthorsTable struct {
	Table     string
	ID        string
	FirstName string
	LastName  string
	Picture   string
}

// Authors is the schema definition for authors
var Authors = AuthorsTable{
	Table:     "authors",
	ID:        "id",
	FirstName: "first_name",
	LastName:  "last_name",
	Picture:   "picture",
}

func (t AuthorsTable) Columns() []string {
	return []string{t.ID, t.FirstName, t.LastName, t.Picture}
}
