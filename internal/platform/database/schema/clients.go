// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// ClientsTable represents the 'clients' table
type ClientsTable struct {
	Table     string
	ID        string
	FirstName string
	LastName  string
	Email     string
	Picture   string
}

// Clients is the schema definition for clients
var Clients = ClientsTable{
	Table:     "clients",
	ID:        "id",
	FirstName: "first_name",
	LastName:  "last_name",
	Email:     "email",
	Picture:   "picture",
}

func (t ClientsTable) Columns() []string {
	return []string{t.ID, t.FirstName, t.LastName, t.Email, t.Picture}
}
