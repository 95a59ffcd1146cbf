// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// SalesTable represents the 'sales' table
type SalesTable struct {
	Table    string
	ID       string
	ClientID string
	BookID   string
	Quantity string
	SaleDate string
}

// Sales is the schema definition for sales
var Sales = SalesTable{
	Table:    "sales",
	ID:       "id",
	ClientID: "client_id",
	BookID:   "book_id",
	Quantity: "quantity",
	SaleDate: "sale_date",
}

func (t SalesTable) Columns() []string {
	return []string{t.ID, t.ClientID, t.BookID, t.Quantity, t.SaleDate}
}
