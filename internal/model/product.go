package model

import "strings"

// DateLayout is the wire and storage format for product creation dates.  The
// column is a DATE with no time component, so the value travels as a plain
// calendar string rather than a time.Time.
const DateLayout = "2006-01-02"

// Product represents a row in the `products` table and doubles as the JSON
// body returned by the API.
//
// Fields:
//  ID          – primary key, assigned by the database on insert.
//  Name        – product name, non-empty.
//  Description – free-form description, non-empty.
//  Price       – unit price, never negative.
//  Quantity    – units in stock, never negative.
//  Category    – category label, non-empty.
//  IsActive    – whether the product is visible/sellable.
//  CreatedDate – calendar date (YYYY-MM-DD) set at creation and preserved on update.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Category    string  `json:"category"`
	IsActive    bool    `json:"isActive"`
	CreatedDate string  `json:"createdDate"`
}

// ProductInput is the subset of Product a client supplies on create and
// update.  The server assigns IDs, so the input never carries one.  The
// CreatedDate field is honoured on create only; updates keep the original
// date regardless of what the client sends.
type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Category    string  `json:"category"`
	IsActive    bool    `json:"isActive"`
	CreatedDate string  `json:"createdDate"`
}

// Validate checks required fields and numeric ranges.  It returns a map of
// field name to message so handlers can report every problem at once; an
// empty map means the input is acceptable.
func (in ProductInput) Validate() map[string]string {
	problems := map[string]string{}
	if strings.TrimSpace(in.Name) == "" {
		problems["name"] = "name is required"
	}
	if strings.TrimSpace(in.Description) == "" {
		problems["description"] = "description is required"
	}
	if strings.TrimSpace(in.Category) == "" {
		problems["category"] = "category is required"
	}
	if in.Price < 0 {
		problems["price"] = "price must not be negative"
	}
	if in.Quantity < 0 {
		problems["quantity"] = "quantity must not be negative"
	}
	return problems
}
