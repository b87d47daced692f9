package database

import (
	"context"
	"database/sql"
	"time"
)

// SeedProducts inserts a couple of sample rows when the products table is
// empty. Intended for dev environments so a fresh database renders a
// non-empty table in the client.
func SeedProducts(ctx context.Context, db *sql.DB) error {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products").Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	today := time.Now().UTC().Format("2006-01-02")
	const q = `INSERT INTO products (name, description, price, quantity, category, is_active, created_date)
	           VALUES (?,?,?,?,?,?,?)`
	if _, err := db.ExecContext(ctx, q,
		"Laptop", "High performance laptop", 75000.0, 5, "Electronics", true, today); err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, q,
		"Wireless Mouse", "Ergonomic mouse", 1500.0, 20, "Accessories", true, today); err != nil {
		return err
	}
	return nil
}
