// This file defines the MySQL-backed product repository. A Product is the
// single resource of the inventory API; every handler operation maps to one
// method here. Rows carry a DATE column for the creation date, scanned and
// written as a plain YYYY-MM-DD string.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to match sentinel values
	"strings"      // strings trims text fields before they hit the DB

	"github.com/iliyamo/product-inventory/internal/model"
)

// ProductRepo encapsulates all database queries related to products.  It
// depends on a sql.DB connection which should be configured elsewhere.
type ProductRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewProductRepo constructs a ProductRepo with the provided DB handle.  This
// function allows dependency injection of the database in tests and at
// startup.  There is no initialization logic beyond assigning the field.
func NewProductRepo(db *sql.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

const productColumns = "id, name, description, price, quantity, category, is_active, DATE_FORMAT(created_date, '%Y-%m-%d')"

func scanProduct(row interface{ Scan(...any) error }) (*model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity,
		&p.Category, &p.IsActive, &p.CreatedDate)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns every product ordered by id, which matches insertion order
// for an auto-increment key.
func (r *ProductRepo) List(ctx context.Context) ([]*model.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+productColumns+" FROM products ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a single product or ErrProductNotFound.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

// Create inserts a new product.  On success the returned record carries the
// auto-generated id and the resolved creation date, re-read from the DB so
// callers receive exactly what was stored.
func (r *ProductRepo) Create(ctx context.Context, in model.ProductInput) (*model.Product, error) {
	const q = `INSERT INTO products (name, description, price, quantity, category, is_active, created_date)
	           VALUES (?,?,?,?,?,?,?)`
	res, err := r.db.ExecContext(ctx, q,
		strings.TrimSpace(in.Name), strings.TrimSpace(in.Description),
		in.Price, in.Quantity, strings.TrimSpace(in.Category),
		in.IsActive, creationDate(in))
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Update replaces all mutable fields of the product matching id.  The
// created_date column is deliberately left out of the SET clause so the
// original creation date survives edits.  Returns ErrProductNotFound when
// no row matches.
func (r *ProductRepo) Update(ctx context.Context, id int64, in model.ProductInput) (*model.Product, error) {
	// Existence check first: an UPDATE that changes nothing also reports
	// zero affected rows, which would be indistinguishable from a miss.
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	const q = `UPDATE products
	           SET name = ?, description = ?, price = ?, quantity = ?, category = ?, is_active = ?
	           WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q,
		strings.TrimSpace(in.Name), strings.TrimSpace(in.Description),
		in.Price, in.Quantity, strings.TrimSpace(in.Category),
		in.IsActive, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes the product matching id. It returns ErrProductNotFound
// when no row is affected, which makes a repeated delete observable as 404.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrProductNotFound
	}
	return nil
}
