package repository

import (
	"context"
	"strings"
	"time"

	"github.com/iliyamo/product-inventory/internal/model"
)

// ProductStore is the persistence contract consumed by the product handlers.
// The MySQL-backed ProductRepo implements it in production; MemoryStore
// implements it for tests and local experiments. The store is the sole
// source of truth: it assigns ids and arbitrates write ordering.
type ProductStore interface {
	// List returns all products in insertion order.
	List(ctx context.Context) ([]*model.Product, error)
	// Create persists a new product and returns the stored record with its
	// assigned id and creation date.
	Create(ctx context.Context, in model.ProductInput) (*model.Product, error)
	// Update replaces all mutable fields of the product matching id. The
	// original creation date is preserved. Returns ErrProductNotFound when
	// no such id exists.
	Update(ctx context.Context, id int64, in model.ProductInput) (*model.Product, error)
	// Delete removes the product matching id, or ErrProductNotFound.
	Delete(ctx context.Context, id int64) error
}

// CredentialStore is the contract the auth handlers verify and create
// accounts against. Secrets are stored salted and hashed; Verify never
// reveals whether the username or the password was wrong.
type CredentialStore interface {
	// Create registers a new account and returns its id, or
	// ErrUsernameExists on collision.
	Create(ctx context.Context, username, password string) (uint64, error)
	// Verify reports whether the username/password pair matches a stored
	// account. A missing account and a wrong password are both plain false.
	Verify(ctx context.Context, username, password string) (bool, error)
}

// creationDate resolves the date stored with a new product: the client's
// value when it is a well-formed calendar date, otherwise today (UTC).
func creationDate(in model.ProductInput) string {
	s := strings.TrimSpace(in.CreatedDate)
	if s != "" {
		if _, err := time.Parse(model.DateLayout, s); err == nil {
			return s
		}
	}
	return time.Now().UTC().Format(model.DateLayout)
}
