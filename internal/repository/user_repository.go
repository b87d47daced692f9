package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/product-inventory/internal/model"
	"github.com/iliyamo/product-inventory/internal/utils"
)

// UserRepo is the MySQL-backed CredentialStore. Passwords are bcrypt-hashed
// with the configured cost before they reach the DB.
type UserRepo struct {
	DB   *sql.DB
	Cost int // bcrypt cost applied on Create
}

func NewUserRepo(db *sql.DB, cost int) *UserRepo { return &UserRepo{DB: db, Cost: cost} }

// Create inserts a user and returns its ID.
func (r *UserRepo) Create(ctx context.Context, username, password string) (uint64, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	hash, err := utils.HashPassword(password, r.Cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, password_hash) VALUES (?,?)",
		username, hash)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrUsernameExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Verify reports whether the pair matches a stored account. An unknown
// username and a wrong password are both a plain false so callers cannot
// enumerate accounts.
func (r *UserRepo) Verify(ctx context.Context, username, password string) (bool, error) {
	u, err := r.getByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return utils.VerifyPassword(u.PasswordHash, password), nil
}

// getByUsername fetches a user by normalized username.
func (r *UserRepo) getByUsername(ctx context.Context, username string) (model.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, username, password_hash, created_at FROM users WHERE username=? LIMIT 1",
		username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	return u, err
}
