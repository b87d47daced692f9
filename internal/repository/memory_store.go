package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/iliyamo/product-inventory/internal/model"
	"github.com/iliyamo/product-inventory/internal/utils"
)

// MemoryStore is an in-process ProductStore and CredentialStore used by the
// handler tests and handy for demos without a MySQL instance. Insertion
// order is preserved so List matches the SQL repo's ORDER BY id.
type MemoryStore struct {
	mu       sync.Mutex
	products []*model.Product
	nextID   int64
	users    map[string]string // username -> bcrypt hash
	nextUID  uint64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1, users: map[string]string{}, nextUID: 1}
}

func (s *MemoryStore) List(ctx context.Context) ([]*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.Product, len(s.products))
	for i, p := range s.products {
		cp := *p
		out[i] = &cp
	}
	return out, nil
}

func (s *MemoryStore) Create(ctx context.Context, in model.ProductInput) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &model.Product{
		ID:          s.nextID,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Quantity:    in.Quantity,
		Category:    strings.TrimSpace(in.Category),
		IsActive:    in.IsActive,
		CreatedDate: creationDate(in),
	}
	s.nextID++
	s.products = append(s.products, p)
	cp := *p
	return &cp, nil
}

func (s *MemoryStore) Update(ctx context.Context, id int64, in model.ProductInput) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			p.Name = strings.TrimSpace(in.Name)
			p.Description = strings.TrimSpace(in.Description)
			p.Price = in.Price
			p.Quantity = in.Quantity
			p.Category = strings.TrimSpace(in.Category)
			p.IsActive = in.IsActive
			// CreatedDate intentionally untouched
			cp := *p
			return &cp, nil
		}
	}
	return nil, ErrProductNotFound
}

func (s *MemoryStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// CreateUser and VerifyUser mirrors: MemoryStore also satisfies
// CredentialStore so auth handlers can be tested without a DB.

func (s *MemoryStore) CreateUser(ctx context.Context, username, password string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	username = strings.ToLower(strings.TrimSpace(username))
	if _, ok := s.users[username]; ok {
		return 0, ErrUsernameExists
	}
	hash, err := utils.HashPassword(password, 4) // minimal cost keeps tests fast
	if err != nil {
		return 0, err
	}
	s.users[username] = hash
	id := s.nextUID
	s.nextUID++
	return id, nil
}

func (s *MemoryStore) VerifyUser(ctx context.Context, username, password string) (bool, error) {
	s.mu.Lock()
	hash, ok := s.users[strings.ToLower(strings.TrimSpace(username))]
	s.mu.Unlock()
	if !ok {
		return false, nil
	}
	return utils.VerifyPassword(hash, password), nil
}

// Credentials adapts the user half of the store to the CredentialStore
// interface without colliding with the ProductStore method set.
func (s *MemoryStore) Credentials() CredentialStore { return memoryCreds{s} }

type memoryCreds struct{ s *MemoryStore }

func (m memoryCreds) Create(ctx context.Context, username, password string) (uint64, error) {
	return m.s.CreateUser(ctx, username, password)
}

func (m memoryCreds) Verify(ctx context.Context, username, password string) (bool, error) {
	return m.s.VerifyUser(ctx, username, password)
}
