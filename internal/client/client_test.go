package client

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/product-inventory/internal/config"
	"github.com/iliyamo/product-inventory/internal/handler"
	"github.com/iliyamo/product-inventory/internal/model"
	"github.com/iliyamo/product-inventory/internal/repository"
	"github.com/iliyamo/product-inventory/internal/router"
)

// startServer runs the real route table over an in-memory store, without
// Redis or the broker, and returns a client pointed at it.
func startServer(t *testing.T) *Client {
	t.Helper()
	cfg := config.Config{
		JWTSecret:    "e2e-test-secret",
		JWTIssuer:    "inventory-api",
		JWTAudience:  "inventory-client",
		AccessTTLMin: 30,
	}
	store := repository.NewMemoryStore()
	e := echo.New()
	router.Register(e, cfg,
		handler.NewAuthHandler(cfg, store.Credentials()),
		handler.NewProductHandler(store),
		nil, nil)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func login(t *testing.T, c *Client) *Session {
	t.Helper()
	ctx := context.Background()
	if err := c.Register(ctx, "alice", "Abc123!"); err != nil {
		t.Fatalf("register: %v", err)
	}
	s, err := c.Login(ctx, "alice", "Abc123!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	return s
}

func laptopInput() model.ProductInput {
	return model.ProductInput{
		Name:        "Laptop",
		Description: "High performance laptop",
		Price:       75000,
		Quantity:    5,
		Category:    "Electronics",
		IsActive:    true,
		CreatedDate: "2024-01-15",
	}
}

func TestRegisterPolicyRejection(t *testing.T) {
	c := startServer(t)
	err := c.Register(context.Background(), "alice", "abc")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("register with weak password: err = %v, want *ValidationError", err)
	}
	for _, want := range []string{"6 characters", "uppercase", "number", "special character"} {
		if !strings.Contains(ve.Message, want) {
			t.Errorf("policy message %q does not mention %q", ve.Message, want)
		}
	}
}

func TestLoginFailureIssuesNoSession(t *testing.T) {
	c := startServer(t)
	_, err := c.Login(context.Background(), "nobody", "Abc123!")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	c := startServer(t)
	s := &Session{c: c} // no token at all
	_, err := s.ListProducts(context.Background())
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("tokenless list err = %v, want ErrUnauthenticated", err)
	}
	_, err = s.CreateProduct(context.Background(), laptopInput())
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("tokenless create err = %v, want ErrUnauthenticated", err)
	}
}

func TestSessionCRUDRoundTrip(t *testing.T) {
	c := startServer(t)
	s := login(t, c)
	ctx := context.Background()

	created, err := s.CreateProduct(ctx, laptopInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID <= 0 {
		t.Errorf("assigned id = %d, want positive", created.ID)
	}

	items, err := s.ListProducts(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Laptop" || items[0].CreatedDate != "2024-01-15" {
		t.Fatalf("list after create = %+v", items)
	}

	in := laptopInput()
	in.Name = "Laptop Pro"
	in.Price = 90000
	in.CreatedDate = "1999-09-09"
	updated, err := s.UpdateProduct(ctx, created.ID, in)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Laptop Pro" || updated.Price != 90000 {
		t.Errorf("update not applied: %+v", updated)
	}
	if updated.CreatedDate != "2024-01-15" {
		t.Errorf("createdDate not preserved on update: %q", updated.CreatedDate)
	}

	if _, err := s.UpdateProduct(ctx, 999, in); !errors.Is(err, ErrNotFound) {
		t.Errorf("update unknown id err = %v, want ErrNotFound", err)
	}

	if err := s.DeleteProduct(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.DeleteProduct(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestLogoutDropsCredentials(t *testing.T) {
	c := startServer(t)
	s := login(t, c)
	ctx := context.Background()

	if _, err := s.ListProducts(ctx); err != nil {
		t.Fatalf("list while logged in: %v", err)
	}
	s.Logout()
	if _, err := s.ListProducts(ctx); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("list after logout err = %v, want ErrUnauthenticated", err)
	}
}
