// Package client is the Go counterpart of the browser client: it owns the
// session lifecycle and the table/form view-model that drive the product
// API. The session is an explicit object constructed at login and
// invalidated at logout, so no hidden global token is shared between
// concurrent components.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/iliyamo/product-inventory/internal/model"
)

// Error taxonomy surfaced to callers. Server-side validation and not-found
// conditions map onto these; anything transport-level wraps the underlying
// error so callers can distinguish connectivity problems from rejections.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrNotFound           = errors.New("not found")
)

// ValidationError carries the server's combined validation message, e.g. the
// password policy rejection on register.
type ValidationError struct{ Message string }

func (e *ValidationError) Error() string { return e.Message }

// Client talks to the auth endpoints. It holds no credentials itself;
// Login hands back a Session that does.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New builds a Client for the given base URL, e.g. "http://localhost:5082".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

type credentialsBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Register creates an account. A 400 response surfaces as *ValidationError
// carrying the server's message (password policy rules, duplicate username).
func (c *Client) Register(ctx context.Context, username, password string) error {
	resp, err := c.postJSON(ctx, "/api/auth/register", credentialsBody{username, password})
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		return nil
	case resp.StatusCode == http.StatusBadRequest:
		return &ValidationError{Message: readErrorMessage(resp.Body)}
	default:
		return fmt.Errorf("register: unexpected status %d", resp.StatusCode)
	}
}

// Login exchanges credentials for a session. On failure no session exists,
// so any previously obtained session object is untouched.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	resp, err := c.postJSON(ctx, "/api/auth/login", credentialsBody{username, password})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrInvalidCredentials
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("login: unexpected status %d", resp.StatusCode)
	}
	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("login: decode response: %w", err)
	}
	if body.Token == "" {
		return nil, fmt.Errorf("login: empty token in response")
	}
	return &Session{c: c, token: body.Token}, nil
}

func (c *Client) postJSON(ctx context.Context, path string, body any) (*http.Response, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.httpc.Do(req)
}

func readErrorMessage(r io.Reader) string {
	var eb errorBody
	if err := json.NewDecoder(r).Decode(&eb); err == nil && eb.Error != "" {
		return eb.Error
	}
	return "request rejected"
}

// Session is the authenticated context for product API calls. It attaches
// its bearer token to every outgoing request. After Logout the token is
// gone and requests go out without credentials, which the server answers
// with 401 — mirroring a browser whose stored token was cleared.
type Session struct {
	c     *Client
	mu    sync.Mutex
	token string
}

// Logout invalidates the session locally. The token is stateless
// server-side, so nothing needs to be revoked remotely.
func (s *Session) Logout() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
}

// bearer returns the current token; empty after logout.
func (s *Session) bearer() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// do issues an authorized request and decodes a JSON body into out when the
// status matches want. Known rejection statuses map to the error taxonomy.
func (s *Session) do(ctx context.Context, method, path string, body, out any, want int) error {
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, s.c.baseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := s.bearer(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp, err := s.c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case want:
		if out != nil {
			return json.NewDecoder(resp.Body).Decode(out)
		}
		return nil
	case http.StatusUnauthorized:
		return ErrUnauthenticated
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest:
		return &ValidationError{Message: readErrorMessage(resp.Body)}
	default:
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}
}

// ListProducts fetches the full product list.
func (s *Session) ListProducts(ctx context.Context) ([]model.Product, error) {
	var out []model.Product
	if err := s.do(ctx, http.MethodGet, "/api/products", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateProduct submits a new product and returns the stored record with
// its server-assigned id.
func (s *Session) CreateProduct(ctx context.Context, in model.ProductInput) (*model.Product, error) {
	var out model.Product
	if err := s.do(ctx, http.MethodPost, "/api/products", in, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProduct replaces all mutable fields of the product with the given id.
func (s *Session) UpdateProduct(ctx context.Context, id int64, in model.ProductInput) (*model.Product, error) {
	var out model.Product
	if err := s.do(ctx, http.MethodPut, fmt.Sprintf("/api/products/%d", id), in, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProduct removes the product with the given id.
func (s *Session) DeleteProduct(ctx context.Context, id int64) error {
	return s.do(ctx, http.MethodDelete, fmt.Sprintf("/api/products/%d", id), nil, nil, http.StatusNoContent)
}
