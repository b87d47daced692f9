package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/product-inventory/internal/config"
	"github.com/iliyamo/product-inventory/internal/repository"
)

func testCfg() config.Config {
	return config.Config{
		JWTSecret:    "handler-test-secret",
		JWTIssuer:    "inventory-api",
		JWTAudience:  "inventory-client",
		AccessTTLMin: 30,
	}
}

func TestRegisterWeakPasswordListsRules(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(testCfg(), repository.NewMemoryStore().Credentials())

	c, rec := jsonCtx(e, http.MethodPost, "/api/auth/register",
		`{"username":"alice","password":"abc"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	for _, want := range []string{"6 characters", "uppercase", "number", "special character"} {
		if !strings.Contains(body.Error, want) {
			t.Errorf("policy message %q does not mention %q", body.Error, want)
		}
	}
}

func TestRegisterThenLogin(t *testing.T) {
	e := echo.New()
	creds := repository.NewMemoryStore().Credentials()
	h := NewAuthHandler(testCfg(), creds)

	c, rec := jsonCtx(e, http.MethodPost, "/api/auth/register",
		`{"username":"alice","password":"Abc123!"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("register status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	c, rec = jsonCtx(e, http.MethodPost, "/api/auth/login",
		`{"username":"alice","password":"Abc123!"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	var body struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Token == "" {
		t.Fatal("login succeeded without a token")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	e := echo.New()
	creds := repository.NewMemoryStore().Credentials()
	h := NewAuthHandler(testCfg(), creds)

	c, _ := jsonCtx(e, http.MethodPost, "/api/auth/register", `{"username":"alice","password":"Abc123!"}`)
	_ = h.Register(c)
	c, rec := jsonCtx(e, http.MethodPost, "/api/auth/register", `{"username":"Alice","password":"Abc123!"}`)
	_ = h.Register(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register status = %d, want 400", rec.Code)
	}
}

func TestLoginRejectionsAreUniform(t *testing.T) {
	e := echo.New()
	creds := repository.NewMemoryStore().Credentials()
	h := NewAuthHandler(testCfg(), creds)

	c, _ := jsonCtx(e, http.MethodPost, "/api/auth/register", `{"username":"alice","password":"Abc123!"}`)
	_ = h.Register(c)

	// Unknown user and wrong password must be indistinguishable.
	var bodies [2]string
	for i, payload := range []string{
		`{"username":"nobody","password":"Abc123!"}`,
		`{"username":"alice","password":"Wrong9!"}`,
	} {
		c, rec := jsonCtx(e, http.MethodPost, "/api/auth/login", payload)
		if err := h.Login(c); err != nil {
			t.Fatalf("Login returned error: %v", err)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("login status = %d, want 401", rec.Code)
		}
		bodies[i] = rec.Body.String()
	}
	if bodies[0] != bodies[1] {
		t.Errorf("rejection bodies differ: %q vs %q", bodies[0], bodies[1])
	}
}

func TestLoginMissingFields(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(testCfg(), repository.NewMemoryStore().Credentials())
	c, rec := jsonCtx(e, http.MethodPost, "/api/auth/login", `{"username":"","password":""}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
