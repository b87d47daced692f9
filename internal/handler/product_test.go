package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/product-inventory/internal/model"
	"github.com/iliyamo/product-inventory/internal/repository"
)

const laptopJSON = `{"name":"Laptop","description":"High performance laptop","price":75000,"quantity":5,"category":"Electronics","isActive":true,"createdDate":"2024-01-15"}`

func jsonCtx(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestProductCreateThenList(t *testing.T) {
	e := echo.New()
	h := NewProductHandler(repository.NewMemoryStore())

	c, rec := jsonCtx(e, http.MethodPost, "/api/products", laptopJSON)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}
	var created model.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("create response is not a product: %v", err)
	}
	if created.ID <= 0 {
		t.Errorf("server-assigned id = %d, want positive", created.ID)
	}
	if created.CreatedDate != "2024-01-15" {
		t.Errorf("createdDate = %q, want 2024-01-15", created.CreatedDate)
	}

	c, rec = jsonCtx(e, http.MethodGet, "/api/products", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	var items []model.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("list response is not an array: %v", err)
	}
	if len(items) != 1 || items[0].ID != created.ID || items[0].Name != "Laptop" {
		t.Errorf("list does not contain exactly the created product: %+v", items)
	}
}

func TestProductListEmptyIsArray(t *testing.T) {
	e := echo.New()
	h := NewProductHandler(repository.NewMemoryStore())
	c, rec := jsonCtx(e, http.MethodGet, "/api/products", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("empty list body = %q, want []", got)
	}
}

func TestProductCreateValidation(t *testing.T) {
	e := echo.New()
	h := NewProductHandler(repository.NewMemoryStore())

	c, rec := jsonCtx(e, http.MethodPost, "/api/products",
		`{"name":"","description":"","price":-1,"quantity":-2,"category":""}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body struct {
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("validation body: %v", err)
	}
	for _, field := range []string{"name", "description", "category", "price", "quantity"} {
		if body.Fields[field] == "" {
			t.Errorf("missing per-field message for %q in %v", field, body.Fields)
		}
	}

	// Nothing may have been stored.
	c, rec = jsonCtx(e, http.MethodGet, "/api/products", "")
	_ = h.List(c)
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("store mutated by invalid create: %s", got)
	}
}

func TestProductUpdateFullReplacePreservesDate(t *testing.T) {
	e := echo.New()
	store := repository.NewMemoryStore()
	h := NewProductHandler(store)

	c, rec := jsonCtx(e, http.MethodPost, "/api/products", laptopJSON)
	_ = h.Create(c)
	var created model.Product
	_ = json.Unmarshal(rec.Body.Bytes(), &created)

	c, rec = jsonCtx(e, http.MethodPut, "/api/products/1",
		`{"name":"Laptop Pro","description":"Faster","price":90000,"quantity":2,"category":"Computers","isActive":false,"createdDate":"1999-09-09"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.Update(c); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	var updated model.Product
	_ = json.Unmarshal(rec.Body.Bytes(), &updated)
	if updated.Name != "Laptop Pro" || updated.Price != 90000 || updated.IsActive {
		t.Errorf("update was not a full replace: %+v", updated)
	}
	if updated.CreatedDate != created.CreatedDate {
		t.Errorf("createdDate overwritten on update: %q -> %q", created.CreatedDate, updated.CreatedDate)
	}
}

func TestProductUpdateUnknownID(t *testing.T) {
	e := echo.New()
	h := NewProductHandler(repository.NewMemoryStore())
	c, rec := jsonCtx(e, http.MethodPut, "/api/products/99", laptopJSON)
	c.SetParamNames("id")
	c.SetParamValues("99")
	if err := h.Update(c); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestProductDeleteThenDeleteAgain(t *testing.T) {
	e := echo.New()
	h := NewProductHandler(repository.NewMemoryStore())

	c, _ := jsonCtx(e, http.MethodPost, "/api/products", laptopJSON)
	_ = h.Create(c)

	c, rec := jsonCtx(e, http.MethodDelete, "/api/products/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("first delete status = %d, want 204", rec.Code)
	}

	c, rec = jsonCtx(e, http.MethodDelete, "/api/products/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", rec.Code)
	}
}

func TestProductBadIDParam(t *testing.T) {
	e := echo.New()
	h := NewProductHandler(repository.NewMemoryStore())
	c, rec := jsonCtx(e, http.MethodDelete, "/api/products/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
