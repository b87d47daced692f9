package handler // handler package contains the product CRUD endpoints

import (
    "context"  // detached contexts for post-response work
    "errors"   // sentinel error matching
    "net/http" // http provides status code constants
    "strconv"  // strconv parses string identifiers to numeric types
    "time"     // timeout for event publishing

    "github.com/labstack/echo/v4" // echo is the web framework used for handlers

    "github.com/iliyamo/product-inventory/internal/middleware" // response cache invalidation
    "github.com/iliyamo/product-inventory/internal/model"      // product shapes
    "github.com/iliyamo/product-inventory/internal/queue"      // change event payloads
    "github.com/iliyamo/product-inventory/internal/repository" // store contract
)

// ProductHandler serves the CRUD surface over the product store.  Cache and
// Publish are optional collaborators: the cache is invalidated after every
// successful write so reads always see the latest store state, and Publish
// emits a best-effort change event to the broker.
type ProductHandler struct {
    Store   repository.ProductStore
    Cache   *middleware.ResponseCache
    Publish func(ctx context.Context, ev queue.ProductChangedEvent) error
}

func NewProductHandler(store repository.ProductStore) *ProductHandler {
    if store == nil {
        panic("nil store passed to NewProductHandler")
    }
    return &ProductHandler{Store: store}
}

// afterWrite runs the side effects of a successful mutation. The cache drop
// is synchronous (the next read must miss); the event publish is fire and
// forget on a detached context so a slow broker never delays the response.
func (h *ProductHandler) afterWrite(c echo.Context, action string, p *model.Product, id int64) {
    if h.Cache != nil {
        h.Cache.Invalidate(c.Request().Context())
    }
    if h.Publish != nil {
        ev := queue.ProductChangedEvent{
            Action:    action,
            ProductID: id,
            ChangedAt: time.Now().UTC().Format(time.RFC3339),
        }
        if p != nil {
            ev.ProductID = p.ID
            ev.Name = p.Name
            ev.Category = p.Category
        }
        go func() {
            ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
            defer cancel()
            _ = h.Publish(ctx, ev)
        }()
    }
}

// List handles GET /api/products and returns the full store contents in
// insertion order.
func (h *ProductHandler) List(c echo.Context) error {
    items, err := h.Store.List(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    return c.JSON(http.StatusOK, items)
}

// Create handles POST /api/products. Invalid fields are reported together so
// the client can surface one combined validation message.
func (h *ProductHandler) Create(c echo.Context) error {
    var in model.ProductInput
    if err := c.Bind(&in); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if problems := in.Validate(); len(problems) > 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": problems})
    }
    p, err := h.Store.Create(c.Request().Context(), in)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create product"})
    }
    h.afterWrite(c, "created", p, p.ID)
    return c.JSON(http.StatusCreated, p)
}

// Update handles PUT /api/products/:id. All mutable fields are replaced;
// the creation date is preserved server-side whatever the client sends.
func (h *ProductHandler) Update(c echo.Context) error {
    id, err := strconv.ParseInt(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var in model.ProductInput
    if err := c.Bind(&in); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if problems := in.Validate(); len(problems) > 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": problems})
    }
    p, err := h.Store.Update(c.Request().Context(), id, in)
    if err != nil {
        if errors.Is(err, repository.ErrProductNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    h.afterWrite(c, "updated", p, p.ID)
    return c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /api/products/:id. A repeated delete observes 404
// and leaves the store untouched.
func (h *ProductHandler) Delete(c echo.Context) error {
    id, err := strconv.ParseInt(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    if err := h.Store.Delete(c.Request().Context(), id); err != nil {
        if errors.Is(err, repository.ErrProductNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    h.afterWrite(c, "deleted", nil, id)
    return c.NoContent(http.StatusNoContent)
}
