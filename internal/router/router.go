package router // package router defines how HTTP routes are registered for the API

import (
	"net/http"

	"github.com/labstack/echo/v4"            // the Echo web framework handles routing
	echomw "github.com/labstack/echo/v4/middleware" // built-in middleware (CORS)

	"github.com/iliyamo/product-inventory/internal/config"
	"github.com/iliyamo/product-inventory/internal/handler"
	"github.com/iliyamo/product-inventory/internal/middleware"
)

// Register wires every route of the API onto the provided Echo instance.
//
// The surface mirrors the SPA's expectations:
//
//	POST /api/auth/register   – create an account (password policy enforced)
//	POST /api/auth/login      – exchange credentials for a bearer token
//	GET/POST /api/products    – list / create (bearer required)
//	PUT/DELETE /api/products/:id – update / delete (bearer required)
//
// The auth group carries no token middleware; the product group rejects any
// request without a valid, unexpired token signed for our issuer/audience.
func Register(e *echo.Echo, cfg config.Config, a *handler.AuthHandler, p *handler.ProductHandler,
	cache *middleware.ResponseCache, rateLimit echo.MiddlewareFunc) {

	// CORS for the SPA origin. Any header and the full method set are
	// allowed, matching the policy the browser client was built against.
	if cfg.CORSOrigin != "" {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins: []string{cfg.CORSOrigin},
			AllowHeaders: []string{"*"},
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		}))
	}
	if rateLimit != nil {
		e.Use(rateLimit)
	}

	// Health endpoint for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// Unauthenticated auth operations.
	auth := e.Group("/api/auth")
	auth.POST("/register", a.Register)
	auth.POST("/login", a.Login)

	// Products: every operation requires a valid bearer token. The list
	// response is cached; the cache object is shared with the handler so
	// writes can invalidate it.
	products := e.Group("/api/products")
	products.Use(middleware.JWTAuth(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience))
	if cache != nil {
		products.Use(cache.Middleware())
	}
	products.GET("", p.List)
	products.POST("", p.Create)
	products.PUT("/:id", p.Update)
	products.DELETE("/:id", p.Delete)
}
