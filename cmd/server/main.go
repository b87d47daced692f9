package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"    // loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/product-inventory/internal/config"
	"github.com/iliyamo/product-inventory/internal/database"
	"github.com/iliyamo/product-inventory/internal/handler"
	"github.com/iliyamo/product-inventory/internal/middleware"
	"github.com/iliyamo/product-inventory/internal/queue"
	"github.com/iliyamo/product-inventory/internal/repository"
	"github.com/iliyamo/product-inventory/internal/router"
	queue_publisher "github.com/iliyamo/product-inventory/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if cfg.Env == "dev" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := database.SeedProducts(ctx, db); err != nil {
			log.Printf("seed products: %v", err)
		}
		cancel()
	}

	// Redis backs the list-response cache and the rate limiter. A nil
	// client disables both without failing startup.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; cache and rate limiting disabled")
	}
	cache := middleware.NewResponseCache(config.LoadCacheConfig(), rdb)
	rateLimit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	users := repository.NewUserRepo(db, cfg.BcryptCost)
	productsRepo := repository.NewProductRepo(db)

	authHandler := handler.NewAuthHandler(cfg, users)
	productHandler := handler.NewProductHandler(productsRepo)
	productHandler.Cache = cache
	productHandler.Publish = queue_publisher.PublishProductChanged

	// Background audit consumer; runs its own reconnect loop.
	go func() {
		if err := queue.StartAuditConsumer(); err != nil {
			log.Printf("audit consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.Register(e, cfg, authHandler, productHandler, cache, rateLimit)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err)
	}
}
