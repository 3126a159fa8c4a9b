package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cantina-api/cache"
	"cantina-api/config"
	"cantina-api/database"
	"cantina-api/events"
	"cantina-api/handlers"
	"cantina-api/initializers"
	"cantina-api/middleware"
	"cantina-api/repository"
	"cantina-api/service"
	"cantina-api/uploads"
	"cantina-api/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// Initialize database
	db, err := initializers.ConnectToDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := initializers.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	store := repository.NewStore(database.New(db))

	images, err := uploads.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to prepare upload directory: %v", err)
	}

	var productCache cache.ProductCache = cache.Nop{}
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedis(context.Background(), cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisCache.Close()
		productCache = redisCache
		log.Println("Product cache enabled")
	}

	var publisher events.Publisher = events.Nop{}
	if cfg.AMQPURL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.AMQPURL)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer amqpPublisher.Close()
		publisher = amqpPublisher
		log.Println("Order events enabled")
	}

	tokens := utils.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
	catalog := service.NewCatalog(store.Catalog(), productCache, images)
	fulfillment := service.NewFulfillment(store, productCache, publisher)
	accounts := service.NewAccounts(store.Accounts(), tokens)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowOrigins))
	r.Static("/uploads", images.Dir())

	handlers.Router{
		Products:     handlers.NewProductHandler(catalog, fulfillment, images),
		Accounts:     handlers.NewAccountHandler(accounts),
		Orders:       handlers.NewOrderHandler(fulfillment),
		Health:       handlers.NewHealthHandler(store),
		OptionalAuth: middleware.OptionalAuth(tokens),
	}.Register(r)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("Server starting on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	log.Println("Server exited")
}
