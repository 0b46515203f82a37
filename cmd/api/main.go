package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/tiozaobarbearia/agenda-api/internal/config"
	"github.com/tiozaobarbearia/agenda-api/internal/middleware"
	"github.com/tiozaobarbearia/agenda-api/internal/routes"
	"github.com/tiozaobarbearia/agenda-api/internal/store"
)

func main() {

	cfg := config.Load()

	ledger, err := store.NewAppointmentStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("failed to open appointment ledger: %v", err)
	}

	creds, err := store.NewCredentialStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("failed to open credential store: %v", err)
	}

	if err := creds.EnsureSeeded(context.Background(), cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to seed default account: %v", err)
	}
	if cfg.AdminPassword == "admin" {
		log.Println("warning: default admin password in use, set ADMIN_PASSWORD")
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, cfg, ledger, creds, rdb)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
