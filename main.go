package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/invtrack/backend/internal/config"
	"github.com/invtrack/backend/internal/db"
	"github.com/invtrack/backend/internal/handler"
	"github.com/invtrack/backend/internal/service"
)

// @title Inventory API
// @version 1.0
// @description JWT-protected inventory listing API.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	repo := &db.Postgres{Pool: pool}
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	authService, err := service.NewAuthService(repo, cfg.Auth)
	if err != nil {
		log.Fatalf("invalid auth config: %v", err)
	}

	if cfg.Seed.Username != "" || cfg.Seed.Password != "" {
		if err := authService.EnsureUser(ctx, cfg.Seed.Username, cfg.Seed.Password); err != nil {
			log.Fatalf("failed to seed user: %v", err)
		}
	}

	invService := service.NewInventoryService(repo)

	router := gin.Default()
	router.Use(handler.CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/", handler.Root)
	router.GET("/ping", handler.Ping)
	router.GET("/openapi.json", handler.OpenAPIDoc)

	authHandler := handler.NewAuthHandler(authService)
	router.POST("/token", authHandler.Token)

	protected := router.Group("/", handler.AuthMiddleware(authService))
	protected.GET("/inv", handler.NewInventoryHandler(invService).List)
	protected.GET("/me", authHandler.Me)

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
