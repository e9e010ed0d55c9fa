// cmd/api/main.go
package main

import (
	"context"
	"log/slog"
	"os"

	"smartspend/internal/auth"
	"smartspend/internal/config"
	"smartspend/internal/handler"
	"smartspend/internal/middleware"
	"smartspend/internal/storage/postgres"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.MustLoad()

	pool, err := pgxpool.New(context.Background(), cfg.DBConn)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}
	slog.Info("connected to PostgreSQL")

	store := postgres.NewStorage(pool)

	tokenService := auth.NewTokenService(cfg)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	h := handler.New(store)
	ah := handler.NewAuthHandler(store, tokenService)
	handler.RegisterRoutes(router, h, ah, authMiddleware)

	slog.Info("server started", "port", cfg.ServerPort)
	if err := router.Run(cfg.ServerPort); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}
