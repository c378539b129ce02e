package main

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/sahils38/gripinvest-winter-internship/config"
	"github.com/sahils38/gripinvest-winter-internship/db"
	"github.com/sahils38/gripinvest-winter-internship/internal/audit"
	auditrepo "github.com/sahils38/gripinvest-winter-internship/internal/audit/repository/postgres"
	"github.com/sahils38/gripinvest-winter-internship/internal/auth/handler"
	userrepo "github.com/sahils38/gripinvest-winter-internship/internal/auth/repository/postgres"
	"github.com/sahils38/gripinvest-winter-internship/internal/auth/service"
	"github.com/sahils38/gripinvest-winter-internship/internal/logging"
)

func main() {
	ctx := context.Background()
	logger := logging.NewJSONLogger(os.Stdout)

	cfg := config.Load()

	if err := db.RunMigrations(ctx, cfg.DatabaseURL); err != nil {
		logger.Error(ctx, "migrations failed", "error", err)
		os.Exit(1)
	}

	dbPool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error(ctx, "db connection failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	userRepo := userrepo.NewPostgresRepository(dbPool)
	auditRepo := auditrepo.NewPostgresRepository(dbPool)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.AccessExpiryMin)
	userService := service.NewUserService(userRepo, tokenService)
	authHandler := handler.NewAuthHandler(userService)
	healthHandler := handler.NewHealthHandler(dbPool)

	app := fiber.New()

	// The audit logger sits outermost; recover turns panics into errors so
	// they reach it as audited 500s.
	app.Use(audit.RequestLogger(auditRepo, tokenService))
	app.Use(recover.New())

	handler.RegisterRoutes(app, authHandler, healthHandler)

	logger.Info(ctx, "listening", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error(ctx, "server stopped", "error", err)
		os.Exit(1)
	}
}
