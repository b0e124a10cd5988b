package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/fundunity/donation-service/internal/app/background"
	"github.com/fundunity/donation-service/internal/app/setup"
	"github.com/fundunity/donation-service/internal/delivery/http/handlers"
	"github.com/fundunity/donation-service/internal/delivery/http/routes"
	"github.com/fundunity/donation-service/internal/infrastructure/migrate"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	deps, err := setup.InitializeDependencies()
	if err != nil {
		log.Fatalf("failed to init dependencies: %v", err)
	}
	cfg := deps.Config

	if cfg.DonationDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(deps.DB, cfg.DonationDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	ucs := setup.InitializeUseCases(deps)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Periodic reconciliation of pending transactions against the gateway
	tasks := background.NewBackgroundTasks(ucs.TransactionUsecase, cfg.Polling.Interval)
	tasks.StartAll(ctx)

	app := fiber.New()
	app.Use(logger.New())
	if cfg.CORS.AllowedOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.CORS.AllowedOrigins,
		}))
	}

	transactionHandler := handlers.NewTransactionHandler(ucs.TransactionUsecase)
	routes.RegisterTransactionRoutes(app, transactionHandler)

	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
		log.Printf("HTTP server started on %s\n", addr)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("failed to serve: %v\n", err)
		}
	}()

	<-ctx.Done()
	// let an in-flight sweep and open requests finish
	log.Println("shutting down")
	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Printf("shutdown error: %v\n", err)
	}
	if err := deps.EventPublisher.Close(); err != nil {
		log.Printf("kafka close error: %v\n", err)
	}
}
