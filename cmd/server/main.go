package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"server/internal/app"
	"server/internal/handlers"
	"server/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	log := logger.New("main")

	// Local development reads a .env file; deployed environments provide
	// real env vars and have no file to load.
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file loaded", "error", err.Error())
	}

	application, err := app.New()
	if err != nil {
		log.Er("failed to initialize app", err)
		os.Exit(1)
	}

	server := fiber.New(fiber.Config{
		AppName:               "enrollment-server",
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	server.Use(application.Middleware.Cors())
	server.Use(application.Middleware.RequestLogger())

	if err := handlers.Router(server, application); err != nil {
		log.Er("failed to register routes", err)
		os.Exit(1)
	}

	go func() {
		addr := fmt.Sprintf(":%d", application.Config.Port)
		log.Info("server listening", "addr", addr)
		if err := server.Listen(addr); err != nil {
			log.Er("server stopped", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.ShutdownWithContext(ctx); err != nil {
		log.Er("failed to shut down server", err)
	}

	if err := application.Close(); err != nil {
		log.Er("failed to close app", err)
	}
}
