package handlers

import (
	"server/internal/app"
	"server/internal/handlers/middleware"
	"server/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func Router(router fiber.Router, app *app.App) (err error) {
	HealthHandler(router, app.Config)

	api := router.Group("/api")
	NewAuthHandler(*app, api).Register()
	NewFileHandler(*app, api).Register()
	NewDraftHandler(*app, api).Register()
	NewSubmissionHandler(*app, api).Register()

	return nil
}
