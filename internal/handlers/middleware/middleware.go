package middleware

import (
	"slices"
	"time"

	"server/config"
	"server/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/google/uuid"
)

type Middleware struct {
	config config.Config
	log    logger.Logger
}

func New(config config.Config) Middleware {
	return Middleware{
		config: config,
		log:    logger.New("middleware"),
	}
}

// Cors allows only the configured origins, with credentials. Requests
// without an Origin header are not CORS requests and pass through
// untouched.
func (m Middleware) Cors() fiber.Handler {
	origins := m.config.Origins()

	return cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return slices.Contains(origins, origin)
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	})
}

// RequestLogger stamps every request with an id and logs method, path,
// status, and duration once the handler chain finishes.
func (m Middleware) RequestLogger() fiber.Handler {
	log := m.log.Function("RequestLogger")

	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)
		c.Locals("requestID", id)

		start := time.Now()
		err := c.Next()

		log.Info("request",
			"id", id,
			"method", c.Method(),
			"path", c.OriginalURL(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start).String(),
		)

		return err
	}
}
