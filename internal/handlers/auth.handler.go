package handlers

import (
	"errors"

	"server/internal/app"
	authController "server/internal/controllers/auth"
	"server/internal/logger"
	. "server/internal/models"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Handler
	controller *authController.AuthController
}

func NewAuthHandler(app app.App, router fiber.Router) *AuthHandler {
	log := logger.New("handlers").File("auth_handler")
	return &AuthHandler{
		controller: app.AuthController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *AuthHandler) Register() {
	h.router.Post("/login", h.login)
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	log := h.log.Function("login")

	var request LoginRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse login request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Faltan credenciales (correo y contraseña)."})
	}

	if err := validate.Struct(request); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Faltan credenciales (correo y contraseña)."})
	}

	user, token, err := h.controller.Login(c.Context(), request.Email, request.Password)
	if err != nil {
		if errors.Is(err, authController.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"error": "Credenciales inválidas"})
		}
		log.Er("login failed", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Error interno del servidor al intentar iniciar sesión"})
	}

	return c.JSON(LoginResponse{
		Message: "Autenticación exitosa",
		Token:   token,
		User: LoginUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}
