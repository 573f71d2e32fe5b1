package handlers

import (
	"server/internal/app"
	submissionController "server/internal/controllers/submissions"
	"server/internal/logger"
	. "server/internal/models"

	"github.com/gofiber/fiber/v2"
)

type SubmissionHandler struct {
	Handler
	controller *submissionController.SubmissionController
}

func NewSubmissionHandler(app app.App, router fiber.Router) *SubmissionHandler {
	log := logger.New("handlers").File("submission_handler")
	return &SubmissionHandler{
		controller: app.SubmissionController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *SubmissionHandler) Register() {
	h.router.Post("/submit-form-data", h.submitFormData)
}

func (h *SubmissionHandler) submitFormData(c *fiber.Ctx) error {
	log := h.log.Function("submitFormData")

	var submission Submission
	if err := c.BodyParser(&submission); err != nil {
		log.Er("failed to parse submission", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Formato de formulario inválido"})
	}

	// The payment method is a tagged union: an unknown method or a
	// declared method without its matching block is rejected here, never
	// silently written as a bare prefix row.
	if err := validate.Struct(submission); err != nil {
		log.Warn("submission failed validation", "error", err.Error())
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Formato de formulario inválido"})
	}

	clientID, folderName, err := h.controller.Submit(c.Context(), submission)
	if err != nil {
		log.Er("failed to submit form data", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Error interno al enviar el formulario a sheets"})
	}

	return c.JSON(SubmitResponse{
		Message:    "Datos del formulario enviados exitosamente",
		ClientID:   clientID,
		FolderName: folderName,
	})
}
