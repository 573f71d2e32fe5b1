package handlers

import (
	"errors"

	"server/internal/app"
	draftController "server/internal/controllers/drafts"
	"server/internal/logger"
	. "server/internal/models"
	"server/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

type DraftHandler struct {
	Handler
	controller *draftController.DraftController
}

func NewDraftHandler(app app.App, router fiber.Router) *DraftHandler {
	log := logger.New("handlers").File("draft_handler")
	return &DraftHandler{
		controller: app.DraftController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *DraftHandler) Register() {
	h.router.Post("/save-draft", h.saveDraft)
	h.router.Get("/list-drafts", h.listDrafts)
	h.router.Get("/load-draft/:draftId", h.loadDraft)
	h.router.Delete("/delete-draft/:draftId", h.deleteDraft)
}

func (h *DraftHandler) saveDraft(c *fiber.Ctx) error {
	log := h.log.Function("saveDraft")

	// The raw body is persisted verbatim in the draft row so loading a
	// draft can return exactly what the frontend sent, unknown fields
	// included.
	rawPayload := append([]byte(nil), c.Body()...)

	var request SaveDraftRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse draft payload", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Formato de borrador inválido"})
	}

	if request.DraftID == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "El draftId es requerido"})
	}

	timestamp, err := h.controller.Save(c.Context(), &request, rawPayload)
	if err != nil {
		log.Er("failed to save draft", err, "draftID", request.DraftID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Error interno al guardar borrador en Sheets",
			"details": err.Error(),
		})
	}

	return c.JSON(SaveDraftResponse{
		Message:   "Borrador guardado exitosamente en Google Sheets",
		DraftID:   request.DraftID,
		Timestamp: timestamp,
	})
}

func (h *DraftHandler) listDrafts(c *fiber.Ctx) error {
	log := h.log.Function("listDrafts")

	drafts, err := h.controller.List(c.Context())
	if err != nil {
		log.Er("failed to list drafts", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Error interno al listar borradores",
			"details": err.Error(),
		})
	}

	message := "Borradores listados exitosamente"
	if len(drafts) == 0 {
		message = "No hay borradores guardados"
		drafts = []DraftSummary{}
	}

	return c.JSON(ListDraftsResponse{
		Message: message,
		Drafts:  drafts,
		Total:   len(drafts),
	})
}

func (h *DraftHandler) loadDraft(c *fiber.Ctx) error {
	log := h.log.Function("loadDraft")
	draftID := c.Params("draftId")

	data, err := h.controller.Load(c.Context(), draftID)
	if err != nil {
		if errors.Is(err, repositories.ErrDraftNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"error": "Borrador no encontrado"})
		}
		log.Er("failed to load draft", err, "draftID", draftID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Error interno al cargar borrador desde Sheets",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Borrador cargado exitosamente",
		"data":    data,
	})
}

func (h *DraftHandler) deleteDraft(c *fiber.Ctx) error {
	log := h.log.Function("deleteDraft")
	draftID := c.Params("draftId")

	if err := h.controller.Delete(c.Context(), draftID); err != nil {
		if errors.Is(err, repositories.ErrDraftNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"error": "Borrador no encontrado"})
		}
		log.Er("failed to delete draft", err, "draftID", draftID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Error interno al eliminar borrador de Sheets",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "Borrador eliminado exitosamente"})
}
