package handlers

import (
	"server/internal/app"
	filesController "server/internal/controllers/files"
	"server/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type FileHandler struct {
	Handler
	controller *filesController.FilesController
}

func NewFileHandler(app app.App, router fiber.Router) *FileHandler {
	log := logger.New("handlers").File("file_handler")
	return &FileHandler{
		controller: app.FilesController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *FileHandler) Register() {
	h.router.Post("/upload-files", h.uploadFiles)
	h.router.Post("/create-folder", h.createFolder)
}

func (h *FileHandler) uploadFiles(c *fiber.Ctx) error {
	log := h.log.Function("uploadFiles")

	folderID := c.FormValue("folderId")
	if folderID == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "El ID de la carpeta es requerido."})
	}

	form, err := c.MultipartForm()
	if err != nil {
		log.Er("failed to parse multipart form", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Error al subir archivos"})
	}

	links, err := h.controller.UploadFiles(c.Context(), folderID, form.File["files"])
	if err != nil {
		log.Er("failed to upload files", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Error al subir archivos"})
	}

	return c.JSON(fiber.Map{
		"message":   "Archivos subidos exitosamente",
		"fileLinks": links,
	})
}

type createFolderRequest struct {
	FolderName string `json:"folderName"`
}

func (h *FileHandler) createFolder(c *fiber.Ctx) error {
	log := h.log.Function("createFolder")

	var request createFolderRequest
	if err := c.BodyParser(&request); err != nil || request.FolderName == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "El nombre de la carpeta es requerido."})
	}

	folderID, err := h.controller.CreateFolder(c.Context(), request.FolderName)
	if err != nil {
		log.Er("failed to create folder", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Error interno del servidor"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Carpeta creada exitosamente",
		"folderId": folderID,
	})
}
