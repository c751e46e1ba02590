package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/echononb/empleados-columbito-sub000/internal/application"
	services "github.com/echononb/empleados-columbito-sub000/internal/service"
)

type CVHandler struct {
	storage     *services.CVStorageService
	postulantes *application.PostulanteService
}

// NewCVHandler crea una nueva instancia del handler de CVs
func NewCVHandler(storage *services.CVStorageService, postulantes *application.PostulanteService) *CVHandler {
	return &CVHandler{
		storage:     storage,
		postulantes: postulantes,
	}
}

// Upload recibe el CV de un postulante, lo sube a S3 y guarda la URL en su ficha
func (h *CVHandler) Upload(c *fiber.Ctx) error {
	if h.storage == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "El almacenamiento de CVs no está configurado",
		})
	}

	id := c.Params("id")
	if _, err := h.postulantes.GetByID(id); err != nil {
		return respondError(c, err)
	}

	fileHeader, err := c.FormFile("cv")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No se recibió el archivo 'cv'",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No se pudo leer el archivo recibido",
		})
	}

	url, err := h.storage.UploadCV(id, file, fileHeader)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := h.postulantes.Update(id, map[string]any{"cvUrl": url}); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"cvUrl": url,
	})
}
