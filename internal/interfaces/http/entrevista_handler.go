package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/echononb/empleados-columbito-sub000/internal/application"
	"github.com/echononb/empleados-columbito-sub000/internal/domain"
)

type EntrevistaHandler struct {
	service *application.EntrevistaService
}

// NewEntrevistaHandler crea una nueva instancia del handler de entrevistas
func NewEntrevistaHandler(service *application.EntrevistaService) *EntrevistaHandler {
	return &EntrevistaHandler{
		service: service,
	}
}

// CancelarRequest representa la petición de cancelación de una entrevista
type CancelarRequest struct {
	Motivo  string `json:"motivo"`
	Usuario string `json:"usuario"`
}

// ReprogramarRequest representa la petición de reprogramación
type ReprogramarRequest struct {
	NuevaFecha string `json:"nuevaFecha"` // Formato: RFC 3339
	Motivo     string `json:"motivo,omitempty"`
	Usuario    string `json:"usuario"`
}

// List lista las entrevistas, con filtros opcionales por query
func (h *EntrevistaHandler) List(c *fiber.Ctx) error {
	filtros := application.EntrevistaFiltros{
		Estado:       domain.EstadoEntrevista(c.Query("estado")),
		PostulanteID: c.Query("postulanteId"),
	}

	if desde := c.Query("desde"); desde != "" {
		t, err := time.Parse("2006-01-02", desde)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Formato de fecha inválido en desde. Use YYYY-MM-DD",
			})
		}
		filtros.Desde = t
	}
	if hasta := c.Query("hasta"); hasta != "" {
		t, err := time.Parse("2006-01-02", hasta)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Formato de fecha inválido en hasta. Use YYYY-MM-DD",
			})
		}
		filtros.Hasta = t
	}

	entrevistas, err := h.service.GetAll(filtros)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": entrevistas,
	})
}

// Get obtiene una entrevista por su ID
func (h *EntrevistaHandler) Get(c *fiber.Ctx) error {
	e, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": e,
	})
}

// Create programa una nueva entrevista
func (h *EntrevistaHandler) Create(c *fiber.Ctx) error {
	var e domain.Entrevista
	if err := c.BodyParser(&e); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de solicitud inválido",
		})
	}

	id, err := h.service.Create(&e)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id": id,
	})
}

// Update aplica una actualización parcial sobre una entrevista
func (h *EntrevistaHandler) Update(c *fiber.Ctx) error {
	var partial map[string]any
	if err := c.BodyParser(&partial); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de solicitud inválido",
		})
	}

	if err := h.service.Update(c.Params("id"), partial); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Entrevista actualizada",
	})
}

// Delete elimina una entrevista
func (h *EntrevistaHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Entrevista eliminada",
	})
}

// Cancelar cancela una entrevista con motivo
func (h *EntrevistaHandler) Cancelar(c *fiber.Ctx) error {
	var req CancelarRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de solicitud inválido",
		})
	}

	if err := h.service.Cancelar(c.Params("id"), req.Motivo, req.Usuario); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Entrevista cancelada",
	})
}

// Reprogramar cambia la fecha de una entrevista
func (h *EntrevistaHandler) Reprogramar(c *fiber.Ctx) error {
	var req ReprogramarRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de solicitud inválido",
		})
	}

	nuevaFecha, err := time.Parse(time.RFC3339, req.NuevaFecha)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de fecha inválido. Use RFC 3339",
		})
	}

	if err := h.service.Reprogramar(c.Params("id"), nuevaFecha, req.Motivo, req.Usuario); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Entrevista reprogramada",
	})
}

// Stats retorna las estadísticas agregadas de entrevistas
func (h *EntrevistaHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats()
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": stats,
	})
}
