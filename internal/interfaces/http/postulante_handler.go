package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/echononb/empleados-columbito-sub000/internal/application"
	"github.com/echononb/empleados-columbito-sub000/internal/domain"
)

type PostulanteHandler struct {
	service     *application.PostulanteService
	rateLimiter *application.RateLimiter
}

// NewPostulanteHandler crea una nueva instancia del handler de postulantes.
// rateLimiter limita los envíos del formulario público; puede ser nil.
func NewPostulanteHandler(service *application.PostulanteService, rateLimiter *application.RateLimiter) *PostulanteHandler {
	return &PostulanteHandler{
		service:     service,
		rateLimiter: rateLimiter,
	}
}

// UpdateEstadoRequest representa la petición de cambio de estado
type UpdateEstadoRequest struct {
	Estado        string `json:"estado"`
	Usuario       string `json:"usuario"`
	Observaciones string `json:"observaciones,omitempty"`
}

// ConvertirRequest representa la petición de conversión a empleado
type ConvertirRequest struct {
	Usuario string `json:"usuario"`
}

// List lista los postulantes, con filtros opcionales por query
func (h *PostulanteHandler) List(c *fiber.Ctx) error {
	filtros := application.PostulanteFiltros{
		Estado:     domain.EstadoPostulante(c.Query("estado")),
		Puesto:     c.Query("puesto"),
		ProyectoID: c.Query("proyectoId"),
	}

	postulantes, err := h.service.GetAll(filtros)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": postulantes,
	})
}

// Get obtiene un postulante por su ID
func (h *PostulanteHandler) Get(c *fiber.Ctx) error {
	p, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data":        p,
		"estadoLabel": convertEstadoToFrontend(p.Estado),
	})
}

// Create registra una nueva postulación
func (h *PostulanteHandler) Create(c *fiber.Ctx) error {
	if h.rateLimiter != nil {
		if ok, err := h.rateLimiter.Allow(c.IP()); !ok {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	var p domain.Postulante
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de solicitud inválido",
		})
	}

	id, err := h.service.Create(&p)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id": id,
	})
}

// Update aplica una actualización parcial sobre un postulante
func (h *PostulanteHandler) Update(c *fiber.Ctx) error {
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
		"message": "Postulante actualizado",
	})
}

// Delete elimina un postulante
func (h *PostulanteHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Postulante eliminado",
	})
}

// UpdateEstado cambia el estado de un postulante
func (h *PostulanteHandler) UpdateEstado(c *fiber.Ctx) error {
	var req UpdateEstadoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de solicitud inválido",
		})
	}

	if req.Estado == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "El estado es requerido",
		})
	}

	err := h.service.UpdateEstado(c.Params("id"), domain.EstadoPostulante(req.Estado), req.Usuario, req.Observaciones)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Estado actualizado",
	})
}

// Convertir convierte un postulante aprobado en borrador de empleado
func (h *PostulanteHandler) Convertir(c *fiber.Ctx) error {
	var req ConvertirRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de solicitud inválido",
		})
	}

	draft, err := h.service.ConvertirAEmpleado(c.Params("id"), req.Usuario)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": draft,
	})
}

// RegistrarEmpleado completa la conversión creando el registro del empleado
func (h *PostulanteHandler) RegistrarEmpleado(c *fiber.Ctx) error {
	var req ConvertirRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de solicitud inválido",
		})
	}

	empleadoID, err := h.service.RegistrarEmpleadoConvertido(c.Params("id"), req.Usuario)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"empleadoId": empleadoID,
	})
}

// Search busca postulantes por término libre
func (h *PostulanteHandler) Search(c *fiber.Ctx) error {
	term := c.Query("q")
	if term == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "El parámetro q es requerido",
		})
	}

	postulantes, err := h.service.Search(term)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": postulantes,
	})
}

// Stats retorna las estadísticas agregadas de postulantes
func (h *PostulanteHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats()
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": stats,
	})
}
