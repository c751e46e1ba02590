package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/echononb/empleados-columbito-sub000/internal/application"
	"github.com/echononb/empleados-columbito-sub000/internal/domain"
)

type ProyectoHandler struct {
	service *application.ProyectoService
}

// NewProyectoHandler crea una nueva instancia del handler de proyectos
func NewProyectoHandler(service *application.ProyectoService) *ProyectoHandler {
	return &ProyectoHandler{
		service: service,
	}
}

// AsignacionRequest representa la petición de asignación de un empleado
type AsignacionRequest struct {
	EmpleadoID string `json:"empleadoId"`
}

// List lista los proyectos; con ?activos=true filtra los inactivos
func (h *ProyectoHandler) List(c *fiber.Ctx) error {
	proyectos, err := h.service.GetAll(c.Query("activos") == "true")
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": proyectos,
	})
}

// Get obtiene un proyecto por su ID
func (h *ProyectoHandler) Get(c *fiber.Ctx) error {
	p, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": p,
	})
}

// Create registra un nuevo proyecto
func (h *ProyectoHandler) Create(c *fiber.Ctx) error {
	var p domain.Proyecto
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

// Update aplica una actualización parcial sobre un proyecto
func (h *ProyectoHandler) Update(c *fiber.Ctx) error {
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
		"message": "Proyecto actualizado",
	})
}

// Delete elimina un proyecto
func (h *ProyectoHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Proyecto eliminado",
	})
}

// AsignarEmpleado asigna un empleado al proyecto
func (h *ProyectoHandler) AsignarEmpleado(c *fiber.Ctx) error {
	var req AsignacionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de solicitud inválido",
		})
	}

	if req.EmpleadoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "El empleadoId es requerido",
		})
	}

	if err := h.service.AsignarEmpleado(c.Params("id"), req.EmpleadoID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Empleado asignado al proyecto",
	})
}

// RetirarEmpleado retira un empleado del proyecto
func (h *ProyectoHandler) RetirarEmpleado(c *fiber.Ctx) error {
	if err := h.service.RetirarEmpleado(c.Params("id"), c.Params("empleadoId")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Empleado retirado del proyecto",
	})
}
