package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/echononb/empleados-columbito-sub000/internal/application"
	"github.com/echononb/empleados-columbito-sub000/internal/domain"
)

type EmpleadoHandler struct {
	service *application.EmpleadoService
}

// NewEmpleadoHandler crea una nueva instancia del handler de empleados
func NewEmpleadoHandler(service *application.EmpleadoService) *EmpleadoHandler {
	return &EmpleadoHandler{
		service: service,
	}
}

// List lista los empleados; con ?activos=true filtra los inactivos
func (h *EmpleadoHandler) List(c *fiber.Ctx) error {
	empleados, err := h.service.GetAll(c.Query("activos") == "true")
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": empleados,
	})
}

// Get obtiene un empleado por su ID
func (h *EmpleadoHandler) Get(c *fiber.Ctx) error {
	e, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": e,
	})
}

// Create registra un nuevo empleado
func (h *EmpleadoHandler) Create(c *fiber.Ctx) error {
	var e domain.Empleado
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

// Update aplica una actualización parcial sobre un empleado
func (h *EmpleadoHandler) Update(c *fiber.Ctx) error {
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
		"message": "Empleado actualizado",
	})
}

// Delete elimina un empleado
func (h *EmpleadoHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Empleado eliminado",
	})
}

// Search busca empleados por término libre
func (h *EmpleadoHandler) Search(c *fiber.Ctx) error {
	term := c.Query("q")
	if term == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "El parámetro q es requerido",
		})
	}

	empleados, err := h.service.Search(term)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": empleados,
	})
}
