package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/echononb/empleados-columbito-sub000/internal/application"
	"github.com/echononb/empleados-columbito-sub000/internal/domain"
)

type ClienteHandler struct {
	service *application.ClienteService
}

// NewClienteHandler crea una nueva instancia del handler de clientes
func NewClienteHandler(service *application.ClienteService) *ClienteHandler {
	return &ClienteHandler{
		service: service,
	}
}

// List lista los clientes; con ?activos=true filtra los inactivos
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	clientes, err := h.service.GetAll(c.Query("activos") == "true")
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": clientes,
	})
}

// Get obtiene un cliente por su ID
func (h *ClienteHandler) Get(c *fiber.Ctx) error {
	cli, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": cli,
	})
}

// Create registra un nuevo cliente
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var cli domain.Cliente
	if err := c.BodyParser(&cli); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de solicitud inválido",
		})
	}

	id, err := h.service.Create(&cli)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id": id,
	})
}

// Update aplica una actualización parcial sobre un cliente
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
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
		"message": "Cliente actualizado",
	})
}

// Delete elimina un cliente
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Cliente eliminado",
	})
}

// Search busca clientes por término libre
func (h *ClienteHandler) Search(c *fiber.Ctx) error {
	term := c.Query("q")
	if term == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "El parámetro q es requerido",
		})
	}

	clientes, err := h.service.Search(term)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": clientes,
	})
}
