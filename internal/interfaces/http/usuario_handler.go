package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/echononb/empleados-columbito-sub000/internal/application"
	"github.com/echononb/empleados-columbito-sub000/internal/domain"
)

type UsuarioHandler struct {
	service *application.UsuarioService
}

// NewUsuarioHandler crea una nueva instancia del handler de usuarios
func NewUsuarioHandler(service *application.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{
		service: service,
	}
}

// ActualizarRolRequest representa la petición de cambio de rol
type ActualizarRolRequest struct {
	Rol string `json:"rol"`
}

// List lista los perfiles de usuario
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	perfiles, err := h.service.GetAll()
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": perfiles,
	})
}

// Get obtiene un perfil por su ID
func (h *UsuarioHandler) Get(c *fiber.Ctx) error {
	u, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": u,
	})
}

// Create registra un nuevo perfil de usuario
func (h *UsuarioHandler) Create(c *fiber.Ctx) error {
	var u domain.PerfilUsuario
	if err := c.BodyParser(&u); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de solicitud inválido",
		})
	}

	id, err := h.service.Create(&u)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id": id,
	})
}

// ActualizarRol cambia el rol de un usuario
func (h *UsuarioHandler) ActualizarRol(c *fiber.Ctx) error {
	var req ActualizarRolRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de solicitud inválido",
		})
	}

	if err := h.service.ActualizarRol(c.Params("id"), req.Rol); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Rol actualizado",
	})
}

// SolicitarRol encola una solicitud de rol
func (h *UsuarioHandler) SolicitarRol(c *fiber.Ctx) error {
	var sol domain.SolicitudRol
	if err := c.BodyParser(&sol); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de solicitud inválido",
		})
	}

	id, err := h.service.SolicitarRol(&sol)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id": id,
	})
}

// SolicitudesPendientes lista las solicitudes de rol en cola
func (h *UsuarioHandler) SolicitudesPendientes(c *fiber.Ctx) error {
	solicitudes, err := h.service.SolicitudesPendientes()
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": solicitudes,
	})
}

// AprobarSolicitud aplica una solicitud de rol pendiente
func (h *UsuarioHandler) AprobarSolicitud(c *fiber.Ctx) error {
	if err := h.service.AprobarSolicitud(c.Params("id")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Solicitud aprobada",
	})
}
