package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/echononb/empleados-columbito-sub000/internal/domain"
)

// respondError mapea los errores de negocio a códigos HTTP
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrNoEncontrado):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrValidacion), errors.Is(err, domain.ErrMotivoRequerido):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrTransicionInvalida),
		errors.Is(err, domain.ErrPostulanteNoAprobado),
		errors.Is(err, domain.ErrYaAsignado),
		errors.Is(err, domain.ErrNoAsignado):
		status = fiber.StatusConflict
	}

	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// convertEstadoToFrontend convierte el estado interno a su etiqueta visible
func convertEstadoToFrontend(estado domain.EstadoPostulante) string {
	switch estado {
	case domain.PostulantePendiente:
		return "Pendiente"
	case domain.PostulanteEnRevision:
		return "En revisión"
	case domain.PostulanteAprobado:
		return "Aprobado"
	case domain.PostulanteRechazado:
		return "Rechazado"
	case domain.PostulanteContratado:
		return "Contratado"
	default:
		return string(estado) // Devolver tal cual si no coincide
	}
}
