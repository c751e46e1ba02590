package domain

import "errors"

// Errores de negocio que los handlers pueden distinguir con errors.Is
var (
	ErrNoEncontrado         = errors.New("registro no encontrado")
	ErrTransicionInvalida   = errors.New("transición de estado no permitida")
	ErrMotivoRequerido      = errors.New("se requiere un motivo")
	ErrPostulanteNoAprobado = errors.New("el postulante no está aprobado")
	ErrYaAsignado           = errors.New("el empleado ya está asignado al proyecto")
	ErrNoAsignado           = errors.New("el empleado no está asignado al proyecto")
	ErrValidacion           = errors.New("datos inválidos")
)
