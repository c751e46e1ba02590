package domain

import "time"

// Rol es la enumeración única de roles del sistema. Versiones anteriores
// usaban dos esquemas (consulta/digitador/administrador y admin/user);
// NormalizarRol mapea los valores heredados al esquema actual.
type Rol string

const (
	RolConsulta      Rol = "consulta"
	RolDigitador     Rol = "digitador"
	RolAdministrador Rol = "administrador"
)

// NormalizarRol convierte valores de rol heredados al esquema unificado
func NormalizarRol(valor string) (Rol, bool) {
	switch Rol(valor) {
	case RolConsulta, RolDigitador, RolAdministrador:
		return Rol(valor), true
	}
	// Esquema heredado admin/user
	switch valor {
	case "admin":
		return RolAdministrador, true
	case "user":
		return RolConsulta, true
	}
	return "", false
}

// PerfilUsuario representa el perfil de un usuario del sistema
type PerfilUsuario struct {
	ID                 string    `json:"id,omitempty"`
	Email              string    `json:"email"`
	NombreCompleto     string    `json:"nombreCompleto"`
	Rol                Rol       `json:"rol"`
	Activo             bool      `json:"activo"`
	FechaCreacion      time.Time `json:"fechaCreacion"`
	FechaActualizacion time.Time `json:"fechaActualizacion"`
}

// SolicitudRol representa una solicitud de asignación de rol pendiente de
// aprobación por un administrador
type SolicitudRol struct {
	ID            string    `json:"id,omitempty"`
	Email         string    `json:"email"`
	RolSolicitado string    `json:"rolSolicitado"`
	Mensaje       string    `json:"mensaje,omitempty"`
	FechaCreacion time.Time `json:"fechaCreacion"`
}
