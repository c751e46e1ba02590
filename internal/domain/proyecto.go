package domain

import "time"

// Proyecto representa una obra o servicio de la empresa.
// La relación con empleados es muchos-a-muchos mediante arreglos de IDs en
// ambos lados, sin tabla intermedia.
type Proyecto struct {
	ID          string     `json:"id,omitempty"`
	Nombre      string     `json:"nombre"`
	Descripcion string     `json:"descripcion,omitempty"`
	ClienteID   string     `json:"clienteId,omitempty"`
	Ubicacion   string     `json:"ubicacion,omitempty"`
	FechaInicio *time.Time `json:"fechaInicio,omitempty"`
	FechaFin    *time.Time `json:"fechaFin,omitempty"`
	EmpleadoIDs []string   `json:"empleadoIds,omitempty"`
	Activo      bool       `json:"activo"`

	FechaCreacion      time.Time `json:"fechaCreacion"`
	FechaActualizacion time.Time `json:"fechaActualizacion"`
}

// Cliente representa un cliente de la empresa
type Cliente struct {
	ID          string   `json:"id,omitempty"`
	RazonSocial string   `json:"razonSocial"`
	RUC         string   `json:"ruc,omitempty"`
	Direccion   string   `json:"direccion,omitempty"`
	Contacto    string   `json:"contacto,omitempty"`
	Telefono    string   `json:"telefono,omitempty"`
	Email       string   `json:"email,omitempty"`
	ProyectoIDs []string `json:"proyectoIds,omitempty"`
	Activo      bool     `json:"activo"`

	FechaCreacion      time.Time `json:"fechaCreacion"`
	FechaActualizacion time.Time `json:"fechaActualizacion"`
}
