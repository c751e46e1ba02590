package domain

import "time"

type EstadoPostulante string

const (
	PostulantePendiente  EstadoPostulante = "pendiente"
	PostulanteEnRevision EstadoPostulante = "en_revision"
	PostulanteAprobado   EstadoPostulante = "aprobado"
	PostulanteRechazado  EstadoPostulante = "rechazado"
	PostulanteContratado EstadoPostulante = "contratado"
)

// FuentePostulacion indica por qué canal llegó la postulación
type FuentePostulacion string

const (
	FuenteWeb           FuentePostulacion = "web"
	FuenteReferido      FuentePostulacion = "referido"
	FuenteFeriaTrabajo  FuentePostulacion = "feria_trabajo"
	FuenteRedesSociales FuentePostulacion = "redes_sociales"
	FuenteOtro          FuentePostulacion = "otro"
)

// LugarNacimiento representa el lugar de nacimiento del postulante
type LugarNacimiento struct {
	Departamento string `json:"departamento"`
	Provincia    string `json:"provincia"`
	Distrito     string `json:"distrito"`
}

// ConversionEmpleado registra la conversión de un postulante aprobado a empleado.
// EmpleadoID queda en "pending" hasta que se registre el empleado definitivo.
type ConversionEmpleado struct {
	EmpleadoID      string    `json:"empleadoId"`
	FechaConversion time.Time `json:"fechaConversion"`
	ConvertidoPor   string    `json:"convertidoPor"`
}

// Postulante representa un candidato a un puesto de trabajo
type Postulante struct {
	ID              string           `json:"id,omitempty"`
	DNI             string           `json:"dni"`
	ApellidoPaterno string           `json:"apellidoPaterno"`
	ApellidoMaterno string           `json:"apellidoMaterno"`
	Nombres         string           `json:"nombres"`
	FechaNacimiento *time.Time       `json:"fechaNacimiento,omitempty"`
	LugarNacimiento *LugarNacimiento `json:"lugarNacimiento,omitempty"`
	Sexo            string           `json:"sexo"`
	EstadoCivil     string           `json:"estadoCivil"`

	Direccion    string `json:"direccion"`
	Referencia   string `json:"referencia,omitempty"`
	Celular      string `json:"celular"`
	TelefonoFijo string `json:"telefonoFijo,omitempty"`
	Email        string `json:"email,omitempty"`

	PuestoDeseado           string     `json:"puestoDeseado"`
	ProyectoID              string     `json:"proyectoId,omitempty"`
	Experiencia             string     `json:"experiencia,omitempty"`
	PretensionSalarial      *float64   `json:"pretensionSalarial,omitempty"`
	DisponibilidadInmediata bool       `json:"disponibilidadInmediata"`
	FechaDisponibilidad     *time.Time `json:"fechaDisponibilidad,omitempty"`

	GradoInstruccion string `json:"gradoInstruccion"`
	Institucion      string `json:"institucion,omitempty"`
	Carrera          string `json:"carrera,omitempty"`
	AnioEgreso       int    `json:"anioEgreso,omitempty"`

	Fuente        FuentePostulacion `json:"fuente"`
	Observaciones string            `json:"observaciones,omitempty"`
	Estado        EstadoPostulante  `json:"estado"`

	// FechaPostulacion se establece una sola vez al crear y no se modifica
	FechaPostulacion    time.Time           `json:"fechaPostulacion"`
	FechaActualizacion  time.Time           `json:"fechaActualizacion"`
	ActualizadoPor      string              `json:"actualizadoPor,omitempty"`
	ConvertedToEmployee *ConversionEmpleado `json:"convertedToEmployee,omitempty"`

	FechaCreacion time.Time `json:"fechaCreacion"`
	CVURL         string    `json:"cvUrl,omitempty"`
}

// transicionesPostulante define las transiciones de estado permitidas.
// Un postulante rechazado o aprobado puede volver a revisión (reconsideración);
// contratado es terminal.
var transicionesPostulante = map[EstadoPostulante][]EstadoPostulante{
	PostulantePendiente:  {PostulanteEnRevision},
	PostulanteEnRevision: {PostulanteAprobado, PostulanteRechazado},
	PostulanteAprobado:   {PostulanteContratado, PostulanteEnRevision},
	PostulanteRechazado:  {PostulanteEnRevision},
	PostulanteContratado: {},
}

// EsEstadoPostulanteValido verifica que el estado sea uno de los conocidos
func EsEstadoPostulanteValido(estado EstadoPostulante) bool {
	_, ok := transicionesPostulante[estado]
	return ok
}

// TransicionPermitida verifica si la transición de estado es válida
func TransicionPermitida(desde, hacia EstadoPostulante) bool {
	for _, e := range transicionesPostulante[desde] {
		if e == hacia {
			return true
		}
	}
	return false
}

// EsFuenteValida verifica que la fuente de postulación sea conocida
func EsFuenteValida(fuente FuentePostulacion) bool {
	switch fuente {
	case FuenteWeb, FuenteReferido, FuenteFeriaTrabajo, FuenteRedesSociales, FuenteOtro:
		return true
	default:
		return false
	}
}

// NombreCompleto retorna el nombre completo del postulante
func (p *Postulante) NombreCompleto() string {
	return p.Nombres + " " + p.ApellidoPaterno + " " + p.ApellidoMaterno
}
