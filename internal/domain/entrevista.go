package domain

import "time"

type EstadoEntrevista string

const (
	EntrevistaProgramada   EstadoEntrevista = "programada"
	EntrevistaConfirmada   EstadoEntrevista = "confirmada"
	EntrevistaEnCurso      EstadoEntrevista = "en_curso"
	EntrevistaCompletada   EstadoEntrevista = "completada"
	EntrevistaCancelada    EstadoEntrevista = "cancelada"
	EntrevistaReprogramada EstadoEntrevista = "reprogramada"
)

// ResultadoEntrevista solo tiene significado cuando el estado es completada
type ResultadoEntrevista string

const (
	ResultadoPositivo  ResultadoEntrevista = "positivo"
	ResultadoNegativo  ResultadoEntrevista = "negativo"
	ResultadoPendiente ResultadoEntrevista = "pendiente"
	ResultadoNoAsistio ResultadoEntrevista = "no_asistio"
)

type TipoEntrevista string

const (
	EntrevistaTelefonica  TipoEntrevista = "telefonica"
	EntrevistaPresencial  TipoEntrevista = "presencial"
	EntrevistaVideo       TipoEntrevista = "video"
	EntrevistaTecnica     TipoEntrevista = "tecnica"
	EntrevistaPsicologica TipoEntrevista = "psicologica"
	EntrevistaFinal       TipoEntrevista = "final"
)

// PuntajesEntrevista agrupa la evaluación multi-eje de la entrevista.
// Los sub-puntajes van de 1 a 10.
type PuntajesEntrevista struct {
	General       float64 `json:"general,omitempty"`
	Tecnico       float64 `json:"tecnico,omitempty"`
	Actitud       float64 `json:"actitud,omitempty"`
	Comunicacion  float64 `json:"comunicacion,omitempty"`
	Puntualidad   int     `json:"puntualidad,omitempty"`
	Presentacion  int     `json:"presentacion,omitempty"`
	Conocimientos int     `json:"conocimientos,omitempty"`
	Experiencia   int     `json:"experiencia,omitempty"`
	Motivacion    int     `json:"motivacion,omitempty"`
	TrabajoEquipo int     `json:"trabajoEquipo,omitempty"`
	Adaptabilidad int     `json:"adaptabilidad,omitempty"`
	Liderazgo     int     `json:"liderazgo,omitempty"`
}

// Entrevista representa una entrevista del proceso de selección.
// Referencia a un postulante por su ID; cuando todavía no existe el registro
// canónico del postulante lleva sus datos denormalizados.
type Entrevista struct {
	ID           string `json:"id,omitempty"`
	PostulanteID string `json:"postulanteId,omitempty"`

	PostulanteNombre   string `json:"postulanteNombre,omitempty"`
	PostulanteDNI      string `json:"postulanteDni,omitempty"`
	PostulanteTelefono string `json:"postulanteTelefono,omitempty"`
	PostulanteEmail    string `json:"postulanteEmail,omitempty"`

	FechaHora time.Time      `json:"fechaHora"`
	Tipo      TipoEntrevista `json:"tipo"`
	Modalidad string         `json:"modalidad,omitempty"`

	Lugar      string `json:"lugar,omitempty"`
	Plataforma string `json:"plataforma,omitempty"`
	Enlace     string `json:"enlace,omitempty"`

	Entrevistador              string   `json:"entrevistador"`
	EntrevistadoresAdicionales []string `json:"entrevistadoresAdicionales,omitempty"`
	DuracionEstimada           int      `json:"duracionEstimada,omitempty"`
	DuracionReal               int      `json:"duracionReal,omitempty"`

	Puntajes    *PuntajesEntrevista `json:"puntajes,omitempty"`
	Fortalezas  string              `json:"fortalezas,omitempty"`
	AreasMejora string              `json:"areasMejora,omitempty"`
	Notas       string              `json:"notas,omitempty"`

	SalarioOfrecido   *float64 `json:"salarioOfrecido,omitempty"`
	SalarioNegociado  *float64 `json:"salarioNegociado,omitempty"`
	ComentarioSalario string   `json:"comentarioSalario,omitempty"`

	RequiereSegundaEntrevista bool       `json:"requiereSegundaEntrevista,omitempty"`
	FechaSegundaEntrevista    *time.Time `json:"fechaSegundaEntrevista,omitempty"`

	Estado    EstadoEntrevista    `json:"estado"`
	Resultado ResultadoEntrevista `json:"resultado,omitempty"`

	FechaCreacion      time.Time `json:"fechaCreacion"`
	FechaActualizacion time.Time `json:"fechaActualizacion"`
	CreadoPor          string    `json:"creadoPor,omitempty"`
	ActualizadoPor     string    `json:"actualizadoPor,omitempty"`
}

// EsEstadoEntrevistaValido verifica que el estado sea uno de los conocidos
func EsEstadoEntrevistaValido(estado EstadoEntrevista) bool {
	switch estado {
	case EntrevistaProgramada, EntrevistaConfirmada, EntrevistaEnCurso,
		EntrevistaCompletada, EntrevistaCancelada, EntrevistaReprogramada:
		return true
	default:
		return false
	}
}

// EsResultadoValido verifica que el resultado sea uno de los conocidos
func EsResultadoValido(resultado ResultadoEntrevista) bool {
	switch resultado {
	case ResultadoPositivo, ResultadoNegativo, ResultadoPendiente, ResultadoNoAsistio:
		return true
	default:
		return false
	}
}

// EsTipoEntrevistaValido verifica que el tipo de entrevista sea conocido
func EsTipoEntrevistaValido(tipo TipoEntrevista) bool {
	switch tipo {
	case EntrevistaTelefonica, EntrevistaPresencial, EntrevistaVideo,
		EntrevistaTecnica, EntrevistaPsicologica, EntrevistaFinal:
		return true
	default:
		return false
	}
}
