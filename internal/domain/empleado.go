package domain

import "time"

// ValorPorDefinir es el marcador usado en los campos operativos de un empleado
// creado a partir de una conversión, hasta que RRHH los complete.
const ValorPorDefinir = "Por definir"

// Empleado representa un trabajador de la empresa
type Empleado struct {
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
	Celular      string `json:"celular"`
	TelefonoFijo string `json:"telefonoFijo,omitempty"`
	Email        string `json:"email,omitempty"`

	Puesto           string `json:"puesto"`
	GradoInstruccion string `json:"gradoInstruccion,omitempty"`
	Institucion      string `json:"institucion,omitempty"`
	Carrera          string `json:"carrera,omitempty"`

	// Campos operativos que se completan después de la contratación
	BancoPago      string `json:"bancoPago"`
	CuentaBancaria string `json:"cuentaBancaria"`
	RegimenLaboral string `json:"regimenLaboral"`
	TallaCamisa    string `json:"tallaCamisa"`
	TallaPantalon  string `json:"tallaPantalon"`
	TallaCalzado   string `json:"tallaCalzado"`

	ProyectoIDs []string `json:"proyectoIds,omitempty"`

	PostulanteID string     `json:"postulanteId,omitempty"`
	FechaIngreso *time.Time `json:"fechaIngreso,omitempty"`
	Activo       bool       `json:"activo"`

	FechaCreacion      time.Time `json:"fechaCreacion"`
	FechaActualizacion time.Time `json:"fechaActualizacion"`
}
