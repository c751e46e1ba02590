package application

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echononb/empleados-columbito-sub000/internal/domain"
	"github.com/echononb/empleados-columbito-sub000/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	mirror, err := store.NewMirror(t.TempDir())
	require.NoError(t, err)
	return store.NewStore(nil, mirror)
}

func postulanteValido() *domain.Postulante {
	return &domain.Postulante{
		DNI:             "12345678",
		Nombres:         "Juan Carlos",
		ApellidoPaterno: "Pérez",
		ApellidoMaterno: "Gómez",
		Email:           "juan.perez@example.com",
		Celular:         "987654321",
		PuestoDeseado:   "Operario",
	}
}

func TestPostulanteService_CreateAplicaValoresPorDefecto(t *testing.T) {
	s := NewPostulanteService(newTestStore(t), nil)

	p := postulanteValido()
	id, err := s.Create(p)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	guardado, err := s.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, domain.PostulantePendiente, guardado.Estado)
	assert.Equal(t, domain.FuenteOtro, guardado.Fuente)
	assert.False(t, guardado.FechaPostulacion.IsZero())
}

func TestPostulanteService_CreateRechazaDNIInvalido(t *testing.T) {
	s := NewPostulanteService(newTestStore(t), nil)

	p := postulanteValido()
	p.DNI = "123"

	_, err := s.Create(p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidacion))

	// Nada quedó persistido
	todos, err := s.GetAll(PostulanteFiltros{})
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestPostulanteService_CreateRechazaFuenteDesconocida(t *testing.T) {
	s := NewPostulanteService(newTestStore(t), nil)

	p := postulanteValido()
	p.Fuente = "paloma_mensajera"

	_, err := s.Create(p)
	assert.True(t, errors.Is(err, domain.ErrValidacion))
}

func TestPostulanteService_GetByIDNoEncontrado(t *testing.T) {
	s := NewPostulanteService(newTestStore(t), nil)

	_, err := s.GetByID("no-existe")
	assert.True(t, errors.Is(err, domain.ErrNoEncontrado))
}

func TestPostulanteService_UpdateDescartaCamposInmutables(t *testing.T) {
	s := NewPostulanteService(newTestStore(t), nil)

	p := postulanteValido()
	id, err := s.Create(p)
	require.NoError(t, err)
	original, err := s.GetByID(id)
	require.NoError(t, err)

	err = s.Update(id, map[string]any{
		"puestoDeseado":    "Supervisor",
		"fechaPostulacion": "2020-01-01T00:00:00Z",
		"id":               "otro-id",
	})
	require.NoError(t, err)

	actualizado, err := s.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Supervisor", actualizado.PuestoDeseado)
	assert.Equal(t, id, actualizado.ID)
	assert.True(t, original.FechaPostulacion.Equal(actualizado.FechaPostulacion))
}

func TestPostulanteService_UpdateEstadoTransicionValida(t *testing.T) {
	s := NewPostulanteService(newTestStore(t), nil)

	id, err := s.Create(postulanteValido())
	require.NoError(t, err)

	err = s.UpdateEstado(id, domain.PostulanteEnRevision, "user123", "Iniciando revisión")
	require.NoError(t, err)

	p, err := s.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, domain.PostulanteEnRevision, p.Estado)
	assert.Equal(t, "user123", p.ActualizadoPor)
	assert.Equal(t, "Iniciando revisión", p.Observaciones)
}

func TestPostulanteService_UpdateEstadoTransicionInvalida(t *testing.T) {
	s := NewPostulanteService(newTestStore(t), nil)

	id, err := s.Create(postulanteValido())
	require.NoError(t, err)

	// pendiente no puede saltar directo a aprobado
	err = s.UpdateEstado(id, domain.PostulanteAprobado, "user123", "")
	assert.True(t, errors.Is(err, domain.ErrTransicionInvalida))

	p, err := s.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, domain.PostulantePendiente, p.Estado)
}

func TestPostulanteService_RechazoRequiereMotivo(t *testing.T) {
	s := NewPostulanteService(newTestStore(t), nil)

	id, err := s.Create(postulanteValido())
	require.NoError(t, err)
	require.NoError(t, s.UpdateEstado(id, domain.PostulanteEnRevision, "user123", "revisión"))

	err = s.UpdateEstado(id, domain.PostulanteRechazado, "user123", "   ")
	assert.True(t, errors.Is(err, domain.ErrMotivoRequerido))

	err = s.UpdateEstado(id, domain.PostulanteRechazado, "user123", "No cumple el perfil")
	require.NoError(t, err)

	p, err := s.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, domain.PostulanteRechazado, p.Estado)
	assert.Equal(t, "No cumple el perfil", p.Observaciones)
}

func TestPostulanteService_RechazadoPuedeVolverARevision(t *testing.T) {
	s := NewPostulanteService(newTestStore(t), nil)

	id, err := s.Create(postulanteValido())
	require.NoError(t, err)
	require.NoError(t, s.UpdateEstado(id, domain.PostulanteEnRevision, "u", "revisión"))
	require.NoError(t, s.UpdateEstado(id, domain.PostulanteRechazado, "u", "incompleto"))

	err = s.UpdateEstado(id, domain.PostulanteEnRevision, "u", "reconsideración")
	require.NoError(t, err)

	p, err := s.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, domain.PostulanteEnRevision, p.Estado)
}

func aprobarPostulante(t *testing.T, s *PostulanteService, id string) {
	t.Helper()
	require.NoError(t, s.UpdateEstado(id, domain.PostulanteEnRevision, "rrhh", "revisión"))
	require.NoError(t, s.UpdateEstado(id, domain.PostulanteAprobado, "rrhh", ""))
}

func TestPostulanteService_ConvertirRequiereAprobado(t *testing.T) {
	s := NewPostulanteService(newTestStore(t), nil)

	id, err := s.Create(postulanteValido())
	require.NoError(t, err)

	_, err = s.ConvertirAEmpleado(id, "rrhh")
	assert.True(t, errors.Is(err, domain.ErrPostulanteNoAprobado))
}

func TestPostulanteService_ConvertirAEmpleado(t *testing.T) {
	s := NewPostulanteService(newTestStore(t), nil)

	id, err := s.Create(postulanteValido())
	require.NoError(t, err)
	aprobarPostulante(t, s, id)

	draft, err := s.ConvertirAEmpleado(id, "rrhh")
	require.NoError(t, err)
	require.NotNil(t, draft)

	// El borrador copia los datos personales y marca los operativos
	assert.Equal(t, "12345678", draft.DNI)
	assert.Equal(t, "Operario", draft.Puesto)
	assert.Equal(t, domain.ValorPorDefinir, draft.BancoPago)
	assert.Equal(t, domain.ValorPorDefinir, draft.RegimenLaboral)
	assert.Equal(t, id, draft.PostulanteID)
	assert.True(t, draft.Activo)

	// El postulante quedó contratado con la conversión estampada en "pending"
	p, err := s.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, domain.PostulanteContratado, p.Estado)
	require.NotNil(t, p.ConvertedToEmployee)
	assert.Equal(t, "pending", p.ConvertedToEmployee.EmpleadoID)
	assert.Equal(t, "rrhh", p.ConvertedToEmployee.ConvertidoPor)

	// Contratado es terminal: una segunda conversión falla y no toca la estampa
	_, err = s.ConvertirAEmpleado(id, "otro-usuario")
	assert.True(t, errors.Is(err, domain.ErrPostulanteNoAprobado))

	p, err = s.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, p.ConvertedToEmployee)
	assert.Equal(t, "pending", p.ConvertedToEmployee.EmpleadoID)
	assert.Equal(t, "rrhh", p.ConvertedToEmployee.ConvertidoPor)
}

func TestPostulanteService_RegistrarEmpleadoConvertido(t *testing.T) {
	st := newTestStore(t)
	s := NewPostulanteService(st, nil)

	id, err := s.Create(postulanteValido())
	require.NoError(t, err)
	aprobarPostulante(t, s, id)

	_, err = s.ConvertirAEmpleado(id, "rrhh")
	require.NoError(t, err)

	empleadoID, err := s.RegistrarEmpleadoConvertido(id, "rrhh")
	require.NoError(t, err)
	assert.NotEmpty(t, empleadoID)

	// El marcador "pending" fue reemplazado por el ID definitivo
	p, err := s.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, p.ConvertedToEmployee)
	assert.Equal(t, empleadoID, p.ConvertedToEmployee.EmpleadoID)

	// El empleado existe en su colección
	doc, err := st.GetByID(store.ColEmpleados, empleadoID)
	require.NoError(t, err)
	require.NotNil(t, doc)

	// Registrar dos veces no crea un segundo empleado
	_, err = s.RegistrarEmpleadoConvertido(id, "rrhh")
	assert.True(t, errors.Is(err, domain.ErrValidacion))
}

func TestPostulanteService_RegistrarSinConversionPendiente(t *testing.T) {
	s := NewPostulanteService(newTestStore(t), nil)

	id, err := s.Create(postulanteValido())
	require.NoError(t, err)

	_, err = s.RegistrarEmpleadoConvertido(id, "rrhh")
	assert.True(t, errors.Is(err, domain.ErrValidacion))
}

func TestPostulanteService_Search(t *testing.T) {
	s := NewPostulanteService(newTestStore(t), nil)

	p1 := postulanteValido()
	_, err := s.Create(p1)
	require.NoError(t, err)

	p2 := postulanteValido()
	p2.DNI = "87654321"
	p2.Nombres = "María"
	p2.ApellidoPaterno = "Juanes"
	p2.Email = "maria@example.com"
	_, err = s.Create(p2)
	require.NoError(t, err)

	p3 := postulanteValido()
	p3.DNI = "11112222"
	p3.Nombres = "Pedro"
	p3.ApellidoPaterno = "Lopez"
	p3.Email = "pedro@example.com"
	_, err = s.Create(p3)
	require.NoError(t, err)

	// "juan" coincide con los nombres de p1 y el apellido de p2,
	// sin distinguir mayúsculas
	matches, err := s.Search("JUAN")
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	matches, err = s.Search("87654321")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "María", matches[0].Nombres)

	// Término vacío retorna todos
	matches, err = s.Search("  ")
	require.NoError(t, err)
	assert.Len(t, matches, 3)
}

func TestPostulanteService_StatsParticionanPorEstado(t *testing.T) {
	s := NewPostulanteService(newTestStore(t), nil)

	dnis := []string{"11111111", "22222222", "33333333"}
	ids := make([]string, 0, len(dnis))
	for _, dni := range dnis {
		p := postulanteValido()
		p.DNI = dni
		id, err := s.Create(p)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	require.NoError(t, s.UpdateEstado(ids[0], domain.PostulanteEnRevision, "u", "revisión"))
	require.NoError(t, s.UpdateEstado(ids[1], domain.PostulanteEnRevision, "u", "revisión"))
	require.NoError(t, s.UpdateEstado(ids[1], domain.PostulanteAprobado, "u", ""))

	stats, err := s.Stats()
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Pendientes)
	assert.Equal(t, 1, stats.EnRevision)
	assert.Equal(t, 1, stats.Aprobados)
	assert.Equal(t, 0, stats.Rechazados)
	assert.Equal(t, 0, stats.Contratados)

	// Los conteos por estado suman el total
	suma := stats.Pendientes + stats.EnRevision + stats.Aprobados + stats.Rechazados + stats.Contratados
	assert.Equal(t, stats.Total, suma)

	// Todos se crearon ahora
	assert.Equal(t, 3, stats.Hoy)
	assert.Equal(t, 3, stats.EstaSemana)
}

func TestPostulanteService_GetAllConFiltros(t *testing.T) {
	s := NewPostulanteService(newTestStore(t), nil)

	p1 := postulanteValido()
	_, err := s.Create(p1)
	require.NoError(t, err)

	p2 := postulanteValido()
	p2.DNI = "87654321"
	p2.PuestoDeseado = "Chofer"
	id2, err := s.Create(p2)
	require.NoError(t, err)
	require.NoError(t, s.UpdateEstado(id2, domain.PostulanteEnRevision, "u", "revisión"))

	porEstado, err := s.GetAll(PostulanteFiltros{Estado: domain.PostulanteEnRevision})
	require.NoError(t, err)
	require.Len(t, porEstado, 1)
	assert.Equal(t, "87654321", porEstado[0].DNI)

	porPuesto, err := s.GetAll(PostulanteFiltros{Puesto: "chofer"})
	require.NoError(t, err)
	require.Len(t, porPuesto, 1)
	assert.Equal(t, "Chofer", porPuesto[0].PuestoDeseado)
}
