package application

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echononb/empleados-columbito-sub000/internal/domain"
)

func entrevistaValida() *domain.Entrevista {
	return &domain.Entrevista{
		PostulanteNombre: "Juan Pérez",
		PostulanteDNI:    "12345678",
		FechaHora:        time.Now().Add(48 * time.Hour),
		Tipo:             domain.EntrevistaTelefonica,
		Entrevistador:    "Ana Torres",
	}
}

func TestEntrevistaService_CreateConDatosDenormalizados(t *testing.T) {
	s := NewEntrevistaService(newTestStore(t), nil)

	id, err := s.Create(entrevistaValida())
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	e, err := s.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, domain.EntrevistaProgramada, e.Estado)
	assert.Equal(t, "Juan Pérez", e.PostulanteNombre)
}

func TestEntrevistaService_CreateSinPostulanteNiDatos(t *testing.T) {
	s := NewEntrevistaService(newTestStore(t), nil)

	e := entrevistaValida()
	e.PostulanteNombre = ""
	e.PostulanteDNI = ""

	_, err := s.Create(e)
	assert.True(t, errors.Is(err, domain.ErrValidacion))
}

func TestEntrevistaService_CreateCopiaContactoDelPostulante(t *testing.T) {
	st := newTestStore(t)
	postulantes := NewPostulanteService(st, nil)
	s := NewEntrevistaService(st, nil)

	postulanteID, err := postulantes.Create(postulanteValido())
	require.NoError(t, err)

	e := entrevistaValida()
	e.PostulanteID = postulanteID
	e.PostulanteNombre = ""
	e.PostulanteDNI = ""

	id, err := s.Create(e)
	require.NoError(t, err)

	guardada, err := s.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Juan Carlos Pérez Gómez", guardada.PostulanteNombre)
	assert.Equal(t, "12345678", guardada.PostulanteDNI)
	assert.Equal(t, "juan.perez@example.com", guardada.PostulanteEmail)
}

func TestEntrevistaService_CreatePostulanteInexistente(t *testing.T) {
	s := NewEntrevistaService(newTestStore(t), nil)

	e := entrevistaValida()
	e.PostulanteID = "no-existe"

	_, err := s.Create(e)
	assert.True(t, errors.Is(err, domain.ErrNoEncontrado))
}

func TestEntrevistaService_PresencialRequiereLugar(t *testing.T) {
	s := NewEntrevistaService(newTestStore(t), nil)

	e := entrevistaValida()
	e.Tipo = domain.EntrevistaPresencial

	_, err := s.Create(e)
	assert.True(t, errors.Is(err, domain.ErrValidacion))

	e.Lugar = "Oficina central, sala 3"
	_, err = s.Create(e)
	require.NoError(t, err)
}

func TestEntrevistaService_ModalidadMandaSobreTipo(t *testing.T) {
	s := NewEntrevistaService(newTestStore(t), nil)

	// Una entrevista técnica con modalidad presencial también exige lugar
	e := entrevistaValida()
	e.Tipo = domain.EntrevistaTecnica
	e.Modalidad = "presencial"

	_, err := s.Create(e)
	assert.True(t, errors.Is(err, domain.ErrValidacion))

	e.Lugar = "Oficina central, sala 2"
	_, err = s.Create(e)
	require.NoError(t, err)

	// Y con modalidad video exige plataforma o enlace
	e2 := entrevistaValida()
	e2.Tipo = domain.EntrevistaFinal
	e2.Modalidad = "video"

	_, err = s.Create(e2)
	assert.True(t, errors.Is(err, domain.ErrValidacion))

	e2.Plataforma = "Zoom"
	_, err = s.Create(e2)
	require.NoError(t, err)
}

func TestEntrevistaService_VideoRequierePlataformaOEnlace(t *testing.T) {
	s := NewEntrevistaService(newTestStore(t), nil)

	e := entrevistaValida()
	e.Tipo = domain.EntrevistaVideo

	_, err := s.Create(e)
	assert.True(t, errors.Is(err, domain.ErrValidacion))

	e.Enlace = "https://meet.example.com/abc"
	_, err = s.Create(e)
	require.NoError(t, err)
}

func TestEntrevistaService_ResultadoSoloConCompletada(t *testing.T) {
	s := NewEntrevistaService(newTestStore(t), nil)

	id, err := s.Create(entrevistaValida())
	require.NoError(t, err)

	// Resultado sobre una entrevista programada
	err = s.Update(id, map[string]any{"resultado": "positivo"})
	assert.True(t, errors.Is(err, domain.ErrValidacion))

	// Resultado junto con el cierre de la entrevista
	err = s.Update(id, map[string]any{"estado": "completada", "resultado": "positivo"})
	require.NoError(t, err)

	e, err := s.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, domain.EntrevistaCompletada, e.Estado)
	assert.Equal(t, domain.ResultadoPositivo, e.Resultado)
}

func TestEntrevistaService_CancelarRequiereMotivo(t *testing.T) {
	s := NewEntrevistaService(newTestStore(t), nil)

	id, err := s.Create(entrevistaValida())
	require.NoError(t, err)

	err = s.Cancelar(id, "", "rrhh")
	assert.True(t, errors.Is(err, domain.ErrMotivoRequerido))

	err = s.Cancelar(id, "El postulante no puede asistir", "rrhh")
	require.NoError(t, err)

	e, err := s.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, domain.EntrevistaCancelada, e.Estado)
	assert.True(t, strings.Contains(e.Notas, "[Cancelada] El postulante no puede asistir"))
}

func TestEntrevistaService_ReprogramarSobrescribeFecha(t *testing.T) {
	s := NewEntrevistaService(newTestStore(t), nil)

	original := entrevistaValida()
	id, err := s.Create(original)
	require.NoError(t, err)

	nuevaFecha := time.Now().Add(96 * time.Hour).Truncate(time.Second)
	err = s.Reprogramar(id, nuevaFecha, "Conflicto de agenda", "rrhh")
	require.NoError(t, err)

	e, err := s.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, domain.EntrevistaReprogramada, e.Estado)
	assert.True(t, e.FechaHora.Equal(nuevaFecha))
	assert.True(t, strings.Contains(e.Notas, "[Reprogramada] Conflicto de agenda"))
}

func TestEntrevistaService_ReprogramarFechaRequerida(t *testing.T) {
	s := NewEntrevistaService(newTestStore(t), nil)

	id, err := s.Create(entrevistaValida())
	require.NoError(t, err)

	err = s.Reprogramar(id, time.Time{}, "motivo", "rrhh")
	assert.True(t, errors.Is(err, domain.ErrValidacion))
}

func TestEntrevistaService_GetAllConFiltros(t *testing.T) {
	s := NewEntrevistaService(newTestStore(t), nil)

	e1 := entrevistaValida()
	e1.FechaHora = time.Now().Add(24 * time.Hour)
	id1, err := s.Create(e1)
	require.NoError(t, err)

	e2 := entrevistaValida()
	e2.FechaHora = time.Now().Add(240 * time.Hour)
	_, err = s.Create(e2)
	require.NoError(t, err)

	require.NoError(t, s.Cancelar(id1, "motivo", "rrhh"))

	canceladas, err := s.GetAll(EntrevistaFiltros{Estado: domain.EntrevistaCancelada})
	require.NoError(t, err)
	assert.Len(t, canceladas, 1)

	proximas, err := s.GetAll(EntrevistaFiltros{
		Desde: time.Now(),
		Hasta: time.Now().Add(72 * time.Hour),
	})
	require.NoError(t, err)
	assert.Len(t, proximas, 1)
}

func TestEntrevistaService_Stats(t *testing.T) {
	s := NewEntrevistaService(newTestStore(t), nil)

	id1, err := s.Create(entrevistaValida())
	require.NoError(t, err)
	_, err = s.Create(entrevistaValida())
	require.NoError(t, err)

	require.NoError(t, s.Update(id1, map[string]any{"estado": "completada", "resultado": "positivo"}))

	stats, err := s.Stats()
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Programadas)
	assert.Equal(t, 1, stats.Completadas)
	assert.Equal(t, 1, stats.Positivas)
	assert.Equal(t, 2, stats.EstaSemana)
}
