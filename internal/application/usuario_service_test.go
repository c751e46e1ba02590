package application

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echononb/empleados-columbito-sub000/internal/domain"
)

func TestUsuarioService_CreateNormalizaRolHeredado(t *testing.T) {
	s := NewUsuarioService(newTestStore(t))

	id, err := s.Create(&domain.PerfilUsuario{
		Email:          "admin@example.com",
		NombreCompleto: "Admin Principal",
		Rol:            "admin",
		Activo:         true,
	})
	require.NoError(t, err)

	u, err := s.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, domain.RolAdministrador, u.Rol)
}

func TestUsuarioService_CreateRechazaRolDesconocido(t *testing.T) {
	s := NewUsuarioService(newTestStore(t))

	_, err := s.Create(&domain.PerfilUsuario{
		Email: "x@example.com",
		Rol:   "superusuario",
	})
	assert.True(t, errors.Is(err, domain.ErrValidacion))
}

func TestUsuarioService_ActualizarRol(t *testing.T) {
	s := NewUsuarioService(newTestStore(t))

	id, err := s.Create(&domain.PerfilUsuario{
		Email: "ana@example.com",
		Rol:   "user",
	})
	require.NoError(t, err)

	// user heredado se normalizó a consulta
	u, err := s.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, domain.RolConsulta, u.Rol)

	require.NoError(t, s.ActualizarRol(id, "digitador"))

	u, err = s.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, domain.RolDigitador, u.Rol)

	err = s.ActualizarRol(id, "rey")
	assert.True(t, errors.Is(err, domain.ErrValidacion))
}

func TestUsuarioService_FlujoSolicitudDeRol(t *testing.T) {
	s := NewUsuarioService(newTestStore(t))

	perfilID, err := s.Create(&domain.PerfilUsuario{
		Email: "ana@example.com",
		Rol:   "consulta",
	})
	require.NoError(t, err)

	solicitudID, err := s.SolicitarRol(&domain.SolicitudRol{
		Email:         "Ana@Example.com",
		RolSolicitado: "administrador",
		Mensaje:       "Necesito gestionar postulantes",
	})
	require.NoError(t, err)

	pendientes, err := s.SolicitudesPendientes()
	require.NoError(t, err)
	require.Len(t, pendientes, 1)

	require.NoError(t, s.AprobarSolicitud(solicitudID))

	// El rol se aplicó ignorando mayúsculas del email y la cola quedó vacía
	u, err := s.GetByID(perfilID)
	require.NoError(t, err)
	assert.Equal(t, domain.RolAdministrador, u.Rol)

	pendientes, err = s.SolicitudesPendientes()
	require.NoError(t, err)
	assert.Empty(t, pendientes)
}

func TestUsuarioService_AprobarSolicitudSinPerfil(t *testing.T) {
	s := NewUsuarioService(newTestStore(t))

	solicitudID, err := s.SolicitarRol(&domain.SolicitudRol{
		Email:         "nadie@example.com",
		RolSolicitado: "digitador",
	})
	require.NoError(t, err)

	err = s.AprobarSolicitud(solicitudID)
	assert.True(t, errors.Is(err, domain.ErrNoEncontrado))
}
