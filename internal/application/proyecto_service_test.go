package application

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echononb/empleados-columbito-sub000/internal/domain"
	"github.com/echononb/empleados-columbito-sub000/internal/store"
)

func crearEmpleadoPrueba(t *testing.T, s *EmpleadoService, dni string) string {
	t.Helper()
	id, err := s.Create(&domain.Empleado{
		DNI:             dni,
		Nombres:         "Juan Carlos",
		ApellidoPaterno: "Pérez",
		Puesto:          "Operario",
		Activo:          true,
	})
	require.NoError(t, err)
	return id
}

func TestProyectoService_CreateRequiereNombre(t *testing.T) {
	s := NewProyectoService(newTestStore(t))

	_, err := s.Create(&domain.Proyecto{})
	assert.True(t, errors.Is(err, domain.ErrValidacion))

	id, err := s.Create(&domain.Proyecto{Nombre: "Carretera Norte", Activo: true})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestProyectoService_AsignarYRetirarEmpleado(t *testing.T) {
	st := newTestStore(t)
	proyectos := NewProyectoService(st)
	empleados := NewEmpleadoService(st)

	proyectoID, err := proyectos.Create(&domain.Proyecto{Nombre: "Carretera Norte", Activo: true})
	require.NoError(t, err)
	empleadoID := crearEmpleadoPrueba(t, empleados, "12345678")

	require.NoError(t, proyectos.AsignarEmpleado(proyectoID, empleadoID))

	// La membresía queda en ambos lados
	proyecto, err := proyectos.GetByID(proyectoID)
	require.NoError(t, err)
	assert.Contains(t, proyecto.EmpleadoIDs, empleadoID)

	empleado, err := empleados.GetByID(empleadoID)
	require.NoError(t, err)
	assert.Contains(t, empleado.ProyectoIDs, proyectoID)

	// Asignar dos veces falla
	err = proyectos.AsignarEmpleado(proyectoID, empleadoID)
	assert.True(t, errors.Is(err, domain.ErrYaAsignado))

	require.NoError(t, proyectos.RetirarEmpleado(proyectoID, empleadoID))

	proyecto, err = proyectos.GetByID(proyectoID)
	require.NoError(t, err)
	assert.NotContains(t, proyecto.EmpleadoIDs, empleadoID)

	empleado, err = empleados.GetByID(empleadoID)
	require.NoError(t, err)
	assert.NotContains(t, empleado.ProyectoIDs, proyectoID)

	// Retirar a quien no está asignado falla
	err = proyectos.RetirarEmpleado(proyectoID, empleadoID)
	assert.True(t, errors.Is(err, domain.ErrNoAsignado))
}

func TestProyectoService_AsignarEmpleadoInexistente(t *testing.T) {
	st := newTestStore(t)
	proyectos := NewProyectoService(st)

	proyectoID, err := proyectos.Create(&domain.Proyecto{Nombre: "Planta Sur", Activo: true})
	require.NoError(t, err)

	err = proyectos.AsignarEmpleado(proyectoID, "no-existe")
	assert.True(t, errors.Is(err, domain.ErrNoEncontrado))
}

func TestProyectoService_GetAllSoloActivos(t *testing.T) {
	st := newTestStore(t)
	s := NewProyectoService(st)

	_, err := s.Create(&domain.Proyecto{Nombre: "Activo", Activo: true})
	require.NoError(t, err)
	_, err = s.Create(&domain.Proyecto{Nombre: "Cerrado", Activo: false})
	require.NoError(t, err)

	todos, err := s.GetAll(false)
	require.NoError(t, err)
	assert.Len(t, todos, 2)

	activos, err := s.GetAll(true)
	require.NoError(t, err)
	require.Len(t, activos, 1)
	assert.Equal(t, "Activo", activos[0].Nombre)
}

func TestEmpleadoService_CreateValidaDNI(t *testing.T) {
	s := NewEmpleadoService(newTestStore(t))

	_, err := s.Create(&domain.Empleado{DNI: "abc", Nombres: "Juan Carlos"})
	assert.True(t, errors.Is(err, domain.ErrValidacion))
}

func TestEmpleadoService_Search(t *testing.T) {
	s := NewEmpleadoService(newTestStore(t))

	crearEmpleadoPrueba(t, s, "12345678")
	id2 := crearEmpleadoPrueba(t, s, "87654321")
	require.NoError(t, s.Update(id2, map[string]any{"puesto": "Soldador"}))

	matches, err := s.Search("soldador")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "87654321", matches[0].DNI)
}

func TestClienteService_CreateRequiereRazonSocial(t *testing.T) {
	s := NewClienteService(newTestStore(t))

	_, err := s.Create(&domain.Cliente{})
	assert.True(t, errors.Is(err, domain.ErrValidacion))

	id, err := s.Create(&domain.Cliente{RazonSocial: "Constructora Acme SAC", RUC: "20123456789", Activo: true})
	require.NoError(t, err)

	c, err := s.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Constructora Acme SAC", c.RazonSocial)
}

func TestClienteService_Search(t *testing.T) {
	s := NewClienteService(newTestStore(t))

	_, err := s.Create(&domain.Cliente{RazonSocial: "Constructora Acme SAC", RUC: "20123456789", Activo: true})
	require.NoError(t, err)
	_, err = s.Create(&domain.Cliente{RazonSocial: "Minera Andes SA", RUC: "20999888777", Activo: true})
	require.NoError(t, err)

	matches, err := s.Search("acme")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "20123456789", matches[0].RUC)
}

func TestStore_ColeccionesSeparadas(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Create(store.ColProyectos, map[string]any{"nombre": "P"})
	require.NoError(t, err)

	docs, err := st.GetAll(store.ColClientes)
	require.NoError(t, err)
	assert.Empty(t, docs)
}
