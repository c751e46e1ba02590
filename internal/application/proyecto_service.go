package application

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/echononb/empleados-columbito-sub000/internal/domain"
	"github.com/echononb/empleados-columbito-sub000/internal/store"
)

type ProyectoService struct {
	store *store.Store
}

// NewProyectoService crea una nueva instancia del servicio de proyectos
func NewProyectoService(st *store.Store) *ProyectoService {
	return &ProyectoService{store: st}
}

func decodeProyecto(doc store.Document) (*domain.Proyecto, error) {
	var p domain.Proyecto
	if err := json.Unmarshal(doc.Data, &p); err != nil {
		return nil, fmt.Errorf("error al decodificar proyecto %s: %w", doc.ID, err)
	}
	p.ID = doc.ID
	return &p, nil
}

// GetAll obtiene todos los proyectos; con soloActivos filtra los inactivos
func (s *ProyectoService) GetAll(soloActivos bool) ([]domain.Proyecto, error) {
	docs, err := s.store.GetAll(store.ColProyectos)
	if err != nil {
		return nil, fmt.Errorf("error al obtener proyectos: %w", err)
	}

	proyectos := []domain.Proyecto{}
	for _, doc := range docs {
		p, err := decodeProyecto(doc)
		if err != nil {
			log.Printf("Se omite proyecto con datos corruptos: %v", err)
			continue
		}
		if soloActivos && !p.Activo {
			continue
		}
		proyectos = append(proyectos, *p)
	}

	return proyectos, nil
}

// GetByID obtiene un proyecto por su ID
func (s *ProyectoService) GetByID(id string) (*domain.Proyecto, error) {
	doc, err := s.store.GetByID(store.ColProyectos, id)
	if err != nil {
		return nil, fmt.Errorf("error al obtener proyecto: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("proyecto %s: %w", id, domain.ErrNoEncontrado)
	}
	return decodeProyecto(*doc)
}

// Create registra un nuevo proyecto y retorna su ID
func (s *ProyectoService) Create(p *domain.Proyecto) (string, error) {
	if p.Nombre == "" {
		return "", fmt.Errorf("%w: el nombre del proyecto es requerido", domain.ErrValidacion)
	}

	now := time.Now()
	p.FechaCreacion = now
	p.FechaActualizacion = now

	id, err := s.store.Create(store.ColProyectos, p)
	if err != nil {
		return "", fmt.Errorf("error al crear proyecto: %w", err)
	}
	p.ID = id
	return id, nil
}

// Update aplica una actualización parcial sobre un proyecto
func (s *ProyectoService) Update(id string, partial map[string]any) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	delete(partial, "id")
	delete(partial, "fechaCreacion")
	partial["fechaActualizacion"] = time.Now()

	if err := s.store.Update(store.ColProyectos, id, partial); err != nil {
		return fmt.Errorf("error al actualizar proyecto: %w", err)
	}
	return nil
}

// Delete elimina un proyecto
func (s *ProyectoService) Delete(id string) error {
	if err := s.store.Delete(store.ColProyectos, id); err != nil {
		return fmt.Errorf("error al eliminar proyecto: %w", err)
	}
	return nil
}

// AsignarEmpleado agrega un empleado al proyecto y el proyecto al empleado.
// Relee ambos registros antes de verificar la membresía para reducir (no
// eliminar) la ventana de carrera de envíos duplicados; no es una transacción.
func (s *ProyectoService) AsignarEmpleado(proyectoID, empleadoID string) error {
	proyecto, err := s.GetByID(proyectoID)
	if err != nil {
		return err
	}

	empDoc, err := s.store.GetByID(store.ColEmpleados, empleadoID)
	if err != nil {
		return fmt.Errorf("error al obtener empleado: %w", err)
	}
	if empDoc == nil {
		return fmt.Errorf("empleado %s: %w", empleadoID, domain.ErrNoEncontrado)
	}
	empleado, err := decodeEmpleado(*empDoc)
	if err != nil {
		return err
	}

	if contiene(proyecto.EmpleadoIDs, empleadoID) {
		return fmt.Errorf("%w", domain.ErrYaAsignado)
	}

	now := time.Now()
	if err := s.store.Update(store.ColProyectos, proyectoID, map[string]any{
		"empleadoIds":        append(proyecto.EmpleadoIDs, empleadoID),
		"fechaActualizacion": now,
	}); err != nil {
		return fmt.Errorf("error al asignar empleado al proyecto: %w", err)
	}

	if !contiene(empleado.ProyectoIDs, proyectoID) {
		if err := s.store.Update(store.ColEmpleados, empleadoID, map[string]any{
			"proyectoIds":        append(empleado.ProyectoIDs, proyectoID),
			"fechaActualizacion": now,
		}); err != nil {
			return fmt.Errorf("empleado asignado al proyecto pero error al actualizar empleado: %w", err)
		}
	}

	return nil
}

// RetirarEmpleado quita un empleado del proyecto y el proyecto del empleado
func (s *ProyectoService) RetirarEmpleado(proyectoID, empleadoID string) error {
	proyecto, err := s.GetByID(proyectoID)
	if err != nil {
		return err
	}

	if !contiene(proyecto.EmpleadoIDs, empleadoID) {
		return fmt.Errorf("%w", domain.ErrNoAsignado)
	}

	now := time.Now()
	if err := s.store.Update(store.ColProyectos, proyectoID, map[string]any{
		"empleadoIds":        sinElemento(proyecto.EmpleadoIDs, empleadoID),
		"fechaActualizacion": now,
	}); err != nil {
		return fmt.Errorf("error al retirar empleado del proyecto: %w", err)
	}

	empDoc, err := s.store.GetByID(store.ColEmpleados, empleadoID)
	if err != nil || empDoc == nil {
		// El lado del proyecto ya quedó actualizado
		return nil
	}
	empleado, err := decodeEmpleado(*empDoc)
	if err != nil {
		return nil
	}
	if contiene(empleado.ProyectoIDs, proyectoID) {
		if err := s.store.Update(store.ColEmpleados, empleadoID, map[string]any{
			"proyectoIds":        sinElemento(empleado.ProyectoIDs, proyectoID),
			"fechaActualizacion": now,
		}); err != nil {
			log.Printf("Error al actualizar proyectos del empleado %s: %v", empleadoID, err)
		}
	}

	return nil
}

func contiene(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func sinElemento(ids []string, id string) []string {
	filtered := []string{}
	for _, v := range ids {
		if v != id {
			filtered = append(filtered, v)
		}
	}
	return filtered
}
