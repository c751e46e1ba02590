package application

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/echononb/empleados-columbito-sub000/internal/domain"
	"github.com/echononb/empleados-columbito-sub000/internal/store"
)

type EmpleadoService struct {
	store     *store.Store
	validator *Validator
}

// NewEmpleadoService crea una nueva instancia del servicio de empleados
func NewEmpleadoService(st *store.Store) *EmpleadoService {
	return &EmpleadoService{store: st, validator: &Validator{}}
}

func decodeEmpleado(doc store.Document) (*domain.Empleado, error) {
	var e domain.Empleado
	if err := json.Unmarshal(doc.Data, &e); err != nil {
		return nil, fmt.Errorf("error al decodificar empleado %s: %w", doc.ID, err)
	}
	e.ID = doc.ID
	return &e, nil
}

// GetAll obtiene todos los empleados; con soloActivos filtra los inactivos
func (s *EmpleadoService) GetAll(soloActivos bool) ([]domain.Empleado, error) {
	docs, err := s.store.GetAll(store.ColEmpleados)
	if err != nil {
		return nil, fmt.Errorf("error al obtener empleados: %w", err)
	}

	empleados := []domain.Empleado{}
	for _, doc := range docs {
		e, err := decodeEmpleado(doc)
		if err != nil {
			log.Printf("Se omite empleado con datos corruptos: %v", err)
			continue
		}
		if soloActivos && !e.Activo {
			continue
		}
		empleados = append(empleados, *e)
	}

	return empleados, nil
}

// GetByID obtiene un empleado por su ID
func (s *EmpleadoService) GetByID(id string) (*domain.Empleado, error) {
	doc, err := s.store.GetByID(store.ColEmpleados, id)
	if err != nil {
		return nil, fmt.Errorf("error al obtener empleado: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("empleado %s: %w", id, domain.ErrNoEncontrado)
	}
	return decodeEmpleado(*doc)
}

// Create registra un nuevo empleado y retorna su ID
func (s *EmpleadoService) Create(e *domain.Empleado) (string, error) {
	if err := s.validator.ValidateDNI(e.DNI); err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrValidacion, err.Error())
	}
	if err := s.validator.ValidateName(e.Nombres, "nombre"); err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrValidacion, err.Error())
	}

	now := time.Now()
	e.FechaCreacion = now
	e.FechaActualizacion = now

	id, err := s.store.Create(store.ColEmpleados, e)
	if err != nil {
		return "", fmt.Errorf("error al crear empleado: %w", err)
	}
	e.ID = id
	return id, nil
}

// Update aplica una actualización parcial sobre un empleado
func (s *EmpleadoService) Update(id string, partial map[string]any) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	delete(partial, "id")
	delete(partial, "fechaCreacion")
	partial["fechaActualizacion"] = time.Now()

	if err := s.store.Update(store.ColEmpleados, id, partial); err != nil {
		return fmt.Errorf("error al actualizar empleado: %w", err)
	}
	return nil
}

// Delete elimina un empleado
func (s *EmpleadoService) Delete(id string) error {
	if err := s.store.Delete(store.ColEmpleados, id); err != nil {
		return fmt.Errorf("error al eliminar empleado: %w", err)
	}
	return nil
}

// Search busca empleados por nombres, apellidos, DNI, puesto o email
func (s *EmpleadoService) Search(term string) ([]domain.Empleado, error) {
	empleados, err := s.GetAll(false)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return empleados, nil
	}

	matches := []domain.Empleado{}
	for _, e := range empleados {
		campos := []string{e.Nombres, e.ApellidoPaterno, e.ApellidoMaterno, e.DNI, e.Puesto, e.Email}
		for _, campo := range campos {
			if strings.Contains(strings.ToLower(campo), term) {
				matches = append(matches, e)
				break
			}
		}
	}

	return matches, nil
}
