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

type ClienteService struct {
	store     *store.Store
	validator *Validator
}

// NewClienteService crea una nueva instancia del servicio de clientes
func NewClienteService(st *store.Store) *ClienteService {
	return &ClienteService{store: st, validator: &Validator{}}
}

func decodeCliente(doc store.Document) (*domain.Cliente, error) {
	var c domain.Cliente
	if err := json.Unmarshal(doc.Data, &c); err != nil {
		return nil, fmt.Errorf("error al decodificar cliente %s: %w", doc.ID, err)
	}
	c.ID = doc.ID
	return &c, nil
}

// GetAll obtiene todos los clientes; con soloActivos filtra los inactivos
func (s *ClienteService) GetAll(soloActivos bool) ([]domain.Cliente, error) {
	docs, err := s.store.GetAll(store.ColClientes)
	if err != nil {
		return nil, fmt.Errorf("error al obtener clientes: %w", err)
	}

	clientes := []domain.Cliente{}
	for _, doc := range docs {
		c, err := decodeCliente(doc)
		if err != nil {
			log.Printf("Se omite cliente con datos corruptos: %v", err)
			continue
		}
		if soloActivos && !c.Activo {
			continue
		}
		clientes = append(clientes, *c)
	}

	return clientes, nil
}

// GetByID obtiene un cliente por su ID
func (s *ClienteService) GetByID(id string) (*domain.Cliente, error) {
	doc, err := s.store.GetByID(store.ColClientes, id)
	if err != nil {
		return nil, fmt.Errorf("error al obtener cliente: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("cliente %s: %w", id, domain.ErrNoEncontrado)
	}
	return decodeCliente(*doc)
}

// Create registra un nuevo cliente y retorna su ID
func (s *ClienteService) Create(c *domain.Cliente) (string, error) {
	if strings.TrimSpace(c.RazonSocial) == "" {
		return "", fmt.Errorf("%w: la razón social es requerida", domain.ErrValidacion)
	}
	if c.Email != "" {
		if err := s.validator.ValidateEmail(c.Email); err != nil {
			return "", fmt.Errorf("%w: %s", domain.ErrValidacion, err.Error())
		}
	}

	now := time.Now()
	c.FechaCreacion = now
	c.FechaActualizacion = now

	id, err := s.store.Create(store.ColClientes, c)
	if err != nil {
		return "", fmt.Errorf("error al crear cliente: %w", err)
	}
	c.ID = id
	return id, nil
}

// Update aplica una actualización parcial sobre un cliente
func (s *ClienteService) Update(id string, partial map[string]any) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	delete(partial, "id")
	delete(partial, "fechaCreacion")
	partial["fechaActualizacion"] = time.Now()

	if err := s.store.Update(store.ColClientes, id, partial); err != nil {
		return fmt.Errorf("error al actualizar cliente: %w", err)
	}
	return nil
}

// Delete elimina un cliente
func (s *ClienteService) Delete(id string) error {
	if err := s.store.Delete(store.ColClientes, id); err != nil {
		return fmt.Errorf("error al eliminar cliente: %w", err)
	}
	return nil
}

// Search busca clientes por razón social, RUC, contacto o email
func (s *ClienteService) Search(term string) ([]domain.Cliente, error) {
	clientes, err := s.GetAll(false)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return clientes, nil
	}

	matches := []domain.Cliente{}
	for _, c := range clientes {
		campos := []string{c.RazonSocial, c.RUC, c.Contacto, c.Email}
		for _, campo := range campos {
			if strings.Contains(strings.ToLower(campo), term) {
				matches = append(matches, c)
				break
			}
		}
	}

	return matches, nil
}
