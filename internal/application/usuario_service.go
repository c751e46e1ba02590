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

type UsuarioService struct {
	store     *store.Store
	validator *Validator
}

// NewUsuarioService crea una nueva instancia del servicio de usuarios
func NewUsuarioService(st *store.Store) *UsuarioService {
	return &UsuarioService{store: st, validator: &Validator{}}
}

func decodePerfil(doc store.Document) (*domain.PerfilUsuario, error) {
	var u domain.PerfilUsuario
	if err := json.Unmarshal(doc.Data, &u); err != nil {
		return nil, fmt.Errorf("error al decodificar perfil %s: %w", doc.ID, err)
	}
	u.ID = doc.ID
	return &u, nil
}

// GetAll obtiene todos los perfiles de usuario
func (s *UsuarioService) GetAll() ([]domain.PerfilUsuario, error) {
	docs, err := s.store.GetAll(store.ColPerfilesUsuario)
	if err != nil {
		return nil, fmt.Errorf("error al obtener perfiles: %w", err)
	}

	perfiles := []domain.PerfilUsuario{}
	for _, doc := range docs {
		u, err := decodePerfil(doc)
		if err != nil {
			log.Printf("Se omite perfil con datos corruptos: %v", err)
			continue
		}
		perfiles = append(perfiles, *u)
	}

	return perfiles, nil
}

// GetByID obtiene un perfil por su ID
func (s *UsuarioService) GetByID(id string) (*domain.PerfilUsuario, error) {
	doc, err := s.store.GetByID(store.ColPerfilesUsuario, id)
	if err != nil {
		return nil, fmt.Errorf("error al obtener perfil: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("perfil %s: %w", id, domain.ErrNoEncontrado)
	}
	return decodePerfil(*doc)
}

// Create registra un nuevo perfil de usuario. Los roles heredados
// (admin/user) se normalizan al esquema unificado.
func (s *UsuarioService) Create(u *domain.PerfilUsuario) (string, error) {
	if err := s.validator.ValidateEmail(u.Email); err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrValidacion, err.Error())
	}

	rol, ok := domain.NormalizarRol(string(u.Rol))
	if !ok {
		return "", fmt.Errorf("%w: rol inválido: %s", domain.ErrValidacion, u.Rol)
	}
	u.Rol = rol

	now := time.Now()
	u.FechaCreacion = now
	u.FechaActualizacion = now

	id, err := s.store.Create(store.ColPerfilesUsuario, u)
	if err != nil {
		return "", fmt.Errorf("error al crear perfil: %w", err)
	}
	u.ID = id
	return id, nil
}

// ActualizarRol cambia el rol de un usuario, normalizando valores heredados
func (s *UsuarioService) ActualizarRol(id, rol string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	normalizado, ok := domain.NormalizarRol(rol)
	if !ok {
		return fmt.Errorf("%w: rol inválido: %s", domain.ErrValidacion, rol)
	}

	partial := map[string]any{
		"rol":                normalizado,
		"fechaActualizacion": time.Now(),
	}
	if err := s.store.Update(store.ColPerfilesUsuario, id, partial); err != nil {
		return fmt.Errorf("error al actualizar rol: %w", err)
	}
	return nil
}

// SolicitarRol encola una solicitud de rol pendiente de aprobación
func (s *UsuarioService) SolicitarRol(sol *domain.SolicitudRol) (string, error) {
	if err := s.validator.ValidateEmail(sol.Email); err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrValidacion, err.Error())
	}
	if _, ok := domain.NormalizarRol(sol.RolSolicitado); !ok {
		return "", fmt.Errorf("%w: rol inválido: %s", domain.ErrValidacion, sol.RolSolicitado)
	}

	sol.FechaCreacion = time.Now()

	id, err := s.store.Create(store.ColRolesPendientes, sol)
	if err != nil {
		return "", fmt.Errorf("error al crear solicitud de rol: %w", err)
	}
	sol.ID = id
	return id, nil
}

// SolicitudesPendientes lista las solicitudes de rol en cola
func (s *UsuarioService) SolicitudesPendientes() ([]domain.SolicitudRol, error) {
	docs, err := s.store.GetAll(store.ColRolesPendientes)
	if err != nil {
		return nil, fmt.Errorf("error al obtener solicitudes: %w", err)
	}

	solicitudes := []domain.SolicitudRol{}
	for _, doc := range docs {
		var sol domain.SolicitudRol
		if err := json.Unmarshal(doc.Data, &sol); err != nil {
			log.Printf("Se omite solicitud con datos corruptos: %v", err)
			continue
		}
		sol.ID = doc.ID
		solicitudes = append(solicitudes, sol)
	}

	return solicitudes, nil
}

// AprobarSolicitud aplica la solicitud de rol al perfil del usuario con el
// email indicado y la retira de la cola
func (s *UsuarioService) AprobarSolicitud(solicitudID string) error {
	doc, err := s.store.GetByID(store.ColRolesPendientes, solicitudID)
	if err != nil {
		return fmt.Errorf("error al obtener solicitud: %w", err)
	}
	if doc == nil {
		return fmt.Errorf("solicitud %s: %w", solicitudID, domain.ErrNoEncontrado)
	}

	var sol domain.SolicitudRol
	if err := json.Unmarshal(doc.Data, &sol); err != nil {
		return fmt.Errorf("error al decodificar solicitud: %w", err)
	}

	perfiles, err := s.GetAll()
	if err != nil {
		return err
	}

	var perfil *domain.PerfilUsuario
	for i := range perfiles {
		if strings.EqualFold(perfiles[i].Email, sol.Email) {
			perfil = &perfiles[i]
			break
		}
	}
	if perfil == nil {
		return fmt.Errorf("perfil con email %s: %w", sol.Email, domain.ErrNoEncontrado)
	}

	if err := s.ActualizarRol(perfil.ID, sol.RolSolicitado); err != nil {
		return err
	}

	if err := s.store.Delete(store.ColRolesPendientes, solicitudID); err != nil {
		return fmt.Errorf("rol actualizado pero error al retirar solicitud: %w", err)
	}

	return nil
}
