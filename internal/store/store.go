package store

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
)

// Colecciones del almacén de documentos
const (
	ColPostulantes     = "applicants"
	ColEntrevistas     = "interviews"
	ColEmpleados       = "employees"
	ColProyectos       = "projects"
	ColClientes        = "clients"
	ColPerfilesUsuario = "userProfiles"
	ColRolesPendientes = "pendingRoles"
)

// mirrorKeys mapea cada colección a su clave de espejo local. Las colecciones
// sin clave explícita usan "<colección>-data".
var mirrorKeys = map[string]string{
	ColPostulantes: "applicants-data",
	ColEntrevistas: "interviews-data",
	ColEmpleados:   "empleados-data",
	ColProyectos:   "proyectos-data",
	ColClientes:    "clientes-data",
}

// MirrorKey retorna la clave de espejo local de una colección
func MirrorKey(collection string) string {
	if key, ok := mirrorKeys[collection]; ok {
		return key
	}
	return collection + "-data"
}

// Document es un registro del almacén: un ID opaco y su contenido JSON
type Document struct {
	ID   string          `json:"id"`
	Data json.RawMessage `json:"data"`
}

// RecordStore define las operaciones sobre una colección de documentos
type RecordStore interface {
	// GetAll obtiene todos los documentos de una colección
	GetAll(collection string) ([]Document, error)
	// GetByID obtiene un documento por su ID; retorna nil sin error si no existe
	GetByID(collection, id string) (*Document, error)
	// Create crea un documento y retorna su ID
	Create(collection string, data any) (string, error)
	// Update aplica una actualización parcial sobre un documento existente
	Update(collection, id string, partial any) error
	// Delete elimina un documento
	Delete(collection, id string) error
	// Clear elimina todos los documentos de una colección
	Clear(collection string) error
}

// Store combina el almacén remoto con el espejo local. Toda lectura remota
// exitosa refresca el espejo con el resultado completo; si la lectura remota
// falla se sirve lo último espejado y nunca se propaga el error. Las
// escrituras intentan el remoto exactamente una vez y, si tienen éxito, se
// replican al espejo. Con remote == nil el almacén opera solo sobre el espejo.
type Store struct {
	remote RecordStore
	mirror *Mirror
}

// NewStore crea el almacén compuesto. remote puede ser nil cuando la base de
// datos remota no está configurada.
func NewStore(remote RecordStore, mirror *Mirror) *Store {
	return &Store{remote: remote, mirror: mirror}
}

// MirrorOnly indica si el almacén opera sin base de datos remota
func (s *Store) MirrorOnly() bool {
	return s.remote == nil
}

// GetAll obtiene todos los documentos de una colección
func (s *Store) GetAll(collection string) ([]Document, error) {
	if s.remote == nil {
		return s.mirror.ReadAll(collection)
	}

	docs, err := s.remote.GetAll(collection)
	if err != nil {
		log.Printf("Almacén remoto no disponible para %s, usando espejo local: %v", collection, err)
		return s.mirror.ReadAll(collection)
	}

	// Refrescar el espejo con el último estado conocido
	if err := s.mirror.WriteAll(collection, docs); err != nil {
		log.Printf("Error al refrescar espejo de %s: %v", collection, err)
	}

	return docs, nil
}

// GetByID obtiene un documento por su ID; retorna nil sin error si no existe
func (s *Store) GetByID(collection, id string) (*Document, error) {
	if s.remote == nil {
		return s.mirror.Find(collection, id)
	}

	doc, err := s.remote.GetByID(collection, id)
	if err != nil {
		log.Printf("Almacén remoto no disponible para %s/%s, usando espejo local: %v", collection, id, err)
		return s.mirror.Find(collection, id)
	}

	if doc != nil {
		if err := s.mirror.Upsert(collection, *doc); err != nil {
			log.Printf("Error al refrescar espejo de %s: %v", collection, err)
		}
	}

	return doc, nil
}

// Create crea un documento y retorna su ID
func (s *Store) Create(collection string, data any) (string, error) {
	if s.remote == nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return "", fmt.Errorf("error al serializar documento: %w", err)
		}
		id := uuid.NewString()
		if err := s.mirror.Upsert(collection, Document{ID: id, Data: raw}); err != nil {
			return "", err
		}
		return id, nil
	}

	id, err := s.remote.Create(collection, data)
	if err != nil {
		return "", err
	}

	raw, err := json.Marshal(data)
	if err == nil {
		if err := s.mirror.Upsert(collection, Document{ID: id, Data: raw}); err != nil {
			log.Printf("Error al espejar creación en %s: %v", collection, err)
		}
	}

	return id, nil
}

// Update aplica una actualización parcial sobre un documento existente
func (s *Store) Update(collection, id string, partial any) error {
	if s.remote != nil {
		if err := s.remote.Update(collection, id, partial); err != nil {
			return err
		}
	}

	if err := s.mirror.Merge(collection, id, partial); err != nil {
		if s.remote == nil {
			return err
		}
		log.Printf("Error al espejar actualización en %s/%s: %v", collection, id, err)
	}

	return nil
}

// Delete elimina un documento
func (s *Store) Delete(collection, id string) error {
	if s.remote != nil {
		if err := s.remote.Delete(collection, id); err != nil {
			return err
		}
	}

	if err := s.mirror.Delete(collection, id); err != nil {
		if s.remote == nil {
			return err
		}
		log.Printf("Error al espejar eliminación en %s/%s: %v", collection, id, err)
	}

	return nil
}

// Clear elimina todos los documentos de una colección, remota y espejada
func (s *Store) Clear(collection string) error {
	if s.remote != nil {
		if err := s.remote.Clear(collection); err != nil {
			return err
		}
	}
	return s.mirror.Clear(collection)
}
