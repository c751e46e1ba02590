package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/echononb/empleados-columbito-sub000/internal/domain"
)

// Mirror es el espejo local del almacén remoto: un archivo JSON por colección,
// nombrado por su clave de espejo, con el arreglo completo de documentos.
type Mirror struct {
	dir string
	mu  sync.RWMutex
}

// NewMirror crea el espejo local sobre el directorio indicado
func NewMirror(dir string) (*Mirror, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error al crear directorio del espejo: %w", err)
	}
	return &Mirror{dir: dir}, nil
}

func (m *Mirror) path(collection string) string {
	return filepath.Join(m.dir, MirrorKey(collection)+".json")
}

// ReadAll lee todos los documentos espejados de una colección. Una colección
// sin archivo se trata como vacía.
func (m *Mirror) ReadAll(collection string) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.readLocked(collection)
}

func (m *Mirror) readLocked(collection string) ([]Document, error) {
	raw, err := os.ReadFile(m.path(collection))
	if os.IsNotExist(err) {
		return []Document{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error al leer espejo de %s: %w", collection, err)
	}

	var docs []Document
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("error al decodificar espejo de %s: %w", collection, err)
	}
	if docs == nil {
		docs = []Document{}
	}
	return docs, nil
}

func (m *Mirror) writeLocked(collection string, docs []Document) error {
	if docs == nil {
		docs = []Document{}
	}
	raw, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("error al codificar espejo de %s: %w", collection, err)
	}
	if err := os.WriteFile(m.path(collection), raw, 0o644); err != nil {
		return fmt.Errorf("error al escribir espejo de %s: %w", collection, err)
	}
	return nil
}

// WriteAll reemplaza el contenido espejado de una colección
func (m *Mirror) WriteAll(collection string, docs []Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writeLocked(collection, docs)
}

// Find busca un documento por ID; retorna nil sin error si no existe
func (m *Mirror) Find(collection, id string) (*Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	docs, err := m.readLocked(collection)
	if err != nil {
		return nil, err
	}
	for i := range docs {
		if docs[i].ID == id {
			return &docs[i], nil
		}
	}
	return nil, nil
}

// Upsert inserta o reemplaza un documento por su ID
func (m *Mirror) Upsert(collection string, doc Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	docs, err := m.readLocked(collection)
	if err != nil {
		return err
	}

	replaced := false
	for i := range docs {
		if docs[i].ID == doc.ID {
			docs[i] = doc
			replaced = true
			break
		}
	}
	if !replaced {
		docs = append(docs, doc)
	}

	return m.writeLocked(collection, docs)
}

// Merge aplica una actualización parcial sobre un documento espejado,
// combinando las claves del parcial sobre el contenido existente
func (m *Mirror) Merge(collection, id string, partial any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	docs, err := m.readLocked(collection)
	if err != nil {
		return err
	}

	idx := -1
	for i := range docs {
		if docs[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("documento %s/%s: %w", collection, id, domain.ErrNoEncontrado)
	}

	merged, err := mergeJSON(docs[idx].Data, partial)
	if err != nil {
		return fmt.Errorf("error al combinar documento %s/%s: %w", collection, id, err)
	}
	docs[idx].Data = merged

	return m.writeLocked(collection, docs)
}

// Delete elimina un documento del espejo
func (m *Mirror) Delete(collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	docs, err := m.readLocked(collection)
	if err != nil {
		return err
	}

	filtered := docs[:0]
	for _, d := range docs {
		if d.ID != id {
			filtered = append(filtered, d)
		}
	}

	return m.writeLocked(collection, filtered)
}

// Clear vacía el espejo de una colección
func (m *Mirror) Clear(collection string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writeLocked(collection, []Document{})
}

// mergeJSON combina las claves de primer nivel del parcial sobre el JSON base
func mergeJSON(base json.RawMessage, partial any) (json.RawMessage, error) {
	var dst map[string]any
	if err := json.Unmarshal(base, &dst); err != nil {
		return nil, err
	}

	rawPartial, err := json.Marshal(partial)
	if err != nil {
		return nil, err
	}
	var src map[string]any
	if err := json.Unmarshal(rawPartial, &src); err != nil {
		return nil, err
	}

	for k, v := range src {
		dst[k] = v
	}

	return json.Marshal(dst)
}
