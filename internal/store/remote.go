package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/echononb/empleados-columbito-sub000/internal/domain"
)

// tablas mapea cada colección a su tabla en la base de datos remota
var tablas = map[string]string{
	ColPostulantes:     "applicants",
	ColEntrevistas:     "interviews",
	ColEmpleados:       "employees",
	ColProyectos:       "projects",
	ColClientes:        "clients",
	ColPerfilesUsuario: "user_profiles",
	ColRolesPendientes: "pending_roles",
}

// RemoteStore implementa RecordStore sobre PostgreSQL usando una tabla de
// documentos JSONB por colección
type RemoteStore struct {
	db *sql.DB
}

// NewRemoteStore crea el almacén remoto sobre la conexión dada
func NewRemoteStore(db *sql.DB) *RemoteStore {
	return &RemoteStore{db: db}
}

func tabla(collection string) (string, error) {
	t, ok := tablas[collection]
	if !ok {
		return "", fmt.Errorf("colección desconocida: %s", collection)
	}
	return t, nil
}

// GetAll obtiene todos los documentos de una colección
func (r *RemoteStore) GetAll(collection string) ([]Document, error) {
	t, err := tabla(collection)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(fmt.Sprintf(`SELECT id, data FROM %s ORDER BY created_at`, t))
	if err != nil {
		return nil, fmt.Errorf("error al consultar %s: %w", collection, err)
	}
	defer rows.Close()

	docs := []Document{}
	for rows.Next() {
		var doc Document
		var raw []byte
		if err := rows.Scan(&doc.ID, &raw); err != nil {
			return nil, fmt.Errorf("error al leer fila de %s: %w", collection, err)
		}
		doc.Data = json.RawMessage(raw)
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al recorrer %s: %w", collection, err)
	}

	return docs, nil
}

// GetByID obtiene un documento por su ID; retorna nil sin error si no existe
func (r *RemoteStore) GetByID(collection, id string) (*Document, error) {
	t, err := tabla(collection)
	if err != nil {
		return nil, err
	}

	var raw []byte
	err = r.db.QueryRow(fmt.Sprintf(`SELECT data FROM %s WHERE id = $1`, t), id).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error al obtener %s/%s: %w", collection, id, err)
	}

	return &Document{ID: id, Data: json.RawMessage(raw)}, nil
}

// Create crea un documento con un ID generado y retorna el ID
func (r *RemoteStore) Create(collection string, data any) (string, error) {
	t, err := tabla(collection)
	if err != nil {
		return "", err
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("error al serializar documento de %s: %w", collection, err)
	}

	id := uuid.NewString()
	query := fmt.Sprintf(`
		INSERT INTO %s (id, data, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
	`, t)

	if _, err := r.db.Exec(query, id, raw); err != nil {
		return "", fmt.Errorf("error al crear documento en %s: %w", collection, err)
	}

	return id, nil
}

// Update aplica una actualización parcial combinando el JSONB del documento
// con las claves del parcial
func (r *RemoteStore) Update(collection, id string, partial any) error {
	t, err := tabla(collection)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(partial)
	if err != nil {
		return fmt.Errorf("error al serializar actualización de %s: %w", collection, err)
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET data = data || $2::jsonb, updated_at = NOW()
		WHERE id = $1
	`, t)

	result, err := r.db.Exec(query, id, raw)
	if err != nil {
		return fmt.Errorf("error al actualizar %s/%s: %w", collection, id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar actualización de %s/%s: %w", collection, id, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("documento %s/%s: %w", collection, id, domain.ErrNoEncontrado)
	}

	return nil
}

// Delete elimina un documento
func (r *RemoteStore) Delete(collection, id string) error {
	t, err := tabla(collection)
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, t), id); err != nil {
		return fmt.Errorf("error al eliminar %s/%s: %w", collection, id, err)
	}

	return nil
}

// Clear elimina todos los documentos de una colección
func (r *RemoteStore) Clear(collection string) error {
	t, err := tabla(collection)
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(fmt.Sprintf(`DELETE FROM %s`, t)); err != nil {
		return fmt.Errorf("error al vaciar %s: %w", collection, err)
	}

	return nil
}
