package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"

	"github.com/echononb/empleados-columbito-sub000/internal/config"
)

// Tablas de documentos del servicio, una por colección
var tablas = []string{
	"applicants",
	"interviews",
	"employees",
	"projects",
	"clients",
	"user_profiles",
	"pending_roles",
}

func main() {
	cfg := config.Load()

	if !cfg.IsDBConfigured() {
		log.Fatal("Base de datos no configurada, nada que migrar")
	}

	db, err := sql.Open("postgres", cfg.GetDBConnString())
	if err != nil {
		log.Fatalf("Error al abrir conexión a la base de datos: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Error al conectar con la base de datos: %v", err)
	}

	for _, tabla := range tablas {
		query := fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id TEXT PRIMARY KEY,
				data JSONB NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`, tabla)

		if _, err := db.Exec(query); err != nil {
			log.Fatalf("Error al crear la tabla %s: %v", tabla, err)
		}
		log.Printf("Tabla %s lista", tabla)
	}

	log.Println("Migraciones completadas")
}
