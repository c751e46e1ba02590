package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config agrupa toda la configuración del servicio leída del entorno
type Config struct {
	ServerPort string
	CORSOrigin string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	MirrorDir string

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
	SMTPFromName string

	S3Bucket string
	S3Region string
}

// Load lee el archivo .env si existe y construye la configuración
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No se encontró archivo .env, usando variables de entorno")
	}

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		CORSOrigin: getEnv("CORS_ORIGIN", "*"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		MirrorDir: getEnv("MIRROR_DIR", "datos-locales"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     os.Getenv("SMTP_FROM"),
		SMTPFromName: getEnv("SMTP_FROM_NAME", "Recursos Humanos"),

		S3Bucket: os.Getenv("S3_BUCKET"),
		S3Region: getEnv("S3_REGION", "us-east-1"),
	}
}

// IsDBConfigured indica si hay datos suficientes para conectar a la base remota
func (c *Config) IsDBConfigured() bool {
	return c.DBHost != "" && c.DBUser != "" && c.DBName != ""
}

// GetDBConnString arma la cadena de conexión a PostgreSQL
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// IsSMTPConfigured indica si el envío de correos está habilitado
func (c *Config) IsSMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPFrom != ""
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
