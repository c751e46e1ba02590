package main

import (
	"database/sql"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/lib/pq"

	"github.com/echononb/empleados-columbito-sub000/internal/application"
	"github.com/echononb/empleados-columbito-sub000/internal/config"
	"github.com/echononb/empleados-columbito-sub000/internal/email"
	handlers "github.com/echononb/empleados-columbito-sub000/internal/interfaces/http"
	"github.com/echononb/empleados-columbito-sub000/internal/scheduler"
	services "github.com/echononb/empleados-columbito-sub000/internal/service"
	"github.com/echononb/empleados-columbito-sub000/internal/store"
)

func main() {
	cfg := config.Load()

	// Base remota opcional: sin configuración el servicio trabaja
	// solo contra el espejo local
	var remote store.RecordStore
	if cfg.IsDBConfigured() {
		db, err := sql.Open("postgres", cfg.GetDBConnString())
		if err != nil {
			log.Fatalf("Error al abrir conexión a la base de datos: %v", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			log.Printf("Advertencia: base de datos inaccesible, se usará el espejo local: %v", err)
		} else {
			remote = store.NewRemoteStore(db)
		}
	} else {
		log.Println("Base de datos no configurada, modo espejo local")
	}

	mirror, err := store.NewMirror(cfg.MirrorDir)
	if err != nil {
		log.Fatalf("Error al preparar el espejo local: %v", err)
	}

	st := store.NewStore(remote, mirror)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigin,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: cfg.CORSOrigin != "*",
		ExposeHeaders:    "Content-Length",
		MaxAge:           86400,
	}))

	// Email Client
	var emailClient *email.Client
	if cfg.IsSMTPConfigured() {
		emailClient, err = email.NewClient(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPassword,
			cfg.SMTPFromName,
			cfg.SMTPFrom,
		)
		if err != nil {
			log.Printf("Advertencia: no se pudo inicializar el cliente de email: %v", err)
			emailClient = nil // Continuar sin email
		}
	}

	// Postulantes
	rateLimiter := application.NewRateLimiter(time.Minute, 10)
	postulanteService := application.NewPostulanteService(st, emailClient)
	postulanteHandler := handlers.NewPostulanteHandler(postulanteService, rateLimiter)

	// Entrevistas
	entrevistaService := application.NewEntrevistaService(st, emailClient)
	entrevistaHandler := handlers.NewEntrevistaHandler(entrevistaService)

	// Empleados
	empleadoService := application.NewEmpleadoService(st)
	empleadoHandler := handlers.NewEmpleadoHandler(empleadoService)

	// Proyectos
	proyectoService := application.NewProyectoService(st)
	proyectoHandler := handlers.NewProyectoHandler(proyectoService)

	// Clientes
	clienteService := application.NewClienteService(st)
	clienteHandler := handlers.NewClienteHandler(clienteService)

	// Usuarios y roles
	usuarioService := application.NewUsuarioService(st)
	usuarioHandler := handlers.NewUsuarioHandler(usuarioService)

	// CVs en S3
	var cvStorage *services.CVStorageService
	if cfg.S3Bucket != "" {
		cvStorage, err = services.NewCVStorageService(cfg.S3Bucket, cfg.S3Region)
		if err != nil {
			log.Printf("Advertencia: no se pudo inicializar el almacenamiento de CVs: %v", err)
			cvStorage = nil
		}
	}
	cvHandler := handlers.NewCVHandler(cvStorage, postulanteService)

	api := app.Group("/api")

	// Rutas de postulantes
	postulantes := api.Group("/postulantes")
	postulantes.Get("/", postulanteHandler.List)
	postulantes.Get("/buscar", postulanteHandler.Search)
	postulantes.Get("/stats", postulanteHandler.Stats)
	postulantes.Get("/:id", postulanteHandler.Get)
	postulantes.Post("/", postulanteHandler.Create)
	postulantes.Put("/:id", postulanteHandler.Update)
	postulantes.Delete("/:id", postulanteHandler.Delete)
	postulantes.Patch("/:id/estado", postulanteHandler.UpdateEstado)
	postulantes.Post("/:id/convertir", postulanteHandler.Convertir)
	postulantes.Post("/:id/registrar-empleado", postulanteHandler.RegistrarEmpleado)
	postulantes.Post("/:id/cv", cvHandler.Upload)

	// Rutas de entrevistas
	entrevistas := api.Group("/entrevistas")
	entrevistas.Get("/", entrevistaHandler.List)
	entrevistas.Get("/stats", entrevistaHandler.Stats)
	entrevistas.Get("/:id", entrevistaHandler.Get)
	entrevistas.Post("/", entrevistaHandler.Create)
	entrevistas.Put("/:id", entrevistaHandler.Update)
	entrevistas.Delete("/:id", entrevistaHandler.Delete)
	entrevistas.Post("/:id/cancelar", entrevistaHandler.Cancelar)
	entrevistas.Post("/:id/reprogramar", entrevistaHandler.Reprogramar)

	// Rutas de empleados
	empleados := api.Group("/empleados")
	empleados.Get("/", empleadoHandler.List)
	empleados.Get("/buscar", empleadoHandler.Search)
	empleados.Get("/:id", empleadoHandler.Get)
	empleados.Post("/", empleadoHandler.Create)
	empleados.Put("/:id", empleadoHandler.Update)
	empleados.Delete("/:id", empleadoHandler.Delete)

	// Rutas de proyectos
	proyectos := api.Group("/proyectos")
	proyectos.Get("/", proyectoHandler.List)
	proyectos.Get("/:id", proyectoHandler.Get)
	proyectos.Post("/", proyectoHandler.Create)
	proyectos.Put("/:id", proyectoHandler.Update)
	proyectos.Delete("/:id", proyectoHandler.Delete)
	proyectos.Post("/:id/empleados", proyectoHandler.AsignarEmpleado)
	proyectos.Delete("/:id/empleados/:empleadoId", proyectoHandler.RetirarEmpleado)

	// Rutas de clientes
	clientes := api.Group("/clientes")
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/buscar", clienteHandler.Search)
	clientes.Get("/:id", clienteHandler.Get)
	clientes.Post("/", clienteHandler.Create)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	// Rutas de usuarios y roles
	usuarios := api.Group("/usuarios")
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Get("/solicitudes", usuarioHandler.SolicitudesPendientes)
	usuarios.Get("/:id", usuarioHandler.Get)
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Patch("/:id/rol", usuarioHandler.ActualizarRol)
	usuarios.Post("/solicitudes", usuarioHandler.SolicitarRol)
	usuarios.Post("/solicitudes/:id/aprobar", usuarioHandler.AprobarSolicitud)

	// Recordatorios de entrevistas
	if emailClient != nil {
		entrevistaScheduler := scheduler.NewEntrevistaScheduler(entrevistaService, emailClient)
		entrevistaScheduler.Start()
	}

	log.Printf("Servidor escuchando en el puerto %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Error al iniciar el servidor: %v", err)
	}
}
