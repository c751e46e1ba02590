package scheduler

import (
	"fmt"
	"log"
	"time"

	"github.com/echononb/empleados-columbito-sub000/internal/application"
	"github.com/echononb/empleados-columbito-sub000/internal/domain"
	"github.com/echononb/empleados-columbito-sub000/internal/email"
)

// EntrevistaScheduler envía recordatorios diarios de las entrevistas
// programadas para el día siguiente
type EntrevistaScheduler struct {
	entrevistas *application.EntrevistaService
	emailClient *email.Client
	ticker      *time.Ticker
}

// NewEntrevistaScheduler crea una nueva instancia del scheduler de entrevistas
func NewEntrevistaScheduler(entrevistas *application.EntrevistaService, emailClient *email.Client) *EntrevistaScheduler {
	return &EntrevistaScheduler{
		entrevistas: entrevistas,
		emailClient: emailClient,
	}
}

// Start inicia el scheduler que envía recordatorios cada 24 horas
func (s *EntrevistaScheduler) Start() {
	log.Println("Scheduler de entrevistas iniciado - Se ejecutará cada 24 horas")

	// Ejecutar inmediatamente al iniciar
	s.EnviarRecordatorios()

	// Programar ejecución diaria a las 07:00
	now := time.Now()
	nextRun := time.Date(now.Year(), now.Month(), now.Day()+1, 7, 0, 0, 0, now.Location())
	durationUntilNextRun := time.Until(nextRun)

	log.Printf("Próxima ejecución programada: %s", nextRun.Format("2006-01-02 15:04:05"))

	time.AfterFunc(durationUntilNextRun, func() {
		s.EnviarRecordatorios()

		s.ticker = time.NewTicker(24 * time.Hour)
		go func() {
			for range s.ticker.C {
				s.EnviarRecordatorios()
			}
		}()
	})
}

// Stop detiene el scheduler
func (s *EntrevistaScheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
		log.Println("Scheduler de entrevistas detenido")
	}
}

// EnviarRecordatorios busca las entrevistas de las próximas 24 horas todavía
// vigentes y envía un recordatorio por email a cada postulante
func (s *EntrevistaScheduler) EnviarRecordatorios() {
	if s.emailClient == nil {
		return
	}

	log.Println("Buscando entrevistas próximas para enviar recordatorios...")

	now := time.Now()
	entrevistas, err := s.entrevistas.GetAll(application.EntrevistaFiltros{
		Desde: now,
		Hasta: now.Add(24 * time.Hour),
	})
	if err != nil {
		log.Printf("Error al obtener entrevistas próximas: %v", err)
		return
	}

	enviados := 0
	for _, e := range entrevistas {
		if e.Estado != domain.EntrevistaProgramada && e.Estado != domain.EntrevistaConfirmada {
			continue
		}
		if e.PostulanteEmail == "" {
			continue
		}

		htmlBody := fmt.Sprintf(`
			<!DOCTYPE html>
			<html>
			<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<div style="background-color: #f8f9fa; padding: 20px; border-radius: 10px;">
					<h2 style="color: #333;">Recordatorio de entrevista</h2>
					<p style="color: #555; font-size: 16px;">
						Estimado/a %s, te recordamos tu entrevista programada.
					</p>
					<p><strong>Fecha y hora:</strong> %s</p>
					<p><strong>Entrevistador:</strong> %s</p>
					<p style="color: #333; font-size: 16px;">
						Saludos,<br>
						<strong>Área de Recursos Humanos</strong>
					</p>
				</div>
			</body>
			</html>
		`, e.PostulanteNombre, e.FechaHora.Format("02/01/2006 15:04"), e.Entrevistador)

		if err := s.emailClient.SendEmail(e.PostulanteEmail, "Recordatorio de entrevista", htmlBody); err != nil {
			log.Printf("Error al enviar recordatorio a %s: %v", e.PostulanteEmail, err)
			continue
		}
		enviados++
	}

	log.Printf("Recordatorios de entrevista enviados: %d", enviados)
}
