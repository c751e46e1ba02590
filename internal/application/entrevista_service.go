package application

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/echononb/empleados-columbito-sub000/internal/domain"
	"github.com/echononb/empleados-columbito-sub000/internal/email"
	"github.com/echononb/empleados-columbito-sub000/internal/store"
)

const statsCacheEntrevistas = "entrevistas"

// EntrevistaFiltros contiene los filtros de listado de entrevistas
type EntrevistaFiltros struct {
	Estado       domain.EstadoEntrevista
	PostulanteID string
	Desde        time.Time
	Hasta        time.Time
}

// EstadisticasEntrevistas contiene los conteos agregados de entrevistas
type EstadisticasEntrevistas struct {
	Total         int `json:"total"`
	Programadas   int `json:"programadas"`
	Confirmadas   int `json:"confirmadas"`
	EnCurso       int `json:"enCurso"`
	Completadas   int `json:"completadas"`
	Canceladas    int `json:"canceladas"`
	Reprogramadas int `json:"reprogramadas"`

	Positivas int `json:"positivas"`
	Negativas int `json:"negativas"`
	NoAsistio int `json:"noAsistio"`

	Hoy        int `json:"hoy"`
	EstaSemana int `json:"estaSemana"`
}

type EntrevistaService struct {
	store       *store.Store
	emailClient *email.Client
	statsCache  *StatsCache
}

// NewEntrevistaService crea una nueva instancia del servicio de entrevistas.
// emailClient puede ser nil; en ese caso no se envían notificaciones.
func NewEntrevistaService(st *store.Store, emailClient *email.Client) *EntrevistaService {
	return &EntrevistaService{
		store:       st,
		emailClient: emailClient,
		statsCache:  NewStatsCache(1 * time.Minute),
	}
}

func decodeEntrevista(doc store.Document) (*domain.Entrevista, error) {
	var e domain.Entrevista
	if err := json.Unmarshal(doc.Data, &e); err != nil {
		return nil, fmt.Errorf("error al decodificar entrevista %s: %w", doc.ID, err)
	}
	e.ID = doc.ID
	return &e, nil
}

// GetAll obtiene todas las entrevistas, con filtrado en memoria
func (s *EntrevistaService) GetAll(filtros EntrevistaFiltros) ([]domain.Entrevista, error) {
	docs, err := s.store.GetAll(store.ColEntrevistas)
	if err != nil {
		return nil, fmt.Errorf("error al obtener entrevistas: %w", err)
	}

	entrevistas := []domain.Entrevista{}
	for _, doc := range docs {
		e, err := decodeEntrevista(doc)
		if err != nil {
			log.Printf("Se omite entrevista con datos corruptos: %v", err)
			continue
		}
		if filtros.Estado != "" && e.Estado != filtros.Estado {
			continue
		}
		if filtros.PostulanteID != "" && e.PostulanteID != filtros.PostulanteID {
			continue
		}
		if !filtros.Desde.IsZero() && e.FechaHora.Before(filtros.Desde) {
			continue
		}
		if !filtros.Hasta.IsZero() && e.FechaHora.After(filtros.Hasta) {
			continue
		}
		entrevistas = append(entrevistas, *e)
	}

	return entrevistas, nil
}

// GetByID obtiene una entrevista por su ID
func (s *EntrevistaService) GetByID(id string) (*domain.Entrevista, error) {
	doc, err := s.store.GetByID(store.ColEntrevistas, id)
	if err != nil {
		return nil, fmt.Errorf("error al obtener entrevista: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("entrevista %s: %w", id, domain.ErrNoEncontrado)
	}
	return decodeEntrevista(*doc)
}

// validate valida los datos de la entrevista antes de persistir
func (s *EntrevistaService) validate(e *domain.Entrevista) error {
	if e.FechaHora.IsZero() {
		return fmt.Errorf("%w: la fecha y hora son requeridas", domain.ErrValidacion)
	}
	if !domain.EsTipoEntrevistaValido(e.Tipo) {
		return fmt.Errorf("%w: tipo de entrevista inválido: %s", domain.ErrValidacion, e.Tipo)
	}
	if strings.TrimSpace(e.Entrevistador) == "" {
		return fmt.Errorf("%w: el entrevistador es requerido", domain.ErrValidacion)
	}

	// Sin postulante canónico se requieren los datos denormalizados
	if e.PostulanteID == "" {
		if e.PostulanteNombre == "" || e.PostulanteDNI == "" {
			return fmt.Errorf("%w: se requiere el postulante o sus datos (nombre y DNI)", domain.ErrValidacion)
		}
	}

	// Requisitos condicionales según la modalidad; sin modalidad explícita
	// se infiere del tipo
	modalidad := strings.ToLower(strings.TrimSpace(e.Modalidad))
	switch {
	case modalidad == "presencial" || (modalidad == "" && e.Tipo == domain.EntrevistaPresencial):
		if strings.TrimSpace(e.Lugar) == "" {
			return fmt.Errorf("%w: una entrevista presencial requiere lugar", domain.ErrValidacion)
		}
	case modalidad == "video" || (modalidad == "" && e.Tipo == domain.EntrevistaVideo):
		if strings.TrimSpace(e.Plataforma) == "" && strings.TrimSpace(e.Enlace) == "" {
			return fmt.Errorf("%w: una entrevista por video requiere plataforma o enlace", domain.ErrValidacion)
		}
	}

	if e.Resultado != "" && e.Estado != domain.EntrevistaCompletada {
		return fmt.Errorf("%w: el resultado solo aplica a entrevistas completadas", domain.ErrValidacion)
	}

	return nil
}

// Create programa una nueva entrevista y retorna su ID
func (s *EntrevistaService) Create(e *domain.Entrevista) (string, error) {
	if e.Estado == "" {
		e.Estado = domain.EntrevistaProgramada
	}
	if !domain.EsEstadoEntrevistaValido(e.Estado) {
		return "", fmt.Errorf("%w: estado de entrevista inválido: %s", domain.ErrValidacion, e.Estado)
	}
	if err := s.validate(e); err != nil {
		return "", err
	}

	// Si referencia a un postulante, verificar que exista y copiar su contacto
	if e.PostulanteID != "" {
		doc, err := s.store.GetByID(store.ColPostulantes, e.PostulanteID)
		if err != nil {
			return "", fmt.Errorf("error al verificar postulante: %w", err)
		}
		if doc == nil {
			return "", fmt.Errorf("postulante %s: %w", e.PostulanteID, domain.ErrNoEncontrado)
		}
		p, err := decodePostulante(*doc)
		if err != nil {
			return "", err
		}
		if e.PostulanteNombre == "" {
			e.PostulanteNombre = p.NombreCompleto()
		}
		if e.PostulanteDNI == "" {
			e.PostulanteDNI = p.DNI
		}
		if e.PostulanteEmail == "" {
			e.PostulanteEmail = p.Email
		}
	}

	now := time.Now()
	e.FechaCreacion = now
	e.FechaActualizacion = now

	id, err := s.store.Create(store.ColEntrevistas, e)
	if err != nil {
		return "", fmt.Errorf("error al crear entrevista: %w", err)
	}
	e.ID = id

	s.statsCache.Invalidate(statsCacheEntrevistas)

	// Notificar al postulante; no es un error fatal si falla
	s.enviarEmailProgramacion(e)

	return id, nil
}

// Update aplica una actualización parcial sobre una entrevista
func (s *EntrevistaService) Update(id string, partial map[string]any) error {
	e, err := s.GetByID(id)
	if err != nil {
		return err
	}

	delete(partial, "id")
	delete(partial, "fechaCreacion")
	partial["fechaActualizacion"] = time.Now()

	// El resultado solo tiene significado con la entrevista completada
	if resultado, ok := partial["resultado"].(string); ok && resultado != "" {
		if !domain.EsResultadoValido(domain.ResultadoEntrevista(resultado)) {
			return fmt.Errorf("%w: resultado inválido: %s", domain.ErrValidacion, resultado)
		}
		estado := e.Estado
		if nuevo, ok := partial["estado"].(string); ok {
			estado = domain.EstadoEntrevista(nuevo)
		}
		if estado != domain.EntrevistaCompletada {
			return fmt.Errorf("%w: el resultado solo aplica a entrevistas completadas", domain.ErrValidacion)
		}
	}

	if estado, ok := partial["estado"].(string); ok {
		if !domain.EsEstadoEntrevistaValido(domain.EstadoEntrevista(estado)) {
			return fmt.Errorf("%w: estado de entrevista inválido: %s", domain.ErrValidacion, estado)
		}
	}

	if err := s.store.Update(store.ColEntrevistas, id, partial); err != nil {
		return fmt.Errorf("error al actualizar entrevista: %w", err)
	}

	s.statsCache.Invalidate(statsCacheEntrevistas)
	return nil
}

// Delete elimina una entrevista
func (s *EntrevistaService) Delete(id string) error {
	if err := s.store.Delete(store.ColEntrevistas, id); err != nil {
		return fmt.Errorf("error al eliminar entrevista: %w", err)
	}
	s.statsCache.Invalidate(statsCacheEntrevistas)
	return nil
}

// Cancelar cancela una entrevista y agrega el motivo a las notas
func (s *EntrevistaService) Cancelar(id, motivo, usuario string) error {
	e, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if strings.TrimSpace(motivo) == "" {
		return fmt.Errorf("%w: la cancelación requiere un motivo", domain.ErrMotivoRequerido)
	}

	notas := e.Notas
	if notas != "" {
		notas += "\n"
	}
	notas += "[Cancelada] " + motivo

	partial := map[string]any{
		"estado":             domain.EntrevistaCancelada,
		"notas":              notas,
		"actualizadoPor":     usuario,
		"fechaActualizacion": time.Now(),
	}

	if err := s.store.Update(store.ColEntrevistas, id, partial); err != nil {
		return fmt.Errorf("error al cancelar entrevista: %w", err)
	}

	s.statsCache.Invalidate(statsCacheEntrevistas)
	return nil
}

// Reprogramar cambia la fecha de una entrevista. La fecha anterior se
// sobrescribe; no se conserva historial.
func (s *EntrevistaService) Reprogramar(id string, nuevaFecha time.Time, motivo, usuario string) error {
	e, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if nuevaFecha.IsZero() {
		return fmt.Errorf("%w: la nueva fecha es requerida", domain.ErrValidacion)
	}

	notas := e.Notas
	if motivo != "" {
		if notas != "" {
			notas += "\n"
		}
		notas += "[Reprogramada] " + motivo
	}

	partial := map[string]any{
		"estado":             domain.EntrevistaReprogramada,
		"fechaHora":          nuevaFecha,
		"notas":              notas,
		"actualizadoPor":     usuario,
		"fechaActualizacion": time.Now(),
	}

	if err := s.store.Update(store.ColEntrevistas, id, partial); err != nil {
		return fmt.Errorf("error al reprogramar entrevista: %w", err)
	}

	s.statsCache.Invalidate(statsCacheEntrevistas)
	return nil
}

// Stats calcula los conteos de entrevistas por estado, por resultado y por
// ventanas de recencia
func (s *EntrevistaService) Stats() (*EstadisticasEntrevistas, error) {
	if cached, ok := s.statsCache.Get(statsCacheEntrevistas); ok {
		return cached.(*EstadisticasEntrevistas), nil
	}

	entrevistas, err := s.GetAll(EntrevistaFiltros{})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	hoy := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	manana := hoy.AddDate(0, 0, 1)
	semana := now.AddDate(0, 0, 7)

	stats := &EstadisticasEntrevistas{Total: len(entrevistas)}
	for _, e := range entrevistas {
		switch e.Estado {
		case domain.EntrevistaProgramada:
			stats.Programadas++
		case domain.EntrevistaConfirmada:
			stats.Confirmadas++
		case domain.EntrevistaEnCurso:
			stats.EnCurso++
		case domain.EntrevistaCompletada:
			stats.Completadas++
		case domain.EntrevistaCancelada:
			stats.Canceladas++
		case domain.EntrevistaReprogramada:
			stats.Reprogramadas++
		}
		switch e.Resultado {
		case domain.ResultadoPositivo:
			stats.Positivas++
		case domain.ResultadoNegativo:
			stats.Negativas++
		case domain.ResultadoNoAsistio:
			stats.NoAsistio++
		}
		if !e.FechaHora.Before(hoy) && e.FechaHora.Before(manana) {
			stats.Hoy++
		}
		if e.FechaHora.After(now) && e.FechaHora.Before(semana) {
			stats.EstaSemana++
		}
	}

	s.statsCache.Set(statsCacheEntrevistas, stats)
	return stats, nil
}

// enviarEmailProgramacion notifica al postulante la entrevista programada
func (s *EntrevistaService) enviarEmailProgramacion(e *domain.Entrevista) {
	if s.emailClient == nil || e.PostulanteEmail == "" {
		return
	}

	detalle := ""
	switch e.Tipo {
	case domain.EntrevistaPresencial:
		detalle = fmt.Sprintf("<p><strong>Lugar:</strong> %s</p>", e.Lugar)
	case domain.EntrevistaVideo:
		detalle = fmt.Sprintf("<p><strong>Plataforma:</strong> %s</p><p><strong>Enlace:</strong> %s</p>", e.Plataforma, e.Enlace)
	}

	htmlBody := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<div style="background-color: #f8f9fa; padding: 20px; border-radius: 10px;">
				<h2 style="color: #333;">Entrevista programada</h2>
				<p style="color: #555; font-size: 16px;">
					Estimado/a %s, tu entrevista ha sido programada.
				</p>
				<p><strong>Fecha y hora:</strong> %s</p>
				<p><strong>Tipo:</strong> %s</p>
				%s
				<p style="color: #333; font-size: 16px;">
					Saludos,<br>
					<strong>Área de Recursos Humanos</strong>
				</p>
			</div>
		</body>
		</html>
	`, e.PostulanteNombre, e.FechaHora.Format("02/01/2006 15:04"), e.Tipo, detalle)

	if err := s.emailClient.SendEmail(e.PostulanteEmail, "Entrevista programada", htmlBody); err != nil {
		log.Printf("Error al enviar email de entrevista a %s: %v", e.PostulanteEmail, err)
	}
}
