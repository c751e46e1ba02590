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

const statsCachePostulantes = "postulantes"

// PostulanteFiltros contiene los filtros de listado de postulantes
type PostulanteFiltros struct {
	Estado     domain.EstadoPostulante
	Puesto     string
	ProyectoID string
}

// EstadisticasPostulantes contiene los conteos agregados de postulantes
type EstadisticasPostulantes struct {
	Total       int `json:"total"`
	Pendientes  int `json:"pendientes"`
	EnRevision  int `json:"enRevision"`
	Aprobados   int `json:"aprobados"`
	Rechazados  int `json:"rechazados"`
	Contratados int `json:"contratados"`
	Hoy         int `json:"hoy"`
	EstaSemana  int `json:"estaSemana"`
}

type PostulanteService struct {
	store       *store.Store
	validator   *Validator
	emailClient *email.Client
	statsCache  *StatsCache
}

// NewPostulanteService crea una nueva instancia del servicio de postulantes.
// emailClient puede ser nil; en ese caso no se envían notificaciones.
func NewPostulanteService(st *store.Store, emailClient *email.Client) *PostulanteService {
	return &PostulanteService{
		store:       st,
		validator:   &Validator{},
		emailClient: emailClient,
		statsCache:  NewStatsCache(1 * time.Minute),
	}
}

func decodePostulante(doc store.Document) (*domain.Postulante, error) {
	var p domain.Postulante
	if err := json.Unmarshal(doc.Data, &p); err != nil {
		return nil, fmt.Errorf("error al decodificar postulante %s: %w", doc.ID, err)
	}
	p.ID = doc.ID
	return &p, nil
}

// GetAll obtiene todos los postulantes, con filtrado en memoria
func (s *PostulanteService) GetAll(filtros PostulanteFiltros) ([]domain.Postulante, error) {
	docs, err := s.store.GetAll(store.ColPostulantes)
	if err != nil {
		return nil, fmt.Errorf("error al obtener postulantes: %w", err)
	}

	postulantes := []domain.Postulante{}
	for _, doc := range docs {
		p, err := decodePostulante(doc)
		if err != nil {
			log.Printf("Se omite postulante con datos corruptos: %v", err)
			continue
		}
		if filtros.Estado != "" && p.Estado != filtros.Estado {
			continue
		}
		if filtros.Puesto != "" && !strings.EqualFold(p.PuestoDeseado, filtros.Puesto) {
			continue
		}
		if filtros.ProyectoID != "" && p.ProyectoID != filtros.ProyectoID {
			continue
		}
		postulantes = append(postulantes, *p)
	}

	return postulantes, nil
}

// GetByID obtiene un postulante por su ID
func (s *PostulanteService) GetByID(id string) (*domain.Postulante, error) {
	doc, err := s.store.GetByID(store.ColPostulantes, id)
	if err != nil {
		return nil, fmt.Errorf("error al obtener postulante: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("postulante %s: %w", id, domain.ErrNoEncontrado)
	}
	return decodePostulante(*doc)
}

// validate valida los datos del postulante antes de cualquier persistencia
func (s *PostulanteService) validate(p *domain.Postulante) error {
	var errs []error

	if err := s.validator.ValidateDNI(p.DNI); err != nil {
		errs = append(errs, err)
	}
	if err := s.validator.ValidateName(p.Nombres, "nombre"); err != nil {
		errs = append(errs, err)
	}
	if err := s.validator.ValidateName(p.ApellidoPaterno, "apellido paterno"); err != nil {
		errs = append(errs, err)
	}
	if p.Email != "" {
		if err := s.validator.ValidateEmail(p.Email); err != nil {
			errs = append(errs, err)
		}
	}
	if p.Celular != "" {
		if err := s.validator.ValidatePhone(p.Celular); err != nil {
			errs = append(errs, err)
		}
	}
	if p.Fuente != "" && !domain.EsFuenteValida(p.Fuente) {
		errs = append(errs, fmt.Errorf("fuente de postulación inválida: %s", p.Fuente))
	}
	if p.Estado != "" && !domain.EsEstadoPostulanteValido(p.Estado) {
		errs = append(errs, fmt.Errorf("estado de postulante inválido: %s", p.Estado))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrValidacion, s.validator.FormatValidationErrors(errs))
	}
	return nil
}

// Create registra un nuevo postulante y retorna su ID
func (s *PostulanteService) Create(p *domain.Postulante) (string, error) {
	if err := s.validate(p); err != nil {
		return "", err
	}

	now := time.Now()
	if p.Estado == "" {
		p.Estado = domain.PostulantePendiente
	}
	if p.Fuente == "" {
		p.Fuente = domain.FuenteOtro
	}
	// La fecha de postulación se fija una sola vez al crear
	if p.FechaPostulacion.IsZero() {
		p.FechaPostulacion = now
	}
	p.FechaCreacion = now
	p.FechaActualizacion = now

	id, err := s.store.Create(store.ColPostulantes, p)
	if err != nil {
		return "", fmt.Errorf("error al crear postulante: %w", err)
	}
	p.ID = id

	s.statsCache.Invalidate(statsCachePostulantes)
	return id, nil
}

// Update aplica una actualización parcial. El ID y la fecha de postulación
// son inmutables y se descartan del parcial.
func (s *PostulanteService) Update(id string, partial map[string]any) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	delete(partial, "id")
	delete(partial, "fechaPostulacion")
	delete(partial, "fechaCreacion")
	partial["fechaActualizacion"] = time.Now()

	if dni, ok := partial["dni"].(string); ok {
		if err := s.validator.ValidateDNI(dni); err != nil {
			return fmt.Errorf("%w: %s", domain.ErrValidacion, err.Error())
		}
	}

	if err := s.store.Update(store.ColPostulantes, id, partial); err != nil {
		return fmt.Errorf("error al actualizar postulante: %w", err)
	}

	s.statsCache.Invalidate(statsCachePostulantes)
	return nil
}

// Delete elimina un postulante
func (s *PostulanteService) Delete(id string) error {
	if err := s.store.Delete(store.ColPostulantes, id); err != nil {
		return fmt.Errorf("error al eliminar postulante: %w", err)
	}
	s.statsCache.Invalidate(statsCachePostulantes)
	return nil
}

// UpdateEstado cambia el estado de un postulante validando la transición.
// Un rechazo requiere motivo en observaciones.
func (s *PostulanteService) UpdateEstado(id string, estado domain.EstadoPostulante, usuario, observaciones string) error {
	p, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if !domain.EsEstadoPostulanteValido(estado) {
		return fmt.Errorf("%w: estado desconocido %q", domain.ErrValidacion, estado)
	}
	if !domain.TransicionPermitida(p.Estado, estado) {
		return fmt.Errorf("%w: de %s a %s", domain.ErrTransicionInvalida, p.Estado, estado)
	}
	if estado == domain.PostulanteRechazado && strings.TrimSpace(observaciones) == "" {
		return fmt.Errorf("%w: el rechazo requiere un motivo", domain.ErrMotivoRequerido)
	}

	partial := map[string]any{
		"estado":             estado,
		"actualizadoPor":     usuario,
		"fechaActualizacion": time.Now(),
	}
	if observaciones != "" {
		partial["observaciones"] = observaciones
	}

	if err := s.store.Update(store.ColPostulantes, id, partial); err != nil {
		return fmt.Errorf("error al actualizar estado del postulante: %w", err)
	}

	s.statsCache.Invalidate(statsCachePostulantes)

	// Notificar la decisión al postulante; no es un error fatal si falla
	if estado == domain.PostulanteAprobado || estado == domain.PostulanteRechazado {
		s.enviarEmailDecision(p, estado)
	}

	return nil
}

// Search busca postulantes por coincidencia parcial, sin distinguir
// mayúsculas, en nombres, apellidos, DNI, puesto deseado y email
func (s *PostulanteService) Search(term string) ([]domain.Postulante, error) {
	postulantes, err := s.GetAll(PostulanteFiltros{})
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return postulantes, nil
	}

	matches := []domain.Postulante{}
	for _, p := range postulantes {
		campos := []string{p.Nombres, p.ApellidoPaterno, p.ApellidoMaterno, p.DNI, p.PuestoDeseado, p.Email}
		for _, campo := range campos {
			if strings.Contains(strings.ToLower(campo), term) {
				matches = append(matches, p)
				break
			}
		}
	}

	return matches, nil
}

// Stats calcula los conteos de postulantes por estado y por ventanas de
// recencia (hoy y últimos 7 días)
func (s *PostulanteService) Stats() (*EstadisticasPostulantes, error) {
	if cached, ok := s.statsCache.Get(statsCachePostulantes); ok {
		return cached.(*EstadisticasPostulantes), nil
	}

	postulantes, err := s.GetAll(PostulanteFiltros{})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	hoy := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	semana := now.AddDate(0, 0, -7)

	stats := &EstadisticasPostulantes{Total: len(postulantes)}
	for _, p := range postulantes {
		switch p.Estado {
		case domain.PostulantePendiente:
			stats.Pendientes++
		case domain.PostulanteEnRevision:
			stats.EnRevision++
		case domain.PostulanteAprobado:
			stats.Aprobados++
		case domain.PostulanteRechazado:
			stats.Rechazados++
		case domain.PostulanteContratado:
			stats.Contratados++
		}
		if !p.FechaPostulacion.Before(hoy) {
			stats.Hoy++
		}
		if p.FechaPostulacion.After(semana) {
			stats.EstaSemana++
		}
	}

	s.statsCache.Set(statsCachePostulantes, stats)
	return stats, nil
}

// ConvertirAEmpleado convierte un postulante aprobado en un borrador de
// empleado. Marca al postulante como contratado y estampa la conversión con
// el marcador "pending"; el registro definitivo del empleado se hace después
// con RegistrarEmpleadoConvertido. Contratado es terminal, así que una
// segunda conversión falla y la estampa original no se sobrescribe.
func (s *PostulanteService) ConvertirAEmpleado(id, usuario string) (*domain.Empleado, error) {
	p, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if p.Estado != domain.PostulanteAprobado {
		return nil, fmt.Errorf("%w: estado actual %s", domain.ErrPostulanteNoAprobado, p.Estado)
	}

	draft := borradorEmpleado(p)

	partial := map[string]any{
		"estado": domain.PostulanteContratado,
		"convertedToEmployee": domain.ConversionEmpleado{
			EmpleadoID:      "pending",
			FechaConversion: time.Now(),
			ConvertidoPor:   usuario,
		},
		"actualizadoPor":     usuario,
		"fechaActualizacion": time.Now(),
	}

	if err := s.store.Update(store.ColPostulantes, id, partial); err != nil {
		return nil, fmt.Errorf("error al convertir postulante: %w", err)
	}

	s.statsCache.Invalidate(statsCachePostulantes)
	return draft, nil
}

// RegistrarEmpleadoConvertido completa la conversión: crea el registro del
// empleado y reemplaza el marcador "pending" por el ID definitivo
func (s *PostulanteService) RegistrarEmpleadoConvertido(id, usuario string) (string, error) {
	p, err := s.GetByID(id)
	if err != nil {
		return "", err
	}

	if p.Estado != domain.PostulanteContratado || p.ConvertedToEmployee == nil {
		return "", fmt.Errorf("%w: el postulante no tiene una conversión pendiente", domain.ErrValidacion)
	}
	if p.ConvertedToEmployee.EmpleadoID != "pending" {
		return "", fmt.Errorf("%w: la conversión ya fue registrada con el empleado %s",
			domain.ErrValidacion, p.ConvertedToEmployee.EmpleadoID)
	}

	draft := borradorEmpleado(p)
	empleadoID, err := s.store.Create(store.ColEmpleados, draft)
	if err != nil {
		return "", fmt.Errorf("error al crear empleado: %w", err)
	}

	conversion := *p.ConvertedToEmployee
	conversion.EmpleadoID = empleadoID

	partial := map[string]any{
		"convertedToEmployee": conversion,
		"actualizadoPor":      usuario,
		"fechaActualizacion":  time.Now(),
	}
	if err := s.store.Update(store.ColPostulantes, id, partial); err != nil {
		return "", fmt.Errorf("empleado creado pero error al actualizar postulante: %w", err)
	}

	return empleadoID, nil
}

// borradorEmpleado construye el borrador de empleado a partir del postulante,
// copiando los datos personales, de contacto y académicos. Los campos
// operativos quedan con el marcador "Por definir".
func borradorEmpleado(p *domain.Postulante) *domain.Empleado {
	now := time.Now()
	return &domain.Empleado{
		DNI:                p.DNI,
		ApellidoPaterno:    p.ApellidoPaterno,
		ApellidoMaterno:    p.ApellidoMaterno,
		Nombres:            p.Nombres,
		FechaNacimiento:    p.FechaNacimiento,
		LugarNacimiento:    p.LugarNacimiento,
		Sexo:               p.Sexo,
		EstadoCivil:        p.EstadoCivil,
		Direccion:          p.Direccion,
		Celular:            p.Celular,
		TelefonoFijo:       p.TelefonoFijo,
		Email:              p.Email,
		Puesto:             p.PuestoDeseado,
		GradoInstruccion:   p.GradoInstruccion,
		Institucion:        p.Institucion,
		Carrera:            p.Carrera,
		BancoPago:          domain.ValorPorDefinir,
		CuentaBancaria:     domain.ValorPorDefinir,
		RegimenLaboral:     domain.ValorPorDefinir,
		TallaCamisa:        domain.ValorPorDefinir,
		TallaPantalon:      domain.ValorPorDefinir,
		TallaCalzado:       domain.ValorPorDefinir,
		PostulanteID:       p.ID,
		Activo:             true,
		FechaCreacion:      now,
		FechaActualizacion: now,
	}
}

// enviarEmailDecision notifica al postulante el resultado de su proceso
func (s *PostulanteService) enviarEmailDecision(p *domain.Postulante, estado domain.EstadoPostulante) {
	if s.emailClient == nil || p.Email == "" {
		return
	}

	var subject, mensaje string
	if estado == domain.PostulanteAprobado {
		subject = "Resultado de tu postulación - Aprobada"
		mensaje = "Nos complace informarte que tu postulación ha sido <strong>aprobada</strong>. " +
			"En los próximos días nos pondremos en contacto contigo para coordinar los siguientes pasos."
	} else {
		subject = "Resultado de tu postulación"
		mensaje = "Lamentamos informarte que en esta oportunidad tu postulación no ha sido seleccionada. " +
			"Agradecemos tu interés y conservaremos tus datos para futuras convocatorias."
	}

	htmlBody := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<div style="background-color: #f8f9fa; padding: 20px; border-radius: 10px;">
				<h2 style="color: #333;">Estimado/a %s,</h2>
				<p style="color: #555; font-size: 16px;">%s</p>
				<p style="color: #555; font-size: 16px;">Puesto: <strong>%s</strong></p>
				<p style="color: #333; font-size: 16px;">
					Saludos,<br>
					<strong>Área de Recursos Humanos</strong>
				</p>
			</div>
		</body>
		</html>
	`, p.NombreCompleto(), mensaje, p.PuestoDeseado)

	if err := s.emailClient.SendEmail(p.Email, subject, htmlBody); err != nil {
		log.Printf("Error al enviar email de decisión a %s: %v", p.Email, err)
	}
}
