package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/resilink/internal/metrics"
	"github.com/shenikar/resilink/internal/models"
	"github.com/sirupsen/logrus"
)

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	List(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	CountByStatus(ctx context.Context, status string) (int, error)
	CountByType(ctx context.Context) (map[string]int, error)
}

// IncidentService определяет контракт для бизнес-логики жизненного цикла инцидентов
type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident, actorID string) error
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	UpdateIncidentStatus(ctx context.Context, id uuid.UUID, newStatus, actorID string) error
}

type incidentService struct {
	repo    IncidentRepository
	audit   AuditService
	logger  *logrus.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewIncidentService(repo IncidentRepository, audit AuditService, logger *logrus.Logger, m *metrics.Metrics) IncidentService {
	return &incidentService{
		repo:    repo,
		audit:   audit,
		logger:  logger,
		metrics: m,
		now:     utcNow,
	}
}

// CreateIncident регистрирует инцидент со статусом Open.
// ID назначает хранилище, время регистрации - сервер.
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident, actorID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateIncident",
		"type":    incident.Type,
	})
	log.Info("Attempting to create a new incident")

	incident.Status = models.IncidentStatusOpen
	incident.RegisteredAt = s.now()
	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		s.audit.Record(ctx, models.EventDatabaseError, fmt.Sprintf("Failed to register incident: %v", err), actorID)
		return fmt.Errorf("%w: could not create incident: %w", ErrPersistence, err)
	}

	s.metrics.IncidentsCreated.Inc()
	s.audit.Record(ctx, models.EventIncidentCreated, fmt.Sprintf("ID: %s, Type: %s", incident.ID, incident.Type), actorID)
	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	return nil
}

// GetIncident получает инцидент по ID
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Debug("Fetching incident by ID")

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Info("Incident not found")
			return nil, fmt.Errorf("service: incident %s: %w", id, ErrNotFound)
		}
		log.WithError(err).Error("Failed to get incident in repository")
		s.audit.Record(ctx, models.EventDatabaseError, fmt.Sprintf("Failed to fetch incident ID %s: %v", id, err), models.SystemActor)
		return nil, fmt.Errorf("%w: could not get incident: %w", ErrPersistence, err)
	}
	return incident, nil
}

// ListIncidents возвращает инциденты, новые первыми
func (s *incidentService) ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
		"status":  filter.Status,
		"type":    filter.Type,
	})
	log.Debug("Listing incidents")

	incidents, err := s.repo.List(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		s.audit.Record(ctx, models.EventDatabaseError, fmt.Sprintf("Failed to list incidents: %v", err), models.SystemActor)
		return nil, fmt.Errorf("%w: could not list incidents: %w", ErrPersistence, err)
	}

	log.WithField("count", len(incidents)).Debug("Incidents listed successfully")
	return incidents, nil
}

// UpdateIncidentStatus перезаписывает статус инцидента.
// Таблица переходов не проверяется: принимается любая непустая строка.
// Чтение и запись идут без блокировки, при гонке побеждает последняя запись.
func (s *incidentService) UpdateIncidentStatus(ctx context.Context, id uuid.UUID, newStatus, actorID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncidentStatus",
		"incident_id": id,
		"new_status":  newStatus,
	})

	if strings.TrimSpace(newStatus) == "" {
		log.Warn("Rejected empty incident status")
		return fmt.Errorf("%w: new status must not be empty", ErrInvalidArgument)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err == nil {
		err = s.repo.UpdateStatus(ctx, id, newStatus)
	}
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Attempted to update a non-existent incident")
			s.audit.Record(ctx, models.EventIncidentUpdateFailed, fmt.Sprintf("Incident ID %s not found.", id), actorID)
			return fmt.Errorf("service: incident %s not found for update: %w", id, ErrNotFound)
		}
		log.WithError(err).Error("Failed to update incident status in repository")
		s.audit.Record(ctx, models.EventDatabaseError, fmt.Sprintf("Failed to update status of incident ID %s: %v", id, err), actorID)
		return fmt.Errorf("%w: could not update incident status: %w", ErrPersistence, err)
	}

	s.metrics.IncidentStatusUpdates.Inc()
	s.audit.Record(ctx, models.EventIncidentStatusUpdated,
		fmt.Sprintf("ID: %s, From: %s, To: %s", id, existing.Status, newStatus), actorID)
	log.WithField("old_status", existing.Status).Info("Incident status updated successfully")
	return nil
}
