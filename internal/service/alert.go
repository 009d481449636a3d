package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/resilink/internal/metrics"
	"github.com/shenikar/resilink/internal/models"
	"github.com/shenikar/resilink/internal/webhook"
	"github.com/sirupsen/logrus"
)

// AlertRepository определяет контракт для работы с бд оповещений.
// Обновления и удаления нет: оповещения записываются один раз.
type AlertRepository interface {
	Create(ctx context.Context, alert *models.Alert) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Alert, error)
	List(ctx context.Context) ([]*models.Alert, error)
	Count(ctx context.Context) (int, error)
}

// AlertService определяет контракт выпуска оповещений
type AlertService interface {
	IssueAlert(ctx context.Context, alert *models.Alert, issuerID string) error
	GetAlert(ctx context.Context, id uuid.UUID) (*models.Alert, error)
	ListAlerts(ctx context.Context) ([]*models.Alert, error)
}

type alertService struct {
	repo      AlertRepository
	audit     AuditService
	publisher webhook.AlertPublisher
	logger    *logrus.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
}

func NewAlertService(repo AlertRepository, audit AuditService, publisher webhook.AlertPublisher, logger *logrus.Logger, m *metrics.Metrics) AlertService {
	return &alertService{
		repo:      repo,
		audit:     audit,
		publisher: publisher,
		logger:    logger,
		metrics:   m,
		now:       utcNow,
	}
}

// IssueAlert сохраняет оповещение и ставит его в очередь рассылки.
// Ошибка постановки в очередь не отменяет выпуск.
func (s *alertService) IssueAlert(ctx context.Context, alert *models.Alert, issuerID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "alert",
		"method":    "IssueAlert",
		"severity":  alert.Severity,
		"issuer_id": issuerID,
	})
	log.Info("Attempting to issue an alert")

	alert.IssuedAt = s.now()
	alert.IssuerID = issuerID
	if err := s.repo.Create(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to create alert in repository")
		s.audit.Record(ctx, models.EventDatabaseError, fmt.Sprintf("Failed to create alert: %v", err), issuerID)
		return fmt.Errorf("%w: could not create alert: %w", ErrPersistence, err)
	}

	s.metrics.AlertsIssued.Inc()
	s.audit.Record(ctx, models.EventAlertCreated, fmt.Sprintf("ID: %s, Severity: %s", alert.ID, alert.Severity), issuerID)

	if err := s.publisher.Publish(ctx, webhook.NewAlertEvent(alert)); err != nil {
		s.metrics.AlertBroadcastFailures.Inc()
		log.WithError(err).WithField("alert_id", alert.ID).Error("Failed to queue alert broadcast")
	}

	log.WithField("alert_id", alert.ID).Info("Alert issued successfully")
	return nil
}

// GetAlert получает оповещение по ID
func (s *alertService) GetAlert(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "GetAlert",
		"alert_id": id,
	})

	alert, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Info("Alert not found")
			return nil, fmt.Errorf("service: alert %s: %w", id, ErrNotFound)
		}
		log.WithError(err).Error("Failed to get alert in repository")
		s.audit.Record(ctx, models.EventDatabaseError, fmt.Sprintf("Failed to fetch alert ID %s: %v", id, err), models.SystemActor)
		return nil, fmt.Errorf("%w: could not get alert: %w", ErrPersistence, err)
	}
	return alert, nil
}

// ListAlerts возвращает все оповещения, новые первыми
func (s *alertService) ListAlerts(ctx context.Context) ([]*models.Alert, error) {
	alerts, err := s.repo.List(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "alert",
			"method":  "ListAlerts",
		}).WithError(err).Error("Failed to list alerts from repository")
		s.audit.Record(ctx, models.EventDatabaseError, fmt.Sprintf("Failed to list alerts: %v", err), models.SystemActor)
		return nil, fmt.Errorf("%w: could not list alerts: %w", ErrPersistence, err)
	}
	return alerts, nil
}
