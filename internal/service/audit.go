package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/resilink/internal/metrics"
	"github.com/shenikar/resilink/internal/models"
	"github.com/sirupsen/logrus"
)

// Границы пагинации журнала
const (
	DefaultLogPageSize = 20
	MaxLogPageSize     = 100
)

// AuditLogRepository определяет контракт для работы с журналом аудита
type AuditLogRepository interface {
	Create(ctx context.Context, entry *models.AuditLogEntry) error
	List(ctx context.Context, limit, offset int) ([]*models.AuditLogEntry, error)
	Count(ctx context.Context) (int, error)
	CountDistinctActors(ctx context.Context, eventType string, since time.Time) (int, error)
	ExistsByEventType(ctx context.Context, eventType string) (bool, error)
}

// AuditService - журнал аудита. Record никогда не возвращает ошибку,
// сбои хранилища поглощаются.
type AuditService interface {
	Record(ctx context.Context, eventType, details, actorID string)
	ListLogs(ctx context.Context, page, pageSize int) (*models.AuditLogPage, error)
}

type auditService struct {
	repo    AuditLogRepository
	logger  *logrus.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewAuditService(repo AuditLogRepository, logger *logrus.Logger, m *metrics.Metrics) AuditService {
	return &auditService{
		repo:    repo,
		logger:  logger,
		metrics: m,
		now:     utcNow,
	}
}

// Record добавляет запись в журнал. Пустой тип или пустые детали - молчаливый no-op.
// Ошибка хранилища уходит только в диагностический лог.
func (s *auditService) Record(ctx context.Context, eventType, details, actorID string) {
	if strings.TrimSpace(eventType) == "" || strings.TrimSpace(details) == "" {
		return
	}

	entry := &models.AuditLogEntry{
		Timestamp: s.now(),
		EventType: eventType,
		Details:   truncateRunes(details, models.MaxAuditDetailsLength),
	}
	if actorID != "" {
		entry.ActorID = &actorID
	}

	// Отмена запроса не прерывает запись
	if err := s.repo.Create(context.WithoutCancel(ctx), entry); err != nil {
		s.metrics.AuditWriteFailures.Inc()
		s.logger.WithFields(logrus.Fields{
			"service":          "audit",
			"method":           "Record",
			"audit_event_type": eventType,
			"actor_id":         actorID,
		}).WithError(err).Error("CRITICAL: failed to persist audit log entry")
		return
	}
	s.metrics.AuditEntriesWritten.Inc()
}

// ListLogs возвращает страницу журнала, новые записи первыми
func (s *auditService) ListLogs(ctx context.Context, page, pageSize int) (*models.AuditLogPage, error) {
	page, pageSize = ClampPage(page, pageSize)
	log := s.logger.WithFields(logrus.Fields{
		"service":   "audit",
		"method":    "ListLogs",
		"page":      page,
		"page_size": pageSize,
	})

	offset := (page - 1) * pageSize
	entries, err := s.repo.List(ctx, pageSize, offset)
	if err != nil {
		// Сбой чтения журнала в сам журнал не пишется
		log.WithError(err).Error("Failed to list audit log entries")
		return nil, fmt.Errorf("%w: could not list audit log: %w", ErrPersistence, err)
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to count audit log entries")
		return nil, fmt.Errorf("%w: could not count audit log: %w", ErrPersistence, err)
	}

	return &models.AuditLogPage{
		Items:    entries,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}, nil
}

// ClampPage приводит параметры пагинации к допустимым границам: page >= 1, pageSize в [1, 100]
func ClampPage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > MaxLogPageSize {
		pageSize = MaxLogPageSize
	}
	return page, pageSize
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// utcNow возвращает текущее время в UTC с точностью TIMESTAMPTZ (микросекунды)
func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
