package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/resilink/internal/metrics"
	"github.com/shenikar/resilink/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ReportService определяет контракт построения отчета о состоянии
type ReportService interface {
	GenerateStatusReport(ctx context.Context) (*models.StatusReport, error)
}

type reportService struct {
	incidents IncidentRepository
	alerts    AlertRepository
	auditLogs AuditLogRepository
	audit     AuditService
	logger    *logrus.Logger
	metrics   *metrics.Metrics
	window    time.Duration
	now       func() time.Time
}

// NewReportService создает агрегатор. window - окно подсчета активных пользователей (обычно 24h).
func NewReportService(
	incidents IncidentRepository,
	alerts AlertRepository,
	auditLogs AuditLogRepository,
	audit AuditService,
	logger *logrus.Logger,
	m *metrics.Metrics,
	window time.Duration,
) ReportService {
	return &reportService{
		incidents: incidents,
		alerts:    alerts,
		auditLogs: auditLogs,
		audit:     audit,
		logger:    logger,
		metrics:   m,
		window:    window,
		now:       utcNow,
	}
}

// GenerateStatusReport читает хранилище при каждом вызове, без кеша
func (s *reportService) GenerateStatusReport(ctx context.Context) (*models.StatusReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "GenerateStatusReport",
	})

	report, err := s.aggregate(ctx)
	if err != nil {
		s.metrics.ReportFailures.Inc()
		log.WithError(err).Error("Failed to generate status report")
		s.audit.Record(ctx, models.EventReportError, fmt.Sprintf("Failed to generate status report: %v", err), models.SystemActor)
		return nil, fmt.Errorf("%w: %w", ErrReportGeneration, err)
	}

	s.metrics.ReportsGenerated.Inc()
	s.audit.Record(ctx, models.EventReportGenerated, "Status report was generated.", models.SystemActor)
	log.WithField("open_incidents", report.OpenIncidentCount).Info("Status report generated")
	return report, nil
}

func (s *reportService) aggregate(ctx context.Context) (*models.StatusReport, error) {
	report := &models.StatusReport{}
	since := s.now().Add(-s.window)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// Сравнение строки статуса без учета регистра, а не семантика "открыт"
		count, err := s.incidents.CountByStatus(gctx, models.IncidentStatusOpen)
		if err != nil {
			return fmt.Errorf("count open incidents: %w", err)
		}
		report.OpenIncidentCount = count
		return nil
	})
	g.Go(func() error {
		count, err := s.alerts.Count(gctx)
		if err != nil {
			return fmt.Errorf("count alerts: %w", err)
		}
		report.TotalAlertCount = count
		return nil
	})
	g.Go(func() error {
		count, err := s.auditLogs.CountDistinctActors(gctx, models.EventAPIKeyAccess, since)
		if err != nil {
			return fmt.Errorf("count active users: %w", err)
		}
		report.ActiveUsersLast24h = count
		return nil
	})
	g.Go(func() error {
		byType, err := s.incidents.CountByType(gctx)
		if err != nil {
			return fmt.Errorf("count incidents by type: %w", err)
		}
		if byType == nil {
			byType = make(map[string]int)
		}
		report.IncidentCountByType = byType
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Если система использовалась, но не в окне, метрика не показывает ноль
	if report.ActiveUsersLast24h == 0 {
		used, err := s.auditLogs.ExistsByEventType(ctx, models.EventAPIKeyAccess)
		if err != nil {
			return nil, fmt.Errorf("check access history: %w", err)
		}
		if used {
			report.ActiveUsersLast24h = 1
		}
	}
	return report, nil
}
