package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/resilink/internal/metrics"
	"github.com/shenikar/resilink/internal/models"
	"github.com/sirupsen/logrus"
)

// ResourceRepository определяет контракт для работы с бд ресурсов
type ResourceRepository interface {
	Create(ctx context.Context, resource *models.CommunityResource) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.CommunityResource, error)
	ListAvailable(ctx context.Context) ([]*models.CommunityResource, error)
	UpdateModeration(ctx context.Context, id uuid.UUID, status string, available bool) error
}

// ResourceService определяет контракт модерации ресурсов
type ResourceService interface {
	OfferResource(ctx context.Context, resource *models.CommunityResource, actorID string) error
	GetResource(ctx context.Context, id uuid.UUID) (*models.CommunityResource, error)
	ListAvailableResources(ctx context.Context) ([]*models.CommunityResource, error)
	ModerateResource(ctx context.Context, id uuid.UUID, newStatus, actorID string) error
}

type resourceService struct {
	repo    ResourceRepository
	audit   AuditService
	logger  *logrus.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewResourceService(repo ResourceRepository, audit AuditService, logger *logrus.Logger, m *metrics.Metrics) ResourceService {
	return &resourceService{
		repo:    repo,
		audit:   audit,
		logger:  logger,
		metrics: m,
		now:     utcNow,
	}
}

// OfferResource сохраняет новый ресурс. Каждый ресурс проходит модерацию.
func (s *resourceService) OfferResource(ctx context.Context, resource *models.CommunityResource, actorID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "resource",
		"method":  "OfferResource",
		"type":    resource.Type,
	})
	log.Info("Attempting to offer a community resource")

	resource.ModerationStatus = models.ModerationPending
	resource.Available = true
	resource.CreatedAt = s.now()
	resource.ProviderID = nil
	if actorID != "" {
		resource.ProviderID = &actorID
	}

	if err := s.repo.Create(ctx, resource); err != nil {
		log.WithError(err).Error("Failed to create resource in repository")
		s.audit.Record(ctx, models.EventDatabaseError, fmt.Sprintf("Failed to offer resource: %v", err), actorID)
		return fmt.Errorf("%w: could not offer resource: %w", ErrPersistence, err)
	}

	s.metrics.ResourcesOffered.Inc()
	s.audit.Record(ctx, models.EventResourceOffered, fmt.Sprintf("ID: %s, Type: %s", resource.ID, resource.Type), actorID)
	log.WithField("resource_id", resource.ID).Info("Resource offered successfully")
	return nil
}

// GetResource получает ресурс по ID независимо от статуса модерации
func (s *resourceService) GetResource(ctx context.Context, id uuid.UUID) (*models.CommunityResource, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "resource",
		"method":      "GetResource",
		"resource_id": id,
	})

	resource, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Info("Resource not found")
			return nil, fmt.Errorf("service: resource %s: %w", id, ErrNotFound)
		}
		log.WithError(err).Error("Failed to get resource in repository")
		s.audit.Record(ctx, models.EventDatabaseError, fmt.Sprintf("Failed to fetch community resource ID %s: %v", id, err), models.SystemActor)
		return nil, fmt.Errorf("%w: could not get resource: %w", ErrPersistence, err)
	}
	return resource, nil
}

// ListAvailableResources возвращает только одобренные и доступные ресурсы
func (s *resourceService) ListAvailableResources(ctx context.Context) ([]*models.CommunityResource, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "resource",
		"method":  "ListAvailableResources",
	})

	resources, err := s.repo.ListAvailable(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list available resources")
		s.audit.Record(ctx, models.EventDatabaseError, fmt.Sprintf("Failed to list available resources: %v", err), models.SystemActor)
		return nil, fmt.Errorf("%w: could not list resources: %w", ErrPersistence, err)
	}

	// Инвариант публичного списка: только Aprovado и Available
	listed := make([]*models.CommunityResource, 0, len(resources))
	for _, r := range resources {
		if r.IsPubliclyListed() {
			listed = append(listed, r)
		}
	}
	return listed, nil
}

// ModerateResource принимает только Aprovado или Rejeitado.
// Rejeitado делает ресурс недоступным, Aprovado - доступным.
func (s *resourceService) ModerateResource(ctx context.Context, id uuid.UUID, newStatus, actorID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "resource",
		"method":      "ModerateResource",
		"resource_id": id,
		"new_status":  newStatus,
	})

	if newStatus != models.ModerationApproved && newStatus != models.ModerationRejected {
		log.Warn("Rejected invalid moderation status")
		return fmt.Errorf("%w: moderation status must be %q or %q", ErrInvalidArgument, models.ModerationApproved, models.ModerationRejected)
	}
	available := newStatus == models.ModerationApproved

	existing, err := s.repo.GetByID(ctx, id)
	if err == nil {
		err = s.repo.UpdateModeration(ctx, id, newStatus, available)
	}
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Attempted to moderate a non-existent resource")
			s.audit.Record(ctx, models.EventModerationFailed, fmt.Sprintf("Resource ID %s not found.", id), actorID)
			return fmt.Errorf("service: resource %s not found for moderation: %w", id, ErrNotFound)
		}
		log.WithError(err).Error("Failed to moderate resource in repository")
		s.audit.Record(ctx, models.EventDatabaseError, fmt.Sprintf("Failed to moderate resource ID %s: %v", id, err), actorID)
		return fmt.Errorf("%w: could not moderate resource: %w", ErrPersistence, err)
	}

	s.metrics.ResourcesModerated.WithLabelValues(newStatus).Inc()
	s.audit.Record(ctx, models.EventResourceModerated,
		fmt.Sprintf("ID: %s, From: %s, To: %s", id, existing.ModerationStatus, newStatus), actorID)
	log.WithField("old_status", existing.ModerationStatus).Info("Resource moderated successfully")
	return nil
}
