package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/resilink/internal/models"
	"github.com/shenikar/resilink/internal/service"
)

type ResourceRepository struct {
	mu        sync.RWMutex
	resources []*models.CommunityResource
}

func NewResourceRepository() *ResourceRepository {
	return &ResourceRepository{}
}

var _ service.ResourceRepository = (*ResourceRepository)(nil)

func (r *ResourceRepository) Create(_ context.Context, resource *models.CommunityResource) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	resource.ID = uuid.New()
	r.resources = append(r.resources, cloneResource(resource))
	return nil
}

func (r *ResourceRepository) GetByID(_ context.Context, id uuid.UUID) (*models.CommunityResource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, res := range r.resources {
		if res.ID == id {
			return cloneResource(res), nil
		}
	}
	return nil, fmt.Errorf("community resource with id %s: %w", id, service.ErrNotFound)
}

func (r *ResourceRepository) ListAvailable(_ context.Context) ([]*models.CommunityResource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.CommunityResource, 0)
	for _, res := range r.resources {
		if res.IsPubliclyListed() {
			result = append(result, cloneResource(res))
		}
	}
	slices.Reverse(result)
	slices.SortStableFunc(result, func(a, b *models.CommunityResource) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return result, nil
}

func (r *ResourceRepository) UpdateModeration(_ context.Context, id uuid.UUID, status string, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, res := range r.resources {
		if res.ID == id {
			res.ModerationStatus = status
			res.Available = available
			return nil
		}
	}
	return fmt.Errorf("community resource with id %s not found for moderation: %w", id, service.ErrNotFound)
}

func cloneResource(res *models.CommunityResource) *models.CommunityResource {
	c := *res
	if res.ProviderID != nil {
		provider := *res.ProviderID
		c.ProviderID = &provider
	}
	return &c
}
