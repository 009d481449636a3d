// Package memory содержит хранилища в памяти процесса для STORAGE_DRIVER=memory и сценарных тестов.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/resilink/internal/models"
	"github.com/shenikar/resilink/internal/service"
)

type IncidentRepository struct {
	mu        sync.RWMutex
	incidents []*models.Incident
}

func NewIncidentRepository() *IncidentRepository {
	return &IncidentRepository{}
}

var _ service.IncidentRepository = (*IncidentRepository)(nil)

func (r *IncidentRepository) Create(_ context.Context, incident *models.Incident) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	incident.ID = uuid.New()
	stored := *incident
	r.incidents = append(r.incidents, &stored)
	return nil
}

func (r *IncidentRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, inc := range r.incidents {
		if inc.ID == id {
			found := *inc
			return &found, nil
		}
	}
	return nil, fmt.Errorf("incident with id %s: %w", id, service.ErrNotFound)
}

func (r *IncidentRepository) List(_ context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	typeNeedle := strings.ToLower(filter.Type)
	result := make([]*models.Incident, 0)
	for _, inc := range r.incidents {
		if filter.Status != "" && !strings.EqualFold(inc.Status, filter.Status) {
			continue
		}
		if typeNeedle != "" && !strings.Contains(strings.ToLower(inc.Type), typeNeedle) {
			continue
		}
		found := *inc
		result = append(result, &found)
	}

	// Новые первыми; при равном времени позже добавленный идет раньше
	slices.Reverse(result)
	slices.SortStableFunc(result, func(a, b *models.Incident) int {
		return b.RegisteredAt.Compare(a.RegisteredAt)
	})
	return result, nil
}

func (r *IncidentRepository) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, inc := range r.incidents {
		if inc.ID == id {
			inc.Status = status
			return nil
		}
	}
	return fmt.Errorf("incident with id %s not found for update: %w", id, service.ErrNotFound)
}

func (r *IncidentRepository) CountByStatus(_ context.Context, status string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, inc := range r.incidents {
		if strings.EqualFold(inc.Status, status) {
			count++
		}
	}
	return count, nil
}

func (r *IncidentRepository) CountByType(_ context.Context) (map[string]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int)
	for _, inc := range r.incidents {
		counts[inc.Type]++
	}
	return counts, nil
}
