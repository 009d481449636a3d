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

type AlertRepository struct {
	mu     sync.RWMutex
	alerts []*models.Alert
}

func NewAlertRepository() *AlertRepository {
	return &AlertRepository{}
}

var _ service.AlertRepository = (*AlertRepository)(nil)

func (r *AlertRepository) Create(_ context.Context, alert *models.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	alert.ID = uuid.New()
	stored := *alert
	r.alerts = append(r.alerts, &stored)
	return nil
}

func (r *AlertRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.alerts {
		if a.ID == id {
			found := *a
			return &found, nil
		}
	}
	return nil, fmt.Errorf("alert with id %s: %w", id, service.ErrNotFound)
}

func (r *AlertRepository) List(_ context.Context) ([]*models.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Alert, 0, len(r.alerts))
	for _, a := range r.alerts {
		found := *a
		result = append(result, &found)
	}
	slices.Reverse(result)
	slices.SortStableFunc(result, func(a, b *models.Alert) int {
		return b.IssuedAt.Compare(a.IssuedAt)
	})
	return result, nil
}

func (r *AlertRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.alerts), nil
}
