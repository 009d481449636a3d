package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/resilink/internal/models"
	"github.com/shenikar/resilink/internal/service"
)

// AuditLogRepository хранит журнал только на добавление
type AuditLogRepository struct {
	mu      sync.RWMutex
	entries []*models.AuditLogEntry
}

func NewAuditLogRepository() *AuditLogRepository {
	return &AuditLogRepository{}
}

var _ service.AuditLogRepository = (*AuditLogRepository)(nil)

func (r *AuditLogRepository) Create(_ context.Context, entry *models.AuditLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = uuid.New()
	r.entries = append(r.entries, cloneEntry(entry))
	return nil
}

func (r *AuditLogRepository) List(_ context.Context, limit, offset int) ([]*models.AuditLogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sorted := slices.Clone(r.entries)
	slices.Reverse(sorted)
	slices.SortStableFunc(sorted, func(a, b *models.AuditLogEntry) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	if offset >= len(sorted) {
		return []*models.AuditLogEntry{}, nil
	}
	end := min(offset+limit, len(sorted))

	page := make([]*models.AuditLogEntry, 0, end-offset)
	for _, e := range sorted[offset:end] {
		page = append(page, cloneEntry(e))
	}
	return page, nil
}

func (r *AuditLogRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries), nil
}

// CountDistinctActors пропускает записи без актора
func (r *AuditLogRepository) CountDistinctActors(_ context.Context, eventType string, since time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	actors := make(map[string]struct{})
	for _, e := range r.entries {
		if e.EventType != eventType || e.Timestamp.Before(since) {
			continue
		}
		if e.ActorID == nil || *e.ActorID == "" {
			continue
		}
		actors[*e.ActorID] = struct{}{}
	}
	return len(actors), nil
}

func (r *AuditLogRepository) ExistsByEventType(_ context.Context, eventType string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.EventType == eventType {
			return true, nil
		}
	}
	return false, nil
}

func cloneEntry(e *models.AuditLogEntry) *models.AuditLogEntry {
	c := *e
	if e.ActorID != nil {
		actor := *e.ActorID
		c.ActorID = &actor
	}
	return &c
}
