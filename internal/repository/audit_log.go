package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/resilink/internal/models"
	"github.com/shenikar/resilink/internal/service"
)

type AuditLogRepository struct {
	db *pgxpool.Pool
}

func NewAuditLogRepository(db *pgxpool.Pool) service.AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Create добавляет запись в журнал. Записи журнала не изменяются и не удаляются.
func (r *AuditLogRepository) Create(ctx context.Context, entry *models.AuditLogEntry) error {
	query := `
		INSERT INTO audit_logs (timestamp, event_type, details, actor_id)
		VALUES ($1, $2, $3, $4) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		entry.Timestamp,
		entry.EventType,
		entry.Details,
		entry.ActorID,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("failed to create audit log entry: %w", err)
	}
	return nil
}

// List возвращает страницу журнала, новые записи первыми
func (r *AuditLogRepository) List(ctx context.Context, limit, offset int) ([]*models.AuditLogEntry, error) {
	query := `
		SELECT id, timestamp, event_type, details, actor_id
		FROM audit_logs
		ORDER BY timestamp DESC, id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit log: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.AuditLogEntry, 0)
	for rows.Next() {
		entry := &models.AuditLogEntry{}
		if err := rows.Scan(
			&entry.ID,
			&entry.Timestamp,
			&entry.EventType,
			&entry.Details,
			&entry.ActorID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan audit log row: %w", err)
		}
		entry.Timestamp = entry.Timestamp.UTC()
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return entries, nil
}

func (r *AuditLogRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM audit_logs;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count audit log: %w", err)
	}
	return count, nil
}

// CountDistinctActors возвращает количество уникальных акторов события начиная с since
func (r *AuditLogRepository) CountDistinctActors(ctx context.Context, eventType string, since time.Time) (int, error) {
	query := `
		SELECT COUNT(DISTINCT actor_id)
		FROM audit_logs
		WHERE event_type = $1
			AND timestamp >= $2
			AND actor_id IS NOT NULL
			AND actor_id <> '';
	`
	var count int
	if err := r.db.QueryRow(ctx, query, eventType, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count distinct actors: %w", err)
	}
	return count, nil
}

func (r *AuditLogRepository) ExistsByEventType(ctx context.Context, eventType string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM audit_logs WHERE event_type = $1);`
	if err := r.db.QueryRow(ctx, query, eventType).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check audit log event existence: %w", err)
	}
	return exists, nil
}
