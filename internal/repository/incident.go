package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/resilink/internal/models"
	"github.com/shenikar/resilink/internal/service"
)

type IncidentRepository struct {
	db *pgxpool.Pool
}

func NewIncidentRepository(db *pgxpool.Pool) service.IncidentRepository {
	return &IncidentRepository{
		db: db,
	}
}

// Create создает новую запись об инциденте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (type, description, occurred_at, status, registered_at, media_url)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		incident.Type,
		incident.Description,
		incident.OccurredAt,
		incident.Status,
		incident.RegisteredAt,
		incident.MediaURL,
	).Scan(&incident.ID)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID возвращает инцидент по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	incident := &models.Incident{}
	query := `
		SELECT id, type, description, occurred_at, status, registered_at, media_url
		FROM incidents
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&incident.ID,
		&incident.Type,
		&incident.Description,
		&incident.OccurredAt,
		&incident.Status,
		&incident.RegisteredAt,
		&incident.MediaURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	normalizeIncidentTimes(incident)
	return incident, nil
}

// List возвращает инциденты, новые первыми.
// Статус сравнивается без учета регистра, тип ищется по подстроке.
func (r *IncidentRepository) List(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	query := `
		SELECT id, type, description, occurred_at, status, registered_at, media_url
		FROM incidents
		WHERE ($1 = '' OR LOWER(status) = LOWER($1))
			AND ($2 = '' OR POSITION(LOWER($2) IN LOWER(type)) > 0)
		ORDER BY registered_at DESC;
	`
	rows, err := r.db.Query(ctx, query, filter.Status, filter.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident := &models.Incident{}
		err := rows.Scan(
			&incident.ID,
			&incident.Type,
			&incident.Description,
			&incident.OccurredAt,
			&incident.Status,
			&incident.RegisteredAt,
			&incident.MediaURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		normalizeIncidentTimes(incident)
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// UpdateStatus перезаписывает статус инцидента
func (r *IncidentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE incidents SET status = $1 WHERE id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update incident status: %w", err)
	}

	// Если RowsAffected() == 0, значит инцидента с таким id не существует
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s not found for update: %w", id, service.ErrNotFound)
	}
	return nil
}

// CountByStatus считает инциденты с указанным статусом без учета регистра
func (r *IncidentRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	query := `SELECT COUNT(*) FROM incidents WHERE LOWER(status) = LOWER($1);`
	var count int
	if err := r.db.QueryRow(ctx, query, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count incidents by status: %w", err)
	}
	return count, nil
}

// CountByType группирует инциденты по точному значению типа
func (r *IncidentRepository) CountByType(ctx context.Context) (map[string]int, error) {
	query := `SELECT type, COUNT(*) FROM incidents GROUP BY type;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count incidents by type: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			incidentType string
			count        int
		)
		if err := rows.Scan(&incidentType, &count); err != nil {
			return nil, fmt.Errorf("failed to scan incident type count: %w", err)
		}
		counts[incidentType] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error count iteration: %w", err)
	}
	return counts, nil
}

// normalizeIncidentTimes приводит время из TIMESTAMPTZ к UTC, как при записи
func normalizeIncidentTimes(incident *models.Incident) {
	incident.OccurredAt = incident.OccurredAt.UTC()
	incident.RegisteredAt = incident.RegisteredAt.UTC()
}
