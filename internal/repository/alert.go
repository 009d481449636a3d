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

type AlertRepository struct {
	db *pgxpool.Pool
}

func NewAlertRepository(db *pgxpool.Pool) service.AlertRepository {
	return &AlertRepository{db: db}
}

// Create сохраняет оповещение
func (r *AlertRepository) Create(ctx context.Context, alert *models.Alert) error {
	query := `
		INSERT INTO alerts (message, severity, area, issued_at, issuer_id)
		VALUES ($1, $2, $3, $4, $5) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		alert.Message,
		alert.Severity,
		alert.Area,
		alert.IssuedAt,
		alert.IssuerID,
	).Scan(&alert.ID)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

func (r *AlertRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	alert := &models.Alert{}
	query := `
		SELECT id, message, severity, area, issued_at, issuer_id
		FROM alerts
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&alert.ID,
		&alert.Message,
		&alert.Severity,
		&alert.Area,
		&alert.IssuedAt,
		&alert.IssuerID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("alert with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get alert by id: %w", err)
	}
	alert.IssuedAt = alert.IssuedAt.UTC()
	return alert, nil
}

// List возвращает все оповещения, новые первыми
func (r *AlertRepository) List(ctx context.Context) ([]*models.Alert, error) {
	query := `
		SELECT id, message, severity, area, issued_at, issuer_id
		FROM alerts
		ORDER BY issued_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		alert := &models.Alert{}
		if err := rows.Scan(
			&alert.ID,
			&alert.Message,
			&alert.Severity,
			&alert.Area,
			&alert.IssuedAt,
			&alert.IssuerID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alert.IssuedAt = alert.IssuedAt.UTC()
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return alerts, nil
}

func (r *AlertRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM alerts;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count alerts: %w", err)
	}
	return count, nil
}
