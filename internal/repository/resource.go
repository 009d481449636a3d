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

const resourceColumns = `id, type, description, location, contact, available, moderation_status, created_at, provider_id`

type ResourceRepository struct {
	db *pgxpool.Pool
}

func NewResourceRepository(db *pgxpool.Pool) service.ResourceRepository {
	return &ResourceRepository{db: db}
}

// Create сохраняет предложенный ресурс
func (r *ResourceRepository) Create(ctx context.Context, resource *models.CommunityResource) error {
	query := `
		INSERT INTO community_resources (type, description, location, contact, available, moderation_status, created_at, provider_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		resource.Type,
		resource.Description,
		resource.Location,
		resource.Contact,
		resource.Available,
		resource.ModerationStatus,
		resource.CreatedAt,
		resource.ProviderID,
	).Scan(&resource.ID)
	if err != nil {
		return fmt.Errorf("failed to create community resource: %w", err)
	}
	return nil
}

func (r *ResourceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.CommunityResource, error) {
	query := `SELECT ` + resourceColumns + ` FROM community_resources WHERE id = $1;`
	resource, err := scanResource(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("community resource with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get community resource by id: %w", err)
	}
	return resource, nil
}

// ListAvailable возвращает одобренные и доступные ресурсы, новые первыми
func (r *ResourceRepository) ListAvailable(ctx context.Context) ([]*models.CommunityResource, error) {
	query := `
		SELECT ` + resourceColumns + `
		FROM community_resources
		WHERE moderation_status = $1 AND available
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, models.ModerationApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to list community resources: %w", err)
	}
	defer rows.Close()

	resources := make([]*models.CommunityResource, 0)
	for rows.Next() {
		resource, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan community resource row: %w", err)
		}
		resources = append(resources, resource)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return resources, nil
}

// UpdateModeration записывает статус модерации и доступность одним запросом
func (r *ResourceRepository) UpdateModeration(ctx context.Context, id uuid.UUID, status string, available bool) error {
	query := `UPDATE community_resources SET moderation_status = $1, available = $2 WHERE id = $3;`
	cmdTag, err := r.db.Exec(ctx, query, status, available, id)
	if err != nil {
		return fmt.Errorf("failed to update community resource moderation: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("community resource with id %s not found for moderation: %w", id, service.ErrNotFound)
	}
	return nil
}

func scanResource(row pgx.Row) (*models.CommunityResource, error) {
	resource := &models.CommunityResource{}
	err := row.Scan(
		&resource.ID,
		&resource.Type,
		&resource.Description,
		&resource.Location,
		&resource.Contact,
		&resource.Available,
		&resource.ModerationStatus,
		&resource.CreatedAt,
		&resource.ProviderID,
	)
	if err != nil {
		return nil, err
	}
	resource.CreatedAt = resource.CreatedAt.UTC()
	return resource, nil
}
