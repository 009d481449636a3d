package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы модерации ресурса
const (
	ModerationPending  = "Pendente"
	ModerationApproved = "Aprovado"
	ModerationRejected = "Rejeitado"
)

// CommunityResource - ресурс, предложенный жителями. Available определяется статусом модерации.
type CommunityResource struct {
	ID               uuid.UUID `json:"id"`
	Type             string    `json:"type"`
	Description      string    `json:"description"`
	Location         string    `json:"location"`
	Contact          string    `json:"contact"`
	Available        bool      `json:"available"`
	ModerationStatus string    `json:"moderation_status"`
	CreatedAt        time.Time `json:"created_at"`
	ProviderID       *string   `json:"provider_id,omitempty"`
}

// IsPubliclyListed сообщает, попадает ли ресурс в публичный список
func (r *CommunityResource) IsPubliclyListed() bool {
	return r.ModerationStatus == ModerationApproved && r.Available
}
