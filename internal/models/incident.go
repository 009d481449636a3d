package models

import (
	"time"

	"github.com/google/uuid"
)

// IncidentStatusOpen - статус, с которым создается каждый инцидент
const IncidentStatusOpen = "Open"

// Incident - зарегистрированное происшествие. После создания меняется только Status.
type Incident struct {
	ID           uuid.UUID `json:"id"`
	Type         string    `json:"type"`
	Description  string    `json:"description"`
	OccurredAt   time.Time `json:"occurred_at"`
	Status       string    `json:"status"`
	RegisteredAt time.Time `json:"registered_at"`
	MediaURL     *string   `json:"media_url,omitempty"`
}

// IncidentFilter - необязательные фильтры списка инцидентов, объединяются через AND
type IncidentFilter struct {
	Status string // точное совпадение без учета регистра
	Type   string // подстрока без учета регистра
}
