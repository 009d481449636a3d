package models

import (
	"time"

	"github.com/google/uuid"
)

// Alert - оповещение. Неизменяемо после выпуска.
type Alert struct {
	ID       uuid.UUID `json:"id"`
	Message  string    `json:"message"`
	Severity string    `json:"severity"`
	Area     string    `json:"area"`
	IssuedAt time.Time `json:"issued_at"`
	IssuerID string    `json:"issuer_id"`
}
