package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxAuditDetailsLength - максимальная длина поля Details в символах
const MaxAuditDetailsLength = 1000

// Типы событий журнала аудита
const (
	EventIncidentCreated       = "Incident Created"
	EventIncidentStatusUpdated = "Incident Status Updated"
	EventIncidentUpdateFailed  = "Update Failed"
	EventIncidentLookupFailed  = "Incident Lookup Failed"
	EventResourceOffered       = "Resource Offered"
	EventResourceModerated     = "Resource Moderated"
	EventModerationFailed      = "Moderation Failed"
	EventResourceLookupFailed  = "Resource Lookup Failed"
	EventAlertCreated          = "Alert Created"
	EventAlertLookupFailed     = "Alert Lookup Failed"
	EventReportGenerated       = "Report Generated"
	EventReportError           = "Report Error"
	EventDatabaseError         = "Database Error"
	EventAPIKeyAccess          = "API Key Access"
	EventAPIKeyVerification    = "API Key Verification"
)

// SystemActor - идентификатор для событий, инициированных самой системой
const SystemActor = "system"

// AuditLogEntry - запись журнала аудита. Только добавление.
type AuditLogEntry struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	EventType string    `json:"event_type"`
	Details   string    `json:"details"`
	ActorID   *string   `json:"actor_id,omitempty"`
}

// AuditLogPage - страница журнала аудита
type AuditLogPage struct {
	Items    []*AuditLogEntry `json:"items"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Total    int              `json:"total"`
}
