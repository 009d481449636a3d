package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateIncidentRequest DTO для регистрации инцидента
// @Description DTO для регистрации инцидента
type CreateIncidentRequest struct {
	Type        string    `json:"type" validate:"required,max=100"`
	Description string    `json:"description" validate:"required,max=1000"`
	OccurredAt  time.Time `json:"occurred_at" validate:"required"`
	MediaURL    *string   `json:"media_url,omitempty" validate:"omitempty,url,max=2048"`
}

// UpdateIncidentStatusRequest DTO для смены статуса инцидента
// @Description DTO для смены статуса инцидента
type UpdateIncidentStatusRequest struct {
	Status string `json:"status" validate:"required,max=50"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID           uuid.UUID `json:"id"`
	Type         string    `json:"type"`
	Description  string    `json:"description"`
	OccurredAt   time.Time `json:"occurred_at"`
	Status       string    `json:"status"`
	RegisteredAt time.Time `json:"registered_at"`
	MediaURL     *string   `json:"media_url,omitempty"`
}

// CreateAlertRequest DTO для выпуска оповещения
// @Description DTO для выпуска оповещения
type CreateAlertRequest struct {
	Message  string `json:"message" validate:"required,min=10,max=500"`
	Severity string `json:"severity" validate:"required,max=50"`
	Area     string `json:"area" validate:"required,max=200"`
}

// AlertResponse DTO для ответа с оповещением
// @Description DTO для ответа с оповещением
type AlertResponse struct {
	ID       uuid.UUID `json:"id"`
	Message  string    `json:"message"`
	Severity string    `json:"severity"`
	Area     string    `json:"area"`
	IssuedAt time.Time `json:"issued_at"`
	IssuerID string    `json:"issuer_id"`
}

// CreateResourceRequest DTO для предложения ресурса
// @Description DTO для предложения ресурса
type CreateResourceRequest struct {
	Type        string `json:"type" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=500"`
	Location    string `json:"location" validate:"required,max=200"`
	Contact     string `json:"contact" validate:"required,max=100"`
}

// ModerateResourceRequest DTO для модерации ресурса. Допустимы только Aprovado и Rejeitado.
// @Description DTO для модерации ресурса
type ModerateResourceRequest struct {
	Status string `json:"status" validate:"required"`
}

// ResourceResponse DTO для ответа с ресурсом
// @Description DTO для ответа с ресурсом
type ResourceResponse struct {
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

// StatusReportResponse DTO для отчета о состоянии
// @Description DTO для отчета о состоянии
type StatusReportResponse struct {
	OpenIncidentCount   int            `json:"open_incident_count"`
	TotalAlertCount     int            `json:"total_alert_count"`
	ActiveUsersLast24h  int            `json:"active_users_last_24h"`
	IncidentCountByType map[string]int `json:"incident_count_by_type"`
}

// AuditLogEntryResponse DTO для записи журнала аудита
// @Description DTO для записи журнала аудита
type AuditLogEntryResponse struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	EventType string    `json:"event_type"`
	Details   string    `json:"details"`
	ActorID   *string   `json:"actor_id,omitempty"`
}

// AuditLogPageResponse DTO для страницы журнала аудита
// @Description DTO для страницы журнала аудита
type AuditLogPageResponse struct {
	Items    []*AuditLogEntryResponse `json:"items"`
	Page     int                      `json:"page"`
	PageSize int                      `json:"page_size"`
	Total    int                      `json:"total"`
}

// VerifyAPIKeyResponse DTO для ответа проверки ключа
// @Description DTO для ответа проверки ключа
type VerifyAPIKeyResponse struct {
	Message           string `json:"message"`
	AuthenticatedUser string `json:"authenticated_user"`
}
