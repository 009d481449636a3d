package v1

import (
	"time"

	"github.com/shenikar/resilink/internal/models"
)

// CreateIncidentRequestToModel преобразует DTO регистрации в доменную модель.
// Статус и время регистрации назначает сервис. OccurredAt хранится с точностью до микросекунд.
func CreateIncidentRequestToModel(dto CreateIncidentRequest) *models.Incident {
	return &models.Incident{
		Type:        dto.Type,
		Description: dto.Description,
		OccurredAt:  dto.OccurredAt.UTC().Truncate(time.Microsecond),
		MediaURL:    dto.MediaURL,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:           model.ID,
		Type:         model.Type,
		Description:  model.Description,
		OccurredAt:   model.OccurredAt,
		Status:       model.Status,
		RegisteredAt: model.RegisteredAt,
		MediaURL:     model.MediaURL,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(incidents))
	for i, model := range incidents {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

func CreateAlertRequestToModel(dto CreateAlertRequest) *models.Alert {
	return &models.Alert{
		Message:  dto.Message,
		Severity: dto.Severity,
		Area:     dto.Area,
	}
}

func ModelToAlertResponse(model *models.Alert) *AlertResponse {
	return &AlertResponse{
		ID:       model.ID,
		Message:  model.Message,
		Severity: model.Severity,
		Area:     model.Area,
		IssuedAt: model.IssuedAt,
		IssuerID: model.IssuerID,
	}
}

func ModelsToAlertResponses(alerts []*models.Alert) []*AlertResponse {
	responses := make([]*AlertResponse, len(alerts))
	for i, model := range alerts {
		responses[i] = ModelToAlertResponse(model)
	}
	return responses
}

func CreateResourceRequestToModel(dto CreateResourceRequest) *models.CommunityResource {
	return &models.CommunityResource{
		Type:        dto.Type,
		Description: dto.Description,
		Location:    dto.Location,
		Contact:     dto.Contact,
	}
}

func ModelToResourceResponse(model *models.CommunityResource) *ResourceResponse {
	return &ResourceResponse{
		ID:               model.ID,
		Type:             model.Type,
		Description:      model.Description,
		Location:         model.Location,
		Contact:          model.Contact,
		Available:        model.Available,
		ModerationStatus: model.ModerationStatus,
		CreatedAt:        model.CreatedAt,
		ProviderID:       model.ProviderID,
	}
}

func ModelsToResourceResponses(resources []*models.CommunityResource) []*ResourceResponse {
	responses := make([]*ResourceResponse, len(resources))
	for i, model := range resources {
		responses[i] = ModelToResourceResponse(model)
	}
	return responses
}

func ModelToStatusReportResponse(model *models.StatusReport) *StatusReportResponse {
	byType := model.IncidentCountByType
	if byType == nil {
		byType = map[string]int{}
	}
	return &StatusReportResponse{
		OpenIncidentCount:   model.OpenIncidentCount,
		TotalAlertCount:     model.TotalAlertCount,
		ActiveUsersLast24h:  model.ActiveUsersLast24h,
		IncidentCountByType: byType,
	}
}

// ModelToAuditLogPageResponse преобразует страницу журнала; пустая страница отдается как [], а не null
func ModelToAuditLogPageResponse(page *models.AuditLogPage) *AuditLogPageResponse {
	items := make([]*AuditLogEntryResponse, len(page.Items))
	for i, e := range page.Items {
		items[i] = &AuditLogEntryResponse{
			ID:        e.ID,
			Timestamp: e.Timestamp,
			EventType: e.EventType,
			Details:   e.Details,
			ActorID:   e.ActorID,
		}
	}
	return &AuditLogPageResponse{
		Items:    items,
		Page:     page.Page,
		PageSize: page.PageSize,
		Total:    page.Total,
	}
}
