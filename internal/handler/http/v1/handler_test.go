package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/resilink/internal/access"
	"github.com/shenikar/resilink/internal/config"
	"github.com/shenikar/resilink/internal/models"
	"github.com/shenikar/resilink/internal/service"
	"github.com/shenikar/resilink/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAPIKey = "test-api-key"

var authHeader = map[string]string{"X-API-Key": testAPIKey}

type serviceMocks struct {
	incidents *mocks.MockIncidentService
	alerts    *mocks.MockAlertService
	resources *mocks.MockResourceService
	reports   *mocks.MockReportService
	audit     *mocks.MockAuditService
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами.
// Отметки доступа в журнале разрешены любое число раз.
func newTestHandler(t *testing.T) (*Handler, serviceMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		incidents: mocks.NewMockIncidentService(ctrl),
		alerts:    mocks.NewMockAlertService(ctrl),
		resources: mocks.NewMockResourceService(ctrl),
		reports:   mocks.NewMockReportService(ctrl),
		audit:     mocks.NewMockAuditService(ctrl),
	}
	m.audit.EXPECT().Record(gomock.Any(), models.EventAPIKeyAccess, gomock.Any(), gomock.Any()).AnyTimes()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{testAPIKey},
	}

	handler := NewHandler(Services{
		Incidents: m.incidents,
		Alerts:    m.alerts,
		Resources: m.resources,
		Reports:   m.reports,
		Audit:     m.audit,
	}, access.NewMemoryTracker(time.Hour), logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func TestCreateIncident_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	incidentID := uuid.New()
	occurredAt := time.Date(2026, 4, 2, 15, 30, 0, 0, time.UTC)
	reqBody := CreateIncidentRequest{
		Type:        "Falta de Energia",
		Description: "Bairro inteiro sem luz",
		OccurredAt:  occurredAt,
	}

	m.incidents.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any(), ActorFromKey(testAPIKey)).
		DoAndReturn(func(_ context.Context, inc *models.Incident, _ string) error {
			assert.Equal(t, reqBody.Type, inc.Type)
			assert.True(t, occurredAt.Equal(inc.OccurredAt))
			inc.ID = incidentID
			inc.Status = models.IncidentStatusOpen
			inc.RegisteredAt = time.Now().UTC()
			return nil
		}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, incidentID, resp.ID)
	assert.Equal(t, models.IncidentStatusOpen, resp.Status)
	assert.Nil(t, resp.MediaURL)
}

func TestCreateIncident_InvalidJSON(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBufferString(`{"type": "test"`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateIncident_ValidationError(t *testing.T) {
	tests := []struct {
		name    string
		body    CreateIncidentRequest
		wantErr string
	}{
		{
			name:    "missing type",
			body:    CreateIncidentRequest{Description: "d", OccurredAt: time.Now()},
			wantErr: "Error:Field validation for 'Type' failed on the 'required' tag",
		},
		{
			name:    "missing occurred_at",
			body:    CreateIncidentRequest{Type: "Fire", Description: "d"},
			wantErr: "Error:Field validation for 'OccurredAt' failed on the 'required' tag",
		},
		{
			name:    "bad media url",
			body:    CreateIncidentRequest{Type: "Fire", Description: "d", OccurredAt: time.Now(), MediaURL: ptr("not a url")},
			wantErr: "Error:Field validation for 'MediaURL' failed on the 'url' tag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, m, router := newTestHandler(t)
			m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			w := makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, tt.body), authHeader)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantErr)
		})
	}
}

func TestCreateIncident_ServiceError(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{Type: "Fire", Description: "d", OccurredAt: time.Now()}
	serviceError := fmt.Errorf("%w: could not create incident: %w", service.ErrPersistence, errors.New("pq: connection reset"))

	m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any(), gomock.Any()).Return(serviceError).Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), "connection reset")
}

func TestGetIncident_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	incidentID := uuid.New()
	expectedIncident := &models.Incident{
		ID:     incidentID,
		Type:   "Enchente",
		Status: models.IncidentStatusOpen,
	}

	m.incidents.EXPECT().GetIncident(gomock.Any(), incidentID).Return(expectedIncident, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/incidents/%s", incidentID.String()), nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, incidentID, resp.ID)
	assert.Equal(t, expectedIncident.Type, resp.Type)
}

func TestGetIncident_InvalidID(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.incidents.EXPECT().GetIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "GET", "/api/v1/incidents/invalid-uuid", nil, authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid incident ID")
}

func TestGetIncident_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	incidentID := uuid.New()

	m.incidents.EXPECT().GetIncident(gomock.Any(), incidentID).Return(nil, service.ErrNotFound).Times(1)
	m.audit.EXPECT().
		Record(gomock.Any(), models.EventIncidentLookupFailed, fmt.Sprintf("Incident with ID %s was not found.", incidentID), ActorFromKey(testAPIKey)).
		Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/incidents/%s", incidentID.String()), nil, authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident not found")
}

func TestGetIncident_ServiceError(t *testing.T) {
	_, m, router := newTestHandler(t)
	incidentID := uuid.New()

	m.incidents.EXPECT().GetIncident(gomock.Any(), incidentID).Return(nil, service.ErrPersistence).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/incidents/%s", incidentID.String()), nil, authHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestListIncidents_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	expectedIncidents := []*models.Incident{
		{ID: uuid.New(), Type: "Forest Fire", Status: "Open"},
		{ID: uuid.New(), Type: "House fire", Status: "open"},
	}

	m.incidents.EXPECT().
		ListIncidents(gomock.Any(), models.IncidentFilter{Status: "open", Type: "fire"}).
		Return(expectedIncidents, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents?status=open&type=fire", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, expectedIncidents[0].Type, resp[0].Type)
}

func TestListIncidents_EmptyIsArray(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.incidents.EXPECT().ListIncidents(gomock.Any(), models.IncidentFilter{}).Return([]*models.Incident{}, nil)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestUpdateIncidentStatus_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	incidentID := uuid.New()

	m.incidents.EXPECT().
		UpdateIncidentStatus(gomock.Any(), incidentID, "Resolvido", ActorFromKey(testAPIKey)).
		Return(nil).Times(1)

	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/incidents/%s/status", incidentID),
		jsonBody(t, UpdateIncidentStatusRequest{Status: "Resolvido"}), authHeader)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestUpdateIncidentStatus_Errors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantCode   int
	}{
		{name: "blank status", serviceErr: fmt.Errorf("%w: new status must not be empty", service.ErrInvalidArgument), wantCode: http.StatusBadRequest},
		{name: "not found", serviceErr: service.ErrNotFound, wantCode: http.StatusNotFound},
		{name: "store failure", serviceErr: service.ErrPersistence, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, m, router := newTestHandler(t)
			incidentID := uuid.New()
			m.incidents.EXPECT().UpdateIncidentStatus(gomock.Any(), incidentID, "  ", gomock.Any()).Return(tt.serviceErr)

			w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/incidents/%s/status", incidentID),
				jsonBody(t, UpdateIncidentStatusRequest{Status: "  "}), authHeader)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestUpdateIncidentStatus_MissingStatus(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.incidents.EXPECT().UpdateIncidentStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/incidents/%s/status", uuid.New()),
		bytes.NewBufferString(`{}`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthCheck_NoAuth(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func ptr(s string) *string { return &s }
