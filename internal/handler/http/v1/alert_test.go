package v1

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/resilink/internal/models"
	"github.com/shenikar/resilink/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateAlert_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	alertID := uuid.New()
	reqBody := CreateAlertRequest{Message: "Evacuar margem do rio", Severity: "Alta", Area: "Zona Sul"}

	m.alerts.EXPECT().
		IssueAlert(gomock.Any(), gomock.Any(), ActorFromKey(testAPIKey)).
		DoAndReturn(func(_ context.Context, a *models.Alert, issuer string) error {
			a.ID = alertID
			a.IssuedAt = time.Now().UTC()
			a.IssuerID = issuer
			return nil
		})

	w := makeRequest(router, "POST", "/api/v1/alerts", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp AlertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, alertID, resp.ID)
	assert.Equal(t, ActorFromKey(testAPIKey), resp.IssuerID)
}

func TestCreateAlert_MessageTooShort(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.alerts.EXPECT().IssueAlert(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/alerts",
		jsonBody(t, CreateAlertRequest{Message: "curto", Severity: "Alta", Area: "Sul"}), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'Message' failed on the 'min' tag")
}

func TestListAlerts(t *testing.T) {
	_, m, router := newTestHandler(t)
	alerts := []*models.Alert{{ID: uuid.New()}, {ID: uuid.New()}}

	m.alerts.EXPECT().ListAlerts(gomock.Any()).Return(alerts, nil)

	w := makeRequest(router, "GET", "/api/v1/alerts", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []AlertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestGetAlert(t *testing.T) {
	tests := []struct {
		name      string
		alert     *models.Alert
		err       error
		wantCode  int
		wantAudit bool
	}{
		{name: "found", alert: &models.Alert{Message: "Tempestade forte"}, wantCode: http.StatusOK},
		{name: "not found", err: service.ErrNotFound, wantCode: http.StatusNotFound, wantAudit: true},
		{name: "store failure", err: service.ErrPersistence, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, m, router := newTestHandler(t)
			id := uuid.New()
			m.alerts.EXPECT().GetAlert(gomock.Any(), id).Return(tt.alert, tt.err)
			if tt.wantAudit {
				// Поиск несуществующего оповещения фиксируется в журнале
				m.audit.EXPECT().Record(gomock.Any(), models.EventAlertLookupFailed, gomock.Any(), ActorFromKey(testAPIKey)).Times(1)
			}

			w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/alerts/%s", id), nil, authHeader)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
