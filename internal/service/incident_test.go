package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shenikar/resilink/internal/metrics"
	"github.com/shenikar/resilink/internal/models"
	"github.com/shenikar/resilink/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

// newTestIncidentService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) (*incidentService, *mocks.MockIncidentRepository, *mocks.MockAuditService) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	auditMock := mocks.NewMockAuditService(ctrl)

	svc := NewIncidentService(repoMock, auditMock, newTestLogger(), metrics.New(prometheus.NewRegistry()))
	s := svc.(*incidentService)
	s.now = func() time.Time { return fixedNow }
	return s, repoMock, auditMock
}

func TestCreateIncident_Success(t *testing.T) {
	// Подготовка
	svc, repoMock, auditMock := newTestIncidentService(t)
	ctx := context.Background()
	newID := uuid.New()
	incident := &models.Incident{
		Type:        "Enchente",
		Description: "Rua alagada",
		OccurredAt:  fixedNow.Add(-time.Hour),
		Status:      "Closed",
	}

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			assert.Equal(t, models.IncidentStatusOpen, inc.Status)
			assert.Equal(t, fixedNow, inc.RegisteredAt)
			inc.ID = newID
			return nil
		}).
		Times(1)
	auditMock.EXPECT().
		Record(ctx, models.EventIncidentCreated, "ID: "+newID.String()+", Type: Enchente", "APIKey_abcde").
		Times(1)

	// Действие
	err := svc.CreateIncident(ctx, incident, "APIKey_abcde")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, newID, incident.ID)
	assert.Equal(t, models.IncidentStatusOpen, incident.Status)
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.metrics.IncidentsCreated))
}

func TestCreateIncident_RepositoryError(t *testing.T) {
	svc, repoMock, auditMock := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("connection refused")).Times(1)
	auditMock.EXPECT().Record(ctx, models.EventDatabaseError, gomock.Any(), "actor").Times(1)

	err := svc.CreateIncident(ctx, &models.Incident{Type: "Fire"}, "actor")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, 0.0, testutil.ToFloat64(svc.metrics.IncidentsCreated))
}

func TestGetIncident_Success(t *testing.T) {
	svc, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expected := &models.Incident{ID: incidentID, Type: "Fire", Status: models.IncidentStatusOpen}

	repoMock.EXPECT().GetByID(ctx, incidentID).Return(expected, nil).Times(1)

	incident, err := svc.GetIncident(ctx, incidentID)

	require.NoError(t, err)
	assert.Equal(t, expected, incident)
}

func TestGetIncident_NotFound(t *testing.T) {
	svc, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Отсутствие записи не пишется в журнал
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(nil, ErrNotFound).Times(1)

	incident, err := svc.GetIncident(ctx, incidentID)

	require.Error(t, err)
	assert.Nil(t, incident)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetIncident_RepositoryError(t *testing.T) {
	svc, repoMock, auditMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	repoMock.EXPECT().GetByID(ctx, incidentID).Return(nil, errors.New("timeout")).Times(1)
	auditMock.EXPECT().Record(ctx, models.EventDatabaseError, gomock.Any(), models.SystemActor).Times(1)

	_, err := svc.GetIncident(ctx, incidentID)

	assert.ErrorIs(t, err, ErrPersistence)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestListIncidents_PassesFilter(t *testing.T) {
	svc, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	filter := models.IncidentFilter{Status: "open", Type: "fire"}
	expected := []*models.Incident{{ID: uuid.New(), Type: "Forest Fire", Status: "Open"}}

	repoMock.EXPECT().List(ctx, filter).Return(expected, nil).Times(1)

	incidents, err := svc.ListIncidents(ctx, filter)

	require.NoError(t, err)
	assert.Equal(t, expected, incidents)
}

func TestListIncidents_RepositoryError(t *testing.T) {
	svc, repoMock, auditMock := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().List(ctx, models.IncidentFilter{}).Return(nil, errors.New("boom")).Times(1)
	auditMock.EXPECT().Record(ctx, models.EventDatabaseError, gomock.Any(), models.SystemActor).Times(1)

	_, err := svc.ListIncidents(ctx, models.IncidentFilter{})

	assert.ErrorIs(t, err, ErrPersistence)
}

func TestUpdateIncidentStatus_Success(t *testing.T) {
	svc, repoMock, auditMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	gomock.InOrder(
		repoMock.EXPECT().GetByID(ctx, incidentID).
			Return(&models.Incident{ID: incidentID, Status: "Open"}, nil),
		repoMock.EXPECT().UpdateStatus(ctx, incidentID, "Em Andamento").Return(nil),
		auditMock.EXPECT().Record(ctx, models.EventIncidentStatusUpdated,
			"ID: "+incidentID.String()+", From: Open, To: Em Andamento", "op"),
	)

	err := svc.UpdateIncidentStatus(ctx, incidentID, "Em Andamento", "op")

	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.metrics.IncidentStatusUpdates))
}

func TestUpdateIncidentStatus_AnyTransitionAllowed(t *testing.T) {
	svc, repoMock, auditMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Из закрытого обратно в открытый: таблицы переходов нет
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(&models.Incident{ID: incidentID, Status: "Closed"}, nil)
	repoMock.EXPECT().UpdateStatus(ctx, incidentID, "Open").Return(nil)
	auditMock.EXPECT().Record(ctx, models.EventIncidentStatusUpdated, gomock.Any(), "op")

	require.NoError(t, svc.UpdateIncidentStatus(ctx, incidentID, "Open", "op"))
}

func TestUpdateIncidentStatus_EmptyStatus(t *testing.T) {
	svc, _, _ := newTestIncidentService(t)

	err := svc.UpdateIncidentStatus(context.Background(), uuid.New(), "   ", "op")

	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestUpdateIncidentStatus_NotFound(t *testing.T) {
	svc, repoMock, auditMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	repoMock.EXPECT().GetByID(ctx, incidentID).Return(nil, ErrNotFound).Times(1)
	repoMock.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	auditMock.EXPECT().
		Record(ctx, models.EventIncidentUpdateFailed, "Incident ID "+incidentID.String()+" not found.", "op").
		Times(1)

	err := svc.UpdateIncidentStatus(ctx, incidentID, "Closed", "op")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0.0, testutil.ToFloat64(svc.metrics.IncidentStatusUpdates))
}

func TestUpdateIncidentStatus_DeletedBetweenReadAndWrite(t *testing.T) {
	svc, repoMock, auditMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	repoMock.EXPECT().GetByID(ctx, incidentID).Return(&models.Incident{ID: incidentID, Status: "Open"}, nil)
	repoMock.EXPECT().UpdateStatus(ctx, incidentID, "Closed").Return(ErrNotFound)
	auditMock.EXPECT().Record(ctx, models.EventIncidentUpdateFailed, gomock.Any(), "op")

	err := svc.UpdateIncidentStatus(ctx, incidentID, "Closed", "op")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateIncidentStatus_RepositoryError(t *testing.T) {
	svc, repoMock, auditMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	repoMock.EXPECT().GetByID(ctx, incidentID).Return(&models.Incident{ID: incidentID, Status: "Open"}, nil)
	repoMock.EXPECT().UpdateStatus(ctx, incidentID, "Closed").Return(errors.New("deadlock"))
	auditMock.EXPECT().Record(ctx, models.EventDatabaseError, gomock.Any(), "op")

	err := svc.UpdateIncidentStatus(ctx, incidentID, "Closed", "op")

	assert.ErrorIs(t, err, ErrPersistence)
}
