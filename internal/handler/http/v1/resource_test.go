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

func TestCreateResource_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	resourceID := uuid.New()
	actor := ActorFromKey(testAPIKey)
	reqBody := CreateResourceRequest{Type: "Abrigo", Description: "Ginásio", Location: "Centro", Contact: "555-0101"}

	m.resources.EXPECT().
		OfferResource(gomock.Any(), gomock.Any(), actor).
		DoAndReturn(func(_ context.Context, r *models.CommunityResource, actorID string) error {
			r.ID = resourceID
			r.ModerationStatus = models.ModerationPending
			r.Available = true
			r.CreatedAt = time.Now().UTC()
			r.ProviderID = &actorID
			return nil
		})

	w := makeRequest(router, "POST", "/api/v1/resources", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp ResourceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, resourceID, resp.ID)
	assert.Equal(t, models.ModerationPending, resp.ModerationStatus)
	require.NotNil(t, resp.ProviderID)
	assert.Equal(t, actor, *resp.ProviderID)
}

func TestCreateResource_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.resources.EXPECT().OfferResource(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	reqBody := CreateResourceRequest{Type: "Abrigo", Description: "Ginásio", Location: "Centro"}
	w := makeRequest(router, "POST", "/api/v1/resources", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'Contact' failed on the 'required' tag")
}

func TestListResources(t *testing.T) {
	_, m, router := newTestHandler(t)
	listed := []*models.CommunityResource{{ID: uuid.New(), ModerationStatus: models.ModerationApproved, Available: true}}

	m.resources.EXPECT().ListAvailableResources(gomock.Any()).Return(listed, nil)

	w := makeRequest(router, "GET", "/api/v1/resources", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []ResourceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, listed[0].ID, resp[0].ID)
}

func TestGetResource_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	id := uuid.New()

	m.resources.EXPECT().GetResource(gomock.Any(), id).Return(nil, service.ErrNotFound)
	m.audit.EXPECT().Record(gomock.Any(), models.EventResourceLookupFailed, gomock.Any(), ActorFromKey(testAPIKey)).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/resources/%s", id), nil, authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "resource not found")
}

func TestModerateResource_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	id := uuid.New()

	m.resources.EXPECT().ModerateResource(gomock.Any(), id, models.ModerationApproved, ActorFromKey(testAPIKey)).Return(nil)

	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/resources/%s/moderation", id),
		jsonBody(t, ModerateResourceRequest{Status: models.ModerationApproved}), authHeader)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestModerateResource_InvalidStatus(t *testing.T) {
	_, m, router := newTestHandler(t)
	id := uuid.New()
	serviceErr := fmt.Errorf("%w: moderation status must be %q or %q", service.ErrInvalidArgument, models.ModerationApproved, models.ModerationRejected)

	m.resources.EXPECT().ModerateResource(gomock.Any(), id, "Pendente", gomock.Any()).Return(serviceErr)

	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/resources/%s/moderation", id),
		jsonBody(t, ModerateResourceRequest{Status: "Pendente"}), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Aprovado")
}

func TestModerateResource_InvalidID(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.resources.EXPECT().ModerateResource(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "PUT", "/api/v1/resources/42/moderation",
		jsonBody(t, ModerateResourceRequest{Status: models.ModerationApproved}), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid resource ID")
}
