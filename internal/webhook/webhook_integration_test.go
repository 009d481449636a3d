//go:build integration

package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shenikar/resilink/internal/config"
	"github.com/shenikar/resilink/internal/testutil/containers"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisAlertPublisher_Publish(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	ctx := context.Background()
	require.NoError(t, rc.FlushAll(ctx))

	event, _ := testEvent()
	require.NoError(t, NewRedisAlertPublisher(rc.Client).Publish(ctx, event))

	raw, err := rc.Client.RPop(ctx, alertQueueKey).Result()
	require.NoError(t, err)

	var got AlertEvent
	require.NoError(t, json.Unmarshal([]byte(raw), &got))
	assert.Equal(t, event.AlertID, got.AlertID)
	assert.Equal(t, event.Message, got.Message)
}

func TestWebhookWorker_DeliversQueuedAlerts(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, rc.FlushAll(ctx))

	received := make(chan AlertEvent, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ev AlertEvent
		if err := json.NewDecoder(r.Body).Decode(&ev); err == nil {
			received <- ev
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	worker := NewWebhookWorker(rc.Client, logger, &config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 1,
		WebhookBaseDelay:  10 * time.Millisecond,
	})
	worker.Start(ctx)

	event, _ := testEvent()
	require.NoError(t, NewRedisAlertPublisher(rc.Client).Publish(ctx, event))

	select {
	case got := <-received:
		assert.Equal(t, event.AlertID, got.AlertID)
	case <-time.After(10 * time.Second):
		t.Fatal("alert was not delivered to webhook")
	}
}
