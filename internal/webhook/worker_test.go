package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/resilink/internal/config"
	"github.com/shenikar/resilink/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(t *testing.T, cfg *config.Config) (*WebhookWorker, *[]time.Duration) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	if cfg.WebhookTimeout == 0 {
		cfg.WebhookTimeout = time.Second
	}
	w := NewWebhookWorker(nil, logger, cfg)

	// Записываем задержки вместо реального ожидания
	var delays []time.Duration
	w.sleep = func(_ context.Context, d time.Duration) {
		delays = append(delays, d)
	}
	return w, &delays
}

func testEvent() (AlertEvent, string) {
	event := NewAlertEvent(&models.Alert{
		ID:       uuid.New(),
		Message:  "Evacuar margem do rio",
		Severity: "Alta",
		Area:     "Zona Sul",
		IssuerID: "APIKey_abcde",
		IssuedAt: time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC),
	})
	payload, _ := json.Marshal(event)
	return event, string(payload)
}

func TestDeliver_Success(t *testing.T) {
	var received AlertEvent
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get(SignatureHeader))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	worker, delays := newTestWorker(t, &config.Config{
		WebhookURL:        srv.URL,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Second,
	})
	event, payload := testEvent()

	ok := worker.deliver(context.Background(), event, payload)

	assert.True(t, ok)
	assert.Equal(t, event.AlertID, received.AlertID)
	assert.Equal(t, event.Area, received.Area)
	assert.Empty(t, *delays)
}

func TestDeliver_RetriesWithBackoff(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	worker, delays := newTestWorker(t, &config.Config{
		WebhookURL:        srv.URL,
		WebhookMaxRetries: 5,
		WebhookBaseDelay:  100 * time.Millisecond,
	})
	event, payload := testEvent()

	ok := worker.deliver(context.Background(), event, payload)

	assert.True(t, ok)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, *delays)
}

func TestDeliver_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	worker, delays := newTestWorker(t, &config.Config{
		WebhookURL:        srv.URL,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Second,
	})
	event, payload := testEvent()

	ok := worker.deliver(context.Background(), event, payload)

	assert.False(t, ok)
	assert.Equal(t, int32(3), calls.Load())
	// После последней попытки ожидания нет
	assert.Len(t, *delays, 2)
}

func TestDeliver_SignsPayload(t *testing.T) {
	const secret = "s3cr3t"
	var signature string
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		signature = r.Header.Get(SignatureHeader)
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	worker, _ := newTestWorker(t, &config.Config{
		WebhookURL:        srv.URL,
		WebhookSecret:     secret,
		WebhookMaxRetries: 1,
	})
	event, payload := testEvent()

	require.True(t, worker.deliver(context.Background(), event, payload))

	assert.Equal(t, generateHMACSHA256(string(body), secret), signature)
	assert.Len(t, signature, 64)
}

func TestDeliver_NoURLConfigured(t *testing.T) {
	worker, _ := newTestWorker(t, &config.Config{WebhookMaxRetries: 3})
	event, payload := testEvent()

	assert.False(t, worker.deliver(context.Background(), event, payload))
}

func TestGenerateHMACSHA256_KnownVector(t *testing.T) {
	// RFC 4231, test case 2
	assert.Equal(t,
		"5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
		generateHMACSHA256("what do ya want for nothing?", "Jefe"))
}

func TestLogAlertPublisher_Publish(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	event, _ := testEvent()
	err := NewLogAlertPublisher(logger).Publish(context.Background(), event)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "SIMULATED ALERT")
	assert.Contains(t, buf.String(), event.AlertID.String())
	assert.Contains(t, buf.String(), `"area":"Zona Sul"`)
}
