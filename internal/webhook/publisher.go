package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/resilink/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	alertQueueKey = "alert_broadcast_events"
)

// AlertEvent - структура для данных рассылки оповещения
type AlertEvent struct {
	AlertID  uuid.UUID `json:"alert_id"`
	Message  string    `json:"message"`
	Severity string    `json:"severity"`
	Area     string    `json:"area"`
	IssuerID string    `json:"issuer_id"`
	IssuedAt time.Time `json:"issued_at"`
}

// NewAlertEvent собирает событие рассылки из выпущенного оповещения
func NewAlertEvent(alert *models.Alert) AlertEvent {
	return AlertEvent{
		AlertID:  alert.ID,
		Message:  alert.Message,
		Severity: alert.Severity,
		Area:     alert.Area,
		IssuerID: alert.IssuerID,
		IssuedAt: alert.IssuedAt,
	}
}

// AlertPublisher - интерфейс для публикации оповещений
type AlertPublisher interface {
	Publish(ctx context.Context, event AlertEvent) error
}

// RedisAlertPublisher - реализация AlertPublisher, использующая очередь Redis
type RedisAlertPublisher struct {
	redisClient *redis.Client
}

// NewRedisAlertPublisher создает новый RedisAlertPublisher
func NewRedisAlertPublisher(client *redis.Client) *RedisAlertPublisher {
	return &RedisAlertPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisAlertPublisher) Publish(ctx context.Context, event AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	// LPUSH в левую часть списка, воркер забирает справа через BRPOP
	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}

// LogAlertPublisher только пишет рассылку в лог. Используется без Redis.
type LogAlertPublisher struct {
	logger *logrus.Logger
}

// NewLogAlertPublisher создает новый LogAlertPublisher
func NewLogAlertPublisher(logger *logrus.Logger) *LogAlertPublisher {
	return &LogAlertPublisher{logger: logger}
}

// Publish пишет симулированную рассылку в лог
func (p *LogAlertPublisher) Publish(_ context.Context, event AlertEvent) error {
	p.logger.WithFields(logrus.Fields{
		"alert_id": event.AlertID,
		"severity": event.Severity,
		"area":     event.Area,
	}).Infof("SIMULATED ALERT: %q for %q", event.Message, event.Area)
	return nil
}
