// Package access решает, нужно ли фиксировать обращение ключа в журнале аудита.
// Одно обращение на актора за интервал: этого достаточно для подсчета активных пользователей.
package access

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const markerKeyPrefix = "access_marker:"

// Tracker определяет контракт ограничения частоты отметок доступа
type Tracker interface {
	ShouldRecord(ctx context.Context, actorID string) (bool, error)
}

// RedisTracker хранит отметки в Redis с TTL, общий для всех инстансов API
type RedisTracker struct {
	redisClient *redis.Client
	interval    time.Duration
}

func NewRedisTracker(client *redis.Client, interval time.Duration) *RedisTracker {
	return &RedisTracker{
		redisClient: client,
		interval:    interval,
	}
}

// ShouldRecord возвращает true, если отметки для актора еще нет в текущем интервале
func (t *RedisTracker) ShouldRecord(ctx context.Context, actorID string) (bool, error) {
	ok, err := t.redisClient.SetNX(ctx, markerKeyPrefix+actorID, 1, t.interval).Result()
	if err != nil {
		return false, fmt.Errorf("failed to set access marker: %w", err)
	}
	return ok, nil
}

// MemoryTracker - реализация Tracker в памяти процесса
type MemoryTracker struct {
	mu       sync.Mutex
	interval time.Duration
	lastSeen map[string]time.Time
	now      func() time.Time
}

func NewMemoryTracker(interval time.Duration) *MemoryTracker {
	return &MemoryTracker{
		interval: interval,
		lastSeen: make(map[string]time.Time),
		now:      time.Now,
	}
}

func (t *MemoryTracker) ShouldRecord(_ context.Context, actorID string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if last, ok := t.lastSeen[actorID]; ok && now.Sub(last) < t.interval {
		return false, nil
	}
	t.lastSeen[actorID] = now
	return true, nil
}
