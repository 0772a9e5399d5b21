package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/sos_alert_system/internal/models"
)

const (
	webhookQueueKey = "alert_events"
)

// EventType - тип события жизненного цикла тревоги
type EventType string

const (
	EventAlertTriggered  EventType = "alert.triggered"
	EventAlertResolved   EventType = "alert.resolved"
	EventAlertFalseAlarm EventType = "alert.false_alarm"
)

// AlertEvent - структура для данных вебхука
type AlertEvent struct {
	Type         EventType          `json:"type"`
	ProfileID    uuid.UUID          `json:"profile_id"`
	AlertID      uuid.UUID          `json:"alert_id"`
	Status       models.AlertStatus `json:"status"`
	Latitude     float64            `json:"latitude"`
	Longitude    float64            `json:"longitude"`
	Timestamp    int64              `json:"timestamp"`
	SuccessCount int                `json:"success_count,omitempty"` // Итог рассылки, только для alert.triggered
	FailureCount int                `json:"failure_count,omitempty"`
	OccurredAt   time.Time          `json:"occurred_at"`
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event AlertEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}
