package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/delivery-order-service/internal/config"
	"github.com/SergeyBogomolovv/delivery-order-service/internal/entities"

	"github.com/segmentio/kafka-go"
)

// notificationEvent - формат события в канале уведомлений
type notificationEvent struct {
	NotificationID string `json:"notification_id"`
	UserID         string `json:"user_id"`
	OrderID        string `json:"order_id"`
	Type           string `json:"type"`
	Title          string `json:"title"`
	Content        string `json:"content"`
}

type Publisher struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewPublisher(logger *slog.Logger, cfg config.Kafka) *Publisher {
	return &Publisher{
		logger: logger.With(slog.String("broker", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.NotificationsTopic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

// Publish отправляет событие уведомления. Подтверждения доставки
// подписчикам не ждем: долговременная запись - строка в notifications,
// а не само событие.
func (p *Publisher) Publish(ctx context.Context, n entities.Notification) error {
	event := notificationEvent{
		NotificationID: n.NotificationID,
		UserID:         n.UserID,
		OrderID:        n.OrderID,
		Type:           n.Type,
		Title:          n.Title,
		Content:        n.Content,
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(n.UserID),
		Value: data,
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
