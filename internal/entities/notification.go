package entities

import (
	"errors"
	"time"
)

const NotificationOrderCreated = "order_created"

type Notification struct {
	NotificationID string
	UserID         string
	OrderID        string
	Type           string
	Title          string
	Content        string
	IsRead         bool
	CreatedAt      time.Time
}

var ErrUnknownNotificationType = errors.New("unknown notification type")
