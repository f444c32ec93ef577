package ports

import (
	"context"
	"time"

	"orderflow/internal/core/domain/model/kernel"
)

// Notification is a push message addressed to one party of an order.
type Notification struct {
	OrderID   kernel.UUID
	Recipient kernel.Actor
	Status    string
	Title     string
	Body      string
	At        time.Time
}

// NotificationSender delivers push notifications. Delivery is best effort: callers log
// and drop failures.
type NotificationSender interface {
	Send(ctx context.Context, n Notification) error
}
