// Package notify turns committed status changes into push notifications.
//
// Notifications are best effort. The dispatcher queues them without blocking the
// committing request, a single worker hands them to the sender, and failures are
// logged and dropped. A lost notification never affects the order.
package notify

import (
	"context"
	"fmt"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"

	"go.uber.org/zap"
)

const (
	DefaultQueueSize   = 256
	defaultSendTimeout = 5 * time.Second
)

// Dispatcher implements ports.OrderChangePublisher.
type Dispatcher struct {
	sender ports.NotificationSender
	queue  chan ports.Notification
	logger *zap.Logger
}

// NewDispatcher creates a dispatcher with room for queueSize pending notifications.
// Nothing is sent until Run is started.
func NewDispatcher(sender ports.NotificationSender, queueSize int, logger *zap.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Dispatcher{
		sender: sender,
		queue:  make(chan ports.Notification, queueSize),
		logger: logger.With(zap.String("component", "notify_dispatcher")),
	}
}

// Publish queues a notification for every status change that one is sent for.
// When the queue is full the notification is dropped.
func (d *Dispatcher) Publish(_ context.Context, changes []ports.OrderChange) {
	for _, change := range changes {
		for _, event := range change.Events {
			for _, n := range Notifications(change.Snapshot, event) {
				select {
				case d.queue <- n:
				default:
					d.logger.Warn("notification queue full, dropped",
						zap.Stringer("order_id", n.OrderID), zap.String("status", n.Status))
				}
			}
		}
	}
}

// Run sends queued notifications until ctx is done.
func (d *Dispatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case n := <-d.queue:
			d.send(ctx, n)
		}
	}
}

func (d *Dispatcher) send(ctx context.Context, n ports.Notification) {
	ctx, cancel := context.WithTimeout(ctx, defaultSendTimeout)
	defer cancel()

	if err := d.sender.Send(ctx, n); err != nil {
		d.logger.Warn("notification failed",
			zap.Error(err),
			zap.Stringer("order_id", n.OrderID),
			zap.Stringer("recipient", n.Recipient),
			zap.String("status", n.Status),
		)
		return
	}
	d.logger.Debug("notification sent", zap.Stringer("order_id", n.OrderID), zap.String("status", n.Status))
}

// Notifications returns what is sent for one status change of s. The customer hears
// about acceptance, dispatch, delivery and cancellation. The assigned agent is told
// when a delivery starts.
func Notifications(s order.Snapshot, event order.StatusChanged) []ports.Notification {
	customer := kernel.Actor{Role: kernel.RoleCustomer, ID: s.CustomerID}
	note := func(recipient kernel.Actor, title, body string) ports.Notification {
		return ports.Notification{
			OrderID:   s.ID,
			Recipient: recipient,
			Status:    event.To.String(),
			Title:     title,
			Body:      body,
			At:        event.At,
		}
	}

	switch event.To {
	case order.Accepted:
		return []ports.Notification{
			note(customer, "Order accepted", fmt.Sprintf("%s accepted your order.", s.Vendor.Name)),
		}
	case order.OutForDelivery:
		out := []ports.Notification{
			note(customer, "Out for delivery", fmt.Sprintf("%s is on the way. Share your code only at the door.", agentName(s))),
		}
		if s.Agent != nil {
			out = append(out, note(
				kernel.Actor{Role: kernel.RoleDeliveryAgent, ID: s.Agent.ID},
				"New delivery",
				fmt.Sprintf("Pick up the order at %s and deliver to %s.", s.Vendor.Name, s.Target.Address()),
			))
		}
		return out
	case order.Delivered:
		return []ports.Notification{
			note(customer, "Order delivered", fmt.Sprintf("Enjoy your order from %s.", s.Vendor.Name)),
		}
	case order.Cancelled:
		return []ports.Notification{
			note(customer, "Order cancelled", fmt.Sprintf("Your order from %s was cancelled.", s.Vendor.Name)),
		}
	default:
		return nil
	}
}

func agentName(s order.Snapshot) string {
	if s.Agent == nil || s.Agent.Name == "" {
		return "Your delivery partner"
	}
	return s.Agent.Name
}
