package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"orderflow/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the sender needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NotificationMessage is the value written to the topic. Consumers key on orderId.
type NotificationMessage struct {
	OrderID       string    `json:"orderId"`
	RecipientRole string    `json:"recipientRole"`
	RecipientID   string    `json:"recipientId"`
	Status        string    `json:"status"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	At            time.Time `json:"at"`
}

// NotificationSender publishes notifications to a topic for the push gateway.
// It implements ports.NotificationSender.
type NotificationSender struct {
	writer MessageWriter
}

// NewWriter returns a writer for topic that keeps all messages of an order on one partition.
func NewWriter(host, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(host),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           50 * time.Millisecond,
	}
}

func NewNotificationSender(writer MessageWriter) *NotificationSender {
	return &NotificationSender{writer: writer}
}

func (s *NotificationSender) Send(ctx context.Context, n ports.Notification) error {
	value, err := json.Marshal(NotificationMessage{
		OrderID:       n.OrderID.String(),
		RecipientRole: n.Recipient.Role.String(),
		RecipientID:   n.Recipient.ID.String(),
		Status:        n.Status,
		Title:         n.Title,
		Body:          n.Body,
		At:            n.At.UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	err = s.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(n.OrderID.String()),
		Value: value,
		Time:  n.At,
	})
	if err != nil {
		return fmt.Errorf("write notification for order %s: %w", n.OrderID, err)
	}
	return nil
}

func (s *NotificationSender) Close() error {
	return s.writer.Close()
}
