package ports

import (
	"context"

	"orderflow/internal/core/domain/model/agent"
	"orderflow/internal/core/domain/model/order"
)

// OrderChange is one committed write of an order: the full state after the write and the
// status changes it carried. Events is empty for writes that did not move the status.
type OrderChange struct {
	Snapshot order.Snapshot
	Events   []order.StatusChanged
}

// OrderChangePublisher receives committed order changes. Publish is called after commit
// and must not block on slow consumers; errors are the publisher's own to log.
type OrderChangePublisher interface {
	Publish(ctx context.Context, changes []OrderChange)
}

// PositionPublisher receives agent positions after they were stored.
type PositionPublisher interface {
	PublishPosition(ctx context.Context, position agent.Position)
}
