package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// OrderReader is the read side of order storage. It is safe to use outside a transaction.
type OrderReader interface {
	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ErrObjectNotFound when no order has that id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// List returns orders matching filter, newest first, at most limit of them.
	// A non-positive limit means no limit.
	List(ctx context.Context, filter order.Filter, limit int) ([]*order.Order, error)
}

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	OrderReader

	// Add persists a new order aggregate with its line items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update is a guarded write of the mutable part of the order (status, agent, code,
	// payment, rating). It succeeds only if the stored version still equals
	// aggregate.Version(); the stored version is then incremented and synced back
	// into the aggregate. Lines and price are never rewritten.
	//
	// Returns ConcurrentModificationError when another writer got there first and
	// errs.ErrObjectNotFound when the row is gone.
	Update(ctx context.Context, aggregate *order.Order) error
}
