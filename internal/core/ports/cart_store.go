package ports

import (
	"context"

	"orderflow/internal/core/domain/model/cart"
	"orderflow/internal/core/domain/model/kernel"
)

// CartStore keeps one cart per customer.
type CartStore interface {
	// Get returns the customer's cart, or a new empty cart when there is none.
	Get(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)
	Save(ctx context.Context, c *cart.Cart) error
	Delete(ctx context.Context, customerID kernel.UUID) error
}
