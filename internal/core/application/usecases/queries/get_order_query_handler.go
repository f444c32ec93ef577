package queries

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
)

// GetOrderQueryHandler returns the full snapshot of one order to a party of that order.
// The confirmation code is only ever shown to the customer who placed it.
type GetOrderQueryHandler struct {
	orders ports.OrderReader
}

func NewGetOrderQueryHandler(orders ports.OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (order.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return order.Snapshot{}, err
	}
	if err = o.Authorize(query.Actor(), "view"); err != nil {
		return order.Snapshot{}, err
	}

	return VisibleTo(query.Actor(), o.Snapshot()), nil
}

// VisibleTo strips what actor may not see from s.
func VisibleTo(actor kernel.Actor, s order.Snapshot) order.Snapshot {
	if actor.Role == kernel.RoleCustomer && actor.ID.IsEqual(s.CustomerID) {
		return s
	}
	return s.WithoutCode()
}
