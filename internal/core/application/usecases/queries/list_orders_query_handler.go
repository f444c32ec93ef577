package queries

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"
)

// ListOrdersQueryHandler lists the orders an actor is a party to.
//
// Customers, vendors and agents always get their own orders: the filter's field for
// their role is overwritten with their id. Admins and the system see everything.
type ListOrdersQueryHandler struct {
	orders ports.OrderReader
}

func NewListOrdersQueryHandler(orders ports.OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]order.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter, err := ScopeFilter(query.Actor(), query.Filter())
	if err != nil {
		return nil, err
	}

	found, err := h.orders.List(ctx, filter, query.Limit())
	if err != nil {
		return nil, err
	}

	snapshots := make([]order.Snapshot, 0, len(found))
	for _, o := range found {
		snapshots = append(snapshots, VisibleTo(query.Actor(), o.Snapshot()))
	}
	return snapshots, nil
}

// ScopeFilter narrows filter to what actor may observe. It is shared with the live
// order stream so that lists and subscriptions agree.
func ScopeFilter(actor kernel.Actor, filter order.Filter) (order.Filter, error) {
	switch actor.Role {
	case kernel.RoleCustomer:
		filter.CustomerID = actor.ID
	case kernel.RoleVendor:
		filter.VendorID = actor.ID
	case kernel.RoleDeliveryAgent:
		filter.AgentID = actor.ID
	case kernel.RoleAdmin, kernel.RoleSystem:
	case kernel.RoleUnknown:
		return order.Filter{}, errs.NewUnauthorizedError(actor.Role, "list orders")
	}
	return filter, nil
}
