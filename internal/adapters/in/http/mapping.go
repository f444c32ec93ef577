package http

import (
	"orderflow/internal/core/domain/model/agent"
	"orderflow/internal/core/domain/model/cart"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func optionalUUID(id *openapi_types.UUID) (kernel.UUID, error) {
	if id == nil {
		return kernel.UUID{}, nil
	}
	return toUUID(*id)
}

func toOrder(s order.Snapshot) servers.Order {
	lines := make([]servers.OrderLine, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, servers.OrderLine{
			ItemId:    l.ItemID().Bytes(),
			Name:      l.Name(),
			Quantity:  l.Quantity(),
			UnitPrice: l.UnitPrice().String(),
			Total:     l.Total().String(),
		})
	}

	out := servers.Order{
		Id:         s.ID.Bytes(),
		CustomerId: s.CustomerID.Bytes(),
		VendorId:   s.Vendor.ID.Bytes(),
		VendorName: s.Vendor.Name,
		Lines:      lines,
		Price: servers.Price{
			Subtotal:    s.Price.Subtotal().String(),
			DeliveryFee: s.Price.DeliveryFee().String(),
			TaxHalfA:    s.Price.TaxHalfA().String(),
			TaxHalfB:    s.Price.TaxHalfB().String(),
			Total:       s.Price.Total().String(),
		},
		Target:    toTarget(s.Target),
		Payment:   toPayment(s.Payment),
		Status:    servers.OrderStatus(s.Status.String()),
		Version:   s.Version,
		Rated:     s.Rated,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if s.Agent != nil {
		out.Agent = &servers.Agent{Id: s.Agent.ID.Bytes(), Name: s.Agent.Name}
	}
	if s.ConfirmationCode != "" {
		code := s.ConfirmationCode.String()
		out.ConfirmationCode = &code
	}
	return out
}

func toOrders(snapshots []order.Snapshot) []servers.Order {
	out := make([]servers.Order, 0, len(snapshots))
	for _, s := range snapshots {
		out = append(out, toOrder(s))
	}
	return out
}

func toTarget(t order.DeliveryTarget) servers.DeliveryTarget {
	out := servers.DeliveryTarget{Address: t.Address(), Phone: t.Phone()}
	if p := t.Point(); p != nil {
		out.Location = &servers.Location{Lat: p.Lat(), Lng: p.Lng()}
	}
	return out
}

func toPayment(p order.Payment) servers.Payment {
	out := servers.Payment{
		Method: servers.PaymentMethod(p.Method().String()),
		Status: servers.PaymentStatus(p.Status().String()),
	}
	if ref := p.Reference(); ref != "" {
		out.Reference = &ref
	}
	return out
}

func toPosition(p agent.Position) servers.Position {
	return servers.Position{
		AgentId:    p.AgentID.Bytes(),
		Lat:        p.Point.Lat(),
		Lng:        p.Point.Lng(),
		RecordedAt: p.RecordedAt,
	}
}

func toCart(customerID, vendorID kernel.UUID, lines []cart.Line, replaced bool) servers.Cart {
	items := make([]servers.CartItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, servers.CartItem{ItemId: l.ItemID.Bytes(), Quantity: l.Quantity})
	}
	out := servers.Cart{CustomerId: customerID.Bytes(), Lines: items, Replaced: replaced}
	if !vendorID.IsZero() {
		v := vendorID.Bytes()
		out.VendorId = &v
	}
	return out
}

func fromTarget(t servers.DeliveryTarget) (order.DeliveryTarget, error) {
	var point *kernel.GeoPoint
	if t.Location != nil {
		p, err := kernel.NewGeoPoint(t.Location.Lat, t.Location.Lng)
		if err != nil {
			return order.DeliveryTarget{}, err
		}
		point = &p
	}
	return order.NewDeliveryTarget(t.Address, point, t.Phone)
}

func fromPayment(method servers.PaymentMethod, reference *string) (order.Payment, error) {
	m, err := order.ParsePaymentMethod(string(method))
	if err != nil {
		return order.Payment{}, err
	}
	ref := ""
	if reference != nil {
		ref = *reference
	}
	return order.NewPayment(m, ref)
}

// fromFilter builds an order filter from the query parameters shared by the list and
// the stream endpoints.
func fromFilter(customerID, vendorID, agentID *openapi_types.UUID, statuses *[]servers.OrderStatus) (order.Filter, error) {
	var (
		filter order.Filter
		err    error
	)
	if filter.CustomerID, err = optionalUUID(customerID); err != nil {
		return order.Filter{}, err
	}
	if filter.VendorID, err = optionalUUID(vendorID); err != nil {
		return order.Filter{}, err
	}
	if filter.AgentID, err = optionalUUID(agentID); err != nil {
		return order.Filter{}, err
	}
	if statuses != nil {
		for _, raw := range *statuses {
			st, parseErr := order.ParseStatus(string(raw))
			if parseErr != nil {
				return order.Filter{}, parseErr
			}
			filter.Statuses = append(filter.Statuses, st)
		}
	}
	return filter, nil
}
