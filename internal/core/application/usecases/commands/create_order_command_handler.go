package commands

import (
	"context"
	"errors"
	"fmt"

	"orderflow/internal/core/domain/model/catalog"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"
)

var (
	ErrItemNotOnMenu    = errors.New("item is not on the vendor's menu")
	ErrItemNotAvailable = errors.New("item is not available")
)

// CreateOrderCommandHandler places an order: it reads live prices from the catalog,
// has the pricing engine quote them once and persists the frozen result in Pending status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalogReader, services.NewPricingEngine(), time.Now)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now pending and waiting for the vendor
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.CatalogReader
	pricing    services.PricingEngine
	clock      Clock
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.CatalogReader,
	pricing services.PricingEngine,
	clock Clock,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		pricing:    pricing,
		clock:      clock,
	}
}

// Handle processes the order creation command.
//
// Every line must reference an available item of the command's vendor; otherwise a
// ValueIsInvalidError naming the item is returned and nothing is written.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	vendor, err := h.catalog.GetVendor(ctx, cmd.VendorID())
	if err != nil {
		return err
	}

	lines, err := h.priceLines(ctx, vendor, cmd.Lines())
	if err != nil {
		return err
	}

	price, err := h.pricing.Quote(lines, vendor.Fees())
	if err != nil {
		return err
	}

	o, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		order.VendorRef{ID: vendor.ID(), Name: vendor.Name()},
		lines,
		price,
		cmd.Target(),
		cmd.Payment(),
		h.clock(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h CreateOrderCommandHandler) priceLines(
	ctx context.Context,
	vendor catalog.Vendor,
	requested []OrderLine,
) ([]order.LineItem, error) {
	ids := make([]kernel.UUID, 0, len(requested))
	for _, l := range requested {
		ids = append(ids, l.ItemID)
	}

	items, err := h.catalog.GetMenuItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]catalog.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID()] = item
	}

	lines := make([]order.LineItem, 0, len(requested))
	for _, l := range requested {
		item, ok := byID[l.ItemID]
		if !ok || !item.VendorID().IsEqual(vendor.ID()) {
			return nil, errs.NewValueIsInvalidErrorWithCause("item "+l.ItemID.String(), ErrItemNotOnMenu)
		}
		if !item.IsAvailable() {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"item "+l.ItemID.String(), fmt.Errorf("%w: %s", ErrItemNotAvailable, item.Name()))
		}

		line, err := order.NewLineItem(item.ID(), item.Name(), item.Price(), l.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
