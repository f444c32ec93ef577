package commands

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var (
	ErrCheckoutCartCommandIsNotConstructed = errors.New(
		"CheckoutCartCommand must be created via NewCheckoutCartCommand constructor",
	)
	ErrCartIsEmpty = errs.NewValueIsRequiredError("cart items")
)

// CheckoutCartCommand turns the customer's cart into an order.
type CheckoutCartCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	target     order.DeliveryTarget
	payment    order.Payment

	guard guard.ConstructorGuard
}

func NewCheckoutCartCommand(
	orderID, customerID kernel.UUID,
	target order.DeliveryTarget,
	payment order.Payment,
) (CheckoutCartCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		customerID.Validate(),
		target.Validate(),
		payment.Validate(),
	); err != nil {
		return CheckoutCartCommand{}, err
	}

	return CheckoutCartCommand{
		orderID:    orderID,
		customerID: customerID,
		target:     target,
		payment:    payment,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CheckoutCartCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCartCommandIsNotConstructed)
}

func (c CheckoutCartCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CheckoutCartCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// orderCreator is satisfied by CreateOrderCommandHandler.
type orderCreator interface {
	Handle(ctx context.Context, cmd CreateOrderCommand) error
}

// CheckoutCartCommandHandler places an order from the cart's lines and empties the cart
// once the order is stored.
type CheckoutCartCommandHandler struct {
	carts   ports.CartStore
	creator orderCreator
}

func NewCheckoutCartCommandHandler(carts ports.CartStore, creator CreateOrderCommandHandler) CheckoutCartCommandHandler {
	return CheckoutCartCommandHandler{carts: carts, creator: creator}
}

// Handle returns ErrCartIsEmpty when there is nothing to order.
func (h CheckoutCartCommandHandler) Handle(ctx context.Context, cmd CheckoutCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := h.carts.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if c.IsEmpty() {
		return ErrCartIsEmpty
	}

	lines := make([]OrderLine, 0, len(c.Lines()))
	for _, l := range c.Lines() {
		lines = append(lines, OrderLine{ItemID: l.ItemID, Quantity: l.Quantity})
	}

	create, err := NewCreateOrderCommand(cmd.OrderID(), cmd.CustomerID(), c.VendorID(), lines, cmd.target, cmd.payment)
	if err != nil {
		return err
	}
	if err = h.creator.Handle(ctx, create); err != nil {
		return err
	}

	return h.carts.Delete(ctx, cmd.CustomerID())
}
