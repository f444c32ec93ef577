package commands

import (
	"errors"
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrLinesAreRequired = errs.NewValueIsRequiredError("lines")
)

// OrderLine is one requested menu item and how many of it. The price is looked up from
// the catalog when the order is placed.
type OrderLine struct {
	ItemID   kernel.UUID
	Quantity int
}

// CreateOrderCommand represents a customer's checkout of a single-vendor selection.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID, vendorID,
//	    []OrderLine{{ItemID: dosaID, Quantity: 2}}, target, payment)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalogReader, services.NewPricingEngine(), time.Now)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	vendorID   kernel.UUID
	lines      []OrderLine
	target     order.DeliveryTarget
	payment    order.Payment

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the checkout request. Lines must be non-empty with
// positive quantities; target and payment must come from their constructors.
func NewCreateOrderCommand(
	orderID, customerID, vendorID kernel.UUID,
	lines []OrderLine,
	target order.DeliveryTarget,
	payment order.Payment,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setIDs(orderID, customerID, vendorID),
		command.setLines(lines),
		command.setTarget(target),
		command.setPayment(payment),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateOrderCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Lines returns a copy of the requested lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	return append([]OrderLine(nil), c.lines...)
}

func (c CreateOrderCommand) Target() order.DeliveryTarget {
	return c.target
}

func (c CreateOrderCommand) Payment() order.Payment {
	return c.payment
}

func (c *CreateOrderCommand) setIDs(orderID, customerID, vendorID kernel.UUID) error {
	if err := errors.Join(orderID.Validate(), customerID.Validate(), vendorID.Validate()); err != nil {
		return err
	}

	c.orderID = orderID
	c.customerID = customerID
	c.vendorID = vendorID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}
	for i, l := range lines {
		if err := l.ItemID.Validate(); err != nil {
			return err
		}
		if l.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"quantity", fmt.Errorf("line %d: %d is not greater than 0", i, l.Quantity))
		}
	}

	c.lines = append([]OrderLine(nil), lines...)
	return nil
}

func (c *CreateOrderCommand) setTarget(target order.DeliveryTarget) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *CreateOrderCommand) setPayment(payment order.Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}

	c.payment = payment
	return nil
}
