package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand carries the code the customer read out to the delivery agent.
// The code is passed as typed; the order strips anything that is not a digit.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	code    string
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

func NewConfirmDeliveryCommand(orderID kernel.UUID, code string, actor kernel.Actor) (ConfirmDeliveryCommand, error) {
	var codeErr error
	if code == "" {
		codeErr = errs.NewValueIsRequiredError("confirmation code")
	}
	if err := errors.Join(orderID.Validate(), codeErr, actor.Validate()); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return ConfirmDeliveryCommand{
		orderID: orderID,
		code:    code,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

func (c ConfirmDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ConfirmDeliveryCommand) Code() string {
	return c.code
}

func (c ConfirmDeliveryCommand) Actor() kernel.Actor {
	return c.actor
}
