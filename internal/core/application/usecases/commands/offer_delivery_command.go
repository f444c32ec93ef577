package commands

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/dispatch"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrOfferDeliveryCommandIsNotConstructed = errors.New(
	"OfferDeliveryCommand must be created via NewOfferDeliveryCommand constructor",
)

// OfferDeliveryCommand offers an order to one agent, who has a bounded window to accept.
type OfferDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	agentID kernel.UUID
	actor   kernel.Actor
	window  time.Duration

	guard guard.ConstructorGuard
}

// NewOfferDeliveryCommand creates the command. A zero window means
// dispatch.DefaultAcceptanceWindow.
func NewOfferDeliveryCommand(
	orderID, agentID kernel.UUID,
	actor kernel.Actor,
	window time.Duration,
) (OfferDeliveryCommand, error) {
	var windowErr error
	if window < 0 {
		windowErr = errs.NewValueIsOutOfRangeError("acceptance window", window, time.Duration(0), "+inf")
	}
	if err := errors.Join(orderID.Validate(), agentID.Validate(), actor.Validate(), windowErr); err != nil {
		return OfferDeliveryCommand{}, err
	}
	if window == 0 {
		window = dispatch.DefaultAcceptanceWindow
	}

	return OfferDeliveryCommand{
		orderID: orderID,
		agentID: agentID,
		actor:   actor,
		window:  window,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c OfferDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrOfferDeliveryCommandIsNotConstructed)
}

func (c OfferDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c OfferDeliveryCommand) AgentID() kernel.UUID {
	return c.agentID
}

func (c OfferDeliveryCommand) Actor() kernel.Actor {
	return c.actor
}

func (c OfferDeliveryCommand) Window() time.Duration {
	return c.window
}
