package services

import (
	"errors"
	"fmt"
	"time"

	"orderflow/internal/core/domain/model/agent"
	"orderflow/internal/core/domain/model/dispatch"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
)

var (
	// ErrNotOnRoster is the cause attached to AgentUnavailable when the agent works for another vendor.
	ErrNotOnRoster = errors.New("agent is not on the vendor's roster")

	// ErrOfferAlreadyOpen is returned when the order already has an unanswered delivery request.
	ErrOfferAlreadyOpen = fmt.Errorf("%w: a delivery request for this order is still open", errs.ErrInvalidState)
)

// DeliveryCoordinator binds delivery agents to orders and gates delivery behind the
// confirmation code. It is the only writer of an order's agent reference and code.
//
// Key responsibilities:
//   - Assigning an agent from the vendor's roster and issuing the confirmation code
//   - Confirming delivery against the code and releasing the agent
//   - Offering an order to an agent with an acceptance window, and turning an accepted
//     offer into an assignment
//
// Example usage:
//
//	coordinator := services.NewDeliveryCoordinator(services.RandomCodeGenerator{})
//	if err := coordinator.Assign(o, a, time.Now()); err != nil {
//	    // errs.ErrInvalidState or errs.ErrAgentUnavailable
//	}
type DeliveryCoordinator struct {
	codes CodeGenerator
}

func NewDeliveryCoordinator(codes CodeGenerator) *DeliveryCoordinator {
	return &DeliveryCoordinator{codes: codes}
}

// Assign sends the order out for delivery with agent a.
//
// Returns:
//   - InvalidStateError unless the order is Accepted or Preparing
//   - AgentUnavailableError when a is nil or not on the order vendor's roster
//   - nil on success; the order holds the agent and a fresh code and a's active
//     delivery count is incremented
func (c *DeliveryCoordinator) Assign(o *order.Order, a *agent.Agent, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := assignable(o, "assign an agent"); err != nil {
		return err
	}
	if err := onRoster(o, a); err != nil {
		return err
	}

	code, err := c.codes.Generate()
	if err != nil {
		return err
	}

	if err := o.AssignAgent(order.AgentRef{ID: a.ID(), Name: a.Name()}, code, now); err != nil {
		return err
	}

	a.StartDelivery()
	return nil
}

// ConfirmDelivery checks submitted against the order's code. On success the order is
// Delivered and the assigned agent, when given, is released.
//
// Returns errs.ErrOtpMismatch on a wrong code without touching o or a, and
// InvalidStateError when the order is not awaiting confirmation.
func (c *DeliveryCoordinator) ConfirmDelivery(o *order.Order, a *agent.Agent, submitted string, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := o.ConfirmDelivery(submitted, now); err != nil {
		return err
	}
	if a != nil {
		a.FinishDelivery()
	}
	return nil
}

// Offer opens a delivery request for o to agent a. hasOpenOffer tells whether another
// request for the order is still unanswered.
func (c *DeliveryCoordinator) Offer(
	o *order.Order,
	a *agent.Agent,
	hasOpenOffer bool,
	now time.Time,
	window time.Duration,
) (*dispatch.DeliveryRequest, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := assignable(o, "offer a delivery"); err != nil {
		return nil, err
	}
	if err := onRoster(o, a); err != nil {
		return nil, err
	}
	if hasOpenOffer {
		return nil, ErrOfferAlreadyOpen
	}

	return dispatch.NewDeliveryRequest(kernel.NewUUID(), o.ID(), o.Vendor().ID, a.ID(), now, window)
}

// AcceptRequest records the agent's acceptance and performs the assignment.
//
// A late acceptance returns errs.ErrRequestExpired after moving req to Expired; the
// caller persists req and leaves the order untouched.
func (c *DeliveryCoordinator) AcceptRequest(
	req *dispatch.DeliveryRequest,
	o *order.Order,
	a *agent.Agent,
	now time.Time,
) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if !req.OrderID().IsEqual(o.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("delivery request", fmt.Errorf("request is for another order"))
	}
	if err := req.Accept(now); err != nil {
		return err
	}
	return c.Assign(o, a, now)
}

func assignable(o *order.Order, operation string) error {
	if s := o.Status(); s != order.Accepted && s != order.Preparing {
		return errs.NewInvalidStateError(operation, s)
	}
	return nil
}

func onRoster(o *order.Order, a *agent.Agent) error {
	if a == nil || a.Validate() != nil {
		return errs.NewAgentUnavailableError("unknown")
	}
	if !a.BelongsTo(o.Vendor().ID) {
		return errs.NewAgentUnavailableErrorWithCause(a.ID().String(), ErrNotOnRoster)
	}
	return nil
}
