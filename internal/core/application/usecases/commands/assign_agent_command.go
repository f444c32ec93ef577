package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrAssignAgentCommandIsNotConstructed = errors.New(
	"AssignAgentCommand must be created via NewAssignAgentCommand constructor",
)

// AssignAgentCommand is the vendor picking a delivery agent from its roster for an
// accepted or preparing order.
//
// Example:
//
//	cmd, _ := NewAssignAgentCommand(orderID, agentID, kernel.Actor{Role: kernel.RoleVendor, ID: vendorID})
//	handler := NewAssignAgentCommandHandler(uowFactory, coordinator, time.Now)
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrAgentUnavailable) {
//	    // pick someone else
//	}
type AssignAgentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	agentID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

func NewAssignAgentCommand(orderID, agentID kernel.UUID, actor kernel.Actor) (AssignAgentCommand, error) {
	if err := errors.Join(orderID.Validate(), agentID.Validate(), actor.Validate()); err != nil {
		return AssignAgentCommand{}, err
	}

	return AssignAgentCommand{
		orderID: orderID,
		agentID: agentID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignAgentCommand) Validate() error {
	return c.guard.Validate(ErrAssignAgentCommandIsNotConstructed)
}

func (c AssignAgentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AssignAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}

func (c AssignAgentCommand) Actor() kernel.Actor {
	return c.actor
}
