package commands

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/agent"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrRegisterAgentCommandIsNotConstructed = errors.New(
	"RegisterAgentCommand must be created via NewRegisterAgentCommand constructor",
)

// RegisterAgentCommand puts a new delivery agent on a vendor's roster.
//
// Example:
//
//	cmd, err := NewRegisterAgentCommand(vendorID, "Ravi", "+91 98450 00000", actor)
//	if err != nil {
//	    return fmt.Errorf("invalid agent data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register agent: %w", err)
//	}
//	fmt.Printf("Registered agent with ID: %s", cmd.AgentID())
type RegisterAgentCommand struct { //nolint:recvcheck //using for validation
	agentID  kernel.UUID
	vendorID kernel.UUID
	name     string
	phone    string
	actor    kernel.Actor

	guard guard.ConstructorGuard
}

// NewRegisterAgentCommand generates the agent's id.
func NewRegisterAgentCommand(vendorID kernel.UUID, name, phone string, actor kernel.Actor) (RegisterAgentCommand, error) {
	var nameErr error
	if name == "" {
		nameErr = agent.ErrNameIsRequired
	}
	if err := errors.Join(vendorID.Validate(), nameErr, actor.Validate()); err != nil {
		return RegisterAgentCommand{}, err
	}

	return RegisterAgentCommand{
		agentID:  kernel.NewUUID(),
		vendorID: vendorID,
		name:     name,
		phone:    phone,
		actor:    actor,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterAgentCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAgentCommandIsNotConstructed)
}

func (c RegisterAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}

func (c RegisterAgentCommand) VendorID() kernel.UUID {
	return c.vendorID
}

func (c RegisterAgentCommand) Name() string {
	return c.name
}

func (c RegisterAgentCommand) Phone() string {
	return c.phone
}

func (c RegisterAgentCommand) Actor() kernel.Actor {
	return c.actor
}

// RegisterAgentCommandHandler persists a new agent with no active deliveries.
type RegisterAgentCommandHandler struct {
	uowFactory AgentUoWFactory
}

func NewRegisterAgentCommandHandler(uowFactory AgentUoWFactory) RegisterAgentCommandHandler {
	return RegisterAgentCommandHandler{uowFactory: uowFactory}
}

// Handle lets a vendor grow only its own roster.
func (h RegisterAgentCommandHandler) Handle(ctx context.Context, cmd RegisterAgentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requireRole(cmd.Actor(), "register an agent", kernel.RoleVendor, kernel.RoleAdmin); err != nil {
		return err
	}
	if cmd.Actor().Role == kernel.RoleVendor && !cmd.Actor().ID.IsEqual(cmd.VendorID()) {
		return errs.NewUnauthorizedError(cmd.Actor().Role, "register an agent for another vendor")
	}

	a, err := agent.NewAgent(cmd.AgentID(), cmd.VendorID(), cmd.Name(), cmd.Phone())
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

	if err = uow.AgentRepository().Add(ctx, a); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
