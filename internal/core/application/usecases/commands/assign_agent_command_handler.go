package commands

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/agent"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"
)

// AssignAgentCommandHandler hands an order to the delivery coordinator together with
// the chosen agent and stores both in one transaction.
//
// Example:
//
//	handler := NewAssignAgentCommandHandler(uowFactory, services.NewDeliveryCoordinator(services.RandomCodeGenerator{}), time.Now)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrInvalidState):
//	    log.Println("order is no longer waiting for an agent")
//	case errors.Is(err, errs.ErrAgentUnavailable):
//	    log.Println("agent is not on the roster")
//	}
type AssignAgentCommandHandler struct {
	uowFactory  UoWFactory
	coordinator *services.DeliveryCoordinator
	clock       Clock
}

func NewAssignAgentCommandHandler(
	uowFactory UoWFactory,
	coordinator *services.DeliveryCoordinator,
	clock Clock,
) AssignAgentCommandHandler {
	return AssignAgentCommandHandler{
		uowFactory:  uowFactory,
		coordinator: coordinator,
		clock:       clock,
	}
}

// Handle processes the assignment.
//
// The order's state is checked before the agent, so assigning to a cancelled order is
// InvalidState whatever agent is named.
func (h AssignAgentCommandHandler) Handle(ctx context.Context, cmd AssignAgentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requireRole(cmd.Actor(), "assign an agent", kernel.RoleVendor, kernel.RoleAdmin); err != nil {
		return err
	}

	return retryOnConflict(ctx, func(ctx context.Context) error {
		return h.handle(ctx, cmd)
	})
}

func (h AssignAgentCommandHandler) handle(ctx context.Context, cmd AssignAgentCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	agentRepo := uow.AgentRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if err = o.Authorize(cmd.Actor(), "assign an agent"); err != nil {
		return err
	}

	a, err := findAgent(ctx, agentRepo, cmd.AgentID())
	if err != nil {
		return err
	}

	if err = h.coordinator.Assign(o, a, h.clock()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}
	if err = agentRepo.Update(ctx, a); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// findAgent loads an agent, treating an unknown id as an absent agent so the
// coordinator reports it in its own terms.
func findAgent(ctx context.Context, agents ports.AgentRepository, id kernel.UUID) (*agent.Agent, error) {
	a, err := agents.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	return a, err
}
