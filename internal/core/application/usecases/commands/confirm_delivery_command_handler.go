package commands

import (
	"context"

	"orderflow/internal/core/domain/model/agent"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/services"
)

// ConfirmDeliveryCommandHandler completes a delivery when the agent submits the right code.
//
// A wrong code returns errs.ErrOtpMismatch and writes nothing, so the agent can simply
// try again. Only the assigned agent (or an admin) may submit.
type ConfirmDeliveryCommandHandler struct {
	uowFactory  UoWFactory
	coordinator *services.DeliveryCoordinator
	clock       Clock
}

func NewConfirmDeliveryCommandHandler(
	uowFactory UoWFactory,
	coordinator *services.DeliveryCoordinator,
	clock Clock,
) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory:  uowFactory,
		coordinator: coordinator,
		clock:       clock,
	}
}

func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requireRole(cmd.Actor(), "confirm a delivery", kernel.RoleDeliveryAgent, kernel.RoleAdmin); err != nil {
		return err
	}

	return retryOnConflict(ctx, func(ctx context.Context) error {
		return h.handle(ctx, cmd)
	})
}

func (h ConfirmDeliveryCommandHandler) handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
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
	if err = o.Authorize(cmd.Actor(), "confirm delivery"); err != nil {
		return err
	}

	var a *agent.Agent
	if ref := o.Agent(); ref != nil {
		if a, err = findAgent(ctx, agentRepo, ref.ID); err != nil {
			return err
		}
	}

	if err = h.coordinator.ConfirmDelivery(o, a, cmd.Code(), h.clock()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}
	if a != nil {
		if err = agentRepo.Update(ctx, a); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
