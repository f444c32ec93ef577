package commands

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"
)

// TransitionOrderCommandHandler applies an actor-driven status change as one guarded write.
//
// Cancelling an order that references an agent also releases that agent's active
// delivery in the same transaction.
type TransitionOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      Clock
}

func NewTransitionOrderCommandHandler(uowFactory UoWFactory, clock Clock) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the transition. A lost guarded write is retried once against the
// fresh order, which then reports the real outcome.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retryOnConflict(ctx, func(ctx context.Context) error {
		return h.handle(ctx, cmd)
	})
}

func (h TransitionOrderCommandHandler) handle(ctx context.Context, cmd TransitionOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Transition(cmd.To(), cmd.Actor(), h.clock()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if cmd.To() == order.Cancelled && o.Agent() != nil {
		if err = releaseAgent(ctx, uow.AgentRepository(), o.Agent().ID); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// releaseAgent decrements the active delivery count of an agent whose order left its
// hands. An agent that no longer exists has nothing to release.
func releaseAgent(ctx context.Context, agents ports.AgentRepository, agentID kernel.UUID) error {
	a, err := agents.Get(ctx, agentID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	a.FinishDelivery()
	return agents.Update(ctx, a)
}
