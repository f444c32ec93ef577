package commands

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrRateOrderCommandIsNotConstructed = errors.New(
	"RateOrderCommand must be created via NewRateOrderCommand constructor",
)

// RateOrderCommand marks a delivered order as rated by its customer. The rating itself
// lives elsewhere; the order only remembers that it happened.
type RateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

func NewRateOrderCommand(orderID kernel.UUID, actor kernel.Actor) (RateOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return RateOrderCommand{}, err
	}
	return RateOrderCommand{orderID: orderID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (c RateOrderCommand) Validate() error {
	return c.guard.Validate(ErrRateOrderCommandIsNotConstructed)
}

func (c RateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RateOrderCommand) Actor() kernel.Actor {
	return c.actor
}

type RateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      Clock
}

func NewRateOrderCommandHandler(uowFactory OrderUoWFactory, clock Clock) RateOrderCommandHandler {
	return RateOrderCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle returns order.ErrAlreadyRated on a second rating.
func (h RateOrderCommandHandler) Handle(ctx context.Context, cmd RateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requireRole(cmd.Actor(), "rate an order", kernel.RoleCustomer); err != nil {
		return err
	}

	return retryOnConflict(ctx, func(ctx context.Context) error {
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
		if err = o.Authorize(cmd.Actor(), "rate"); err != nil {
			return err
		}
		if err = o.Rate(h.clock()); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}

		return uow.Commit(ctx)
	})
}
