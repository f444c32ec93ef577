package commands

import (
	"context"
	"errors"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand records that payment for an order was received. Payment is a
// claimed status here: nothing is charged.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	reference string
	actor     kernel.Actor

	guard guard.ConstructorGuard
}

func NewRecordPaymentCommand(orderID kernel.UUID, reference string, actor kernel.Actor) (RecordPaymentCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return RecordPaymentCommand{}, err
	}
	return RecordPaymentCommand{
		orderID:   orderID,
		reference: strings.TrimSpace(reference),
		actor:     actor,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

func (c RecordPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RecordPaymentCommand) Reference() string {
	return c.reference
}

func (c RecordPaymentCommand) Actor() kernel.Actor {
	return c.actor
}

type RecordPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      Clock
}

func NewRecordPaymentCommandHandler(uowFactory OrderUoWFactory, clock Clock) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requireRole(cmd.Actor(), "record a payment", kernel.RoleVendor, kernel.RoleAdmin); err != nil {
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
		if err = o.Authorize(cmd.Actor(), "record a payment"); err != nil {
			return err
		}
		if err = o.CompletePayment(cmd.Reference(), h.clock()); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}

		return uow.Commit(ctx)
	})
}
