package commands

import (
	"context"
)

// RejectDeliveryRequestCommandHandler records an agent declining an offer. Rejecting a
// request that already expired is accepted silently.
type RejectDeliveryRequestCommandHandler struct {
	uowFactory DeliveryRequestUoWFactory
	clock      Clock
}

func NewRejectDeliveryRequestCommandHandler(
	uowFactory DeliveryRequestUoWFactory,
	clock Clock,
) RejectDeliveryRequestCommandHandler {
	return RejectDeliveryRequestCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h RejectDeliveryRequestCommandHandler) Handle(ctx context.Context, cmd AnswerDeliveryRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requestRepo := uow.DeliveryRequestRepository()

	req, err := requestRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}
	if err = req.Authorize(cmd.Actor()); err != nil {
		return err
	}
	if err = req.Reject(h.clock()); err != nil {
		return err
	}

	if err = requestRepo.Update(ctx, req); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
