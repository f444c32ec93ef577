package commands

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/services"
	"orderflow/internal/pkg/errs"
)

// AcceptDeliveryRequestCommandHandler turns an accepted offer into an assignment.
//
// Business rules:
//   - Only the offered agent (or an admin) may accept
//   - A late acceptance closes the request as expired, commits that, and returns
//     errs.ErrRequestExpired; the order goes back to the vendor untouched
//   - Accepting again after expiry or rejection returns errs.ErrRequestExpired again
//   - On time, the request, the order and the agent change in one transaction
type AcceptDeliveryRequestCommandHandler struct {
	uowFactory  UoWFactory
	coordinator *services.DeliveryCoordinator
	clock       Clock
}

func NewAcceptDeliveryRequestCommandHandler(
	uowFactory UoWFactory,
	coordinator *services.DeliveryCoordinator,
	clock Clock,
) AcceptDeliveryRequestCommandHandler {
	return AcceptDeliveryRequestCommandHandler{
		uowFactory:  uowFactory,
		coordinator: coordinator,
		clock:       clock,
	}
}

func (h AcceptDeliveryRequestCommandHandler) Handle(ctx context.Context, cmd AnswerDeliveryRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retryOnConflict(ctx, func(ctx context.Context) error {
		return h.handle(ctx, cmd)
	})
}

func (h AcceptDeliveryRequestCommandHandler) handle(ctx context.Context, cmd AnswerDeliveryRequestCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requestRepo := uow.DeliveryRequestRepository()
	orderRepo := uow.OrderRepository()
	agentRepo := uow.AgentRepository()

	req, err := requestRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}
	if err = req.Authorize(cmd.Actor()); err != nil {
		return err
	}

	o, err := orderRepo.Get(ctx, req.OrderID())
	if err != nil {
		return err
	}
	a, err := findAgent(ctx, agentRepo, req.AgentID())
	if err != nil {
		return err
	}

	err = h.coordinator.AcceptRequest(req, o, a, h.clock())
	if errors.Is(err, errs.ErrRequestExpired) {
		if updateErr := requestRepo.Update(ctx, req); updateErr != nil {
			return updateErr
		}
		if commitErr := uow.Commit(ctx); commitErr != nil {
			return commitErr
		}
		return err
	}
	if err != nil {
		return err
	}

	if err = requestRepo.Update(ctx, req); err != nil {
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
