package commands

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/services"
)

// OfferDeliveryCommandHandler opens a delivery request. The order itself does not change
// until the agent accepts.
type OfferDeliveryCommandHandler struct {
	uowFactory  UoWFactory
	coordinator *services.DeliveryCoordinator
	clock       Clock
}

func NewOfferDeliveryCommandHandler(
	uowFactory UoWFactory,
	coordinator *services.DeliveryCoordinator,
	clock Clock,
) OfferDeliveryCommandHandler {
	return OfferDeliveryCommandHandler{
		uowFactory:  uowFactory,
		coordinator: coordinator,
		clock:       clock,
	}
}

// Handle returns the id of the new delivery request. An order with an unanswered
// request gets services.ErrOfferAlreadyOpen.
func (h OfferDeliveryCommandHandler) Handle(ctx context.Context, cmd OfferDeliveryCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}
	if err := requireRole(cmd.Actor(), "offer a delivery", kernel.RoleVendor, kernel.RoleAdmin); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requestRepo := uow.DeliveryRequestRepository()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = o.Authorize(cmd.Actor(), "offer a delivery"); err != nil {
		return kernel.UUID{}, err
	}

	a, err := findAgent(ctx, uow.AgentRepository(), cmd.AgentID())
	if err != nil {
		return kernel.UUID{}, err
	}

	now := h.clock()
	open, err := requestRepo.HasOpenForOrder(ctx, o.ID(), now)
	if err != nil {
		return kernel.UUID{}, err
	}

	req, err := h.coordinator.Offer(o, a, open, now, cmd.Window())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = requestRepo.Add(ctx, req); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}
	return req.ID(), nil
}
