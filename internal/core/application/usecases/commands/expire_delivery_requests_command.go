package commands

import (
	"context"
	"errors"

	"orderflow/internal/pkg/guard"
)

var ErrExpireDeliveryRequestsCommandIsNotConstructed = errors.New(
	"ExpireDeliveryRequestsCommand must be created via NewExpireDeliveryRequestsCommand constructor",
)

// DefaultExpiryBatch bounds how many requests one sweep closes.
const DefaultExpiryBatch = 100

// ExpireDeliveryRequestsCommand closes open delivery requests whose acceptance window
// has passed. It is issued by the expiry job.
type ExpireDeliveryRequestsCommand struct {
	limit int

	guard guard.ConstructorGuard
}

// NewExpireDeliveryRequestsCommand creates a sweep of at most limit requests; a
// non-positive limit means DefaultExpiryBatch.
func NewExpireDeliveryRequestsCommand(limit int) ExpireDeliveryRequestsCommand {
	if limit <= 0 {
		limit = DefaultExpiryBatch
	}
	return ExpireDeliveryRequestsCommand{limit: limit, guard: guard.NewConstructorGuard()}
}

func (c ExpireDeliveryRequestsCommand) Validate() error {
	return c.guard.Validate(ErrExpireDeliveryRequestsCommandIsNotConstructed)
}

func (c ExpireDeliveryRequestsCommand) Limit() int {
	return c.limit
}

type ExpireDeliveryRequestsCommandHandler struct {
	uowFactory DeliveryRequestUoWFactory
	clock      Clock
}

func NewExpireDeliveryRequestsCommandHandler(
	uowFactory DeliveryRequestUoWFactory,
	clock Clock,
) ExpireDeliveryRequestsCommandHandler {
	return ExpireDeliveryRequestsCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns how many requests were closed.
func (h ExpireDeliveryRequestsCommandHandler) Handle(ctx context.Context, cmd ExpireDeliveryRequestsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requestRepo := uow.DeliveryRequestRepository()
	now := h.clock()

	expired, err := requestRepo.ListExpired(ctx, now, cmd.Limit())
	if err != nil {
		return 0, err
	}

	closed := 0
	for _, req := range expired {
		if !req.Expire(now) {
			continue
		}
		if err = requestRepo.Update(ctx, req); err != nil {
			return 0, err
		}
		closed++
	}

	if closed == 0 {
		return 0, nil
	}
	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return closed, nil
}
