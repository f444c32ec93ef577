package ports

import (
	"context"
	"time"

	"orderflow/internal/core/domain/model/dispatch"
	"orderflow/internal/core/domain/model/kernel"
)

// DeliveryRequestRepository stores offers made to agents.
type DeliveryRequestRepository interface {
	Add(ctx context.Context, req *dispatch.DeliveryRequest) error
	Update(ctx context.Context, req *dispatch.DeliveryRequest) error

	// Get returns errs.ErrObjectNotFound when the request does not exist.
	Get(ctx context.Context, id kernel.UUID) (*dispatch.DeliveryRequest, error)

	// HasOpenForOrder reports whether the order has an offer that is neither answered
	// nor past its deadline at now.
	HasOpenForOrder(ctx context.Context, orderID kernel.UUID, now time.Time) (bool, error)

	// ListExpired returns open offers whose deadline passed before now, oldest first,
	// at most limit of them.
	ListExpired(ctx context.Context, now time.Time, limit int) ([]*dispatch.DeliveryRequest, error)
}
