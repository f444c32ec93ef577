package dispatch

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

// DefaultAcceptanceWindow is how long an agent has to accept an offered delivery.
const DefaultAcceptanceWindow = 20 * time.Second

var ErrDeliveryRequestIsNotConstructed = errors.New("DeliveryRequest must be created via NewDeliveryRequest constructor")

// DeliveryRequest offers one order to one agent for a bounded acceptance window.
//
// The window is a soft deadline: nothing preempts the agent when it passes, but an
// acceptance that arrives late is refused and the request becomes Expired. A request
// that expires or is rejected leaves the order untouched; it goes back to the vendor's
// manual assignment pool.
type DeliveryRequest struct {
	id         kernel.UUID
	orderID    kernel.UUID
	vendorID   kernel.UUID
	agentID    kernel.UUID
	status     RequestStatus
	offeredAt  time.Time
	expiresAt  time.Time
	resolvedAt *time.Time
	guard      guard.ConstructorGuard
}

// NewDeliveryRequest opens an offer that expires window after offeredAt.
func NewDeliveryRequest(
	id, orderID, vendorID, agentID kernel.UUID,
	offeredAt time.Time,
	window time.Duration,
) (*DeliveryRequest, error) {
	if window <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("acceptance window", window, "0s", "+inf")
	}
	return RestoreDeliveryRequest(id, orderID, vendorID, agentID, Offered,
		offeredAt.UTC(), offeredAt.UTC().Add(window), nil)
}

// RestoreDeliveryRequest rebuilds a request from storage.
func RestoreDeliveryRequest(
	id, orderID, vendorID, agentID kernel.UUID,
	status RequestStatus,
	offeredAt, expiresAt time.Time,
	resolvedAt *time.Time,
) (*DeliveryRequest, error) {
	var statusErr error
	if _, ok := getRequestStatusStrings()[status]; !ok {
		statusErr = errs.NewValueIsInvalidError("request status")
	}

	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		vendorID.Validate(),
		agentID.Validate(),
		statusErr,
	); err != nil {
		return nil, err
	}

	return &DeliveryRequest{
		id:         id,
		orderID:    orderID,
		vendorID:   vendorID,
		agentID:    agentID,
		status:     status,
		offeredAt:  offeredAt,
		expiresAt:  expiresAt,
		resolvedAt: resolvedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (r *DeliveryRequest) Validate() error {
	if r == nil {
		return ErrDeliveryRequestIsNotConstructed
	}
	return r.guard.Validate(ErrDeliveryRequestIsNotConstructed)
}

func (r *DeliveryRequest) ID() kernel.UUID {
	return r.id
}

func (r *DeliveryRequest) OrderID() kernel.UUID {
	return r.orderID
}

func (r *DeliveryRequest) VendorID() kernel.UUID {
	return r.vendorID
}

func (r *DeliveryRequest) AgentID() kernel.UUID {
	return r.agentID
}

func (r *DeliveryRequest) Status() RequestStatus {
	return r.status
}

func (r *DeliveryRequest) OfferedAt() time.Time {
	return r.offeredAt
}

func (r *DeliveryRequest) ExpiresAt() time.Time {
	return r.expiresAt
}

func (r *DeliveryRequest) ResolvedAt() *time.Time {
	return r.resolvedAt
}

// IsOpen reports whether the agent can still answer.
func (r *DeliveryRequest) IsOpen() bool {
	return r.status == Offered
}

// Authorize allows the offered agent and admins.
func (r *DeliveryRequest) Authorize(actor kernel.Actor) error {
	if actor.Role == kernel.RoleAdmin || actor.Role == kernel.RoleSystem {
		return nil
	}
	if actor.Role == kernel.RoleDeliveryAgent && actor.ID.IsEqual(r.agentID) {
		return nil
	}
	return errs.NewUnauthorizedError(actor.Role, "answer delivery request "+r.id.String())
}

// Accept records the agent's acceptance at now.
//
// Returns:
//   - nil when the request was open and now is within the window
//   - errs.ErrRequestExpired when now is past the deadline; the request becomes Expired
//     and the caller must persist it before reporting the error
//   - errs.ErrRequestExpired again for a request already Expired or Rejected
//   - InvalidStateError for a request already Accepted
func (r *DeliveryRequest) Accept(now time.Time) error {
	switch r.status {
	case Offered:
		if now.After(r.expiresAt) {
			r.resolve(Expired, now)
			return errs.ErrRequestExpired
		}
		r.resolve(Accepted, now)
		return nil
	case Expired, Rejected:
		return errs.ErrRequestExpired
	case Accepted, RequestStatusUnknown:
	}
	return errs.NewInvalidStateError("accept", r.status)
}

// Reject declines the offer. Rejecting a closed, unaccepted request is a no-op.
func (r *DeliveryRequest) Reject(now time.Time) error {
	switch r.status {
	case Offered:
		r.resolve(Rejected, now)
		return nil
	case Expired, Rejected:
		return nil
	case Accepted, RequestStatusUnknown:
	}
	return errs.NewInvalidStateError("reject", r.status)
}

// Expire closes an open request whose deadline passed. It reports whether anything changed.
func (r *DeliveryRequest) Expire(now time.Time) bool {
	if r.status != Offered || !now.After(r.expiresAt) {
		return false
	}
	r.resolve(Expired, now)
	return true
}

func (r *DeliveryRequest) resolve(status RequestStatus, now time.Time) {
	at := now.UTC()
	r.status = status
	r.resolvedAt = &at
}
