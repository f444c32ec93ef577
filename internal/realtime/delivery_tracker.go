package realtime

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/agent"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"

	"go.uber.org/zap"
)

// TrackerEvent carries exactly one of Order or Position.
type TrackerEvent struct {
	Order    *order.Snapshot
	Position *agent.Position
}

// DeliveryTracker follows one order for its customer. While the order is out for
// delivery it also follows the assigned agent's position. When the order leaves
// out-for-delivery, or reaches a terminal status, the position subscription is torn
// down and tracking ends.
type DeliveryTracker struct {
	hub       *Hub
	positions ports.PositionStore
	logger    *zap.Logger
}

// NewDeliveryTracker creates a tracker. positions may be nil; when set, the last stored
// position is sent as soon as the agent is known.
func NewDeliveryTracker(hub *Hub, positions ports.PositionStore, logger *zap.Logger) *DeliveryTracker {
	return &DeliveryTracker{
		hub:       hub,
		positions: positions,
		logger:    logger.With(zap.String("component", "delivery_tracker")),
	}
}

// Track subscribes to the order and only then calls load for its current state, so a
// commit landing in between still arrives through the subscription. It emits the loaded
// snapshot, every newer one and, while out for delivery, the agent's positions. The
// returned channel is closed when tracking ends or ctx is done. A load error is returned
// as is and nothing is left subscribed.
func (t *DeliveryTracker) Track(
	ctx context.Context,
	orderID kernel.UUID,
	load func(ctx context.Context) (order.Snapshot, error),
) (<-chan TrackerEvent, error) {
	orders := t.hub.SubscribeOrders(ctx, order.Filter{OrderID: orderID})
	initial, err := load(ctx)
	if err != nil {
		orders.Close()
		return nil, err
	}

	out := make(chan TrackerEvent)
	go t.run(ctx, initial, orders, out)
	return out, nil
}

type tracking struct {
	tracker   *DeliveryTracker
	ctx       context.Context
	out       chan<- TrackerEvent
	current   order.Snapshot
	agentID   kernel.UUID
	positions *PositionSubscription
	wasOut    bool
}

func (t *DeliveryTracker) run(ctx context.Context, initial order.Snapshot, orders *OrderSubscription, out chan TrackerEvent) {
	defer close(out)
	defer orders.Close()

	tr := &tracking{tracker: t, ctx: ctx, out: out, current: initial}
	defer tr.stopPositions()

	if !tr.apply(initial) {
		return
	}

	for {
		var positionUpdates <-chan agent.Position
		if tr.positions != nil {
			positionUpdates = tr.positions.Updates()
		}

		select {
		case <-ctx.Done():
			return
		case s, ok := <-orders.Updates():
			if !ok {
				return
			}
			if !s.IsNewerThan(tr.current) {
				continue
			}
			if !tr.apply(s) {
				return
			}
		case p, ok := <-positionUpdates:
			if !ok {
				return
			}
			if !tr.emit(TrackerEvent{Position: &p}) {
				return
			}
		}
	}
}

// apply emits s and adjusts the position subscription. It reports whether tracking goes on.
func (tr *tracking) apply(s order.Snapshot) bool {
	tr.current = s
	if !tr.emit(TrackerEvent{Order: &s}) {
		return false
	}

	if s.Status == order.OutForDelivery && s.Agent != nil {
		tr.wasOut = true
		if tr.positions == nil || !tr.agentID.IsEqual(s.Agent.ID) {
			tr.startPositions(s.Agent.ID)
		}
		return true
	}

	if tr.wasOut || s.Status.IsTerminal() {
		tr.stopPositions()
		return false
	}
	return true
}

func (tr *tracking) startPositions(agentID kernel.UUID) {
	tr.stopPositions()
	tr.agentID = agentID
	tr.positions = tr.tracker.hub.SubscribeAgent(tr.ctx, agentID)

	if tr.tracker.positions == nil {
		return
	}
	last, err := tr.tracker.positions.Get(tr.ctx, agentID)
	switch {
	case err == nil:
		tr.positions.Offer(last)
	case errors.Is(err, errs.ErrObjectNotFound):
	default:
		tr.tracker.logger.Warn("failed to load last agent position",
			zap.String("agent_id", agentID.String()), zap.Error(err))
	}
}

func (tr *tracking) stopPositions() {
	if tr.positions != nil {
		tr.positions.Close()
		tr.positions = nil
	}
}

func (tr *tracking) emit(ev TrackerEvent) bool {
	select {
	case tr.out <- ev:
		return true
	case <-tr.ctx.Done():
		return false
	}
}
