package realtime

import (
	"context"
	"sync"

	"orderflow/internal/core/domain/model/agent"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"

	"go.uber.org/zap"
)

// Hub fans committed order snapshots and agent positions out to subscriptions.
// It implements ports.OrderChangePublisher and ports.PositionPublisher.
type Hub struct {
	mu     sync.RWMutex
	orders map[*OrderSubscription]struct{}
	agents map[kernel.UUID]map[*PositionSubscription]struct{}
	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		orders: make(map[*OrderSubscription]struct{}),
		agents: make(map[kernel.UUID]map[*PositionSubscription]struct{}),
		logger: logger.With(zap.String("component", "realtime_hub")),
	}
}

// Publish offers every snapshot to every order subscription. It never blocks.
func (h *Hub) Publish(_ context.Context, changes []ports.OrderChange) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, change := range changes {
		for sub := range h.orders {
			sub.offer(change.Snapshot)
		}
	}
}

// PublishPosition offers p to the subscriptions of its agent. It never blocks.
func (h *Hub) PublishPosition(_ context.Context, p agent.Position) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.agents[p.AgentID] {
		sub.box.offer(p.AgentID, p)
	}
}

// SubscribeOrders starts a subscription for orders matching filter. The subscription
// ends on Close or when ctx is done.
func (h *Hub) SubscribeOrders(ctx context.Context, filter order.Filter) *OrderSubscription {
	sub := &OrderSubscription{
		filter: filter,
		box: newMailbox[kernel.UUID](func(next, prev order.Snapshot) bool {
			return next.IsNewerThan(prev)
		}, func(s order.Snapshot) bool {
			return s.Status.IsTerminal()
		}),
	}
	sub.unsubscribe = func() {
		h.mu.Lock()
		delete(h.orders, sub)
		h.mu.Unlock()
	}

	h.mu.Lock()
	h.orders[sub] = struct{}{}
	count := len(h.orders)
	h.mu.Unlock()

	h.logger.Debug("order subscription opened", zap.Int("subscriptions", count))
	closeOnDone(ctx, sub.box.done, sub.Close)
	return sub
}

// SubscribeAgent starts a subscription for one agent's positions.
func (h *Hub) SubscribeAgent(ctx context.Context, agentID kernel.UUID) *PositionSubscription {
	sub := &PositionSubscription{
		agentID: agentID,
		box: newMailbox[kernel.UUID](func(next, prev agent.Position) bool {
			return next.IsNewerThan(prev)
		}, nil),
	}
	sub.unsubscribe = func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		subs := h.agents[agentID]
		delete(subs, sub)
		if len(subs) == 0 {
			delete(h.agents, agentID)
		}
	}

	h.mu.Lock()
	if h.agents[agentID] == nil {
		h.agents[agentID] = make(map[*PositionSubscription]struct{})
	}
	h.agents[agentID][sub] = struct{}{}
	h.mu.Unlock()

	h.logger.Debug("position subscription opened", zap.String("agent_id", agentID.String()))
	closeOnDone(ctx, sub.box.done, sub.Close)
	return sub
}

// Subscribers reports the number of open order and position subscriptions.
func (h *Hub) Subscribers() (orders, positions int) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, subs := range h.agents {
		positions += len(subs)
	}
	return len(h.orders), positions
}

func closeOnDone(ctx context.Context, done <-chan struct{}, closeFn func()) {
	go func() {
		select {
		case <-ctx.Done():
			closeFn()
		case <-done:
		}
	}()
}

// OrderSubscription delivers order snapshots, at most one pending per order.
//
// An order that stops matching the filter is still delivered once more if the subscriber
// has seen it before, so that views can drop it.
type OrderSubscription struct {
	filter      order.Filter
	box         *mailbox[kernel.UUID, order.Snapshot]
	unsubscribe func()
	closeOnce   sync.Once
}

func (s *OrderSubscription) offer(snapshot order.Snapshot) {
	if !s.filter.Matches(snapshot) && !s.box.seen(snapshot.ID) {
		return
	}
	s.box.offer(snapshot.ID, snapshot)
}

// Updates is closed after Close.
func (s *OrderSubscription) Updates() <-chan order.Snapshot {
	return s.box.out
}

// Close tears the subscription down. It is safe to call more than once.
func (s *OrderSubscription) Close() {
	s.closeOnce.Do(func() {
		s.unsubscribe()
		s.box.close()
	})
}

// PositionSubscription delivers one agent's positions, latest wins.
type PositionSubscription struct {
	agentID     kernel.UUID
	box         *mailbox[kernel.UUID, agent.Position]
	unsubscribe func()
	closeOnce   sync.Once
}

// Updates is closed after Close.
func (s *PositionSubscription) Updates() <-chan agent.Position {
	return s.box.out
}

// Offer hands p to this subscriber only. The delivery tracker uses it to seed the last
// stored position.
func (s *PositionSubscription) Offer(p agent.Position) {
	if p.AgentID.IsEqual(s.agentID) {
		s.box.offer(p.AgentID, p)
	}
}

func (s *PositionSubscription) Close() {
	s.closeOnce.Do(func() {
		s.unsubscribe()
		s.box.close()
	})
}
