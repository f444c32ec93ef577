package realtime

import (
	"cmp"
	"slices"
	"sync"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// OrderListView is the full current set of orders matching a filter as one observer sees
// it. Derived state is recomputed from the whole set after every change.
type OrderListView struct {
	filter order.Filter

	mu         sync.RWMutex
	orders     map[kernel.UUID]order.Snapshot
	anyPending bool
}

func NewOrderListView(filter order.Filter) *OrderListView {
	return &OrderListView{
		filter: filter,
		orders: make(map[kernel.UUID]order.Snapshot),
	}
}

// Seed loads the initial list. Snapshots already superseded by an applied update are ignored.
func (v *OrderListView) Seed(snapshots []order.Snapshot) {
	for _, s := range snapshots {
		v.Apply(s)
	}
}

// Apply merges one update and reports whether the view changed. An update that does not
// supersede the held snapshot is dropped; one that no longer matches the filter removes
// the order.
func (v *OrderListView) Apply(s order.Snapshot) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	prev, held := v.orders[s.ID]
	if held && !s.IsNewerThan(prev) {
		return false
	}

	if v.filter.Matches(s) {
		v.orders[s.ID] = s
	} else if held {
		delete(v.orders, s.ID)
	} else {
		return false
	}

	v.recompute()
	return true
}

// Snapshots returns the held orders, newest first.
func (v *OrderListView) Snapshots() []order.Snapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make([]order.Snapshot, 0, len(v.orders))
	for _, s := range v.orders {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b order.Snapshot) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
	return out
}

// Get returns the held snapshot of one order.
func (v *OrderListView) Get(id kernel.UUID) (order.Snapshot, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	s, ok := v.orders[id]
	return s, ok
}

// AnyPending is the vendor alert: true while at least one held order is pending.
func (v *OrderListView) AnyPending() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.anyPending
}

func (v *OrderListView) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.orders)
}

// replace sets or removes an order regardless of versions. Used by Optimistic only.
func (v *OrderListView) replace(id kernel.UUID, s order.Snapshot, present bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if present {
		v.orders[id] = s
	} else {
		delete(v.orders, id)
	}
	v.recompute()
}

// recompute must be called with mu held.
func (v *OrderListView) recompute() {
	v.anyPending = false
	for _, s := range v.orders {
		if s.Status == order.Pending {
			v.anyPending = true
			return
		}
	}
}
