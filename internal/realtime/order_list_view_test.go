package realtime_test

import (
	"context"
	"errors"
	"testing"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/realtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOrderListView_AnyPending_RecomputedFromFullSet(t *testing.T) {
	vendorID := kernel.NewUUID()
	first, second := kernel.NewUUID(), kernel.NewUUID()
	view := realtime.NewOrderListView(order.Filter{VendorID: vendorID})

	assert.False(t, view.AnyPending())

	view.Seed([]order.Snapshot{
		snapshot(first, vendorID, order.Pending, 1),
		snapshot(second, vendorID, order.Pending, 1),
	})
	assert.True(t, view.AnyPending())

	view.Apply(snapshot(first, vendorID, order.Accepted, 2))
	assert.True(t, view.AnyPending(), "second order is still pending")

	view.Apply(snapshot(second, vendorID, order.Cancelled, 2))
	assert.False(t, view.AnyPending())
	assert.Equal(t, 2, view.Len())
}

func TestOrderListView_Apply(t *testing.T) {
	vendorID := kernel.NewUUID()
	id := kernel.NewUUID()

	testCases := []struct {
		name    string
		update  order.Snapshot
		changed bool
		held    bool
	}{
		{name: "newer version", update: snapshot(id, vendorID, order.Accepted, 3), changed: true, held: true},
		{name: "same version", update: snapshot(id, vendorID, order.Accepted, 2), changed: false, held: true},
		{name: "lower rank", update: snapshot(id, vendorID, order.Pending, 7), changed: false, held: true},
		{name: "moved to another vendor", update: snapshot(id, kernel.NewUUID(), order.Preparing, 3), changed: true, held: false},
		{name: "unknown and foreign", update: snapshot(kernel.NewUUID(), kernel.NewUUID(), order.Pending, 1), changed: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			view := realtime.NewOrderListView(order.Filter{VendorID: vendorID})
			view.Apply(snapshot(id, vendorID, order.Accepted, 2))

			assert.Equal(t, tc.changed, view.Apply(tc.update))
			_, held := view.Get(id)
			assert.Equal(t, tc.held, held)
		})
	}
}

func TestOrderListView_FollowsSubscription(t *testing.T) {
	hub := realtime.NewHub(zap.NewNop())
	vendorID := kernel.NewUUID()
	filter := order.Filter{VendorID: vendorID}
	sub := hub.SubscribeOrders(t.Context(), filter)
	defer sub.Close()

	view := realtime.NewOrderListView(filter)
	id := kernel.NewUUID()
	view.Seed([]order.Snapshot{snapshot(id, vendorID, order.Pending, 1)})

	hub.Publish(t.Context(), change(snapshot(id, vendorID, order.Accepted, 2)))
	view.Apply(receive(t, sub.Updates()))

	assert.False(t, view.AnyPending())
	got, ok := view.Get(id)
	require.True(t, ok)
	assert.Equal(t, order.Accepted, got.Status)
}

func TestOptimistic(t *testing.T) {
	vendorID := kernel.NewUUID()
	id := kernel.NewUUID()
	pending := snapshot(id, vendorID, order.Pending, 1)
	accepted := snapshot(id, vendorID, order.Accepted, 1)

	t.Run("success keeps the speculative state", func(t *testing.T) {
		view := realtime.NewOrderListView(order.Filter{VendorID: vendorID})
		view.Seed([]order.Snapshot{pending})

		err := realtime.Optimistic(t.Context(), view, accepted, func(context.Context) error {
			got, _ := view.Get(id)
			assert.Equal(t, order.Accepted, got.Status, "visible before the write completes")
			return nil
		})

		require.NoError(t, err)
		assert.False(t, view.AnyPending())
	})

	t.Run("failure restores the previous state", func(t *testing.T) {
		view := realtime.NewOrderListView(order.Filter{VendorID: vendorID})
		view.Seed([]order.Snapshot{pending})
		conflict := errors.New("order was modified concurrently")

		err := realtime.Optimistic(t.Context(), view, accepted, func(context.Context) error {
			return conflict
		})

		require.ErrorIs(t, err, conflict)
		got, _ := view.Get(id)
		assert.Equal(t, order.Pending, got.Status)
		assert.True(t, view.AnyPending())
	})

	t.Run("failure on an order the view did not hold removes it", func(t *testing.T) {
		view := realtime.NewOrderListView(order.Filter{VendorID: vendorID})

		_ = realtime.Optimistic(t.Context(), view, accepted, func(context.Context) error {
			return errors.New("boom")
		})

		assert.Zero(t, view.Len())
	})

	t.Run("failure keeps a confirmed update that arrived meanwhile", func(t *testing.T) {
		view := realtime.NewOrderListView(order.Filter{VendorID: vendorID})
		view.Seed([]order.Snapshot{pending})
		cancelled := snapshot(id, vendorID, order.Cancelled, 2)

		_ = realtime.Optimistic(t.Context(), view, accepted, func(context.Context) error {
			view.Apply(cancelled)
			return errors.New("invalid state")
		})

		got, _ := view.Get(id)
		assert.Equal(t, order.Cancelled, got.Status)
	})
}
