package realtime_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"orderflow/internal/core/domain/model/agent"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/realtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockPositionStore struct {
	mock.Mock
}

func (m *MockPositionStore) Put(ctx context.Context, p agent.Position) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPositionStore) Get(ctx context.Context, agentID kernel.UUID) (agent.Position, error) {
	args := m.Called(ctx, agentID)
	return args.Get(0).(agent.Position), args.Error(1)
}

func outForDelivery(id, vendorID, agentID kernel.UUID, version int64) order.Snapshot {
	s := snapshot(id, vendorID, order.OutForDelivery, version)
	s.Agent = &order.AgentRef{ID: agentID, Name: "Ravi"}
	s.ConfirmationCode = "4821"
	return s
}

func track(t *testing.T, ctx context.Context, tracker *realtime.DeliveryTracker, s order.Snapshot) <-chan realtime.TrackerEvent {
	t.Helper()
	events, err := tracker.Track(ctx, s.ID, func(context.Context) (order.Snapshot, error) {
		return s, nil
	})
	require.NoError(t, err)
	return events
}

func waitForAgentSubscriber(t *testing.T, hub *realtime.Hub) {
	t.Helper()
	require.Eventually(t, func() bool {
		_, positions := hub.Subscribers()
		return positions == 1
	}, wait, time.Millisecond)
}

func TestDeliveryTracker_FollowsAgentUntilDelivered(t *testing.T) {
	hub := realtime.NewHub(zap.NewNop())
	id, vendorID, agentID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	last := position(t, agentID, 12.96, base)
	positions := new(MockPositionStore)
	positions.On("Get", mock.Anything, agentID).Return(last, nil).Once()

	events := track(t, t.Context(), realtime.NewDeliveryTracker(hub, positions, zap.NewNop()), outForDelivery(id, vendorID, agentID, 3))

	first := receive(t, events)
	require.NotNil(t, first.Order)
	assert.Equal(t, order.OutForDelivery, first.Order.Status)

	seeded := receive(t, events)
	require.NotNil(t, seeded.Position)
	assert.InDelta(t, 12.96, seeded.Position.Point.Lat(), 1e-9)

	waitForAgentSubscriber(t, hub)
	hub.PublishPosition(t.Context(), position(t, agentID, 12.97, base.Add(5*time.Second)))
	moved := receive(t, events)
	require.NotNil(t, moved.Position)
	assert.InDelta(t, 12.97, moved.Position.Point.Lat(), 1e-9)

	delivered := snapshot(id, vendorID, order.Delivered, 4)
	delivered.Agent = &order.AgentRef{ID: agentID, Name: "Ravi"}
	hub.Publish(t.Context(), change(delivered))

	final := receive(t, events)
	require.NotNil(t, final.Order)
	assert.Equal(t, order.Delivered, final.Order.Status)
	requireClosed(t, events)

	assert.Eventually(t, func() bool {
		o, p := hub.Subscribers()
		return o == 0 && p == 0
	}, wait, time.Millisecond, "subscriptions are torn down")
	positions.AssertExpectations(t)
}

func TestDeliveryTracker_WaitsForAssignment(t *testing.T) {
	hub := realtime.NewHub(zap.NewNop())
	id, vendorID, agentID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	positions := new(MockPositionStore)
	positions.On("Get", mock.Anything, agentID).
		Return(agent.Position{}, errs.NewObjectNotFoundError("agent position", agentID.String())).Once()

	events := track(t, t.Context(), realtime.NewDeliveryTracker(hub, positions, zap.NewNop()), snapshot(id, vendorID, order.Preparing, 2))

	assert.Equal(t, order.Preparing, receive(t, events).Order.Status)
	_, agents := hub.Subscribers()
	assert.Zero(t, agents, "no agent to follow yet")

	hub.Publish(t.Context(), change(outForDelivery(id, vendorID, agentID, 3)))
	assert.Equal(t, order.OutForDelivery, receive(t, events).Order.Status)
	waitForAgentSubscriber(t, hub)
	requireSilent(t, events)
}

func TestDeliveryTracker_EndsOnCancelledOrder(t *testing.T) {
	hub := realtime.NewHub(zap.NewNop())

	events := track(t, t.Context(), realtime.NewDeliveryTracker(hub, nil, zap.NewNop()), snapshot(kernel.NewUUID(), kernel.NewUUID(), order.Cancelled, 2))

	assert.Equal(t, order.Cancelled, receive(t, events).Order.Status)
	requireClosed(t, events)
}

func TestDeliveryTracker_PositionLookupFailureIsNotFatal(t *testing.T) {
	hub := realtime.NewHub(zap.NewNop())
	id, vendorID, agentID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	positions := new(MockPositionStore)
	positions.On("Get", mock.Anything, agentID).Return(agent.Position{}, errors.New("timeout")).Once()

	ctx, cancel := context.WithCancel(t.Context())
	events := track(t, ctx, realtime.NewDeliveryTracker(hub, positions, zap.NewNop()), outForDelivery(id, vendorID, agentID, 3))

	receive(t, events)
	waitForAgentSubscriber(t, hub)
	hub.PublishPosition(t.Context(), position(t, agentID, 12.97, base))
	assert.NotNil(t, receive(t, events).Position)

	cancel()
	requireClosed(t, events)
}

func TestDeliveryTracker_CommitDuringLoadIsDelivered(t *testing.T) {
	hub := realtime.NewHub(zap.NewNop())
	id, vendorID, agentID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	tracker := realtime.NewDeliveryTracker(hub, nil, zap.NewNop())

	events, err := tracker.Track(t.Context(), id, func(ctx context.Context) (order.Snapshot, error) {
		stale := snapshot(id, vendorID, order.Preparing, 3)
		hub.Publish(ctx, change(outForDelivery(id, vendorID, agentID, 4)))
		return stale, nil
	})
	require.NoError(t, err)

	assert.Equal(t, order.Preparing, receive(t, events).Order.Status)
	assert.Equal(t, order.OutForDelivery, receive(t, events).Order.Status)
	waitForAgentSubscriber(t, hub)
}

func TestDeliveryTracker_LoadFailureLeavesNothingSubscribed(t *testing.T) {
	hub := realtime.NewHub(zap.NewNop())
	tracker := realtime.NewDeliveryTracker(hub, nil, zap.NewNop())
	notFound := errs.NewObjectNotFoundError("orderID", "missing")

	events, err := tracker.Track(t.Context(), kernel.NewUUID(), func(context.Context) (order.Snapshot, error) {
		return order.Snapshot{}, notFound
	})

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, events)
	orders, positions := hub.Subscribers()
	assert.Zero(t, orders)
	assert.Zero(t, positions)
}
