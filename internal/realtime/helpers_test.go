package realtime_test

import (
	"testing"
	"time"

	"orderflow/internal/core/domain/model/agent"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"

	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 7, 4, 13, 0, 0, 0, time.UTC)

const wait = 2 * time.Second

func snapshot(id, vendorID kernel.UUID, status order.Status, version int64) order.Snapshot {
	return order.Snapshot{
		ID:         id,
		CustomerID: kernel.NewUUID(),
		Vendor:     order.VendorRef{ID: vendorID, Name: "Udupi Corner"},
		Status:     status,
		Version:    version,
		CreatedAt:  base,
		UpdatedAt:  base,
	}
}

func change(s order.Snapshot) []ports.OrderChange {
	return []ports.OrderChange{{Snapshot: s}}
}

func position(t *testing.T, agentID kernel.UUID, lat float64, at time.Time) agent.Position {
	t.Helper()
	point, err := kernel.NewGeoPoint(lat, 77.59)
	require.NoError(t, err)
	p, err := agent.NewPosition(agentID, point, at)
	require.NoError(t, err)
	return p
}

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok, "channel closed")
		return v
	case <-time.After(wait):
		require.FailNow(t, "nothing received")
	}
	var zero T
	return zero
}

func requireSilent[T any](t *testing.T, ch <-chan T) {
	t.Helper()
	select {
	case v, ok := <-ch:
		if ok {
			require.FailNow(t, "unexpected value", "%v", v)
		}
	case <-time.After(50 * time.Millisecond):
	}
}

func requireClosed[T any](t *testing.T, ch <-chan T) {
	t.Helper()
	deadline := time.After(wait)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			require.FailNow(t, "channel not closed")
		}
	}
}
