package pgtest

import (
	"testing"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

// PendingOrder builds a two-line cash order (2x100 + 1x50, fee 20, no tax) placed at.
func PendingOrder(t testing.TB, customerID, vendorID kernel.UUID, at time.Time) *order.Order {
	t.Helper()

	burger, err := order.NewLineItem(kernel.NewUUID(), "Burger", kernel.MustMoney(100), 2)
	require.NoError(t, err)
	fries, err := order.NewLineItem(kernel.NewUUID(), "Fries", kernel.MustMoney(50), 1)
	require.NoError(t, err)

	price, err := order.NewPrice(kernel.MustMoney(250), kernel.MustMoney(20), kernel.ZeroMoney(), kernel.ZeroMoney())
	require.NoError(t, err)

	point, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)
	target, err := order.NewDeliveryTarget("12 MG Road, Bengaluru", &point, "+91 98450 00000")
	require.NoError(t, err)

	payment, err := order.NewPayment(order.PaymentCash, "")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), customerID,
		order.VendorRef{ID: vendorID, Name: "Dosa Corner"},
		[]order.LineItem{burger, fries}, price, target, payment, at)
	require.NoError(t, err)
	return o
}

// VendorActor is the vendor that owns orders built by PendingOrder for vendorID.
func VendorActor(vendorID kernel.UUID) kernel.Actor {
	return kernel.Actor{ID: vendorID, Role: kernel.RoleVendor}
}
