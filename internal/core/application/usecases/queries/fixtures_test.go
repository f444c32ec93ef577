package queries_test

import (
	"testing"
	"time"

	"orderflow/internal/core/domain/model/agent"
	"orderflow/internal/core/domain/model/catalog"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 7, 4, 13, 0, 0, 0, time.UTC)

// orderOutForDelivery places a 220 cash order with vendorID and sends it out with
// agent a under code 4821.
func orderOutForDelivery(t *testing.T, customerID, vendorID kernel.UUID, a *agent.Agent) *order.Order {
	t.Helper()
	line, err := order.NewLineItem(kernel.NewUUID(), "Masala Dosa", kernel.MustMoney(100), 2)
	require.NoError(t, err)
	fees, err := catalog.NewFeeSchedule(kernel.MustMoney(20), false, decimal.Zero)
	require.NoError(t, err)
	price, err := services.NewPricingEngine().Quote([]order.LineItem{line}, fees)
	require.NoError(t, err)
	target, err := order.NewDeliveryTarget("12 MG Road", nil, "+91 90000 00000")
	require.NoError(t, err)
	payment, err := order.NewPayment(order.PaymentCash, "")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), customerID, order.VendorRef{ID: vendorID, Name: "Udupi Corner"},
		[]order.LineItem{line}, price, target, payment, now.Add(-time.Hour))
	require.NoError(t, err)
	require.NoError(t, o.Transition(order.Accepted, kernel.Actor{Role: kernel.RoleVendor, ID: vendorID}, now.Add(-50*time.Minute)))
	require.NoError(t, o.AssignAgent(order.AgentRef{ID: a.ID(), Name: a.Name()}, "4821", now.Add(-20*time.Minute)))
	o.PullEvents()
	return o
}

func rosterAgent(t *testing.T, vendorID kernel.UUID) *agent.Agent {
	t.Helper()
	a, err := agent.NewAgent(kernel.NewUUID(), vendorID, "Ravi", "+91 98450 00000")
	require.NoError(t, err)
	return a
}
