package commands_test

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

func clock() time.Time {
	return now
}

// party holds the ids of everyone involved in one order.
type party struct {
	customerID kernel.UUID
	vendorID   kernel.UUID
	itemID     kernel.UUID
}

func newParty() party {
	return party{
		customerID: kernel.NewUUID(),
		vendorID:   kernel.NewUUID(),
		itemID:     kernel.NewUUID(),
	}
}

func (p party) customer() kernel.Actor {
	return kernel.Actor{Role: kernel.RoleCustomer, ID: p.customerID}
}

func (p party) vendor() kernel.Actor {
	return kernel.Actor{Role: kernel.RoleVendor, ID: p.vendorID}
}

func (p party) fees(t *testing.T) catalog.FeeSchedule {
	t.Helper()
	fees, err := catalog.NewFeeSchedule(kernel.MustMoney(20), false, decimal.Zero)
	require.NoError(t, err)
	return fees
}

func (p party) vendorModel(t *testing.T) catalog.Vendor {
	t.Helper()
	v, err := catalog.NewVendor(p.vendorID, "Udupi Corner", p.fees(t), decimal.RequireFromString("0.1"))
	require.NoError(t, err)
	return v
}

func (p party) menuItem(t *testing.T, available bool) catalog.MenuItem {
	t.Helper()
	item, err := catalog.NewMenuItem(p.itemID, p.vendorID, "Masala Dosa", kernel.MustMoney(100), available)
	require.NoError(t, err)
	return item
}

func (p party) target(t *testing.T) order.DeliveryTarget {
	t.Helper()
	target, err := order.NewDeliveryTarget("12 MG Road", nil, "+91 90000 00000")
	require.NoError(t, err)
	return target
}

func payment(t *testing.T, method order.PaymentMethod) order.Payment {
	t.Helper()
	p, err := order.NewPayment(method, "")
	require.NoError(t, err)
	return p
}

// pendingOrder is two dosas at 100 with a delivery fee of 20: a total of 220.
func (p party) pendingOrder(t *testing.T) *order.Order {
	t.Helper()
	line, err := order.NewLineItem(p.itemID, "Masala Dosa", kernel.MustMoney(100), 2)
	require.NoError(t, err)
	lines := []order.LineItem{line}

	price, err := services.NewPricingEngine().Quote(lines, p.fees(t))
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), p.customerID,
		order.VendorRef{ID: p.vendorID, Name: "Udupi Corner"},
		lines, price, p.target(t), payment(t, order.PaymentCash), now.Add(-time.Hour),
	)
	require.NoError(t, err)
	return o
}

func (p party) acceptedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := p.pendingOrder(t)
	require.NoError(t, o.Transition(order.Accepted, p.vendor(), now.Add(-50*time.Minute)))
	o.PullEvents()
	return o
}

func (p party) outForDelivery(t *testing.T, a *agent.Agent, code order.ConfirmationCode) *order.Order {
	t.Helper()
	o := p.acceptedOrder(t)
	require.NoError(t, o.AssignAgent(order.AgentRef{ID: a.ID(), Name: a.Name()}, code, now.Add(-20*time.Minute)))
	o.PullEvents()
	return o
}

func (p party) rosterAgent(t *testing.T, active int) *agent.Agent {
	t.Helper()
	a, err := agent.RestoreAgent(kernel.NewUUID(), p.vendorID, "Ravi", "+91 98450 00000", active)
	require.NoError(t, err)
	return a
}

func agentActor(a *agent.Agent) kernel.Actor {
	return kernel.Actor{Role: kernel.RoleDeliveryAgent, ID: a.ID()}
}

type fixedCodes struct {
	code order.ConfirmationCode
}

func (f fixedCodes) Generate() (order.ConfirmationCode, error) {
	return f.code, nil
}

func coordinator() *services.DeliveryCoordinator {
	return services.NewDeliveryCoordinator(fixedCodes{code: "4821"})
}
