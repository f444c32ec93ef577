package services_test

import (
	"errors"
	"testing"
	"time"

	"orderflow/internal/core/domain/model/agent"
	"orderflow/internal/core/domain/model/dispatch"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC)

type fixedCodes struct {
	code order.ConfirmationCode
	err  error
}

func (f fixedCodes) Generate() (order.ConfirmationCode, error) {
	return f.code, f.err
}

type world struct {
	vendor kernel.Actor
	order  *order.Order
	agent  *agent.Agent
}

func newWorld(t *testing.T, method order.PaymentMethod) world {
	t.Helper()

	vendor := kernel.Actor{Role: kernel.RoleVendor, ID: kernel.NewUUID()}
	lines := []order.LineItem{line(t, "100", 2)}
	price, err := services.NewPricingEngine().Quote(lines, fees(t, 20, false))
	require.NoError(t, err)
	target, err := order.NewDeliveryTarget("12 MG Road", nil, "+91 1")
	require.NoError(t, err)
	payment, err := order.NewPayment(method, "")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.VendorRef{ID: vendor.ID, Name: "Udupi"},
		lines, price, target, payment, now)
	require.NoError(t, err)

	a, err := agent.NewAgent(kernel.NewUUID(), vendor.ID, "Ravi", "")
	require.NoError(t, err)

	return world{vendor: vendor, order: o, agent: a}
}

func TestDeliveryCoordinator_CashHappyPath(t *testing.T) {
	w := newWorld(t, order.PaymentCash)
	coordinator := services.NewDeliveryCoordinator(fixedCodes{code: "1234"})

	assert.Equal(t, "220.00", w.order.Price().Total().String())
	require.NoError(t, w.order.Transition(order.Accepted, w.vendor, now))
	require.NoError(t, w.order.Transition(order.Preparing, w.vendor, now))

	require.NoError(t, coordinator.Assign(w.order, w.agent, now))
	assert.Equal(t, order.OutForDelivery, w.order.Status())
	assert.Equal(t, order.ConfirmationCode("1234"), w.order.ConfirmationCode())
	assert.Equal(t, 1, w.agent.ActiveDeliveries())

	require.NoError(t, coordinator.ConfirmDelivery(w.order, w.agent, "1234", now))
	assert.Equal(t, order.Delivered, w.order.Status())
	assert.Equal(t, order.PaymentCompleted, w.order.Payment().Status())
	assert.Zero(t, w.agent.ActiveDeliveries())

	err := coordinator.ConfirmDelivery(w.order, w.agent, "1234", now)
	require.ErrorIs(t, err, errs.ErrInvalidState, "code is consumed")
	assert.Zero(t, w.agent.ActiveDeliveries())
}

func TestDeliveryCoordinator_WrongCode(t *testing.T) {
	w := newWorld(t, order.PaymentCash)
	coordinator := services.NewDeliveryCoordinator(fixedCodes{code: "1234"})
	require.NoError(t, w.order.Transition(order.Accepted, w.vendor, now))
	require.NoError(t, coordinator.Assign(w.order, w.agent, now))

	err := coordinator.ConfirmDelivery(w.order, w.agent, "0000", now)

	require.ErrorIs(t, err, errs.ErrOtpMismatch)
	assert.True(t, errs.Retryable(err))
	assert.Equal(t, order.OutForDelivery, w.order.Status())
	assert.Equal(t, 1, w.agent.ActiveDeliveries())
}

func TestDeliveryCoordinator_Assign(t *testing.T) {
	t.Run("cancelled after acceptance", func(t *testing.T) {
		w := newWorld(t, order.PaymentCash)
		coordinator := services.NewDeliveryCoordinator(fixedCodes{code: "1234"})
		require.NoError(t, w.order.Transition(order.Accepted, w.vendor, now))
		require.NoError(t, w.order.Transition(order.Cancelled, w.vendor, now))

		err := coordinator.Assign(w.order, w.agent, now)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Zero(t, w.agent.ActiveDeliveries())
	})

	t.Run("pending order", func(t *testing.T) {
		w := newWorld(t, order.PaymentCash)
		err := services.NewDeliveryCoordinator(fixedCodes{code: "1234"}).Assign(w.order, w.agent, now)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("unknown agent", func(t *testing.T) {
		w := newWorld(t, order.PaymentCash)
		require.NoError(t, w.order.Transition(order.Accepted, w.vendor, now))

		err := services.NewDeliveryCoordinator(fixedCodes{code: "1234"}).Assign(w.order, nil, now)

		require.ErrorIs(t, err, errs.ErrAgentUnavailable)
		assert.Equal(t, order.Accepted, w.order.Status())
	})

	t.Run("agent of another vendor", func(t *testing.T) {
		w := newWorld(t, order.PaymentCash)
		require.NoError(t, w.order.Transition(order.Accepted, w.vendor, now))
		stranger, err := agent.NewAgent(kernel.NewUUID(), kernel.NewUUID(), "Sam", "")
		require.NoError(t, err)

		err = services.NewDeliveryCoordinator(fixedCodes{code: "1234"}).Assign(w.order, stranger, now)

		require.ErrorIs(t, err, errs.ErrAgentUnavailable)
		require.ErrorContains(t, err, services.ErrNotOnRoster.Error())
	})

	t.Run("code source failure", func(t *testing.T) {
		w := newWorld(t, order.PaymentCash)
		require.NoError(t, w.order.Transition(order.Accepted, w.vendor, now))
		boom := errors.New("entropy exhausted")

		err := services.NewDeliveryCoordinator(fixedCodes{err: boom}).Assign(w.order, w.agent, now)

		require.ErrorIs(t, err, boom)
		assert.Equal(t, order.Accepted, w.order.Status())
		assert.Zero(t, w.agent.ActiveDeliveries())
	})
}

func TestDeliveryCoordinator_Requests(t *testing.T) {
	coordinator := services.NewDeliveryCoordinator(fixedCodes{code: "5678"})

	t.Run("accepted in time assigns the agent", func(t *testing.T) {
		w := newWorld(t, order.PaymentPrepaid)
		require.NoError(t, w.order.Transition(order.Accepted, w.vendor, now))

		req, err := coordinator.Offer(w.order, w.agent, false, now, dispatch.DefaultAcceptanceWindow)
		require.NoError(t, err)
		assert.True(t, req.OrderID().IsEqual(w.order.ID()))

		require.NoError(t, coordinator.AcceptRequest(req, w.order, w.agent, now.Add(5*time.Second)))
		assert.Equal(t, dispatch.Accepted, req.Status())
		assert.Equal(t, order.OutForDelivery, w.order.Status())
		assert.True(t, w.agent.ID().IsEqual(w.order.Agent().ID))
	})

	t.Run("late acceptance leaves the order with the vendor", func(t *testing.T) {
		w := newWorld(t, order.PaymentPrepaid)
		require.NoError(t, w.order.Transition(order.Accepted, w.vendor, now))
		req, err := coordinator.Offer(w.order, w.agent, false, now, dispatch.DefaultAcceptanceWindow)
		require.NoError(t, err)

		err = coordinator.AcceptRequest(req, w.order, w.agent, now.Add(25*time.Second))

		require.ErrorIs(t, err, errs.ErrRequestExpired)
		assert.Equal(t, dispatch.Expired, req.Status())
		assert.Equal(t, order.Accepted, w.order.Status())
		assert.Nil(t, w.order.Agent())
	})

	t.Run("one open offer per order", func(t *testing.T) {
		w := newWorld(t, order.PaymentPrepaid)
		require.NoError(t, w.order.Transition(order.Accepted, w.vendor, now))

		_, err := coordinator.Offer(w.order, w.agent, true, now, dispatch.DefaultAcceptanceWindow)
		require.ErrorIs(t, err, services.ErrOfferAlreadyOpen)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("offer for a pending order", func(t *testing.T) {
		w := newWorld(t, order.PaymentPrepaid)
		_, err := coordinator.Offer(w.order, w.agent, false, now, dispatch.DefaultAcceptanceWindow)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestRandomCodeGenerator(t *testing.T) {
	gen := services.RandomCodeGenerator{}
	seen := map[order.ConfirmationCode]bool{}

	for range 200 {
		code, err := gen.Generate()
		require.NoError(t, err)
		_, err = order.NewConfirmationCode(code.String())
		require.NoError(t, err)
		seen[code] = true
	}

	assert.Greater(t, len(seen), 100, "codes should be spread over 0000-9999")
}
