package http

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/cart"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/generated/servers"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderBody(vendorID, itemID kernel.UUID) map[string]any {
	return map[string]any{
		"vendorId": vendorID.String(),
		"lines": []map[string]any{
			{"itemId": itemID.String(), "quantity": 2},
		},
		"target": map[string]any{
			"address":  "12 MG Road",
			"phone":    "+91 98450 00000",
			"location": map[string]any{"lat": 12.97, "lng": 77.59},
		},
		"paymentMethod": "cash",
	}
}

func TestHealthIsPublic(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/health", nil, nil)

	statusOK(t, rec, http.StatusOK)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestCreateOrder(t *testing.T) {
	api := newTestAPI(t)
	customer := actorOf(kernel.RoleCustomer)
	vendorID, itemID := kernel.NewUUID(), kernel.NewUUID()

	stored := snapshot(kernel.NewUUID(), customer.ID, order.Pending, 1)
	stored.ConfirmationCode = "0420"

	var placed kernel.UUID
	api.mocks.createOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
		placed = cmd.OrderID()
		return cmd.CustomerID().IsEqual(customer.ID) &&
			cmd.VendorID().IsEqual(vendorID) &&
			len(cmd.Lines()) == 1 &&
			cmd.Lines()[0].Quantity == 2 &&
			cmd.Payment().Method() == order.PaymentCash
	})).Return(nil).Once()
	api.mocks.getOrder.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOrderQuery) bool {
		return q.OrderID().IsEqual(placed) && q.Actor() == *customer
	})).Return(stored, nil).Once()

	rec := api.do(t, http.MethodPost, "/api/v1/orders", newOrderBody(vendorID, itemID), customer)

	statusOK(t, rec, http.StatusCreated)
	got := decode[servers.Order](t, rec)
	assert.Equal(t, stored.ID.String(), got.Id.String())
	assert.Equal(t, servers.OrderStatusPending, got.Status)
	require.NotNil(t, got.ConfirmationCode)
	assert.Equal(t, "0420", *got.ConfirmationCode)
	api.mocks.createOrder.AssertExpectations(t)
	api.mocks.getOrder.AssertExpectations(t)
}

func TestCreateOrderRejections(t *testing.T) {
	tests := []struct {
		name  string
		body  any
		actor *kernel.Actor
		want  int
	}{
		{
			name:  "no token",
			body:  newOrderBody(kernel.NewUUID(), kernel.NewUUID()),
			actor: nil,
			want:  http.StatusUnauthorized,
		},
		{
			name:  "vendor cannot place orders",
			body:  newOrderBody(kernel.NewUUID(), kernel.NewUUID()),
			actor: actorOf(kernel.RoleVendor),
			want:  http.StatusForbidden,
		},
		{
			name:  "no lines",
			body:  map[string]any{"vendorId": kernel.NewUUID().String(), "lines": []any{}, "target": map[string]any{"address": "a", "phone": "p"}, "paymentMethod": "cash"},
			actor: actorOf(kernel.RoleCustomer),
			want:  http.StatusBadRequest,
		},
		{
			name:  "unknown payment method",
			body:  map[string]any{"vendorId": kernel.NewUUID().String(), "lines": []any{map[string]any{"itemId": kernel.NewUUID().String(), "quantity": 1}}, "target": map[string]any{"address": "a", "phone": "p"}, "paymentMethod": "barter"},
			actor: actorOf(kernel.RoleCustomer),
			want:  http.StatusBadRequest,
		},
		{
			name:  "latitude out of range",
			body:  map[string]any{"vendorId": kernel.NewUUID().String(), "lines": []any{map[string]any{"itemId": kernel.NewUUID().String(), "quantity": 1}}, "target": map[string]any{"address": "a", "phone": "p", "location": map[string]any{"lat": 91, "lng": 0}}, "paymentMethod": "cash"},
			actor: actorOf(kernel.RoleCustomer),
			want:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)

			rec := api.do(t, http.MethodPost, "/api/v1/orders", tt.body, tt.actor)

			statusOK(t, rec, tt.want)
			api.mocks.createOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		})
	}
}

func TestErrorsMapToStatusCodes(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		want      int
		retryable bool
	}{
		{"invalid transition", errs.NewInvalidTransitionError(order.Delivered, order.Pending), http.StatusUnprocessableEntity, false},
		{"invalid state", errs.NewInvalidStateError("rate", order.Pending), http.StatusUnprocessableEntity, false},
		{"unauthorized", errs.NewUnauthorizedError(kernel.RoleVendor, "cancel"), http.StatusForbidden, false},
		{"not found", errs.NewObjectNotFoundError("order", "x"), http.StatusNotFound, false},
		{"conflict", errs.NewConcurrentModificationError("order", "x"), http.StatusConflict, true},
		{"invalid value", errs.NewValueIsInvalidError("to"), http.StatusBadRequest, false},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			api.mocks.transitionOrder.On("Handle", mock.Anything, mock.Anything).Return(tt.err).Once()

			rec := api.do(t, http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/transitions",
				map[string]any{"to": "cancelled"}, actorOf(kernel.RoleCustomer))

			statusOK(t, rec, tt.want)
			body := decode[servers.Error](t, rec)
			assert.Equal(t, tt.want, body.Code)
			assert.Equal(t, tt.retryable, body.Retryable)
			if tt.want == http.StatusInternalServerError {
				assert.Equal(t, "internal error", body.Message)
			}
		})
	}
}

func TestTransitionOrderPassesTargetAndActor(t *testing.T) {
	api := newTestAPI(t)
	vendor := actorOf(kernel.RoleVendor)
	orderID := kernel.NewUUID()
	api.mocks.transitionOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.TransitionOrderCommand) bool {
		return cmd.OrderID().IsEqual(orderID) && cmd.To() == order.Preparing && cmd.Actor() == *vendor
	})).Return(nil).Once()

	rec := api.do(t, http.MethodPost, "/api/v1/orders/"+orderID.String()+"/transitions",
		map[string]any{"to": "preparing"}, vendor)

	statusOK(t, rec, http.StatusNoContent)
	api.mocks.transitionOrder.AssertExpectations(t)
}

func TestTransitionOrderRejectsUnknownStatus(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/transitions",
		map[string]any{"to": "teleported"}, actorOf(kernel.RoleVendor))

	statusOK(t, rec, http.StatusBadRequest)
	api.mocks.transitionOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestMalformedPathIDIsBadRequest(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/v1/orders/not-a-uuid", nil, actorOf(kernel.RoleAdmin))

	statusOK(t, rec, http.StatusBadRequest)
	api.mocks.getOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestUnknownRouteIsNotFound(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/v1/drivers", nil, actorOf(kernel.RoleAdmin))

	statusOK(t, rec, http.StatusNotFound)
	assert.Equal(t, http.StatusNotFound, decode[servers.Error](t, rec).Code)
}

func TestListOrdersBuildsFilter(t *testing.T) {
	api := newTestAPI(t)
	admin := actorOf(kernel.RoleAdmin)
	vendorID := kernel.NewUUID()
	first := snapshot(kernel.NewUUID(), kernel.NewUUID(), order.Preparing, 3)

	api.mocks.listOrders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListOrdersQuery) bool {
		f := q.Filter()
		return f.VendorID.IsEqual(vendorID) &&
			len(f.Statuses) == 2 && f.Statuses[0] == order.Accepted && f.Statuses[1] == order.Preparing &&
			q.Limit() == 10
	})).Return([]order.Snapshot{first}, nil).Once()

	rec := api.do(t, http.MethodGet,
		"/api/v1/orders?vendorId="+vendorID.String()+"&status=accepted&status=preparing&limit=10", nil, admin)

	statusOK(t, rec, http.StatusOK)
	got := decode[[]servers.Order](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, first.ID.String(), got[0].Id.String())
	api.mocks.listOrders.AssertExpectations(t)
}

func TestListOrdersRejectsLimitAboveMaximum(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/v1/orders?limit=500", nil, actorOf(kernel.RoleAdmin))

	statusOK(t, rec, http.StatusBadRequest)
}

func TestOfferDelivery(t *testing.T) {
	api := newTestAPI(t)
	vendor := actorOf(kernel.RoleVendor)
	orderID, agentID, requestID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	api.mocks.offerDelivery.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.OfferDeliveryCommand) bool {
		return cmd.OrderID().IsEqual(orderID) && cmd.AgentID().IsEqual(agentID) && cmd.Window() == 90*time.Second
	})).Return(requestID, nil).Once()

	rec := api.do(t, http.MethodPost, "/api/v1/orders/"+orderID.String()+"/delivery-requests",
		map[string]any{"agentId": agentID.String(), "windowSeconds": 90}, vendor)

	statusOK(t, rec, http.StatusCreated)
	assert.Equal(t, requestID.String(), decode[servers.DeliveryRequestRef](t, rec).Id.String())
}

func TestAnswerDeliveryRequest(t *testing.T) {
	api := newTestAPI(t)
	deliveryAgent := actorOf(kernel.RoleDeliveryAgent)
	requestID := kernel.NewUUID()
	matches := mock.MatchedBy(func(cmd commands.AnswerDeliveryRequestCommand) bool {
		return cmd.RequestID().IsEqual(requestID) && cmd.Actor() == *deliveryAgent
	})
	api.mocks.acceptRequest.On("Handle", mock.Anything, matches).Return(errs.ErrRequestExpired).Once()
	api.mocks.rejectRequest.On("Handle", mock.Anything, matches).Return(nil).Once()

	accepted := api.do(t, http.MethodPost, "/api/v1/delivery-requests/"+requestID.String()+"/acceptance", nil, deliveryAgent)
	rejected := api.do(t, http.MethodPost, "/api/v1/delivery-requests/"+requestID.String()+"/rejection", nil, deliveryAgent)

	statusOK(t, accepted, http.StatusConflict)
	assert.True(t, decode[servers.Error](t, accepted).Retryable)
	statusOK(t, rejected, http.StatusNoContent)
}

func TestConfirmDeliveryThrottlesMismatches(t *testing.T) {
	api := newTestAPI(t)
	deliveryAgent := actorOf(kernel.RoleDeliveryAgent)
	orderID := kernel.NewUUID()
	api.mocks.confirmDelivery.On("Handle", mock.Anything, mock.Anything).Return(errs.ErrOtpMismatch).Times(DefaultOtpAttempts)
	path := "/api/v1/orders/" + orderID.String() + "/delivery-confirmation"

	for range DefaultOtpAttempts {
		rec := api.do(t, http.MethodPost, path, map[string]any{"code": "1111"}, deliveryAgent)
		statusOK(t, rec, http.StatusConflict)
		assert.True(t, decode[servers.Error](t, rec).Retryable)
	}
	rec := api.do(t, http.MethodPost, path, map[string]any{"code": "1111"}, deliveryAgent)

	statusOK(t, rec, http.StatusTooManyRequests)
	api.mocks.confirmDelivery.AssertNumberOfCalls(t, "Handle", DefaultOtpAttempts)
}

func TestConfirmDeliveryRejectsMalformedCode(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/delivery-confirmation",
		map[string]any{"code": "12a4"}, actorOf(kernel.RoleDeliveryAgent))

	statusOK(t, rec, http.StatusBadRequest)
	api.mocks.confirmDelivery.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestUpdateAgentPosition(t *testing.T) {
	api := newTestAPI(t)
	deliveryAgent := actorOf(kernel.RoleDeliveryAgent)
	recordedAt := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	api.mocks.updatePosition.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateAgentPositionCommand) bool {
		return cmd.AgentID().IsEqual(deliveryAgent.ID) &&
			cmd.Point().Lat() == 12.9716 &&
			cmd.RecordedAt().Equal(recordedAt)
	})).Return(nil).Once()

	rec := api.do(t, http.MethodPut, "/api/v1/agents/"+deliveryAgent.ID.String()+"/position",
		map[string]any{"lat": 12.9716, "lng": 77.5946, "recordedAt": recordedAt.Format(time.RFC3339)}, deliveryAgent)

	statusOK(t, rec, http.StatusNoContent)
	api.mocks.updatePosition.AssertExpectations(t)
}

func TestCartFlow(t *testing.T) {
	api := newTestAPI(t)
	customer := actorOf(kernel.RoleCustomer)
	vendorID, itemID := kernel.NewUUID(), kernel.NewUUID()

	api.mocks.addCartItem.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AddCartItemCommand) bool {
		return cmd.CustomerID().IsEqual(customer.ID) && cmd.ItemID().IsEqual(itemID) && cmd.Quantity() == 3
	})).Return(true, nil).Once()
	api.mocks.getCart.On("Handle", mock.Anything, mock.Anything).Return(queries.GetCartQueryResponse{
		CustomerID: customer.ID,
		VendorID:   vendorID,
		Lines:      []cart.Line{{ItemID: itemID, Quantity: 3}},
	}, nil).Once()

	rec := api.do(t, http.MethodPost, "/api/v1/carts/me/items",
		map[string]any{"itemId": itemID.String(), "quantity": 3}, customer)

	statusOK(t, rec, http.StatusOK)
	got := decode[servers.Cart](t, rec)
	assert.True(t, got.Replaced)
	require.NotNil(t, got.VendorId)
	assert.Equal(t, vendorID.String(), got.VendorId.String())
	require.Len(t, got.Lines, 1)
	assert.Equal(t, 3, got.Lines[0].Quantity)
}

func TestCartIsCustomerOnly(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/v1/carts/me", nil, actorOf(kernel.RoleDeliveryAgent))

	statusOK(t, rec, http.StatusForbidden)
	api.mocks.getCart.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCheckoutCart(t *testing.T) {
	api := newTestAPI(t)
	customer := actorOf(kernel.RoleCustomer)

	var placed kernel.UUID
	api.mocks.checkoutCart.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CheckoutCartCommand) bool {
		placed = cmd.OrderID()
		return cmd.CustomerID().IsEqual(customer.ID)
	})).Return(nil).Once()
	api.mocks.getOrder.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOrderQuery) bool {
		return q.OrderID().IsEqual(placed)
	})).Return(snapshot(kernel.NewUUID(), customer.ID, order.Pending, 1), nil).Once()

	rec := api.do(t, http.MethodPost, "/api/v1/carts/me/checkout", map[string]any{
		"target":        map[string]any{"address": "12 MG Road", "phone": "+91 98450 00000"},
		"paymentMethod": "cash",
	}, customer)

	statusOK(t, rec, http.StatusCreated)
	api.mocks.checkoutCart.AssertExpectations(t)
	api.mocks.getOrder.AssertExpectations(t)
}

func TestRegisterAgent(t *testing.T) {
	api := newTestAPI(t)
	vendor := actorOf(kernel.RoleVendor)
	api.mocks.registerAgent.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RegisterAgentCommand) bool {
		return cmd.VendorID().IsEqual(vendor.ID) && cmd.Name() == "Ravi"
	})).Return(nil).Once()

	rec := api.do(t, http.MethodPost, "/api/v1/vendors/"+vendor.ID.String()+"/agents",
		map[string]any{"name": "Ravi", "phone": "+91 90000 00001"}, vendor)

	statusOK(t, rec, http.StatusCreated)
	got := decode[servers.Agent](t, rec)
	assert.Equal(t, "Ravi", got.Name)
	assert.NotEqual(t, kernel.UUID{}.String(), got.Id.String())
}

func TestGetVendorCommission(t *testing.T) {
	api := newTestAPI(t)
	vendor := actorOf(kernel.RoleVendor)
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	gross, err := kernel.NewMoney(decimal.RequireFromString("2200"))
	require.NoError(t, err)
	commission, err := kernel.NewMoney(decimal.RequireFromString("220"))
	require.NoError(t, err)
	api.mocks.getVendorCommission.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetVendorCommissionQuery) bool {
		return q.VendorID().IsEqual(vendor.ID) && q.From().Equal(from) && q.To().Equal(to)
	})).Return(queries.GetVendorCommissionQueryResponse{
		VendorID:   vendor.ID,
		From:       from,
		To:         to,
		Orders:     10,
		Gross:      gross,
		Rate:       decimal.RequireFromString("0.1"),
		Commission: commission,
	}, nil).Once()

	rec := api.do(t, http.MethodGet, "/api/v1/vendors/"+vendor.ID.String()+"/commission?from="+
		from.Format(time.RFC3339)+"&to="+to.Format(time.RFC3339), nil, vendor)

	statusOK(t, rec, http.StatusOK)
	got := decode[servers.Commission](t, rec)
	assert.Equal(t, 10, got.Orders)
	assert.Equal(t, "2200.00", got.Gross)
	assert.Equal(t, "220.00", got.Commission)
	assert.Equal(t, "0.1", got.Rate)
}

func TestGetVendorCommissionRequiresPeriod(t *testing.T) {
	api := newTestAPI(t)
	vendor := actorOf(kernel.RoleVendor)

	rec := api.do(t, http.MethodGet, "/api/v1/vendors/"+vendor.ID.String()+"/commission", nil, vendor)

	statusOK(t, rec, http.StatusBadRequest)
}
