package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/agent"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/realtime"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var testSecret = []byte("test-secret")

type commandMock[C any] struct{ mock.Mock }

func (m *commandMock[C]) Handle(ctx context.Context, cmd C) error {
	args := m.MethodCalled("Handle", ctx, cmd)
	return args.Error(0)
}

type resultMock[Q, R any] struct{ mock.Mock }

func (m *resultMock[Q, R]) Handle(ctx context.Context, q Q) (R, error) {
	args := m.MethodCalled("Handle", ctx, q)
	var zero R
	if args.Get(0) == nil {
		return zero, args.Error(1)
	}
	return args.Get(0).(R), args.Error(1)
}

type apiMocks struct {
	createOrder         *commandMock[commands.CreateOrderCommand]
	checkoutCart        *commandMock[commands.CheckoutCartCommand]
	transitionOrder     *commandMock[commands.TransitionOrderCommand]
	assignAgent         *commandMock[commands.AssignAgentCommand]
	confirmDelivery     *commandMock[commands.ConfirmDeliveryCommand]
	offerDelivery       *resultMock[commands.OfferDeliveryCommand, kernel.UUID]
	acceptRequest       *commandMock[commands.AnswerDeliveryRequestCommand]
	rejectRequest       *commandMock[commands.AnswerDeliveryRequestCommand]
	rateOrder           *commandMock[commands.RateOrderCommand]
	recordPayment       *commandMock[commands.RecordPaymentCommand]
	registerAgent       *commandMock[commands.RegisterAgentCommand]
	updatePosition      *commandMock[commands.UpdateAgentPositionCommand]
	addCartItem         *resultMock[commands.AddCartItemCommand, bool]
	clearCart           *commandMock[commands.ClearCartCommand]
	getOrder            *resultMock[queries.GetOrderQuery, order.Snapshot]
	listOrders          *resultMock[queries.ListOrdersQuery, []order.Snapshot]
	getAgentPosition    *resultMock[queries.GetAgentPositionQuery, agent.Position]
	getCart             *resultMock[queries.GetCartQuery, queries.GetCartQueryResponse]
	getVendorCommission *resultMock[queries.GetVendorCommissionQuery, queries.GetVendorCommissionQueryResponse]
}

type testAPI struct {
	e      *echo.Echo
	server *Server
	hub    *realtime.Hub
	mocks  apiMocks
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	m := apiMocks{
		createOrder:         &commandMock[commands.CreateOrderCommand]{},
		checkoutCart:        &commandMock[commands.CheckoutCartCommand]{},
		transitionOrder:     &commandMock[commands.TransitionOrderCommand]{},
		assignAgent:         &commandMock[commands.AssignAgentCommand]{},
		confirmDelivery:     &commandMock[commands.ConfirmDeliveryCommand]{},
		offerDelivery:       &resultMock[commands.OfferDeliveryCommand, kernel.UUID]{},
		acceptRequest:       &commandMock[commands.AnswerDeliveryRequestCommand]{},
		rejectRequest:       &commandMock[commands.AnswerDeliveryRequestCommand]{},
		rateOrder:           &commandMock[commands.RateOrderCommand]{},
		recordPayment:       &commandMock[commands.RecordPaymentCommand]{},
		registerAgent:       &commandMock[commands.RegisterAgentCommand]{},
		updatePosition:      &commandMock[commands.UpdateAgentPositionCommand]{},
		addCartItem:         &resultMock[commands.AddCartItemCommand, bool]{},
		clearCart:           &commandMock[commands.ClearCartCommand]{},
		getOrder:            &resultMock[queries.GetOrderQuery, order.Snapshot]{},
		listOrders:          &resultMock[queries.ListOrdersQuery, []order.Snapshot]{},
		getAgentPosition:    &resultMock[queries.GetAgentPositionQuery, agent.Position]{},
		getCart:             &resultMock[queries.GetCartQuery, queries.GetCartQueryResponse]{},
		getVendorCommission: &resultMock[queries.GetVendorCommissionQuery, queries.GetVendorCommissionQueryResponse]{},
	}

	logger := zaptest.NewLogger(t)
	hub := realtime.NewHub(logger)
	server := NewServer(Handlers{
		CreateOrder:           m.createOrder,
		CheckoutCart:          m.checkoutCart,
		TransitionOrder:       m.transitionOrder,
		AssignAgent:           m.assignAgent,
		ConfirmDelivery:       m.confirmDelivery,
		OfferDelivery:         m.offerDelivery,
		AcceptDeliveryRequest: m.acceptRequest,
		RejectDeliveryRequest: m.rejectRequest,
		RateOrder:             m.rateOrder,
		RecordPayment:         m.recordPayment,
		RegisterAgent:         m.registerAgent,
		UpdateAgentPosition:   m.updatePosition,
		AddCartItem:           m.addCartItem,
		ClearCart:             m.clearCart,
		GetOrder:              m.getOrder,
		ListOrders:            m.listOrders,
		GetAgentPosition:      m.getAgentPosition,
		GetCart:               m.getCart,
		GetVendorCommission:   m.getVendorCommission,
	}, hub, realtime.NewDeliveryTracker(hub, nil, logger), NewOtpLimiter(0, 0), logger)

	e, err := NewRouter(server, testSecret, logger)
	require.NoError(t, err)

	return &testAPI{e: e, server: server, hub: hub, mocks: m}
}

func (a *testAPI) do(t *testing.T, method, path string, body any, actor *kernel.Actor) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if actor != nil {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token(t, *actor))
	}

	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func token(t *testing.T, actor kernel.Actor) string {
	t.Helper()
	tok, err := SignActor(actor, testSecret)
	require.NoError(t, err)
	return tok
}

func actorOf(role kernel.Role) *kernel.Actor {
	return &kernel.Actor{Role: role, ID: kernel.NewUUID()}
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func snapshot(id, customerID kernel.UUID, status order.Status, version int64) order.Snapshot {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return order.Snapshot{
		ID:         id,
		CustomerID: customerID,
		Vendor:     order.VendorRef{ID: kernel.NewUUID(), Name: "Spice Route"},
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
		Version:    version,
	}
}

func statusOK(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, rec.Body.String())
}

func newRequest(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}

func serve(a *testAPI, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}
