package http

import (
	"context"
	"net/http"
	"time"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/agent"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/generated/servers"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/realtime"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"go.uber.org/zap"
)

var _ servers.ServerInterface = (*Server)(nil)

// CommandHandler is the shape of every command handler without a result.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// ResultHandler is the shape of queries and of commands that return a value.
type ResultHandler[Q, R any] interface {
	Handle(ctx context.Context, q Q) (R, error)
}

// Handlers are the use cases behind the API.
type Handlers struct {
	CreateOrder           CommandHandler[commands.CreateOrderCommand]
	CheckoutCart          CommandHandler[commands.CheckoutCartCommand]
	TransitionOrder       CommandHandler[commands.TransitionOrderCommand]
	AssignAgent           CommandHandler[commands.AssignAgentCommand]
	ConfirmDelivery       CommandHandler[commands.ConfirmDeliveryCommand]
	OfferDelivery         ResultHandler[commands.OfferDeliveryCommand, kernel.UUID]
	AcceptDeliveryRequest CommandHandler[commands.AnswerDeliveryRequestCommand]
	RejectDeliveryRequest CommandHandler[commands.AnswerDeliveryRequestCommand]
	RateOrder             CommandHandler[commands.RateOrderCommand]
	RecordPayment         CommandHandler[commands.RecordPaymentCommand]
	RegisterAgent         CommandHandler[commands.RegisterAgentCommand]
	UpdateAgentPosition   CommandHandler[commands.UpdateAgentPositionCommand]
	AddCartItem           ResultHandler[commands.AddCartItemCommand, bool]
	ClearCart             CommandHandler[commands.ClearCartCommand]

	GetOrder            ResultHandler[queries.GetOrderQuery, order.Snapshot]
	ListOrders          ResultHandler[queries.ListOrdersQuery, []order.Snapshot]
	GetAgentPosition    ResultHandler[queries.GetAgentPositionQuery, agent.Position]
	GetCart             ResultHandler[queries.GetCartQuery, queries.GetCartQueryResponse]
	GetVendorCommission ResultHandler[queries.GetVendorCommissionQuery, queries.GetVendorCommissionQueryResponse]
}

// Server implements servers.ServerInterface on top of the application use cases and the
// realtime hub.
type Server struct {
	handlers Handlers
	hub      *realtime.Hub
	tracker  *realtime.DeliveryTracker
	otp      *OtpLimiter
	logger   *zap.Logger

	heartbeat time.Duration
}

func NewServer(
	handlers Handlers,
	hub *realtime.Hub,
	tracker *realtime.DeliveryTracker,
	otp *OtpLimiter,
	logger *zap.Logger,
) *Server {
	return &Server{
		handlers:  handlers,
		hub:       hub,
		tracker:   tracker,
		otp:       otp,
		logger:    logger.With(zap.String("component", "http")),
		heartbeat: DefaultHeartbeat,
	}
}

func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor := actorFrom(ctx)
	if actor.Role != kernel.RoleCustomer {
		return s.fail(ctx, errs.NewUnauthorizedError(actor.Role, "place an order"))
	}

	var req servers.NewOrder
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	vendorID, err := toUUID(req.VendorId)
	if err != nil {
		return s.fail(ctx, err)
	}
	lines := make([]commands.OrderLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		itemID, idErr := toUUID(l.ItemId)
		if idErr != nil {
			return s.fail(ctx, idErr)
		}
		lines = append(lines, commands.OrderLine{ItemID: itemID, Quantity: l.Quantity})
	}
	target, err := fromTarget(req.Target)
	if err != nil {
		return s.fail(ctx, err)
	}
	payment, err := fromPayment(req.PaymentMethod, req.PaymentReference)
	if err != nil {
		return s.fail(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, actor.ID, vendorID, lines, target, payment)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, orderID, actor)
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	filter, err := fromFilter(params.CustomerId, params.VendorId, params.AgentId, params.Status)
	if err != nil {
		return s.fail(ctx, err)
	}
	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewListOrdersQuery(filter, limit, actorFrom(ctx))
	if err != nil {
		return s.fail(ctx, err)
	}
	found, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrders(found))
}

func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := toUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithOrder(ctx, http.StatusOK, id, actorFrom(ctx))
}

// TransitionOrder handles POST /api/v1/orders/{orderId}/transitions.
func (s *Server) TransitionOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var req servers.Transition
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	id, err := toUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	to, err := order.ParseStatus(string(req.To))
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewTransitionOrderCommand(id, to, actorFrom(ctx))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.handlers.TransitionOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) AssignAgent(ctx echo.Context, orderId openapi_types.UUID) error {
	var req servers.Assignment
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	id, err := toUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	agentID, err := toUUID(req.AgentId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewAssignAgentCommand(id, agentID, actorFrom(ctx))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.handlers.AssignAgent.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmDelivery handles POST /api/v1/orders/{orderId}/delivery-confirmation. Repeated
// mismatches by the same agent on the same order are throttled.
func (s *Server) ConfirmDelivery(ctx echo.Context, orderId openapi_types.UUID) error {
	var req servers.DeliveryConfirmation
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	actor := actorFrom(ctx)
	id, err := toUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewConfirmDeliveryCommand(id, req.Code, actor)
	if err != nil {
		return s.fail(ctx, err)
	}

	attempt, ok := s.otp.Begin(actor.ID, id)
	if !ok {
		return ctx.JSON(http.StatusTooManyRequests, servers.Error{
			Code:      http.StatusTooManyRequests,
			Message:   "too many wrong confirmation codes, try again later",
			Retryable: true,
		})
	}
	err = s.handlers.ConfirmDelivery.Handle(ctx.Request().Context(), cmd)
	attempt.Finish(err)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OfferDelivery handles POST /api/v1/orders/{orderId}/delivery-requests.
func (s *Server) OfferDelivery(ctx echo.Context, orderId openapi_types.UUID) error {
	var req servers.DeliveryOffer
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	id, err := toUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	agentID, err := toUUID(req.AgentId)
	if err != nil {
		return s.fail(ctx, err)
	}
	var window time.Duration
	if req.WindowSeconds != nil {
		window = time.Duration(*req.WindowSeconds) * time.Second
	}

	cmd, err := commands.NewOfferDeliveryCommand(id, agentID, actorFrom(ctx), window)
	if err != nil {
		return s.fail(ctx, err)
	}
	requestID, err := s.handlers.OfferDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.DeliveryRequestRef{Id: requestID.Bytes()})
}

func (s *Server) RateOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := toUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewRateOrderCommand(id, actorFrom(ctx))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.handlers.RateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) RecordPayment(ctx echo.Context, orderId openapi_types.UUID) error {
	var req servers.PaymentRecord
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	id, err := toUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	reference := ""
	if req.Reference != nil {
		reference = *req.Reference
	}
	cmd, err := commands.NewRecordPaymentCommand(id, reference, actorFrom(ctx))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.handlers.RecordPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) AcceptDeliveryRequest(ctx echo.Context, requestId openapi_types.UUID) error {
	return s.answer(ctx, requestId, s.handlers.AcceptDeliveryRequest)
}

func (s *Server) RejectDeliveryRequest(ctx echo.Context, requestId openapi_types.UUID) error {
	return s.answer(ctx, requestId, s.handlers.RejectDeliveryRequest)
}

func (s *Server) answer(
	ctx echo.Context,
	requestId openapi_types.UUID,
	handler CommandHandler[commands.AnswerDeliveryRequestCommand],
) error {
	id, err := toUUID(requestId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewAnswerDeliveryRequestCommand(id, actorFrom(ctx))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = handler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateAgentPosition handles PUT /api/v1/agents/{agentId}/position.
func (s *Server) UpdateAgentPosition(ctx echo.Context, agentId openapi_types.UUID) error {
	var req servers.PositionUpdate
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	id, err := toUUID(agentId)
	if err != nil {
		return s.fail(ctx, err)
	}
	point, err := kernel.NewGeoPoint(req.Lat, req.Lng)
	if err != nil {
		return s.fail(ctx, err)
	}
	var recordedAt time.Time
	if req.RecordedAt != nil {
		recordedAt = *req.RecordedAt
	}

	cmd, err := commands.NewUpdateAgentPositionCommand(id, point, recordedAt, actorFrom(ctx))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.handlers.UpdateAgentPosition.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) GetAgentPosition(ctx echo.Context, agentId openapi_types.UUID) error {
	id, err := toUUID(agentId)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetAgentPositionQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	p, err := s.handlers.GetAgentPosition.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toPosition(p))
}

// GetCart handles GET /api/v1/carts/me.
func (s *Server) GetCart(ctx echo.Context) error {
	actor := actorFrom(ctx)
	if actor.Role != kernel.RoleCustomer {
		return s.fail(ctx, errs.NewUnauthorizedError(actor.Role, "use a cart"))
	}
	return s.respondWithCart(ctx, actor.ID, false)
}

// AddCartItem handles POST /api/v1/carts/me/items. Adding an item of another vendor
// replaces the cart, which the response reports.
func (s *Server) AddCartItem(ctx echo.Context) error {
	actor := actorFrom(ctx)
	if actor.Role != kernel.RoleCustomer {
		return s.fail(ctx, errs.NewUnauthorizedError(actor.Role, "use a cart"))
	}

	var req servers.CartItem
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	itemID, err := toUUID(req.ItemId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAddCartItemCommand(actor.ID, itemID, req.Quantity)
	if err != nil {
		return s.fail(ctx, err)
	}
	replaced, err := s.handlers.AddCartItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithCart(ctx, actor.ID, replaced)
}

func (s *Server) ClearCart(ctx echo.Context) error {
	actor := actorFrom(ctx)
	if actor.Role != kernel.RoleCustomer {
		return s.fail(ctx, errs.NewUnauthorizedError(actor.Role, "use a cart"))
	}

	cmd, err := commands.NewClearCartCommand(actor.ID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.handlers.ClearCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CheckoutCart handles POST /api/v1/carts/me/checkout.
func (s *Server) CheckoutCart(ctx echo.Context) error {
	actor := actorFrom(ctx)
	if actor.Role != kernel.RoleCustomer {
		return s.fail(ctx, errs.NewUnauthorizedError(actor.Role, "place an order"))
	}

	var req servers.Checkout
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	target, err := fromTarget(req.Target)
	if err != nil {
		return s.fail(ctx, err)
	}
	payment, err := fromPayment(req.PaymentMethod, req.PaymentReference)
	if err != nil {
		return s.fail(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCartCommand(orderID, actor.ID, target, payment)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.handlers.CheckoutCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, orderID, actor)
}

// RegisterAgent handles POST /api/v1/vendors/{vendorId}/agents.
func (s *Server) RegisterAgent(ctx echo.Context, vendorId openapi_types.UUID) error {
	var req servers.NewAgent
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	id, err := toUUID(vendorId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewRegisterAgentCommand(id, req.Name, req.Phone, actorFrom(ctx))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.handlers.RegisterAgent.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Agent{Id: cmd.AgentID().Bytes(), Name: cmd.Name()})
}

// GetVendorCommission handles GET /api/v1/vendors/{vendorId}/commission.
func (s *Server) GetVendorCommission(
	ctx echo.Context,
	vendorId openapi_types.UUID,
	params servers.GetVendorCommissionParams,
) error {
	id, err := toUUID(vendorId)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetVendorCommissionQuery(id, params.From, params.To, actorFrom(ctx))
	if err != nil {
		return s.fail(ctx, err)
	}
	report, err := s.handlers.GetVendorCommission.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Commission{
		VendorId:   report.VendorID.Bytes(),
		From:       report.From,
		To:         report.To,
		Orders:     report.Orders,
		Gross:      report.Gross.String(),
		Rate:       report.Rate.String(),
		Commission: report.Commission.String(),
	})
}

func (s *Server) respondWithOrder(ctx echo.Context, code int, orderID kernel.UUID, actor kernel.Actor) error {
	query, err := queries.NewGetOrderQuery(orderID, actor)
	if err != nil {
		return s.fail(ctx, err)
	}
	snapshot, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(code, toOrder(snapshot))
}

func (s *Server) respondWithCart(ctx echo.Context, customerID kernel.UUID, replaced bool) error {
	query, err := queries.NewGetCartQuery(customerID)
	if err != nil {
		return s.fail(ctx, err)
	}
	c, err := s.handlers.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toCart(customerID, c.VendorID, c.Lines, replaced))
}
