package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

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

// DefaultHeartbeat keeps idle event streams from being cut by proxies.
const DefaultHeartbeat = 15 * time.Second

// Event names written on the streams.
const (
	EventSnapshot = "snapshot"
	EventOrder    = "order"
	EventPosition = "position"
)

type eventStream struct {
	res *echo.Response
}

func openEventStream(ctx echo.Context) *eventStream {
	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)
	res.Flush()
	return &eventStream{res: res}
}

func (e *eventStream) send(event string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintf(e.res, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	e.res.Flush()
	return nil
}

func (e *eventStream) ping() error {
	if _, err := fmt.Fprint(e.res, ": ping\n\n"); err != nil {
		return err
	}
	e.res.Flush()
	return nil
}

// StreamOrders handles GET /api/v1/orders/stream. The subscription is opened before the
// initial list is read so that no change committed in between is lost; the list view
// drops whatever the initial read already covered.
func (s *Server) StreamOrders(ctx echo.Context, params servers.StreamOrdersParams) error {
	actor := actorFrom(ctx)
	filter, err := fromFilter(params.CustomerId, params.VendorId, params.AgentId, params.Status)
	if err != nil {
		return s.fail(ctx, err)
	}
	if filter, err = queries.ScopeFilter(actor, filter); err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewListOrdersQuery(filter, queries.MaxListLimit, actor)
	if err != nil {
		return s.fail(ctx, err)
	}

	reqCtx := ctx.Request().Context()
	sub := s.hub.SubscribeOrders(reqCtx, filter)
	defer sub.Close()

	initial, err := s.handlers.ListOrders.Handle(reqCtx, query)
	if err != nil {
		return s.fail(ctx, err)
	}
	view := realtime.NewOrderListView(filter)
	view.Seed(initial)

	stream := openEventStream(ctx)
	if err = stream.send(EventSnapshot, toOrders(view.Snapshots())); err != nil {
		return nil
	}

	heartbeat := time.NewTicker(s.heartbeat)
	defer heartbeat.Stop()
	for {
		select {
		case <-reqCtx.Done():
			return nil
		case snapshot, ok := <-sub.Updates():
			if !ok {
				return nil
			}
			if !view.Apply(snapshot) {
				continue
			}
			if err = stream.send(EventOrder, toOrder(queries.VisibleTo(actor, snapshot))); err != nil {
				return nil
			}
		case <-heartbeat.C:
			if err = stream.ping(); err != nil {
				return nil
			}
		}
	}
}

// StreamAgentPosition handles GET /api/v1/agents/{agentId}/position/stream. The last
// stored position, if any, is sent first.
func (s *Server) StreamAgentPosition(ctx echo.Context, agentId openapi_types.UUID) error {
	id, err := toUUID(agentId)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetAgentPositionQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	reqCtx := ctx.Request().Context()
	sub := s.hub.SubscribeAgent(reqCtx, id)
	defer sub.Close()

	last, err := s.handlers.GetAgentPosition.Handle(reqCtx, query)
	switch {
	case err == nil:
		sub.Offer(last)
	case errors.Is(err, errs.ErrObjectNotFound):
	default:
		return s.fail(ctx, err)
	}

	stream := openEventStream(ctx)
	heartbeat := time.NewTicker(s.heartbeat)
	defer heartbeat.Stop()

	var sent agent.Position
	for {
		select {
		case <-reqCtx.Done():
			return nil
		case p, ok := <-sub.Updates():
			if !ok {
				return nil
			}
			if !sent.RecordedAt.IsZero() && !p.IsNewerThan(sent) {
				continue
			}
			sent = p
			if err = stream.send(EventPosition, toPosition(p)); err != nil {
				return nil
			}
		case <-heartbeat.C:
			if err = stream.ping(); err != nil {
				return nil
			}
		}
	}
}

// TrackOrder handles GET /api/v1/orders/{orderId}/tracking. Only parties of the order
// may track it and the confirmation code is only ever shown to its customer.
func (s *Server) TrackOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	actor := actorFrom(ctx)
	id, err := toUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetOrderQuery(id, actor)
	if err != nil {
		return s.fail(ctx, err)
	}

	reqCtx := ctx.Request().Context()
	events, err := s.tracker.Track(reqCtx, id, func(loadCtx context.Context) (order.Snapshot, error) {
		return s.handlers.GetOrder.Handle(loadCtx, query)
	})
	if err != nil {
		return s.fail(ctx, err)
	}

	stream := openEventStream(ctx)
	heartbeat := time.NewTicker(s.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-reqCtx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err = s.sendTrackerEvent(stream, actor, ev); err != nil {
				s.logger.Debug("tracking stream closed", zap.Error(err))
				return nil
			}
		case <-heartbeat.C:
			if err = stream.ping(); err != nil {
				return nil
			}
		}
	}
}

func (s *Server) sendTrackerEvent(stream *eventStream, actor kernel.Actor, ev realtime.TrackerEvent) error {
	switch {
	case ev.Order != nil:
		return stream.send(EventOrder, toOrder(queries.VisibleTo(actor, *ev.Order)))
	case ev.Position != nil:
		return stream.send(EventPosition, toPosition(*ev.Position))
	}
	return nil
}
