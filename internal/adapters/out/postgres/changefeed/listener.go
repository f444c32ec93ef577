// Package changefeed is the live-query side of the order store. It listens for the
// notifications raised inside committing transactions, reloads the changed order or
// position and publishes it to the synchronization layer.
//
// Notifications carry ids only. The current row is always reloaded, so a burst of
// notifications for one order publishes its latest state several times, which the
// subscriptions de-duplicate.
//
// Notifications raised while the connection is down are lost. After every reconnect
// the listener republishes the orders changed since the drop, minus a margin for
// clock skew and transactions that committed late.
package changefeed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orderflow/internal/adapters/out/postgres"
	"orderflow/internal/adapters/out/postgres/positionstore"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const (
	DefaultMinBackoff   = 500 * time.Millisecond
	DefaultMaxBackoff   = 30 * time.Second
	DefaultResyncMargin = 30 * time.Second
)

// Listener keeps one dedicated connection in LISTEN mode and reconnects with
// exponential backoff when it drops.
type Listener struct {
	connString  string
	orders      ports.OrderReader
	positions   ports.PositionStore
	orderPub    ports.OrderChangePublisher
	positionPub ports.PositionPublisher
	minBackoff  time.Duration
	maxBackoff  time.Duration
	margin      time.Duration
	now         func() time.Time
	logger      *zap.Logger
}

func NewListener(
	connString string,
	orders ports.OrderReader,
	positions ports.PositionStore,
	orderPub ports.OrderChangePublisher,
	positionPub ports.PositionPublisher,
	logger *zap.Logger,
) *Listener {
	return &Listener{
		connString:  connString,
		orders:      orders,
		positions:   positions,
		orderPub:    orderPub,
		positionPub: positionPub,
		minBackoff:  DefaultMinBackoff,
		maxBackoff:  DefaultMaxBackoff,
		margin:      DefaultResyncMargin,
		now:         time.Now,
		logger:      logger.With(zap.String("component", "change_feed")),
	}
}

// WithBackoff overrides the reconnect delays.
func (l *Listener) WithBackoff(minDelay, maxDelay time.Duration) *Listener {
	l.minBackoff = minDelay
	l.maxBackoff = maxDelay
	return l
}

// WithResyncMargin overrides how far before the drop the resync looks back.
func (l *Listener) WithResyncMargin(margin time.Duration) *Listener {
	l.margin = margin
	return l
}

// Channels returns the notification channels the listener subscribes to.
func Channels() []string {
	return []string{postgres.ChannelOrderChanged, positionstore.ChannelAgentPosition}
}

// Run listens until ctx is done.
func (l *Listener) Run(ctx context.Context) error {
	delay := l.minBackoff
	var droppedAt time.Time
	for {
		connected, err := l.listen(ctx, droppedAt)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if connected {
			delay = l.minBackoff
			droppedAt = l.now()
		}
		l.logger.Warn("change feed disconnected", zap.Error(err), zap.Duration("retry_in", delay))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay = min(delay*2, l.maxBackoff)
	}
}

// listen holds one connection. A non-zero droppedAt means an earlier connection was
// lost at that time and a resync runs once LISTEN is in place again.
func (l *Listener) listen(ctx context.Context, droppedAt time.Time) (bool, error) {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return false, fmt.Errorf("connect: %w", err)
	}
	defer func() { _ = conn.Close(context.WithoutCancel(ctx)) }()

	for _, channel := range Channels() {
		if _, err = conn.Exec(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
			return false, fmt.Errorf("listen %s: %w", channel, err)
		}
	}
	l.logger.Info("change feed listening", zap.Strings("channels", Channels()))

	if !droppedAt.IsZero() {
		if err = l.Resync(ctx, droppedAt); err != nil {
			return false, err
		}
	}

	for {
		n, waitErr := conn.WaitForNotification(ctx)
		if waitErr != nil {
			return true, waitErr
		}
		l.Dispatch(ctx, n)
	}
}

// Resync republishes every order changed since droppedAt minus the margin. It runs
// after LISTEN, so a change is either notified or picked up here.
func (l *Listener) Resync(ctx context.Context, droppedAt time.Time) error {
	since := droppedAt.Add(-l.margin)
	orders, err := l.orders.List(ctx, order.Filter{UpdatedSince: since}, 0)
	if err != nil {
		return fmt.Errorf("resync: %w", err)
	}

	if len(orders) > 0 {
		changes := make([]ports.OrderChange, 0, len(orders))
		for _, o := range orders {
			changes = append(changes, ports.OrderChange{Snapshot: o.Snapshot()})
		}
		l.orderPub.Publish(ctx, changes)
	}

	l.logger.Info("change feed resynced", zap.Time("since", since), zap.Int("orders", len(orders)))
	return nil
}

// Dispatch reloads what n refers to and publishes it. Failures are logged: the next
// write to the same row notifies again.
func (l *Listener) Dispatch(ctx context.Context, n *pgconn.Notification) {
	id, err := kernel.UUIDFromString(n.Payload)
	if err != nil {
		l.logger.Warn("malformed notification", zap.String("channel", n.Channel), zap.String("payload", n.Payload))
		return
	}

	switch n.Channel {
	case postgres.ChannelOrderChanged:
		o, getErr := l.orders.Get(ctx, id)
		if getErr != nil {
			l.logReloadFailure(n.Channel, id, getErr)
			return
		}
		l.orderPub.Publish(ctx, []ports.OrderChange{{Snapshot: o.Snapshot()}})
	case positionstore.ChannelAgentPosition:
		p, getErr := l.positions.Get(ctx, id)
		if getErr != nil {
			l.logReloadFailure(n.Channel, id, getErr)
			return
		}
		l.positionPub.PublishPosition(ctx, p)
	default:
		l.logger.Debug("notification on unknown channel ignored", zap.String("channel", n.Channel))
	}
}

func (l *Listener) logReloadFailure(channel string, id kernel.UUID, err error) {
	if errors.Is(err, errs.ErrObjectNotFound) {
		l.logger.Debug("notified row is gone", zap.String("channel", channel), zap.Stringer("id", id))
		return
	}
	l.logger.Warn("change feed reload failed", zap.String("channel", channel), zap.Stringer("id", id), zap.Error(err))
}
