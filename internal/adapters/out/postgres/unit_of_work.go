// Package postgres provides the GORM-based Unit of Work that spans the order, agent and
// delivery request repositories.
//
// Every order written through the unit of work is tracked. Its snapshot and the status
// changes it carried are captured at write time and handed to the registered
// ports.OrderChangePublisher values only after the transaction committed. A rolled back
// unit of work publishes nothing.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// When a change feed channel is configured the unit of work also raises pg_notify for
// every tracked order inside the transaction, so other instances learn about the write
// at the moment it becomes visible.
package postgres

import (
	"context"

	"orderflow/internal/adapters/out/postgres/agentrepo"
	"orderflow/internal/adapters/out/postgres/deliveryrequestrepo"
	"orderflow/internal/adapters/out/postgres/orderrepo"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"

	"gorm.io/gorm"
)

// ChannelOrderChanged is the change feed channel; the payload is the order id.
const ChannelOrderChanged = "order_changed"

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool and
// one set of publishers.
type GormUnitOfWorkFactory struct {
	db         *gorm.DB
	publishers []ports.OrderChangePublisher
	channel    string
}

// NewGormUnitOfWorkFactory creates a factory. Publishers are called in order after each
// successful commit.
func NewGormUnitOfWorkFactory(db *gorm.DB, publishers ...ports.OrderChangePublisher) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, publishers: publishers}
}

// WithChangeFeed makes every commit that wrote orders notify channel with each order id.
func (f *GormUnitOfWorkFactory) WithChangeFeed(channel string) *GormUnitOfWorkFactory {
	f.channel = channel
	return f
}

// OrderReader reads orders outside any unit of work.
func (f *GormUnitOfWorkFactory) OrderReader() ports.OrderReader {
	return orderrepo.NewGormOrderRepository(f.db, readOnly{})
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:         f.db,
		publishers: f.publishers,
		channel:    f.channel,
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the orders written in it.
type GormUnitOfWork struct {
	db         *gorm.DB
	tx         *gorm.DB
	publishers []ports.OrderChangePublisher
	channel    string
	changes    []ports.OrderChange
}

// Begin starts the transaction. Calling it again while a transaction is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	uow.changes = nil
	return nil
}

// Commit finalizes the transaction and then publishes the tracked order changes.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if uow.channel != "" {
		for _, change := range uow.changes {
			if err := uow.tx.Exec("SELECT pg_notify(?, ?)", uow.channel, change.Snapshot.ID.String()).Error; err != nil {
				return err
			}
		}
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.changes = nil
		return err
	}

	changes := uow.changes
	uow.changes = nil
	if len(changes) == 0 {
		return nil
	}
	for _, publisher := range uow.publishers {
		publisher.Publish(ctx, changes)
	}
	return nil
}

// Rollback discards the transaction and every tracked change.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	uow.changes = nil
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) AgentRepository() ports.AgentRepository {
	return agentrepo.NewGormAgentRepository(uow.conn())
}

func (uow *GormUnitOfWork) DeliveryRequestRepository() ports.DeliveryRequestRepository {
	return deliveryrequestrepo.NewGormDeliveryRequestRepository(uow.conn())
}

// TrackAggregate is called by repositories after a successful write. Orders are
// captured immediately so that later mutations of the same aggregate in the
// transaction do not leak into an earlier change.
func (uow *GormUnitOfWork) TrackAggregate(_ kernel.UUID, aggregate any) {
	o, ok := aggregate.(*order.Order)
	if !ok {
		return
	}

	uow.changes = append(uow.changes, ports.OrderChange{
		Snapshot: o.Snapshot(),
		Events:   o.PullEvents(),
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

type readOnly struct{}

func (readOnly) TrackAggregate(kernel.UUID, any) {}
