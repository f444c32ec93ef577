package cmd

import (
	"time"

	httpin "orderflow/internal/adapters/in/http"
	"orderflow/internal/adapters/out/memory"
	"orderflow/internal/adapters/out/postgres"
	"orderflow/internal/adapters/out/postgres/catalogrepo"
	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  *postgres.GormUnitOfWorkFactory
	catalog     ports.CatalogReader
	carts       ports.CartStore
	positions   ports.PositionStore
	positionPub ports.PositionPublisher
	pricing     services.PricingEngine
	coordinator *services.DeliveryCoordinator
	clock       commands.Clock
}

// NewCompositionRoot wires the use cases on top of the storage adapters. positionPub may
// be nil when positions reach observers through the position store's change feed.
func NewCompositionRoot(
	gormDB *gorm.DB,
	uowFactory *postgres.GormUnitOfWorkFactory,
	positions ports.PositionStore,
	positionPub ports.PositionPublisher,
) CompositionRoot {
	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  uowFactory,
		catalog:     catalogrepo.NewGormCatalogRepository(gormDB),
		carts:       memory.NewCartStore(),
		positions:   positions,
		positionPub: positionPub,
		pricing:     services.NewPricingEngine(),
		coordinator: services.NewDeliveryCoordinator(services.RandomCodeGenerator{}),
		clock:       time.Now,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) agentUoWFactory() commands.AgentUoWFactory {
	return FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryRequestUoWFactory() commands.DeliveryRequestUoWFactory {
	return FuncDeliveryRequestUoWFactory(func() commands.DeliveryRequestUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) crossUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.catalog, c.pricing, c.clock)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(c.crossUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAssignAgentCommandHandler() commands.AssignAgentCommandHandler {
	return commands.NewAssignAgentCommandHandler(c.crossUoWFactory(), c.coordinator, c.clock)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.crossUoWFactory(), c.coordinator, c.clock)
}

func (c *CompositionRoot) CreateOfferDeliveryCommandHandler() commands.OfferDeliveryCommandHandler {
	return commands.NewOfferDeliveryCommandHandler(c.crossUoWFactory(), c.coordinator, c.clock)
}

func (c *CompositionRoot) CreateAcceptDeliveryRequestCommandHandler() commands.AcceptDeliveryRequestCommandHandler {
	return commands.NewAcceptDeliveryRequestCommandHandler(c.crossUoWFactory(), c.coordinator, c.clock)
}

func (c *CompositionRoot) CreateRejectDeliveryRequestCommandHandler() commands.RejectDeliveryRequestCommandHandler {
	return commands.NewRejectDeliveryRequestCommandHandler(c.deliveryRequestUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateExpireDeliveryRequestsCommandHandler() commands.ExpireDeliveryRequestsCommandHandler {
	return commands.NewExpireDeliveryRequestsCommandHandler(c.deliveryRequestUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRateOrderCommandHandler() commands.RateOrderCommandHandler {
	return commands.NewRateOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	return commands.NewRecordPaymentCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRegisterAgentCommandHandler() commands.RegisterAgentCommandHandler {
	return commands.NewRegisterAgentCommandHandler(c.agentUoWFactory())
}

func (c *CompositionRoot) CreateUpdateAgentPositionCommandHandler() commands.UpdateAgentPositionCommandHandler {
	return commands.NewUpdateAgentPositionCommandHandler(c.positions, c.positionPub, c.clock)
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.carts, c.catalog)
}

func (c *CompositionRoot) CreateCheckoutCartCommandHandler() commands.CheckoutCartCommandHandler {
	return commands.NewCheckoutCartCommandHandler(c.carts, c.CreateCreateOrderCommandHandler())
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.carts)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory.OrderReader())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.uowFactory.OrderReader())
}

func (c *CompositionRoot) CreateGetAgentPositionQueryHandler() queries.GetAgentPositionQueryHandler {
	return queries.NewGetAgentPositionQueryHandler(c.positions)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.carts)
}

func (c *CompositionRoot) CreateGetVendorCommissionQueryHandler() queries.GetVendorCommissionQueryHandler {
	return queries.NewGetVendorCommissionQueryHandler(c.gormDB, c.catalog, c.pricing)
}

// HTTPHandlers collects every use case the API serves.
func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:           c.CreateCreateOrderCommandHandler(),
		CheckoutCart:          c.CreateCheckoutCartCommandHandler(),
		TransitionOrder:       c.CreateTransitionOrderCommandHandler(),
		AssignAgent:           c.CreateAssignAgentCommandHandler(),
		ConfirmDelivery:       c.CreateConfirmDeliveryCommandHandler(),
		OfferDelivery:         c.CreateOfferDeliveryCommandHandler(),
		AcceptDeliveryRequest: c.CreateAcceptDeliveryRequestCommandHandler(),
		RejectDeliveryRequest: c.CreateRejectDeliveryRequestCommandHandler(),
		RateOrder:             c.CreateRateOrderCommandHandler(),
		RecordPayment:         c.CreateRecordPaymentCommandHandler(),
		RegisterAgent:         c.CreateRegisterAgentCommandHandler(),
		UpdateAgentPosition:   c.CreateUpdateAgentPositionCommandHandler(),
		AddCartItem:           c.CreateAddCartItemCommandHandler(),
		ClearCart:             c.CreateClearCartCommandHandler(),
		GetOrder:              c.CreateGetOrderQueryHandler(),
		ListOrders:            c.CreateListOrdersQueryHandler(),
		GetAgentPosition:      c.CreateGetAgentPositionQueryHandler(),
		GetCart:               c.CreateGetCartQueryHandler(),
		GetVendorCommission:   c.CreateGetVendorCommissionQueryHandler(),
	}
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAgentUoWFactory func() commands.AgentUoW

func (f FuncAgentUoWFactory) Create() commands.AgentUoW {
	return f()
}

type FuncDeliveryRequestUoWFactory func() commands.DeliveryRequestUoW

func (f FuncDeliveryRequestUoWFactory) Create() commands.DeliveryRequestUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
