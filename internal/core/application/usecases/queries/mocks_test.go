package queries_test

import (
	"context"

	"orderflow/internal/core/domain/model/agent"
	"orderflow/internal/core/domain/model/cart"
	"orderflow/internal/core/domain/model/catalog"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderReader) List(ctx context.Context, filter order.Filter, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockPositionStore struct{ mock.Mock }

func (m *MockPositionStore) Put(ctx context.Context, p agent.Position) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPositionStore) Get(ctx context.Context, agentID kernel.UUID) (agent.Position, error) {
	args := m.Called(ctx, agentID)
	return args.Get(0).(agent.Position), args.Error(1)
}

type MockCartStore struct{ mock.Mock }

func (m *MockCartStore) Get(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartStore) Save(ctx context.Context, c *cart.Cart) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCartStore) Delete(ctx context.Context, customerID kernel.UUID) error {
	return m.Called(ctx, customerID).Error(0)
}

type MockCatalogReader struct{ mock.Mock }

func (m *MockCatalogReader) GetVendor(ctx context.Context, id kernel.UUID) (catalog.Vendor, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Vendor), args.Error(1)
}

func (m *MockCatalogReader) GetMenuItems(ctx context.Context, ids []kernel.UUID) ([]catalog.MenuItem, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.MenuItem), args.Error(1)
}
