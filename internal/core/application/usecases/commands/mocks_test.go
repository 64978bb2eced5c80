package commands_test

import (
	"context"

	"github.com/marribaloch/Indian-food/internal/core/application/usecases/commands"
	"github.com/marribaloch/Indian-food/internal/core/domain/model/driver"
	"github.com/marribaloch/Indian-food/internal/core/domain/model/kernel"
	"github.com/marribaloch/Indian-food/internal/core/domain/model/order"
	"github.com/marribaloch/Indian-food/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(
	ctx context.Context,
	aggregate *order.Order,
	expectedStatus order.Status,
	expectedDriver *int64,
) error {
	args := m.Called(ctx, aggregate, expectedStatus, expectedDriver)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByCustomer(ctx context.Context, customerID int64) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllDispatchable(ctx context.Context, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) AssignDriver(ctx context.Context, orderID, driverID int64) (*order.Order, error) {
	args := m.Called(ctx, orderID, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) CountDispatchable(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockPresenceRepository struct{ mock.Mock }

func (m *MockPresenceRepository) Upsert(ctx context.Context, presence driver.Presence) error {
	args := m.Called(ctx, presence)
	return args.Error(0)
}

func (m *MockPresenceRepository) Get(ctx context.Context, driverID int64) (*driver.Presence, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Presence), args.Error(1)
}

func (m *MockPresenceRepository) GetAllAvailable(ctx context.Context) ([]driver.Presence, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]driver.Presence), args.Error(1)
}

type MockCatalog struct{ mock.Mock }

func (m *MockCatalog) GetItems(ctx context.Context, ids []int64) (map[int64]ports.CatalogItem, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]ports.CatalogItem), args.Error(1)
}

type MockIdentity struct{ mock.Mock }

func (m *MockIdentity) ResolveCustomerByEmail(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) OrderStatusChanged(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockGeoEstimator struct{ mock.Mock }

func (m *MockGeoEstimator) Estimate(ctx context.Context, origin, destination kernel.Location) (kernel.RouteEstimate, error) {
	args := m.Called(ctx, origin, destination)
	return args.Get(0).(kernel.RouteEstimate), args.Error(1)
}

// MockUoW satisfies every unit of work facet the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PresenceRepository() ports.PresenceRepository {
	args := m.Called()
	return args.Get(0).(ports.PresenceRepository)
}

func (m *MockUoW) Catalog() ports.Catalog {
	args := m.Called()
	return args.Get(0).(ports.Catalog)
}

func (m *MockUoW) Identity() ports.Identity {
	args := m.Called()
	return args.Get(0).(ports.Identity)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPlaceOrderUoWFactory struct{ mock.Mock }

func (m *MockPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.PlaceOrderUoW)
}

type MockPresenceUoWFactory struct{ mock.Mock }

func (m *MockPresenceUoWFactory) Create() commands.PresenceUoW {
	args := m.Called()
	return args.Get(0).(commands.PresenceUoW)
}

type MockDriverUpdateUoWFactory struct{ mock.Mock }

func (m *MockDriverUpdateUoWFactory) Create() commands.DriverUpdateUoW {
	args := m.Called()
	return args.Get(0).(commands.DriverUpdateUoW)
}
