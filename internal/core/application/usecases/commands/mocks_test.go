package commands_test

import (
	"context"
	"testing"
	"time"

	"workmarket/internal/core/application/usecases/commands"
	"workmarket/internal/core/domain/model/application"
	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/core/domain/model/order"
	"workmarket/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateIfStatus(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) IncrementApplications(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) IncrementViews(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) FindVisible(ctx context.Context, box *ports.BoundingBox) ([]*order.Order, error) {
	args := m.Called(ctx, box)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindExpired(ctx context.Context, now time.Time, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) List(
	ctx context.Context,
	filter ports.OrderFilter,
	offset, limit int,
) ([]*order.Order, int64, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*order.Order), args.Get(1).(int64), args.Error(2)
}

type MockApplicationRepository struct{ mock.Mock }

func (m *MockApplicationRepository) Add(ctx context.Context, a *application.Application) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockApplicationRepository) UpdateIfStatus(
	ctx context.Context,
	a *application.Application,
	expected application.Status,
) error {
	args := m.Called(ctx, a, expected)
	return args.Error(0)
}

func (m *MockApplicationRepository) Get(ctx context.Context, id kernel.UUID) (*application.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.Application), args.Error(1)
}

func (m *MockApplicationRepository) FindByOrderAndExecutor(
	ctx context.Context,
	orderID, executorID kernel.UUID,
) (*application.Application, error) {
	args := m.Called(ctx, orderID, executorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.Application), args.Error(1)
}

func (m *MockApplicationRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*application.Application, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*application.Application), args.Error(1)
}

func (m *MockApplicationRepository) ListAppliedOrders(ctx context.Context, executorID kernel.UUID) ([]ports.AppliedOrder, error) {
	args := m.Called(ctx, executorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.AppliedOrder), args.Error(1)
}

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

func (m *MockUoW) ApplicationRepository() ports.ApplicationRepository {
	args := m.Called()
	return args.Get(0).(ports.ApplicationRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCategoryChecker struct{ mock.Mock }

func (m *MockCategoryChecker) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// fixture wires one MockUoW with both repositories. Rollback is always allowed
// because handlers defer it unconditionally.
type fixture struct {
	uow          *MockUoW
	orders       *MockOrderRepository
	applications *MockApplicationRepository
	factory      *MockUoWFactory
	orderFactory *MockOrderUoWFactory
}

func newFixture() *fixture {
	f := &fixture{
		uow:          new(MockUoW),
		orders:       new(MockOrderRepository),
		applications: new(MockApplicationRepository),
		factory:      new(MockUoWFactory),
		orderFactory: new(MockOrderUoWFactory),
	}
	f.factory.On("Create").Return(f.uow).Maybe()
	f.orderFactory.On("Create").Return(f.uow).Maybe()
	f.uow.On("Begin", mock.Anything).Return(nil).Maybe()
	f.uow.On("Rollback", mock.Anything).Return(nil).Maybe()
	f.uow.On("OrderRepository").Return(f.orders).Maybe()
	f.uow.On("ApplicationRepository").Return(f.applications).Maybe()
	return f
}

func (f *fixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.uow.AssertExpectations(t)
	f.orders.AssertExpectations(t)
	f.applications.AssertExpectations(t)
}

func testDetails(t *testing.T) order.Details {
	t.Helper()
	from, err := kernel.MoneyFromInt(1000)
	require.NoError(t, err)
	return order.Details{
		Title:      "Repair a roof",
		CategoryID: kernel.NewUUID(),
		Urgency:    order.UrgencyMedium,
		PriceType:  order.PriceTypeFixed,
		BudgetFrom: &from,
	}
}

func openOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), customerID, testDetails(t), true, time.Now().UTC())
	require.NoError(t, err)
	return o
}

func testBid(t *testing.T, price int64) application.Bid {
	t.Helper()
	m, err := kernel.MoneyFromInt(price)
	require.NoError(t, err)
	bid, err := application.NewBid(m, nil, "", nil)
	require.NoError(t, err)
	return bid
}

func pendingApplication(t *testing.T, o *order.Order, price int64) *application.Application {
	t.Helper()
	a, err := application.NewApplication(kernel.NewUUID(), o.ID(), kernel.NewUUID(), testBid(t, price), time.Now().UTC())
	require.NoError(t, err)
	return a
}
