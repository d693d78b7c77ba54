package http

import (
	"context"
	"testing"
	"time"

	"workmarket/internal/core/application/usecases/commands"
	"workmarket/internal/core/application/usecases/queries"
	"workmarket/internal/core/domain/model/application"
	"workmarket/internal/core/domain/model/executor"
	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/core/domain/model/order"
	"workmarket/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) UpdateIfStatus(ctx context.Context, o *order.Order, expected order.Status) error {
	return m.Called(ctx, o, expected).Error(0)
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
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderRepository) IncrementViews(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
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
	return m.Called(ctx, a).Error(0)
}

func (m *MockApplicationRepository) UpdateIfStatus(
	ctx context.Context,
	a *application.Application,
	expected application.Status,
) error {
	return m.Called(ctx, a, expected).Error(0)
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

type MockExecutorProfileReader struct{ mock.Mock }

func (m *MockExecutorProfileReader) GetByUserID(ctx context.Context, userID kernel.UUID) (*executor.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*executor.Profile), args.Error(1)
}

func (m *MockExecutorProfileReader) FindAvailable(ctx context.Context, box *ports.BoundingBox) ([]*executor.Profile, error) {
	args := m.Called(ctx, box)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*executor.Profile), args.Error(1)
}

func (m *MockExecutorProfileReader) MaxWorkRadiusKm(ctx context.Context, fallbackKm float64) (float64, error) {
	args := m.Called(ctx, fallbackKm)
	return args.Get(0).(float64), args.Error(1)
}

type MockCategoryChecker struct{ mock.Mock }

func (m *MockCategoryChecker) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ApplicationRepository() ports.ApplicationRepository {
	return m.Called().Get(0).(ports.ApplicationRepository)
}

type uowFactory func() commands.UoW

func (f uowFactory) Create() commands.UoW { return f() }

type orderUoWFactory func() commands.OrderUoW

func (f orderUoWFactory) Create() commands.OrderUoW { return f() }

// testAPI serves the real router over real use case handlers backed by mocks.
type testAPI struct {
	e            *echo.Echo
	uow          *MockUoW
	orders       *MockOrderRepository
	applications *MockApplicationRepository
	profiles     *MockExecutorProfileReader
	categories   *MockCategoryChecker
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	api := &testAPI{
		uow:          new(MockUoW),
		orders:       new(MockOrderRepository),
		applications: new(MockApplicationRepository),
		profiles:     new(MockExecutorProfileReader),
		categories:   new(MockCategoryChecker),
	}
	api.uow.On("Begin", mock.Anything).Return(nil).Maybe()
	api.uow.On("Rollback", mock.Anything).Return(nil).Maybe()
	api.uow.On("OrderRepository").Return(api.orders).Maybe()
	api.uow.On("ApplicationRepository").Return(api.applications).Maybe()

	uows := uowFactory(func() commands.UoW { return api.uow })
	orderUoWs := orderUoWFactory(func() commands.OrderUoW { return api.uow })
	const radiusKm = 10.0

	server := NewServer(
		CommandHandlers{
			CreateOrder:         commands.NewCreateOrderCommandHandler(orderUoWs, api.categories),
			UpdateOrderStatus:   commands.NewUpdateOrderStatusCommandHandler(orderUoWs),
			CompleteOrder:       commands.NewCompleteOrderCommandHandler(orderUoWs),
			CreateApplication:   commands.NewCreateApplicationCommandHandler(uows),
			AcceptApplication:   commands.NewAcceptApplicationCommandHandler(uows),
			RejectApplication:   commands.NewRejectApplicationCommandHandler(uows),
			WithdrawApplication: commands.NewWithdrawApplicationCommandHandler(uows),
		},
		QueryHandlers{
			ListOrders:              queries.NewListOrdersQueryHandler(api.orders),
			GetOrder:                queries.NewGetOrderQueryHandler(api.orders),
			ListOrderApplications:   queries.NewListOrderApplicationsQueryHandler(api.orders, api.applications),
			GetRecommendedOrders:    queries.NewGetRecommendedOrdersQueryHandler(api.profiles, api.orders, api.applications, radiusKm),
			GetRecommendedExecutors: queries.NewGetRecommendedExecutorsQueryHandler(api.orders, api.applications, api.profiles, radiusKm),
			FindNearbyOrders:        queries.NewFindNearbyOrdersQueryHandler(api.orders),
			FindNearbyExecutors:     queries.NewFindNearbyExecutorsQueryHandler(api.profiles),
		},
		zap.NewNop(),
	)

	e, err := NewRouter(server, zap.NewNop())
	require.NoError(t, err)
	api.e = e
	return api
}

func (api *testAPI) assertExpectations(t *testing.T) {
	t.Helper()
	api.uow.AssertExpectations(t)
	api.orders.AssertExpectations(t)
	api.applications.AssertExpectations(t)
	api.profiles.AssertExpectations(t)
	api.categories.AssertExpectations(t)
}

func openOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), customerID, order.Details{
		Title:      "Paint the fence",
		CategoryID: kernel.NewUUID(),
		Urgency:    order.UrgencyMedium,
		PriceType:  order.PriceTypeFixed,
	}, true, time.Now().UTC())
	require.NoError(t, err)
	return o
}

func pendingApplication(t *testing.T, o *order.Order, executorID kernel.UUID) *application.Application {
	t.Helper()
	price, err := kernel.MoneyFromInt(500)
	require.NoError(t, err)
	bid, err := application.NewBid(price, nil, "", nil)
	require.NoError(t, err)
	a, err := application.NewApplication(kernel.NewUUID(), o.ID(), executorID, bid, time.Now().UTC())
	require.NoError(t, err)
	return a
}
