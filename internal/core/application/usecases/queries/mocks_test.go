package queries_test

import (
	"context"
	"testing"
	"time"

	"workmarket/internal/core/domain/model/application"
	"workmarket/internal/core/domain/model/executor"
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

func newOrder(t *testing.T, customerID kernel.UUID, urgency order.Urgency, loc *kernel.Location) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), customerID, order.Details{
		Title:      "Walk the dog",
		CategoryID: kernel.NewUUID(),
		Urgency:    urgency,
		PriceType:  order.PriceTypeHourly,
		Location:   loc,
	}, true, time.Now().UTC())
	require.NoError(t, err)
	return o
}

func newDraftOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), customerID, order.Details{
		Title:      "Walk the dog",
		CategoryID: kernel.NewUUID(),
		Urgency:    order.UrgencyLow,
		PriceType:  order.PriceTypeHourly,
	}, false, time.Now().UTC())
	require.NoError(t, err)
	return o
}

func newLocation(t *testing.T, lat, lng float64) *kernel.Location {
	t.Helper()
	l, err := kernel.NewLocation(lat, lng)
	require.NoError(t, err)
	return &l
}

func newProfile(t *testing.T, userID kernel.UUID, loc *kernel.Location, rating float64) *executor.Profile {
	t.Helper()
	p, err := executor.RestoreProfile(executor.Snapshot{
		ID:           kernel.NewUUID(),
		UserID:       userID,
		Location:     loc,
		WorkRadiusKm: 10,
		Rating:       rating,
		IsAvailable:  true,
	})
	require.NoError(t, err)
	return p
}

func newApplication(t *testing.T, o *order.Order, executorID kernel.UUID) *application.Application {
	t.Helper()
	price, err := kernel.MoneyFromInt(250)
	require.NoError(t, err)
	bid, err := application.NewBid(price, nil, "", nil)
	require.NoError(t, err)
	a, err := application.NewApplication(kernel.NewUUID(), o.ID(), executorID, bid, time.Now().UTC())
	require.NoError(t, err)
	return a
}
