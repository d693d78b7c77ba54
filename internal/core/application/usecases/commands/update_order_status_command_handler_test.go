package commands_test

import (
	"testing"

	"workmarket/internal/core/application/usecases/commands"
	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/core/domain/model/order"
	"workmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderStatusCommandHandler_Handle(t *testing.T) {
	t.Run("should cancel an open order with a status compare-and-swap", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		customerID := kernel.NewUUID()
		o := openOrder(t, customerID)

		f.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
		f.orders.On("UpdateIfStatus", ctx, o, order.Open).Return(nil).Once()
		f.uow.On("Commit", ctx).Return(nil).Once()

		cmd, err := commands.NewUpdateOrderStatusCommand(customerID, o.ID(), order.Cancelled)
		require.NoError(t, err)

		got, err := commands.NewUpdateOrderStatusCommandHandler(f.orderFactory).Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, got.Status())
		assert.False(t, got.IsPublished())
		f.assertExpectations(t)
	})

	t.Run("should report an invalid transition without writing", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		customerID := kernel.NewUUID()
		o := openOrder(t, customerID)
		f.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()

		cmd, err := commands.NewUpdateOrderStatusCommand(customerID, o.ID(), order.Completed)
		require.NoError(t, err)

		_, err = commands.NewUpdateOrderStatusCommandHandler(f.orderFactory).Handle(ctx, cmd)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
		f.orders.AssertNotCalled(t, "UpdateIfStatus", mock.Anything, mock.Anything, mock.Anything)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should forbid strangers", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		o := openOrder(t, kernel.NewUUID())
		f.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()

		cmd, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), o.ID(), order.Cancelled)
		require.NoError(t, err)

		_, err = commands.NewUpdateOrderStatusCommandHandler(f.orderFactory).Handle(ctx, cmd)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("should pass not found through", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		id := kernel.NewUUID()
		f.orders.On("GetForUpdate", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id)).Once()

		cmd, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), id, order.Open)
		require.NoError(t, err)

		_, err = commands.NewUpdateOrderStatusCommandHandler(f.orderFactory).Handle(ctx, cmd)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should validate the command", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(kernel.UUID{}, kernel.NewUUID(), order.Unknown)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCompleteOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should complete an order waiting for confirmation", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		customerID, executorID := kernel.NewUUID(), kernel.NewUUID()
		o := openOrder(t, customerID)
		price, _ := kernel.MoneyFromInt(100)
		require.NoError(t, o.AssignExecutor(executorID, price, o.CreatedAt()))
		require.NoError(t, o.ChangeStatus(executorID, order.WaitingConfirmation, o.CreatedAt()))

		f.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
		f.orders.On("UpdateIfStatus", ctx, o, order.WaitingConfirmation).Return(nil).Once()
		f.uow.On("Commit", ctx).Return(nil).Once()

		cmd, err := commands.NewCompleteOrderCommand(customerID, o.ID(), 5, "on time")
		require.NoError(t, err)

		got, err := commands.NewCompleteOrderCommandHandler(f.orderFactory).Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, order.Completed, got.Status())
		assert.Equal(t, 5, *got.CustomerRating())
		assert.NotNil(t, got.ActualEndDate())
		f.assertExpectations(t)
	})

	t.Run("should return invalid state for an order still in progress", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		customerID := kernel.NewUUID()
		o := openOrder(t, customerID)
		f.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()

		cmd, err := commands.NewCompleteOrderCommand(customerID, o.ID(), 4, "")
		require.NoError(t, err)

		_, err = commands.NewCompleteOrderCommandHandler(f.orderFactory).Handle(ctx, cmd)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should reject a rating of zero in the constructor", func(t *testing.T) {
		_, err := commands.NewCompleteOrderCommand(kernel.NewUUID(), kernel.NewUUID(), 0, "")
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
