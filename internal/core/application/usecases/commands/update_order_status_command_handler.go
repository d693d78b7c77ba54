package commands

import (
	"context"
	"time"

	"workmarket/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler applies a direct status change. The write is a
// compare-and-swap on the status read under the row lock.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{uowFactory: uowFactory}
}

func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, command UpdateOrderStatusCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer rollback(ctx, uow)

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	previous := o.Status()
	if err = o.ChangeStatus(command.ActorID(), command.Status(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateIfStatus(ctx, o, previous); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
