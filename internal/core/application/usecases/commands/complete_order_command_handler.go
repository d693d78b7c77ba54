package commands

import (
	"context"
	"time"

	"workmarket/internal/core/domain/model/order"
)

type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{uowFactory: uowFactory}
}

// Handle moves a WaitingConfirmation order to Completed and stores the rating.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, command CompleteOrderCommand) (*order.Order, error) {
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

	err = o.Complete(command.CustomerID(), command.Rating(), command.Review(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateIfStatus(ctx, o, order.WaitingConfirmation); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
