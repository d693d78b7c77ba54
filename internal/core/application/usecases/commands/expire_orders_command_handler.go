package commands

import (
	"context"
	"errors"

	"workmarket/internal/core/domain/model/order"
	"workmarket/internal/pkg/errs"
)

type ExpireOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewExpireOrdersCommandHandler(uowFactory OrderUoWFactory) ExpireOrdersCommandHandler {
	return ExpireOrdersCommandHandler{uowFactory: uowFactory}
}

// Handle unpublishes one batch of expired orders and returns how many changed.
// Orders whose status moved in the meantime are skipped.
func (h ExpireOrdersCommandHandler) Handle(ctx context.Context, command ExpireOrdersCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer rollback(ctx, uow)

	orderRepo := uow.OrderRepository()

	expired, err := orderRepo.FindExpired(ctx, command.Now(), command.BatchSize())
	if err != nil {
		return 0, err
	}

	count := 0
	for _, o := range expired {
		if !o.IsExpired(command.Now()) {
			continue
		}
		o.Unpublish(command.Now())

		err = orderRepo.UpdateIfStatus(ctx, o, order.Open)
		if errors.Is(err, errs.ErrConflict) {
			continue
		}
		if err != nil {
			return 0, err
		}
		count++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return count, nil
}
