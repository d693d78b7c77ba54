package commands

import (
	"context"
	"fmt"
	"time"

	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/core/domain/model/order"
	"workmarket/internal/core/ports"
	"workmarket/internal/pkg/errs"
)

// CreateOrderCommandHandler validates the category against the catalog and
// stores the new order.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	categories ports.CategoryChecker
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, categories ports.CategoryChecker) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		categories: categories,
	}
}

// Handle returns the created order. Unknown categories yield errs.ObjectNotFoundError.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	categoryID := command.Details().CategoryID
	exists, err := h.categories.Exists(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("check category: %w", err)
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("categoryId", categoryID)
	}

	o, err := order.NewOrder(kernel.NewUUID(), command.CustomerID(), command.Details(), command.Publish(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer rollback(ctx, uow)

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
