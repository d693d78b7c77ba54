package queries

import (
	"context"

	"workmarket/internal/core/domain/model/order"
	"workmarket/internal/core/ports"
	"workmarket/internal/pkg/errs"
)

type GetOrderQueryHandler struct {
	orders ports.OrderRepository
}

func NewGetOrderQueryHandler(orders ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle returns the order. Drafts exist for their customer only; anyone
// else gets errs.ObjectNotFoundError. Every read by someone other than the
// customer (including anonymous reads) increments viewsCount.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return OrderView{}, err
	}

	viewer := query.ViewerID()
	isOwner := viewer != nil && o.IsOwnedBy(*viewer)
	if o.Status() == order.Draft && !isOwner {
		return OrderView{}, errs.NewObjectNotFoundError("orderId", o.ID().String())
	}

	view := NewOrderView(o)
	if !isOwner {
		if err = h.orders.IncrementViews(ctx, o.ID()); err != nil {
			return OrderView{}, err
		}
		view.ViewsCount++
	}

	return view, nil
}
