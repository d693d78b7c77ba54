package queries

import (
	"context"

	"workmarket/internal/core/ports"
)

type ListOrdersQueryHandler struct {
	orders ports.OrderRepository
}

func NewListOrdersQueryHandler(orders ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (Page[OrderView], error) {
	if err := query.Validate(); err != nil {
		return Page[OrderView]{}, err
	}

	offset := (query.Page() - 1) * query.PageSize()
	found, total, err := h.orders.List(ctx, query.Filter(), offset, query.PageSize())
	if err != nil {
		return Page[OrderView]{}, err
	}

	items := make([]OrderView, 0, len(found))
	for _, o := range found {
		items = append(items, NewOrderView(o))
	}

	return Page[OrderView]{
		Items:    items,
		Total:    total,
		Page:     query.Page(),
		PageSize: query.PageSize(),
	}, nil
}
