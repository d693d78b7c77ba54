package queries

import (
	"errors"

	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/pkg/errs"
	"workmarket/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads one order. viewerID is nil for anonymous callers.
type GetOrderQuery struct {
	orderID  kernel.UUID
	viewerID *kernel.UUID
	guard    guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID, viewerID *kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	return GetOrderQuery{orderID: orderID, viewerID: viewerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }
func (q GetOrderQuery) ViewerID() *kernel.UUID { return q.viewerID }
