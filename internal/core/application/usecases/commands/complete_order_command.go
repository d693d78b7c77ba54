package commands

import (
	"errors"

	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/core/domain/model/order"
	"workmarket/internal/pkg/errs"
	"workmarket/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand confirms finished work and rates the executor.
type CompleteOrderCommand struct {
	customerID kernel.UUID
	orderID    kernel.UUID
	rating     int
	review     string
	guard      guard.ConstructorGuard
}

func NewCompleteOrderCommand(customerID, orderID kernel.UUID, rating int, review string) (CompleteOrderCommand, error) {
	var errList []error
	if err := customerID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("customerId", err))
	}
	if err := orderID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("orderId", err))
	}
	if rating < order.MinRating || rating > order.MaxRating {
		errList = append(errList, errs.NewValueIsOutOfRangeError("rating", rating, order.MinRating, order.MaxRating))
	}
	if err := errors.Join(errList...); err != nil {
		return CompleteOrderCommand{}, err
	}

	return CompleteOrderCommand{
		customerID: customerID,
		orderID:    orderID,
		rating:     rating,
		review:     review,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

func (c CompleteOrderCommand) CustomerID() kernel.UUID { return c.customerID }
func (c CompleteOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c CompleteOrderCommand) Rating() int { return c.rating }
func (c CompleteOrderCommand) Review() string { return c.review }
