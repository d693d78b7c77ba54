package commands

import (
	"errors"

	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/core/domain/model/order"
	"workmarket/internal/pkg/errs"
	"workmarket/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand posts a new order on behalf of a customer. With publish set
// the order is immediately Open, otherwise it is kept as a Draft.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, order.Details{
//	    Title:      "Move a piano",
//	    CategoryID: movingID,
//	    Urgency:    order.UrgencyHigh,
//	    PriceType:  order.PriceTypeFixed,
//	}, true)
type CreateOrderCommand struct {
	customerID kernel.UUID
	details    order.Details
	publish    bool
	guard      guard.ConstructorGuard
}

func NewCreateOrderCommand(customerID kernel.UUID, details order.Details, publish bool) (CreateOrderCommand, error) {
	if err := customerID.Validate(); err != nil {
		return CreateOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	if err := details.CategoryID.Validate(); err != nil {
		return CreateOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("categoryId", err)
	}

	return CreateOrderCommand{
		customerID: customerID,
		details:    details,
		publish:    publish,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

func (c CreateOrderCommand) Publish() bool {
	return c.publish
}
