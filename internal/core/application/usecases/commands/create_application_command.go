package commands

import (
	"errors"

	"workmarket/internal/core/domain/model/application"
	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/pkg/errs"
	"workmarket/internal/pkg/guard"
)

var ErrCreateApplicationCommandIsNotConstructed = errors.New(
	"CreateApplicationCommand must be created via NewCreateApplicationCommand constructor",
)

// CreateApplicationCommand submits an executor's bid on an order.
type CreateApplicationCommand struct {
	executorID kernel.UUID
	orderID    kernel.UUID
	bid        application.Bid
	guard      guard.ConstructorGuard
}

func NewCreateApplicationCommand(executorID, orderID kernel.UUID, bid application.Bid) (CreateApplicationCommand, error) {
	var errList []error
	if err := executorID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("executorId", err))
	}
	if err := orderID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("orderId", err))
	}
	errList = append(errList, bid.Validate())
	if err := errors.Join(errList...); err != nil {
		return CreateApplicationCommand{}, err
	}

	return CreateApplicationCommand{
		executorID: executorID,
		orderID:    orderID,
		bid:        bid,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateApplicationCommand) Validate() error {
	return c.guard.Validate(ErrCreateApplicationCommandIsNotConstructed)
}

func (c CreateApplicationCommand) ExecutorID() kernel.UUID { return c.executorID }
func (c CreateApplicationCommand) OrderID() kernel.UUID { return c.orderID }
func (c CreateApplicationCommand) Bid() application.Bid { return c.bid }
