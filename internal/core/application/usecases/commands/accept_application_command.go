package commands

import (
	"errors"

	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/pkg/errs"
	"workmarket/internal/pkg/guard"
)

var ErrAcceptApplicationCommandIsNotConstructed = errors.New(
	"AcceptApplicationCommand must be created via NewAcceptApplicationCommand constructor",
)

// AcceptApplicationCommand selects the winning application of an order.
//
// Example:
//
//	cmd, _ := NewAcceptApplicationCommand(customerID, applicationID)
//	o, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    // the order was assigned by a concurrent request
//	}
type AcceptApplicationCommand struct {
	customerID    kernel.UUID
	applicationID kernel.UUID
	guard         guard.ConstructorGuard
}

func NewAcceptApplicationCommand(customerID, applicationID kernel.UUID) (AcceptApplicationCommand, error) {
	if err := errors.Join(
		requireID("customerId", customerID),
		requireID("applicationId", applicationID),
	); err != nil {
		return AcceptApplicationCommand{}, err
	}

	return AcceptApplicationCommand{
		customerID:    customerID,
		applicationID: applicationID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c AcceptApplicationCommand) Validate() error {
	return c.guard.Validate(ErrAcceptApplicationCommandIsNotConstructed)
}

func (c AcceptApplicationCommand) CustomerID() kernel.UUID { return c.customerID }
func (c AcceptApplicationCommand) ApplicationID() kernel.UUID { return c.applicationID }

func requireID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}
