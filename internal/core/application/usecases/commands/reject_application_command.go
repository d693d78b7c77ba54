package commands

import (
	"errors"

	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/pkg/guard"
)

var ErrRejectApplicationCommandIsNotConstructed = errors.New(
	"RejectApplicationCommand must be created via NewRejectApplicationCommand constructor",
)

// RejectApplicationCommand turns down one application. An empty reason is
// replaced by the default one.
type RejectApplicationCommand struct {
	customerID    kernel.UUID
	applicationID kernel.UUID
	reason        string
	guard         guard.ConstructorGuard
}

func NewRejectApplicationCommand(customerID, applicationID kernel.UUID, reason string) (RejectApplicationCommand, error) {
	if err := errors.Join(
		requireID("customerId", customerID),
		requireID("applicationId", applicationID),
	); err != nil {
		return RejectApplicationCommand{}, err
	}

	return RejectApplicationCommand{
		customerID:    customerID,
		applicationID: applicationID,
		reason:        reason,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c RejectApplicationCommand) Validate() error {
	return c.guard.Validate(ErrRejectApplicationCommandIsNotConstructed)
}

func (c RejectApplicationCommand) CustomerID() kernel.UUID { return c.customerID }
func (c RejectApplicationCommand) ApplicationID() kernel.UUID { return c.applicationID }
func (c RejectApplicationCommand) Reason() string { return c.reason }
