package services

import (
	"time"

	"workmarket/internal/core/domain/model/application"
	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/core/domain/model/order"
	"workmarket/internal/pkg/errs"
)

// ApplicationArbiter decides the outcome of application operations for an order.
// It mutates the aggregates it is given and reports which ones changed; the
// caller persists them inside one unit of work.
//
// Business rules:
//   - Only Open orders accept applications, and not from their own customer
//   - One application per executor and order
//   - Only the customer accepts or rejects, only the submitter withdraws
//   - Accepting one application rejects every other pending one and assigns the order
//
// Example usage:
//
//	arbiter := services.NewApplicationArbiter()
//	rejected, err := arbiter.Accept(o, app, siblings, customerID, time.Now())
//	if errors.Is(err, errs.ErrConflict) {
//	    // another accept won the race
//	}
type ApplicationArbiter struct{}

func NewApplicationArbiter() ApplicationArbiter {
	return ApplicationArbiter{}
}

// Submit creates a pending application of executorID for o. existing is the
// application the executor already has for this order, if any.
func (a ApplicationArbiter) Submit(
	o *order.Order,
	executorID kernel.UUID,
	bid application.Bid,
	existing *application.Application,
	now time.Time,
) (*application.Application, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := o.ValidateAcceptsApplications(); err != nil {
		return nil, err
	}
	if o.IsOwnedBy(executorID) {
		return nil, errs.NewForbiddenError(executorID, "apply to own order")
	}
	if existing != nil {
		return nil, errs.NewConflictError("application", "already exists for this executor and order")
	}

	return application.NewApplication(kernel.NewUUID(), o.ID(), executorID, bid, now)
}

// Accept makes app the winning application of o on behalf of customerID.
// siblings are the other applications of the order; every pending one is
// rejected and returned.
//
// Errors:
//   - ForbiddenError when customerID does not own the order
//   - ConflictError when the order is already assigned or app was already decided
//   - InvalidStateError when the order is not Open or app was withdrawn
func (a ApplicationArbiter) Accept(
	o *order.Order,
	app *application.Application,
	siblings []*application.Application,
	customerID kernel.UUID,
	now time.Time,
) ([]*application.Application, error) {
	if err := a.validatePair(o, app); err != nil {
		return nil, err
	}
	if !o.IsOwnedBy(customerID) {
		return nil, errs.NewForbiddenError(customerID, "accept applications of order "+o.ID().String())
	}

	switch {
	case o.Status().IsAssigned():
		return nil, errs.NewConflictError("order", "already assigned")
	case o.Status() != order.Open:
		return nil, errs.NewInvalidStateError("order", o.Status(), "only open orders can be assigned")
	}
	if app.Status().IsDecided() {
		return nil, errs.NewConflictError("application", "already "+app.Status().String())
	}

	if err := app.Accept(now); err != nil {
		return nil, err
	}
	if err := o.AssignExecutor(app.ExecutorID(), app.Bid().ProposedPrice(), now); err != nil {
		return nil, err
	}

	var rejected []*application.Application
	for _, s := range siblings {
		if s.ID().IsEqual(app.ID()) || s.Status() != application.Pending {
			continue
		}
		if err := s.Reject(application.OtherExecutorSelectedReason, now); err != nil {
			return nil, err
		}
		rejected = append(rejected, s)
	}

	return rejected, nil
}

// Reject turns down a pending application of o on behalf of customerID.
func (a ApplicationArbiter) Reject(
	o *order.Order,
	app *application.Application,
	customerID kernel.UUID,
	reason string,
	now time.Time,
) error {
	if err := a.validatePair(o, app); err != nil {
		return err
	}
	if !o.IsOwnedBy(customerID) {
		return errs.NewForbiddenError(customerID, "reject applications of order "+o.ID().String())
	}
	return app.Reject(reason, now)
}

// Withdraw lets the submitting executor take a pending application back.
func (a ApplicationArbiter) Withdraw(app *application.Application, executorID kernel.UUID, now time.Time) error {
	if err := app.Validate(); err != nil {
		return err
	}
	if !app.IsSubmittedBy(executorID) {
		return errs.NewForbiddenError(executorID, "withdraw application "+app.ID().String())
	}
	return app.Withdraw(now)
}

func (a ApplicationArbiter) validatePair(o *order.Order, app *application.Application) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := app.Validate(); err != nil {
		return err
	}
	if !app.OrderID().IsEqual(o.ID()) {
		return errs.NewObjectNotFoundError("applicationId", app.ID())
	}
	return nil
}
