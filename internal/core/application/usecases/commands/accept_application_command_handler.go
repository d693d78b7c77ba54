package commands

import (
	"context"
	"errors"
	"time"

	"workmarket/internal/core/domain/model/application"
	"workmarket/internal/core/domain/model/order"
	"workmarket/internal/core/domain/services"
	"workmarket/internal/pkg/errs"
)

// AcceptApplicationCommandHandler runs the arbitration of an order in a single
// transaction:
//   - the order row is locked and its state re-validated
//   - the chosen application becomes Accepted
//   - every other pending application becomes Rejected
//   - the order moves to InProgress with the executor and agreed price
//
// All writes are compare-and-swap on the status that was read. Losing the race
// for the order yields errs.ConflictError and rolls everything back. A sibling
// withdrawn in the meantime is left as it is.
type AcceptApplicationCommandHandler struct {
	uowFactory UoWFactory
	arbiter    services.ApplicationArbiter
}

func NewAcceptApplicationCommandHandler(uowFactory UoWFactory) AcceptApplicationCommandHandler {
	return AcceptApplicationCommandHandler{
		uowFactory: uowFactory,
		arbiter:    services.NewApplicationArbiter(),
	}
}

func (h AcceptApplicationCommandHandler) Handle(ctx context.Context, command AcceptApplicationCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer rollback(ctx, uow)

	orderRepo := uow.OrderRepository()
	applicationRepo := uow.ApplicationRepository()

	app, err := applicationRepo.Get(ctx, command.ApplicationID())
	if err != nil {
		return nil, err
	}

	o, err := orderRepo.GetForUpdate(ctx, app.OrderID())
	if err != nil {
		return nil, err
	}

	// siblings are read under the order lock and include a fresh copy of app
	siblings, err := applicationRepo.ListByOrder(ctx, o.ID())
	if err != nil {
		return nil, err
	}
	for _, s := range siblings {
		if s.ID().IsEqual(app.ID()) {
			app = s
		}
	}

	rejected, err := h.arbiter.Accept(o, app, siblings, command.CustomerID(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateIfStatus(ctx, o, order.Open); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return nil, errs.NewConflictError("order", "already assigned")
		}
		return nil, err
	}

	if err = applicationRepo.UpdateIfStatus(ctx, app, application.Pending); err != nil {
		return nil, err
	}

	for _, s := range rejected {
		err = applicationRepo.UpdateIfStatus(ctx, s, application.Pending)
		if errors.Is(err, errs.ErrConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
