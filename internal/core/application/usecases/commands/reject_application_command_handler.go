package commands

import (
	"context"
	"time"

	"workmarket/internal/core/domain/model/application"
	"workmarket/internal/core/domain/services"
)

type RejectApplicationCommandHandler struct {
	uowFactory UoWFactory
	arbiter    services.ApplicationArbiter
}

func NewRejectApplicationCommandHandler(uowFactory UoWFactory) RejectApplicationCommandHandler {
	return RejectApplicationCommandHandler{
		uowFactory: uowFactory,
		arbiter:    services.NewApplicationArbiter(),
	}
}

// Handle rejects a pending application. The order is not modified.
func (h RejectApplicationCommandHandler) Handle(
	ctx context.Context,
	command RejectApplicationCommand,
) (*application.Application, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer rollback(ctx, uow)

	applicationRepo := uow.ApplicationRepository()

	app, err := applicationRepo.Get(ctx, command.ApplicationID())
	if err != nil {
		return nil, err
	}

	o, err := uow.OrderRepository().Get(ctx, app.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.arbiter.Reject(o, app, command.CustomerID(), command.Reason(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = applicationRepo.UpdateIfStatus(ctx, app, application.Pending); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return app, nil
}
