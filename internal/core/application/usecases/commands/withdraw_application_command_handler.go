package commands

import (
	"context"
	"time"

	"workmarket/internal/core/domain/model/application"
	"workmarket/internal/core/domain/services"
)

type WithdrawApplicationCommandHandler struct {
	uowFactory UoWFactory
	arbiter    services.ApplicationArbiter
}

func NewWithdrawApplicationCommandHandler(uowFactory UoWFactory) WithdrawApplicationCommandHandler {
	return WithdrawApplicationCommandHandler{
		uowFactory: uowFactory,
		arbiter:    services.NewApplicationArbiter(),
	}
}

// Handle lets the submitting executor withdraw a pending application. A
// concurrent accept or reject makes the compare-and-swap fail with a conflict.
func (h WithdrawApplicationCommandHandler) Handle(
	ctx context.Context,
	command WithdrawApplicationCommand,
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

	if err = h.arbiter.Withdraw(app, command.ExecutorID(), time.Now().UTC()); err != nil {
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
