package commands

import (
	"context"
	"errors"
	"time"

	"workmarket/internal/core/domain/model/application"
	"workmarket/internal/core/domain/services"
	"workmarket/internal/pkg/errs"
)

// CreateApplicationCommandHandler stores a pending application and bumps the
// order's applications counter in one transaction. The order row is locked so
// submissions serialize with acceptance.
type CreateApplicationCommandHandler struct {
	uowFactory UoWFactory
	arbiter    services.ApplicationArbiter
}

func NewCreateApplicationCommandHandler(uowFactory UoWFactory) CreateApplicationCommandHandler {
	return CreateApplicationCommandHandler{
		uowFactory: uowFactory,
		arbiter:    services.NewApplicationArbiter(),
	}
}

// Handle returns the new application.
//
// Errors: ObjectNotFoundError (order), InvalidStateError (order not open),
// ForbiddenError (own order), ConflictError (already applied).
func (h CreateApplicationCommandHandler) Handle(
	ctx context.Context,
	command CreateApplicationCommand,
) (*application.Application, error) {
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

	o, err := orderRepo.GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	existing, err := applicationRepo.FindByOrderAndExecutor(ctx, command.OrderID(), command.ExecutorID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	app, err := h.arbiter.Submit(o, command.ExecutorID(), command.Bid(), existing, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = applicationRepo.Add(ctx, app); err != nil {
		return nil, err
	}

	if err = orderRepo.IncrementApplications(ctx, o.ID()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return app, nil
}
