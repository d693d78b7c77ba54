package ports

import (
	"context"

	"workmarket/internal/core/domain/model/application"
	"workmarket/internal/core/domain/model/kernel"
)

// AppliedOrder is one application of an executor reduced to what the ranker needs.
type AppliedOrder struct {
	OrderID    kernel.UUID
	CategoryID kernel.UUID
}

type ApplicationRepository interface {
	// Add persists a new application. A second application for the same order
	// and executor yields errs.ConflictError.
	Add(ctx context.Context, aggregate *application.Application) error

	// UpdateIfStatus writes the application only if its stored status still
	// equals expected; otherwise it returns errs.ConflictError.
	UpdateIfStatus(ctx context.Context, aggregate *application.Application, expected application.Status) error

	Get(ctx context.Context, id kernel.UUID) (*application.Application, error)

	// FindByOrderAndExecutor returns errs.ObjectNotFoundError when the executor
	// never applied to the order.
	FindByOrderAndExecutor(ctx context.Context, orderID, executorID kernel.UUID) (*application.Application, error)

	// ListByOrder returns all applications of the order, oldest first.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*application.Application, error)

	// ListAppliedOrders returns every order the executor applied to, in any status.
	ListAppliedOrders(ctx context.Context, executorID kernel.UUID) ([]AppliedOrder, error)
}
