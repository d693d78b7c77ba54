package http

import (
	"net/http"

	"workmarket/internal/core/application/usecases/commands"
	"workmarket/internal/core/application/usecases/queries"
	"workmarket/internal/core/domain/model/application"
	"workmarket/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListOrderApplications handles GET /api/v1/orders/{orderId}/applications.
func (s *Server) ListOrderApplications(ctx echo.Context, orderId openapi_types.UUID, params servers.ActorParams) error {
	orderID, customerID, err := scopedIDs("orderId", orderId, params)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListOrderApplicationsQuery(customerID, orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.queries.ListOrderApplications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Application, len(views))
	for i, v := range views {
		response[i] = toApplication(v)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateApplication handles POST /api/v1/orders/{orderId}/applications.
func (s *Server) CreateApplication(ctx echo.Context, orderId openapi_types.UUID, params servers.ActorParams) error {
	var newApplication servers.NewApplication
	if err := ctx.Bind(&newApplication); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, executorID, err := scopedIDs("orderId", orderId, params)
	if err != nil {
		return s.fail(ctx, err)
	}
	price, err := parseMoney("proposedPrice", newApplication.ProposedPrice)
	if err != nil {
		return s.fail(ctx, err)
	}
	bid, err := application.NewBid(
		price,
		newApplication.ProposedDurationDays,
		valueOrEmpty(newApplication.Message),
		newApplication.AvailableFrom,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateApplicationCommand(executorID, orderID, bid)
	if err != nil {
		return s.fail(ctx, err)
	}

	app, err := s.commands.CreateApplication.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toApplication(queries.NewApplicationView(app)))
}

// AcceptApplication handles POST /api/v1/applications/{applicationId}/accept.
// The response is the order with its executor assigned.
func (s *Server) AcceptApplication(ctx echo.Context, applicationId openapi_types.UUID, params servers.ActorParams) error {
	applicationID, customerID, err := scopedIDs("applicationId", applicationId, params)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAcceptApplicationCommand(customerID, applicationID)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.commands.AcceptApplication.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(queries.NewOrderView(o)))
}

// RejectApplication handles POST /api/v1/applications/{applicationId}/reject.
// The body is optional.
func (s *Server) RejectApplication(ctx echo.Context, applicationId openapi_types.UUID, params servers.ActorParams) error {
	var rejection servers.Rejection
	if err := ctx.Bind(&rejection); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	applicationID, customerID, err := scopedIDs("applicationId", applicationId, params)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRejectApplicationCommand(customerID, applicationID, valueOrEmpty(rejection.Reason))
	if err != nil {
		return s.fail(ctx, err)
	}

	app, err := s.commands.RejectApplication.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toApplication(queries.NewApplicationView(app)))
}

// WithdrawApplication handles POST /api/v1/applications/{applicationId}/withdraw.
func (s *Server) WithdrawApplication(ctx echo.Context, applicationId openapi_types.UUID, params servers.ActorParams) error {
	applicationID, executorID, err := scopedIDs("applicationId", applicationId, params)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewWithdrawApplicationCommand(executorID, applicationID)
	if err != nil {
		return s.fail(ctx, err)
	}

	app, err := s.commands.WithdrawApplication.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toApplication(queries.NewApplicationView(app)))
}
