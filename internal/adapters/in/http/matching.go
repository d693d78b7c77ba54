package http

import (
	"net/http"

	"workmarket/internal/core/application/usecases/queries"
	"workmarket/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetRecommendedOrders handles GET /api/v1/orders/recommended for the calling executor.
func (s *Server) GetRecommendedOrders(ctx echo.Context, params servers.GetRecommendedOrdersParams) error {
	executorID, err := toKernelID("X-User-ID", params.XUserID)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetRecommendedOrdersQuery(executorID, intOrZero(params.Limit))
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.queries.GetRecommendedOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrders(views))
}

// GetRecommendedExecutors handles GET /api/v1/orders/{orderId}/recommended-executors.
func (s *Server) GetRecommendedExecutors(
	ctx echo.Context,
	orderId openapi_types.UUID,
	params servers.GetRecommendedExecutorsParams,
) error {
	orderID, customerID, err := scopedIDs("orderId", orderId, servers.ActorParams{XUserID: params.XUserID})
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetRecommendedExecutorsQuery(customerID, orderID, intOrZero(params.Limit))
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.queries.GetRecommendedExecutors.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toExecutors(views))
}

// FindNearbyOrders handles GET /api/v1/orders/nearby.
func (s *Server) FindNearbyOrders(ctx echo.Context, params servers.FindNearbyOrdersParams) error {
	query, err := queries.NewFindNearbyOrdersQuery(params.Lat, params.Lng, params.RadiusKm, intOrZero(params.Limit))
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.queries.FindNearbyOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrders(views))
}

// FindNearbyExecutors handles GET /api/v1/executors/nearby.
func (s *Server) FindNearbyExecutors(ctx echo.Context, params servers.FindNearbyExecutorsParams) error {
	query, err := queries.NewFindNearbyExecutorsQuery(params.Lat, params.Lng, params.RadiusKm)
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.queries.FindNearbyExecutors.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toExecutors(views))
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
