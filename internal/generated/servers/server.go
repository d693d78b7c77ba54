// Package servers holds the HTTP contract of the marketplace API: the OpenAPI
// document, the wire types and an echo wrapper that binds path, query and
// header parameters before calling a ServerInterface implementation.
package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List orders, newest first
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// Create an order as draft or published
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context, params ActorParams) error
	// Visible orders around a point, nearest first
	// (GET /api/v1/orders/nearby)
	FindNearbyOrders(ctx echo.Context, params FindNearbyOrdersParams) error
	// Orders recommended to the calling executor
	// (GET /api/v1/orders/recommended)
	GetRecommendedOrders(ctx echo.Context, params GetRecommendedOrdersParams) error
	// Get an order; views by others are counted
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId openapi_types.UUID, params GetOrderParams) error
	// Move an order through its lifecycle
	// (PATCH /api/v1/orders/{orderId}/status)
	UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID, params ActorParams) error
	// Confirm completion with a rating
	// (POST /api/v1/orders/{orderId}/complete)
	CompleteOrder(ctx echo.Context, orderId openapi_types.UUID, params ActorParams) error
	// Applications of an order, for its customer
	// (GET /api/v1/orders/{orderId}/applications)
	ListOrderApplications(ctx echo.Context, orderId openapi_types.UUID, params ActorParams) error
	// Apply to an order
	// (POST /api/v1/orders/{orderId}/applications)
	CreateApplication(ctx echo.Context, orderId openapi_types.UUID, params ActorParams) error
	// Executors who could take the order
	// (GET /api/v1/orders/{orderId}/recommended-executors)
	GetRecommendedExecutors(ctx echo.Context, orderId openapi_types.UUID, params GetRecommendedExecutorsParams) error
	// Accept an application and assign its executor
	// (POST /api/v1/applications/{applicationId}/accept)
	AcceptApplication(ctx echo.Context, applicationId openapi_types.UUID, params ActorParams) error
	// Reject an application
	// (POST /api/v1/applications/{applicationId}/reject)
	RejectApplication(ctx echo.Context, applicationId openapi_types.UUID, params ActorParams) error
	// Withdraw an own application
	// (POST /api/v1/applications/{applicationId}/withdraw)
	WithdrawApplication(ctx echo.Context, applicationId openapi_types.UUID, params ActorParams) error
	// Available executors around a point
	// (GET /api/v1/executors/nearby)
	FindNearbyExecutors(ctx echo.Context, params FindNearbyExecutorsParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var err error
	var params ListOrdersParams

	if err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status); err != nil {
		return invalidParameter("status", err)
	}
	if err = runtime.BindQueryParameter("form", true, false, "categoryId", ctx.QueryParams(), &params.CategoryId); err != nil {
		return invalidParameter("categoryId", err)
	}
	if err = runtime.BindQueryParameter("form", true, false, "customerId", ctx.QueryParams(), &params.CustomerId); err != nil {
		return invalidParameter("customerId", err)
	}
	if err = runtime.BindQueryParameter("form", true, false, "executorId", ctx.QueryParams(), &params.ExecutorId); err != nil {
		return invalidParameter("executorId", err)
	}
	if err = runtime.BindQueryParameter("form", true, false, "urgency", ctx.QueryParams(), &params.Urgency); err != nil {
		return invalidParameter("urgency", err)
	}
	if err = runtime.BindQueryParameter("form", true, false, "visible", ctx.QueryParams(), &params.Visible); err != nil {
		return invalidParameter("visible", err)
	}
	if err = runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &params.Page); err != nil {
		return invalidParameter("page", err)
	}
	if err = runtime.BindQueryParameter("form", true, false, "pageSize", ctx.QueryParams(), &params.PageSize); err != nil {
		return invalidParameter("pageSize", err)
	}
	if params.XUserID, err = bindOptionalUserHeader(ctx); err != nil {
		return err
	}

	return w.Handler.ListOrders(ctx, params)
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	params, err := bindActor(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CreateOrder(ctx, params)
}

// FindNearbyOrders converts echo context to params.
func (w *ServerInterfaceWrapper) FindNearbyOrders(ctx echo.Context) error {
	var err error
	var params FindNearbyOrdersParams

	if err = runtime.BindQueryParameter("form", true, true, "lat", ctx.QueryParams(), &params.Lat); err != nil {
		return invalidParameter("lat", err)
	}
	if err = runtime.BindQueryParameter("form", true, true, "lng", ctx.QueryParams(), &params.Lng); err != nil {
		return invalidParameter("lng", err)
	}
	if err = runtime.BindQueryParameter("form", true, true, "radiusKm", ctx.QueryParams(), &params.RadiusKm); err != nil {
		return invalidParameter("radiusKm", err)
	}
	if err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return invalidParameter("limit", err)
	}

	return w.Handler.FindNearbyOrders(ctx, params)
}

// GetRecommendedOrders converts echo context to params.
func (w *ServerInterfaceWrapper) GetRecommendedOrders(ctx echo.Context) error {
	var err error
	var params GetRecommendedOrdersParams

	if err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return invalidParameter("limit", err)
	}
	if params.XUserID, err = bindUserHeader(ctx, true); err != nil {
		return err
	}

	return w.Handler.GetRecommendedOrders(ctx, params)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderId, err := bindPathID(ctx, "orderId")
	if err != nil {
		return err
	}

	var params GetOrderParams
	if params.XUserID, err = bindOptionalUserHeader(ctx); err != nil {
		return err
	}

	return w.Handler.GetOrder(ctx, orderId, params)
}

// UpdateOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	orderId, params, err := bindScopedActor(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrderStatus(ctx, orderId, params)
}

// CompleteOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CompleteOrder(ctx echo.Context) error {
	orderId, params, err := bindScopedActor(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.CompleteOrder(ctx, orderId, params)
}

// ListOrderApplications converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrderApplications(ctx echo.Context) error {
	orderId, params, err := bindScopedActor(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.ListOrderApplications(ctx, orderId, params)
}

// CreateApplication converts echo context to params.
func (w *ServerInterfaceWrapper) CreateApplication(ctx echo.Context) error {
	orderId, params, err := bindScopedActor(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.CreateApplication(ctx, orderId, params)
}

// GetRecommendedExecutors converts echo context to params.
func (w *ServerInterfaceWrapper) GetRecommendedExecutors(ctx echo.Context) error {
	orderId, err := bindPathID(ctx, "orderId")
	if err != nil {
		return err
	}

	var params GetRecommendedExecutorsParams
	if err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return invalidParameter("limit", err)
	}
	if params.XUserID, err = bindUserHeader(ctx, true); err != nil {
		return err
	}

	return w.Handler.GetRecommendedExecutors(ctx, orderId, params)
}

// AcceptApplication converts echo context to params.
func (w *ServerInterfaceWrapper) AcceptApplication(ctx echo.Context) error {
	applicationId, params, err := bindScopedActor(ctx, "applicationId")
	if err != nil {
		return err
	}
	return w.Handler.AcceptApplication(ctx, applicationId, params)
}

// RejectApplication converts echo context to params.
func (w *ServerInterfaceWrapper) RejectApplication(ctx echo.Context) error {
	applicationId, params, err := bindScopedActor(ctx, "applicationId")
	if err != nil {
		return err
	}
	return w.Handler.RejectApplication(ctx, applicationId, params)
}

// WithdrawApplication converts echo context to params.
func (w *ServerInterfaceWrapper) WithdrawApplication(ctx echo.Context) error {
	applicationId, params, err := bindScopedActor(ctx, "applicationId")
	if err != nil {
		return err
	}
	return w.Handler.WithdrawApplication(ctx, applicationId, params)
}

// FindNearbyExecutors converts echo context to params.
func (w *ServerInterfaceWrapper) FindNearbyExecutors(ctx echo.Context) error {
	var err error
	var params FindNearbyExecutorsParams

	if err = runtime.BindQueryParameter("form", true, true, "lat", ctx.QueryParams(), &params.Lat); err != nil {
		return invalidParameter("lat", err)
	}
	if err = runtime.BindQueryParameter("form", true, true, "lng", ctx.QueryParams(), &params.Lng); err != nil {
		return invalidParameter("lng", err)
	}
	if err = runtime.BindQueryParameter("form", true, true, "radiusKm", ctx.QueryParams(), &params.RadiusKm); err != nil {
		return invalidParameter("radiusKm", err)
	}

	return w.Handler.FindNearbyExecutors(ctx, params)
}

// UserIDHeader carries the identity of the calling user.
const UserIDHeader = "X-User-ID"

func invalidParameter(name string, err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
}

func bindPathID(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, invalidParameter(name, err)
	}
	return id, nil
}

func bindUserHeader(ctx echo.Context, required bool) (XUserID, error) {
	var id XUserID

	valueList, found := ctx.Request().Header[http.CanonicalHeaderKey(UserIDHeader)]
	if !found {
		if required {
			return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Header parameter %s is required, but not found", UserIDHeader))
		}
		return id, nil
	}
	if n := len(valueList); n != 1 {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for %s, got %d", UserIDHeader, n))
	}

	err := runtime.BindStyledParameterWithOptions("simple", UserIDHeader, valueList[0], &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: required})
	if err != nil {
		return id, invalidParameter(UserIDHeader, err)
	}
	return id, nil
}

func bindOptionalUserHeader(ctx echo.Context) (*XUserID, error) {
	if _, found := ctx.Request().Header[http.CanonicalHeaderKey(UserIDHeader)]; !found {
		return nil, nil
	}
	id, err := bindUserHeader(ctx, false)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func bindActor(ctx echo.Context) (ActorParams, error) {
	id, err := bindUserHeader(ctx, true)
	if err != nil {
		return ActorParams{}, err
	}
	return ActorParams{XUserID: id}, nil
}

func bindScopedActor(ctx echo.Context, pathParam string) (openapi_types.UUID, ActorParams, error) {
	id, err := bindPathID(ctx, pathParam)
	if err != nil {
		return id, ActorParams{}, err
	}
	params, err := bindActor(ctx)
	return id, params, err
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the routes under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/orders", wrapper.ListOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/orders/nearby", wrapper.FindNearbyOrders)
	router.GET(baseURL+"/api/v1/orders/recommended", wrapper.GetRecommendedOrders)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.GetOrder)
	router.PATCH(baseURL+"/api/v1/orders/:orderId/status", wrapper.UpdateOrderStatus)
	router.POST(baseURL+"/api/v1/orders/:orderId/complete", wrapper.CompleteOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId/applications", wrapper.ListOrderApplications)
	router.POST(baseURL+"/api/v1/orders/:orderId/applications", wrapper.CreateApplication)
	router.GET(baseURL+"/api/v1/orders/:orderId/recommended-executors", wrapper.GetRecommendedExecutors)
	router.POST(baseURL+"/api/v1/applications/:applicationId/accept", wrapper.AcceptApplication)
	router.POST(baseURL+"/api/v1/applications/:applicationId/reject", wrapper.RejectApplication)
	router.POST(baseURL+"/api/v1/applications/:applicationId/withdraw", wrapper.WithdrawApplication)
	router.GET(baseURL+"/api/v1/executors/nearby", wrapper.FindNearbyExecutors)
}
