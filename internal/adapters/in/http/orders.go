package http

import (
	"net/http"

	"workmarket/internal/core/application/usecases/commands"
	"workmarket/internal/core/application/usecases/queries"
	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/core/domain/model/order"
	"workmarket/internal/core/ports"
	"workmarket/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	filter, err := toOrderFilter(params)
	if err != nil {
		return s.fail(ctx, err)
	}

	page, pageSize := 0, 0
	if params.Page != nil {
		page = *params.Page
	}
	if params.PageSize != nil {
		pageSize = *params.PageSize
	}

	result, err := s.queries.ListOrders.Handle(ctx.Request().Context(), queries.NewListOrdersQuery(filter, page, pageSize))
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderPage{
		Items:    toOrders(result.Items),
		Total:    result.Total,
		Page:     result.Page,
		PageSize: result.PageSize,
	})
}

// CreateOrder handles POST /api/v1/orders. Orders are published unless the
// body sets publish to false.
func (s *Server) CreateOrder(ctx echo.Context, params servers.ActorParams) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := toKernelID("X-User-ID", params.XUserID)
	if err != nil {
		return s.fail(ctx, err)
	}
	details, err := toOrderDetails(newOrder)
	if err != nil {
		return s.fail(ctx, err)
	}
	publish := newOrder.Publish == nil || *newOrder.Publish

	cmd, err := commands.NewCreateOrderCommand(customerID, details, publish)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrder(queries.NewOrderView(o)))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID, params servers.GetOrderParams) error {
	orderID, err := toKernelID("orderId", orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	viewerID, err := toOptionalKernelID("X-User-ID", params.XUserID)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, viewerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(view))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID, params servers.ActorParams) error {
	var change servers.StatusChange
	if err := ctx.Bind(&change); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, actorID, err := scopedIDs("orderId", orderId, params)
	if err != nil {
		return s.fail(ctx, err)
	}
	status, err := order.ParseStatus(change.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(actorID, orderID, status)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.commands.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(queries.NewOrderView(o)))
}

// CompleteOrder handles POST /api/v1/orders/{orderId}/complete.
func (s *Server) CompleteOrder(ctx echo.Context, orderId openapi_types.UUID, params servers.ActorParams) error {
	var completion servers.Completion
	if err := ctx.Bind(&completion); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, customerID, err := scopedIDs("orderId", orderId, params)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(customerID, orderID, completion.Rating, valueOrEmpty(completion.Review))
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.commands.CompleteOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(queries.NewOrderView(o)))
}

func scopedIDs(pathName string, pathID openapi_types.UUID, params servers.ActorParams) (resourceID, actorID kernel.UUID, err error) {
	if resourceID, err = toKernelID(pathName, pathID); err != nil {
		return
	}
	actorID, err = toKernelID("X-User-ID", params.XUserID)
	return
}

func toOrderFilter(params servers.ListOrdersParams) (ports.OrderFilter, error) {
	var filter ports.OrderFilter
	var err error

	if params.Status != nil {
		for _, name := range *params.Status {
			status, parseErr := order.ParseStatus(name)
			if parseErr != nil {
				return ports.OrderFilter{}, parseErr
			}
			filter.Statuses = append(filter.Statuses, status)
		}
	}
	if filter.CategoryID, err = toOptionalKernelID("categoryId", params.CategoryId); err != nil {
		return ports.OrderFilter{}, err
	}
	if filter.CustomerID, err = toOptionalKernelID("customerId", params.CustomerId); err != nil {
		return ports.OrderFilter{}, err
	}
	if filter.ExecutorID, err = toOptionalKernelID("executorId", params.ExecutorId); err != nil {
		return ports.OrderFilter{}, err
	}
	if params.Urgency != nil {
		if filter.Urgency, err = order.ParseUrgency(*params.Urgency); err != nil {
			return ports.OrderFilter{}, err
		}
	}
	if filter.ViewerID, err = toOptionalKernelID("X-User-ID", params.XUserID); err != nil {
		return ports.OrderFilter{}, err
	}
	filter.OnlyVisible = params.Visible != nil && *params.Visible

	return filter, nil
}

func toOrderDetails(body servers.NewOrder) (order.Details, error) {
	categoryID, err := toKernelID("categoryId", body.CategoryId)
	if err != nil {
		return order.Details{}, err
	}
	urgency, err := order.ParseUrgency(valueOrEmpty(body.Urgency))
	if err != nil {
		return order.Details{}, err
	}
	priceType, err := order.ParsePriceType(valueOrEmpty(body.PriceType))
	if err != nil {
		return order.Details{}, err
	}
	budgetFrom, err := parseOptionalMoney("budgetFrom", body.BudgetFrom)
	if err != nil {
		return order.Details{}, err
	}
	budgetTo, err := parseOptionalMoney("budgetTo", body.BudgetTo)
	if err != nil {
		return order.Details{}, err
	}
	location, err := parseLocation(body.Latitude, body.Longitude)
	if err != nil {
		return order.Details{}, err
	}

	return order.Details{
		Title:              body.Title,
		Description:        valueOrEmpty(body.Description),
		CategoryID:         categoryID,
		Urgency:            urgency,
		PriceType:          priceType,
		BudgetFrom:         budgetFrom,
		BudgetTo:           budgetTo,
		Location:           location,
		Address:            valueOrEmpty(body.Address),
		PreferredStartDate: body.PreferredStartDate,
		Deadline:           body.Deadline,
	}, nil
}
