package queries

import (
	"context"

	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/core/domain/model/order"
	"workmarket/internal/core/domain/services"
	"workmarket/internal/core/ports"
	"workmarket/internal/pkg/errs"
)

func loadOwnedOrder(ctx context.Context, orders ports.OrderRepository, scope customerScope, action string) (*order.Order, error) {
	o, err := orders.Get(ctx, scope.orderID)
	if err != nil {
		return nil, err
	}
	if !o.IsOwnedBy(scope.customerID) {
		return nil, errs.NewForbiddenError(scope.customerID, action+" of order "+o.ID().String())
	}
	return o, nil
}

type ListOrderApplicationsQueryHandler struct {
	orders       ports.OrderRepository
	applications ports.ApplicationRepository
}

func NewListOrderApplicationsQueryHandler(
	orders ports.OrderRepository,
	applications ports.ApplicationRepository,
) ListOrderApplicationsQueryHandler {
	return ListOrderApplicationsQueryHandler{orders: orders, applications: applications}
}

func (h ListOrderApplicationsQueryHandler) Handle(ctx context.Context, query ListOrderApplicationsQuery) ([]ApplicationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := loadOwnedOrder(ctx, h.orders, query.customerScope, "list applications")
	if err != nil {
		return nil, err
	}

	apps, err := h.applications.ListByOrder(ctx, o.ID())
	if err != nil {
		return nil, err
	}

	views := make([]ApplicationView, 0, len(apps))
	for _, a := range apps {
		views = append(views, NewApplicationView(a))
	}
	return views, nil
}

type GetRecommendedExecutorsQueryHandler struct {
	orders       ports.OrderRepository
	applications ports.ApplicationRepository
	profiles     ports.ExecutorProfileReader
	matcher      services.ExecutorMatcher
}

func NewGetRecommendedExecutorsQueryHandler(
	orders ports.OrderRepository,
	applications ports.ApplicationRepository,
	profiles ports.ExecutorProfileReader,
	defaultRadiusKm float64,
) GetRecommendedExecutorsQueryHandler {
	return GetRecommendedExecutorsQueryHandler{
		orders:       orders,
		applications: applications,
		profiles:     profiles,
		matcher:      services.NewExecutorMatcher(defaultRadiusKm),
	}
}

// Handle is available to the order's customer only. Executors who already
// applied, in any status, are not suggested again.
func (h GetRecommendedExecutorsQueryHandler) Handle(
	ctx context.Context,
	query GetRecommendedExecutorsQuery,
) ([]ExecutorView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := loadOwnedOrder(ctx, h.orders, query.customerScope, "get recommended executors")
	if err != nil {
		return nil, err
	}

	apps, err := h.applications.ListByOrder(ctx, o.ID())
	if err != nil {
		return nil, err
	}
	applied := make(map[kernel.UUID]struct{}, len(apps))
	for _, a := range apps {
		applied[a.ExecutorID()] = struct{}{}
	}

	box, err := h.candidateBox(ctx, o.Location())
	if err != nil {
		return nil, err
	}
	candidates, err := h.profiles.FindAvailable(ctx, box)
	if err != nil {
		return nil, err
	}

	matches, err := h.matcher.ForOrder(o, candidates, applied, query.limit)
	if err != nil {
		return nil, err
	}

	views := make([]ExecutorView, 0, len(matches))
	for _, m := range matches {
		views = append(views, NewExecutorView(m.Profile, m.DistanceKm))
	}
	return views, nil
}

// candidateBox bounds the executors whose own radius can reach loc: none can
// sit farther away than the widest work radius. An order without coordinates
// is reachable by everyone, so it gets no box.
func (h GetRecommendedExecutorsQueryHandler) candidateBox(ctx context.Context, loc *kernel.Location) (*ports.BoundingBox, error) {
	if loc == nil {
		return nil, nil
	}
	radiusKm, err := h.profiles.MaxWorkRadiusKm(ctx, h.matcher.DefaultRadiusKm())
	if err != nil {
		return nil, err
	}
	return ports.BoxAround(*loc, radiusKm), nil
}
