package queries

import (
	"context"

	"workmarket/internal/core/domain/services"
	"workmarket/internal/core/ports"
)

type FindNearbyOrdersQueryHandler struct {
	orders ports.OrderRepository
}

func NewFindNearbyOrdersQueryHandler(orders ports.OrderRepository) FindNearbyOrdersQueryHandler {
	return FindNearbyOrdersQueryHandler{orders: orders}
}

func (h FindNearbyOrdersQueryHandler) Handle(ctx context.Context, query FindNearbyOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	candidates, err := h.orders.FindVisible(ctx, ports.BoxAround(query.center, query.radiusKm))
	if err != nil {
		return nil, err
	}

	nearby, err := services.NearbyOrders(query.center, query.radiusKm, candidates, query.limit)
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(nearby))
	for _, n := range nearby {
		v := NewOrderView(n.Order)
		km := n.DistanceKm
		v.DistanceKm = &km
		views = append(views, v)
	}
	return views, nil
}

type FindNearbyExecutorsQueryHandler struct {
	profiles ports.ExecutorProfileReader
	matcher  services.ExecutorMatcher
}

func NewFindNearbyExecutorsQueryHandler(profiles ports.ExecutorProfileReader) FindNearbyExecutorsQueryHandler {
	return FindNearbyExecutorsQueryHandler{profiles: profiles, matcher: services.NewExecutorMatcher(0)}
}

func (h FindNearbyExecutorsQueryHandler) Handle(ctx context.Context, query FindNearbyExecutorsQuery) ([]ExecutorView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	candidates, err := h.profiles.FindAvailable(ctx, ports.BoxAround(query.center, query.radiusKm))
	if err != nil {
		return nil, err
	}

	matches, err := h.matcher.Near(query.center, query.radiusKm, candidates)
	if err != nil {
		return nil, err
	}

	views := make([]ExecutorView, 0, len(matches))
	for _, m := range matches {
		views = append(views, NewExecutorView(m.Profile, m.DistanceKm))
	}
	return views, nil
}
