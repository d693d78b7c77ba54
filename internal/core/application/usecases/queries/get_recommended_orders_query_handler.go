package queries

import (
	"context"

	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/core/domain/services"
	"workmarket/internal/core/ports"
)

// GetRecommendedOrdersQueryHandler fetches the executor profile, the executor's
// application history and the visible orders around them, then lets
// services.OrderRanker score and order the candidates.
type GetRecommendedOrdersQueryHandler struct {
	profiles        ports.ExecutorProfileReader
	orders          ports.OrderRepository
	applications    ports.ApplicationRepository
	ranker          services.OrderRanker
	defaultRadiusKm float64
}

func NewGetRecommendedOrdersQueryHandler(
	profiles ports.ExecutorProfileReader,
	orders ports.OrderRepository,
	applications ports.ApplicationRepository,
	defaultRadiusKm float64,
) GetRecommendedOrdersQueryHandler {
	return GetRecommendedOrdersQueryHandler{
		profiles:        profiles,
		orders:          orders,
		applications:    applications,
		ranker:          services.NewOrderRanker(defaultRadiusKm),
		defaultRadiusKm: defaultRadiusKm,
	}
}

// Handle returns errs.ObjectNotFoundError when the executor has no profile.
func (h GetRecommendedOrdersQueryHandler) Handle(ctx context.Context, query GetRecommendedOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	profile, err := h.profiles.GetByUserID(ctx, query.ExecutorID())
	if err != nil {
		return nil, err
	}

	applied, err := h.applications.ListAppliedOrders(ctx, query.ExecutorID())
	if err != nil {
		return nil, err
	}
	appliedOrders := make(map[kernel.UUID]struct{}, len(applied))
	appliedCategories := make([]kernel.UUID, 0, len(applied))
	for _, a := range applied {
		appliedOrders[a.OrderID] = struct{}{}
		appliedCategories = append(appliedCategories, a.CategoryID)
	}

	var box *ports.BoundingBox
	if loc := profile.Location(); loc != nil {
		box = ports.BoxAround(*loc, profile.EffectiveRadiusKm(h.defaultRadiusKm))
	}
	candidates, err := h.orders.FindVisible(ctx, box)
	if err != nil {
		return nil, err
	}

	ranked, err := h.ranker.Rank(services.RecommendationInput{
		Executor:           profile,
		Candidates:         candidates,
		AppliedOrderIDs:    appliedOrders,
		AppliedCategoryIDs: appliedCategories,
		Limit:              query.Limit(),
	})
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(ranked))
	for _, r := range ranked {
		v := NewOrderView(r.Order)
		score := r.Score
		v.Score = &score
		v.DistanceKm = r.DistanceKm
		views = append(views, v)
	}
	return views, nil
}
