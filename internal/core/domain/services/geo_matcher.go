package services

import (
	"cmp"
	"slices"

	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/core/domain/model/order"
)

type NearbyOrder struct {
	Order      *order.Order
	DistanceKm float64
}

// NearbyOrders keeps the visible orders within radiusKm of center (inclusive),
// nearest first. Orders without coordinates cannot be placed and are skipped.
func NearbyOrders(center kernel.Location, radiusKm float64, orders []*order.Order, limit int) ([]NearbyOrder, error) {
	result := make([]NearbyOrder, 0, len(orders))
	for _, o := range orders {
		if o.Location() == nil || !o.IsVisibleToExecutors() {
			continue
		}
		ok, err := center.WithinRadius(*o.Location(), radiusKm)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		km, err := center.Distance(*o.Location())
		if err != nil {
			return nil, err
		}
		result = append(result, NearbyOrder{Order: o, DistanceKm: km})
	}

	slices.SortFunc(result, func(a, b NearbyOrder) int {
		if c := cmp.Compare(a.DistanceKm, b.DistanceKm); c != 0 {
			return c
		}
		return a.Order.ID().Compare(b.Order.ID())
	})

	if limit := NormalizeLimit(limit); len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
