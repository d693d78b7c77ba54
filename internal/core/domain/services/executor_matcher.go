package services

import (
	"cmp"
	"slices"

	"workmarket/internal/core/domain/model/executor"
	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/core/domain/model/order"
	"workmarket/internal/pkg/errs"
)

type MatchedExecutor struct {
	Profile    *executor.Profile
	DistanceKm *float64
}

// ExecutorMatcher ranks executor profiles. Only available executors are
// returned, ordered premium first, then rating desc, completed orders desc and
// distance asc (unknown distances last).
type ExecutorMatcher struct {
	defaultRadiusKm float64
}

func NewExecutorMatcher(defaultRadiusKm float64) ExecutorMatcher {
	if defaultRadiusKm <= 0 {
		defaultRadiusKm = executor.DefaultWorkRadiusKm
	}
	return ExecutorMatcher{defaultRadiusKm: defaultRadiusKm}
}

// DefaultRadiusKm is the work radius assumed for profiles that do not set one.
func (m ExecutorMatcher) DefaultRadiusKm() float64 {
	return m.defaultRadiusKm
}

// ForOrder returns the executors that could take o: their own work radius must
// cover the order location (skipped when either side lacks coordinates). The
// customer and executors in applied are excluded.
func (m ExecutorMatcher) ForOrder(
	o *order.Order,
	candidates []*executor.Profile,
	applied map[kernel.UUID]struct{},
	limit int,
) ([]MatchedExecutor, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	result := make([]MatchedExecutor, 0, len(candidates))
	for _, p := range candidates {
		if !p.IsAvailable() || o.IsOwnedBy(p.UserID()) {
			continue
		}
		if _, ok := applied[p.UserID()]; ok {
			continue
		}
		covers, err := p.Covers(o.Location(), m.defaultRadiusKm)
		if err != nil {
			return nil, err
		}
		if !covers {
			continue
		}
		km, hasDistance, err := kernel.OptionalDistance(p.Location(), o.Location())
		if err != nil {
			return nil, err
		}
		result = append(result, newMatch(p, km, hasDistance))
	}

	sortMatches(result)
	if limit = NormalizeLimit(limit); len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Near returns available executors located within radiusKm of center.
// Executors without coordinates cannot be placed and are skipped.
func (m ExecutorMatcher) Near(center kernel.Location, radiusKm float64, candidates []*executor.Profile) ([]MatchedExecutor, error) {
	if radiusKm <= 0 {
		return nil, errs.NewValueIsInvalidError("radiusKm")
	}

	result := make([]MatchedExecutor, 0, len(candidates))
	for _, p := range candidates {
		if !p.IsAvailable() || p.Location() == nil {
			continue
		}
		ok, err := center.WithinRadius(*p.Location(), radiusKm)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		km, err := center.Distance(*p.Location())
		if err != nil {
			return nil, err
		}
		result = append(result, newMatch(p, km, true))
	}

	sortMatches(result)
	return result, nil
}

func newMatch(p *executor.Profile, km float64, hasDistance bool) MatchedExecutor {
	m := MatchedExecutor{Profile: p}
	if hasDistance {
		m.DistanceKm = &km
	}
	return m
}

func sortMatches(matches []MatchedExecutor) {
	slices.SortFunc(matches, func(a, b MatchedExecutor) int {
		if a.Profile.IsPremium() != b.Profile.IsPremium() {
			if a.Profile.IsPremium() {
				return -1
			}
			return 1
		}
		if c := cmp.Compare(b.Profile.Rating(), a.Profile.Rating()); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Profile.CompletedOrders(), a.Profile.CompletedOrders()); c != 0 {
			return c
		}
		if c := compareDistance(a.DistanceKm, b.DistanceKm); c != 0 {
			return c
		}
		return a.Profile.UserID().Compare(b.Profile.UserID())
	})
}

func compareDistance(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return cmp.Compare(*a, *b)
	}
}
