package services

import (
	"slices"

	"workmarket/internal/core/domain/model/executor"
	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/core/domain/model/order"
)

const (
	DefaultRecommendationLimit = 10
	MaxRecommendationLimit     = 100

	CategoryBonus = 10

	highBudgetThreshold   = 500000
	mediumBudgetThreshold = 200000
)

// NormalizeLimit maps a missing or out-of-range limit to the default and the maximum.
func NormalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultRecommendationLimit
	case limit > MaxRecommendationLimit:
		return MaxRecommendationLimit
	default:
		return limit
	}
}

// UrgencyWeight: urgent 20, high 15, medium 10, anything else 5.
func UrgencyWeight(u order.Urgency) int {
	switch u {
	case order.UrgencyUrgent:
		return 20
	case order.UrgencyHigh:
		return 15
	case order.UrgencyMedium:
		return 10
	default:
		return 5
	}
}

// BudgetWeight looks at budgetFrom, falling back to budgetTo:
// >= 500000 gives 10, >= 200000 gives 5, anything else (including no budget) 1.
func BudgetWeight(budgetFrom, budgetTo *kernel.Money) int {
	budget := budgetFrom
	if budget == nil {
		budget = budgetTo
	}
	switch {
	case budget == nil:
		return 1
	case budget.GreaterThanOrEqualInt(highBudgetThreshold):
		return 10
	case budget.GreaterThanOrEqualInt(mediumBudgetThreshold):
		return 5
	default:
		return 1
	}
}

// Score is urgency weight + budget weight + CategoryBonus when the order's
// category is among preferred.
func Score(o *order.Order, preferred []kernel.UUID) int {
	score := UrgencyWeight(o.Urgency()) + BudgetWeight(o.BudgetFrom(), o.BudgetTo())
	if slices.ContainsFunc(preferred, o.CategoryID().IsEqual) {
		score += CategoryBonus
	}
	return score
}

type ScoredOrder struct {
	Order      *order.Order
	Score      int
	DistanceKm *float64
}

// RecommendationInput is everything OrderRanker needs, fetched up front.
type RecommendationInput struct {
	Executor *executor.Profile
	// Candidates may be a superset; the ranker applies every exclusion itself.
	Candidates []*order.Order
	// AppliedOrderIDs holds orders the executor applied to, in any status.
	AppliedOrderIDs map[kernel.UUID]struct{}
	// AppliedCategoryIDs holds the category of each order the executor applied to.
	AppliedCategoryIDs []kernel.UUID
	Limit              int
}

// OrderRanker produces recommended orders for an executor. It is pure.
type OrderRanker struct {
	defaultRadiusKm float64
}

func NewOrderRanker(defaultRadiusKm float64) OrderRanker {
	if defaultRadiusKm <= 0 {
		defaultRadiusKm = executor.DefaultWorkRadiusKm
	}
	return OrderRanker{defaultRadiusKm: defaultRadiusKm}
}

// Rank filters and orders candidates for in.Executor.
//
// Exclusions:
//   - orders owned by the executor
//   - orders that are not Open or not published
//   - orders the executor already applied to
//   - orders outside the executor's work radius, when both sides have coordinates
//
// Ordering: score desc, createdAt desc, id asc.
func (r OrderRanker) Rank(in RecommendationInput) ([]ScoredOrder, error) {
	if err := in.Executor.Validate(); err != nil {
		return nil, err
	}

	preferred := PreferredCategories(in.AppliedCategoryIDs, PreferredCategoryCount)
	radius := in.Executor.EffectiveRadiusKm(r.defaultRadiusKm)
	userID := in.Executor.UserID()

	result := make([]ScoredOrder, 0, len(in.Candidates))
	for _, o := range in.Candidates {
		if o.IsOwnedBy(userID) || !o.IsVisibleToExecutors() {
			continue
		}
		if _, applied := in.AppliedOrderIDs[o.ID()]; applied {
			continue
		}

		km, hasDistance, err := kernel.OptionalDistance(in.Executor.Location(), o.Location())
		if err != nil {
			return nil, err
		}
		var distance *float64
		if hasDistance {
			ok, err := in.Executor.Location().WithinRadius(*o.Location(), radius)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			distance = &km
		}

		result = append(result, ScoredOrder{Order: o, Score: Score(o, preferred), DistanceKm: distance})
	}

	slices.SortFunc(result, func(a, b ScoredOrder) int {
		if a.Score != b.Score {
			return b.Score - a.Score
		}
		if c := b.Order.CreatedAt().Compare(a.Order.CreatedAt()); c != 0 {
			return c
		}
		return a.Order.ID().Compare(b.Order.ID())
	})

	if limit := NormalizeLimit(in.Limit); len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
