package queries

import (
	"errors"

	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/core/domain/services"
	"workmarket/internal/pkg/errs"
	"workmarket/internal/pkg/guard"
)

// MaxSearchRadiusKm bounds radius searches.
const MaxSearchRadiusKm = 500.0

var (
	ErrFindNearbyOrdersQueryIsNotConstructed = errors.New(
		"FindNearbyOrdersQuery must be created via NewFindNearbyOrdersQuery constructor",
	)
	ErrFindNearbyExecutorsQueryIsNotConstructed = errors.New(
		"FindNearbyExecutorsQuery must be created via NewFindNearbyExecutorsQuery constructor",
	)
)

type radiusSearch struct {
	center   kernel.Location
	radiusKm float64
}

func newRadiusSearch(lat, lng, radiusKm float64) (radiusSearch, error) {
	center, err := kernel.NewLocation(lat, lng)
	if err != nil {
		return radiusSearch{}, err
	}
	if radiusKm <= 0 || radiusKm > MaxSearchRadiusKm {
		return radiusSearch{}, errs.NewValueIsOutOfRangeError("radiusKm", radiusKm, 0, MaxSearchRadiusKm)
	}
	return radiusSearch{center: center, radiusKm: radiusKm}, nil
}

// FindNearbyOrdersQuery lists visible orders within radiusKm of a point, nearest first.
type FindNearbyOrdersQuery struct {
	radiusSearch
	limit int
	guard guard.ConstructorGuard
}

func NewFindNearbyOrdersQuery(lat, lng, radiusKm float64, limit int) (FindNearbyOrdersQuery, error) {
	search, err := newRadiusSearch(lat, lng, radiusKm)
	if err != nil {
		return FindNearbyOrdersQuery{}, err
	}
	return FindNearbyOrdersQuery{
		radiusSearch: search,
		limit:        services.NormalizeLimit(limit),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q FindNearbyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrFindNearbyOrdersQueryIsNotConstructed)
}

// FindNearbyExecutorsQuery lists available executors within radiusKm of a point.
type FindNearbyExecutorsQuery struct {
	radiusSearch
	guard guard.ConstructorGuard
}

func NewFindNearbyExecutorsQuery(lat, lng, radiusKm float64) (FindNearbyExecutorsQuery, error) {
	search, err := newRadiusSearch(lat, lng, radiusKm)
	if err != nil {
		return FindNearbyExecutorsQuery{}, err
	}
	return FindNearbyExecutorsQuery{radiusSearch: search, guard: guard.NewConstructorGuard()}, nil
}

func (q FindNearbyExecutorsQuery) Validate() error {
	return q.guard.Validate(ErrFindNearbyExecutorsQueryIsNotConstructed)
}
