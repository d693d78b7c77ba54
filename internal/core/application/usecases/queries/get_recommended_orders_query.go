package queries

import (
	"errors"

	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/core/domain/services"
	"workmarket/internal/pkg/errs"
	"workmarket/internal/pkg/guard"
)

var ErrGetRecommendedOrdersQueryIsNotConstructed = errors.New(
	"GetRecommendedOrdersQuery must be created via NewGetRecommendedOrdersQuery constructor",
)

type GetRecommendedOrdersQuery struct {
	executorID kernel.UUID
	limit      int
	guard      guard.ConstructorGuard
}

func NewGetRecommendedOrdersQuery(executorID kernel.UUID, limit int) (GetRecommendedOrdersQuery, error) {
	if err := executorID.Validate(); err != nil {
		return GetRecommendedOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("executorId", err)
	}
	return GetRecommendedOrdersQuery{
		executorID: executorID,
		limit:      services.NormalizeLimit(limit),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetRecommendedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRecommendedOrdersQueryIsNotConstructed)
}

func (q GetRecommendedOrdersQuery) ExecutorID() kernel.UUID { return q.executorID }
func (q GetRecommendedOrdersQuery) Limit() int { return q.limit }
