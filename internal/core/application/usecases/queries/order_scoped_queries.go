package queries

import (
	"errors"

	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/core/domain/services"
	"workmarket/internal/pkg/errs"
	"workmarket/internal/pkg/guard"
)

var (
	ErrListOrderApplicationsQueryIsNotConstructed = errors.New(
		"ListOrderApplicationsQuery must be created via NewListOrderApplicationsQuery constructor",
	)
	ErrGetRecommendedExecutorsQueryIsNotConstructed = errors.New(
		"GetRecommendedExecutorsQuery must be created via NewGetRecommendedExecutorsQuery constructor",
	)
)

// customerScope identifies an order read on behalf of its customer.
type customerScope struct {
	customerID kernel.UUID
	orderID    kernel.UUID
}

func newCustomerScope(customerID, orderID kernel.UUID) (customerScope, error) {
	var errList []error
	if err := customerID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("customerId", err))
	}
	if err := orderID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("orderId", err))
	}
	if err := errors.Join(errList...); err != nil {
		return customerScope{}, err
	}
	return customerScope{customerID: customerID, orderID: orderID}, nil
}

// ListOrderApplicationsQuery returns the applications of an order to its customer.
type ListOrderApplicationsQuery struct {
	customerScope
	guard guard.ConstructorGuard
}

func NewListOrderApplicationsQuery(customerID, orderID kernel.UUID) (ListOrderApplicationsQuery, error) {
	scope, err := newCustomerScope(customerID, orderID)
	if err != nil {
		return ListOrderApplicationsQuery{}, err
	}
	return ListOrderApplicationsQuery{customerScope: scope, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrderApplicationsQuery) Validate() error {
	return q.guard.Validate(ErrListOrderApplicationsQueryIsNotConstructed)
}

// GetRecommendedExecutorsQuery ranks executors who could take an order.
type GetRecommendedExecutorsQuery struct {
	customerScope
	limit int
	guard guard.ConstructorGuard
}

func NewGetRecommendedExecutorsQuery(customerID, orderID kernel.UUID, limit int) (GetRecommendedExecutorsQuery, error) {
	scope, err := newCustomerScope(customerID, orderID)
	if err != nil {
		return GetRecommendedExecutorsQuery{}, err
	}
	return GetRecommendedExecutorsQuery{
		customerScope: scope,
		limit:         services.NormalizeLimit(limit),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q GetRecommendedExecutorsQuery) Validate() error {
	return q.guard.Validate(ErrGetRecommendedExecutorsQueryIsNotConstructed)
}
