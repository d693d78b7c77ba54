package queries

import (
	"errors"

	"workmarket/internal/core/ports"
	"workmarket/internal/pkg/guard"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery pages through orders matching a filter, newest first.
//
// Example:
//
//	query := NewListOrdersQuery(ports.OrderFilter{
//	    Statuses:    []order.Status{order.Open},
//	    OnlyVisible: true,
//	}, 1, 20)
//	page, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	filter   ports.OrderFilter
	page     int
	pageSize int
	guard    guard.ConstructorGuard
}

// NewListOrdersQuery clamps page to >= 1 and pageSize to 1..MaxPageSize
// (DefaultPageSize when not positive).
func NewListOrdersQuery(filter ports.OrderFilter, page, pageSize int) ListOrdersQuery {
	if page < 1 {
		page = 1
	}
	switch {
	case pageSize <= 0:
		pageSize = DefaultPageSize
	case pageSize > MaxPageSize:
		pageSize = MaxPageSize
	}
	return ListOrdersQuery{filter: filter, page: page, pageSize: pageSize, guard: guard.NewConstructorGuard()}
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Filter() ports.OrderFilter { return q.filter }
func (q ListOrdersQuery) Page() int { return q.page }
func (q ListOrdersQuery) PageSize() int { return q.pageSize }
