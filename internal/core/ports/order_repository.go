// Package ports defines the contracts between the marketplace core and its
// infrastructure: persistence of orders and applications, the executor profile
// read model and the category catalog.
package ports

import (
	"context"
	"time"

	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/core/domain/model/order"
)

// BoundingBox is a latitude/longitude rectangle used to prefilter geo queries
// before the exact haversine check.
type BoundingBox struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

// BoxAround returns the bounding box of all points within radiusKm of center.
func BoxAround(center kernel.Location, radiusKm float64) *BoundingBox {
	minLat, maxLat, minLng, maxLng := center.BoundingBox(radiusKm)
	return &BoundingBox{MinLat: minLat, MaxLat: maxLat, MinLng: minLng, MaxLng: maxLng}
}

// OrderFilter narrows ListOrders. Zero values mean "no restriction", except
// for drafts: they are listed only when ViewerID is their customer.
type OrderFilter struct {
	ViewerID    *kernel.UUID
	Statuses    []order.Status
	CategoryID  *kernel.UUID
	CustomerID  *kernel.UUID
	ExecutorID  *kernel.UUID
	Urgency     order.Urgency
	OnlyVisible bool
}

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// UpdateIfStatus writes the aggregate only if the stored status still equals
	// expected. When no row matches it returns an errs.ConflictError.
	UpdateIfStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order by id. Missing orders yield errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with a row lock held until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// IncrementApplications and IncrementViews bump the counters atomically
	// (col = col + 1) without loading the aggregate.
	IncrementApplications(ctx context.Context, id kernel.UUID) error
	IncrementViews(ctx context.Context, id kernel.UUID) error

	// FindVisible returns open, published orders. With a box, orders placed
	// outside it are dropped; orders without coordinates are always returned.
	FindVisible(ctx context.Context, box *BoundingBox) ([]*order.Order, error)

	// FindExpired returns published open orders whose deadline is before now.
	FindExpired(ctx context.Context, now time.Time, limit int) ([]*order.Order, error)

	// List returns one page of orders matching filter, newest first, and the
	// total number of matches.
	List(ctx context.Context, filter OrderFilter, offset, limit int) ([]*order.Order, int64, error)
}
