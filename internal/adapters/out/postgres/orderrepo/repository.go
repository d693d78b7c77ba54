package orderrepo

import (
	"context"
	"errors"
	"time"

	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/core/domain/model/order"
	"workmarket/internal/core/ports"
	"workmarket/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultVisibleBatchSize is how many rows FindVisible reads per round trip.
const DefaultVisibleBatchSize = 500

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db               *gorm.DB
	tracker          aggregateTracker
	visibleBatchSize int
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates an order repository. tracker may be nil for
// read-only use outside a unit of work.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:               db,
		tracker:          tracker,
		visibleBatchSize: DefaultVisibleBatchSize,
	}
}

func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.track(aggregate)
	return nil
}

// UpdateIfStatus writes every column except the counters, which only change
// through IncrementApplications and IncrementViews.
func (r *GormOrderRepository) UpdateIfStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expected)).
		Select("*").
		Omit("id", "created_at", "applications_count", "views_count").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("order", "status is no longer "+expected.String())
	}

	r.track(aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormOrderRepository) get(db *gorm.DB, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) IncrementApplications(ctx context.Context, id kernel.UUID) error {
	return r.increment(ctx, id, "applications_count")
}

func (r *GormOrderRepository) IncrementViews(ctx context.Context, id kernel.UUID) error {
	return r.increment(ctx, id, "views_count")
}

func (r *GormOrderRepository) increment(ctx context.Context, id kernel.UUID, column string) error {
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", id.Bytes()).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", id.String())
	}
	return nil
}

// FindVisible returns every matching order, newest first. Rows are read in
// keyset pages of visibleBatchSize; nothing is cut off, since callers rank or
// sort the whole candidate set.
func (r *GormOrderRepository) FindVisible(ctx context.Context, box *ports.BoundingBox) ([]*order.Order, error) {
	result := make([]*order.Order, 0)
	var last *OrderDTO

	for {
		q := r.db.WithContext(ctx).Scopes(visible)
		if box != nil {
			q = q.Where(
				"(latitude IS NULL OR longitude IS NULL OR (latitude BETWEEN ? AND ? AND longitude BETWEEN ? AND ?))",
				box.MinLat, box.MaxLat, box.MinLng, box.MaxLng,
			)
		}
		if last != nil {
			q = q.Where("(created_at, id) < (?, ?)", last.CreatedAt, last.ID)
		}

		var dtos []OrderDTO
		if err := q.Order("created_at DESC, id DESC").Limit(r.visibleBatchSize).Find(&dtos).Error; err != nil {
			return nil, err
		}

		orders, err := toDomainList(dtos)
		if err != nil {
			return nil, err
		}
		result = append(result, orders...)

		if len(dtos) < r.visibleBatchSize {
			return result, nil
		}
		last = &dtos[len(dtos)-1]
	}
}

func (r *GormOrderRepository) FindExpired(ctx context.Context, now time.Time, limit int) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Scopes(visible).
		Where("deadline IS NOT NULL AND deadline < ?", now).
		Order("deadline").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

func (r *GormOrderRepository) List(
	ctx context.Context,
	filter ports.OrderFilter,
	offset, limit int,
) ([]*order.Order, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Scopes(matching(filter)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Scopes(matching(filter)).
		Order("created_at DESC, id").
		Offset(offset).
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, 0, err
	}

	orders, err := toDomainList(dtos)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *GormOrderRepository) track(aggregate *order.Order) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}

func visible(db *gorm.DB) *gorm.DB {
	return db.Where("status = ? AND is_published", int(order.Open))
}

func matching(filter ports.OrderFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.ViewerID != nil {
			db = db.Where("(status <> ? OR customer_id = ?)", int(order.Draft), filter.ViewerID.Bytes())
		} else {
			db = db.Where("status <> ?", int(order.Draft))
		}
		if filter.OnlyVisible {
			db = visible(db)
		}
		if len(filter.Statuses) > 0 {
			statuses := make([]int64, 0, len(filter.Statuses))
			for _, s := range filter.Statuses {
				statuses = append(statuses, int64(s))
			}
			db = db.Where("status = ANY(?)", pq.Array(statuses))
		}
		if filter.CategoryID != nil {
			db = db.Where("category_id = ?", filter.CategoryID.Bytes())
		}
		if filter.CustomerID != nil {
			db = db.Where("customer_id = ?", filter.CustomerID.Bytes())
		}
		if filter.ExecutorID != nil {
			db = db.Where("executor_id = ?", filter.ExecutorID.Bytes())
		}
		if filter.Urgency != order.UrgencyUnknown {
			db = db.Where("urgency = ?", int(filter.Urgency))
		}
		return db
	}
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
