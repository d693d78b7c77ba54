package applicationrepo

import (
	"context"
	"errors"

	"workmarket/internal/core/domain/model/application"
	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/core/ports"
	"workmarket/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// GormApplicationRepository implements ports.ApplicationRepository using GORM.
type GormApplicationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormApplicationRepository creates an application repository. tracker may be nil.
func NewGormApplicationRepository(db *gorm.DB, tracker aggregateTracker) *GormApplicationRepository {
	return &GormApplicationRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormApplicationRepository) Add(ctx context.Context, aggregate *application.Application) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewConflictError("application", "executor has already applied to this order")
		}
		return err
	}

	r.track(aggregate)
	return nil
}

func (r *GormApplicationRepository) UpdateIfStatus(
	ctx context.Context,
	aggregate *application.Application,
	expected application.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ApplicationDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expected)).
		Select("*").
		Omit("id", "order_id", "executor_id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return errs.NewConflictError("application", "order already has an accepted application")
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("application", "status is no longer "+expected.String())
	}

	r.track(aggregate)
	return nil
}

func (r *GormApplicationRepository) Get(ctx context.Context, id kernel.UUID) (*application.Application, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ApplicationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("applicationId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormApplicationRepository) FindByOrderAndExecutor(
	ctx context.Context,
	orderID, executorID kernel.UUID,
) (*application.Application, error) {
	var dto ApplicationDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND executor_id = ?", orderID.Bytes(), executorID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("application", orderID.String()+"/"+executorID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormApplicationRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*application.Application, error) {
	var dtos []ApplicationDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	apps := make([]*application.Application, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, nil
}

func (r *GormApplicationRepository) ListAppliedOrders(ctx context.Context, executorID kernel.UUID) ([]ports.AppliedOrder, error) {
	var rows []struct {
		OrderID    uuid.UUID
		CategoryID uuid.UUID
	}
	err := r.db.WithContext(ctx).
		Table("applications AS a").
		Select("a.order_id, o.category_id").
		Joins("JOIN orders AS o ON o.id = a.order_id").
		Where("a.executor_id = ?", executorID.Bytes()).
		Order("a.created_at").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	applied := make([]ports.AppliedOrder, 0, len(rows))
	for _, row := range rows {
		orderID, err := kernel.UUIDFromBytes(row.OrderID[:])
		if err != nil {
			return nil, err
		}
		categoryID, err := kernel.UUIDFromBytes(row.CategoryID[:])
		if err != nil {
			return nil, err
		}
		applied = append(applied, ports.AppliedOrder{OrderID: orderID, CategoryID: categoryID})
	}
	return applied, nil
}

func (r *GormApplicationRepository) track(aggregate *application.Application) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
