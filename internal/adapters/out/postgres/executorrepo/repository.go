// Package executorrepo reads executor profiles from the executor_profiles table.
// The table is filled by the profile service; the marketplace never writes it.
package executorrepo

import (
	"context"
	"errors"

	"workmarket/internal/core/domain/model/executor"
	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/core/ports"
	"workmarket/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Latitude        *float64
	Longitude       *float64
	WorkRadiusKm    float64
	Rating          float64
	CompletedOrders int
	IsAvailable     bool
	IsPremium       bool
}

func (ProfileDTO) TableName() string {
	return "executor_profiles"
}

type GormProfileReader struct {
	db *gorm.DB
}

func NewGormProfileReader(db *gorm.DB) *GormProfileReader {
	return &GormProfileReader{db: db}
}

func (r *GormProfileReader) GetByUserID(ctx context.Context, userID kernel.UUID) (*executor.Profile, error) {
	var dto ProfileDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("executorProfile", userID.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormProfileReader) FindAvailable(ctx context.Context, box *ports.BoundingBox) ([]*executor.Profile, error) {
	q := r.db.WithContext(ctx).Where("is_available")
	if box != nil {
		q = q.Where(
			"(latitude IS NULL OR longitude IS NULL OR (latitude BETWEEN ? AND ? AND longitude BETWEEN ? AND ?))",
			box.MinLat, box.MaxLat, box.MinLng, box.MaxLng,
		)
	}

	var dtos []ProfileDTO
	if err := q.Order("user_id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	profiles := make([]*executor.Profile, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func (r *GormProfileReader) MaxWorkRadiusKm(ctx context.Context, fallbackKm float64) (float64, error) {
	var radius float64
	err := r.db.WithContext(ctx).
		Model(&ProfileDTO{}).
		Where("is_available AND latitude IS NOT NULL AND longitude IS NOT NULL").
		Select("COALESCE(MAX(CASE WHEN work_radius_km > 0 THEN work_radius_km ELSE ? END), 0)", fallbackKm).
		Scan(&radius).Error
	if err != nil {
		return 0, err
	}
	return radius, nil
}

func toDomain(dto ProfileDTO) (*executor.Profile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.Location
	if dto.Latitude != nil && dto.Longitude != nil {
		loc, locErr := kernel.NewLocation(*dto.Latitude, *dto.Longitude)
		if locErr != nil {
			return nil, locErr
		}
		location = &loc
	}

	return executor.RestoreProfile(executor.Snapshot{
		ID:              id,
		UserID:          userID,
		Location:        location,
		WorkRadiusKm:    dto.WorkRadiusKm,
		Rating:          dto.Rating,
		CompletedOrders: dto.CompletedOrders,
		IsAvailable:     dto.IsAvailable,
		IsPremium:       dto.IsPremium,
	})
}
