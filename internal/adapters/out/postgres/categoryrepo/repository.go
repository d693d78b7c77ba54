// Package categoryrepo checks category ids against the local categories table.
// It is used when no remote catalog is configured.
package categoryrepo

import (
	"context"

	"workmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

func (CategoryDTO) TableName() string {
	return "categories"
}

type GormCategoryChecker struct {
	db *gorm.DB
}

func NewGormCategoryChecker(db *gorm.DB) *GormCategoryChecker {
	return &GormCategoryChecker{db: db}
}

func (c *GormCategoryChecker) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	var count int64
	err := c.db.WithContext(ctx).Model(&CategoryDTO{}).Where("id = ?", id.Bytes()).Limit(1).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
