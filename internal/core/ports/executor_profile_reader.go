package ports

import (
	"context"

	"workmarket/internal/core/domain/model/executor"
	"workmarket/internal/core/domain/model/kernel"
)

// ExecutorProfileReader reads executor profiles owned by the profile service.
type ExecutorProfileReader interface {
	// GetByUserID returns errs.ObjectNotFoundError when the user has no profile.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*executor.Profile, error)

	// FindAvailable returns available profiles. With a box, profiles placed
	// outside it are dropped; profiles without coordinates are always returned.
	FindAvailable(ctx context.Context, box *BoundingBox) ([]*executor.Profile, error)

	// MaxWorkRadiusKm is the widest work radius among available located
	// profiles, counting an unset radius as fallbackKm. Zero when there are none.
	MaxWorkRadiusKm(ctx context.Context, fallbackKm float64) (float64, error)
}

// CategoryChecker answers whether a category id exists in the catalog.
type CategoryChecker interface {
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
