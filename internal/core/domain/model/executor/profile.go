// Package executor holds the read model of an executor profile. Profiles are owned
// by the profile service; the marketplace only reads them for matching.
package executor

import (
	"errors"
	"fmt"

	"workmarket/internal/core/domain/model/kernel"
	"workmarket/internal/pkg/errs"
	"workmarket/internal/pkg/guard"
)

const (
	DefaultWorkRadiusKm = 10.0
	MaxRating           = 5.0
)

var ErrProfileIsNotConstructed = errors.New("Profile must be created via RestoreProfile")

type Snapshot struct {
	ID              kernel.UUID
	UserID          kernel.UUID
	Location        *kernel.Location
	WorkRadiusKm    float64
	Rating          float64
	CompletedOrders int
	IsAvailable     bool
	IsPremium       bool
}

// Profile is what matching needs to know about an executor.
type Profile struct {
	id              kernel.UUID
	userID          kernel.UUID
	location        *kernel.Location
	workRadiusKm    float64
	rating          float64
	completedOrders int
	isAvailable     bool
	isPremium       bool
	guard           guard.ConstructorGuard
}

func RestoreProfile(s Snapshot) (*Profile, error) {
	var errList []error
	if err := s.ID.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := s.UserID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("userId", err))
	}
	if s.Location != nil {
		errList = append(errList, s.Location.Validate())
	}
	if s.WorkRadiusKm < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("workRadiusKm", fmt.Errorf("%v is negative", s.WorkRadiusKm)))
	}
	if s.Rating < 0 || s.Rating > MaxRating {
		errList = append(errList, errs.NewValueIsOutOfRangeError("rating", s.Rating, 0, MaxRating))
	}
	if s.CompletedOrders < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("completedOrders", fmt.Errorf("%d is negative", s.CompletedOrders)))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Profile{
		id:              s.ID,
		userID:          s.UserID,
		location:        s.Location,
		workRadiusKm:    s.WorkRadiusKm,
		rating:          s.Rating,
		completedOrders: s.CompletedOrders,
		isAvailable:     s.IsAvailable,
		isPremium:       s.IsPremium,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (p *Profile) Validate() error {
	if p == nil {
		return ErrProfileIsNotConstructed
	}
	return p.guard.Validate(ErrProfileIsNotConstructed)
}

func (p *Profile) ID() kernel.UUID { return p.id }

// UserID is the identity used by the marketplace for the executor.
func (p *Profile) UserID() kernel.UUID { return p.userID }
func (p *Profile) Location() *kernel.Location { return p.location }
func (p *Profile) WorkRadiusKm() float64 { return p.workRadiusKm }
func (p *Profile) Rating() float64 { return p.rating }
func (p *Profile) CompletedOrders() int { return p.completedOrders }
func (p *Profile) IsAvailable() bool { return p.isAvailable }
func (p *Profile) IsPremium() bool { return p.isPremium }

// EffectiveRadiusKm is the work radius, or fallback when the profile does not set one.
func (p *Profile) EffectiveRadiusKm(fallback float64) float64 {
	if p.workRadiusKm > 0 {
		return p.workRadiusKm
	}
	if fallback > 0 {
		return fallback
	}
	return DefaultWorkRadiusKm
}

// Covers reports whether loc lies inside the executor's own work radius.
// It is true when either side has no coordinates.
func (p *Profile) Covers(loc *kernel.Location, fallbackRadiusKm float64) (bool, error) {
	if p.location == nil || loc == nil {
		return true, nil
	}
	return p.location.WithinRadius(*loc, p.EffectiveRadiusKm(fallbackRadiusKm))
}
