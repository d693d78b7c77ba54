package kernel

import (
	"errors"
	"fmt"
	"math"

	"workmarket/internal/pkg/errs"
	"workmarket/internal/pkg/guard"
)

const (
	// EarthRadiusKm is the mean Earth radius used by the haversine formula.
	EarthRadiusKm = 6371.0

	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0

	// radiusToleranceKm absorbs floating point noise so that a point computed to lie
	// exactly on the radius is still treated as inside it.
	radiusToleranceKm = 1e-9

	// boxMarginDeg widens bounding boxes past floating point noise at the edge.
	boxMarginDeg = 1e-9
)

// ErrLocationIsNotConstructed is returned when a Location was not created via NewLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location is a point on the Earth surface in decimal degrees.
// It is an immutable value object; the zero value is invalid.
//
// Example:
//
//	tashkent, _ := kernel.NewLocation(41.3111, 69.2797)
//	samarkand, _ := kernel.NewLocation(39.6542, 66.9597)
//	km, _ := tashkent.Distance(samarkand) // ≈ 270
type Location struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewLocation creates a Location after checking that latitude lies in [-90, 90]
// and longitude in [-180, 180]. Both violations are reported together.
func NewLocation(latitude, longitude float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLatitude(latitude), loc.setLongitude(longitude)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate fails for a Location that was not built by NewLocation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (l Location) Latitude() float64 {
	return l.latitude
}

// Longitude returns the longitude in decimal degrees.
func (l Location) Longitude() float64 {
	return l.longitude
}

// String implements fmt.Stringer, e.g. "Location(41.311100,69.279700)".
func (l Location) String() string {
	return fmt.Sprintf("Location(%f,%f)", l.latitude, l.longitude)
}

// IsEqual compares coordinates of two valid locations.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l.latitude == other.latitude && l.longitude == other.longitude, nil
}

// Distance returns the great-circle distance to other in kilometres:
//
//	d = 2R·asin(√(sin²(Δlat/2) + cos(lat1)·cos(lat2)·sin²(Δlng/2)))
//
// with R = EarthRadiusKm and angles in radians. Distance is symmetric and
// zero for identical points.
func (l Location) Distance(other Location) (float64, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	return haversine(l.latitude, l.longitude, other.latitude, other.longitude), nil
}

// WithinRadius reports whether other lies within radiusKm of l. The boundary is
// inclusive: a point at exactly radiusKm is inside.
func (l Location) WithinRadius(other Location, radiusKm float64) (bool, error) {
	d, err := l.Distance(other)
	if err != nil {
		return false, err
	}
	return d <= radiusKm+radiusToleranceKm, nil
}

// BoundingBox returns the latitude/longitude rectangle that contains every point
// within radiusKm of l. Repositories use it as a coarse index-friendly prefilter
// before the exact haversine check.
func (l Location) BoundingBox(radiusKm float64) (minLat, maxLat, minLng, maxLng float64) {
	dLat := radiusKm/EarthRadiusKm*180/math.Pi + boxMarginDeg
	minLat = math.Max(MinLatitude, l.latitude-dLat)
	maxLat = math.Min(MaxLatitude, l.latitude+dLat)

	if maxLat >= MaxLatitude || minLat <= MinLatitude {
		return minLat, maxLat, MinLongitude, MaxLongitude
	}
	// widest longitude offset on the circle: asin(sin(r/R) / cos(lat))
	sinLng := math.Sin(radiusKm/EarthRadiusKm) / math.Cos(l.latitude*math.Pi/180)
	if sinLng >= 1 {
		return minLat, maxLat, MinLongitude, MaxLongitude
	}
	dLng := math.Asin(sinLng)*180/math.Pi + boxMarginDeg
	minLng = l.longitude - dLng
	maxLng = l.longitude + dLng
	if minLng < MinLongitude || maxLng > MaxLongitude {
		// the box wraps the antimeridian; fall back to the whole longitude range
		return minLat, maxLat, MinLongitude, MaxLongitude
	}
	return minLat, maxLat, minLng, maxLng
}

// OptionalDistance handles the "location is optional metadata" rule: when either
// side is nil the pair is not geo-filtered and ok is false.
func OptionalDistance(a, b *Location) (km float64, ok bool, err error) {
	if a == nil || b == nil {
		return 0, false, nil
	}
	km, err = a.Distance(*b)
	if err != nil {
		return 0, false, err
	}
	return km, true, nil
}

func (l *Location) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || latitude < MinLatitude || latitude > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}

	l.latitude = latitude
	return nil
}

func (l *Location) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || longitude < MinLongitude || longitude > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}

	l.longitude = longitude
	return nil
}

func haversine(lat1, lng1, lat2, lng2 float64) float64 {
	const rad = math.Pi / 180
	phi1 := lat1 * rad
	phi2 := lat2 * rad
	dPhi := (lat2 - lat1) * rad
	dLambda := (lng2 - lng1) * rad

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	h := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda
	// rounding can push h marginally above 1 for antipodal points
	h = math.Min(1, h)

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}
