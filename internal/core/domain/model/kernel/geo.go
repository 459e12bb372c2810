package kernel

import (
	"errors"
	"fmt"

	"resourceshare/internal/pkg/errs"
	"resourceshare/internal/pkg/guard"
)

const (
	// GeoPointMinLatitude is the minimum valid latitude in degrees.
	GeoPointMinLatitude float64 = -90
	// GeoPointMaxLatitude is the maximum valid latitude in degrees.
	GeoPointMaxLatitude float64 = 90
	// GeoPointMinLongitude is the minimum valid longitude in degrees.
	GeoPointMinLongitude float64 = -180
	// GeoPointMaxLongitude is the maximum valid longitude in degrees.
	GeoPointMaxLongitude float64 = 180
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created using the NewGeoPoint
// constructor to ensure validity.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic position with validated coordinates.
// GeoPoint is an immutable value object that ensures latitude and longitude
// are always within valid bounds. The zero value is invalid and will fail
// validation - use the constructor to create instances.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(40.4168, -3.7038)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Pickup point: %s", point) // Output: GeoPoint(40.416800,-3.703800)
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a new GeoPoint with the specified coordinates.
// Latitude must be within [GeoPointMinLatitude..GeoPointMaxLatitude] and
// longitude within [GeoPointMinLongitude..GeoPointMaxLongitude].
// Returns an error if either coordinate is outside its valid bounds.
func NewGeoPoint(latitude float64, longitude float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLatitude(latitude), point.setLongitude(longitude)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks if the GeoPoint was properly constructed using the constructor.
// The zero value of GeoPoint is invalid and will fail this validation.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in degrees.
// Guaranteed to be within valid bounds for properly constructed instances.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in degrees.
// Guaranteed to be within valid bounds for properly constructed instances.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// String returns a human-readable representation in the format
// "GeoPoint(lat,long)". Implements the fmt.Stringer interface.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.latitude, p.longitude)
}

// IsEqual compares two geo points for equality.
// Both points must be properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p == other, nil
}

// setLatitude sets the latitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, so the constructor can run self-encapsulated validation.
func (p *GeoPoint) setLatitude(latitude float64) error {
	if latitude < GeoPointMinLatitude || latitude > GeoPointMaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, GeoPointMinLatitude, GeoPointMaxLatitude)
	}

	p.latitude = latitude
	return nil
}

// setLongitude sets the longitude with validation.
func (p *GeoPoint) setLongitude(longitude float64) error {
	if longitude < GeoPointMinLongitude || longitude > GeoPointMaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, GeoPointMinLongitude, GeoPointMaxLongitude)
	}

	p.longitude = longitude
	return nil
}
