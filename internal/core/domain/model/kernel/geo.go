package kernel

import (
	"fmt"
	"math"

	"freight/internal/pkg/errs"
)

const (
	// GeoMinLatitude is the minimum valid latitude in degrees.
	GeoMinLatitude = -90.0

	// GeoMaxLatitude is the maximum valid latitude in degrees.
	GeoMaxLatitude = 90.0

	// GeoMinLongitude is the minimum valid longitude in degrees.
	GeoMinLongitude = -180.0

	// GeoMaxLongitude is the maximum valid longitude in degrees.
	GeoMaxLongitude = 180.0

	// earthRadiusKm is the mean Earth radius used for distance calculations.
	earthRadiusKm = 6371.0
)

// ErrGeoPointIsNotConstructed indicates that a GeoPoint was not created
// through NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError("GeoPoint must be created via NewGeoPoint")

// GeoPoint is an immutable value object representing a geographic coordinate
// pair in decimal degrees. It is used for warehouse positions, driver
// positions, and status-change locations on shipment history entries.
//
// The zero value is invalid; GeoPoint must be constructed through NewGeoPoint,
// which validates both coordinates against their permitted ranges.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(41.0082, 28.9784)
//	if err != nil {
//	    return err
//	}
//	km := point.DistanceTo(other)
type GeoPoint struct {
	latitude  float64
	longitude float64

	guard ConstructorGuard
}

// NewGeoPoint creates a validated GeoPoint from latitude and longitude in
// decimal degrees. Latitude must lie within [-90, 90] and longitude within
// [-180, 180]; NaN and infinities are rejected.
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	if math.IsNaN(latitude) || math.IsInf(latitude, 0) {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("latitude", fmt.Errorf("%v is not a finite number", latitude))
	}
	if math.IsNaN(longitude) || math.IsInf(longitude, 0) {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("longitude", fmt.Errorf("%v is not a finite number", longitude))
	}
	if latitude < GeoMinLatitude || latitude > GeoMaxLatitude {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("latitude", latitude, GeoMinLatitude, GeoMaxLatitude)
	}
	if longitude < GeoMinLongitude || longitude > GeoMaxLongitude {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("longitude", longitude, GeoMinLongitude, GeoMaxLongitude)
	}

	return GeoPoint{
		latitude:  latitude,
		longitude: longitude,
		guard:     NewConstructorGuard(),
	}, nil
}

// Latitude returns the latitude in decimal degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in decimal degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// IsEqual compares two points by coordinates.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.latitude == other.latitude && p.longitude == other.longitude
}

// DistanceTo returns the great-circle distance to another point in
// kilometers, computed with the haversine formula.
func (p GeoPoint) DistanceTo(other GeoPoint) float64 {
	lat1 := p.latitude * math.Pi / 180
	lat2 := other.latitude * math.Pi / 180
	dLat := (other.latitude - p.latitude) * math.Pi / 180
	dLon := (other.longitude - p.longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Validate checks the point was created through NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}
