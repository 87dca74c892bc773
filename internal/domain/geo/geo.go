// Package geo converts a search circle into a latitude/longitude pre-filter and
// measures great-circle distance. Everything here is pure and stateless.
package geo

import (
	"math"

	"alertradar/internal/domain/entity"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

const (
	// EarthRadiusMiles is the radius used to size bounding boxes.
	EarthRadiusMiles = 3958.8

	// MetersPerMile converts orb's metric distances.
	MetersPerMile = 1609.344

	// polarCosEpsilon is where the longitude delta is treated as diverging.
	polarCosEpsilon = 1e-9
)

// Bounds is an axis-aligned latitude/longitude rectangle.
// When MinLng > MaxLng the rectangle crosses the antimeridian.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLng float64 `json:"max_lng"`

	// AllLongitudes is set when the circle reaches a pole or spans the whole globe;
	// only the latitude band restricts membership.
	AllLongitudes bool `json:"all_longitudes"`
}

// CrossesAntimeridian reports whether the longitude range wraps across ±180°.
func (b Bounds) CrossesAntimeridian() bool {
	return !b.AllLongitudes && b.MinLng > b.MaxLng
}

// Contains reports whether loc lies inside the rectangle (edges inclusive).
func (b Bounds) Contains(loc entity.Location) bool {
	if loc.Latitude < b.MinLat || loc.Latitude > b.MaxLat {
		return false
	}

	if b.AllLongitudes {
		return true
	}

	if b.CrossesAntimeridian() {
		return loc.Longitude >= b.MinLng || loc.Longitude <= b.MaxLng
	}

	return loc.Longitude >= b.MinLng && loc.Longitude <= b.MaxLng
}

// Bound returns the orb representation. Wrapping or unbounded longitude ranges
// are widened to the full [-180, 180] span.
func (b Bounds) Bound() orb.Bound {
	minLng, maxLng := b.MinLng, b.MaxLng
	if b.AllLongitudes || b.CrossesAntimeridian() {
		minLng, maxLng = -180, 180
	}

	return orb.Bound{
		Min: orb.Point{minLng, b.MinLat},
		Max: orb.Point{maxLng, b.MaxLat},
	}
}

// BoundingBox returns a rectangle guaranteed to contain every point within
// radiusMiles of center.
//
// The latitude delta is radius/R in degrees. The longitude delta divides that by
// cos(latitude); it is raised to the exact spherical cap extent when that is
// wider, which happens at high latitudes with large radii. If the cap touches a
// pole or the cosine term vanishes, longitude is left unrestricted.
func BoundingBox(center entity.Location, radiusMiles float64) Bounds {
	radiusMiles = math.Max(radiusMiles, 0)
	angular := radiusMiles / EarthRadiusMiles
	latDelta := angular * (180 / math.Pi)

	bounds := Bounds{
		MinLat: math.Max(center.Latitude-latDelta, -90),
		MaxLat: math.Min(center.Latitude+latDelta, 90),
	}

	if bounds.MinLat <= -90 || bounds.MaxLat >= 90 {
		bounds.AllLongitudes = true

		return bounds
	}

	cosLat := math.Cos(center.Latitude * math.Pi / 180)
	if cosLat < polarCosEpsilon {
		bounds.AllLongitudes = true

		return bounds
	}

	lngDelta := latDelta / cosLat

	ratio := math.Sin(angular) / cosLat
	if ratio >= 1 {
		bounds.AllLongitudes = true

		return bounds
	}
	lngDelta = math.Max(lngDelta, math.Asin(ratio)*(180/math.Pi))

	if lngDelta >= 180 {
		bounds.AllLongitudes = true

		return bounds
	}

	bounds.MinLng = NormalizeLongitude(center.Longitude - lngDelta)
	bounds.MaxLng = NormalizeLongitude(center.Longitude + lngDelta)

	return bounds
}

// DistanceMiles returns the haversine great-circle distance between a and b.
func DistanceMiles(a, b entity.Location) float64 {
	return orbgeo.DistanceHaversine(toPoint(a), toPoint(b)) / MetersPerMile
}

// NormalizeLongitude maps any longitude into [-180, 180].
func NormalizeLongitude(lng float64) float64 {
	if lng >= -180 && lng <= 180 {
		return lng
	}

	lng = math.Mod(lng+180, 360)
	if lng < 0 {
		lng += 360
	}

	return lng - 180
}

func toPoint(loc entity.Location) orb.Point {
	return orb.Point{loc.Longitude, loc.Latitude}
}
