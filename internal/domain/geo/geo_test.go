package geo

import (
	"fmt"
	"testing"

	"alertradar/internal/domain/entity"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sanFrancisco = entity.Location{Latitude: 37.7749, Longitude: -122.4194}
	losAngeles   = entity.Location{Latitude: 34.0522, Longitude: -118.2437}
)

func TestDistanceMiles_SanFranciscoToLosAngeles(t *testing.T) {
	dist := DistanceMiles(sanFrancisco, losAngeles)

	assert.InDelta(t, 347, dist, 3)
}

func TestDistanceMiles_SymmetricAndZero(t *testing.T) {
	points := []entity.Location{
		sanFrancisco,
		losAngeles,
		{Latitude: 0, Longitude: 0},
		{Latitude: -33.8688, Longitude: 151.2093},
		{Latitude: 89.9, Longitude: 179.9},
		{Latitude: -89.9, Longitude: -179.9},
	}

	for _, a := range points {
		assert.Zero(t, DistanceMiles(a, a))
		for _, b := range points {
			assert.InDelta(t, DistanceMiles(a, b), DistanceMiles(b, a), 1e-9, "distance(%v, %v)", a, b)
		}
	}
}

func TestBoundingBox_ExcludesFarAlert(t *testing.T) {
	bounds := BoundingBox(sanFrancisco, 10)

	assert.True(t, bounds.Contains(sanFrancisco))
	assert.False(t, bounds.Contains(losAngeles))
	assert.False(t, bounds.AllLongitudes)
	assert.False(t, bounds.CrossesAntimeridian())
}

func TestBoundingBox_LatitudeDeltaMatchesRadius(t *testing.T) {
	bounds := BoundingBox(entity.Location{Latitude: 0, Longitude: 0}, EarthRadiusMiles)

	// radius / R = 1 radian ≈ 57.2958°
	assert.InDelta(t, 57.2958, bounds.MaxLat, 1e-3)
	assert.InDelta(t, -57.2958, bounds.MinLat, 1e-3)
}

func TestBoundingBox_IsSupersetOfCircle(t *testing.T) {
	centers := []entity.Location{
		sanFrancisco,
		{Latitude: 0, Longitude: 0},
		{Latitude: 60, Longitude: 10},
		{Latitude: 80, Longitude: -45},
		{Latitude: -75, Longitude: 120},
		{Latitude: 10, Longitude: 179.95},
		{Latitude: -20, Longitude: -179.99},
	}
	radii := []float64{0.5, 10, 100, 500}
	bearings := []float64{0, 30, 45, 60, 89, 90, 91, 135, 180, 225, 270, 300, 359}

	for _, center := range centers {
		for _, radius := range radii {
			bounds := BoundingBox(center, radius)

			t.Run(fmt.Sprintf("%v/%v", center, radius), func(t *testing.T) {
				for _, bearing := range bearings {
					for _, fraction := range []float64{0.25, 0.5, 0.999} {
						p := destination(center, bearing, radius*fraction)
						require.LessOrEqual(t, DistanceMiles(center, p), radius)
						assert.True(t, bounds.Contains(p), "bearing %v fraction %v point %v bounds %+v", bearing, fraction, p, bounds)
					}
				}
			})
		}
	}
}

func TestBoundingBox_PolarCenterHasNoLongitudeRestriction(t *testing.T) {
	for _, lat := range []float64{90, -90, 89.99} {
		bounds := BoundingBox(entity.Location{Latitude: lat, Longitude: 12}, 10)

		assert.True(t, bounds.AllLongitudes, "lat %v", lat)
		assert.True(t, bounds.Contains(entity.Location{Latitude: lat, Longitude: -170}))
		assert.GreaterOrEqual(t, bounds.MinLat, -90.0)
		assert.LessOrEqual(t, bounds.MaxLat, 90.0)
	}
}

func TestBoundingBox_AntimeridianWrap(t *testing.T) {
	bounds := BoundingBox(entity.Location{Latitude: 0, Longitude: 179.99}, 10)

	require.True(t, bounds.CrossesAntimeridian())
	assert.True(t, bounds.Contains(entity.Location{Latitude: 0, Longitude: -179.95}))
	assert.True(t, bounds.Contains(entity.Location{Latitude: 0, Longitude: 179.9}))
	assert.False(t, bounds.Contains(entity.Location{Latitude: 0, Longitude: 0}))

	bound := bounds.Bound()
	assert.Equal(t, -180.0, bound.Min.Lon())
	assert.Equal(t, 180.0, bound.Max.Lon())
}

func TestBoundingBox_ZeroRadius(t *testing.T) {
	bounds := BoundingBox(sanFrancisco, 0)

	assert.True(t, bounds.Contains(sanFrancisco))
	assert.False(t, bounds.Contains(entity.Location{Latitude: sanFrancisco.Latitude + 0.01, Longitude: sanFrancisco.Longitude}))
}

func TestNormalizeLongitude(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 0, want: 0},
		{in: 180, want: 180},
		{in: -180, want: -180},
		{in: 190, want: -170},
		{in: -190, want: 170},
		{in: 540, want: -180},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, NormalizeLongitude(tt.in), 1e-9, "NormalizeLongitude(%v)", tt.in)
	}
}

func destination(center entity.Location, bearing, miles float64) entity.Location {
	p := orbgeo.PointAtBearingAndDistance(orb.Point{center.Longitude, center.Latitude}, bearing, miles*MetersPerMile)

	return entity.Location{Latitude: p.Lat(), Longitude: NormalizeLongitude(p.Lon())}
}
