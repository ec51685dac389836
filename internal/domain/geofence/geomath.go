// Package geofence evaluates tourist positions against circular safety zones.
//
// Everything in this package is synchronous and free of I/O: the index is
// an in-memory structure and the evaluator is a pure function of its input.
package geofence

import (
	"math"

	"tourguard/internal/domain/entity"
)

// EarthRadiusMeters is the mean Earth radius used by every distance computation.
const EarthRadiusMeters = 6371000.0

// HaversineMeters returns the great-circle distance between a and b in meters.
// It is symmetric and returns exactly 0 for identical points.
func HaversineMeters(a, b entity.Coordinate) float64 {
	if a == b {
		return 0
	}

	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := lat2 - lat1
	dLng := toRadians(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng
	// Rounding can push h a hair past 1 for antipodal points.
	h = math.Min(1, h)

	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(h))
}

// IsInside reports whether point lies within the fence. The boundary counts as inside.
func IsInside(point entity.Coordinate, fence *entity.Geofence) bool {
	return HaversineMeters(point, fence.Center) <= fence.RadiusMeters
}

// DistanceToEdge is the distance from point to the fence boundary; negative when inside.
func DistanceToEdge(point entity.Coordinate, fence *entity.Geofence) float64 {
	return HaversineMeters(point, fence.Center) - fence.RadiusMeters
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
