package geofence

import (
	"math"

	"tourguard/internal/domain/entity"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

const (
	// boundPadding widens every box so floating point error never excludes a boundary point.
	boundPadding = 1.001
	minBoxDegree = 1e-9
)

// boundAround returns a lng/lat box guaranteed to contain every point within
// meters of center. Boxes that would cross the antimeridian or reach a pole
// span the full longitude range.
func boundAround(center entity.Coordinate, meters float64) orb.Bound {
	meters = math.Max(meters, 0) * boundPadding
	latDelta := meters / EarthRadiusMeters * 180 / math.Pi

	minLat := math.Max(center.Latitude-latDelta, -90)
	maxLat := math.Min(center.Latitude+latDelta, 90)

	// Longitude degrees shrink toward the poles, so scale by the widest latitude in the box.
	widestLat := math.Max(math.Abs(minLat), math.Abs(maxLat))
	cosLat := math.Cos(toRadians(widestLat))

	minLng, maxLng := -180.0, 180.0
	if cosLat > 1e-6 {
		lngDelta := latDelta / cosLat
		if center.Longitude-lngDelta >= -180 && center.Longitude+lngDelta <= 180 {
			minLng = center.Longitude - lngDelta
			maxLng = center.Longitude + lngDelta
		}
	}

	return orb.Bound{
		Min: orb.Point{minLng, minLat},
		Max: orb.Point{maxLng, maxLat},
	}
}

// toRect converts an orb bound to the rtree's (lng, lat) rectangle.
func toRect(b orb.Bound) *rtreego.Rect {
	width := math.Max(b.Max.X()-b.Min.X(), minBoxDegree)
	height := math.Max(b.Max.Y()-b.Min.Y(), minBoxDegree)

	rect, err := rtreego.NewRect(rtreego.Point{b.Min.X(), b.Min.Y()}, []float64{width, height})
	if err != nil {
		// Unreachable: both lengths are strictly positive.
		panic(err)
	}

	return rect
}
