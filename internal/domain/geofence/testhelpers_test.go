package geofence

import (
	"math"

	"tourguard/internal/domain/entity"

	"github.com/google/uuid"
)

// destination returns the point at distance meters and the given bearing from origin.
func destination(origin entity.Coordinate, bearingDeg, meters float64) entity.Coordinate {
	lat1 := toRadians(origin.Latitude)
	lng1 := toRadians(origin.Longitude)
	brng := toRadians(bearingDeg)
	ang := meters / EarthRadiusMeters

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(ang) + math.Cos(lat1)*math.Sin(ang)*math.Cos(brng))
	lng2 := lng1 + math.Atan2(math.Sin(brng)*math.Sin(ang)*math.Cos(lat1), math.Cos(ang)-math.Sin(lat1)*math.Sin(lat2))

	lng := math.Mod(lng2*180/math.Pi+540, 360) - 180

	return entity.Coordinate{Latitude: lat2 * 180 / math.Pi, Longitude: lng}
}

func newFence(name string, center entity.Coordinate, radius float64, safe bool) *entity.Geofence {
	return &entity.Geofence{
		ID:           uuid.New(),
		Name:         name,
		Center:       center,
		RadiusMeters: radius,
		Safe:         safe,
		Active:       true,
	}
}

func fenceIDs(fences []*entity.Geofence) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(fences))
	for _, f := range fences {
		ids = append(ids, f.ID)
	}

	return ids
}
