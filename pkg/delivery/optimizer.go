package delivery

import (
	"math"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
)

// RouteOptimizer orders a delivery's segments for execution. Implementations
// are heuristics; callers must not assume the result is globally optimal.
type RouteOptimizer interface {
	// Order reorders segments and renumbers them 1..N.
	Order(segments []models.DeliverySegment) []models.DeliverySegment
}

// NearestNeighborOptimizer orders segments greedily: starting from the first
// proposed segment, it repeatedly appends the unvisited segment whose pickup
// is closest to the previous dropoff.
type NearestNeighborOptimizer struct{}

var _ RouteOptimizer = (*NearestNeighborOptimizer)(nil)

// Order applies the nearest-neighbor heuristic and renumbers the result 1..N.
func (NearestNeighborOptimizer) Order(segments []models.DeliverySegment) []models.DeliverySegment {
	if len(segments) <= 1 {
		return renumber(segments)
	}

	remaining := make([]models.DeliverySegment, len(segments))
	copy(remaining, segments)

	ordered := make([]models.DeliverySegment, 0, len(segments))
	current := remaining[0]
	ordered = append(ordered, current)
	remaining = append(remaining[:0:0], remaining[1:]...)

	for len(remaining) > 0 {
		best := 0
		bestDist := math.MaxFloat64
		for i, s := range remaining {
			d := distance(current.DropoffLat, current.DropoffLon, s.PickupLat, s.PickupLon)
			if d < bestDist {
				best, bestDist = i, d
			}
		}
		current = remaining[best]
		ordered = append(ordered, current)
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return renumber(ordered)
}

func renumber(segments []models.DeliverySegment) []models.DeliverySegment {
	for i := range segments {
		segments[i].Seq = i + 1
	}
	return segments
}

// distance is the haversine great-circle distance in kilometers.
func distance(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371.0

	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
