// Package offroute decides whether a position has left the route polyline.
package offroute

import (
	"math"

	"github.com/ghostracer/navigation/geo"
)

// DefaultThreshold is the distance from the route polyline beyond which a
// position counts as off-route. All distances are meters.
const DefaultThreshold = 100.0

// Detector checks positions against a route polyline. The zero value uses
// the default threshold.
type Detector struct {
	Threshold float64
}

// Check returns whether pos is off-route and the minimum distance from pos
// to the polyline. The scan is O(n) in polyline points, which is fine at
// GPS sample cadence.
func (d Detector) Check(geom []geo.Coordinate, pos geo.Coordinate) (bool, float64) {
	threshold := d.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if len(geom) == 0 {
		return false, 0
	}
	if len(geom) == 1 {
		dist := geo.Distance(pos, geom[0])
		return dist > threshold, dist
	}

	minDist := math.Inf(1)
	for i := 0; i < len(geom)-1; i++ {
		dist := geo.DistanceToSegment(pos, geom[i], geom[i+1])
		if dist < minDist {
			minDist = dist
		}
	}
	return minDist > threshold, minDist
}
