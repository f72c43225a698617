// Package progress advances the active step of a navigation session from
// incoming position samples and recomputes the remaining distance and time.
package progress

import (
	"fmt"

	"github.com/ghostracer/navigation/geo"
	"github.com/ghostracer/navigation/route"
)

// DefaultAdvanceThreshold is the distance to a step's maneuver point at which
// the step is considered done.
const DefaultAdvanceThreshold = 30.0

// Tracker advances along a flattened step sequence. The zero value uses the
// default threshold.
type Tracker struct {
	AdvanceThreshold float64
}

// Result is the outcome of a single Advance call.
type Result struct {
	// Current is the step index after any promotions.
	Current int
	// Advanced counts step promotions caused by this sample. Several steps
	// may be consumed at once when their maneuver points coincide.
	Advanced int
	// Arrived is true once the final step's maneuver point is reached.
	Arrived bool
	// DistanceToManeuver is the distance from the sample to the current
	// step's maneuver point.
	DistanceToManeuver float64
	// RemainingDistance and RemainingTime are whole-step sums from the
	// current step onward; there is no intra-step interpolation.
	RemainingDistance float64
	RemainingTime     float64
}

// Advance processes one position sample against the flattened steps. It is
// pure: the caller applies the result to its session state. It never calls
// the routing service.
func (t Tracker) Advance(steps []route.Step, current int, pos geo.Coordinate) (Result, error) {
	if len(steps) == 0 {
		return Result{}, fmt.Errorf("progress: no steps")
	}
	if current < 0 || current >= len(steps) {
		return Result{}, fmt.Errorf("progress: step index %d out of range [0,%d)", current, len(steps))
	}
	threshold := t.AdvanceThreshold
	if threshold <= 0 {
		threshold = DefaultAdvanceThreshold
	}

	idx := current
	advanced := 0
	arrived := false
	for {
		d := geo.Distance(pos, steps[idx].ManeuverPoint())
		if d > threshold {
			break
		}
		if idx == len(steps)-1 {
			arrived = true
			break
		}
		idx++
		advanced++
	}

	res := Result{
		Current:            idx,
		Advanced:           advanced,
		Arrived:            arrived,
		DistanceToManeuver: geo.Distance(pos, steps[idx].ManeuverPoint()),
	}
	if !arrived {
		for _, s := range steps[idx:] {
			res.RemainingDistance += s.Distance
			res.RemainingTime += s.Duration
		}
	}
	return res, nil
}
