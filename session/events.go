package session

import "github.com/ghostracer/navigation/route"

// Events carries the discrete callbacks the session emits toward the UI
// layer. Nil fields are skipped. Callbacks run synchronously on the calling
// goroutine, after the session lock is released, so they may safely call
// Snapshot.
type Events struct {
	// StepAdvanced fires when the current step index moves forward.
	StepAdvanced func(from, to int, current route.Step)
	// OffRouteDetected fires on the transition onto the off-route
	// condition, with the minimum distance to the route polyline.
	OffRouteDetected func(minDistance float64)
	// Rerouted fires when a replacement route has been applied.
	Rerouted func(r *route.Route)
	// RerouteFailed fires when a reroute request failed; the stale route
	// stays in place and the caller decides retry cadence.
	RerouteFailed func(err error)
	// Arrived fires once when the destination is reached.
	Arrived func()
	// Announcement fires when a voice announcement was selected.
	Announcement func(text string)
}
