package session

import (
	"time"

	"github.com/ghostracer/navigation/geo"
	"github.com/ghostracer/navigation/route"
)

// Status is the session lifecycle state.
type Status string

const (
	// StatusIdle means no route is loaded: before start or after stop.
	StatusIdle Status = "idle"
	// StatusNavigating means a route is loaded and guidance is running.
	StatusNavigating Status = "navigating"
	// StatusArrived means the final step's proximity threshold was reached.
	StatusArrived Status = "arrived"
)

// State is the session's guidance state. Snapshot returns copies of it for
// the UI layer; OffRoute and Rerouting are flags of Navigating, not
// sub-states, since rerouting does not interrupt guidance.
type State struct {
	Status           Status       `json:"status"`
	Route            *route.Route `json:"route,omitempty"`
	CurrentStepIndex int          `json:"currentStepIndex"`
	// RemainingSteps is the suffix of the flattened step sequence after
	// CurrentStepIndex; it excludes the current step.
	RemainingSteps    []route.Step `json:"remainingSteps,omitempty"`
	RemainingDistance float64      `json:"remainingDistance"`
	RemainingTime     float64      `json:"remainingTime"`
	ETA               time.Time    `json:"eta,omitzero"`
	OffRoute          bool         `json:"offRoute"`
	Rerouting         bool         `json:"rerouting"`
	LastAnnouncement  string       `json:"lastAnnouncement,omitempty"`
}

// CurrentStep returns the active step, or nil outside Navigating/Arrived.
func (s *State) CurrentStep() *route.Step {
	if s.Route == nil {
		return nil
	}
	steps := s.Route.FlattenSteps()
	if s.CurrentStepIndex < 0 || s.CurrentStepIndex >= len(steps) {
		return nil
	}
	step := steps[s.CurrentStepIndex]
	return &step
}

// Sample is one position report from the device location source.
type Sample struct {
	Coord geo.Coordinate
	// Speed is meters per second; negative means unknown.
	Speed float64
	// Heading is degrees clockwise from north; negative means unknown.
	Heading float64
	// Accuracy is the horizontal accuracy radius in meters; zero or
	// negative means unknown.
	Accuracy float64
	// Time is when the sample was measured. Zero-time samples are accepted
	// in arrival order; timestamped samples older than the last processed
	// one are dropped.
	Time time.Time
}
