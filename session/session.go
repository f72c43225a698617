package session

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/ghostracer/navigation/announce"
	"github.com/ghostracer/navigation/geo"
	"github.com/ghostracer/navigation/offroute"
	"github.com/ghostracer/navigation/progress"
	"github.com/ghostracer/navigation/route"
	"github.com/ghostracer/navigation/routing"
)

const defaultRerouteTimeout = 5 * time.Second

// Config tunes a session. Zero fields fall back to the component defaults.
type Config struct {
	// StepAdvanceMeters is the distance to a maneuver point at which the
	// step is consumed (default 30).
	StepAdvanceMeters float64
	// OffRouteMeters is the off-route threshold (default 100).
	OffRouteMeters float64
	// AnnounceThresholds re-arm synthesized announcements on downward
	// crossing (default 500, 200).
	AnnounceThresholds []float64
	// RerouteTimeout bounds a single reroute request, independent of any
	// position-source timeout (default 5s).
	RerouteTimeout time.Duration
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Session is the navigation orchestrator. Construct with New; a Session must
// not be copied.
type Session struct {
	svc      routing.Service
	events   Events
	tracker  progress.Tracker
	detector offroute.Detector
	selector announce.Selector
	now      func() time.Time

	rerouteTimeout time.Duration

	mu    sync.Mutex
	state State
	// steps is the flattened step sequence of the active route.
	steps       []route.Step
	opts        route.Options
	destination geo.Coordinate
	// epoch tags reroute requests; Stop bumps it so stale responses are
	// discarded instead of mutating a closed session.
	epoch          uint64
	lastSampleTime time.Time
	lastPos        geo.Coordinate
	hasPos         bool
	// lastAnnounceRemaining is the remaining distance to the maneuver at
	// the previous announcement decision.
	lastAnnounceRemaining float64
	rerouteCancel         context.CancelFunc
}

// New creates an Idle session using the given routing service and event
// callbacks.
func New(svc routing.Service, events Events, cfg Config) *Session {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	timeout := cfg.RerouteTimeout
	if timeout <= 0 {
		timeout = defaultRerouteTimeout
	}
	return &Session{
		svc:                   svc,
		events:                events,
		tracker:               progress.Tracker{AdvanceThreshold: cfg.StepAdvanceMeters},
		detector:              offroute.Detector{Threshold: cfg.OffRouteMeters},
		selector:              announce.Selector{Thresholds: cfg.AnnounceThresholds},
		now:                   now,
		rerouteTimeout:        timeout,
		state:                 State{Status: StatusIdle},
		lastAnnounceRemaining: math.Inf(1),
	}
}

// Snapshot returns a copy of the session state for the UI layer.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start requests a route from origin to destination and begins navigating.
// On failure the session stays Idle and the error wraps
// routing.ErrRouteUnavailable or route.InvalidGeometryError.
func (s *Session) Start(ctx context.Context, origin, destination geo.Coordinate, opts route.Options) error {
	r, err := s.svc.GetRoute(ctx, origin, destination, opts)
	if err != nil {
		return fmt.Errorf("start navigation: %w", err)
	}
	if r == nil {
		return fmt.Errorf("start navigation: %w", routing.ErrRouteUnavailable)
	}
	if err := route.Validate(r); err != nil {
		return fmt.Errorf("start navigation: %w", err)
	}

	s.mu.Lock()
	s.install(r, opts)
	s.mu.Unlock()
	return nil
}

// StartWithRoute begins navigating a route that was already chosen, e.g.
// from PlanAlternatives, skipping the routing-service call.
func (s *Session) StartWithRoute(r *route.Route) error {
	if err := route.Validate(r); err != nil {
		return fmt.Errorf("start navigation: %w", err)
	}
	s.mu.Lock()
	s.install(r, route.Options{})
	s.mu.Unlock()
	return nil
}

// PlanAlternatives returns candidate routes without mutating session state.
func (s *Session) PlanAlternatives(ctx context.Context, origin, destination geo.Coordinate, opts route.Options) ([]route.Route, error) {
	routes, err := s.svc.GetAlternatives(ctx, origin, destination, opts)
	if err != nil {
		return nil, fmt.Errorf("plan alternatives: %w", err)
	}
	if len(routes) == 0 {
		return nil, fmt.Errorf("plan alternatives: %w", routing.ErrRouteUnavailable)
	}
	for i := range routes {
		if err := route.Validate(&routes[i]); err != nil {
			return nil, fmt.Errorf("plan alternatives: %w", err)
		}
	}
	return routes, nil
}

// Stop cancels any in-flight reroute and resets the session to its Idle
// defaults.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	if s.rerouteCancel != nil {
		s.rerouteCancel()
		s.rerouteCancel = nil
	}
	s.state = State{Status: StatusIdle}
	s.steps = nil
	s.opts = route.Options{}
	s.destination = geo.Coordinate{}
	s.lastSampleTime = time.Time{}
	s.lastPos = geo.Coordinate{}
	s.hasPos = false
	s.lastAnnounceRemaining = math.Inf(1)
}

// OnPositionSample is the single entry point driving guidance. Samples are
// processed in arrival order; a timestamped sample older than the last
// processed one is dropped. One bad sample never tears the session down.
func (s *Session) OnPositionSample(sample Sample) {
	s.mu.Lock()
	emit := s.processSample(sample)
	s.mu.Unlock()
	for _, fn := range emit {
		fn()
	}
}

// processSample runs tracker, detector, reroute trigger and announcement
// selection under the session lock and returns the event emissions to run
// after it is released.
func (s *Session) processSample(sample Sample) []func() {
	if s.state.Status != StatusNavigating {
		return nil
	}
	if !sample.Time.IsZero() {
		if !s.lastSampleTime.IsZero() && sample.Time.Before(s.lastSampleTime) {
			return nil
		}
		s.lastSampleTime = sample.Time
	}
	s.lastPos = sample.Coord
	s.hasPos = true

	var emit []func()

	res, err := s.tracker.Advance(s.steps, s.state.CurrentStepIndex, sample.Coord)
	if err != nil {
		// Malformed update; skip it rather than crash guidance.
		return nil
	}

	from := s.state.CurrentStepIndex
	s.applyProgress(res)
	if res.Advanced > 0 && !res.Arrived && s.events.StepAdvanced != nil {
		to := res.Current
		step := s.steps[to]
		emit = append(emit, func() { s.events.StepAdvanced(from, to, step) })
	}
	if res.Arrived {
		s.state.Status = StatusArrived
		s.state.OffRoute = false
		s.state.Rerouting = false
		if s.rerouteCancel != nil {
			s.rerouteCancel()
			s.rerouteCancel = nil
		}
		if s.events.Arrived != nil {
			emit = append(emit, s.events.Arrived)
		}
		return emit
	}

	wasOff := s.state.OffRoute
	off, minDist := s.detector.Check(s.state.Route.Geometry, sample.Coord)
	s.state.OffRoute = off
	if off {
		if !wasOff && s.events.OffRouteDetected != nil {
			emit = append(emit, func() { s.events.OffRouteDetected(minDist) })
		}
		if !s.state.Rerouting {
			s.beginReroute(sample.Coord)
		}
		return emit
	}

	step := s.steps[s.state.CurrentStepIndex]
	text, ok := s.selector.Select(step, res.DistanceToManeuver, s.state.LastAnnouncement, s.lastAnnounceRemaining)
	s.lastAnnounceRemaining = res.DistanceToManeuver
	if ok {
		s.state.LastAnnouncement = text
		if s.events.Announcement != nil {
			emit = append(emit, func() { s.events.Announcement(text) })
		}
	}
	return emit
}

// install loads a route into the session and transitions to Navigating.
// Callers hold the lock. Any reroute still in flight belongs to the previous
// navigation and is invalidated, like in Stop.
func (s *Session) install(r *route.Route, opts route.Options) {
	s.epoch++
	if s.rerouteCancel != nil {
		s.rerouteCancel()
		s.rerouteCancel = nil
	}
	steps := r.FlattenSteps()
	s.steps = steps
	s.opts = opts
	s.destination = r.Destination()
	s.lastSampleTime = time.Time{}
	s.hasPos = false
	s.lastAnnounceRemaining = math.Inf(1)

	remainingDist, remainingTime := sumSteps(steps)
	s.state = State{
		Status:            StatusNavigating,
		Route:             r,
		CurrentStepIndex:  0,
		RemainingSteps:    suffix(steps, 0),
		RemainingDistance: remainingDist,
		RemainingTime:     remainingTime,
		ETA:               s.now().Add(time.Duration(remainingTime * float64(time.Second))),
	}
}

// applyProgress folds a tracker result into the state. Callers hold the lock.
func (s *Session) applyProgress(res progress.Result) {
	s.state.CurrentStepIndex = res.Current
	s.state.RemainingSteps = suffix(s.steps, res.Current)
	s.state.RemainingDistance = res.RemainingDistance
	s.state.RemainingTime = res.RemainingTime
	s.state.ETA = s.now().Add(time.Duration(res.RemainingTime * float64(time.Second)))
}

// suffix returns the steps after index current, excluding the current step.
func suffix(steps []route.Step, current int) []route.Step {
	if current+1 >= len(steps) {
		return nil
	}
	out := make([]route.Step, len(steps)-current-1)
	copy(out, steps[current+1:])
	return out
}

func sumSteps(steps []route.Step) (dist, dur float64) {
	for _, st := range steps {
		dist += st.Distance
		dur += st.Duration
	}
	return dist, dur
}
