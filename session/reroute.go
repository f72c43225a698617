package session

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/ghostracer/navigation/geo"
	"github.com/ghostracer/navigation/route"
	"github.com/ghostracer/navigation/routing"
)

// beginReroute requests a replacement route from the current position to the
// original destination. Callers hold the lock and have verified that no
// reroute is in flight; a second off-route detection while this one is
// pending is dropped, not queued.
func (s *Session) beginReroute(current geo.Coordinate) {
	s.state.Rerouting = true
	epoch := s.epoch
	dest := s.destination
	opts := s.opts

	ctx, cancel := context.WithTimeout(context.Background(), s.rerouteTimeout)
	s.rerouteCancel = cancel

	go func() {
		r, err := s.svc.GetRoute(ctx, current, dest, opts)
		cancel()
		if err == nil && r == nil {
			err = routing.ErrRouteUnavailable
		}
		if err == nil {
			err = route.Validate(r)
		}
		s.completeReroute(epoch, r, err)
	}()
}

// completeReroute applies a reroute outcome. Responses issued under a stale
// epoch (the session was stopped or restarted meanwhile) are discarded.
func (s *Session) completeReroute(epoch uint64, r *route.Route, err error) {
	s.mu.Lock()
	emit := s.applyReroute(epoch, r, err)
	s.mu.Unlock()
	for _, fn := range emit {
		fn()
	}
}

func (s *Session) applyReroute(epoch uint64, r *route.Route, err error) []func() {
	if s.epoch != epoch || s.state.Status != StatusNavigating {
		return nil
	}
	s.state.Rerouting = false
	s.rerouteCancel = nil

	if err != nil {
		// Keep the stale route and the off-route flag; the caller decides
		// whether to retry or notify the driver.
		if s.events.RerouteFailed != nil {
			wrapped := fmt.Errorf("reroute: %w", err)
			return []func(){func() { s.events.RerouteFailed(wrapped) }}
		}
		return nil
	}

	steps := r.FlattenSteps()
	s.steps = steps
	s.destination = r.Destination()
	s.lastAnnounceRemaining = math.Inf(1)

	remainingDist, remainingTime := sumSteps(steps)
	s.state.Route = r
	s.state.CurrentStepIndex = 0
	s.state.RemainingSteps = suffix(steps, 0)
	s.state.RemainingDistance = remainingDist
	s.state.RemainingTime = remainingTime
	s.state.ETA = s.now().Add(time.Duration(remainingTime * float64(time.Second)))

	// Re-check against the fresh route and the latest known position before
	// declaring the session back on-route; a reroute result must not
	// resurrect an on-route state the newest sample contradicts.
	if s.hasPos {
		off, _ := s.detector.Check(r.Geometry, s.lastPos)
		s.state.OffRoute = off
	} else {
		s.state.OffRoute = false
	}

	if s.events.Rerouted != nil {
		return []func(){func() { s.events.Rerouted(r) }}
	}
	return nil
}
