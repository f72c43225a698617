// Package announce decides whether and what to announce for the current step
// given the remaining distance to its maneuver.
//
// The selector is pure: the session updates its last-announcement state after
// a selection, which keeps this package independently testable.
package announce

import (
	"fmt"
	"sort"

	"github.com/ghostracer/navigation/route"
	"github.com/ghostracer/navigation/utils"
)

// NoPrefixBelow is the remaining distance under which synthesized
// announcements drop the "In <distance>," prefix.
const NoPrefixBelow = 100.0

// DefaultThresholds are the remaining-distance marks whose downward crossing
// re-arms a synthesized announcement.
var DefaultThresholds = []float64{500, 200}

// Selector picks announcements. The zero value uses DefaultThresholds.
type Selector struct {
	Thresholds []float64
}

// Select returns the announcement for the step at the given remaining
// distance to its maneuver, or ("", false) when nothing should be announced.
//
// last is the most recent announcement the session made; lastRemaining is the
// remaining distance at the previous sample, used to detect threshold
// crossings for synthesized announcements.
func (s Selector) Select(step route.Step, remaining float64, last string, lastRemaining float64) (string, bool) {
	if len(step.VoiceInstructions) > 0 {
		return s.selectVoice(step.VoiceInstructions, remaining, last)
	}
	return s.selectSynthesized(step, remaining, last, lastRemaining)
}

// selectVoice picks the instruction with the largest trigger distance that
// has been reached, i.e. the closest unconsumed trigger point.
func (s Selector) selectVoice(instructions []route.VoiceInstruction, remaining float64, last string) (string, bool) {
	ordered := make([]route.VoiceInstruction, len(instructions))
	copy(ordered, instructions)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].TriggerDistance > ordered[j].TriggerDistance
	})
	for _, vi := range ordered {
		if vi.TriggerDistance <= remaining {
			if vi.Announcement == "" || vi.Announcement == last {
				return "", false
			}
			return vi.Announcement, true
		}
	}
	return "", false
}

func (s Selector) selectSynthesized(step route.Step, remaining float64, last string, lastRemaining float64) (string, bool) {
	phrase := step.Maneuver.Phrase(step.RoadName)
	text := phrase
	if remaining >= NoPrefixBelow {
		text = fmt.Sprintf("In %s, %s", utils.DistancePhrase(remaining), lowerFirst(phrase))
	}
	if text != last {
		return text, true
	}
	if s.crossedThreshold(lastRemaining, remaining) {
		return text, true
	}
	return "", false
}

func (s Selector) crossedThreshold(before, after float64) bool {
	thresholds := s.Thresholds
	if len(thresholds) == 0 {
		thresholds = DefaultThresholds
	}
	for _, t := range thresholds {
		if before > t && after <= t {
			return true
		}
	}
	return false
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	c := s[0]
	if c >= 'A' && c <= 'Z' {
		return string(c+'a'-'A') + s[1:]
	}
	return s
}
