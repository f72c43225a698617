package route

import "github.com/ghostracer/navigation/geo"

// Profile names recognized in Options. Forwarded opaquely to the routing
// service; the engine never interprets them.
const (
	ProfileNormal       = "normal"
	ProfileTrafficAware = "traffic-aware"
)

// Options configures a routing request.
type Options struct {
	Profile       string `json:"profile,omitempty" yaml:"profile" validate:"omitempty,oneof=normal traffic-aware"`
	AvoidHighways bool   `json:"avoidHighways,omitempty" yaml:"avoidHighways"`
	AvoidTolls    bool   `json:"avoidTolls,omitempty" yaml:"avoidTolls"`
	AvoidFerries  bool   `json:"avoidFerries,omitempty" yaml:"avoidFerries"`
}

// Maneuver describes the action at the end of a step.
type Maneuver struct {
	Type     string `json:"type"`
	Modifier string `json:"modifier,omitempty"`
}

// VoiceInstruction is a pre-rendered announcement with the distance before
// the maneuver at which it becomes eligible.
type VoiceInstruction struct {
	TriggerDistance float64 `json:"triggerDistance" validate:"gte=0"`
	Announcement    string  `json:"announcement"`
}

// BannerInstruction is the visual counterpart of a voice instruction.
type BannerInstruction struct {
	TriggerDistance float64 `json:"triggerDistance" validate:"gte=0"`
	Primary         string  `json:"primary"`
	Secondary       string  `json:"secondary,omitempty"`
}

// Step is one maneuver segment of a route. Its first geometry point is the
// step start; its last geometry point is the maneuver point.
type Step struct {
	Instruction        string              `json:"instruction"`
	Distance           float64             `json:"distance" validate:"gte=0"`
	Duration           float64             `json:"duration" validate:"gte=0"`
	Maneuver           Maneuver            `json:"maneuver"`
	RoadName           string              `json:"roadName,omitempty"`
	Geometry           []geo.Coordinate    `json:"geometry" validate:"min=1,dive"`
	VoiceInstructions  []VoiceInstruction  `json:"voiceInstructions,omitempty" validate:"dive"`
	BannerInstructions []BannerInstruction `json:"bannerInstructions,omitempty" validate:"dive"`
}

// ManeuverPoint returns the coordinate at which the step's maneuver happens.
func (s *Step) ManeuverPoint() geo.Coordinate {
	return s.Geometry[len(s.Geometry)-1]
}

// Leg is a sequence of steps between two waypoints.
type Leg struct {
	Steps    []Step  `json:"steps" validate:"min=1,dive"`
	Distance float64 `json:"distance" validate:"gte=0"`
	Duration float64 `json:"duration" validate:"gte=0"`
}

// Route is a planned path between two coordinates.
type Route struct {
	TotalDistance float64          `json:"totalDistance" validate:"gte=0"`
	TotalDuration float64          `json:"totalDuration" validate:"gte=0"`
	Geometry      []geo.Coordinate `json:"geometry" validate:"min=2,dive"`
	Legs          []Leg            `json:"legs" validate:"min=1,dive"`
}

// FlattenSteps returns the route's steps across all legs in order.
func (r *Route) FlattenSteps() []Step {
	n := 0
	for _, l := range r.Legs {
		n += len(l.Steps)
	}
	steps := make([]Step, 0, n)
	for _, l := range r.Legs {
		steps = append(steps, l.Steps...)
	}
	return steps
}

// Destination returns the last coordinate of the route geometry. It is the
// destination used when requesting a replacement route.
func (r *Route) Destination() geo.Coordinate {
	return r.Geometry[len(r.Geometry)-1]
}
