package route

import (
	"math"
	"testing"

	"github.com/ghostracer/navigation/geo"
)

func twoStepRoute() *Route {
	return &Route{
		TotalDistance: 800,
		TotalDuration: 80,
		Geometry: []geo.Coordinate{
			{Lon: 0, Lat: 0},
			{Lon: 0, Lat: 0.0045},
			{Lon: 0.0027, Lat: 0.0045},
		},
		Legs: []Leg{{
			Distance: 800,
			Duration: 80,
			Steps: []Step{
				{
					Instruction: "Turn right onto Cross St",
					Distance:    500,
					Duration:    50,
					Maneuver:    Maneuver{Type: "turn", Modifier: "right"},
					RoadName:    "Cross St",
					Geometry: []geo.Coordinate{
						{Lon: 0, Lat: 0},
						{Lon: 0, Lat: 0.0045},
					},
				},
				{
					Instruction: "You have arrived at your destination",
					Distance:    300,
					Duration:    30,
					Maneuver:    Maneuver{Type: "arrive"},
					Geometry: []geo.Coordinate{
						{Lon: 0, Lat: 0.0045},
						{Lon: 0.0027, Lat: 0.0045},
					},
				},
			},
		}},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Route)
		wantErr bool
	}{
		{"valid route", func(r *Route) {}, false},
		{"too few geometry points", func(r *Route) { r.Geometry = r.Geometry[:1] }, true},
		{"no legs", func(r *Route) { r.Legs = nil }, true},
		{"leg without steps", func(r *Route) { r.Legs[0].Steps = nil }, true},
		{"step with empty geometry", func(r *Route) { r.Legs[0].Steps[0].Geometry = nil }, true},
		{"latitude out of range", func(r *Route) { r.Geometry[0].Lat = 91 }, true},
		{"longitude out of range", func(r *Route) { r.Geometry[1].Lon = -181 }, true},
		{"negative distance", func(r *Route) { r.TotalDistance = -1 }, true},
		{"total drifts from leg sum", func(r *Route) { r.TotalDistance = 900 }, true},
		{"sub-epsilon drift accepted", func(r *Route) { r.TotalDistance = 800.4 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := twoStepRoute()
			tt.mutate(r)
			err := Validate(r)
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr {
				if _, ok := err.(*InvalidGeometryError); !ok {
					t.Errorf("expected *InvalidGeometryError, got %T", err)
				}
			}
		})
	}

	t.Run("nil route", func(t *testing.T) {
		if err := Validate(nil); err == nil {
			t.Fatal("expected error for nil route")
		}
	})
}

func TestLegDistanceSum(t *testing.T) {
	r := twoStepRoute()
	sum := 0.0
	for _, l := range r.Legs {
		sum += l.Distance
	}
	if math.Abs(sum-r.TotalDistance) > 1 {
		t.Errorf("leg distances sum to %.1f, total is %.1f", sum, r.TotalDistance)
	}
}

func TestFlattenSteps(t *testing.T) {
	r := twoStepRoute()
	r.Legs = append(r.Legs, Leg{
		Distance: 100,
		Duration: 10,
		Steps: []Step{{
			Maneuver: Maneuver{Type: "arrive"},
			Geometry: []geo.Coordinate{{Lon: 0.0027, Lat: 0.0045}},
			Distance: 100,
			Duration: 10,
		}},
	})
	steps := r.FlattenSteps()
	if len(steps) != 3 {
		t.Fatalf("expected 3 flattened steps, got %d", len(steps))
	}
	if steps[0].RoadName != "Cross St" {
		t.Errorf("step order wrong, first step is %q", steps[0].Instruction)
	}
}

func TestDestination(t *testing.T) {
	r := twoStepRoute()
	want := geo.Coordinate{Lon: 0.0027, Lat: 0.0045}
	if got := r.Destination(); got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestManeuverPhrase(t *testing.T) {
	tests := []struct {
		name     string
		m        Maneuver
		road     string
		expected string
	}{
		{"turn left with road", Maneuver{Type: "turn", Modifier: "left"}, "Main St", "Turn left onto Main St"},
		{"turn right no road", Maneuver{Type: "turn", Modifier: "right"}, "", "Turn right"},
		{"arrive ignores road", Maneuver{Type: "arrive"}, "Main St", "You have arrived at your destination"},
		{"slight left", Maneuver{Type: "turn", Modifier: "slight left"}, "", "Turn slightly left"},
		{"depart", Maneuver{Type: "depart"}, "Broad Ave", "Head out onto Broad Ave"},
		{"unknown type falls back to continue", Maneuver{Type: "mystery"}, "", "Continue straight"},
		{"off ramp", Maneuver{Type: "off ramp", Modifier: "right"}, "", "Take the exit right"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Phrase(tt.road); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
