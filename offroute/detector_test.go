package offroute

import (
	"math"
	"testing"

	"github.com/ghostracer/navigation/geo"
)

func TestCheckStraightRoute(t *testing.T) {
	// Straight two-point route from (0,0) to (0,1) with a position ~1.1 km
	// east of its midpoint.
	geom := []geo.Coordinate{{Lon: 0, Lat: 0}, {Lon: 0, Lat: 1}}
	pos := geo.Coordinate{Lon: 0.01, Lat: 0.5}

	tests := []struct {
		name      string
		threshold float64
		wantOff   bool
	}{
		{"100 m threshold flags off-route", 100, true},
		{"2000 m threshold stays on-route", 2000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			off, minDist := Detector{Threshold: tt.threshold}.Check(geom, pos)
			if off != tt.wantOff {
				t.Errorf("expected off=%v, got %v (minDist=%.0f)", tt.wantOff, off, minDist)
			}
			if math.Abs(minDist-1112) > 10 {
				t.Errorf("expected min distance ~1112 m, got %.0f", minDist)
			}
		})
	}
}

func TestCheckOnRoute(t *testing.T) {
	geom := []geo.Coordinate{{Lon: 0, Lat: 0}, {Lon: 0, Lat: 0.5}, {Lon: 0.5, Lat: 0.5}}
	off, minDist := Detector{}.Check(geom, geo.Coordinate{Lon: 0.25, Lat: 0.5})
	if off {
		t.Errorf("point on polyline flagged off-route (minDist=%.2f)", minDist)
	}
	if minDist != 0 {
		t.Errorf("expected 0 distance, got %.6f", minDist)
	}
}

func TestCheckPicksNearestSegment(t *testing.T) {
	geom := []geo.Coordinate{{Lon: 0, Lat: 0}, {Lon: 0, Lat: 1}, {Lon: 1, Lat: 1}}
	// Close to the second segment, far from the first.
	pos := geo.Coordinate{Lon: 0.5, Lat: 1.0001}
	_, minDist := Detector{}.Check(geom, pos)
	if minDist > 50 {
		t.Errorf("expected distance to nearest segment, got %.0f", minDist)
	}
}

func TestCheckDegenerateGeometry(t *testing.T) {
	off, dist := Detector{}.Check(nil, geo.Coordinate{Lon: 1, Lat: 1})
	if off || dist != 0 {
		t.Errorf("empty geometry should never flag off-route, got off=%v dist=%f", off, dist)
	}

	off, _ = Detector{}.Check([]geo.Coordinate{{Lon: 0, Lat: 0}}, geo.Coordinate{Lon: 1, Lat: 1})
	if !off {
		t.Error("single distant point should flag off-route")
	}
}

func TestCheckDefaultThreshold(t *testing.T) {
	geom := []geo.Coordinate{{Lon: 0, Lat: 0}, {Lon: 0, Lat: 1}}
	// ~111 m east, just beyond the 100 m default.
	off, _ := Detector{}.Check(geom, geo.Coordinate{Lon: 0.001, Lat: 0.5})
	if !off {
		t.Error("expected off-route just beyond the default threshold")
	}
}
