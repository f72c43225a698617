package geo

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Coordinate
		expected float64
		tol      float64
	}{
		{
			name:     "identical points",
			a:        Coordinate{Lon: 10.5, Lat: 59.9},
			b:        Coordinate{Lon: 10.5, Lat: 59.9},
			expected: 0,
			tol:      0,
		},
		{
			name:     "one degree of latitude",
			a:        Coordinate{Lon: 0, Lat: 0},
			b:        Coordinate{Lon: 0, Lat: 1},
			expected: 111195,
			tol:      100,
		},
		{
			name:     "one degree of longitude at equator",
			a:        Coordinate{Lon: 0, Lat: 0},
			b:        Coordinate{Lon: 1, Lat: 0},
			expected: 111195,
			tol:      100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			if math.Abs(got-tt.expected) > tt.tol {
				t.Errorf("expected %.0f ± %.0f, got %.0f", tt.expected, tt.tol, got)
			}
			back := Distance(tt.b, tt.a)
			if got != back {
				t.Errorf("not symmetric: %.6f vs %.6f", got, back)
			}
		})
	}
}

func TestDistanceToSegment(t *testing.T) {
	t.Run("degenerate segment equals point distance", func(t *testing.T) {
		p := Coordinate{Lon: 1, Lat: 1}
		a := Coordinate{Lon: 0, Lat: 0}
		if got, want := DistanceToSegment(p, a, a), Distance(p, a); got != want {
			t.Errorf("expected %.6f, got %.6f", want, got)
		}
	})

	t.Run("point on segment is zero", func(t *testing.T) {
		a := Coordinate{Lon: 0, Lat: 0}
		b := Coordinate{Lon: 0, Lat: 1}
		p := Coordinate{Lon: 0, Lat: 0.25}
		if got := DistanceToSegment(p, a, b); got != 0 {
			t.Errorf("expected 0, got %.6f", got)
		}
	})

	t.Run("point beside segment", func(t *testing.T) {
		a := Coordinate{Lon: 0, Lat: 0}
		b := Coordinate{Lon: 0, Lat: 1}
		p := Coordinate{Lon: 0.01, Lat: 0.5}
		got := DistanceToSegment(p, a, b)
		if math.Abs(got-1112) > 10 {
			t.Errorf("expected ~1112 m, got %.0f", got)
		}
	})

	t.Run("projection clamps to endpoint", func(t *testing.T) {
		a := Coordinate{Lon: 0, Lat: 0}
		b := Coordinate{Lon: 0, Lat: 1}
		p := Coordinate{Lon: 0, Lat: 2}
		if got, want := DistanceToSegment(p, a, b), Distance(p, b); math.Abs(got-want) > 0.001 {
			t.Errorf("expected %.3f, got %.3f", want, got)
		}
	})
}

func TestBearing(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Coordinate
		expected float64
	}{
		{"due north", Coordinate{0, 0}, Coordinate{0, 1}, 0},
		{"due east", Coordinate{0, 0}, Coordinate{1, 0}, 90},
		{"due south", Coordinate{0, 1}, Coordinate{0, 0}, 180},
		{"due west", Coordinate{1, 0}, Coordinate{0, 0}, 270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bearing(tt.a, tt.b)
			if math.Abs(got-tt.expected) > 0.01 {
				t.Errorf("expected %.2f, got %.2f", tt.expected, got)
			}
			if got < 0 || got >= 360 {
				t.Errorf("bearing out of range: %.2f", got)
			}
		})
	}
}

func TestPointAlong(t *testing.T) {
	line := []Coordinate{{0, 0}, {0, 0.5}, {0, 1}}
	total := LineLength(line)

	if got := PointAlong(line, -5); got != line[0] {
		t.Errorf("negative distance should return first point, got %+v", got)
	}
	if got := PointAlong(line, total*2); got != line[2] {
		t.Errorf("overshoot should return last point, got %+v", got)
	}

	mid := PointAlong(line, total/2)
	if math.Abs(mid.Lat-0.5) > 0.001 || mid.Lon != 0 {
		t.Errorf("expected midpoint near (0, 0.5), got %+v", mid)
	}
}

func TestLineLength(t *testing.T) {
	line := []Coordinate{{0, 0}, {0, 1}}
	if got := LineLength(line); math.Abs(got-111195) > 100 {
		t.Errorf("expected ~111195, got %.0f", got)
	}
	if got := LineLength(nil); got != 0 {
		t.Errorf("empty line should be 0, got %f", got)
	}
}
