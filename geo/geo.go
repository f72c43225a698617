package geo

import "math"

const earthRadiusM = 6371000.0

// Coordinate is a WGS84 position in degrees, longitude first.
type Coordinate struct {
	Lon float64 `json:"lon" yaml:"lon" validate:"gte=-180,lte=180"`
	Lat float64 `json:"lat" yaml:"lat" validate:"gte=-90,lte=90"`
}

// Distance returns the haversine great-circle distance between a and b in meters.
func Distance(a, b Coordinate) float64 {
	if a == b {
		return 0
	}
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180
	la1 := a.Lat * math.Pi / 180
	la2 := b.Lat * math.Pi / 180
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(la1)*math.Cos(la2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusM * c
}

// DistanceToSegment returns the distance in meters from p to the segment a-b.
// The projection parameter is computed in degree space and clamped to [0,1];
// the distance to the clamped point uses the same great-circle approximation
// as Distance. A degenerate segment (a == b) reduces to Distance(p, a).
func DistanceToSegment(p, a, b Coordinate) float64 {
	vx := b.Lon - a.Lon
	vy := b.Lat - a.Lat
	denom := vx*vx + vy*vy
	if denom == 0 {
		return Distance(p, a)
	}
	t := ((p.Lon-a.Lon)*vx + (p.Lat-a.Lat)*vy) / denom
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := Coordinate{Lon: a.Lon + t*vx, Lat: a.Lat + t*vy}
	return Distance(p, closest)
}

// Bearing returns the initial great-circle bearing from a to b in degrees,
// in the range [0,360).
func Bearing(a, b Coordinate) float64 {
	la1 := a.Lat * math.Pi / 180
	la2 := b.Lat * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180
	y := math.Sin(dLon) * math.Cos(la2)
	x := math.Cos(la1)*math.Sin(la2) - math.Sin(la1)*math.Cos(la2)*math.Cos(dLon)
	deg := math.Atan2(y, x) * 180 / math.Pi
	return math.Mod(deg+360, 360)
}

// LineLength returns the cumulative haversine length of a polyline in meters.
func LineLength(line []Coordinate) float64 {
	total := 0.0
	for i := 1; i < len(line); i++ {
		total += Distance(line[i-1], line[i])
	}
	return total
}

// PointAlong returns the point at the given distance in meters along the
// polyline, interpolating linearly within segments. Distances at or beyond
// the ends return the first or last point.
func PointAlong(line []Coordinate, meters float64) Coordinate {
	if len(line) == 0 {
		return Coordinate{}
	}
	if meters <= 0 {
		return line[0]
	}
	walked := 0.0
	for i := 1; i < len(line); i++ {
		seg := Distance(line[i-1], line[i])
		if walked+seg >= meters {
			if seg == 0 {
				return line[i]
			}
			t := (meters - walked) / seg
			return Coordinate{
				Lon: line[i-1].Lon + t*(line[i].Lon-line[i-1].Lon),
				Lat: line[i-1].Lat + t*(line[i].Lat-line[i-1].Lat),
			}
		}
		walked += seg
	}
	return line[len(line)-1]
}
