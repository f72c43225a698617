package main

import (
	"log"
	"time"

	"github.com/ghostracer/navigation/geo"
	"github.com/ghostracer/navigation/route"
	"github.com/ghostracer/navigation/session"
)

// driveRoute walks the route geometry at a constant speed, feeding one
// position sample per interval until the session arrives or goes idle.
func driveRoute(s *session.Session, r *route.Route, speed float64, interval time.Duration) {
	if speed <= 0 {
		log.Fatalf("speed must be positive, got %v", speed)
	}
	total := geo.LineLength(r.Geometry)
	stepMeters := speed * interval.Seconds()

	for traveled := 0.0; ; traveled += stepMeters {
		if traveled > total {
			traveled = total
		}
		s.OnPositionSample(session.Sample{
			Coord: geo.PointAlong(r.Geometry, traveled),
			Speed: speed,
			Time:  time.Now(),
		})

		st := s.Snapshot()
		if st.Status != session.StatusNavigating {
			log.Printf("simulation finished: %s after %.0f m", st.Status, traveled)
			return
		}
		if traveled >= total {
			// Walked the whole polyline without arriving; the advance
			// threshold should have fired by now, so bail out.
			log.Printf("simulation exhausted geometry without arrival")
			return
		}
		time.Sleep(interval)
	}
}
