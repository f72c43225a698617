package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/ghostracer/navigation/config"
	"github.com/ghostracer/navigation/geo"
	"github.com/ghostracer/navigation/internal"
	"github.com/ghostracer/navigation/replay"
	"github.com/ghostracer/navigation/route"
	"github.com/ghostracer/navigation/routing"
	"github.com/ghostracer/navigation/session"
	"github.com/ghostracer/navigation/utils"
)

func main() {
	mode := flag.String("mode", "simulate", "simulate|replay|serve")
	origin := flag.String("origin", "", "origin as lon,lat")
	destination := flag.String("destination", "", "destination as lon,lat")
	profile := flag.String("profile", "", "normal|traffic-aware (overrides config)")
	avoidHighways := flag.Bool("avoidHighways", false, "avoid highways")
	avoidTolls := flag.Bool("avoidTolls", false, "avoid toll roads")
	avoidFerries := flag.Bool("avoidFerries", false, "avoid ferries")
	alternatives := flag.Bool("alternatives", false, "print alternative routes and exit")
	speed := flag.Float64("speed", 14, "simulated speed in m/s")
	interval := flag.Duration("interval", time.Second, "simulated sample interval")
	vehiclePositions := flag.String("vehiclePositions", "", "GTFS-RT VehiclePositions URL or file (overrides config)")
	vehicleID := flag.String("vehicle", "", "vehicle id filter for replay (overrides config)")
	flag.Parse()

	internal.InitLogging()
	if err := config.LoadAppConfig(); err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg := config.Config

	if *profile == "" {
		*profile = cfg.Routing.Profile
	}
	opts := route.Options{
		Profile:       *profile,
		AvoidHighways: *avoidHighways,
		AvoidTolls:    *avoidTolls,
		AvoidFerries:  *avoidFerries,
	}

	osrm := routing.NewOSRMClient(cfg.Routing.OSRMURL, time.Duration(cfg.Routing.TimeoutMS)*time.Millisecond)
	s := session.New(osrm, loggingEvents(), session.Config{
		StepAdvanceMeters:  cfg.Guidance.StepAdvanceMeters,
		OffRouteMeters:     cfg.Guidance.OffRouteMeters,
		AnnounceThresholds: cfg.Guidance.AnnounceThresholds,
		RerouteTimeout:     time.Duration(cfg.Routing.RerouteTimeoutMS) * time.Millisecond,
	})

	from, err := parseCoord(*origin)
	if err != nil {
		log.Fatalf("origin: %v", err)
	}
	to, err := parseCoord(*destination)
	if err != nil {
		log.Fatalf("destination: %v", err)
	}

	ctx := context.Background()
	if *alternatives {
		printAlternatives(ctx, s, from, to, opts)
		return
	}

	if err := s.Start(ctx, from, to, opts); err != nil {
		log.Fatalf("start: %v", err)
	}
	st := s.Snapshot()
	log.Printf("route: %.0f m, %.0f s, %d steps, ETA %s", st.RemainingDistance, st.RemainingTime, len(st.RemainingSteps)+1, utils.Iso8601FromTime(st.ETA))

	switch *mode {
	case "simulate":
		driveRoute(s, st.Route, *speed, *interval)
	case "replay":
		src := replay.NewSource(time.Duration(cfg.Replay.TimeoutMS) * time.Millisecond)
		src.VehicleID = cfg.Replay.VehicleID
		if *vehicleID != "" {
			src.VehicleID = *vehicleID
		}
		feed := cfg.Replay.VehiclePositionsURL
		if feed == "" {
			feed = cfg.Replay.VehiclePositionsPath
		}
		if *vehiclePositions != "" {
			feed = *vehiclePositions
		}
		samples, err := src.Samples(ctx, feed)
		if err != nil {
			log.Fatalf("replay: %v", err)
		}
		log.Printf("replaying %d samples", len(samples))
		for _, sample := range samples {
			s.OnPositionSample(sample)
		}
	case "serve":
		// Serve the session over HTTP while the simulator drives it, so the
		// state endpoint shows live guidance.
		startServer(s, cfg.Server.Port)
		go driveRoute(s, st.Route, *speed, *interval)
		handleGracefulShutdown()
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

// parseCoord parses "lon,lat" into a coordinate.
func parseCoord(v string) (geo.Coordinate, error) {
	parts := strings.Split(v, ",")
	if len(parts) != 2 {
		return geo.Coordinate{}, fmt.Errorf("expected lon,lat, got %q", v)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("bad longitude in %q: %w", v, err)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("bad latitude in %q: %w", v, err)
	}
	return geo.Coordinate{Lon: lon, Lat: lat}, nil
}

func printAlternatives(ctx context.Context, s *session.Session, from, to geo.Coordinate, opts route.Options) {
	routes, err := s.PlanAlternatives(ctx, from, to, opts)
	if err != nil {
		log.Fatalf("alternatives: %v", err)
	}
	for i, r := range routes {
		log.Printf("route %d: %.0f m, %.0f s, %d legs", i, r.TotalDistance, r.TotalDuration, len(r.Legs))
	}
}

// loggingEvents prints every guidance event to the standard logger.
func loggingEvents() session.Events {
	return session.Events{
		StepAdvanced: func(from, to int, current route.Step) {
			log.Printf("step %d -> %d: %s", from, to, current.Instruction)
		},
		OffRouteDetected: func(minDistance float64) {
			log.Printf("off route, %.0f m from polyline", minDistance)
		},
		Rerouted: func(r *route.Route) {
			log.Printf("rerouted: %.0f m, %.0f s", r.TotalDistance, r.TotalDuration)
		},
		RerouteFailed: func(err error) {
			log.Printf("reroute failed: %v", err)
		},
		Arrived: func() {
			log.Printf("arrived")
		},
		Announcement: func(text string) {
			log.Printf("announce: %s", text)
		},
	}
}
