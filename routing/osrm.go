package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ghostracer/navigation/geo"
	"github.com/ghostracer/navigation/route"
)

const defaultOSRMTimeout = 10 * time.Second

// OSRMClient implements Service against an OSRM-compatible HTTP endpoint
// (/route/v1/driving/...). Responses are validated with route.Validate
// before they reach the engine.
type OSRMClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewOSRMClient creates a client for the given base URL, e.g.
// "https://router.project-osrm.org". A non-positive timeout falls back to
// the default.
func NewOSRMClient(baseURL string, timeout time.Duration) *OSRMClient {
	if timeout <= 0 {
		timeout = defaultOSRMTimeout
	}
	return &OSRMClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// osrmResponse mirrors the subset of the OSRM route response the engine
// consumes. Voice and banner instructions are optional extensions served by
// Mapbox-style directions endpoints.
type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64      `json:"distance"`
		Duration float64      `json:"duration"`
		Geometry osrmGeometry `json:"geometry"`
		Legs     []struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
			Steps    []struct {
				Distance float64      `json:"distance"`
				Duration float64      `json:"duration"`
				Name     string       `json:"name"`
				Geometry osrmGeometry `json:"geometry"`
				Maneuver struct {
					Type     string `json:"type"`
					Modifier string `json:"modifier"`
				} `json:"maneuver"`
				VoiceInstructions []struct {
					DistanceAlongGeometry float64 `json:"distanceAlongGeometry"`
					Announcement          string  `json:"announcement"`
				} `json:"voiceInstructions"`
				BannerInstructions []struct {
					DistanceAlongGeometry float64 `json:"distanceAlongGeometry"`
					Primary               struct {
						Text string `json:"text"`
					} `json:"primary"`
					Secondary *struct {
						Text string `json:"text"`
					} `json:"secondary"`
				} `json:"bannerInstructions"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

type osrmGeometry struct {
	Coordinates [][]float64 `json:"coordinates"`
}

func (g osrmGeometry) toCoordinates() []geo.Coordinate {
	coords := make([]geo.Coordinate, 0, len(g.Coordinates))
	for _, pair := range g.Coordinates {
		if len(pair) < 2 {
			continue
		}
		coords = append(coords, geo.Coordinate{Lon: pair[0], Lat: pair[1]})
	}
	return coords
}

// GetRoute requests a single route from OSRM.
func (c *OSRMClient) GetRoute(ctx context.Context, origin, destination geo.Coordinate, opts route.Options) (*route.Route, error) {
	routes, err := c.request(ctx, origin, destination, opts, false)
	if err != nil {
		return nil, err
	}
	return &routes[0], nil
}

// GetAlternatives requests candidate routes from OSRM, best first.
func (c *OSRMClient) GetAlternatives(ctx context.Context, origin, destination geo.Coordinate, opts route.Options) ([]route.Route, error) {
	return c.request(ctx, origin, destination, opts, true)
}

func (c *OSRMClient) request(ctx context.Context, origin, destination geo.Coordinate, opts route.Options, alternatives bool) ([]route.Route, error) {
	reqURL := c.buildURL(origin, destination, opts, alternatives)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build routing request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("routing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read routing response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("routing service returned HTTP %d", resp.StatusCode)
	}

	var parsed osrmResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode routing response: %w", err)
	}
	if parsed.Code != "Ok" || len(parsed.Routes) == 0 {
		return nil, ErrRouteUnavailable
	}

	routes := make([]route.Route, 0, len(parsed.Routes))
	for _, raw := range parsed.Routes {
		r := route.Route{
			TotalDistance: raw.Distance,
			TotalDuration: raw.Duration,
			Geometry:      raw.Geometry.toCoordinates(),
		}
		for _, rawLeg := range raw.Legs {
			leg := route.Leg{Distance: rawLeg.Distance, Duration: rawLeg.Duration}
			for _, rawStep := range rawLeg.Steps {
				step := route.Step{
					Distance: rawStep.Distance,
					Duration: rawStep.Duration,
					RoadName: rawStep.Name,
					Geometry: rawStep.Geometry.toCoordinates(),
					Maneuver: route.Maneuver{
						Type:     rawStep.Maneuver.Type,
						Modifier: rawStep.Maneuver.Modifier,
					},
				}
				step.Instruction = step.Maneuver.Phrase(step.RoadName)
				for _, vi := range rawStep.VoiceInstructions {
					step.VoiceInstructions = append(step.VoiceInstructions, route.VoiceInstruction{
						TriggerDistance: vi.DistanceAlongGeometry,
						Announcement:    vi.Announcement,
					})
				}
				for _, bi := range rawStep.BannerInstructions {
					banner := route.BannerInstruction{
						TriggerDistance: bi.DistanceAlongGeometry,
						Primary:         bi.Primary.Text,
					}
					if bi.Secondary != nil {
						banner.Secondary = bi.Secondary.Text
					}
					step.BannerInstructions = append(step.BannerInstructions, banner)
				}
				leg.Steps = append(leg.Steps, step)
			}
			r.Legs = append(r.Legs, leg)
		}
		if err := route.Validate(&r); err != nil {
			return nil, err
		}
		routes = append(routes, r)
	}
	return routes, nil
}

func (c *OSRMClient) buildURL(origin, destination geo.Coordinate, opts route.Options, alternatives bool) string {
	q := url.Values{}
	q.Set("overview", "full")
	q.Set("geometries", "geojson")
	q.Set("steps", "true")
	if alternatives {
		q.Set("alternatives", "true")
	}
	var exclude []string
	if opts.AvoidHighways {
		exclude = append(exclude, "motorway")
	}
	if opts.AvoidTolls {
		exclude = append(exclude, "toll")
	}
	if opts.AvoidFerries {
		exclude = append(exclude, "ferry")
	}
	if len(exclude) > 0 {
		q.Set("exclude", strings.Join(exclude, ","))
	}
	if opts.Profile != "" {
		q.Set("profile", opts.Profile)
	}
	return fmt.Sprintf("%s/route/v1/driving/%.6f,%.6f;%.6f,%.6f?%s",
		c.baseURL, origin.Lon, origin.Lat, destination.Lon, destination.Lat, q.Encode())
}
