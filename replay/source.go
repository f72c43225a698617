package replay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/ghostracer/navigation/geo"
	"github.com/ghostracer/navigation/session"
)

// ErrNoPositions is returned when a feed contains no usable vehicle positions.
var ErrNoPositions = errors.New("no vehicle positions in feed")

// Source reads GTFS-Realtime VehiclePositions feeds and turns them into
// position samples a navigation session can consume.
type Source struct {
	httpClient *http.Client
	// VehicleID, when set, keeps only entities with that vehicle id.
	VehicleID string
}

// NewSource creates a replay source. A zero timeout uses no limit.
func NewSource(timeout time.Duration) *Source {
	return &Source{httpClient: &http.Client{Timeout: timeout}}
}

// Samples fetches a VehiclePositions feed from an HTTP URL or a local file
// path and returns its positions as samples sorted by timestamp.
func (s *Source) Samples(ctx context.Context, urlOrPath string) ([]session.Sample, error) {
	data, err := s.fetch(ctx, urlOrPath)
	if err != nil {
		return nil, err
	}
	return s.Decode(data)
}

// Decode parses raw GTFS-RT protobuf bytes into sorted samples.
func (s *Source) Decode(data []byte) ([]session.Sample, error) {
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(data, &fm); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}

	var samples []session.Sample
	for _, e := range fm.Entity {
		v := e.Vehicle
		if v == nil || v.Position == nil {
			continue
		}
		if s.VehicleID != "" {
			if v.Vehicle == nil || v.Vehicle.GetId() != s.VehicleID {
				continue
			}
		}
		sample := session.Sample{
			Coord: geo.Coordinate{
				Lon: float64(v.Position.GetLongitude()),
				Lat: float64(v.Position.GetLatitude()),
			},
			// Negative speed and heading mean unknown.
			Speed:   -1,
			Heading: -1,
		}
		if v.Position.Speed != nil {
			sample.Speed = float64(v.Position.GetSpeed())
		}
		if v.Position.Bearing != nil {
			sample.Heading = float64(v.Position.GetBearing())
		}
		if v.Timestamp != nil {
			sample.Time = time.Unix(int64(v.GetTimestamp()), 0).UTC()
		}
		samples = append(samples, sample)
	}
	if len(samples) == 0 {
		return nil, ErrNoPositions
	}
	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Time.Before(samples[j].Time)
	})
	return samples, nil
}

// fetch reads a feed from an HTTP(S) URL or a local file path.
func (s *Source) fetch(ctx context.Context, urlOrPath string) ([]byte, error) {
	if urlOrPath == "" {
		return nil, errors.New("empty feed location")
	}
	if !strings.HasPrefix(urlOrPath, "http://") && !strings.HasPrefix(urlOrPath, "https://") {
		return os.ReadFile(urlOrPath)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlOrPath, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", urlOrPath, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, urlOrPath)
	}
	return io.ReadAll(resp.Body)
}
