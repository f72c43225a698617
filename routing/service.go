package routing

import (
	"context"
	"errors"

	"github.com/ghostracer/navigation/geo"
	"github.com/ghostracer/navigation/route"
)

// ErrRouteUnavailable means the routing service answered but returned no
// usable route between the requested coordinates.
var ErrRouteUnavailable = errors.New("routing: no route available")

// Service is the external routing collaborator. Implementations must return
// routes that pass route.Validate, or an error.
type Service interface {
	// GetRoute returns the best route from origin to destination.
	GetRoute(ctx context.Context, origin, destination geo.Coordinate, opts route.Options) (*route.Route, error)

	// GetAlternatives returns one or more candidate routes, best first.
	GetAlternatives(ctx context.Context, origin, destination geo.Coordinate, opts route.Options) ([]route.Route, error)
}
