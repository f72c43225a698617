package route

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// legDistanceEpsilon is the tolerated drift in meters between TotalDistance
// and the sum of leg distances.
const legDistanceEpsilon = 1.0

// InvalidGeometryError reports a route that violates the routing-service
// contract: too few geometry points, empty legs or steps, or out-of-range
// coordinates. It is a programming-contract violation, not a transient error.
type InvalidGeometryError struct {
	Reason string
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("invalid route geometry: %s", e.Reason)
}

// Validate checks a route at the routing-service boundary. It fails loudly on
// malformed shapes so wrong distances are never computed silently.
func Validate(r *Route) error {
	if r == nil {
		return &InvalidGeometryError{Reason: "route is nil"}
	}
	if err := validate.Struct(r); err != nil {
		return &InvalidGeometryError{Reason: err.Error()}
	}
	legSum := 0.0
	for _, l := range r.Legs {
		legSum += l.Distance
	}
	if math.Abs(legSum-r.TotalDistance) > legDistanceEpsilon {
		return &InvalidGeometryError{
			Reason: fmt.Sprintf("leg distances sum to %.1f, total is %.1f", legSum, r.TotalDistance),
		}
	}
	return nil
}
