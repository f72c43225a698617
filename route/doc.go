// Package route defines the route model produced by the routing service and
// consumed read-only by the rest of the engine: Route, Leg, Step, Maneuver and
// the per-step voice/banner instructions.
//
// The model is validated once at the routing-service boundary with Validate;
// everything above trusts the shape after that.
package route
