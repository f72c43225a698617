// Package geo provides great-circle geometry helpers used across the
// navigation engine.
//
// All functions are pure and deterministic. Coordinates are WGS84 degrees,
// longitude first; all distances are meters.
package geo
