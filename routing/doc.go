// Package routing defines the routing-service collaborator consumed by the
// navigation session, plus an OSRM HTTP client implementation.
//
// The engine never computes routes itself; it requests them here and treats
// every failure as recoverable.
package routing
