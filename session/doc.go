// Package session owns the navigation state machine and wires the progress
// tracker, off-route detector, rerouting coordinator and announcement
// selector to position-sample and route events.
//
// A Session has a single logical writer: all mutation happens inside
// OnPositionSample, Start/StartWithRoute/Stop and the reroute completion
// callback, serialized by one mutex. Readers take Snapshot copies.
package session
