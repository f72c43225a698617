// Package replay feeds recorded GTFS-Realtime vehicle positions into a
// navigation session, for testing guidance against real-world traces.
//
// Feeds are read from an HTTP URL or a local protobuf file and decoded into
// timestamp-ordered position samples.
package replay
