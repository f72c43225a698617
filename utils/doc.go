// Package utils provides small shared helpers for the navigation engine.
//
// It contains:
//   - Distance phrasing for spoken guidance
//   - Timestamp formatting for session snapshots
package utils
