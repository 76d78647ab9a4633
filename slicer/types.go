// Package slicer provides error definitions for cutting polygons by
// generalized circles.
package slicer

import "errors"

// Sentinel errors for slicing.
var (
	// ErrOddIntersections is returned when a circle crosses a polygon boundary
	// an odd number of times (more than once).
	ErrOddIntersections = errors.New("slicer: odd number of boundary crossings")

	// ErrTooManyIntersections is returned when a circle meets one segment in
	// more than two points.
	ErrTooManyIntersections = errors.New("slicer: more than two intersections on one segment")

	// ErrWalkNotClosed is returned when a boundary walk fails to return to
	// its starting vertex.
	ErrWalkNotClosed = errors.New("slicer: boundary walk did not close")

	// ErrNoPieceContains is returned by Shrink when no piece holds the keep point.
	ErrNoPieceContains = errors.New("slicer: no piece contains the keep point")
)
