// Package slicer cuts polygons of line and arc segments by generalized
// circles. It is what turns a tile into stickers and a tile boundary into a
// shrunken drawn outline.
//
// What:
//
//	SlicePolygon(p, c)       // pieces of p on either side of c
//	SliceByCircles(p, cs)    // repeated slicing, one pass per circle
//	Shrink(p, cs, keep)      // the piece of p containing keep
//
// How:
//
//  1. Dice: every intersection of c with a segment is spliced in as a vertex.
//     Intersections at an existing vertex mark that vertex instead.
//  2. Classify: each diced segment is inside or outside c by its midpoint.
//     A marked vertex is a crossing only if the segments around it disagree,
//     so tangency and touching at a vertex do not cut.
//  3. Pair: crossings are paired in encounter order, or shifted by one when
//     the first chord would run outside p. Each pair is joined by the arc of
//     c inside p.
//  4. Walk: from each crossing, follow the boundary and turn onto a chord at
//     every crossing reached, until the walk closes. Duplicate faces are
//     dropped.
//
// Complexity:
//
//   - Time: O(n·k) for n segments and k crossings, plus O(n) per Contains test.
//   - Memory: O(n + k).
//
// Errors:
//
//   - ErrOddIntersections when the crossing count is odd.
//   - ErrTooManyIntersections when c meets one segment more than twice.
//   - ErrWalkNotClosed when a face walk does not return to its start.
//   - ErrNoPieceContains from Shrink.
//
// Input polygons may be either orientation; output pieces are
// counterclockwise. Zero-area pieces are returned as is; callers filter.
package slicer
