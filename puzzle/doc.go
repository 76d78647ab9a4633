// Package puzzle assembles twisty puzzles on regular tilings and applies
// twists to their coloring.
//
// What
//
//   - Build(cfg) generates the tiling, derives the identification
//     isometries, assigns every tile to a master cell (a logical color) or
//     a slave copy of one, slices the home tile into the sticker template,
//     and builds the twist axes grouped into identified twists.
//   - Twist, Undo and Scramble drive the State: a flat color array with
//     one entry per master sticker, written through a pending copy and
//     committed once per twist.
//   - ClosestCell and ClosestTwistingCircles answer "what is under this
//     point" through NearTree indexes.
//   - Save and Restore persist the configuration, colors and history as
//     YAML.
//
// Identifications
//
// Cells are glued either by an explicit edge table (reflect the home tile
// across the listed edges, then rotate the vertex labels) or by a relation
// presentation over the mirrors a, b and c of the fundamental triangle,
// e.g. "(caba)2". The two are mutually exclusive. Identifications are
// applied in the frame of the cell they act on, so the slave at
// parent∘id sits where id puts the home cell, seen from parent.
//
// Twisting
//
// Each identified twist has one or more physical axes. Only axes placed by
// master cells move the State; every sticker of a state-calc cell whose
// interior lies in a selected layer is rotated, and colors move to the
// sticker whose center matches the rotated center. Mirror-image axes turn
// the other way (TwistData.Reverse).
//
// Tracing
//
// Build traces to the schuko key "magictile.puzzle", and the tiling phase
// to "magictile.tiling", unless WithTracer supplies one tracer for both.
// An over-budget cell is traced as an error.
//
// Usage
//
//	p, err := puzzle.Build(cfg,
//	    puzzle.WithContext(ctx),
//	    puzzle.WithTracer(gologadapter.New()),
//	    puzzle.WithStatus(func(phase string) { fmt.Println(phase) }),
//	)
//	err = p.Twist(puzzle.SingleTwist{IdentifiedIndex: 0, SliceMask: puzzle.SliceMaskFor(0)})
//
// Errors
//
//   - ErrInvalidConfig   for a failing Config.Validate, an unparsable
//     relation string or no masters.
//   - ErrIdentification  when an edge identification leaves the plane.
//   - ErrOptionViolation for a nil context.
//   - ErrUnknownTwist    for a twist naming a missing group.
//   - ErrNothingToUndo   for Undo on an empty history.
//   - ErrStateMismatch   when saved colors do not fit the rebuilt puzzle.
//   - ctx.Err() when the context is done between phases.
package puzzle
