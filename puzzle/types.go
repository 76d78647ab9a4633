// Package puzzle provides options, error definitions and data types for
// assembling twisty puzzles from tilings.
package puzzle

import (
	"context"
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/katalvlaran/magictile/conformal"
	"github.com/katalvlaran/magictile/planar"
)

// Sentinel errors for puzzle assembly and twisting.
var (
	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("puzzle: invalid config")

	// ErrIdentification is returned when identification isometries cannot
	// be derived from the configuration.
	ErrIdentification = errors.New("puzzle: identification failed")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("puzzle: invalid option supplied")

	// ErrUnknownTwist is returned for a twist naming a missing twist group.
	ErrUnknownTwist = errors.New("puzzle: unknown twist")

	// ErrNothingToUndo is returned by Undo on an empty history.
	ErrNothingToUndo = errors.New("puzzle: nothing to undo")

	// ErrStateMismatch is returned when restored state does not fit the
	// rebuilt puzzle.
	ErrStateMismatch = errors.New("puzzle: saved state does not match puzzle")
)

// Assembly phases, in order, as reported to the status hook.
const (
	PhaseTiling          = "generating tiling"
	PhaseIdentifications = "computing identifications"
	PhaseCells           = "assembling cells"
	PhaseStickers        = "slicing stickers"
	PhaseTwistData       = "building twist data"
	PhaseIndex           = "indexing"
)

// Option configures Build via functional arguments.
type Option func(*Options)

// Options holds execution knobs for Build.
type Options struct {
	// Ctx allows cancellation between assembly phases.
	Ctx context.Context

	// Tracer receives progress records and capacity warnings.
	Tracer tracing.Trace

	// Status is called at the start of every assembly phase.
	Status func(phase string)

	// internal error recorded during option parsing
	err error
}

// tracer traces to the "magictile.puzzle" key.
func tracer() tracing.Trace {
	return tracing.Select("magictile.puzzle")
}

// DefaultOptions returns a background context, the package tracer and a
// no-op status hook.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Tracer: tracer(),
		Status: func(string) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithTracer replaces the package tracer. The tiling phase traces to it
// as well.
func WithTracer(t tracing.Trace) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}

// WithStatus registers a hook called with each phase name as assembly
// progresses.
func WithStatus(fn func(phase string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Status = fn
		}
	}
}

// Cell is one tile of the puzzle surface. Masters carry the logical colors;
// slaves are copies of a master reached through identifications.
type Cell struct {
	// IndexOfMaster is the master (color) index, or -1 for a cell over the
	// color budget.
	IndexOfMaster int
	IsMaster      bool
	// Tile is the index of the tiling tile under this cell.
	Tile int
	// Isometry maps the home tile onto this cell, vertex labels included.
	Isometry conformal.Isometry
	Boundary planar.Polygon
	// Stickers is filled only for state-calc cells.
	Stickers []Sticker
	// StateCalc marks cells whose stickers take part in twists.
	StateCalc bool
}

// Position returns the cell center.
func (c Cell) Position() complex128 {
	return c.Isometry.Apply(0)
}

// Sticker is a colorable piece of a cell.
type Sticker struct {
	// Cell is the index of the owning cell.
	Cell int
	// Index is the sticker index within the template.
	Index   int
	Polygon planar.Polygon
	// Center is the image of the template piece's area centroid. Stickers
	// are matched across twists by Center.
	Center complex128
	// Interior is a point strictly inside Polygon, used for layer tests.
	Interior complex128
}

// StickerID addresses one entry of the puzzle State.
type StickerID struct {
	Master  int `yaml:"master"`
	Sticker int `yaml:"sticker"`
}

// AxisKind classifies template twist axes.
type AxisKind int

const (
	// FaceAxis is centered on the tile center.
	FaceAxis AxisKind = iota
	// EdgeAxis is centered on an edge midpoint.
	EdgeAxis
	// VertexAxis is centered on a vertex.
	VertexAxis
)

// String implements fmt.Stringer.
func (k AxisKind) String() string {
	switch k {
	case FaceAxis:
		return "face"
	case EdgeAxis:
		return "edge"
	case VertexAxis:
		return "vertex"
	default:
		return "unknown"
	}
}

// TemplateAxis is a twist axis of the home tile.
type TemplateAxis struct {
	Kind   AxisKind
	Center complex128
	Order  int
	// Circles are ascending by radius.
	Circles []conformal.CircleNE
}

// TwistData is one physical twist axis: layers are the regions between
// consecutive circles.
type TwistData struct {
	Center  complex128
	Order   int
	Circles []conformal.CircleNE
	// Reverse flips the rotation sense, set for mirror-image axes.
	Reverse bool
}

// IdentifiedTwistData groups the twist axes that move together.
type IdentifiedTwistData struct {
	Index int
	Order int
	Kind  AxisKind
	Axes  []TwistData
	// StateCalc indexes the Axes created by master cells; only these are
	// applied to the State.
	StateCalc []int
}

// AxisRef addresses one axis of one identified twist group.
type AxisRef struct {
	Group int
	Axis  int
}
