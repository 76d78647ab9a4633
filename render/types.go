// Package render provides options and error definitions for drawing tilings
// and puzzles with gonum/plot.
package render

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot/vg"
)

// ErrUnsupportedFormat is returned for an output format gonum/plot cannot
// write.
var ErrUnsupportedFormat = errors.New("render: unsupported format")

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("render: invalid option supplied")

// Option configures a render call.
type Option func(*Options)

// Options holds drawing knobs.
type Options struct {
	// Size is the width and height of the square canvas.
	Size vg.Length

	// Extent is the half-width of the visible square of the plane,
	// centered on the origin.
	Extent float64

	// Samples is the number of points per arc segment.
	Samples int

	// Title is drawn above the plot when non-empty.
	Title string

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a 6-inch canvas showing [-1.5, 1.5]².
func DefaultOptions() Options {
	return Options{Size: 6 * vg.Inch, Extent: 1.5, Samples: 24}
}

// WithSize sets the canvas size.
func WithSize(size vg.Length) Option {
	return func(o *Options) {
		if size <= 0 {
			o.err = fmt.Errorf("%w: size must be positive", ErrOptionViolation)
			return
		}
		o.Size = size
	}
}

// WithExtent sets the visible half-width.
func WithExtent(extent float64) Option {
	return func(o *Options) {
		if extent <= 0 {
			o.err = fmt.Errorf("%w: extent must be positive", ErrOptionViolation)
			return
		}
		o.Extent = extent
	}
}

// WithSamples sets the number of points per arc.
func WithSamples(n int) Option {
	return func(o *Options) {
		if n < 2 {
			o.err = fmt.Errorf("%w: need at least 2 samples per arc", ErrOptionViolation)
			return
		}
		o.Samples = n
	}
}

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}
