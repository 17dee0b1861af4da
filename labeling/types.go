// Package labeling defines options, hooks and sentinel errors for
// connected-component labeling of binary rasters.
package labeling

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlabel/adjacency"
	"github.com/katalvlaran/lvlabel/point"
)

// Sentinel errors for labeling.
var (
	// ErrInvalidInput indicates a nil, ragged or non-binary raster, or a nil adjacency.
	ErrInvalidInput = errors.New("labeling: invalid input")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("labeling: invalid option supplied")
)

// Method names accepted by WithMethod.
const (
	// MethodUnionFind selects the two-pass union-find engine (Label).
	MethodUnionFind = "unionfind"
	// MethodFloodFill selects breadth-first flood fill (FloodFill).
	MethodFloodFill = "floodfill"
)

// Option configures labeling via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// engine runs.
type Option func(*Options)

// Options holds parameters and callbacks for a labeling run.
type Options struct {
	// Conn selects the adjacency built by Compute. Label ignores it and uses
	// the Adjacency it is given.
	Conn adjacency.Connectivity

	// Method selects the algorithm run by Compute.
	Method string

	// OnProvisional is called whenever the scan opens a new provisional label.
	OnProvisional func(p point.Point, label int)

	// OnMerge is called for every union of two provisional labels, including
	// unions of labels that already share a set.
	OnMerge func(label, into int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Conn4 connectivity
//   - MethodUnionFind
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Conn:          adjacency.Conn4,
		Method:        MethodUnionFind,
		OnProvisional: func(point.Point, int) {},
		OnMerge:       func(int, int) {},
	}
}

// WithConnectivity selects the adjacency rule used by Compute.
// Values other than Conn4 and Conn8 are recorded as ErrOptionViolation.
func WithConnectivity(c adjacency.Connectivity) Option {
	return func(o *Options) {
		if c != adjacency.Conn4 && c != adjacency.Conn8 {
			o.err = fmt.Errorf("%w: unknown connectivity %v", ErrOptionViolation, c)
			return
		}
		o.Conn = c
	}
}

// WithMethod selects the algorithm: MethodUnionFind or MethodFloodFill.
func WithMethod(m string) Option {
	return func(o *Options) {
		if m != MethodUnionFind && m != MethodFloodFill {
			o.err = fmt.Errorf("%w: unknown method %q", ErrOptionViolation, m)
			return
		}
		o.Method = m
	}
}

// WithOnProvisional registers a callback run when a provisional label is created.
func WithOnProvisional(fn func(p point.Point, label int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProvisional = fn
		}
	}
}

// WithOnMerge registers a callback run for every union of two provisional labels.
func WithOnMerge(fn func(label, into int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMerge = fn
		}
	}
}

// buildOptions applies opts over DefaultOptions.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}
