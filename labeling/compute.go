package labeling

import (
	"fmt"

	"github.com/katalvlaran/lvlabel/adjacency"
)

// Compute builds the adjacency selected by WithConnectivity (default Conn4)
// for r and runs the algorithm selected by WithMethod.
//
//   - MethodUnionFind (default): Label.
//   - MethodFloodFill:           FloodFill.
//
// Returns ErrInvalidInput for a nil or inconsistent raster (see Raster.Validate) and ErrOptionViolation for bad options.
//
// Note: this is optional scaffolding; Label and FloodFill can still be called directly.
func Compute(r *Raster, opts ...Option) (LabelMap, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	adj, err := adjacency.New(o.Conn, r.Height, r.Width)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOptionViolation, err)
	}

	switch o.Method {
	case MethodUnionFind:
		return Label(r, adj, opts...)
	case MethodFloodFill:
		return FloodFill(r, adj, opts...)
	default:
		return nil, fmt.Errorf("%w: unknown method %q", ErrOptionViolation, o.Method)
	}
}
