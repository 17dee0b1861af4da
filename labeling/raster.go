package labeling

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlabel/point"
)

// Foreground and Background are the only values a Raster holds.
const (
	Background = 0
	Foreground = 1
)

// Raster is a binary grid. Cells[row][col] is 0 or 1.
// A Raster with zero rows or zero columns is valid and empty.
// Rasters built by hand instead of NewRaster or FromMatrix are checked with
// Validate before any labeling starts.
type Raster struct {
	Height, Width int
	Cells         [][]int
}

// NewRaster validates values and deep-copies them into a Raster.
// Returns ErrInvalidInput if rows differ in length or any value is not 0 or 1.
// Complexity: O(W×H) time and memory.
func NewRaster(values [][]int) (*Raster, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		for i, row := range values {
			if len(row) != 0 {
				return nil, fmt.Errorf("%w: row %d has length %d, want 0", ErrInvalidInput, i, len(row))
			}
		}
		return &Raster{}, nil
	}
	h, w := len(values), len(values[0])
	cells := make([][]int, h)
	for r, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrInvalidInput, r, len(row), w)
		}
		for c, v := range row {
			if v != Background && v != Foreground {
				return nil, fmt.Errorf("%w: value %d at %v is not binary", ErrInvalidInput, v, point.Pt(r, c))
			}
		}
		cells[r] = make([]int, w)
		copy(cells[r], row)
	}

	return &Raster{Height: h, Width: w, Cells: cells}, nil
}

// FromMatrix builds a Raster from a gonum matrix, row i of m becoming raster row i.
// Every element must be exactly 0 or 1, otherwise ErrInvalidInput is returned.
func FromMatrix(m mat.Matrix) (*Raster, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil matrix", ErrInvalidInput)
	}
	h, w := m.Dims()
	if h == 0 || w == 0 {
		return &Raster{}, nil
	}
	cells := make([][]int, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]int, w)
		for c := 0; c < w; c++ {
			switch v := m.At(r, c); v {
			case 0:
			case 1:
				cells[r][c] = Foreground
			default:
				return nil, fmt.Errorf("%w: value %g at %v is not binary", ErrInvalidInput, v, point.Pt(r, c))
			}
		}
	}

	return &Raster{Height: h, Width: w, Cells: cells}, nil
}

// Validate reports whether r is consistent: non-negative dimensions, exactly
// Height rows of Width cells each, and only 0 or 1 values.
// Returns ErrInvalidInput wrapped with the first problem found.
// Complexity: O(W×H).
func (r *Raster) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: nil raster", ErrInvalidInput)
	}
	if r.Height < 0 || r.Width < 0 {
		return fmt.Errorf("%w: negative dimensions %dx%d", ErrInvalidInput, r.Height, r.Width)
	}
	if r.Empty() {
		return nil
	}
	if len(r.Cells) != r.Height {
		return fmt.Errorf("%w: %d rows, want %d", ErrInvalidInput, len(r.Cells), r.Height)
	}
	for row, cells := range r.Cells {
		if len(cells) != r.Width {
			return fmt.Errorf("%w: row %d has length %d, want %d", ErrInvalidInput, row, len(cells), r.Width)
		}
		for col, v := range cells {
			if v != Background && v != Foreground {
				return fmt.Errorf("%w: value %d at %v is not binary", ErrInvalidInput, v, point.Pt(row, col))
			}
		}
	}

	return nil
}

// Empty reports whether the raster has no cells.
func (r *Raster) Empty() bool {
	return r.Height == 0 || r.Width == 0
}

// InBounds reports whether p lies within [0,Height)×[0,Width).
// Complexity: O(1).
func (r *Raster) InBounds(p point.Point) bool {
	return p.Row >= 0 && p.Row < r.Height && p.Col >= 0 && p.Col < r.Width
}

// At returns the cell value at p, or Background for points outside the raster.
func (r *Raster) At(p point.Point) int {
	if !r.InBounds(p) {
		return Background
	}

	return r.Cells[p.Row][p.Col]
}

// IsForeground reports whether p is an in-bounds foreground cell.
func (r *Raster) IsForeground(p point.Point) bool {
	return r.At(p) == Foreground
}

// Box returns the region (0,0)–(Height,Width). Its inclusive far edges give
// the index space one spare row and column beyond the raster.
// Returns point.ErrInvalidRegion for an empty raster.
func (r *Raster) Box() (point.Box, error) {
	return point.NewBox(point.Pt(0, 0), point.Pt(r.Height, r.Width))
}
