// Package render draws label grids as paletted images.
//
// It is a consumer of labeling results, never a dependency of them: input is a
// plain [][]int label grid (0 for background), as produced by
// labeling.LabelMap.Grid. Small grids are enlarged with
// golang.org/x/image/draw nearest-neighbour scaling and overlaid with dashed
// cell boundaries so individual pixels stay legible.
package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// dash is the on/off run length of grid lines, in pixels.
const dash = 2

// Labels draws grid with colour index label mod len(palette).
// Returns ErrEmptyGrid, ErrNonRectangular, or the recorded option error.
func Labels(grid [][]int, opts ...Option) (*image.Paletted, error) {
	o, err := buildOptions(opts)
	if err == nil {
		err = o.paletteErr
	}
	if err != nil {
		return nil, err
	}
	n := len(o.Palette)

	return draw2D(grid, o, func(v int) int {
		return ((v % n) + n) % n
	})
}

// Binary draws grid in black and white: 0 is white, anything else black.
// Any WithPalette option is ignored, invalid palettes included; the other
// options apply as for Labels.
func Binary(grid [][]int, opts ...Option) (*image.Paletted, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	o.Palette = BinaryPalette

	return draw2D(grid, o, func(v int) int {
		if v == 0 {
			return 0
		}
		return 1
	})
}

// Gray draws grid as intensities on GrayPalette, scaled so that 0 is black
// and the grid maximum is white. Negative values clamp to black; a grid with
// no positive value is all black. WithPalette is ignored as for Binary.
func Gray(grid [][]int, opts ...Option) (*image.Paletted, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	o.Palette = GrayPalette

	maxV := 0
	for _, row := range grid {
		for _, v := range row {
			if v > maxV {
				maxV = v
			}
		}
	}
	top := len(GrayPalette) - 1

	return draw2D(grid, o, func(v int) int {
		if v <= 0 || maxV == 0 {
			return 0
		}
		return int(int64(v) * int64(top) / int64(maxV))
	})
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}

func draw2D(grid [][]int, o Options, colorIndex func(int) int) (*image.Paletted, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(grid), len(grid[0])
	for _, row := range grid {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	pal := make(color.Palette, len(o.Palette), len(o.Palette)+1)
	copy(pal, o.Palette)
	lineIdx := uint8(len(pal))
	pal = append(pal, GridLineColor)

	base := image.NewPaletted(image.Rect(0, 0, w, h), pal)
	for y, row := range grid {
		for x, v := range row {
			base.SetColorIndex(x, y, uint8(colorIndex(v)))
		}
	}
	if h*w > o.PixelLimit || o.CellSize == 1 {
		return base, nil
	}

	cs := o.CellSize
	dst := image.NewPaletted(image.Rect(0, 0, w*cs, h*cs), pal)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), base, base.Bounds(), draw.Src, nil)
	if o.GridLines {
		drawGrid(dst, h, w, cs, lineIdx)
	}

	return dst, nil
}

// drawGrid paints dashed lines along the internal cell boundaries.
func drawGrid(dst *image.Paletted, h, w, cs int, idx uint8) {
	b := dst.Bounds()
	for k := 1; k < w; k++ {
		x := k * cs
		for y := b.Min.Y; y < b.Max.Y; y++ {
			if (y/dash)%2 == 0 {
				dst.SetColorIndex(x, y, idx)
			}
		}
	}
	for k := 1; k < h; k++ {
		y := k * cs
		for x := b.Min.X; x < b.Max.X; x++ {
			if (x/dash)%2 == 0 {
				dst.SetColorIndex(x, y, idx)
			}
		}
	}
}
