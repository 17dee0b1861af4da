// Package render defines palettes, options and sentinel errors for drawing
// label grids.
package render

import (
	"errors"
	"fmt"
	"image/color"
)

// Sentinel errors for rendering.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("render: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("render: all rows must have the same length")
	// ErrEmptyPalette indicates a palette without colours.
	ErrEmptyPalette = errors.New("render: palette must hold at least one colour")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("render: invalid option supplied")
)

// maxPaletteSize leaves one slot of a paletted image free for grid lines.
const maxPaletteSize = 255

// DefaultPalette has 16 entries; label l is drawn with DefaultPalette[l mod 16],
// so background (0) is white and the first labels are high-contrast primaries.
var DefaultPalette = color.Palette{
	color.RGBA{0xff, 0xff, 0xff, 0xff}, // white
	color.RGBA{0x00, 0x00, 0x00, 0xff}, // black
	color.RGBA{0xff, 0x00, 0x00, 0xff}, // red
	color.RGBA{0x00, 0xff, 0x00, 0xff}, // green
	color.RGBA{0x00, 0x00, 0xff, 0xff}, // blue
	color.RGBA{0xff, 0xff, 0x00, 0xff}, // yellow
	color.RGBA{0x00, 0xff, 0xff, 0xff}, // cyan
	color.RGBA{0xff, 0x00, 0xff, 0xff}, // magenta
	color.RGBA{0xcc, 0xcc, 0xcc, 0xff}, // light grey
	color.RGBA{0x80, 0x80, 0x80, 0xff}, // grey
	color.RGBA{0x80, 0x00, 0x00, 0xff}, // maroon
	color.RGBA{0x80, 0x80, 0x00, 0xff}, // olive
	color.RGBA{0x00, 0x80, 0x00, 0xff}, // dark green
	color.RGBA{0x80, 0x00, 0x80, 0xff}, // purple
	color.RGBA{0x00, 0x80, 0x80, 0xff}, // teal
	color.RGBA{0x00, 0x00, 0x80, 0xff}, // navy
}

// BinaryPalette draws 0 as white and foreground as black.
var BinaryPalette = color.Palette{
	color.RGBA{0xff, 0xff, 0xff, 0xff},
	color.RGBA{0x00, 0x00, 0x00, 0xff},
}

// GrayPalette holds maxPaletteSize evenly spaced grey levels, black to white.
var GrayPalette = func() color.Palette {
	p := make(color.Palette, maxPaletteSize)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i * 0xff / (maxPaletteSize - 1))}
	}
	return p
}()

// GridLineColor is the colour of the dashed cell boundaries.
var GridLineColor = color.RGBA{0x60, 0x60, 0x60, 0xff}

// Option configures rendering via functional arguments.
type Option func(*Options)

// Options holds rendering parameters.
type Options struct {
	// Palette maps label mod len(Palette) to a colour.
	Palette color.Palette

	// CellSize is the edge length in pixels of one enlarged cell.
	CellSize int

	// PixelLimit is the largest cell count (height·width) that is enlarged;
	// bigger grids are drawn one pixel per cell.
	PixelLimit int

	// GridLines draws dashed cell boundaries on enlarged images.
	GridLines bool

	// internal errors recorded during option parsing; Binary and Gray
	// disregard paletteErr
	err        error
	paletteErr error
}

// DefaultOptions returns Options with:
//   - DefaultPalette
//   - 16-pixel cells for grids of at most 400 cells
//   - grid lines on.
func DefaultOptions() Options {
	return Options{
		Palette:    DefaultPalette,
		CellSize:   16,
		PixelLimit: 400,
		GridLines:  true,
	}
}

// WithPalette replaces the palette. Empty palettes are recorded as
// ErrEmptyPalette, palettes above 255 colours as ErrOptionViolation.
func WithPalette(p color.Palette) Option {
	return func(o *Options) {
		switch {
		case len(p) == 0:
			o.paletteErr = ErrEmptyPalette
		case len(p) > maxPaletteSize:
			o.paletteErr = fmt.Errorf("%w: palette has %d colours, max %d", ErrOptionViolation, len(p), maxPaletteSize)
		default:
			o.Palette = p
			o.paletteErr = nil
		}
	}
}

// WithCellSize sets the enlarged cell edge; n must be ≥ 1.
func WithCellSize(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: CellSize must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.CellSize = n
	}
}

// WithPixelLimit sets the enlargement threshold. 0 disables enlargement;
// negative values are recorded as ErrOptionViolation.
func WithPixelLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: PixelLimit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.PixelLimit = n
	}
}

// WithGridLines toggles dashed cell boundaries.
func WithGridLines(on bool) Option {
	return func(o *Options) {
		o.GridLines = on
	}
}
