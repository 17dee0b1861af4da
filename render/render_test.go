package render_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlabel/adjacency"
	"github.com/katalvlaran/lvlabel/labeling"
	"github.com/katalvlaran/lvlabel/render"
)

func TestLabels_OnePixelPerCell(t *testing.T) {
	grid := [][]int{
		{0, 1, 2},
		{17, 0, -1},
	}
	img, err := render.Labels(grid, render.WithPixelLimit(0))
	require.NoError(t, err)
	require.Equal(t, 3, img.Bounds().Dx())
	require.Equal(t, 2, img.Bounds().Dy())

	assert.Equal(t, uint8(0), img.ColorIndexAt(0, 0))
	assert.Equal(t, uint8(1), img.ColorIndexAt(1, 0))
	assert.Equal(t, uint8(2), img.ColorIndexAt(2, 0))
	assert.Equal(t, uint8(1), img.ColorIndexAt(0, 1), "17 mod 16")
	assert.Equal(t, uint8(15), img.ColorIndexAt(2, 1), "negative labels wrap")
	assert.Equal(t, render.DefaultPalette[2], img.At(2, 0))
}

func TestLabels_Enlarged(t *testing.T) {
	grid := [][]int{
		{1, 0},
		{0, 2},
	}
	img, err := render.Labels(grid, render.WithCellSize(4), render.WithGridLines(false))
	require.NoError(t, err)
	require.Equal(t, 8, img.Bounds().Dx())
	require.Equal(t, 8, img.Bounds().Dy())

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := grid[y/4][x/4]
			assert.Equalf(t, render.DefaultPalette[want], img.At(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestLabels_GridLines(t *testing.T) {
	grid := [][]int{{1, 1, 1}}
	img, err := render.Labels(grid, render.WithCellSize(8))
	require.NoError(t, err)

	// dashed vertical boundaries at x=8 and x=16: on for y in [0,2), off in [2,4)
	assert.Equal(t, render.GridLineColor, img.At(8, 0))
	assert.Equal(t, render.GridLineColor, img.At(16, 1))
	assert.Equal(t, render.DefaultPalette[1], img.At(8, 2))
	assert.Equal(t, render.DefaultPalette[1], img.At(3, 3), "cell interior untouched")
}

func TestLabels_LargeGridNotEnlarged(t *testing.T) {
	grid := make([][]int, 21)
	for i := range grid {
		grid[i] = make([]int, 20)
	}
	img, err := render.Labels(grid)
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 21, img.Bounds().Dy())
}

func TestBinary(t *testing.T) {
	img, err := render.Binary([][]int{{0, 1, 7}}, render.WithCellSize(1))
	require.NoError(t, err)
	assert.Equal(t, render.BinaryPalette[0], img.At(0, 0))
	assert.Equal(t, render.BinaryPalette[1], img.At(1, 0))
	assert.Equal(t, render.BinaryPalette[1], img.At(2, 0))
}

func TestCustomPalette(t *testing.T) {
	pal := color.Palette{color.Gray{0}, color.Gray{0xff}}
	img, err := render.Labels([][]int{{0, 1, 2, 3}}, render.WithPalette(pal), render.WithPixelLimit(0))
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 1, 0, 1}, img.Pix)
}

func TestErrors(t *testing.T) {
	_, err := render.Labels(nil)
	assert.ErrorIs(t, err, render.ErrEmptyGrid)
	_, err = render.Labels([][]int{{}})
	assert.ErrorIs(t, err, render.ErrEmptyGrid)
	_, err = render.Binary([][]int{{1, 0}, {1}})
	assert.ErrorIs(t, err, render.ErrNonRectangular)

	grid := [][]int{{1}}
	_, err = render.Labels(grid, render.WithPalette(nil))
	assert.ErrorIs(t, err, render.ErrEmptyPalette)
	_, err = render.Labels(grid, render.WithPalette(make(color.Palette, 300)))
	assert.ErrorIs(t, err, render.ErrOptionViolation)
	_, err = render.Labels(grid, render.WithCellSize(0))
	assert.ErrorIs(t, err, render.ErrOptionViolation)
	_, err = render.Labels(grid, render.WithPixelLimit(-3))
	assert.ErrorIs(t, err, render.ErrOptionViolation)
}

// TestLabels_FromLabelMap draws a labeling result end to end.
func TestLabels_FromLabelMap(t *testing.T) {
	r, err := labeling.NewRaster([][]int{
		{1, 0},
		{0, 1},
	})
	require.NoError(t, err)
	lm, err := labeling.Label(r, adjacency.Four{})
	require.NoError(t, err)

	img, err := render.Labels(lm.Grid(r.Height, r.Width), render.WithPixelLimit(0))
	require.NoError(t, err)
	assert.Equal(t, []uint8{1, 0, 0, 2}, img.Pix)
}

// TestBinary_IgnoresPalette checks that a palette option, even an invalid one,
// has no effect on the fixed black and white view.
func TestBinary_IgnoresPalette(t *testing.T) {
	for _, pal := range []color.Palette{nil, make(color.Palette, 300), {color.Gray{0x40}}} {
		img, err := render.Binary([][]int{{0, 1}}, render.WithPalette(pal), render.WithPixelLimit(0))
		require.NoError(t, err)
		assert.Equal(t, render.BinaryPalette[0], img.At(0, 0))
		assert.Equal(t, render.BinaryPalette[1], img.At(1, 0))
	}

	// non-palette option errors still surface
	_, err := render.Binary([][]int{{1}}, render.WithPalette(nil), render.WithCellSize(-2))
	assert.ErrorIs(t, err, render.ErrOptionViolation)
}

func TestGray(t *testing.T) {
	img, err := render.Gray([][]int{{0, 2, 4, -3}}, render.WithPixelLimit(0), render.WithPalette(nil))
	require.NoError(t, err)

	assert.Equal(t, []uint8{0, 127, 254, 0}, img.Pix)
	assert.Equal(t, color.Gray{Y: 0}, img.At(0, 0))
	assert.Equal(t, color.Gray{Y: 0xff}, img.At(2, 0))
	assert.Len(t, render.GrayPalette, 255)
}

func TestGray_NoPositiveValues(t *testing.T) {
	img, err := render.Gray([][]int{{0, -1}, {0, 0}}, render.WithPixelLimit(0))
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 0, 0, 0}, img.Pix)
}

func TestGray_Enlarged(t *testing.T) {
	img, err := render.Gray([][]int{{1, 0}}, render.WithCellSize(3), render.WithGridLines(false))
	require.NoError(t, err)
	require.Equal(t, 6, img.Bounds().Dx())
	assert.Equal(t, color.Gray{Y: 0xff}, img.At(2, 2))
	assert.Equal(t, color.Gray{Y: 0}, img.At(3, 0))

	_, err = render.Gray(nil)
	assert.ErrorIs(t, err, render.ErrEmptyGrid)
}
