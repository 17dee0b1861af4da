package labeling_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlabel/adjacency"
	"github.com/katalvlaran/lvlabel/labeling"
)

// benchRaster builds a deterministic n×n raster with ~50% foreground.
func benchRaster(b *testing.B, n int) *labeling.Raster {
	rng := rand.New(rand.NewSource(42))
	grid := make([][]int, n)
	for y := range grid {
		grid[y] = make([]int, n)
		for x := range grid[y] {
			grid[y][x] = rng.Intn(2)
		}
	}
	r, err := labeling.NewRaster(grid)
	if err != nil {
		b.Fatalf("setup NewRaster failed: %v", err)
	}

	return r
}

// BenchmarkLabel measures the two-pass engine on a 1000×1000 raster.
// Complexity: O(W×H×d×α)
func BenchmarkLabel(b *testing.B) {
	const n = 1000
	r := benchRaster(b, n)
	for _, adj := range []adjacency.Adjacency{adjacency.Four{}, adjacency.NewEight(n, n)} {
		adj := adj
		name := "conn4"
		if _, ok := adj.(adjacency.Eight); ok {
			name = "conn8"
		}
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = labeling.Label(r, adj)
			}
		})
	}
}

// BenchmarkFloodFill measures the breadth-first reference on the same raster.
// Complexity: O(W×H×d)
func BenchmarkFloodFill(b *testing.B) {
	r := benchRaster(b, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = labeling.FloodFill(r, adjacency.Four{})
	}
}
