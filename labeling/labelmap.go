package labeling

import (
	"sort"

	"github.com/katalvlaran/lvlabel/point"
)

// LabelMap maps every foreground coordinate to its component label.
// Background coordinates have no entry.
type LabelMap map[point.Point]int

// Labels returns the distinct labels in ascending order.
func (m LabelMap) Labels() []int {
	set := make(map[int]struct{})
	for _, l := range m {
		set[l] = struct{}{}
	}
	out := make([]int, 0, len(set))
	for l := range set {
		out = append(out, l)
	}
	sort.Ints(out)

	return out
}

// Count returns the number of distinct labels, i.e. components.
func (m LabelMap) Count() int {
	set := make(map[int]struct{})
	for _, l := range m {
		set[l] = struct{}{}
	}

	return len(set)
}

// Grid renders m as a height×width label grid with 0 for background.
// Entries outside the grid are dropped.
func (m LabelMap) Grid(height, width int) [][]int {
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}
	grid := make([][]int, height)
	for r := range grid {
		grid[r] = make([]int, width)
	}
	for p, l := range m {
		if p.Row >= 0 && p.Row < height && p.Col >= 0 && p.Col < width {
			grid[p.Row][p.Col] = l
		}
	}

	return grid
}

// Relabel returns a copy of m whose labels are 1..k, numbered in raster
// order of each component's first cell.
func (m LabelMap) Relabel() LabelMap {
	pts := m.sortedPoints()
	dense := make(map[int]int)
	out := make(LabelMap, len(m))
	for _, p := range pts {
		l := m[p]
		d, ok := dense[l]
		if !ok {
			d = len(dense) + 1
			dense[l] = d
		}
		out[p] = d
	}

	return out
}

// Components groups the points of m by label; each slice is in raster order.
func (m LabelMap) Components() map[int][]point.Point {
	out := make(map[int][]point.Point)
	for _, p := range m.sortedPoints() {
		out[m[p]] = append(out[m[p]], p)
	}

	return out
}

func (m LabelMap) sortedPoints() []point.Point {
	pts := make([]point.Point, 0, len(m))
	for p := range m {
		pts = append(pts, p)
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].Before(pts[j]) })

	return pts
}
