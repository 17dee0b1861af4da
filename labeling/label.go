package labeling

import (
	"fmt"

	"github.com/katalvlaran/lvlabel/adjacency"
	"github.com/katalvlaran/lvlabel/point"
	"github.com/katalvlaran/lvlabel/unionfind"
)

// noLabel marks a cell that has not been given a provisional label.
const noLabel = 0

// Label assigns every foreground cell of r a label such that two cells share
// a label iff a chain of adj-adjacent foreground cells joins them.
//
// Behavior:
//  1. Validate r and adj; validate opts (ErrOptionViolation).
//  2. Scan r in raster order. For each foreground cell P:
//     • collect the provisional labels of adj.Neighbours(P) that are in
//     bounds, foreground and already visited (earlier in raster order);
//     • none → open a fresh label (counter, then increment) as a singleton set;
//     • otherwise P takes the minimum, and every collected label is unioned
//     into the minimum's set.
//  3. Canonize the disjoint set.
//  4. Resolve every provisional label to its canonical representative.
//
// Canonical labels are whichever provisional label survived as root; they are
// positive but not necessarily contiguous. Use LabelMap.Relabel for 1..k.
// An empty raster yields an empty LabelMap.
//
// Complexity: O(W·H·d·α(W·H)) time, d = neighbours per cell; O(W·H) memory.
func Label(r *Raster, adj adjacency.Adjacency, opts ...Option) (LabelMap, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if adj == nil {
		return nil, fmt.Errorf("%w: nil adjacency", ErrInvalidInput)
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if r.Empty() {
		return LabelMap{}, nil
	}

	box, err := r.Box()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	ix := point.NewIndexer(box)

	// provisional labels, addressed by ix; noLabel means unvisited or background
	prov := make([]int, ix.Size())
	ds := unionfind.New(r.Width + 1)
	next := 1
	seen := make([]int, 0, 8)

	for row := 0; row < r.Height; row++ {
		for col := 0; col < r.Width; col++ {
			if r.Cells[row][col] != Foreground {
				continue
			}
			p := point.Pt(row, col)

			seen = seen[:0]
			minLabel := noLabel
			for _, q := range adj.Neighbours(p) {
				if !q.Before(p) || !r.InBounds(q) {
					continue
				}
				l := prov[ix.PointToIndex(q)]
				if l == noLabel {
					continue // background
				}
				seen = append(seen, l)
				if minLabel == noLabel || l < minLabel {
					minLabel = l
				}
			}

			if minLabel == noLabel {
				if err := ds.MakeSet(next); err != nil {
					return nil, fmt.Errorf("labeling: open label %d: %w", next, err)
				}
				prov[ix.PointToIndex(p)] = next
				o.OnProvisional(p, next)
				next++
				continue
			}

			prov[ix.PointToIndex(p)] = minLabel
			for _, l := range seen {
				if l == minLabel {
					continue
				}
				if err := ds.Union(l, minLabel); err != nil {
					return nil, fmt.Errorf("labeling: merge %d into %d: %w", l, minLabel, err)
				}
				o.OnMerge(l, minLabel)
			}
		}
	}

	ds.Canonize()

	out := make(LabelMap)
	for idx, l := range prov {
		if l == noLabel {
			continue
		}
		root, err := ds.Find(l)
		if err != nil {
			return nil, fmt.Errorf("labeling: resolve label %d: %w", l, err)
		}
		out[ix.IndexToPoint(idx)] = root
	}

	return out, nil
}
