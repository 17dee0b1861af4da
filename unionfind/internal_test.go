package unionfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFind_CompressesPath builds a chain by hand and checks that one Find
// re-points every node on it at the root.
func TestFind_CompressesPath(t *testing.T) {
	ds := New(5)
	for id := 0; id < 5; id++ {
		require.NoError(t, ds.MakeSet(id))
	}
	// 0 → 1 → 2 → 3 → 4
	for id := 0; id < 4; id++ {
		ds.parent[id] = id + 1
	}

	root, err := ds.Find(0)
	require.NoError(t, err)
	assert.Equal(t, 4, root)
	assert.Equal(t, []int{4, 4, 4, 4, 4}, ds.parent)
}

// TestCanonize_FlattensAll checks that every parent is a root after Canonize.
func TestCanonize_FlattensAll(t *testing.T) {
	ds := New(0)
	for id := 1; id <= 16; id++ {
		require.NoError(t, ds.MakeSet(id))
	}
	// pairwise merges build a rank-4 tree
	for step := 1; step < 16; step *= 2 {
		for id := 1; id+step <= 16; id += 2 * step {
			require.NoError(t, ds.Union(id, id+step))
		}
	}
	ds.Canonize()

	for _, id := range ds.Elements() {
		p := ds.parent[id]
		assert.Equalf(t, p, ds.parent[p], "parent of %d is not a root", id)
	}
	assert.Equal(t, unregistered, ds.parent[0])
	assert.Equal(t, 1, ds.Count())
}
