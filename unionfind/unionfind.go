package unionfind

import (
	"errors"
	"fmt"
)

// Sentinel errors for disjoint-set operations.
var (
	// ErrUnknownElement indicates an identifier that was never registered.
	ErrUnknownElement = errors.New("unionfind: unknown element")
	// ErrNegativeElement indicates a negative identifier passed to MakeSet.
	ErrNegativeElement = errors.New("unionfind: element must be non-negative")
)

// unregistered marks a parent slot whose identifier has not been added.
const unregistered = -1

// DisjointSet is a union-find forest with union by rank and path compression.
// The zero value is an empty, ready-to-use set.
type DisjointSet struct {
	parent []int
	rank   []int
	size   int // registered elements
	sets   int // current number of disjoint sets
}

// New returns an empty DisjointSet with room for identifiers [0, capacity).
func New(capacity int) *DisjointSet {
	if capacity < 0 {
		capacity = 0
	}

	return &DisjointSet{
		parent: make([]int, 0, capacity),
		rank:   make([]int, 0, capacity),
	}
}

// MakeSet registers id as a singleton set.
// Registering an id that is already present is a no-op, leaving its set intact.
// Returns ErrNegativeElement if id < 0.
func (ds *DisjointSet) MakeSet(id int) error {
	if id < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeElement, id)
	}
	if ds.has(id) {
		return nil
	}
	for len(ds.parent) <= id {
		ds.parent = append(ds.parent, unregistered)
		ds.rank = append(ds.rank, 0)
	}
	ds.parent[id] = id
	ds.rank[id] = 0
	ds.size++
	ds.sets++

	return nil
}

// Find returns the representative of the set containing id. Every node on
// the walk is re-pointed directly at the root.
// Returns ErrUnknownElement if id was never registered.
func (ds *DisjointSet) Find(id int) (int, error) {
	if !ds.has(id) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownElement, id)
	}

	return ds.find(id), nil
}

// find assumes id is registered. Iterative so deep chains cannot exhaust the stack.
func (ds *DisjointSet) find(id int) int {
	root := id
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	for ds.parent[id] != root {
		next := ds.parent[id]
		ds.parent[id] = root
		id = next
	}

	return root
}

// Union merges the sets containing id1 and id2.
// The lower-rank root is attached under the higher-rank one. On equal rank,
// id1's root goes under id2's root and id2's root rank is incremented.
// Returns ErrUnknownElement if either id was never registered.
func (ds *DisjointSet) Union(id1, id2 int) error {
	root1, err := ds.Find(id1)
	if err != nil {
		return err
	}
	root2, err := ds.Find(id2)
	if err != nil {
		return err
	}
	if root1 == root2 {
		return nil
	}

	if ds.rank[root1] > ds.rank[root2] {
		ds.parent[root2] = root1
	} else {
		ds.parent[root1] = root2
		if ds.rank[root1] == ds.rank[root2] {
			ds.rank[root2]++
		}
	}
	ds.sets--

	return nil
}

// Canonize compresses every registered element onto its root, in ascending
// id order. Afterwards Find on any element is a single lookup.
func (ds *DisjointSet) Canonize() {
	for id := range ds.parent {
		if ds.parent[id] != unregistered {
			ds.find(id)
		}
	}
}

// Connected reports whether a and b belong to the same set.
func (ds *DisjointSet) Connected(a, b int) (bool, error) {
	ra, err := ds.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := ds.Find(b)
	if err != nil {
		return false, err
	}

	return ra == rb, nil
}

// Rank returns the rank recorded for id, an upper bound on the height of
// the tree below it while id is a root.
func (ds *DisjointSet) Rank(id int) (int, error) {
	if !ds.has(id) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownElement, id)
	}

	return ds.rank[id], nil
}

// Len returns the number of registered elements.
func (ds *DisjointSet) Len() int { return ds.size }

// Count returns the number of disjoint sets.
func (ds *DisjointSet) Count() int { return ds.sets }

// Elements returns the registered identifiers in ascending order.
func (ds *DisjointSet) Elements() []int {
	out := make([]int, 0, ds.size)
	for id, p := range ds.parent {
		if p != unregistered {
			out = append(out, id)
		}
	}

	return out
}

func (ds *DisjointSet) has(id int) bool {
	return id >= 0 && id < len(ds.parent) && ds.parent[id] != unregistered
}
