// Package unionfind provides a disjoint-set (union-find) structure over a
// growing universe of non-negative integer identifiers.
//
// What & Why
//
//   - A DisjointSet partitions registered identifiers into disjoint sets and
//     answers "which set does x belong to?" with a canonical representative.
//   - It is the equivalence-tracking core of two-pass connected-component
//     labeling: provisional labels are registered as singletons and merged
//     whenever two of them turn out to touch the same component.
//
// Representation
//
//	parent and rank are two parallel dense slices indexed by identifier
//	(arena + index). Identifiers that were never registered hold parent −1.
//	Provisional labels are handed out as a dense increasing sequence, so the
//	slices stay compact.
//
// Operations
//
//   - MakeSet(id):   register a singleton; no-op if id is already present.
//   - Find(id):      representative of id's set, with full path compression.
//   - Union(a, b):   union by rank. On equal rank a's root is attached under
//     b's root and b's root gains one rank, so b's root stays canonical.
//   - Canonize():    Find on every element, leaving every path of length ≤ 1.
//
// Complexity: O(α(n)) amortised per operation with both union by rank and path
// compression; memory O(max id).
//
// Errors
//
//   - ErrUnknownElement:  Find/Union/Connected on an id never registered.
//   - ErrNegativeElement: MakeSet with a negative id.
//
// A DisjointSet is not safe for concurrent use.
package unionfind
