// Package point provides the integer geometry the labeling engine is built on.
//
// What:
//
//   - Point: an immutable (Row, Col) coordinate with vector arithmetic.
//   - Box: a closed, non-degenerate rectangle given by two corners.
//   - Indexer: a bijection between points of a Box and dense linear indices.
//
// Coordinates follow raster convention: Row grows downward, Col grows to the right.
//
// Indexer layout:
//
//	index = (Width+1)·(p.Row − Top) + (p.Col − Left)
//
// The stride is one column wider than the box, so the column Right itself (and a
// sentinel column at the border) is addressable without clashing with the next row.
//
// Complexity: every operation is O(1) and allocation-free.
//
// Errors:
//
//   - ErrInvalidRegion: the top-left corner is not strictly above and left of the
//     bottom-right corner.
package point
