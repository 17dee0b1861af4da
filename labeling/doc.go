// Package labeling performs connected-component labeling of binary rasters.
//
// What:
//
//   - Raster wraps a rectangular grid of 0 (background) and 1 (foreground)
//     cells, built from [][]int (NewRaster) or a gonum mat.Matrix (FromMatrix).
//   - Label runs the classic two-pass algorithm: a raster scan hands out
//     provisional labels and records label equivalences in a
//     unionfind.DisjointSet, then every label is resolved to its canonical root.
//   - FloodFill is a breadth-first reference implementation producing the same
//     partition with dense labels.
//   - Compute picks adjacency and algorithm from functional options.
//
// Why:
//
//   - Blob counting, segmentation, region extraction: any task that asks
//     "which foreground pixels belong together?".
//
// Complexity:
//
//   - Label:     O(W×H×d×α(W×H)), Memory: O(W×H)   (d = 4 or 8).
//   - FloodFill: O(W×H×d),        Memory: O(W×H).
//
// Options:
//
//   - WithConnectivity: adjacency.Conn4 (default) or adjacency.Conn8 (Compute only).
//   - WithMethod: MethodUnionFind (default) or MethodFloodFill (Compute only).
//   - WithOnProvisional, WithOnMerge: observation hooks, no-op by default.
//
// Errors:
//
//   - ErrInvalidInput: nil raster or adjacency, ragged rows, non-binary values.
//   - ErrOptionViolation: unknown connectivity or method.
//
// An empty raster (no rows or no columns) is valid and labels to an empty map.
// Every call owns its own disjoint set and counter, so concurrent calls are safe.
package labeling
