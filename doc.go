// Package lvlabel is a small toolkit for connected-component labeling of 2-D
// binary rasters, built around a disjoint-set (union-find) core.
//
// What is in the box?
//
//	• Geometry: Point, Box and a dense linear Indexer over rectangular domains
//	• Adjacency: 4-connected and 8-connected neighbour enumeration
//	• Union-find: union by rank + path compression over dense integer ids
//	• Labeling: two-pass raster labeling, plus a flood-fill reference
//	• Render: optional palette rendering of label grids
//
// Everything is organized under these subpackages:
//
//	point/      Point, Box, Indexer
//	adjacency/  Adjacency interface, Four, Eight, Connectivity
//	unionfind/  DisjointSet
//	labeling/   Raster, Label, FloodFill, Compute, LabelMap
//	render/     Labels, Binary (image/x/image based, never imported by the core)
//
// Quick ASCII example (4-connected):
//
//	1 0 1        1 0 1
//	1 0 1   →    1 0 1
//	1 1 1        1 1 1
//
// a single component: the two arms only meet on the bottom row, and the scan
// merges their provisional labels when it gets there.
//
//	go get github.com/katalvlaran/lvlabel
package lvlabel
