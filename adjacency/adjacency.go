// Package adjacency enumerates the neighbours of a raster coordinate.
//
// Two rules are provided:
//
//   - Four: the axis-aligned neighbours in the order right, down, left, up.
//     Four knows nothing about grid size and never clips.
//   - Eight: all eight surrounding cells in row-major order, clipped to
//     [0, height) × [0, width).
//
// Both are stateless apart from the dimensions bound into Eight and are safe
// for concurrent use.
package adjacency

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlabel/point"
)

// ErrUnknownConnectivity is returned by New for an unsupported Connectivity.
var ErrUnknownConnectivity = errors.New("adjacency: unknown connectivity")

// Adjacency produces the ordered neighbours of a point.
type Adjacency interface {
	Neighbours(p point.Point) []point.Point
}

// Connectivity selects an adjacency rule.
type Connectivity int

const (
	// Conn4 selects Four.
	Conn4 Connectivity = iota
	// Conn8 selects Eight.
	Conn8
)

// String returns "conn4", "conn8" or a placeholder for unknown values.
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	default:
		return fmt.Sprintf("connectivity(%d)", int(c))
	}
}

var (
	fourOffsets = [4]point.Point{
		{Row: 0, Col: 1},  // right
		{Row: 1, Col: 0},  // down
		{Row: 0, Col: -1}, // left
		{Row: -1, Col: 0}, // up
	}
	eightOffsets = [8]point.Point{
		{Row: -1, Col: -1}, {Row: -1, Col: 0}, {Row: -1, Col: 1},
		{Row: 0, Col: -1}, {Row: 0, Col: 1},
		{Row: 1, Col: -1}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
	}
)

// Offsets returns a copy of the offset table used by conn, or nil for an
// unknown value.
func Offsets(conn Connectivity) []point.Point {
	switch conn {
	case Conn4:
		return append([]point.Point(nil), fourOffsets[:]...)
	case Conn8:
		return append([]point.Point(nil), eightOffsets[:]...)
	default:
		return nil
	}
}

// New builds the Adjacency for conn. height and width are only used by Conn8.
func New(conn Connectivity, height, width int) (Adjacency, error) {
	switch conn {
	case Conn4:
		return Four{}, nil
	case Conn8:
		return NewEight(height, width), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownConnectivity, conn)
	}
}

// Four is 4-connected adjacency. It always returns exactly four points,
// possibly outside any grid; callers check bounds themselves.
type Four struct{}

// Neighbours returns p shifted right, down, left and up, in that order.
// Complexity: O(1).
func (Four) Neighbours(p point.Point) []point.Point {
	out := make([]point.Point, len(fourOffsets))
	for i, d := range fourOffsets {
		out[i] = p.Add(d)
	}

	return out
}

// Eight is 8-connected adjacency bound to a height×width grid.
type Eight struct {
	Height, Width int
}

// NewEight returns an Eight clipping to [0, height) × [0, width).
func NewEight(height, width int) Eight {
	return Eight{Height: height, Width: width}
}

// Neighbours returns the in-grid cells surrounding p, row-major with p itself
// excluded. Clipped candidates are omitted; survivors keep their relative order.
// Complexity: O(1).
func (e Eight) Neighbours(p point.Point) []point.Point {
	out := make([]point.Point, 0, len(eightOffsets))
	for _, d := range eightOffsets {
		q := p.Add(d)
		if q.Row < 0 || q.Row >= e.Height || q.Col < 0 || q.Col >= e.Width {
			continue
		}
		out = append(out, q)
	}

	return out
}
