package point

import (
	"errors"
	"fmt"
)

// ErrInvalidRegion indicates a Box whose corners are not properly ordered.
var ErrInvalidRegion = errors.New("point: top-left corner must be strictly above and left of bottom-right")

// Box is a closed rectangle spanning TopLeft..BottomRight, both corners included.
// It is immutable once built; use NewBox to obtain a valid one.
type Box struct {
	TopLeft, BottomRight Point
}

// NewBox validates the corners and returns the Box they span.
// Returns ErrInvalidRegion unless tl.Row < br.Row and tl.Col < br.Col.
func NewBox(tl, br Point) (Box, error) {
	if tl.Row >= br.Row {
		return Box{}, fmt.Errorf("%w: bottom row %d is not below top row %d", ErrInvalidRegion, br.Row, tl.Row)
	}
	if tl.Col >= br.Col {
		return Box{}, fmt.Errorf("%w: right col %d is not right of left col %d", ErrInvalidRegion, br.Col, tl.Col)
	}

	return Box{TopLeft: tl, BottomRight: br}, nil
}

// Top returns the row of the upper edge.
func (b Box) Top() int { return b.TopLeft.Row }

// Left returns the column of the left edge.
func (b Box) Left() int { return b.TopLeft.Col }

// Bottom returns the row of the lower edge.
func (b Box) Bottom() int { return b.BottomRight.Row }

// Right returns the column of the right edge.
func (b Box) Right() int { return b.BottomRight.Col }

// Width returns Right − Left.
func (b Box) Width() int { return b.BottomRight.Col - b.TopLeft.Col }

// Height returns Bottom − Top.
func (b Box) Height() int { return b.BottomRight.Row - b.TopLeft.Row }

// Contains reports whether p lies inside b; all four edges are inclusive.
func (b Box) Contains(p Point) bool {
	return b.Left() <= p.Col && p.Col <= b.Right() &&
		b.Top() <= p.Row && p.Row <= b.Bottom()
}
