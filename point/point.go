package point

import "strconv"

// Point is a (Row, Col) coordinate in raster space.
type Point struct {
	Row, Col int
}

// Pt is a convenience constructor for Point.
func Pt(row, col int) Point { return Point{Row: row, Col: col} }

// Add returns the component-wise sum p + q.
func (p Point) Add(q Point) Point {
	p.Row += q.Row
	p.Col += q.Col
	return p
}

// Sub returns the component-wise difference p − q.
func (p Point) Sub(q Point) Point {
	p.Row -= q.Row
	p.Col -= q.Col
	return p
}

// Equal reports whether both components of p and q match.
func (p Point) Equal(q Point) bool {
	return p.Row == q.Row && p.Col == q.Col
}

// Before reports whether p precedes q in row-major (raster) order.
func (p Point) Before(q Point) bool {
	return p.Row < q.Row || (p.Row == q.Row && p.Col < q.Col)
}

// String formats the point as "(row, col)".
func (p Point) String() string {
	return "(" + strconv.Itoa(p.Row) + ", " + strconv.Itoa(p.Col) + ")"
}
