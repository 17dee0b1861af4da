package point

// Indexer maps points of a Box to dense, row-major linear indices and back.
// The row stride is Width()+1.
type Indexer struct {
	domain Box
	stride int
}

// NewIndexer binds an Indexer to domain.
func NewIndexer(domain Box) Indexer {
	return Indexer{domain: domain, stride: domain.Width() + 1}
}

// Domain returns the Box the indexer is bound to.
func (ix Indexer) Domain() Box { return ix.domain }

// Size returns the number of indices needed to address every point the
// domain contains, i.e. (Width+1)·(Height+1).
func (ix Indexer) Size() int {
	return ix.stride * (ix.domain.Height() + 1)
}

// PointToIndex returns (Width+1)·(p.Row−Top) + (p.Col−Left).
// Complexity: O(1).
func (ix Indexer) PointToIndex(p Point) int {
	q := p.Sub(ix.domain.TopLeft)
	return ix.stride*q.Row + q.Col
}

// IndexToPoint inverts PointToIndex for non-negative indices.
// Complexity: O(1).
func (ix Indexer) IndexToPoint(idx int) Point {
	q := Point{Row: idx / ix.stride, Col: idx % ix.stride}
	return q.Add(ix.domain.TopLeft)
}
