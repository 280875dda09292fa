package rangetree

import "golang.org/x/exp/constraints"

// Naive answers range queries by scanning every point. It is the reference
// that [Tree] is tested against.
type Naive[C constraints.Integer] struct {
	points []Point[C]
}

var _ Searcher[int] = &Naive[int]{}

// NewNaive creates a linear-scan searcher over a copy of points.
func NewNaive[C constraints.Integer](points []Point[C]) *Naive[C] {
	return &Naive[C]{
		points: append([]Point[C](nil), points...),
	}
}

// Query returns all points within the rectangle spanned by the two corners,
// boundary included, in input order.
func (n *Naive[C]) Query(corner1, corner2 Point[C]) []Point[C] {
	return n.QueryRect(NewRect(corner1, corner2))
}

// QueryRect returns all points within r, boundary included, in input order.
func (n *Naive[C]) QueryRect(r Rect[C]) []Point[C] {
	var result []Point[C]

	for _, p := range n.points {
		if r.Contains(p) {
			result = append(result, p)
		}
	}

	return result
}
