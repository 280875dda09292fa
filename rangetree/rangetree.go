// Package rangetree answers 2-D orthogonal range queries over a static set of
// points.
//
// A [Tree] is a balanced binary tree on the x coordinate. Every internal node
// keeps the points of its subtree in an auxiliary array sorted by y, and each
// entry of that array carries the position of the matching entry in the
// children's arrays (fractional cascading). A query then costs O(log n + k),
// where k is the number of reported points.
//
// A [Naive] searcher answers the same queries by a linear scan and serves as a
// reference. Both treat rectangles as closed: points on the boundary are
// reported.
//
// A tree is never modified after [New] returns, so it is safe for concurrent
// use by multiple goroutines.
package rangetree

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"
)

// Searcher answers orthogonal range queries.
type Searcher[C constraints.Integer] interface {
	Query(corner1, corner2 Point[C]) []Point[C]
	QueryRect(r Rect[C]) []Point[C]
}

// Tree is an immutable range tree with fractional cascading.
type Tree[C constraints.Integer] struct {
	root   node[C]
	size   int
	bounds Rect[C]
}

// Ensure that Tree implements the [Searcher] interface.
var _ Searcher[int] = &Tree[int]{}

// New builds a range tree over points. The slice is copied; the caller may
// reuse it afterwards.
//
// It returns [ErrEmptyPointSet] if points is empty.
func New[C constraints.Integer](points []Point[C]) (*Tree[C], error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: cannot build a range tree", ErrEmptyPointSet)
	}

	root := build(points)

	t := &Tree[C]{
		root:   root,
		size:   len(points),
		bounds: boundsOf(points),
	}

	T().Infof("rangetree: built tree over %d points, height %d, bounds %s",
		t.size, root.height(), t.bounds)

	return t, nil
}

// boundsOf returns the smallest rectangle containing all points.
func boundsOf[C constraints.Integer](points []Point[C]) Rect[C] {
	bounds := Rect[C]{Min: points[0], Max: points[0]}

	for _, p := range points[1:] {
		bounds.Min.X = min(bounds.Min.X, p.X)
		bounds.Min.Y = min(bounds.Min.Y, p.Y)
		bounds.Max.X = max(bounds.Max.X, p.X)
		bounds.Max.Y = max(bounds.Max.Y, p.Y)
	}

	return bounds
}

// Len returns the number of points in the tree.
func (t *Tree[C]) Len() int {
	return t.size
}

// Height returns the number of edges on the longest root-to-leaf path. A tree
// over n points has height ceil(log2 n).
func (t *Tree[C]) Height() int {
	return t.root.height()
}

// Bounds returns the smallest rectangle containing all points of the tree.
func (t *Tree[C]) Bounds() Rect[C] {
	return t.bounds
}

// All returns an iterator over the points of the tree, ordered by x, then by
// y.
func (t *Tree[C]) All() iter.Seq[Point[C]] {
	return func(yield func(Point[C]) bool) {
		walkLeaves(t.root, yield)
	}
}

// walkLeaves yields the leaf points below n from left to right. It returns
// false once yield asks to stop.
func walkLeaves[C constraints.Integer](n node[C], yield func(Point[C]) bool) bool {
	switch n := n.(type) {
	case *leafNode[C]:
		return yield(n.point())
	case *internalNode[C]:
		return walkLeaves(n.left, yield) && walkLeaves(n.right, yield)
	default:
		panic(fmt.Sprintf("rangetree: unexpected node type %T", n))
	}
}
