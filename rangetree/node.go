package rangetree

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// noIndex marks an absent cascading index: the child's auxiliary array has no
// entry with a y coordinate >= the entry's own y.
const noIndex = -1

// augmentedPoint is an entry of an auxiliary array. Left and Right hold the
// position of the first entry in the left/right child's auxiliary array whose
// y is >= point.Y, or [noIndex].
type augmentedPoint[C constraints.Integer] struct {
	point Point[C]
	left  int
	right int
}

// node is the interface that both node shapes of the range tree implement.
//
// The set of implementations is closed: every node is either a [*leafNode] or
// an [*internalNode], and callers dispatch with a type switch.
type node[C constraints.Integer] interface {
	// auxiliary returns the points of the subtree, sorted by y.
	auxiliary() []augmentedPoint[C]
	// height returns the number of edges on the longest path to a leaf.
	height() int
}

// leafNode holds exactly one point.
type leafNode[C constraints.Integer] struct {
	// entry is the virtual single-element auxiliary array of the leaf.
	entry [1]augmentedPoint[C]
}

// Ensure that leafNode implements the [node] interface.
var _ node[int] = &leafNode[int]{}

func newLeafNode[C constraints.Integer](p Point[C]) *leafNode[C] {
	return &leafNode[C]{
		entry: [1]augmentedPoint[C]{{point: p, left: noIndex, right: noIndex}},
	}
}

// point returns the single point of the leaf.
func (l *leafNode[C]) point() Point[C] {
	return l.entry[0].point
}

func (l *leafNode[C]) auxiliary() []augmentedPoint[C] {
	return l.entry[:]
}

func (l *leafNode[C]) height() int {
	return 0
}

// internalNode partitions a contiguous, x-sorted run of points into a left
// part with x <= splitX and a right part with x >= splitX.
type internalNode[C constraints.Integer] struct {
	splitX C
	left   node[C]
	right  node[C]
	aux    []augmentedPoint[C]
	depth  int
}

var _ node[int] = &internalNode[int]{}

func (n *internalNode[C]) auxiliary() []augmentedPoint[C] {
	return n.aux
}

func (n *internalNode[C]) height() int {
	return n.depth
}

// lowerBoundY returns the position of the first entry in entries whose y is
// >= target, or [noIndex] if there is none.
func lowerBoundY[C constraints.Integer](entries []augmentedPoint[C], target C) int {
	index, _ := slices.BinarySearchFunc(entries, target, compareAugmentedByY[C])

	if index == len(entries) {
		return noIndex
	}

	return index
}
