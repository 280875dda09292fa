package rangetree

import "golang.org/x/exp/constraints"

// NoIndex re-exports [noIndex] for testing purposes.
const NoIndex = noIndex

// LowerBoundY runs [lowerBoundY] over auxiliary entries with the given y
// values, which must be sorted.
func LowerBoundY[C constraints.Integer](ys []C, target C) int {
	entries := make([]augmentedPoint[C], len(ys))

	for i, y := range ys {
		entries[i] = augmentedPoint[C]{point: Point[C]{Y: y}, left: noIndex, right: noIndex}
	}

	return lowerBoundY(entries, target)
}

// CascadingIndices returns the cascading indices of the root's auxiliary
// array, in y order.
func (t *Tree[C]) CascadingIndices() (left, right []int) {
	for _, entry := range t.root.auxiliary() {
		left = append(left, entry.left)
		right = append(right, entry.right)
	}

	return left, right
}

// CorruptCascade shifts the left cascading index of the root's first
// auxiliary entry, breaking the tree on purpose.
func (t *Tree[C]) CorruptCascade() {
	if internal, ok := t.root.(*internalNode[C]); ok {
		internal.aux[0].left++
	}
}
