package rangetree

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// build sorts the points by x and builds a balanced range tree over them.
//
// points must not be empty. The input slice is not modified.
func build[C constraints.Integer](points []Point[C]) node[C] {
	sorted := slices.Clone(points)

	// Stable, so that identical points keep their input order.
	slices.SortStableFunc(sorted, compareByX[C])

	return buildNode(sorted)
}

// buildNode builds the subtree over a contiguous, x-sorted run of points.
//
// The left child receives the lower median and everything before it, so the
// left part has ceil(n/2) points and the right part floor(n/2). This keeps the
// height at ceil(log2 n), and a run of two points becomes an internal node with
// a leaf on either side.
func buildNode[C constraints.Integer](points []Point[C]) node[C] {
	assert(len(points) > 0, "rangetree: buildNode called with empty run")

	if len(points) == 1 {
		return newLeafNode(points[0])
	}

	medianIndex := (len(points) - 1) / 2

	left := buildNode(points[:medianIndex+1])
	right := buildNode(points[medianIndex+1:])

	return &internalNode[C]{
		splitX: points[medianIndex].X,
		left:   left,
		right:  right,
		aux:    buildAuxiliary(left.auxiliary(), right.auxiliary()),
		depth:  1 + max(left.height(), right.height()),
	}
}

// buildAuxiliary merges the y-sorted auxiliary arrays of two children into
// the parent's auxiliary array and threads the cascading indices from every
// parent entry into both children.
func buildAuxiliary[C constraints.Integer](left, right []augmentedPoint[C]) []augmentedPoint[C] {
	aux := make([]augmentedPoint[C], 0, len(left)+len(right))

	i, j := 0, 0

	for i < len(left) || j < len(right) {
		var p Point[C]

		if j == len(right) || (i < len(left) && compareByY(left[i].point, right[j].point) <= 0) {
			p = left[i].point
			i++
		} else {
			p = right[j].point
			j++
		}

		aux = append(aux, augmentedPoint[C]{
			point: p,
			left:  lowerBoundY(left, p.Y),
			right: lowerBoundY(right, p.Y),
		})
	}

	return aux
}
