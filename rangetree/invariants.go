package rangetree

import (
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Check validates the structural invariants of the tree:
//
//   - the height is ceil(log2 n) and sibling heights differ by at most one,
//   - every point sits in exactly one leaf,
//   - the left subtree of a node holds only x <= splitX, the right one only
//     x >= splitX,
//   - each auxiliary array is sorted by y and holds exactly the points of its
//     subtree,
//   - every cascading index refers to the first child entry with a y >= the
//     entry's y, or is absent if there is none.
//
// Cascading indices are verified by linear scan, independently of the binary
// search used to build them. Check is meant for tests.
func (t *Tree[C]) Check() error {
	if t == nil || t.root == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}

	stats, err := checkNode(t.root)
	if err != nil {
		return err
	}

	if stats.size != t.size {
		return fmt.Errorf("%w: tree holds %d leaves, expected %d", ErrInvariant, stats.size, t.size)
	}

	if want := bits.Len(uint(t.size - 1)); t.root.height() != want {
		return fmt.Errorf("%w: height %d for %d points, expected %d",
			ErrInvariant, t.root.height(), t.size, want)
	}

	return nil
}

// subtreeStats summarizes a checked subtree.
type subtreeStats[C constraints.Integer] struct {
	size       int
	minX, maxX C
}

func checkNode[C constraints.Integer](n node[C]) (subtreeStats[C], error) {
	switch n := n.(type) {
	case *leafNode[C]:
		entry := n.entry[0]

		if entry.left != noIndex || entry.right != noIndex {
			return subtreeStats[C]{}, fmt.Errorf("%w: leaf %s carries cascading indices", ErrInvariant, entry.point)
		}

		return subtreeStats[C]{size: 1, minX: entry.point.X, maxX: entry.point.X}, nil

	case *internalNode[C]:
		return checkInternalNode(n)

	case nil:
		return subtreeStats[C]{}, fmt.Errorf("%w: nil node", ErrInvariant)

	default:
		return subtreeStats[C]{}, fmt.Errorf("%w: unexpected node type %T", ErrInvariant, n)
	}
}

func checkInternalNode[C constraints.Integer](n *internalNode[C]) (subtreeStats[C], error) {
	if n.left == nil || n.right == nil {
		return subtreeStats[C]{}, fmt.Errorf("%w: internal node at x=%d is missing a child", ErrInvariant, n.splitX)
	}

	left, err := checkNode(n.left)
	if err != nil {
		return subtreeStats[C]{}, err
	}

	right, err := checkNode(n.right)
	if err != nil {
		return subtreeStats[C]{}, err
	}

	if left.maxX > n.splitX || right.minX < n.splitX {
		return subtreeStats[C]{}, fmt.Errorf("%w: split x=%d does not separate [%d,%d] from [%d,%d]",
			ErrInvariant, n.splitX, left.minX, left.maxX, right.minX, right.maxX)
	}

	lh, rh := n.left.height(), n.right.height()

	if n.depth != 1+max(lh, rh) || lh-rh > 1 || rh-lh > 1 {
		return subtreeStats[C]{}, fmt.Errorf("%w: unbalanced node at x=%d (height %d, children %d and %d)",
			ErrInvariant, n.splitX, n.depth, lh, rh)
	}

	if err := checkAuxiliary(n); err != nil {
		return subtreeStats[C]{}, err
	}

	return subtreeStats[C]{
		size: left.size + right.size,
		minX: left.minX,
		maxX: right.maxX,
	}, nil
}

func checkAuxiliary[C constraints.Integer](n *internalNode[C]) error {
	leftAux, rightAux := n.left.auxiliary(), n.right.auxiliary()

	if len(n.aux) != len(leftAux)+len(rightAux) {
		return fmt.Errorf("%w: node at x=%d has %d auxiliary entries, children hold %d",
			ErrInvariant, n.splitX, len(n.aux), len(leftAux)+len(rightAux))
	}

	counts := make(map[Point[C]]int, len(n.aux))

	for _, entry := range leftAux {
		counts[entry.point]++
	}

	for _, entry := range rightAux {
		counts[entry.point]++
	}

	for i, entry := range n.aux {
		if i > 0 && compareByY(n.aux[i-1].point, entry.point) > 0 {
			return fmt.Errorf("%w: auxiliary array at x=%d is not sorted by y at %d",
				ErrInvariant, n.splitX, i)
		}

		if counts[entry.point] == 0 {
			return fmt.Errorf("%w: auxiliary entry %s at x=%d is not in a child",
				ErrInvariant, entry.point, n.splitX)
		}

		counts[entry.point]--

		if want := scanFirstAtLeast(leftAux, entry.point.Y); entry.left != want {
			return fmt.Errorf("%w: left cascading index of %s at x=%d is %d, expected %d",
				ErrInvariant, entry.point, n.splitX, entry.left, want)
		}

		if want := scanFirstAtLeast(rightAux, entry.point.Y); entry.right != want {
			return fmt.Errorf("%w: right cascading index of %s at x=%d is %d, expected %d",
				ErrInvariant, entry.point, n.splitX, entry.right, want)
		}
	}

	return nil
}

// scanFirstAtLeast is the linear-scan counterpart of [lowerBoundY].
func scanFirstAtLeast[C constraints.Integer](entries []augmentedPoint[C], y C) int {
	for i, entry := range entries {
		if entry.point.Y >= y {
			return i
		}
	}

	return noIndex
}
