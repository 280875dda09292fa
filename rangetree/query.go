package rangetree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// bridge is the auxiliary array of a canonical subtree together with the
// cascaded position of the first entry whose y is >= the query's lower y.
type bridge[C constraints.Integer] struct {
	entries []augmentedPoint[C]
	start   int
}

// Query returns all points that lie within the rectangle spanned by the two
// corners, boundary included. The corners may be given in any order.
//
// The order of the returned points is unspecified.
func (t *Tree[C]) Query(corner1, corner2 Point[C]) []Point[C] {
	return t.QueryRect(NewRect(corner1, corner2))
}

// QueryRect returns all points that lie within r, boundary included.
//
// The order of the returned points is unspecified.
func (t *Tree[C]) QueryRect(r Rect[C]) []Point[C] {
	if !t.intersects(r) {
		return nil
	}

	switch split := findSplitNode(t.root, r.Min.X, r.Max.X).(type) {
	case *leafNode[C]:
		// The whole x-range maps onto a single point, which still has to
		// be checked against the full rectangle.
		if r.Contains(split.point()) {
			return []Point[C]{split.point()}
		}

		return nil

	case *internalNode[C]:
		yStart := lowerBoundY(split.aux, r.Min.Y)

		if yStart == noIndex {
			return nil
		}

		entry := split.aux[yStart]

		bridges := walkLeftSpine(split.left, entry.left, r.Min.X, nil)
		bridges = walkRightSpine(split.right, entry.right, r.Max.X, bridges)

		return scanBridges(bridges, r.Max.Y)

	default:
		panic(fmt.Sprintf("rangetree: unexpected node type %T", split))
	}
}

// intersects reports whether r overlaps the bounding rectangle of the tree.
func (t *Tree[C]) intersects(r Rect[C]) bool {
	return r.Min.X <= t.bounds.Max.X && t.bounds.Min.X <= r.Max.X &&
		r.Min.Y <= t.bounds.Max.Y && t.bounds.Min.Y <= r.Max.Y
}

// findSplitNode descends from n to the node where the search paths for fromX
// and toX diverge, i.e. the first internal node with fromX <= splitX <= toX.
// If both paths end in the same leaf, that leaf is returned.
func findSplitNode[C constraints.Integer](n node[C], fromX, toX C) node[C] {
	for {
		internal, ok := n.(*internalNode[C])
		if !ok {
			return n
		}

		switch {
		case toX < internal.splitX:
			n = internal.left
		case fromX > internal.splitX:
			n = internal.right
		default:
			return internal
		}
	}
}

// walkLeftSpine follows the search path for fromX below the split node. Every
// right subtree hanging off a left turn lies fully inside the x-range and is
// recorded as a bridge.
//
// index is the cascaded position in n's auxiliary array.
func walkLeftSpine[C constraints.Integer](n node[C], index int, fromX C, bridges []bridge[C]) []bridge[C] {
	for index != noIndex {
		switch current := n.(type) {
		case *leafNode[C]:
			if current.point().X >= fromX {
				bridges = append(bridges, bridge[C]{entries: current.auxiliary(), start: index})
			}

			return bridges

		case *internalNode[C]:
			entry := current.aux[index]

			if fromX <= current.splitX {
				bridges = appendBridge(bridges, current.right, entry.right)
				n, index = current.left, entry.left
			} else {
				n, index = current.right, entry.right
			}

		default:
			panic(fmt.Sprintf("rangetree: unexpected node type %T", n))
		}
	}

	return bridges
}

// walkRightSpine is the mirror image of [walkLeftSpine] for toX: left
// subtrees hanging off a right turn are recorded as bridges.
func walkRightSpine[C constraints.Integer](n node[C], index int, toX C, bridges []bridge[C]) []bridge[C] {
	for index != noIndex {
		switch current := n.(type) {
		case *leafNode[C]:
			if current.point().X <= toX {
				bridges = append(bridges, bridge[C]{entries: current.auxiliary(), start: index})
			}

			return bridges

		case *internalNode[C]:
			entry := current.aux[index]

			if toX >= current.splitX {
				bridges = appendBridge(bridges, current.left, entry.left)
				n, index = current.right, entry.right
			} else {
				n, index = current.left, entry.left
			}

		default:
			panic(fmt.Sprintf("rangetree: unexpected node type %T", n))
		}
	}

	return bridges
}

// appendBridge records a whole canonical subtree, unless none of its points
// reaches the lower y bound.
func appendBridge[C constraints.Integer](bridges []bridge[C], n node[C], index int) []bridge[C] {
	if index == noIndex {
		return bridges
	}

	return append(bridges, bridge[C]{entries: n.auxiliary(), start: index})
}

// scanBridges collects the points of every bridge up to and including toY.
// Each auxiliary array is sorted by y, so the scan stops at the first entry
// above toY.
func scanBridges[C constraints.Integer](bridges []bridge[C], toY C) []Point[C] {
	var result []Point[C]

	for _, b := range bridges {
		for _, entry := range b.entries[b.start:] {
			if entry.point.Y > toY {
				break
			}

			result = append(result, entry.point)
		}
	}

	return result
}
