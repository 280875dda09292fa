package rangetree

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Point is an immutable 2-D point with integer coordinates.
type Point[C constraints.Integer] struct {
	X C
	Y C
}

// String formats the point as "(x,y)".
func (p Point[C]) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect represents the closed rectangle [Min.X, Max.X] x [Min.Y, Max.Y].
type Rect[C constraints.Integer] struct {
	Min Point[C]
	Max Point[C]
}

// NewRect creates the rectangle spanned by two arbitrary corners.
func NewRect[C constraints.Integer](corner1, corner2 Point[C]) Rect[C] {
	return Rect[C]{
		Min: Point[C]{X: min(corner1.X, corner2.X), Y: min(corner1.Y, corner2.Y)},
		Max: Point[C]{X: max(corner1.X, corner2.X), Y: max(corner1.Y, corner2.Y)},
	}
}

// Contains reports whether p lies within the rectangle, boundary included.
func (r Rect[C]) Contains(p Point[C]) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// String formats the rectangle as "[(x1,y1)-(x2,y2)]".
func (r Rect[C]) String() string {
	return "[" + r.Min.String() + "-" + r.Max.String() + "]"
}

// compareByX orders points by x, then by y.
func compareByX[C constraints.Integer](a, b Point[C]) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}

	return cmp.Compare(a.Y, b.Y)
}

// compareByY orders points by y, then by x.
func compareByY[C constraints.Integer](a, b Point[C]) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}

	return cmp.Compare(a.X, b.X)
}

// compareAugmentedByY compares an auxiliary entry against a target y value.
//
// Only y takes part in the comparison, so a binary search with it yields the
// first entry whose y is >= target, whatever the x of the entries with equal
// y.
func compareAugmentedByY[C constraints.Integer](entry augmentedPoint[C], target C) int {
	return cmp.Compare(entry.point.Y, target)
}
