package rangetree

import "errors"

var (
	// ErrEmptyPointSet signals an attempt to build a tree without points.
	ErrEmptyPointSet = errors.New("rangetree: empty point set")
	// ErrInvariant signals a violated structural invariant, found by
	// [Tree.Check].
	ErrInvariant = errors.New("rangetree: invariant violated")
)

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
