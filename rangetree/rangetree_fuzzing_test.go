package rangetree_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crystalix007/orthogonal-range-tree/rangetree"
)

func FuzzTree(f *testing.F) {
	f.Add(uint64(1), uint8(4), int16(1), int16(1), int16(2), int16(2))
	f.Add(uint64(2), uint8(1), int16(-10), int16(-10), int16(10), int16(10))
	f.Add(uint64(3), uint8(2), int16(0), int16(0), int16(10), int16(0))
	f.Add(uint64(4), uint8(200), int16(5), int16(30), int16(-5), int16(-30))

	f.Fuzz(func(
		t *testing.T,
		seed uint64,
		pointCount uint8,
		x1, y1, x2, y2 int16,
	) {
		if pointCount == 0 {
			_, err := rangetree.New([]rangetree.Point[int16]{})
			require.ErrorIs(t, err, rangetree.ErrEmptyPointSet)

			return
		}

		rng := rand.New(rand.NewPCG(seed, uint64(pointCount)))

		// Keep coordinates in a narrow band, so that rectangles hit points
		// and duplicate coordinates are common.
		points := make([]rangetree.Point[int16], pointCount)

		for i := range points {
			points[i] = rangetree.Point[int16]{
				X: int16(rng.IntN(64) - 32),
				Y: int16(rng.IntN(64) - 32),
			}
		}

		tree, err := rangetree.New(points)
		require.NoError(t, err)
		require.NoError(t, tree.Check())

		corner1 := rangetree.Point[int16]{X: x1 % 40, Y: y1 % 40}
		corner2 := rangetree.Point[int16]{X: x2 % 40, Y: y2 % 40}

		want := rangetree.NewNaive(points).Query(corner1, corner2)

		require.ElementsMatch(t, want, tree.Query(corner1, corner2))
	})
}
