package rangetree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crystalix007/orthogonal-range-tree/rangetree"
)

type point = rangetree.Point[int]

func TestNewRect_normalizesCorners(t *testing.T) {
	t.Parallel()

	want := rangetree.Rect[int]{Min: point{X: 1, Y: 2}, Max: point{X: 5, Y: 7}}

	require.Equal(t, want, rangetree.NewRect(point{X: 1, Y: 2}, point{X: 5, Y: 7}))
	require.Equal(t, want, rangetree.NewRect(point{X: 5, Y: 7}, point{X: 1, Y: 2}))
	require.Equal(t, want, rangetree.NewRect(point{X: 1, Y: 7}, point{X: 5, Y: 2}))
	require.Equal(t, want, rangetree.NewRect(point{X: 5, Y: 2}, point{X: 1, Y: 7}))
}

func TestRect_Contains(t *testing.T) {
	t.Parallel()

	r := rangetree.NewRect(point{X: 0, Y: 0}, point{X: 10, Y: 5})

	tests := []struct {
		name string
		p    point
		want bool
	}{
		{name: "Inside", p: point{X: 3, Y: 3}, want: true},
		{name: "MinCorner", p: point{X: 0, Y: 0}, want: true},
		{name: "MaxCorner", p: point{X: 10, Y: 5}, want: true},
		{name: "LeftEdge", p: point{X: 0, Y: 4}, want: true},
		{name: "TopEdge", p: point{X: 7, Y: 5}, want: true},
		{name: "LeftOf", p: point{X: -1, Y: 3}, want: false},
		{name: "RightOf", p: point{X: 11, Y: 3}, want: false},
		{name: "Below", p: point{X: 3, Y: -1}, want: false},
		{name: "Above", p: point{X: 3, Y: 6}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, r.Contains(tt.p))
		})
	}
}

func TestRect_Contains_degenerate(t *testing.T) {
	t.Parallel()

	r := rangetree.NewRect(point{X: 4, Y: 4}, point{X: 4, Y: 4})

	require.True(t, r.Contains(point{X: 4, Y: 4}))
	require.False(t, r.Contains(point{X: 4, Y: 5}))
	require.False(t, r.Contains(point{X: 3, Y: 4}))
}

func TestPoint_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "(-3,12)", point{X: -3, Y: 12}.String())
	require.Equal(t, "[(0,1)-(2,3)]", rangetree.NewRect(point{X: 2, Y: 1}, point{X: 0, Y: 3}).String())
}

func TestLowerBoundY(t *testing.T) {
	t.Parallel()

	ys := []int{1, 3, 3, 3, 7}

	require.Equal(t, 0, rangetree.LowerBoundY(ys, 0))
	require.Equal(t, 0, rangetree.LowerBoundY(ys, 1))
	require.Equal(t, 1, rangetree.LowerBoundY(ys, 2))
	require.Equal(t, 1, rangetree.LowerBoundY(ys, 3))
	require.Equal(t, 4, rangetree.LowerBoundY(ys, 4))
	require.Equal(t, 4, rangetree.LowerBoundY(ys, 7))
	require.Equal(t, rangetree.NoIndex, rangetree.LowerBoundY(ys, 8))
	require.Equal(t, rangetree.NoIndex, rangetree.LowerBoundY([]int{}, 0))
}
