// Copyright 2026 The geoindex (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildKDTree(t *testing.T, nodeSize uint16, x, y []float64) *KDTree {
	t.Helper()
	b, err := NewBuilder(nodeSize)
	require.NoError(t, err)
	require.NoError(t, b.Add(x, y))
	return b.Finish()
}

func randomPoints(rng *rand.Rand, n int) (x, y []float64) {
	x = make([]float64, n)
	y = make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = rng.Float64()*200 - 100
		y[i] = rng.Float64()*200 - 100
	}
	return
}

func bruteForceRange(x, y []float64, minX, minY, maxX, maxY float64) []int {
	hits := make([]int, 0)
	for i := range x {
		if minX <= x[i] && x[i] <= maxX && minY <= y[i] && y[i] <= maxY {
			hits = append(hits, i)
		}
	}
	return hits
}

func bruteForceWithin(x, y []float64, qx, qy, r float64) []int {
	hits := make([]int, 0)
	for i := range x {
		if sqDist(x[i], y[i], qx, qy) <= r*r {
			hits = append(hits, i)
		}
	}
	return hits
}

func TestNewBuilder(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		for _, nodeSize := range []uint16{0, 1} {
			b, err := NewBuilder(nodeSize)

			assert.Nil(t, b)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		}
	})

	t.Run("Success", func(t *testing.T) {
		b, err := NewBuilder(64)

		require.NoError(t, err)
		assert.Equal(t, 0, b.NumItems())
	})
}

func TestBuilder_Add(t *testing.T) {
	t.Run("DimensionMismatch", func(t *testing.T) {
		b, err := NewBuilder(8)
		require.NoError(t, err)

		err = b.Add([]float64{1, 2}, []float64{1})

		assert.ErrorIs(t, err, ErrDimensionMismatch)
		assert.Equal(t, 0, b.NumItems())
	})

	t.Run("Accumulate", func(t *testing.T) {
		b, err := NewBuilder(8)
		require.NoError(t, err)

		require.NoError(t, b.Add([]float64{1, 2}, []float64{3, 4}))
		require.NoError(t, b.Add(nil, nil))
		require.NoError(t, b.Add([]float64{5}, []float64{6}))

		assert.Equal(t, 3, b.NumItems())
	})
}

func TestBuilder_Spent(t *testing.T) {
	b, err := NewBuilder(2)
	require.NoError(t, err)
	_ = b.Finish()

	assert.PanicsWithValue(t, "kdtree: Finish called twice", func() {
		_ = b.Finish()
	})
	assert.PanicsWithValue(t, "kdtree: Add after Finish", func() {
		_ = b.Add([]float64{0}, []float64{0})
	})
}

func TestKDTree_Empty(t *testing.T) {
	b, err := NewBuilder(4)
	require.NoError(t, err)
	tree := b.Finish()

	assert.Equal(t, 0, tree.NumItems())

	ids, err := tree.Range(-100, -100, 100, 100)
	require.NoError(t, err)
	assert.Equal(t, []int{}, ids)

	ids, err = tree.Within(0, 0, 1000)
	require.NoError(t, err)
	assert.Equal(t, []int{}, ids)
}

func TestKDTree_QueryErrors(t *testing.T) {
	tree := buildKDTree(t, 4, []float64{0, 1}, []float64{0, 1})

	t.Run("InvalidRectangle", func(t *testing.T) {
		ids, err := tree.Range(1, 0, 0, 1)

		assert.Nil(t, ids)
		assert.ErrorIs(t, err, ErrInvalidRectangle)
	})

	t.Run("InvalidRadius", func(t *testing.T) {
		ids, err := tree.Within(0, 0, -1)

		assert.Nil(t, ids)
		assert.ErrorIs(t, err, ErrInvalidRadius)
	})
}

// TestKDTree_IdentifierStability checks that identifiers track
// insertion order across Add calls even though construction permutes
// the points internally.
func TestKDTree_IdentifierStability(t *testing.T) {
	b, err := NewBuilder(2)
	require.NoError(t, err)
	require.NoError(t, b.Add([]float64{10, 20}, []float64{10, 20}))
	require.NoError(t, b.Add([]float64{30}, []float64{30}))
	tree := b.Finish()

	for i, want := range []float64{10, 20, 30} {
		ids, err := tree.Range(want, want, want, want)

		require.NoError(t, err)
		assert.Equal(t, []int{i}, ids)
	}
}

func TestKDTree_RangeBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(23))

	for _, numItems := range []int{1, 10, 100, 2000} {
		for _, nodeSize := range []uint16{2, 10, 64} {
			t.Run(fmt.Sprintf("N%d.NodeSize%d", numItems, nodeSize), func(t *testing.T) {
				x, y := randomPoints(rng, numItems)
				tree := buildKDTree(t, nodeSize, x, y)

				for q := 0; q < 50; q++ {
					minX := rng.Float64()*220 - 110
					minY := rng.Float64()*220 - 110
					maxX := minX + rng.Float64()*60
					maxY := minY + rng.Float64()*60

					got, err := tree.Range(minX, minY, maxX, maxY)

					require.NoError(t, err)
					assert.True(t, sort.IntsAreSorted(got))
					assert.Equal(t, bruteForceRange(x, y, minX, minY, maxX, maxY), got)
				}
			})
		}
	}
}

func TestKDTree_WithinBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(29))

	for _, numItems := range []int{1, 10, 100, 2000} {
		for _, nodeSize := range []uint16{2, 10, 64} {
			t.Run(fmt.Sprintf("N%d.NodeSize%d", numItems, nodeSize), func(t *testing.T) {
				x, y := randomPoints(rng, numItems)
				tree := buildKDTree(t, nodeSize, x, y)

				for q := 0; q < 50; q++ {
					qx := rng.Float64()*220 - 110
					qy := rng.Float64()*220 - 110
					r := rng.Float64() * 50

					got, err := tree.Within(qx, qy, r)

					require.NoError(t, err)
					assert.True(t, sort.IntsAreSorted(got))
					assert.Equal(t, bruteForceWithin(x, y, qx, qy, r), got)
				}
			})
		}
	}
}

func TestKDTree_ZeroRadius(t *testing.T) {
	tree := buildKDTree(t, 4, []float64{0, 1, 0}, []float64{0, 1, 0})

	// Closed comparison: distance exactly zero matches, and duplicate
	// points each match under their own identifier.
	ids, err := tree.Within(0, 0, 0)

	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, ids)
}

func TestKDTree_String(t *testing.T) {
	tree := buildKDTree(t, 8, []float64{1, 2, 3}, []float64{1, 2, 3})

	assert.Equal(t, "KDTree{NumItems:3,NodeSize:8}", tree.String())
}
