// Copyright 2026 The geoindex (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

// A Builder accumulates points and arranges them into an immutable
// KDTree. Each point is assigned a zero-based identifier equal to its
// insertion position, counted across all Add calls. A Builder is for
// use by a single goroutine; the KDTree it produces is safe for
// concurrent readers.
type Builder struct {
	nodeSize int
	coords   []float64
}

// NewBuilder returns a Builder that will leave runs of at most
// nodeSize points unsorted at the bottom of the tree. Node sizes below
// 2 fail with ErrInvalidConfig.
func NewBuilder(nodeSize uint16) (*Builder, error) {
	if nodeSize < 2 {
		return nil, kindErr(ErrInvalidConfig, "node size must be at least 2, got %d", nodeSize)
	}
	return &Builder{nodeSize: int(nodeSize)}, nil
}

// Add appends one point per index position of the two coordinate
// slices, in slice order. The slices must have equal length, else Add
// fails with ErrDimensionMismatch and nothing is appended.
func (b *Builder) Add(x, y []float64) error {
	if b.nodeSize == 0 {
		textPanic("Add after Finish")
	}
	if len(x) != len(y) {
		return kindErr(ErrDimensionMismatch, "coordinate slice lengths %d, %d", len(x), len(y))
	}
	for i := range x {
		b.coords = append(b.coords, x[i], y[i])
	}
	return nil
}

// NumItems returns the number of points accumulated so far.
func (b *Builder) NumItems() int {
	return len(b.coords) / 2
}

// Finish consumes the Builder and arranges the accumulated points
// into a KDTree. The Builder is spent afterward and panics on reuse.
func (b *Builder) Finish() *KDTree {
	if b.nodeSize == 0 {
		textPanic("Finish called twice")
	}
	t := &KDTree{
		nodeSize: b.nodeSize,
		numItems: len(b.coords) / 2,
		coords:   b.coords,
	}
	b.coords = nil
	b.nodeSize = 0
	t.ids = make([]int, t.numItems)
	for i := range t.ids {
		t.ids[i] = i
	}
	if t.numItems > 0 {
		sortKD(t.ids, t.coords, t.nodeSize, 0, t.numItems-1, 0)
	}
	return t
}
