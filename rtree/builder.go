// Copyright 2026 The geoindex (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

// A Builder accumulates rectangles and packs them into an immutable
// RTree. Each rectangle is assigned a zero-based identifier equal to
// its insertion position, counted across all Add calls. A Builder is
// for use by a single goroutine; the RTree it produces is safe for
// concurrent readers.
type Builder struct {
	nodeSize int
	boxes    []Box
	spent    bool
}

// NewBuilder returns a Builder that will pack at most nodeSize entries
// into each tree node. Node sizes below 2 fail with ErrInvalidConfig.
func NewBuilder(nodeSize uint16) (*Builder, error) {
	if nodeSize < 2 {
		return nil, kindErr(ErrInvalidConfig, "node size must be at least 2, got %d", nodeSize)
	}
	return &Builder{nodeSize: int(nodeSize)}, nil
}

// Add appends one rectangle per index position of the four coordinate
// slices, in slice order. The slices must have equal length, else Add
// fails with ErrDimensionMismatch. Every rectangle must satisfy
// min <= max on both axes, else Add fails with ErrInvalidRectangle.
// Failure is atomic: either every rectangle in the batch is appended
// or none is, so identifiers stay predictable.
func (b *Builder) Add(minX, minY, maxX, maxY []float64) error {
	if b.spent {
		textPanic("Add after Finish")
	}
	n := len(minX)
	if len(minY) != n || len(maxX) != n || len(maxY) != n {
		return kindErr(ErrDimensionMismatch, "coordinate slice lengths %d, %d, %d, %d",
			n, len(minY), len(maxX), len(maxY))
	}
	for i := 0; i < n; i++ {
		if minX[i] > maxX[i] || minY[i] > maxY[i] {
			return kindErr(ErrInvalidRectangle, "batch index %d: [%g,%g,%g,%g]",
				i, minX[i], minY[i], maxX[i], maxY[i])
		}
	}
	for i := 0; i < n; i++ {
		b.boxes = append(b.boxes, Box{
			XMin: minX[i],
			YMin: minY[i],
			XMax: maxX[i],
			YMax: maxY[i],
		})
	}
	return nil
}

// NumItems returns the number of rectangles accumulated so far.
func (b *Builder) NumItems() int {
	return len(b.boxes)
}

// Finish consumes the Builder and packs the accumulated rectangles
// into an RTree. Level 0 of the tree holds the rectangles exactly as
// added, in insertion order; higher levels are produced by
// Sort-Tile-Recursive grouping. Finish never fails: all input
// validation happens in NewBuilder and Add. The Builder is spent
// afterward and panics on reuse.
func (b *Builder) Finish() *RTree {
	if b.spent {
		textPanic("Finish called twice")
	}
	b.spent = true
	boxes := b.boxes
	b.boxes = nil
	return pack(boxes, b.nodeSize)
}
