// Copyright 2026 The geoindex (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import (
	"fmt"
	"sort"
)

// A level is one row of the flattened tree. Level 0 stores the input
// rectangles in insertion order and has a nil order. Every level above
// stores one bounding box per group of at most nodeSize entries of the
// level below, plus the spatially sorted permutation of the level
// below's positions: the children of box i are the positions
// order[i*nodeSize : (i+1)*nodeSize], clamped to len(order).
type level struct {
	boxes []Box
	order []int
}

// An RTree is a static spatial index over axis-aligned rectangles,
// bulk-built by Builder.Finish using Sort-Tile-Recursive packing. It
// is immutable and safe for unlimited concurrent readers.
type RTree struct {
	nodeSize int
	numItems int
	// levels runs from the leaves at index 0 to the root at index
	// len(levels)-1. An empty tree has no levels at all.
	levels []level
}

// NumItems returns the number of rectangles indexed by the tree.
func (t *RTree) NumItems() int {
	return t.numItems
}

// NodeSize returns the maximum child count per node the tree was
// built with.
func (t *RTree) NodeSize() uint16 {
	return uint16(t.nodeSize)
}

// Height returns the number of levels in the tree. An empty tree has
// height 0, and a single-item tree has height 1.
func (t *RTree) Height() int {
	return len(t.levels)
}

// Bounds returns the bounding box around every indexed rectangle. For
// an empty tree it returns Null.
func (t *RTree) Bounds() Box {
	if len(t.levels) == 0 {
		return Null
	}
	root := t.levels[len(t.levels)-1]
	return root.boxes[0]
}

// String returns a summary description of the tree.
func (t *RTree) String() string {
	return fmt.Sprintf("RTree{Bounds:%s,NumItems:%d,NodeSize:%d,Height:%d}",
		t.Bounds(), t.numItems, t.nodeSize, len(t.levels))
}

// BoxesAtLevel returns a copy of the boxes stored at the given level,
// in stored order. Level 0 is the leaf level and reproduces the input
// rectangles in insertion order; level Height()-1 is the root. Levels
// outside [0, Height()) fail with ErrLevelOutOfRange, so every level
// of an empty tree is out of range.
func (t *RTree) BoxesAtLevel(lvl int) ([]Box, error) {
	if lvl < 0 || lvl >= len(t.levels) {
		return nil, kindErr(ErrLevelOutOfRange, "level %d, height %d", lvl, len(t.levels))
	}
	boxes := make([]Box, len(t.levels[lvl].boxes))
	copy(boxes, t.levels[lvl].boxes)
	return boxes, nil
}

// A ticket is a pending tree entry to visit during a search,
// identified by its level and its position within the level.
type ticket struct {
	level int
	pos   int
}

// Search returns the identifiers of all indexed rectangles that
// intersect the query box, in ascending identifier order. The
// intersection test is closed-interval, so rectangles that merely
// touch the query box match. A query with min > max on either axis
// fails with ErrInvalidRectangle. An empty tree, or a query that
// matches nothing, yields an empty slice.
func (t *RTree) Search(minX, minY, maxX, maxY float64) ([]int, error) {
	q := Box{XMin: minX, YMin: minY, XMax: maxX, YMax: maxY}
	if !q.valid() {
		return nil, kindErr(ErrInvalidRectangle, "query %s", q)
	}
	hits := make([]int, 0)
	if len(t.levels) == 0 {
		return hits, nil
	}

	// Depth-first traversal with an explicit stack, pruning every
	// subtree whose bounding box misses the query.
	stack := make([]ticket, 1, 32)
	stack[0] = ticket{level: len(t.levels) - 1, pos: 0}
	for len(stack) > 0 {
		tk := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		lv := &t.levels[tk.level]
		if !q.Intersects(&lv.boxes[tk.pos]) {
			continue
		}
		if tk.level == 0 {
			// Leaf position and identifier are the same thing, since
			// level 0 keeps insertion order.
			hits = append(hits, tk.pos)
			continue
		}
		lo := tk.pos * t.nodeSize
		hi := lo + t.nodeSize
		if hi > len(lv.order) {
			hi = len(lv.order)
		}
		for _, child := range lv.order[lo:hi] {
			stack = append(stack, ticket{level: tk.level - 1, pos: child})
		}
	}

	// Traversal visits nodes in packing order, not identifier order,
	// so an explicit sort is required for the ordering guarantee.
	sort.Ints(hits)
	return hits, nil
}
