// Copyright 2026 The geoindex (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import (
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// pack builds the flattened level stack for a finished tree, from the
// leaf level up to the root. The input slice becomes level 0 as-is, in
// insertion order.
func pack(items []Box, nodeSize int) *RTree {
	t := &RTree{nodeSize: nodeSize, numItems: len(items)}
	if len(items) == 0 {
		return t
	}
	t.levels = append(t.levels, level{boxes: items})
	for {
		top := t.levels[len(t.levels)-1]
		if len(top.boxes) == 1 {
			break
		}
		t.levels = append(t.levels, tile(top.boxes, nodeSize))
	}
	return t
}

// centroidSortable sorts a permutation of entry positions by a
// centroid coordinate of the entries, without moving the entries
// themselves. It is used with sort.Stable: equal keys must keep their
// relative order so that packing is deterministic.
type centroidSortable struct {
	entries []Box
	order   []int
	key     func(*Box) float64
}

func (cs *centroidSortable) Len() int {
	return len(cs.order)
}

func (cs *centroidSortable) Less(i, j int) bool {
	return cs.key(&cs.entries[cs.order[i]]) < cs.key(&cs.entries[cs.order[j]])
}

func (cs *centroidSortable) Swap(i, j int) {
	cs.order[i], cs.order[j] = cs.order[j], cs.order[i]
}

// tile runs one round of Sort-Tile-Recursive packing, producing the
// level above the given entries: sort entry positions by X centroid,
// cut them into vertical slices, sort each slice by Y centroid, then
// cut the permutation into runs of nodeSize. Each run becomes one
// parent whose box is the union of the run.
//
// A slice holds numSlices*nodeSize positions, a multiple of nodeSize,
// so cutting runs per slice and cutting them across the whole
// permutation yield identical groups and parent i always owns
// positions [i*nodeSize, (i+1)*nodeSize) of the permutation.
func tile(entries []Box, nodeSize int) level {
	m := len(entries)
	order := make([]int, m)
	for i := range order {
		order[i] = i
	}
	sort.Stable(&centroidSortable{entries: entries, order: order, key: (*Box).midX})

	numGroups := (m + nodeSize - 1) / nodeSize
	sliceCap := int(math.Ceil(math.Sqrt(float64(numGroups)))) * nodeSize

	// The per-slice sorts touch disjoint ranges of the permutation, so
	// they can run concurrently. The grouping below is unaffected by
	// how the work is scheduled.
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for lo := 0; lo < m; lo += sliceCap {
		hi := lo + sliceCap
		if hi > m {
			hi = m
		}
		vslice := order[lo:hi]
		g.Go(func() error {
			sort.Stable(&centroidSortable{entries: entries, order: vslice, key: (*Box).midY})
			return nil
		})
	}
	_ = g.Wait() // the sort workers cannot fail

	boxes := make([]Box, numGroups)
	for i := range boxes {
		lo := i * nodeSize
		hi := lo + nodeSize
		if hi > m {
			hi = m
		}
		u := Null
		for _, pos := range order[lo:hi] {
			u.Expand(&entries[pos])
		}
		boxes[i] = u
	}
	return level{boxes: boxes, order: order}
}
