// Copyright 2026 The geoindex (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package kdtree provides a static two-dimensional point index in the
// kdbush lineage: points are arranged once, by recursive median
// partition over alternating axes, and the finished tree answers
// rectangular range and radius queries. Like its sibling package
// rtree, the structure is build-once, read-many and safe for
// unlimited concurrent readers.
package kdtree

import (
	"fmt"
	"math"
	"sort"
)

// A KDTree is a static index over two-dimensional points, bulk-built
// by Builder.Finish. It is immutable.
type KDTree struct {
	nodeSize int
	numItems int
	// ids maps tree position to insertion identifier; coords holds the
	// matching interleaved x,y pairs, both permuted by construction.
	ids    []int
	coords []float64
}

// NumItems returns the number of points indexed by the tree.
func (t *KDTree) NumItems() int {
	return t.numItems
}

// NodeSize returns the unsorted run length the tree was built with.
func (t *KDTree) NodeSize() uint16 {
	return uint16(t.nodeSize)
}

// String returns a summary description of the tree.
func (t *KDTree) String() string {
	return fmt.Sprintf("KDTree{NumItems:%d,NodeSize:%d}", t.numItems, t.nodeSize)
}

// A span is a pending tree segment to visit during a query: the
// closed position range [left, right] and the axis it was split on.
type span struct {
	left, right, axis int
}

// Range returns the identifiers of all points inside the closed query
// rectangle, in ascending identifier order. A query with min > max on
// either axis fails with ErrInvalidRectangle.
func (t *KDTree) Range(minX, minY, maxX, maxY float64) ([]int, error) {
	if minX > maxX || minY > maxY {
		return nil, kindErr(ErrInvalidRectangle, "query [%g,%g,%g,%g]", minX, minY, maxX, maxY)
	}
	hits := make([]int, 0)
	if t.numItems == 0 {
		return hits, nil
	}

	stack := make([]span, 1, 32)
	stack[0] = span{left: 0, right: t.numItems - 1, axis: 0}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if s.right-s.left <= t.nodeSize {
			for i := s.left; i <= s.right; i++ {
				x, y := t.coords[2*i], t.coords[2*i+1]
				if minX <= x && x <= maxX && minY <= y && y <= maxY {
					hits = append(hits, t.ids[i])
				}
			}
			continue
		}

		m := (s.left + s.right) >> 1
		x, y := t.coords[2*m], t.coords[2*m+1]
		if minX <= x && x <= maxX && minY <= y && y <= maxY {
			hits = append(hits, t.ids[m])
		}
		if (s.axis == 0 && minX <= x) || (s.axis == 1 && minY <= y) {
			stack = append(stack, span{left: s.left, right: m - 1, axis: 1 - s.axis})
		}
		if (s.axis == 0 && maxX >= x) || (s.axis == 1 && maxY >= y) {
			stack = append(stack, span{left: m + 1, right: s.right, axis: 1 - s.axis})
		}
	}

	sort.Ints(hits)
	return hits, nil
}

// Within returns the identifiers of all points within Euclidean
// distance r of (x, y), in ascending identifier order. The comparison
// is closed, so points exactly r away match. A negative radius fails
// with ErrInvalidRadius.
func (t *KDTree) Within(x, y, r float64) ([]int, error) {
	if r < 0 {
		return nil, kindErr(ErrInvalidRadius, "radius %g", r)
	}
	hits := make([]int, 0)
	if t.numItems == 0 {
		return hits, nil
	}
	r2 := r * r

	stack := make([]span, 1, 32)
	stack[0] = span{left: 0, right: t.numItems - 1, axis: 0}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if s.right-s.left <= t.nodeSize {
			for i := s.left; i <= s.right; i++ {
				if sqDist(t.coords[2*i], t.coords[2*i+1], x, y) <= r2 {
					hits = append(hits, t.ids[i])
				}
			}
			continue
		}

		m := (s.left + s.right) >> 1
		px, py := t.coords[2*m], t.coords[2*m+1]
		if sqDist(px, py, x, y) <= r2 {
			hits = append(hits, t.ids[m])
		}
		if (s.axis == 0 && x-r <= px) || (s.axis == 1 && y-r <= py) {
			stack = append(stack, span{left: s.left, right: m - 1, axis: 1 - s.axis})
		}
		if (s.axis == 0 && x+r >= px) || (s.axis == 1 && y+r >= py) {
			stack = append(stack, span{left: m + 1, right: s.right, axis: 1 - s.axis})
		}
	}

	sort.Ints(hits)
	return hits, nil
}

func sqDist(ax, ay, bx, by float64) float64 {
	dx := ax - bx
	dy := ay - by
	return dx*dx + dy*dy
}

// sortKD recursively arranges points so that the median of every
// segment sits at its middle position, splitting on x and y
// alternately. Runs of nodeSize or fewer points are left unsorted.
func sortKD(ids []int, coords []float64, nodeSize, left, right, axis int) {
	if right-left <= nodeSize {
		return
	}
	m := (left + right) >> 1
	selectKD(ids, coords, m, left, right, axis)
	sortKD(ids, coords, nodeSize, left, m-1, 1-axis)
	sortKD(ids, coords, nodeSize, m+1, right, 1-axis)
}

// selectKD partially sorts [left, right] so the k-th point along the
// given axis ends up at position k, using the Floyd-Rivest selection
// algorithm.
func selectKD(ids []int, coords []float64, k, left, right, axis int) {
	for right > left {
		if right-left > 600 {
			n := float64(right - left + 1)
			m := float64(k - left + 1)
			z := math.Log(n)
			s := 0.5 * math.Exp(2*z/3)
			sd := 0.5 * math.Sqrt(z*s*(n-s)/n)
			if m-n/2 < 0 {
				sd = -sd
			}
			newLeft := max(left, int(float64(k)-m*s/n+sd))
			newRight := min(right, int(float64(k)+(n-m)*s/n+sd))
			selectKD(ids, coords, k, newLeft, newRight, axis)
		}

		pivot := coords[2*k+axis]
		i := left
		j := right
		swapPoint(ids, coords, left, k)
		if coords[2*right+axis] > pivot {
			swapPoint(ids, coords, left, right)
		}
		for i < j {
			swapPoint(ids, coords, i, j)
			i++
			j--
			for coords[2*i+axis] < pivot {
				i++
			}
			for coords[2*j+axis] > pivot {
				j--
			}
		}
		if coords[2*left+axis] == pivot {
			swapPoint(ids, coords, left, j)
		} else {
			j++
			swapPoint(ids, coords, j, right)
		}
		if j <= k {
			left = j + 1
		}
		if k <= j {
			right = j - 1
		}
	}
}

func swapPoint(ids []int, coords []float64, i, j int) {
	ids[i], ids[j] = ids[j], ids[i]
	coords[2*i], coords[2*j] = coords[2*j], coords[2*i]
	coords[2*i+1], coords[2*j+1] = coords[2*j+1], coords[2*i+1]
}
