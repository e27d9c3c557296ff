// Copyright 2026 The geoindex (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree_test

import (
	"fmt"

	"github.com/tilepack/geoindex/rtree"
)

func ExampleBuilder() {
	b, _ := rtree.NewBuilder(5) // Ignore error ONLY to keep example simple.
	_ = b.Add(
		[]float64{0, 1, 2, 3, 4},
		[]float64{0, 1, 2, 3, 4},
		[]float64{5, 6, 7, 8, 9},
		[]float64{5, 6, 7, 8, 9},
	)
	index := b.Finish()

	fmt.Println(index)
	// Output: RTree{Bounds:[0,0,9,9],NumItems:5,NodeSize:5,Height:2}
}

func ExampleRTree_Search() {
	b, _ := rtree.NewBuilder(5) // Ignore error ONLY to keep example simple.
	_ = b.Add(
		[]float64{0, 1, 2, 3, 4},
		[]float64{0, 1, 2, 3, 4},
		[]float64{5, 6, 7, 8, 9},
		[]float64{5, 6, 7, 8, 9},
	)
	index := b.Finish()

	ids, _ := index.Search(0.5, 0.5, 1.5, 1.5)
	fmt.Println("Search 1:", ids)

	ids, _ = index.Search(-10, -10, -5, -5)
	fmt.Println("Search 2:", ids)
	// Output: Search 1: [0 1]
	// Search 2: []
}

func ExampleRTree_BoxesAtLevel() {
	b, _ := rtree.NewBuilder(5) // Ignore error ONLY to keep example simple.
	_ = b.Add(
		[]float64{0, 1, 2, 3, 4},
		[]float64{0, 1, 2, 3, 4},
		[]float64{5, 6, 7, 8, 9},
		[]float64{5, 6, 7, 8, 9},
	)
	index := b.Finish()

	leaves, _ := index.BoxesAtLevel(0)
	fmt.Println("Level 0:", leaves)

	root, _ := index.BoxesAtLevel(1)
	fmt.Println("Level 1:", root)
	// Output: Level 0: [[0,0,5,5] [1,1,6,6] [2,2,7,7] [3,3,8,8] [4,4,9,9]]
	// Level 1: [[0,0,9,9]]
}
