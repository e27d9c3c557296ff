// Copyright 2026 The geoindex (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package rtree provides a static two-dimensional spatial index over
// axis-aligned rectangles.
//
// The index is bulk-built once, using Sort-Tile-Recursive packing, and
// is immutable afterward: construct a Builder, feed it batches of
// rectangles with Add, and call Finish to obtain an RTree. A finished
// RTree answers intersection queries via Search and exposes its level
// structure via BoxesAtLevel, and may be used concurrently by any
// number of readers without locking.
package rtree
