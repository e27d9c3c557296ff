// Copyright 2026 The geoindex (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import (
	"errors"
	"fmt"
)

const packageName = "kdtree: "

// Sentinel errors reported by Builder and KDTree operations. Callers
// should match them with errors.Is, since returned errors may wrap a
// sentinel with call-specific detail.
var (
	// ErrInvalidConfig indicates a node size below the minimum of 2.
	ErrInvalidConfig = errors.New(packageName + "invalid config")
	// ErrDimensionMismatch indicates coordinate slices of unequal
	// length passed to Builder.Add.
	ErrDimensionMismatch = errors.New(packageName + "dimension mismatch")
	// ErrInvalidRectangle indicates a query rectangle with min > max
	// on either axis passed to KDTree.Range.
	ErrInvalidRectangle = errors.New(packageName + "invalid rectangle")
	// ErrInvalidRadius indicates a negative radius passed to
	// KDTree.Within.
	ErrInvalidRadius = errors.New(packageName + "invalid radius")
)

// kindErr attaches call-specific detail to one of the sentinel errors
// while keeping it matchable with errors.Is.
func kindErr(kind error, format string, a ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{kind}, a...)...)
}

func textPanic(text string) {
	panic(packageName + text)
}
